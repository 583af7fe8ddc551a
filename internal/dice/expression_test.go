package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/villagers/internal/dice"
	mockdice "github.com/KirkDiggler/villagers/internal/dice/mock"
)

func TestParseExpression(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    dice.Expression
		wantErr bool
	}{
		{
			name: "plain 3d6",
			expr: "3d6",
			want: dice.Expression{Count: 3, Sides: 6, Multiplier: 1},
		},
		{
			name: "plain 1d100",
			expr: "1d100",
			want: dice.Expression{Count: 1, Sides: 100, Multiplier: 1},
		},
		{
			name: "compound 2+1d4*2",
			expr: "2+1d4*2",
			want: dice.Expression{Base: 2, Count: 1, Sides: 4, Multiplier: 2},
		},
		{
			name:    "missing sides",
			expr:    "3d",
			wantErr: true,
		},
		{
			name:    "not dice at all",
			expr:    "crop",
			wantErr: true,
		},
		{
			name:    "garbage base",
			expr:    "x+1d4*2",
			wantErr: true,
		},
		{
			name:    "garbage multiplier",
			expr:    "2+1d4*y",
			wantErr: true,
		},
		{
			name:    "zero count",
			expr:    "0d6",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dice.ParseExpression(tt.expr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestExpression_Roll(t *testing.T) {
	t.Run("compound applies base and multiplier", func(t *testing.T) {
		roller := mockdice.NewManualMockRoller()
		roller.SetRolls([]int{3})

		expr, err := dice.ParseExpression("2+1d4*2")
		require.NoError(t, err)

		got, err := expr.Roll(roller)
		require.NoError(t, err)
		assert.Equal(t, 8, got) // 2 + 3*2
	})

	t.Run("plain sums the dice", func(t *testing.T) {
		roller := mockdice.NewManualMockRoller()
		roller.SetRolls([]int{2, 6})

		expr, err := dice.ParseExpression("2d6")
		require.NoError(t, err)

		got, err := expr.Roll(roller)
		require.NoError(t, err)
		assert.Equal(t, 8, got)
	})
}
