package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/villagers/internal/dice"
	mockdice "github.com/KirkDiggler/villagers/internal/dice/mock"
)

func TestMockRoller_Roll(t *testing.T) {
	tests := []struct {
		name       string
		setupRolls []int
		count      int
		sides      int
		bonus      int
		wantTotal  int
		wantRolls  []int
		wantErr    bool
	}{
		{
			name:       "single d20 roll",
			setupRolls: []int{15},
			count:      1,
			sides:      20,
			bonus:      0,
			wantTotal:  15,
			wantRolls:  []int{15},
		},
		{
			name:       "3d6 ability score",
			setupRolls: []int{4, 5, 6},
			count:      3,
			sides:      6,
			bonus:      0,
			wantTotal:  15,
			wantRolls:  []int{4, 5, 6},
		},
		{
			name:       "2d6+3",
			setupRolls: []int{4, 5},
			count:      2,
			sides:      6,
			bonus:      3,
			wantTotal:  12, // 4+5+3
			wantRolls:  []int{4, 5},
		},
		{
			name:       "not enough rolls",
			setupRolls: []int{10},
			count:      2,
			sides:      6,
			bonus:      0,
			wantErr:    true,
		},
		{
			name:       "invalid roll for die size",
			setupRolls: []int{7},
			count:      1,
			sides:      6,
			bonus:      0,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls(tt.setupRolls)

			result, err := roller.Roll(tt.count, tt.sides, tt.bonus)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.wantRolls, result.Rolls)
			assert.Equal(t, tt.bonus, result.Bonus)
		})
	}
}

func TestRandomRoller_Bounds(t *testing.T) {
	roller := dice.NewRandomRoller()

	cases := []struct {
		count int
		sides int
	}{
		{1, 2},
		{1, 4},
		{1, 20},
		{1, 100},
		{3, 6},
		{2, 4},
	}

	for _, tc := range cases {
		for i := 0; i < 200; i++ {
			result, err := roller.Roll(tc.count, tc.sides, 0)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, result.Total, tc.count)
			assert.LessOrEqual(t, result.Total, tc.count*tc.sides)
			assert.Len(t, result.Rolls, tc.count)
			for _, roll := range result.Rolls {
				assert.GreaterOrEqual(t, roll, 1)
				assert.LessOrEqual(t, roll, tc.sides)
			}
		}
	}
}

func TestRoll_InvalidInput(t *testing.T) {
	_, err := dice.Roll(0, 6, 0)
	assert.Error(t, err)

	_, err = dice.Roll(1, 0, 0)
	assert.Error(t, err)
}
