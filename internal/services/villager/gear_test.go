package villager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mockdice "github.com/KirkDiggler/villagers/internal/dice/mock"
)

func newGearService(rolls []int) *service {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls(rolls)
	return &service{roller: roller}
}

func TestExpandTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		rolls    []int
		want     string
	}{
		{
			name:     "literal text untouched",
			template: "hoe, straw hat",
			want:     "hoe, straw hat",
		},
		{
			name:     "plain dice token",
			template: "quiver of {2d6} arrows",
			rolls:    []int{3, 4},
			want:     "quiver of 7 arrows",
		},
		{
			name:     "compound dice token",
			template: "{2+1d4*2} copper coins",
			rolls:    []int{3},
			want:     "8 copper coins",
		},
		{
			name:     "crop token",
			template: "{crop} seeds (1 wt)",
			rolls:    []int{5},
			want:     "turnip seeds (1 wt)",
		},
		{
			name:     "instrument token",
			template: "{instrument}, battered hat",
			rolls:    []int{2},
			want:     "fiddle, battered hat",
		},
		{
			name:     "animal trainer token",
			template: "{animal_trainer_gear}",
			rolls:    []int{1},
			want:     "a brace of hounds (2 dogs, leashes)",
		},
		{
			name:     "poultry token rolls its own count",
			template: "{poultry}",
			rolls:    []int{1, 2, 3}, // option 1 = 2d4 chickens
			want:     "5 chickens",
		},
		{
			name:     "poultry phrase with leading words",
			template: "{poultry}",
			rolls:    []int{4, 3}, // option 4 = rooster and 1d4 hens
			want:     "a rooster and 3 hens",
		},
		{
			name:     "multiple tokens substituted independently",
			template: "{crop} seeds, {1d6} copper coins",
			rolls:    []int{1, 4},
			want:     "wheat seeds, 4 copper coins",
		},
		{
			name:     "unknown token passes through",
			template: "{mystery} trinket",
			want:     "{mystery} trinket",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newGearService(tt.rolls)

			got, err := svc.expandTemplate(tt.template)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			if len(tt.rolls) == 0 {
				// Token-free expansion is idempotent
				again, err := svc.expandTemplate(got)
				require.NoError(t, err)
				assert.Equal(t, got, again)
			}
		})
	}
}

func TestExpandTemplate_NoResidualTokens(t *testing.T) {
	// Every supported token resolves; nothing bracketed survives
	templates := []struct {
		template string
		rolls    []int
	}{
		{"{crop}", []int{1}},
		{"{instrument}", []int{1}},
		{"{animal_trainer_gear}", []int{2}},
		{"{poultry}", []int{2, 4}},
		{"{3d6}", []int{1, 2, 3}},
		{"{2+1d4*2}", []int{4}},
	}

	for _, tc := range templates {
		svc := newGearService(tc.rolls)
		got, err := svc.expandTemplate(tc.template)
		require.NoError(t, err, "template %s", tc.template)
		assert.NotRegexp(t, `\{.*\}`, got, "template %s", tc.template)
	}
}

func TestTokenListSizes(t *testing.T) {
	// The lists are sized to their selection dice
	assert.Len(t, crops, 10)
	assert.Len(t, instruments, 8)
	assert.Len(t, trainerGear, 4)
	assert.Len(t, poultryOptions, 4)
}
