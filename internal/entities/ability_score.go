package entities

import "fmt"

// Attribute names one of the seven villager abilities
type Attribute string

const (
	AttributeStrength     Attribute = "STR"
	AttributeDexterity    Attribute = "DEX"
	AttributeConstitution Attribute = "CON"
	AttributeIntelligence Attribute = "INT"
	AttributeWisdom       Attribute = "WIS"
	AttributeCharisma     Attribute = "CHA"
	AttributeLuck         Attribute = "LUC"
)

// Attributes lists the seven abilities in sheet order
var Attributes = []Attribute{
	AttributeStrength,
	AttributeDexterity,
	AttributeConstitution,
	AttributeIntelligence,
	AttributeWisdom,
	AttributeCharisma,
	AttributeLuck,
}

type AbilityScore struct {
	Score    int
	Modifier int
}

// NewAbilityScore builds a score with its derived modifier
func NewAbilityScore(score int) *AbilityScore {
	return &AbilityScore{
		Score:    score,
		Modifier: ModifierForScore(score),
	}
}

// ModifierForScore is the step function from score to modifier:
//
//	3 => -3, 4-5 => -2, 6-8 => -1, 9-12 => 0, 13-15 => +1, 16-17 => +2, 18+ => +3
func ModifierForScore(score int) int {
	switch {
	case score <= 3:
		return -3
	case score <= 5:
		return -2
	case score <= 8:
		return -1
	case score <= 12:
		return 0
	case score <= 15:
		return 1
	case score <= 17:
		return 2
	default:
		return 3
	}
}

func (a *AbilityScore) String() string {
	return fmt.Sprintf("%d (%+d)", a.Score, a.Modifier)
}
