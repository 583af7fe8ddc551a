package entities

// Villager is one generated character sheet. It is built in a single
// pass by the generator and never mutated afterwards.
type Villager struct {
	ID         string
	Name       string
	Species    Species
	Occupation string
	Look       string

	Attributes map[Attribute]*AbilityScore

	HP     int
	Load   int
	Damage string

	Gear          []string
	Bond          string
	HeritageMoves []string
}

// Moves returns the full move list as rendered on the sheet: heritage
// moves first, then the shared occupation-knowledge move.
func (v *Villager) Moves() []string {
	out := make([]string, 0, len(v.HeritageMoves)+1)
	out = append(out, v.HeritageMoves...)
	out = append(out, OccupationKnowledgeMove)
	return out
}
