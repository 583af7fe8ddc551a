package entities

// Species identifies a villager's folk
type Species string

const (
	SpeciesHuman    Species = "Human"
	SpeciesDwarf    Species = "Dwarf"
	SpeciesElf      Species = "Elf"
	SpeciesHalfling Species = "Halfling"
)

// ParseSpecies maps a table cell to a Species. An empty or unrecognized
// cell falls back to Human.
func ParseSpecies(text string) Species {
	switch text {
	case string(SpeciesDwarf):
		return SpeciesDwarf
	case string(SpeciesElf):
		return SpeciesElf
	case string(SpeciesHalfling):
		return SpeciesHalfling
	default:
		return SpeciesHuman
	}
}

// heritageMoves holds the one special move each non-human folk carries.
// Humans get none; the occupation-knowledge move every villager shares
// lives in OccupationKnowledgeMove.
var heritageMoves = map[Species][]string{
	SpeciesDwarf: {
		"Stone-sense: underground or among worked stone, they always know the way back out.",
	},
	SpeciesElf: {
		"Keen sight: dim light and deep shadow are as daylight to them.",
	},
	SpeciesHalfling: {
		"Underfoot: when they keep still among bigger folk, they go unnoticed until they choose otherwise.",
	},
	SpeciesHuman: {},
}

// OccupationKnowledgeMove is appended to every villager's move list
// regardless of species.
const OccupationKnowledgeMove = "Tricks of the trade: when their occupation is relevant, they know things others simply do not."

// HeritageMoves returns the moves granted by the species alone
func (s Species) HeritageMoves() []string {
	moves, ok := heritageMoves[s]
	if !ok {
		return nil
	}
	out := make([]string, len(moves))
	copy(out, moves)
	return out
}
