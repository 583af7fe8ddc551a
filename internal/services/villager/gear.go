package villager

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/KirkDiggler/villagers/internal/dice"
)

// tokenPattern matches one bracketed token in a gear template
var tokenPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// tokenResolver produces the replacement text for one named token
type tokenResolver func(s *service) (string, error)

// namedTokens is the token registry. Tokens not listed here are tried
// as dice expressions; anything else passes through as literal text.
var namedTokens = map[string]tokenResolver{
	"crop":                resolveCrop,
	"instrument":          resolveInstrument,
	"animal_trainer_gear": resolveTrainerGear,
	"poultry":             resolvePoultry,
}

var crops = []string{
	"wheat",
	"barley",
	"rye",
	"oat",
	"turnip",
	"cabbage",
	"bean",
	"onion",
	"carrot",
	"pumpkin",
}

var instruments = []string{
	"lute",
	"fiddle",
	"reed pipe",
	"hand drum",
	"horn",
	"lyre",
	"flute",
	"concertina",
}

var trainerGear = []string{
	"a brace of hounds (2 dogs, leashes)",
	"falconry glove and hooded falcon",
	"clicker and pouch of scraps",
	"lunge line and training whip",
}

// poultryOptions are the 1d4 bird phrases; each rolls its own count
var poultryOptions = []struct {
	count  dice.Expression
	format string
}{
	{dice.Expression{Count: 2, Sides: 4, Multiplier: 1}, "%d chickens"},
	{dice.Expression{Count: 1, Sides: 4, Multiplier: 1}, "%d geese"},
	{dice.Expression{Count: 1, Sides: 6, Multiplier: 1}, "%d ducks"},
	{dice.Expression{Count: 1, Sides: 4, Multiplier: 1}, "a rooster and %d hens"},
}

// expandTemplate substitutes every bracketed token in a gear template,
// each with its own fresh rolls. Literal text passes through unchanged.
func (s *service) expandTemplate(template string) (string, error) {
	var out []byte
	last := 0
	for _, match := range tokenPattern.FindAllStringSubmatchIndex(template, -1) {
		out = append(out, template[last:match[0]]...)

		replacement, err := s.resolveToken(template[match[2]:match[3]])
		if err != nil {
			return "", err
		}
		out = append(out, replacement...)
		last = match[1]
	}
	out = append(out, template[last:]...)

	return string(out), nil
}

func (s *service) resolveToken(token string) (string, error) {
	if resolve, ok := namedTokens[token]; ok {
		return resolve(s)
	}

	expr, err := dice.ParseExpression(token)
	if err != nil {
		// Not a known token; leave the literal in place
		return "{" + token + "}", nil
	}

	total, err := expr.Roll(s.roller)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(total), nil
}

func resolveCrop(s *service) (string, error) {
	return pickOne(s, crops)
}

func resolveInstrument(s *service) (string, error) {
	return pickOne(s, instruments)
}

func resolveTrainerGear(s *service) (string, error) {
	return pickOne(s, trainerGear)
}

func resolvePoultry(s *service) (string, error) {
	result, err := s.roller.Roll(1, len(poultryOptions), 0)
	if err != nil {
		return "", err
	}
	option := poultryOptions[result.Total-1]

	count, err := option.count.Roll(s.roller)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(option.format, count), nil
}

// pickOne selects an entry uniformly with a single die the size of the list
func pickOne(s *service, list []string) (string, error) {
	result, err := s.roller.Roll(1, len(list), 0)
	if err != nil {
		return "", err
	}
	return list[result.Total-1], nil
}
