package dice

import (
	"errors"
	"strconv"
	"strings"
)

// Expression is a parsed dice expression. Two forms are supported:
// plain "NdS" and the compound "K+NdS*M", meaning K + roll(N,S)*M.
type Expression struct {
	Base       int
	Count      int
	Sides      int
	Multiplier int
}

// ParseExpression parses a dice expression string
func ParseExpression(expr string) (*Expression, error) {
	out := &Expression{Multiplier: 1}

	rest := expr
	if parts := strings.Split(rest, "+"); len(parts) == 2 {
		base, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, errors.New("invalid dice expression")
		}
		out.Base = base
		rest = parts[1]
	} else if len(parts) > 2 {
		return nil, errors.New("invalid dice expression")
	}

	if parts := strings.Split(rest, "*"); len(parts) == 2 {
		mult, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, errors.New("invalid dice expression")
		}
		out.Multiplier = mult
		rest = parts[0]
	} else if len(parts) > 2 {
		return nil, errors.New("invalid dice expression")
	}

	diceParts := strings.Split(rest, "d")
	if len(diceParts) != 2 {
		return nil, errors.New("invalid dice expression")
	}

	count, err := strconv.Atoi(diceParts[0])
	if err != nil {
		return nil, errors.New("invalid dice expression")
	}
	sides, err := strconv.Atoi(diceParts[1])
	if err != nil {
		return nil, errors.New("invalid dice expression")
	}

	if count < 1 || sides < 1 {
		return nil, errors.New("invalid dice expression")
	}

	out.Count = count
	out.Sides = sides
	return out, nil
}

// Roll evaluates the expression against the given roller
func (e *Expression) Roll(roller Roller) (int, error) {
	result, err := roller.Roll(e.Count, e.Sides, 0)
	if err != nil {
		return 0, err
	}
	return e.Base + result.RawTotal*e.Multiplier, nil
}
