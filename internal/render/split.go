package render

import "strings"

// SplitGear splits a gear string on top-level commas. Commas inside
// parentheses do not split, so grouped items like
// "a brace of hounds (2 dogs, leashes)" stay whole.
func SplitGear(gear string) []string {
	var out []string
	depth := 0
	start := 0

	for i, r := range gear {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				if item := strings.TrimSpace(gear[start:i]); item != "" {
					out = append(out, item)
				}
				start = i + 1
			}
		}
	}

	if item := strings.TrimSpace(gear[start:]); item != "" {
		out = append(out, item)
	}

	return out
}
