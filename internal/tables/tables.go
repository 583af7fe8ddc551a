// Package tables loads the four reference tables the generator draws
// from: occupations, names, physical looks, and bonds. Tables are
// embedded in the binary and parsed once at startup; the resulting
// Tables value is read-only.
package tables

import (
	"embed"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/KirkDiggler/villagers/internal/entities"
	verrors "github.com/KirkDiggler/villagers/internal/errors"
)

//go:embed data/*.tsv
var embedded embed.FS

const (
	occupationsFile = "occupations.tsv"
	namesFile       = "names.tsv"
	looksFile       = "looks.tsv"
	bondsFile       = "bonds.tsv"

	// name, look and bond rows are selected with a d20
	d20Rows = 20
)

// Occupation is one row of the occupation table. Min and Max are the
// inclusive bounds of the 1d100 range that selects it.
type Occupation struct {
	Min          int
	Max          int
	Name         string
	GearTemplate string
	Species      entities.Species
}

// NameRow holds the name options for one d20 result, one column per
// naming tradition.
type NameRow struct {
	Everyday  string
	OldTongue string
	Dwarf     string
	Elf       string
	Halfling  string
}

// LookRow holds one descriptor per physical feature for one d20 result
type LookRow struct {
	Face     string
	Eyes     string
	Hair     string
	Body     string
	Clothing string
}

// BondRow is a bond sentence template with its four detail options.
// The template contains a literal "..." where a detail is substituted.
type BondRow struct {
	Template string
	Details  [4]string
}

// Tables is the full set of loaded reference tables
type Tables struct {
	Occupations []Occupation
	Names       []NameRow
	Looks       []LookRow
	Bonds       []BondRow
}

// Load parses the embedded reference tables
func Load() (*Tables, error) {
	return load(func(name string) ([]byte, error) {
		return embedded.ReadFile("data/" + name)
	})
}

// LoadDir parses reference tables from files in dir instead of the
// embedded copies. Used by the tables-dir config override.
func LoadDir(dir string) (*Tables, error) {
	return load(func(name string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, name))
	})
}

type readFunc func(name string) ([]byte, error)

func load(read readFunc) (*Tables, error) {
	out := &Tables{}

	occupationRows, err := readRows(read, occupationsFile)
	if err != nil {
		return nil, err
	}
	out.Occupations, err = parseOccupations(occupationRows)
	if err != nil {
		return nil, err
	}

	nameRows, err := readRows(read, namesFile)
	if err != nil {
		return nil, err
	}
	out.Names, err = parseNames(nameRows)
	if err != nil {
		return nil, err
	}

	lookRows, err := readRows(read, looksFile)
	if err != nil {
		return nil, err
	}
	out.Looks, err = parseLooks(lookRows)
	if err != nil {
		return nil, err
	}

	bondRows, err := readRows(read, bondsFile)
	if err != nil {
		return nil, err
	}
	out.Bonds, err = parseBonds(bondRows)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// OccupationFor returns the occupation whose inclusive range contains
// the given 1d100 roll
func (t *Tables) OccupationFor(roll int) (*Occupation, error) {
	for i := range t.Occupations {
		occ := &t.Occupations[i]
		if roll >= occ.Min && roll <= occ.Max {
			return occ, nil
		}
	}
	return nil, verrors.NotFoundf("no occupation for roll %d", roll)
}

// readRows reads a resource and splits it into tab-delimited rows with
// the header line removed
func readRows(read readFunc, name string) ([][]string, error) {
	data, err := read(name)
	if err != nil {
		return nil, verrors.WrapWithCode(err, verrors.CodeLoadFailed, "failed to read reference table").
			WithMeta("table", name)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		rows = append(rows, strings.Split(line, "\t"))
	}

	if len(rows) < 2 {
		return nil, verrors.MalformedTablef("table %s has no data rows", name)
	}

	// First row is the header
	return rows[1:], nil
}

func parseOccupations(rows [][]string) ([]Occupation, error) {
	out := make([]Occupation, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, verrors.MalformedTablef("occupation row %d has %d columns, want 3 or 4", i+1, len(row))
		}

		minRoll, maxRoll, err := parseRange(row[0])
		if err != nil {
			return nil, verrors.Wrapf(err, "occupation row %d", i+1).
				WithMeta("range", row[0])
		}

		species := ""
		if len(row) == 4 {
			species = row[3]
		}

		out = append(out, Occupation{
			Min:          minRoll,
			Max:          maxRoll,
			Name:         row[1],
			GearTemplate: row[2],
			Species:      entities.ParseSpecies(species),
		})
	}
	return out, nil
}

func parseNames(rows [][]string) ([]NameRow, error) {
	if len(rows) != d20Rows {
		return nil, verrors.MalformedTablef("name table has %d rows, want %d", len(rows), d20Rows)
	}

	out := make([]NameRow, 0, len(rows))
	for i, row := range rows {
		if len(row) != 5 {
			return nil, verrors.MalformedTablef("name row %d has %d columns, want 5", i+1, len(row))
		}
		out = append(out, NameRow{
			Everyday:  row[0],
			OldTongue: row[1],
			Dwarf:     row[2],
			Elf:       row[3],
			Halfling:  row[4],
		})
	}
	return out, nil
}

func parseLooks(rows [][]string) ([]LookRow, error) {
	if len(rows) != d20Rows {
		return nil, verrors.MalformedTablef("look table has %d rows, want %d", len(rows), d20Rows)
	}

	out := make([]LookRow, 0, len(rows))
	for i, row := range rows {
		if len(row) != 5 {
			return nil, verrors.MalformedTablef("look row %d has %d columns, want 5", i+1, len(row))
		}
		out = append(out, LookRow{
			Face:     row[0],
			Eyes:     row[1],
			Hair:     row[2],
			Body:     row[3],
			Clothing: row[4],
		})
	}
	return out, nil
}

func parseBonds(rows [][]string) ([]BondRow, error) {
	if len(rows) != d20Rows {
		return nil, verrors.MalformedTablef("bond table has %d rows, want %d", len(rows), d20Rows)
	}

	out := make([]BondRow, 0, len(rows))
	for i, row := range rows {
		if len(row) != 5 {
			return nil, verrors.MalformedTablef("bond row %d has %d columns, want 5", i+1, len(row))
		}
		out = append(out, BondRow{
			Template: row[0],
			Details:  [4]string{row[1], row[2], row[3], row[4]},
		})
	}
	return out, nil
}

// parseRange parses an occupation range cell: "min-max" or a single
// number meaning min=max
func parseRange(text string) (int, int, error) {
	parts := strings.Split(text, "-")
	switch len(parts) {
	case 1:
		value, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, 0, verrors.MalformedTablef("invalid range %q", text)
		}
		return value, value, nil
	case 2:
		minRoll, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, 0, verrors.MalformedTablef("invalid range %q", text)
		}
		maxRoll, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, verrors.MalformedTablef("invalid range %q", text)
		}
		if minRoll > maxRoll {
			return 0, 0, verrors.MalformedTablef("inverted range %q", text)
		}
		return minRoll, maxRoll, nil
	default:
		return 0, 0, verrors.MalformedTablef("invalid range %q", text)
	}
}
