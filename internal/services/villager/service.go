// Package villager generates villager character sheets by rolling dice
// against the loaded reference tables.
package villager

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/villagers/internal/dice"
	"github.com/KirkDiggler/villagers/internal/entities"
	verrors "github.com/KirkDiggler/villagers/internal/errors"
	"github.com/KirkDiggler/villagers/internal/tables"
)

// damageDie is the same for every villager
const damageDie = "d4"

// Service defines the villager generator interface
type Service interface {
	// Generate builds one villager
	Generate(ctx context.Context) (*entities.Villager, error)

	// GenerateBatch builds count independent villagers. A count of zero
	// or less yields an empty slice.
	GenerateBatch(ctx context.Context, count int) ([]*entities.Villager, error)
}

// ServiceConfig holds configuration for the generator
type ServiceConfig struct {
	Tables *tables.Tables // Required
	Roller dice.Roller    // Optional, will use the random roller if nil
	IDGen  func() string  // Optional, will use uuid.NewString if nil
}

// NewService creates a new villager generator
func NewService(cfg *ServiceConfig) Service {
	if cfg.Tables == nil {
		panic("tables are required")
	}

	svc := &service{
		tables: cfg.Tables,
		roller: cfg.Roller,
		idGen:  cfg.IDGen,
	}

	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.idGen == nil {
		svc.idGen = uuid.NewString
	}

	return svc
}

type service struct {
	tables *tables.Tables
	roller dice.Roller
	idGen  func() string
}

// Generate builds one villager. Draw order: seven ability scores,
// occupation, gear, name, look, bond.
func (s *service) Generate(ctx context.Context) (*entities.Villager, error) {
	attrs, err := s.rollAttributes()
	if err != nil {
		return nil, verrors.Wrap(err, "failed to roll ability scores")
	}

	occ, err := s.rollOccupation()
	if err != nil {
		return nil, verrors.Wrap(err, "failed to roll occupation")
	}

	gear, err := s.expandTemplate(occ.GearTemplate)
	if err != nil {
		return nil, verrors.Wrap(err, "failed to expand gear").
			WithMeta("template", occ.GearTemplate)
	}

	name, err := s.rollName(occ.Species)
	if err != nil {
		return nil, verrors.Wrap(err, "failed to roll name")
	}

	look, err := s.rollLook()
	if err != nil {
		return nil, verrors.Wrap(err, "failed to roll look")
	}

	bond, err := s.rollBond()
	if err != nil {
		return nil, verrors.Wrap(err, "failed to roll bond")
	}

	return &entities.Villager{
		ID:            s.idGen(),
		Name:          name,
		Species:       occ.Species,
		Occupation:    occ.Name,
		Look:          look,
		Attributes:    attrs,
		HP:            attrs[entities.AttributeConstitution].Score + 4,
		Load:          attrs[entities.AttributeStrength].Score + 4,
		Damage:        damageDie,
		Gear:          []string{gear},
		Bond:          bond,
		HeritageMoves: occ.Species.HeritageMoves(),
	}, nil
}

// GenerateBatch builds count villagers. Generation only reads the
// shared tables, so the villagers are rolled concurrently; the returned
// slice order is stable.
func (s *service) GenerateBatch(ctx context.Context, count int) ([]*entities.Villager, error) {
	if count <= 0 {
		return []*entities.Villager{}, nil
	}

	out := make([]*entities.Villager, count)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			v, err := s.Generate(ctx)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// rollAttributes rolls 3d6 for each of the seven abilities
func (s *service) rollAttributes() (map[entities.Attribute]*entities.AbilityScore, error) {
	out := make(map[entities.Attribute]*entities.AbilityScore, len(entities.Attributes))
	for _, attr := range entities.Attributes {
		result, err := s.roller.Roll(3, 6, 0)
		if err != nil {
			return nil, err
		}
		out[attr] = entities.NewAbilityScore(result.Total)
	}
	return out, nil
}

func (s *service) rollOccupation() (*tables.Occupation, error) {
	result, err := s.roller.Roll(1, 100, 0)
	if err != nil {
		return nil, err
	}
	return s.tables.OccupationFor(result.Total)
}

// rollName picks a d20 name row, then the column for the species.
// Humans draw a 1d2 first: a 1 takes the everyday column outright, a 2
// draws again, with everyday on 1 and old-tongue on 2. Everyday names
// come up 3 times in 4.
func (s *service) rollName(species entities.Species) (string, error) {
	result, err := s.roller.Roll(1, 20, 0)
	if err != nil {
		return "", err
	}

	row, err := nameRowAt(s.tables.Names, result.Total)
	if err != nil {
		return "", err
	}

	switch species {
	case entities.SpeciesDwarf:
		return row.Dwarf, nil
	case entities.SpeciesElf:
		return row.Elf, nil
	case entities.SpeciesHalfling:
		return row.Halfling, nil
	default:
		coin, err := s.roller.Roll(1, 2, 0)
		if err != nil {
			return "", err
		}
		if coin.Total == 1 {
			return row.Everyday, nil
		}

		second, err := s.roller.Roll(1, 2, 0)
		if err != nil {
			return "", err
		}
		if second.Total == 1 {
			return row.Everyday, nil
		}
		return row.OldTongue, nil
	}
}

// rollLook draws five independent d20s, one per feature, and joins the
// lower-cased fragments as face, eyes, hair, body, clothing
func (s *service) rollLook() (string, error) {
	features := make([]string, 0, 5)
	pick := func(column func(tables.LookRow) string) error {
		result, err := s.roller.Roll(1, 20, 0)
		if err != nil {
			return err
		}
		row, err := lookRowAt(s.tables.Looks, result.Total)
		if err != nil {
			return err
		}
		features = append(features, strings.ToLower(column(row)))
		return nil
	}

	columns := []func(tables.LookRow) string{
		func(r tables.LookRow) string { return r.Face },
		func(r tables.LookRow) string { return r.Eyes },
		func(r tables.LookRow) string { return r.Hair },
		func(r tables.LookRow) string { return r.Body },
		func(r tables.LookRow) string { return r.Clothing },
	}
	for _, column := range columns {
		if err := pick(column); err != nil {
			return "", err
		}
	}

	return strings.Join(features, ", "), nil
}

// rollBond picks a d20 bond template and a 1d4 detail, then replaces
// the first "..." in the template with the detail
func (s *service) rollBond() (string, error) {
	result, err := s.roller.Roll(1, 20, 0)
	if err != nil {
		return "", err
	}
	row, err := bondRowAt(s.tables.Bonds, result.Total)
	if err != nil {
		return "", err
	}

	detail, err := s.roller.Roll(1, 4, 0)
	if err != nil {
		return "", err
	}

	return strings.Replace(row.Template, "...", row.Details[detail.Total-1], 1), nil
}

func nameRowAt(rows []tables.NameRow, roll int) (tables.NameRow, error) {
	if roll < 1 || roll > len(rows) {
		return tables.NameRow{}, verrors.Internalf("name roll %d out of range for %d rows", roll, len(rows))
	}
	return rows[roll-1], nil
}

func lookRowAt(rows []tables.LookRow, roll int) (tables.LookRow, error) {
	if roll < 1 || roll > len(rows) {
		return tables.LookRow{}, verrors.Internalf("look roll %d out of range for %d rows", roll, len(rows))
	}
	return rows[roll-1], nil
}

func bondRowAt(rows []tables.BondRow, roll int) (tables.BondRow, error) {
	if roll < 1 || roll > len(rows) {
		return tables.BondRow{}, verrors.Internalf("bond roll %d out of range for %d rows", roll, len(rows))
	}
	return rows[roll-1], nil
}
