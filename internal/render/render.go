// Package render turns villager records into styled terminal cards.
// It is a pure consumer: no business logic beyond string splitting and
// color selection by species.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/villagers/internal/entities"
)

const cardWidth = 72

// speciesColors keys the card accent color by folk
var speciesColors = map[entities.Species]lipgloss.Color{
	entities.SpeciesHuman:    lipgloss.Color("3"),
	entities.SpeciesDwarf:    lipgloss.Color("1"),
	entities.SpeciesElf:      lipgloss.Color("2"),
	entities.SpeciesHalfling: lipgloss.Color("6"),
}

// Config holds configuration for the renderer
type Config struct {
	// Plain disables all color and emphasis
	Plain bool
}

// Renderer renders villager cards
type Renderer struct {
	plain bool
}

// New creates a new renderer
func New(cfg *Config) *Renderer {
	r := &Renderer{}
	if cfg != nil {
		r.plain = cfg.Plain
	}
	return r
}

// Render returns the styled cards for the given villagers, one card
// per villager in order. An empty list renders a single quiet line.
func (r *Renderer) Render(villagers []*entities.Villager) string {
	if len(villagers) == 0 {
		return r.dim().Render("Nobody came. The village is quiet today.") + "\n"
	}

	cards := make([]string, 0, len(villagers))
	for _, v := range villagers {
		cards = append(cards, r.card(v))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...) + "\n"
}

func (r *Renderer) card(v *entities.Villager) string {
	accent := speciesColors[v.Species]

	var b strings.Builder

	title := fmt.Sprintf("%s the %s", v.Name, v.Occupation)
	b.WriteString(r.bold(accent).Render(title))
	b.WriteString("  ")
	b.WriteString(r.dim().Render(string(v.Species)))
	b.WriteString("\n")
	b.WriteString(r.dim().Render(v.Look))
	b.WriteString("\n\n")

	b.WriteString(r.statLine(v))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("HP %d   Load %d   Damage %s", v.HP, v.Load, v.Damage))
	b.WriteString("\n\n")

	b.WriteString(r.bold(accent).Render("Gear"))
	b.WriteString("\n")
	for _, gear := range v.Gear {
		for _, item := range SplitGear(gear) {
			b.WriteString("  • " + item + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(r.bold(accent).Render("Bond") + " " + v.Bond)
	b.WriteString("\n\n")

	b.WriteString(r.bold(accent).Render("Moves"))
	b.WriteString("\n")
	moves := v.Moves()
	for i, move := range moves {
		b.WriteString("  • " + move)
		if i < len(moves)-1 {
			b.WriteString("\n")
		}
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(cardWidth)
	if !r.plain {
		border = border.BorderForeground(accent)
	}

	return border.Render(b.String())
}

// statLine renders the seven scores with color-coded modifiers
func (r *Renderer) statLine(v *entities.Villager) string {
	parts := make([]string, 0, len(entities.Attributes))
	for _, attr := range entities.Attributes {
		score := v.Attributes[attr]
		mod := r.modStyle(score.Modifier).Render(fmt.Sprintf("%+d", score.Modifier))
		parts = append(parts, fmt.Sprintf("%s %d %s", attr, score.Score, mod))
	}
	return strings.Join(parts, "  ")
}

func (r *Renderer) modStyle(modifier int) lipgloss.Style {
	switch {
	case r.plain:
		return lipgloss.NewStyle()
	case modifier < 0:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case modifier > 0:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}
}

func (r *Renderer) bold(color lipgloss.Color) lipgloss.Style {
	if r.plain {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color)
}

func (r *Renderer) dim() lipgloss.Style {
	if r.plain {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}
