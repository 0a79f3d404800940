package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/julianstephens/eighty/internal/models"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

// base colors of the palette names used by models.Color.
var palette = map[string]colorful.Color{
	models.ColorGray:   hexColor("#808080"),
	models.ColorRed:    hexColor("#ff3b30"),
	models.ColorPurple: hexColor("#af52de"),
	models.ColorGreen:  hexColor("#34c759"),
	models.ColorYellow: hexColor("#ffcc00"),
	models.ColorOrange: hexColor("#ff9500"),
}

// background the opacity is blended against.
var background = hexColor("#181818")

func hexColor(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ColorFor renders a palette color as a hex lipgloss color, blending its
// opacity into a dark background.
func ColorFor(c models.Color) lipgloss.Color {
	base, ok := palette[c.Name]
	if !ok {
		base = palette[models.ColorGray]
	}
	a := math.Max(0, math.Min(1, c.Opacity))
	return lipgloss.Color(background.BlendRgb(base, a).Hex())
}

// TierStyle colors a grid cell by its completion tier.
func TierStyle(t models.Tier) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(ColorFor(t.Color())).
		Foreground(lipgloss.Color("255"))
}

// GradeStyle colors a grade letter.
func GradeStyle(g models.Grade) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(ColorFor(g.Color()))
}
