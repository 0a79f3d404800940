package models

// Color is a named palette color with an opacity in [0,1]. Presentation
// layers map it to whatever their renderer understands.
type Color struct {
	Name    string
	Opacity float64
}

const (
	ColorGray   = "gray"
	ColorRed    = "red"
	ColorPurple = "purple"
	ColorGreen  = "green"
	ColorYellow = "yellow"
	ColorOrange = "orange"
)

// Tier is the completion bucket of a single day.
type Tier int

const (
	TierInactive Tier = iota
	Tier1             // [0, .2)
	Tier2             // [.2, .4)
	Tier3             // [.4, .6)
	Tier4             // [.6, .8)
	Tier5             // [.8, .99)
	Tier6             // [.99, 1]
)

var tierColors = map[Tier]Color{
	TierInactive: {Name: ColorGray, Opacity: 0.3},
	Tier1:        {Name: ColorRed, Opacity: 0.3},
	Tier2:        {Name: ColorRed, Opacity: 0.4},
	Tier3:        {Name: ColorRed, Opacity: 0.5},
	Tier4:        {Name: ColorRed, Opacity: 0.6},
	Tier5:        {Name: ColorRed, Opacity: 0.7},
	Tier6:        {Name: ColorRed, Opacity: 0.8},
}

// Color returns the indicator color for the tier.
func (t Tier) Color() Color {
	if c, ok := tierColors[t]; ok {
		return c
	}
	return tierColors[TierInactive]
}

// TierForFraction buckets a completion fraction.
func TierForFraction(fraction float64) Tier {
	switch {
	case fraction < 0.2:
		return Tier1
	case fraction < 0.4:
		return Tier2
	case fraction < 0.6:
		return Tier3
	case fraction < 0.8:
		return Tier4
	case fraction < 0.99:
		return Tier5
	default:
		return Tier6
	}
}
