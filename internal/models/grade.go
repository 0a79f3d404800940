package models

import "fmt"

// Grade is the letter summary of a challenge's completion fraction.
type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
	// GradeNone is given when not a single task has been completed.
	GradeNone Grade = "F-"
)

const keepGoingText = "Keep going! Complete a few more days to see your performance grade."

// GradeForFraction maps a completion fraction to a grade. The fraction is
// clamped to [0,1] first.
func GradeForFraction(fraction float64) Grade {
	fraction = clampFraction(fraction)
	switch {
	case fraction == 1:
		return GradeS
	case fraction >= 0.9:
		return GradeA
	case fraction >= 0.8:
		return GradeB
	case fraction >= 0.7:
		return GradeC
	case fraction >= 0.6:
		return GradeD
	case fraction == 0:
		return GradeNone
	default:
		return GradeF
	}
}

// Symbol is the text shown inside the grade badge.
func (g Grade) Symbol() string {
	if g == GradeNone {
		return "😢"
	}
	return string(g)
}

// Color returns the badge color. Unknown grades, including the zero value
// used before a grade is available, get the faded red default.
func (g Grade) Color() Color {
	switch g {
	case GradeS:
		return Color{Name: ColorPurple, Opacity: 1}
	case GradeA:
		return Color{Name: ColorGreen, Opacity: 0.7}
	case GradeB:
		return Color{Name: ColorYellow, Opacity: 0.9}
	case GradeC:
		return Color{Name: ColorOrange, Opacity: 0.9}
	case GradeD:
		return Color{Name: ColorRed, Opacity: 0.7}
	case GradeF:
		return Color{Name: ColorRed, Opacity: 1}
	default:
		return Color{Name: ColorRed, Opacity: 0.5}
	}
}

// PerformanceText returns the encouragement line for the grade at the given
// completion fraction.
func (g Grade) PerformanceText(fraction float64) string {
	percentage := fmt.Sprintf("%.2f", clampFraction(fraction)*100)
	switch g {
	case GradeS:
		return "You're on fire! You've completed 100% of your tasks. Keep up the incredible work!"
	case GradeA:
		return fmt.Sprintf("Amazing! You've completed %s%% of your tasks. Keep up the great work!", percentage)
	case GradeB:
		return fmt.Sprintf("Great job! You're at %s%% of your tasks. Stay consistent and push a little further!", percentage)
	case GradeC:
		return fmt.Sprintf("Not bad! %s%% of your tasks completed. You can reach the next level with some extra effort.", percentage)
	case GradeD:
		return fmt.Sprintf("Getting there. %s%% of your tasks done. Focus on building momentum!", percentage)
	case GradeF:
		return fmt.Sprintf("Time to get going! Only %s%% of your tasks completed. You've got this, take it one task at a time.", percentage)
	default:
		return "Time to get started! None of your tasks are completed. You've got this, take it one task at a time."
	}
}

func clampFraction(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
