package tui

import (
	"fmt"
	"strings"

	"github.com/julianstephens/eighty/internal/summary"
)

// RenderGrid draws the weekday-aligned 80-day grid. Each day is colored by
// its completion tier and today is marked with "*".
func RenderGrid(sum summary.Summary) string {
	var b strings.Builder
	for _, wd := range summary.Weekdays {
		fmt.Fprintf(&b, " %-3s", wd[:2])
	}
	b.WriteString("\n")
	for _, row := range sum.Rows() {
		for _, cell := range row {
			b.WriteString(" ")
			if cell == nil {
				b.WriteString("   ")
				continue
			}
			label := fmt.Sprintf("%2d ", cell.Number)
			if cell.Today {
				label = fmt.Sprintf("%2d*", cell.Number)
			}
			b.WriteString(TierStyle(cell.Tier).Render(label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
