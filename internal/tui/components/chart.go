package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/mealplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders values as a row of unicode blocks.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	var buf strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(sparkBlocks)-1))
		idx = min(max(idx, 0), len(sparkBlocks)-1)
		buf.WriteRune(sparkBlocks[idx])
	}
	return lipgloss.NewStyle().Foreground(color).Background(theme.Active.Surface).Render(buf.String())
}

// ColumnChart renders one column per value with a labelled y axis. It is
// meant for short series such as the six planned days.
func ColumnChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}
	t := theme.Active

	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	step := tickStep(peak)
	ceiling := math.Max(math.Ceil(peak/step)*step, step)

	yLabelW := max(len(tickLabel(ceiling))+1, 4)
	n := len(values)
	colW := min(max((width-yLabelW-1-(n-1))/n, 1), 8)

	axis := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	bar := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		top := ceiling * float64(row) / float64(height)
		bottom := ceiling * float64(row-1) / float64(height)

		label := ""
		if row == height {
			label = tickLabel(ceiling)
		} else if row == (height+1)/2 {
			label = tickLabel(ceiling / 2)
		}
		b.WriteString(axis.Render(fmt.Sprintf("%*s│", yLabelW, label)))

		for i, v := range values {
			if i > 0 {
				b.WriteString(blank.Render(" "))
			}
			switch {
			case v >= top:
				b.WriteString(bar.Render(strings.Repeat("█", colW)))
			case v > bottom:
				idx := int((v - bottom) / (top - bottom) * float64(len(sparkBlocks)))
				idx = min(max(idx, 0), len(sparkBlocks)-1)
				b.WriteString(bar.Render(strings.Repeat(string(sparkBlocks[idx]), colW)))
			default:
				b.WriteString(blank.Render(strings.Repeat(" ", colW)))
			}
		}
		b.WriteString("\n")
	}

	axisLen := n*colW + n - 1
	b.WriteString(axis.Render(fmt.Sprintf("%*s└%s", yLabelW, "0", strings.Repeat("─", axisLen))))

	if len(labels) == n {
		b.WriteString("\n")
		b.WriteString(blank.Render(strings.Repeat(" ", yLabelW+1)))
		var row strings.Builder
		for i, l := range labels {
			if i > 0 {
				row.WriteString(" ")
			}
			if len(l) > colW {
				l = l[:colW]
			}
			row.WriteString(fmt.Sprintf("%-*s", colW, l))
		}
		b.WriteString(axis.Render(row.String()))
	}
	return b.String()
}

// HBar renders a labelled horizontal bar scaled to peak.
func HBar(label string, value, peak float64, labelW, barW int, color lipgloss.Color, suffix string) string {
	t := theme.Active
	filled := 0
	if peak > 0 {
		filled = int(math.Round(value / peak * float64(barW)))
	}
	filled = min(max(filled, 0), barW)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	suffixStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s ", labelW, label)) +
		barStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", barW-filled)) +
		suffixStyle.Render(" "+suffix)
}

// tickStep picks a round axis step giving about two intervals.
func tickStep(peak float64) float64 {
	if peak <= 0 {
		return 1
	}
	rough := peak / 2
	base := math.Pow(10, math.Floor(math.Log10(rough)))
	switch frac := rough / base; {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func tickLabel(v float64) string {
	switch {
	case v >= 1e3:
		return fmt.Sprintf("%.1fk", v/1e3)
	case v == math.Trunc(v):
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.1f", v)
	}
}
