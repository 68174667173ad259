// Package viz renders sweeps and values for the terminal.
package viz

import (
	"strings"

	"github.com/guptarohit/asciigraph"
)

// Plot renders one series as an ASCII chart.
func Plot(values []float64, caption string) string {
	return asciigraph.Plot(values,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}

// PlotPair renders a function over its derivative, the usual sweep view.
func PlotPair(fs, dfs []float64, fCaption, dfCaption string) string {
	return Plot(fs, fCaption) + "\n\n" + Plot(dfs, dfCaption)
}

// Sparkline renders a mini chart from values, one rune per sample.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	rng := max - min
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var out strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - min) / rng
		idx := int(norm * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}
		out.WriteRune(chars[idx])
	}
	return out.String()
}
