package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/cubeview/internal/ndarray"
)

// Heatmap renders a 2D array as terminal text, two image rows per text
// line using the upper-half-block glyph. Row 0 of the array appears at
// the bottom, matching plot orientation. maxW/maxH bound the rendered
// cell count; larger arrays are downsampled by nearest neighbor.
func Heatmap(arr *ndarray.Array, cm *Colormap, maxW, maxH int) string {
	if arr.Rank() != 2 {
		return ""
	}
	rows, cols := arr.Dim(0), arr.Dim(1)
	outW, outH := cols, rows
	if maxW > 0 && outW > maxW {
		outW = maxW
	}
	if maxH > 0 && outH > maxH {
		outH = maxH
	}
	min, max := arr.MinMax()
	span := max - min
	if span == 0 {
		span = 1
	}

	sample := func(r, c int) float64 {
		sr := r * rows / outH
		sc := c * cols / outW
		return arr.At(sr, sc)
	}
	norm := func(v float64) float64 { return (v - min) / span }

	var b strings.Builder
	// walk top-down over output rows, flipping so row 0 lands at the bottom
	for line := (outH + 1) / 2; line > 0; line-- {
		top := 2*line - 1
		bot := 2*line - 2
		for c := 0; c < outW; c++ {
			botColor := lipgloss.Color(cm.At(norm(sample(bot, c))).Hex())
			if top < outH {
				topColor := lipgloss.Color(cm.At(norm(sample(top, c))).Hex())
				b.WriteString(lipgloss.NewStyle().Foreground(topColor).Background(botColor).Render("▀"))
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(botColor).Render("▄"))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
