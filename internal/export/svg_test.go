package export

import (
	"strings"
	"testing"

	"github.com/san-kum/cubeview/internal/render"
)

func TestCanvasToSVG(t *testing.T) {
	canvas := render.NewCanvas(10, 5)
	canvas.DrawLine(0, 0, 19, 19)

	svg := CanvasToSVG(canvas, 4.0, render.ThemeObservatory)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, "<circle") {
		t.Error("expected circles for lit dots")
	}
	if !strings.Contains(svg, string(render.ThemeObservatory.Primary)) {
		t.Error("expected theme primary color")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("missing closing tag")
	}
}

func TestCanvasToSVG_Nil(t *testing.T) {
	if svg := CanvasToSVG(nil, 4.0, render.ThemeMono); svg != "" {
		t.Error("expected empty string for nil canvas")
	}
}

func TestProfileToSVG(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 3, 2, 5}

	svg := ProfileToSVG(x, y, 400, 300, render.ThemeSolar)
	if !strings.Contains(svg, "<path") {
		t.Error("expected a path element")
	}
	if strings.Count(svg, " L") != len(x)-1 {
		t.Errorf("expected %d line segments", len(x)-1)
	}
}

func TestProfileToSVG_Degenerate(t *testing.T) {
	if svg := ProfileToSVG([]float64{1}, []float64{2}, 100, 100, render.ThemeMono); svg != "" {
		t.Error("expected empty string for single point")
	}
	if svg := ProfileToSVG([]float64{1, 2}, []float64{3}, 100, 100, render.ThemeMono); svg != "" {
		t.Error("expected empty string for length mismatch")
	}
}
