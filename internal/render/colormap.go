package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colormap maps normalized values in [0,1] onto a color ramp built from a
// small set of anchor stops, blended in Lab space.
type Colormap struct {
	Name  string
	stops []colorful.Color
}

func mustHex(h string) colorful.Color {
	c, err := colorful.Hex(h)
	if err != nil {
		panic(err)
	}
	return c
}

var colormaps = map[string]*Colormap{
	"viridis": {
		Name: "viridis",
		stops: []colorful.Color{
			mustHex("#440154"), mustHex("#3b528b"), mustHex("#21918c"),
			mustHex("#5ec962"), mustHex("#fde725"),
		},
	},
	"heat": {
		Name: "heat",
		stops: []colorful.Color{
			mustHex("#000000"), mustHex("#8b0000"), mustHex("#ff4500"),
			mustHex("#ffa500"), mustHex("#ffffcc"),
		},
	},
	"gray": {
		Name:  "gray",
		stops: []colorful.Color{mustHex("#000000"), mustHex("#ffffff")},
	},
	"plasma": {
		Name: "plasma",
		stops: []colorful.Color{
			mustHex("#0d0887"), mustHex("#7e03a8"), mustHex("#cc4778"),
			mustHex("#f89540"), mustHex("#f0f921"),
		},
	},
}

// GetColormap returns a colormap by name, falling back to viridis.
func GetColormap(name string) *Colormap {
	if cm, ok := colormaps[name]; ok {
		return cm
	}
	return colormaps["viridis"]
}

func ColormapNames() []string {
	return []string{"viridis", "heat", "gray", "plasma"}
}

// At returns the ramp color for t clamped to [0,1].
func (cm *Colormap) At(t float64) colorful.Color {
	if t <= 0 {
		return cm.stops[0]
	}
	if t >= 1 {
		return cm.stops[len(cm.stops)-1]
	}
	pos := t * float64(len(cm.stops)-1)
	i := int(pos)
	return cm.stops[i].BlendLab(cm.stops[i+1], pos-float64(i)).Clamped()
}

// Colors samples the ramp into n discrete colors.
func (cm *Colormap) Colors(n int) []color.Color {
	if n < 2 {
		n = 2
	}
	out := make([]color.Color, n)
	for i := range out {
		out[i] = cm.At(float64(i) / float64(n-1))
	}
	return out
}
