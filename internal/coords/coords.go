package coords

import (
	"errors"
	"fmt"

	"github.com/san-kum/cubeview/internal/units"
)

// ErrAxisRange indicates an axis index outside the coordinate system.
var ErrAxisRange = errors.New("coords: axis out of range")

// Axis describes one linear world coordinate dimension. Missing marks a
// coordinate dimension that is not represented in the data array's
// indexing; such axes still occupy a slot in the system but have no
// corresponding array axis.
type Axis struct {
	Type     string // physical axis type label, e.g. "em.wl" or "custom:pos.x"
	Unit     units.Unit
	RefPixel float64
	RefValue float64
	Delta    float64 // world increment per pixel
	Missing  bool
}

// System is an ordered set of coordinate axes, outermost first, matching
// the data array's axis order.
type System struct {
	axes []Axis
}

func NewSystem(axes ...Axis) (*System, error) {
	if len(axes) == 0 {
		return nil, errors.New("coords: system needs at least one axis")
	}
	return &System{axes: append([]Axis(nil), axes...)}, nil
}

func (s *System) NAxes() int { return len(s.axes) }

func (s *System) Axis(i int) (Axis, error) {
	if i < 0 || i >= len(s.axes) {
		return Axis{}, fmt.Errorf("%w: %d of %d", ErrAxisRange, i, len(s.axes))
	}
	return s.axes[i], nil
}

// Missing returns the per-dimension missing flags in axis order.
func (s *System) Missing() []bool {
	out := make([]bool, len(s.axes))
	for i, ax := range s.axes {
		out[i] = ax.Missing
	}
	return out
}

// NotMissing counts the coordinate axes present in the data indexing.
func (s *System) NotMissing() int {
	n := 0
	for _, ax := range s.axes {
		if !ax.Missing {
			n++
		}
	}
	return n
}

// DataAxis maps an array axis to its coordinate axis: the arrayAxis-th
// non-missing axis in order.
func (s *System) DataAxis(arrayAxis int) (int, error) {
	if arrayAxis < 0 {
		return 0, fmt.Errorf("%w: %d", ErrAxisRange, arrayAxis)
	}
	seen := 0
	for i, ax := range s.axes {
		if ax.Missing {
			continue
		}
		if seen == arrayAxis {
			return i, nil
		}
		seen++
	}
	return 0, fmt.Errorf("%w: array axis %d has no coordinate axis (%d non-missing)", ErrAxisRange, arrayAxis, seen)
}

// PixelToWorld evaluates the linear world coordinate of the given pixel
// indices along one coordinate axis.
func (s *System) PixelToWorld(axis int, pixels []float64) ([]float64, error) {
	ax, err := s.Axis(axis)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(pixels))
	for i, p := range pixels {
		out[i] = ax.RefValue + (p-ax.RefPixel)*ax.Delta
	}
	return out, nil
}
