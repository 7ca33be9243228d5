package cube

import (
	"errors"
	"fmt"

	"github.com/san-kum/cubeview/internal/coords"
	"github.com/san-kum/cubeview/internal/ndarray"
	"github.com/san-kum/cubeview/internal/units"
)

// ErrUnitUndefined indicates a display-unit conversion was requested on a
// cube without a native data unit.
var ErrUnitUndefined = errors.New("cube: unit is undefined, cannot convert")

// Cube is a multi-dimensional labeled data array with an associated
// coordinate system and an optional native data unit. The plotting layer
// only reads it.
type Cube struct {
	Data   *ndarray.Array
	Unit   units.Unit // zero value means undefined
	Coords *coords.System
	Meta   map[string]string
}

type Option func(*Cube)

func WithUnit(u units.Unit) Option {
	return func(c *Cube) { c.Unit = u }
}

func WithMeta(meta map[string]string) Option {
	return func(c *Cube) { c.Meta = meta }
}

// New builds a cube over data and sys. The coordinate system may carry
// more axes than the array has dimensions (the extras flagged missing);
// agreement between the two is only enforced by the operations that
// depend on it.
func New(data *ndarray.Array, sys *coords.System, opts ...Option) (*Cube, error) {
	if data == nil {
		return nil, errors.New("cube: nil data array")
	}
	if sys == nil {
		return nil, errors.New("cube: nil coordinate system")
	}
	if sys.NAxes() < data.Rank() {
		return nil, fmt.Errorf("cube: coordinate system has %d axes for rank-%d data", sys.NAxes(), data.Rank())
	}
	c := &Cube{Data: data, Coords: sys}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Cube) Rank() int { return c.Data.Rank() }

func (c *Cube) HasUnit() bool { return c.Unit.Defined() }

// AxisWorldCoords looks up the world coordinate values for every pixel
// index along the given array axis, together with the axis unit.
func (c *Cube) AxisWorldCoords(arrayAxis int) ([]float64, units.Unit, error) {
	arrayAxis, err := c.Data.NormAxis(arrayAxis)
	if err != nil {
		return nil, units.Unit{}, err
	}
	coordAxis, err := c.Coords.DataAxis(arrayAxis)
	if err != nil {
		return nil, units.Unit{}, err
	}
	pixels := make([]float64, c.Data.Dim(arrayAxis))
	for i := range pixels {
		pixels[i] = float64(i)
	}
	world, err := c.Coords.PixelToWorld(coordAxis, pixels)
	if err != nil {
		return nil, units.Unit{}, err
	}
	ax, err := c.Coords.Axis(coordAxis)
	if err != nil {
		return nil, units.Unit{}, err
	}
	return world, ax.Unit, nil
}

// PhysicalType returns the physical-axis-type label for an array axis, or
// an empty string if the axis has no coordinate description.
func (c *Cube) PhysicalType(arrayAxis int) string {
	arrayAxis, err := c.Data.NormAxis(arrayAxis)
	if err != nil {
		return ""
	}
	coordAxis, err := c.Coords.DataAxis(arrayAxis)
	if err != nil {
		return ""
	}
	ax, err := c.Coords.Axis(coordAxis)
	if err != nil {
		return ""
	}
	return ax.Type
}

// ConvertedData returns the data values expressed in the display unit to.
// The cube must carry a native unit.
func (c *Cube) ConvertedData(to units.Unit) (*ndarray.Array, error) {
	if !c.HasUnit() {
		return nil, ErrUnitUndefined
	}
	f, err := units.Factor(c.Unit, to)
	if err != nil {
		return nil, err
	}
	return c.Data.Scaled(f), nil
}
