package ndarray

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Array is a dense row-major n-dimensional array of float64 values.
// Indexes are ordered from outermost to innermost dimension.
type Array struct {
	data    []float64
	shape   []int
	strides []int
}

func New(shape ...int) (*Array, error) {
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return nil, fmt.Errorf("ndarray: invalid dimension size %d", d)
		}
		n *= d
	}
	if len(shape) == 0 {
		return nil, fmt.Errorf("ndarray: empty shape")
	}
	a := &Array{
		data:  make([]float64, n),
		shape: append([]int(nil), shape...),
	}
	a.strides = stridesFor(a.shape)
	return a, nil
}

// FromSlice wraps data in an Array of the given shape. The slice is not
// copied; len(data) must equal the product of the dimensions.
func FromSlice(data []float64, shape ...int) (*Array, error) {
	a, err := New(shape...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(a.data) {
		return nil, fmt.Errorf("ndarray: data length %d does not fit shape %v", len(data), shape)
	}
	a.data = data
	return a, nil
}

func stridesFor(shape []int) []int {
	strides := make([]int, len(shape))
	s := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = s
		s *= shape[i]
	}
	return strides
}

func (a *Array) Rank() int { return len(a.shape) }
func (a *Array) Len() int { return len(a.data) }

func (a *Array) Shape() []int {
	return append([]int(nil), a.shape...)
}

func (a *Array) Dim(axis int) int { return a.shape[axis] }

// Data returns the underlying backing slice.
func (a *Array) Data() []float64 { return a.data }

// NormAxis resolves a possibly negative axis index to 0..Rank()-1.
func (a *Array) NormAxis(axis int) (int, error) {
	n := a.Rank()
	if axis < 0 {
		axis += n
	}
	if axis < 0 || axis >= n {
		return 0, fmt.Errorf("ndarray: axis %d out of range for rank %d", axis, n)
	}
	return axis, nil
}

func (a *Array) offset(ix []int) (int, error) {
	if len(ix) != len(a.shape) {
		return 0, fmt.Errorf("ndarray: got %d indices for rank %d", len(ix), len(a.shape))
	}
	off := 0
	for i, v := range ix {
		if v < 0 || v >= a.shape[i] {
			return 0, fmt.Errorf("ndarray: index %d out of range for axis %d (size %d)", v, i, a.shape[i])
		}
		off += v * a.strides[i]
	}
	return off, nil
}

func (a *Array) At(ix ...int) float64 {
	off, err := a.offset(ix)
	if err != nil {
		panic(err)
	}
	return a.data[off]
}

func (a *Array) Set(v float64, ix ...int) {
	off, err := a.offset(ix)
	if err != nil {
		panic(err)
	}
	a.data[off] = v
}

func (a *Array) At1D(i int) float64 { return a.data[i] }

func (a *Array) Clone() *Array {
	c := &Array{
		data:    append([]float64(nil), a.data...),
		shape:   append([]int(nil), a.shape...),
		strides: append([]int(nil), a.strides...),
	}
	return c
}

// Scaled returns a copy with every value multiplied by f.
func (a *Array) Scaled(f float64) *Array {
	c := a.Clone()
	floats.Scale(f, c.data)
	return c
}

func (a *Array) MinMax() (min, max float64) {
	return floats.Min(a.data), floats.Max(a.data)
}

// Profile extracts the 1D series along axis, holding every other axis at
// the index given in fixed. fixed must have one entry per axis; the entry
// at the profile axis is ignored.
func (a *Array) Profile(axis int, fixed []int) ([]float64, error) {
	axis, err := a.NormAxis(axis)
	if err != nil {
		return nil, err
	}
	if len(fixed) != a.Rank() {
		return nil, fmt.Errorf("ndarray: got %d fixed indices for rank %d", len(fixed), a.Rank())
	}
	ix := append([]int(nil), fixed...)
	ix[axis] = 0
	base, err := a.offset(ix)
	if err != nil {
		return nil, err
	}
	out := make([]float64, a.shape[axis])
	for i := range out {
		out[i] = a.data[base+i*a.strides[axis]]
	}
	return out, nil
}

// Plane extracts the 2D view spanned by (rowAxis, colAxis), holding every
// other axis at the index given in fixed. The result has shape
// (Dim(rowAxis), Dim(colAxis)).
func (a *Array) Plane(rowAxis, colAxis int, fixed []int) (*Array, error) {
	rowAxis, err := a.NormAxis(rowAxis)
	if err != nil {
		return nil, err
	}
	colAxis, err = a.NormAxis(colAxis)
	if err != nil {
		return nil, err
	}
	if rowAxis == colAxis {
		return nil, fmt.Errorf("ndarray: plane axes must differ, got %d twice", rowAxis)
	}
	if len(fixed) != a.Rank() {
		return nil, fmt.Errorf("ndarray: got %d fixed indices for rank %d", len(fixed), a.Rank())
	}
	ix := append([]int(nil), fixed...)
	ix[rowAxis] = 0
	ix[colAxis] = 0
	base, err := a.offset(ix)
	if err != nil {
		return nil, err
	}
	rows, cols := a.shape[rowAxis], a.shape[colAxis]
	out, _ := New(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out.data[r*cols+c] = a.data[base+r*a.strides[rowAxis]+c*a.strides[colAxis]]
		}
	}
	return out, nil
}
