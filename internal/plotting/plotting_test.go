package plotting

import (
	"errors"
	"testing"

	"github.com/san-kum/cubeview/internal/anim"
	"github.com/san-kum/cubeview/internal/coords"
	"github.com/san-kum/cubeview/internal/cube"
	"github.com/san-kum/cubeview/internal/ndarray"
	"github.com/san-kum/cubeview/internal/surface"
	"github.com/san-kum/cubeview/internal/units"
)

func posAxis(typ string) coords.Axis {
	return coords.Axis{Type: typ, Unit: units.MustParse("arcsec"), Delta: 1}
}

func makeCube(t *testing.T, shape []int, withUnit bool, axes ...coords.Axis) *cube.Cube {
	t.Helper()
	arr, err := ndarray.New(shape...)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < arr.Len(); i++ {
		arr.Data()[i] = float64(i)
	}
	if len(axes) == 0 {
		for i := 0; i < len(shape); i++ {
			axes = append(axes, posAxis("custom:axis"))
		}
	}
	sys, err := coords.NewSystem(axes...)
	if err != nil {
		t.Fatal(err)
	}
	var opts []cube.Option
	if withUnit {
		opts = append(opts, cube.WithUnit(units.MustParse("m")))
	}
	c, err := cube.New(arr, sys, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestPlot_Rank1_AlwaysStaticLine(t *testing.T) {
	c := makeCube(t, []int{10}, true)

	for _, axes := range [][]int{nil, {0}, {-1}, {-1, -2}} {
		r, err := Plot(c, Request{ImageAxes: axes})
		if err != nil {
			t.Fatalf("ImageAxes %v: %v", axes, err)
		}
		if r.Kind() != "line" {
			t.Errorf("ImageAxes %v: Kind = %q, want line", axes, r.Kind())
		}
	}
}

func TestPlot_Rank1_DataPassthrough(t *testing.T) {
	arr, _ := ndarray.New(10)
	for i := 0; i < 10; i++ {
		arr.Data()[i] = float64(10 - i)
	}
	sys, _ := coords.NewSystem(coords.Axis{Type: "time", Unit: units.MustParse("s"), RefValue: 100, Delta: 2})
	c, _ := cube.New(arr, sys, cube.WithUnit(units.MustParse("DN")))

	r, err := Plot(c, Request{})
	if err != nil {
		t.Fatal(err)
	}
	lp, ok := r.(*surface.LinePlot)
	if !ok {
		t.Fatalf("expected *surface.LinePlot, got %T", r)
	}
	// x is the world-coordinate lookup over indices 0..9
	if lp.X[0] != 100 || lp.X[9] != 118 {
		t.Errorf("x data = %v", lp.X)
	}
	// y is the raw array
	if lp.Y[0] != 10 || lp.Y[9] != 1 {
		t.Errorf("y data = %v", lp.Y)
	}
}

func TestPlot_Rank2_StaticImage(t *testing.T) {
	c := makeCube(t, []int{5, 5}, true)

	r, err := Plot(c, Request{})
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind() != "image" {
		t.Errorf("Kind = %q, want image", r.Kind())
	}
	if _, ok := r.(*surface.ImagePlot); !ok {
		t.Errorf("expected *surface.ImagePlot, got %T", r)
	}
}

func TestPlot_Rank3_TwoAxes_AnimatedImage(t *testing.T) {
	c := makeCube(t, []int{2, 3, 4}, true)

	r, err := Plot(c, Request{ImageAxes: []int{-1, -2}})
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind() != "image-animation" {
		t.Errorf("Kind = %q, want image-animation", r.Kind())
	}
	ia := r.(*anim.ImageAnimator)
	if ia.ImageAxes() != [2]int{2, 1} {
		t.Errorf("ImageAxes = %v", ia.ImageAxes())
	}

	// default axes behave the same
	r, err = Plot(c, Request{})
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind() != "image-animation" {
		t.Errorf("default axes: Kind = %q", r.Kind())
	}
}

func TestPlot_Rank3_OneAxis_AnimatedLine(t *testing.T) {
	c := makeCube(t, []int{2, 3, 4}, true)

	r, err := Plot(c, Request{ImageAxes: []int{1}})
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind() != "line-animation" {
		t.Fatalf("Kind = %q, want line-animation", r.Kind())
	}
	la := r.(*anim.LineAnimator)
	if la.PlotAxis() != 1 {
		t.Errorf("PlotAxis = %d, want 1", la.PlotAxis())
	}

	// the swept axis gets a world-coordinate range, the others stay unset
	ranges := la.AxisRanges()
	if ranges[1] == nil || len(ranges[1]) != 3 {
		t.Errorf("plot axis range = %v", ranges[1])
	}
	if ranges[0] != nil || ranges[2] != nil {
		t.Errorf("non-plot axis ranges should be nil: %v", ranges)
	}
}

func TestPlot_Rank2_OneAxis_AnimatedLine(t *testing.T) {
	// single-axis override takes precedence over the rank-2 branch
	c := makeCube(t, []int{4, 5}, true)
	r, err := Plot(c, Request{ImageAxes: []int{0}})
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind() != "line-animation" {
		t.Errorf("Kind = %q, want line-animation", r.Kind())
	}
}

func TestPlot_UnitYAxis_RequiresNativeUnit(t *testing.T) {
	// static 1D strategy
	c1 := makeCube(t, []int{6}, false)
	_, err := Plot(c1, Request{UnitYAxis: "km"})
	if !errors.Is(err, cube.ErrUnitUndefined) {
		t.Errorf("static 1D: expected ErrUnitUndefined, got %v", err)
	}

	// animated 1D strategy
	c2 := makeCube(t, []int{2, 6}, false)
	_, err = Plot(c2, Request{ImageAxes: []int{1}, UnitYAxis: "km"})
	if !errors.Is(err, cube.ErrUnitUndefined) {
		t.Errorf("animated 1D: expected ErrUnitUndefined, got %v", err)
	}
}

func TestPlot_UnitConversion(t *testing.T) {
	arr, _ := ndarray.New(4)
	for i := range arr.Data() {
		arr.Data()[i] = float64(i) * 1000
	}
	sys, _ := coords.NewSystem(coords.Axis{Type: "custom:distance", Unit: units.MustParse("m"), Delta: 1000})
	c, _ := cube.New(arr, sys, cube.WithUnit(units.MustParse("m")))

	r, err := Plot(c, Request{UnitXAxis: "km", UnitYAxis: "km"})
	if err != nil {
		t.Fatal(err)
	}
	lp := r.(*surface.LinePlot)
	if lp.X[3] != 3 {
		t.Errorf("x converted = %v", lp.X)
	}
	if lp.Y[3] != 3 {
		t.Errorf("y converted = %v", lp.Y)
	}

	if _, err := Plot(c, Request{UnitXAxis: "parsec"}); err == nil {
		t.Error("expected error for unknown display unit")
	}
}

func TestPlot_DimensionMismatch(t *testing.T) {
	// rank-2 data whose coordinate system has three non-missing axes
	c := makeCube(t, []int{3, 3}, true,
		posAxis("a"), posAxis("b"), posAxis("c"))

	_, err := Plot(c, Request{})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestPlot_MissingAxisSliceDerivation(t *testing.T) {
	// three coordinate axes, middle one missing: derived slice fixes it
	// at index 1 and assigns x/y to the others
	c := makeCube(t, []int{3, 3}, true,
		posAxis("custom:pos.y"),
		coords.Axis{Type: "em.wl", Unit: units.MustParse("nm"), Missing: true},
		posAxis("custom:pos.x"))

	sel, err := DeriveSlice(c)
	if err != nil {
		t.Fatal(err)
	}
	want := surface.SliceDescriptor{
		{Role: surface.RoleX},
		{Role: surface.RoleFixed, Index: 1},
		{Role: surface.RoleY},
	}
	for i := range want {
		if sel[i] != want[i] {
			t.Errorf("slice[%d] = %+v, want %+v", i, sel[i], want[i])
		}
	}

	r, err := Plot(c, Request{})
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind() != "image" {
		t.Errorf("Kind = %q", r.Kind())
	}
}

func TestPlot_ExplicitSurfaceSkipsDerivation(t *testing.T) {
	// mismatched coordinates do not matter when a surface is supplied
	c := makeCube(t, []int{3, 3}, true,
		posAxis("a"), posAxis("b"), posAxis("c"))

	r, err := Plot(c, Request{Surface: surface.New(surface.Options{})})
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind() != "image" {
		t.Errorf("Kind = %q", r.Kind())
	}
}

func TestPlot_NilCube(t *testing.T) {
	if _, err := Plot(nil, Request{}); err == nil {
		t.Error("expected error for nil cube")
	}
}
