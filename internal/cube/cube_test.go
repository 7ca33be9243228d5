package cube

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/cubeview/internal/coords"
	"github.com/san-kum/cubeview/internal/ndarray"
	"github.com/san-kum/cubeview/internal/units"
)

func testCube(t *testing.T) *Cube {
	t.Helper()
	data, err := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	sys, err := coords.NewSystem(
		coords.Axis{Type: "time", Unit: units.MustParse("s"), RefValue: 10, Delta: 2},
		coords.Axis{Type: "em.wl", Unit: units.MustParse("nm"), RefValue: 500, Delta: 1},
	)
	if err != nil {
		t.Fatal(err)
	}
	c, err := New(data, sys, WithUnit(units.MustParse("DN")))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNew_Validation(t *testing.T) {
	data, _ := ndarray.FromSlice([]float64{1, 2}, 2)
	sys, _ := coords.NewSystem(coords.Axis{Type: "t"})

	if _, err := New(nil, sys); err == nil {
		t.Error("expected error for nil data")
	}
	if _, err := New(data, nil); err == nil {
		t.Error("expected error for nil coords")
	}

	// fewer coordinate axes than array rank is rejected
	d2, _ := ndarray.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	if _, err := New(d2, sys); err == nil {
		t.Error("expected error for too few coordinate axes")
	}
}

func TestAxisWorldCoords(t *testing.T) {
	c := testCube(t)

	world, u, err := c.AxisWorldCoords(0)
	if err != nil {
		t.Fatal(err)
	}
	if u.Symbol != "s" {
		t.Errorf("axis unit = %s, want s", u)
	}
	want := []float64{10, 12}
	for i := range want {
		if math.Abs(world[i]-want[i]) > 1e-12 {
			t.Errorf("world = %v, want %v", world, want)
			break
		}
	}

	// negative axis index resolves to the last axis
	world, u, err = c.AxisWorldCoords(-1)
	if err != nil {
		t.Fatal(err)
	}
	if u.Symbol != "nm" || len(world) != 3 || world[2] != 502 {
		t.Errorf("axis -1: world=%v unit=%s", world, u)
	}
}

func TestPhysicalType(t *testing.T) {
	c := testCube(t)
	if got := c.PhysicalType(0); got != "time" {
		t.Errorf("PhysicalType(0) = %q", got)
	}
	if got := c.PhysicalType(-1); got != "em.wl" {
		t.Errorf("PhysicalType(-1) = %q", got)
	}
	if got := c.PhysicalType(5); got != "" {
		t.Errorf("PhysicalType(5) = %q, want empty", got)
	}
}

func TestConvertedData_UnitUndefined(t *testing.T) {
	c := testCube(t)
	c.Unit = units.Unit{}

	_, err := c.ConvertedData(units.MustParse("count"))
	if !errors.Is(err, ErrUnitUndefined) {
		t.Errorf("expected ErrUnitUndefined, got %v", err)
	}
}

func TestConvertedData(t *testing.T) {
	data, _ := ndarray.FromSlice([]float64{1000, 2000}, 2)
	sys, _ := coords.NewSystem(coords.Axis{Type: "t", Unit: units.MustParse("s"), Delta: 1})
	c, _ := New(data, sys, WithUnit(units.MustParse("m")))

	out, err := c.ConvertedData(units.MustParse("km"))
	if err != nil {
		t.Fatal(err)
	}
	if out.At(0) != 1 || out.At(1) != 2 {
		t.Errorf("converted data = %v", out.Data())
	}
	if c.Data.At(0) != 1000 {
		t.Error("conversion mutated the cube data")
	}
}
