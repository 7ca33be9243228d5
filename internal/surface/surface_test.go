package surface

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/cubeview/internal/coords"
	"github.com/san-kum/cubeview/internal/ndarray"
	"github.com/san-kum/cubeview/internal/units"
)

func TestLine(t *testing.T) {
	s := New(Options{Title: "test"})
	lp, err := s.Line([]float64{0, 1, 2}, []float64{5, 3, 4}, "time [s]", "Data [DN]")
	if err != nil {
		t.Fatal(err)
	}
	if lp.Kind() != "line" {
		t.Errorf("Kind = %q", lp.Kind())
	}
	if lp.Surface() != s {
		t.Error("handle does not reference its surface")
	}
	if s.Plot().X.Label.Text != "time [s]" || s.Plot().Y.Label.Text != "Data [DN]" {
		t.Error("axis labels not applied")
	}

	if _, err := s.Line([]float64{0, 1}, []float64{1}, "", ""); err == nil {
		t.Error("expected error for mismatched point counts")
	}
}

func TestImage(t *testing.T) {
	arr, _ := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	s := New(Options{Colormap: "heat"})
	ip, err := s.Image(arr, &[4]float64{0, 10, 0, 5}, "")
	if err != nil {
		t.Fatal(err)
	}
	if ip.Kind() != "image" {
		t.Errorf("Kind = %q", ip.Kind())
	}

	arr1, _ := ndarray.FromSlice([]float64{1, 2}, 2)
	if _, err := s.Image(arr1, nil, ""); err == nil {
		t.Error("expected error for rank-1 image data")
	}
}

func TestFromCoords(t *testing.T) {
	sys, _ := coords.NewSystem(
		coords.Axis{Type: "custom:pos.y", Unit: units.MustParse("arcsec")},
		coords.Axis{Type: "em.wl", Unit: units.MustParse("nm"), Missing: true},
		coords.Axis{Type: "custom:pos.x", Unit: units.MustParse("arcsec")},
	)

	sel := SliceDescriptor{
		{Role: RoleY},
		{Role: RoleFixed, Index: 1},
		{Role: RoleX},
	}
	s, err := FromCoords(sys, sel, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if s.Plot().X.Label.Text != "custom:pos.x [arcsec]" {
		t.Errorf("x label = %q", s.Plot().X.Label.Text)
	}
	if s.Plot().Y.Label.Text != "custom:pos.y [arcsec]" {
		t.Errorf("y label = %q", s.Plot().Y.Label.Text)
	}

	if _, err := FromCoords(sys, SliceDescriptor{{Role: RoleX}}, Options{}); err == nil {
		t.Error("expected error for short slice descriptor")
	}
	if _, err := FromCoords(nil, sel, Options{}); err == nil {
		t.Error("expected error for nil system")
	}
}

func TestSave(t *testing.T) {
	s := New(Options{Width: 2, Height: 2})
	if _, err := s.Line([]float64{0, 1}, []float64{1, 0}, "x", "y"); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.png")
	if err := s.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
}
