package coords

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/cubeview/internal/units"
)

func linearAxis(typ string, ref, val, delta float64) Axis {
	return Axis{Type: typ, Unit: units.MustParse("m"), RefPixel: ref, RefValue: val, Delta: delta}
}

func TestPixelToWorld(t *testing.T) {
	sys, err := NewSystem(linearAxis("custom:pos.x", 2, 10, 0.5))
	if err != nil {
		t.Fatal(err)
	}

	world, err := sys.PixelToWorld(0, []float64{0, 2, 4})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{9, 10, 11}
	for i := range want {
		if math.Abs(world[i]-want[i]) > 1e-12 {
			t.Errorf("PixelToWorld = %v, want %v", world, want)
			break
		}
	}

	if _, err := sys.PixelToWorld(3, []float64{0}); !errors.Is(err, ErrAxisRange) {
		t.Errorf("expected ErrAxisRange, got %v", err)
	}
}

func TestMissingAccounting(t *testing.T) {
	sys, _ := NewSystem(
		Axis{Type: "time", Missing: false},
		Axis{Type: "em.wl", Missing: true},
		Axis{Type: "custom:pos.y", Missing: false},
	)

	if got := sys.NotMissing(); got != 2 {
		t.Errorf("NotMissing = %d, want 2", got)
	}

	flags := sys.Missing()
	if len(flags) != 3 || flags[0] || !flags[1] || flags[2] {
		t.Errorf("Missing flags = %v", flags)
	}
}

func TestDataAxis(t *testing.T) {
	sys, _ := NewSystem(
		Axis{Type: "a", Missing: true},
		Axis{Type: "b"},
		Axis{Type: "c", Missing: true},
		Axis{Type: "d"},
	)

	tests := []struct {
		arrayAxis int
		want      int
		ok        bool
	}{
		{0, 1, true},
		{1, 3, true},
		{2, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		got, err := sys.DataAxis(tt.arrayAxis)
		if (err == nil) != tt.ok {
			t.Errorf("DataAxis(%d) error = %v, want ok=%v", tt.arrayAxis, err, tt.ok)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("DataAxis(%d) = %d, want %d", tt.arrayAxis, got, tt.want)
		}
	}
}

func TestNewSystem_Empty(t *testing.T) {
	if _, err := NewSystem(); err == nil {
		t.Error("expected error for empty system")
	}
}
