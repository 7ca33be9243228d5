package units

import (
	"errors"
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	u, err := Parse("km")
	if err != nil {
		t.Fatal(err)
	}
	if u.Symbol != "km" || u.Quantity != Length {
		t.Errorf("unexpected unit %+v", u)
	}

	if _, err := Parse("furlong"); !errors.Is(err, ErrUnknown) {
		t.Errorf("expected ErrUnknown, got %v", err)
	}

	u, err = Parse("")
	if err != nil {
		t.Fatal(err)
	}
	if u.Defined() {
		t.Error("empty symbol should parse to the undefined unit")
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		from, to string
		in       float64
		want     float64
	}{
		{"km", "m", 1.5, 1500},
		{"m", "nm", 1, 1e9},
		{"min", "s", 2, 120},
		{"GHz", "Hz", 0.5, 5e8},
		{"deg", "arcsec", 1, 3600},
		{"rad", "deg", math.Pi, 180},
	}
	for _, tt := range tests {
		got, err := Convert([]float64{tt.in}, MustParse(tt.from), MustParse(tt.to))
		if err != nil {
			t.Errorf("Convert %s->%s: %v", tt.from, tt.to, err)
			continue
		}
		if math.Abs(got[0]-tt.want) > 1e-6*math.Abs(tt.want) {
			t.Errorf("Convert %v %s->%s = %v, want %v", tt.in, tt.from, tt.to, got[0], tt.want)
		}
	}
}

func TestConvert_Incompatible(t *testing.T) {
	_, err := Convert([]float64{1}, MustParse("m"), MustParse("s"))
	if !errors.Is(err, ErrIncompatible) {
		t.Errorf("expected ErrIncompatible, got %v", err)
	}
}

func TestConvert_Undefined(t *testing.T) {
	_, err := Convert([]float64{1}, Unit{}, MustParse("s"))
	if err == nil {
		t.Error("expected error converting from undefined unit")
	}
}

func TestString(t *testing.T) {
	if (Unit{}).String() != "None" {
		t.Errorf("undefined unit String() = %q", (Unit{}).String())
	}
	if MustParse("arcsec").String() != "arcsec" {
		t.Error("defined unit should render its symbol")
	}
}
