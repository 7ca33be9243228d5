package cubeio

import (
	"fmt"
	"math"

	"github.com/san-kum/cubeview/internal/coords"
	"github.com/san-kum/cubeview/internal/cube"
	"github.com/san-kum/cubeview/internal/ndarray"
	"github.com/san-kum/cubeview/internal/units"
)

// Demo builds one of the built-in sample cubes.
func Demo(name string) (*cube.Cube, error) {
	switch name {
	case "gauss":
		return demoGauss()
	case "ripple":
		return demoRipple()
	case "wavecube":
		return demoWaveCube()
	case "scan":
		return demoScan()
	}
	return nil, fmt.Errorf("cubeio: unknown demo cube %q (available: %v)", name, DemoNames())
}

// DemoNames lists the built-in sample cubes.
func DemoNames() []string {
	return []string{"gauss", "ripple", "wavecube", "scan"}
}

// demoGauss is a rank-1 spectral line profile.
func demoGauss() (*cube.Cube, error) {
	const n = 50
	arr, err := ndarray.New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		x := (float64(i) - n/2) / 8
		arr.Data()[i] = 100 * math.Exp(-x*x)
	}
	sys, err := coords.NewSystem(
		coords.Axis{Type: "em.wl", Unit: units.MustParse("nm"), RefPixel: 25, RefValue: 656.3, Delta: 0.05},
	)
	if err != nil {
		return nil, err
	}
	return cube.New(arr, sys, cube.WithUnit(units.MustParse("DN")),
		cube.WithMeta(map[string]string{"name": "gauss"}))
}

// demoRipple is a rank-2 image.
func demoRipple() (*cube.Cube, error) {
	const rows, cols = 40, 60
	arr, err := ndarray.New(rows, cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			dy, dx := float64(r-rows/2), float64(c-cols/2)
			d := math.Sqrt(dx*dx + dy*dy)
			arr.Set(math.Sin(d/3)/(1+d/10), r, c)
		}
	}
	sys, err := coords.NewSystem(
		coords.Axis{Type: "custom:pos.y", Unit: units.MustParse("arcsec"), RefPixel: 20, Delta: 0.6},
		coords.Axis{Type: "custom:pos.x", Unit: units.MustParse("arcsec"), RefPixel: 30, Delta: 0.6},
	)
	if err != nil {
		return nil, err
	}
	return cube.New(arr, sys, cube.WithUnit(units.MustParse("DN")),
		cube.WithMeta(map[string]string{"name": "ripple"}))
}

// demoWaveCube is a rank-3 time series of images.
func demoWaveCube() (*cube.Cube, error) {
	const frames, rows, cols = 12, 32, 32
	arr, err := ndarray.New(frames, rows, cols)
	if err != nil {
		return nil, err
	}
	for t := 0; t < frames; t++ {
		phase := 2 * math.Pi * float64(t) / frames
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				dy, dx := float64(r-rows/2), float64(c-cols/2)
				d := math.Sqrt(dx*dx + dy*dy)
				arr.Set(math.Sin(d/2-phase)/(1+d/8), t, r, c)
			}
		}
	}
	sys, err := coords.NewSystem(
		coords.Axis{Type: "time", Unit: units.MustParse("s"), Delta: 12},
		coords.Axis{Type: "custom:pos.y", Unit: units.MustParse("arcsec"), RefPixel: 16, Delta: 0.6},
		coords.Axis{Type: "custom:pos.x", Unit: units.MustParse("arcsec"), RefPixel: 16, Delta: 0.6},
	)
	if err != nil {
		return nil, err
	}
	return cube.New(arr, sys, cube.WithUnit(units.MustParse("DN")),
		cube.WithMeta(map[string]string{"name": "wavecube"}))
}

// demoScan is a rank-2 image whose coordinate system carries an extra
// missing spectral dimension, as produced by a slit scan.
func demoScan() (*cube.Cube, error) {
	const rows, cols = 24, 36
	arr, err := ndarray.New(rows, cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			arr.Set(math.Sin(float64(r)/4)*math.Cos(float64(c)/5), r, c)
		}
	}
	sys, err := coords.NewSystem(
		coords.Axis{Type: "custom:pos.y", Unit: units.MustParse("arcsec"), Delta: 0.5},
		coords.Axis{Type: "em.wl", Unit: units.MustParse("nm"), RefValue: 393.3, Delta: 0.01, Missing: true},
		coords.Axis{Type: "custom:pos.x", Unit: units.MustParse("arcsec"), Delta: 0.5},
	)
	if err != nil {
		return nil, err
	}
	return cube.New(arr, sys, cube.WithUnit(units.MustParse("DN")),
		cube.WithMeta(map[string]string{"name": "scan"}))
}
