// Package plotting dispatches a cube to one of four rendering
// strategies based on array rank and the requested axis roles: animated
// 1D line, animated 2D image, static 2D image, or static 1D line.
package plotting

import (
	"errors"
	"fmt"

	"github.com/san-kum/cubeview/internal/anim"
	"github.com/san-kum/cubeview/internal/cube"
	"github.com/san-kum/cubeview/internal/surface"
	"github.com/san-kum/cubeview/internal/units"
)

// ErrDimensionMismatch indicates the coordinate system's non-missing
// dimension count does not match the two requested image axes.
var ErrDimensionMismatch = errors.New("plotting: coordinate and data dimensions do not match")

// Rendered is the opaque handle returned by every strategy. The concrete
// types are surface.LinePlot, surface.ImagePlot, anim.LineAnimator and
// anim.ImageAnimator.
type Rendered interface {
	Kind() string
}

// Request selects the strategy and carries pass-through rendering
// options for one Plot call.
type Request struct {
	// ImageAxes names the array dimensions forming the displayed image,
	// x first. Nil defaults to the last two dimensions, [-1, -2]. A
	// single-element value selects the animated line strategy sweeping
	// that axis.
	ImageAxes []int

	// Display units by symbol; empty means the native unit.
	UnitXAxis string
	UnitYAxis string

	// AxisRanges carries explicit per-axis world values for animated
	// strategies; nil entries mean index-based ranges.
	AxisRanges [][]float64

	// Surface is the target for the static 2D strategy. When nil, a
	// default surface is derived from the cube's coordinate system.
	Surface *surface.Surface

	// Static rendering options, passed through to the surface.
	Static surface.Options

	// Animation options, passed through to the animators.
	Anim anim.Options
}

// Plot renders c according to req. Strategy selection:
//
//  1. ImageAxes defaults to [-1, -2].
//  2. A single requested axis on data of rank > 1 selects the animated
//     1D line strategy sweeping that axis.
//  3. Otherwise rank decides: >= 3 animated 2D image, == 2 static 2D
//     image, == 1 static 1D line.
//
// All validation errors surface before any rendering call; no state is
// retained between invocations.
func Plot(c *cube.Cube, req Request) (Rendered, error) {
	if c == nil {
		return nil, errors.New("plotting: nil cube")
	}
	imageAxes := req.ImageAxes
	if len(imageAxes) == 0 {
		imageAxes = []int{-1, -2}
	}

	if len(imageAxes) == 1 && c.Rank() > 1 {
		return animateLine(c, imageAxes[0], req)
	}

	switch {
	case c.Rank() >= 3:
		return animateImage(c, imageAxes, req)
	case c.Rank() == 2:
		return plotImage(c, req)
	case c.Rank() == 1:
		return plotLine(c, req)
	}
	return nil, fmt.Errorf("plotting: cannot plot rank-%d data with image axes %v", c.Rank(), imageAxes)
}

// animateLine is the animated 1D line strategy: world coordinates along
// the swept axis become that axis's range, all other ranges stay unset.
func animateLine(c *cube.Cube, plotAxis int, req Request) (Rendered, error) {
	plotAxis, err := c.Data.NormAxis(plotAxis)
	if err != nil {
		return nil, err
	}
	xdata, xunit, err := c.AxisWorldCoords(plotAxis)
	if err != nil {
		return nil, err
	}
	if req.UnitXAxis != "" {
		to, err := units.Parse(req.UnitXAxis)
		if err != nil {
			return nil, err
		}
		if xdata, err = units.Convert(xdata, xunit, to); err != nil {
			return nil, err
		}
		xunit = to
	}

	data := c.Data
	yunit := c.Unit
	if req.UnitYAxis != "" {
		if !c.HasUnit() {
			return nil, cube.ErrUnitUndefined
		}
		to, err := units.Parse(req.UnitYAxis)
		if err != nil {
			return nil, err
		}
		if data, err = c.ConvertedData(to); err != nil {
			return nil, err
		}
		yunit = to
	}

	axisRanges := make([][]float64, c.Rank())
	axisRanges[plotAxis] = xdata

	xlabel := fmt.Sprintf("%s [%s]", c.PhysicalType(plotAxis), xunit)
	ylabel := fmt.Sprintf("Data [%s]", yunit)
	return anim.NewLineAnimator(data, plotAxis, axisRanges, xlabel, ylabel, req.Anim)
}

// animateImage is the animated 2D image strategy: a pure pass-through of
// the array, coordinate system, axis selection, units and ranges.
func animateImage(c *cube.Cube, imageAxes []int, req Request) (Rendered, error) {
	if len(imageAxes) != 2 {
		return nil, fmt.Errorf("plotting: image animation needs 2 image axes, got %d", len(imageAxes))
	}
	return anim.NewImageAnimator(c.Data, c.Coords, [2]int{imageAxes[0], imageAxes[1]},
		req.UnitXAxis, req.UnitYAxis, req.AxisRanges, req.Anim)
}

// plotImage is the static 2D image strategy. Without an explicit surface
// one is derived from the coordinate system by reducing it to a 2-axis
// view: non-missing dimensions take the next image-axis role in order,
// missing dimensions are fixed at index 1.
func plotImage(c *cube.Cube, req Request) (Rendered, error) {
	surf := req.Surface
	if surf == nil {
		sel, err := DeriveSlice(c)
		if err != nil {
			return nil, err
		}
		if surf, err = surface.FromCoords(c.Coords, sel, req.Static); err != nil {
			return nil, err
		}
	}
	return surf.Image(c.Data, nil, req.Static.Colormap)
}

// DeriveSlice reduces the cube's coordinate system to the 2-axis view
// used by the default static surface. The non-missing dimension count
// must be exactly 2.
func DeriveSlice(c *cube.Cube) (surface.SliceDescriptor, error) {
	roles := [2]surface.Role{surface.RoleX, surface.RoleY}
	sel := make(surface.SliceDescriptor, c.Coords.NAxes())
	assigned := 0
	for i, missing := range c.Coords.Missing() {
		if missing {
			sel[i] = surface.AxisSelection{Role: surface.RoleFixed, Index: 1}
			continue
		}
		if assigned < 2 {
			sel[i] = surface.AxisSelection{Role: roles[assigned]}
		}
		assigned++
	}
	if assigned != 2 {
		return nil, fmt.Errorf("%w: %d non-missing coordinate axes for 2 image axes", ErrDimensionMismatch, assigned)
	}
	return sel, nil
}

// plotLine is the static 1D line strategy.
func plotLine(c *cube.Cube, req Request) (Rendered, error) {
	xdata, xunit, err := c.AxisWorldCoords(0)
	if err != nil {
		return nil, err
	}
	if req.UnitXAxis != "" {
		to, err := units.Parse(req.UnitXAxis)
		if err != nil {
			return nil, err
		}
		if xdata, err = units.Convert(xdata, xunit, to); err != nil {
			return nil, err
		}
		xunit = to
	}

	ydata := c.Data.Data()
	yunit := c.Unit
	if req.UnitYAxis != "" {
		if !c.HasUnit() {
			return nil, cube.ErrUnitUndefined
		}
		to, err := units.Parse(req.UnitYAxis)
		if err != nil {
			return nil, err
		}
		converted, err := c.ConvertedData(to)
		if err != nil {
			return nil, err
		}
		ydata = converted.Data()
		yunit = to
	}

	surf := req.Surface
	if surf == nil {
		surf = surface.New(req.Static)
	}
	xlabel := fmt.Sprintf("%s [%s]", c.PhysicalType(0), xunit)
	ylabel := fmt.Sprintf("Data [%s]", yunit)
	return surf.Line(xdata, ydata, xlabel, ylabel)
}
