package surface

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/cubeview/internal/coords"
	"github.com/san-kum/cubeview/internal/ndarray"
	"github.com/san-kum/cubeview/internal/render"
)

// Role assigns a drawing-surface role to one coordinate dimension.
type Role int

const (
	RoleFixed Role = iota // dimension held at a fixed index
	RoleX
	RoleY
)

// AxisSelection is one entry of a SliceDescriptor: either an image-axis
// role or a fixed pixel index for a missing dimension.
type AxisSelection struct {
	Role  Role
	Index int
}

// SliceDescriptor reduces a coordinate system to a 2-axis view, one entry
// per coordinate dimension.
type SliceDescriptor []AxisSelection

// Options are the static rendering options. Zero values fall back to
// defaults at draw time.
type Options struct {
	Title    string
	Width    float64 // inches
	Height   float64 // inches
	Colormap string
}

func (o Options) size() (vg.Length, vg.Length) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = 8
	}
	if h <= 0 {
		h = 6
	}
	return vg.Length(w) * vg.Inch, vg.Length(h) * vg.Inch
}

// Surface is an explicit drawing surface. There is no ambient current
// surface; callers that want default behavior construct one with New or
// FromCoords and pass it along.
type Surface struct {
	p    *plot.Plot
	opts Options
}

func New(opts Options) *Surface {
	p := plot.New()
	p.Title.Text = opts.Title
	p.Add(plotter.NewGrid())
	return &Surface{p: p, opts: opts}
}

// FromCoords builds a surface whose axis labels come from the coordinate
// dimensions selected as x and y by the slice descriptor.
func FromCoords(sys *coords.System, sel SliceDescriptor, opts Options) (*Surface, error) {
	if sys == nil {
		return nil, errors.New("surface: nil coordinate system")
	}
	if len(sel) != sys.NAxes() {
		return nil, fmt.Errorf("surface: slice descriptor has %d entries for %d coordinate axes", len(sel), sys.NAxes())
	}
	s := New(opts)
	for i, a := range sel {
		if a.Role == RoleFixed {
			continue
		}
		ax, err := sys.Axis(i)
		if err != nil {
			return nil, err
		}
		label := fmt.Sprintf("%s [%s]", ax.Type, ax.Unit)
		switch a.Role {
		case RoleX:
			s.p.X.Label.Text = label
		case RoleY:
			s.p.Y.Label.Text = label
		}
	}
	return s, nil
}

// Plot exposes the underlying gonum plot for pass-through options.
func (s *Surface) Plot() *plot.Plot { return s.p }

// Save writes the surface to path; the format follows the file extension
// (.png, .svg, .pdf).
func (s *Surface) Save(path string) error {
	w, h := s.opts.size()
	return s.p.Save(w, h, path)
}

// Line draws y against x as a line plot and returns the handle.
func (s *Surface) Line(x, y []float64, xlabel, ylabel string) (*LinePlot, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("surface: x has %d points, y has %d", len(x), len(y))
	}
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	if xlabel != "" {
		s.p.X.Label.Text = xlabel
	}
	if ylabel != "" {
		s.p.Y.Label.Text = ylabel
	}
	s.p.Add(line)
	return &LinePlot{surf: s, X: x, Y: y}, nil
}

// Image draws a 2D array as a heat map. extent, when non-nil, gives the
// world-coordinate bounds [xmin, xmax, ymin, ymax]; otherwise pixel
// indices are used.
func (s *Surface) Image(arr *ndarray.Array, extent *[4]float64, cmapName string) (*ImagePlot, error) {
	if arr.Rank() != 2 {
		return nil, fmt.Errorf("surface: image needs a rank-2 array, got rank %d", arr.Rank())
	}
	if cmapName == "" {
		cmapName = s.opts.Colormap
	}
	g := &grid{arr: arr}
	g.dx, g.dy = 1, 1
	if extent != nil {
		g.x0, g.y0 = extent[0], extent[2]
		if n := arr.Dim(1); n > 1 {
			g.dx = (extent[1] - extent[0]) / float64(n-1)
		}
		if n := arr.Dim(0); n > 1 {
			g.dy = (extent[3] - extent[2]) / float64(n-1)
		}
	}
	heat := plotter.NewHeatMap(g, ramp{render.GetColormap(cmapName).Colors(64)})
	s.p.Add(heat)
	return &ImagePlot{surf: s, Array: arr}, nil
}

// LinePlot is the opaque handle for a rendered static line plot.
type LinePlot struct {
	surf *Surface
	X, Y []float64
}

func (p *LinePlot) Kind() string { return "line" }
func (p *LinePlot) Surface() *Surface { return p.surf }

// ImagePlot is the opaque handle for a rendered static image plot.
type ImagePlot struct {
	surf  *Surface
	Array *ndarray.Array
}

func (p *ImagePlot) Kind() string { return "image" }
func (p *ImagePlot) Surface() *Surface { return p.surf }

// grid adapts an Array to plotter.GridXYZ. Array dimension 0 is y, 1 is x.
type grid struct {
	arr    *ndarray.Array
	x0, dx float64
	y0, dy float64
}

func (g *grid) Dims() (c, r int) { return g.arr.Dim(1), g.arr.Dim(0) }
func (g *grid) Z(c, r int) float64 { return g.arr.At(r, c) }
func (g *grid) X(c int) float64 { return g.x0 + float64(c)*g.dx }
func (g *grid) Y(r int) float64 { return g.y0 + float64(r)*g.dy }

// ramp adapts sampled colormap colors to palette.Palette.
type ramp struct {
	colors []color.Color
}

func (r ramp) Colors() []color.Color { return r.colors }
