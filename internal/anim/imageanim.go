package anim

import (
	"fmt"
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/cubeview/internal/coords"
	"github.com/san-kum/cubeview/internal/ndarray"
	"github.com/san-kum/cubeview/internal/render"
)

// ImageAnimator displays a 2D plane of the array as a terminal heatmap
// and slides through the remaining axes. The coordinate system, image
// axes, display units and ranges arrive as-is from the dispatcher; the
// animator does no further transformation of them.
type ImageAnimator struct {
	arr        *ndarray.Array
	sys        *coords.System
	imageAxes  [2]int // [x, y] array axes
	unitX      string
	unitY      string
	axisRanges [][]float64

	idx       []int
	sliders   []int
	active    int
	playing   bool
	theme     render.Theme
	cmap      *render.Colormap
	opts      Options
	recording bool
	frames    []*image.Paletted
}

// NewImageAnimator prepares an image animation over arr. imageAxes gives
// the [x, y] array axes forming the displayed plane.
func NewImageAnimator(arr *ndarray.Array, sys *coords.System, imageAxes [2]int, unitX, unitY string, axisRanges [][]float64, opts Options) (*ImageAnimator, error) {
	if arr.Rank() < 3 {
		return nil, fmt.Errorf("anim: image animation needs rank >= 3, got %d", arr.Rank())
	}
	x, err := arr.NormAxis(imageAxes[0])
	if err != nil {
		return nil, err
	}
	y, err := arr.NormAxis(imageAxes[1])
	if err != nil {
		return nil, err
	}
	if x == y {
		return nil, fmt.Errorf("anim: image axes must differ, got %d twice", x)
	}
	if axisRanges != nil && len(axisRanges) != arr.Rank() {
		return nil, fmt.Errorf("anim: got %d axis ranges for rank %d", len(axisRanges), arr.Rank())
	}
	if axisRanges == nil {
		axisRanges = make([][]float64, arr.Rank())
	}
	opts = opts.withDefaults()
	theme := render.GetTheme(opts.Theme)
	cmapName := opts.Colormap
	if cmapName == "" {
		cmapName = theme.Colormap
	}
	sliders := make([]int, 0, arr.Rank()-2)
	for ax := 0; ax < arr.Rank(); ax++ {
		if ax != x && ax != y {
			sliders = append(sliders, ax)
		}
	}
	return &ImageAnimator{
		arr:        arr,
		sys:        sys,
		imageAxes:  [2]int{x, y},
		unitX:      unitX,
		unitY:      unitY,
		axisRanges: axisRanges,
		idx:        make([]int, arr.Rank()),
		sliders:    sliders,
		theme:      theme,
		cmap:       render.GetColormap(cmapName),
		opts:       opts,
	}, nil
}

func (a *ImageAnimator) Kind() string { return "image-animation" }
func (a *ImageAnimator) ImageAxes() [2]int { return a.imageAxes }
func (a *ImageAnimator) SliderAxes() []int { return append([]int(nil), a.sliders...) }
func (a *ImageAnimator) AxisRanges() [][]float64 { return a.axisRanges }
func (a *ImageAnimator) Units() (x, y string) { return a.unitX, a.unitY }
func (a *ImageAnimator) Indices() []int { return append([]int(nil), a.idx...) }

// Plane returns the 2D view currently selected by the sliders, with the
// y image axis as rows and the x image axis as columns.
func (a *ImageAnimator) Plane() *ndarray.Array {
	p, err := a.arr.Plane(a.imageAxes[1], a.imageAxes[0], a.idx)
	if err != nil {
		return nil
	}
	return p
}

// Run starts the interactive program and blocks until it exits.
func (a *ImageAnimator) Run() error {
	_, err := tea.NewProgram(a, tea.WithAltScreen()).Run()
	return err
}

func (a *ImageAnimator) Init() tea.Cmd { return tick(a.opts.FPS) }

func (a *ImageAnimator) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "tab":
			if len(a.sliders) > 0 {
				a.active = (a.active + 1) % len(a.sliders)
			}
		case "left", "h":
			a.Step(-1)
		case "right", "l":
			a.Step(1)
		case " ":
			a.playing = !a.playing
		case "t":
			a.theme = render.NextTheme(a.theme.Name)
			if a.opts.Colormap == "" {
				a.cmap = render.GetColormap(a.theme.Colormap)
			}
		case "g":
			if a.recording {
				a.recording = false
				writeGIF(a.opts.GIFPath, a.frames, 100/a.opts.FPS)
				a.frames = nil
			} else {
				a.recording = true
			}
		}
	case tickMsg:
		if a.playing {
			a.Step(1)
		}
		if a.recording {
			if p := a.Plane(); p != nil {
				a.frames = append(a.frames, planeFrame(p, a.cmap))
			}
		}
		return a, tick(a.opts.FPS)
	}
	return a, nil
}

// Step moves the active slider by delta, wrapping at the axis bounds.
func (a *ImageAnimator) Step(delta int) {
	if len(a.sliders) == 0 {
		return
	}
	ax := a.sliders[a.active]
	size := a.arr.Dim(ax)
	a.idx[ax] = ((a.idx[ax]+delta)%size + size) % size
}

// axisLabel derives a display label for an array axis from the
// coordinate system and requested display unit.
func (a *ImageAnimator) axisLabel(arrayAxis int, unit string) string {
	if a.sys == nil {
		return fmt.Sprintf("axis %d", arrayAxis)
	}
	coordAxis, err := a.sys.DataAxis(arrayAxis)
	if err != nil {
		return fmt.Sprintf("axis %d", arrayAxis)
	}
	ax, err := a.sys.Axis(coordAxis)
	if err != nil {
		return fmt.Sprintf("axis %d", arrayAxis)
	}
	if unit == "" {
		unit = ax.Unit.String()
	}
	return fmt.Sprintf("%s [%s]", ax.Type, unit)
}

func (a *ImageAnimator) View() string {
	var b strings.Builder
	header := lipgloss.NewStyle().Foreground(a.theme.Primary).Bold(true)
	title := a.opts.Title
	if title == "" {
		title = "image sweep"
	}
	b.WriteString(header.Render(title) + "\n")

	muted := lipgloss.NewStyle().Foreground(a.theme.Muted)
	b.WriteString(muted.Render(fmt.Sprintf("x: %s   y: %s   cmap: %s",
		a.axisLabel(a.imageAxes[0], a.unitX),
		a.axisLabel(a.imageAxes[1], a.unitY),
		a.cmap.Name)) + "\n\n")

	if p := a.Plane(); p != nil {
		b.WriteString(render.Heatmap(p, a.cmap, a.opts.Width, 2*a.opts.Height))
	}

	if len(a.sliders) > 0 {
		b.WriteString("\n")
		for i, ax := range a.sliders {
			label := fmt.Sprintf("axis %d", ax)
			val := rangeValue(a.axisRanges, ax, a.idx[ax])
			b.WriteString(sliderView(a.theme, label, a.idx[ax], a.arr.Dim(ax), val, i == a.active) + "\n")
		}
	}

	status := ""
	if a.playing {
		status = "playing  "
	}
	if a.recording {
		status += "recording  "
	}
	b.WriteString("\n" + muted.Render(status+helpLine) + "\n")
	return b.String()
}
