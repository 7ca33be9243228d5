package anim

import (
	"fmt"
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/cubeview/internal/ndarray"
	"github.com/san-kum/cubeview/internal/render"
)

// LineAnimator sweeps one array axis as a line plot and exposes a slider
// for every other axis. It is a bubbletea model; Run starts the program.
type LineAnimator struct {
	arr        *ndarray.Array
	plotAxis   int
	axisRanges [][]float64 // one entry per axis, nil means index-based
	xlabel     string
	ylabel     string

	idx       []int // current slider position per axis
	sliders   []int // axes other than plotAxis, in order
	active    int   // position in sliders
	playing   bool
	theme     render.Theme
	opts      Options
	recording bool
	frames    []*image.Paletted
	canvas    *render.Canvas
}

// NewLineAnimator prepares a line animation over arr sweeping plotAxis.
// axisRanges may be nil; when given it needs one entry per array axis,
// nil entries meaning index-based ranges.
func NewLineAnimator(arr *ndarray.Array, plotAxis int, axisRanges [][]float64, xlabel, ylabel string, opts Options) (*LineAnimator, error) {
	plotAxis, err := arr.NormAxis(plotAxis)
	if err != nil {
		return nil, err
	}
	if arr.Rank() < 2 {
		return nil, fmt.Errorf("anim: line animation needs rank > 1, got %d", arr.Rank())
	}
	if axisRanges == nil {
		axisRanges = make([][]float64, arr.Rank())
	}
	if len(axisRanges) != arr.Rank() {
		return nil, fmt.Errorf("anim: got %d axis ranges for rank %d", len(axisRanges), arr.Rank())
	}
	for ax, r := range axisRanges {
		if r != nil && len(r) != arr.Dim(ax) {
			return nil, fmt.Errorf("anim: range for axis %d has %d values, axis size is %d", ax, len(r), arr.Dim(ax))
		}
	}
	opts = opts.withDefaults()
	sliders := make([]int, 0, arr.Rank()-1)
	for ax := 0; ax < arr.Rank(); ax++ {
		if ax != plotAxis {
			sliders = append(sliders, ax)
		}
	}
	return &LineAnimator{
		arr:        arr,
		plotAxis:   plotAxis,
		axisRanges: axisRanges,
		xlabel:     xlabel,
		ylabel:     ylabel,
		idx:        make([]int, arr.Rank()),
		sliders:    sliders,
		theme:      render.GetTheme(opts.Theme),
		opts:       opts,
		canvas:     render.NewCanvas(opts.Width, opts.Height),
	}, nil
}

func (a *LineAnimator) Kind() string { return "line-animation" }
func (a *LineAnimator) PlotAxis() int { return a.plotAxis }
func (a *LineAnimator) AxisRanges() [][]float64 { return a.axisRanges }
func (a *LineAnimator) SliderAxes() []int { return append([]int(nil), a.sliders...) }
func (a *LineAnimator) Labels() (x, y string) { return a.xlabel, a.ylabel }
func (a *LineAnimator) Indices() []int { return append([]int(nil), a.idx...) }

// Profile returns the data series currently selected by the sliders.
func (a *LineAnimator) Profile() []float64 {
	p, err := a.arr.Profile(a.plotAxis, a.idx)
	if err != nil {
		return nil
	}
	return p
}

// Frame draws the current profile onto the braille canvas and returns it.
func (a *LineAnimator) Frame() *render.Canvas {
	a.canvas.Clear()
	a.canvas.DrawSeries(a.Profile())
	return a.canvas
}

// Run starts the interactive program and blocks until it exits.
func (a *LineAnimator) Run() error {
	_, err := tea.NewProgram(a, tea.WithAltScreen()).Run()
	return err
}

func (a *LineAnimator) Init() tea.Cmd { return tick(a.opts.FPS) }

func (a *LineAnimator) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			a.frames = append(a.frames, canvasFrame(a.Frame()))
		}
		return a, tick(a.opts.FPS)
	}
	return a, nil
}

// Step moves the active slider by delta, wrapping at the axis bounds.
func (a *LineAnimator) Step(delta int) {
	if len(a.sliders) == 0 {
		return
	}
	ax := a.sliders[a.active]
	size := a.arr.Dim(ax)
	a.idx[ax] = ((a.idx[ax]+delta)%size + size) % size
}

func (a *LineAnimator) View() string {
	var b strings.Builder
	header := lipgloss.NewStyle().Foreground(a.theme.Primary).Bold(true)
	title := a.opts.Title
	if title == "" {
		title = "line sweep"
	}
	b.WriteString(header.Render(title) + "\n")
	if a.ylabel != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(a.theme.Muted).Render(a.ylabel) + "\n")
	}

	profile := a.Profile()
	if len(profile) > 1 {
		chart := asciigraph.Plot(profile,
			asciigraph.Height(a.opts.Height),
			asciigraph.Width(a.opts.Width),
			asciigraph.Caption(a.xlabel),
		)
		b.WriteString(lipgloss.NewStyle().Foreground(a.theme.Secondary).Render(chart) + "\n")
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
	b.WriteString("\n" + lipgloss.NewStyle().Foreground(a.theme.Muted).Render(status+helpLine) + "\n")
	return b.String()
}
