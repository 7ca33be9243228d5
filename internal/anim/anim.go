package anim

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/cubeview/internal/render"
)

// Options configure an interactive animator. Zero values fall back to
// defaults.
type Options struct {
	Title    string
	Width    int // plot area width in terminal cells
	Height   int // plot area height in terminal cells
	Theme    string
	Colormap string
	FPS      int
	GIFPath  string // target for recorded frames, default cubeview.gif
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 72
	}
	if o.Height <= 0 {
		o.Height = 14
	}
	if o.FPS <= 0 {
		o.FPS = 15
	}
	if o.GIFPath == "" {
		o.GIFPath = "cubeview.gif"
	}
	return o
}

type tickMsg time.Time

func tick(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return tickMsg(t) })
}

const helpLine = "tab:slider  ←/→:step  space:play  g:record  t:theme  q:quit"

// sliderView renders one slider row: axis label, position bar, and the
// world coordinate (or index) at the current position.
func sliderView(theme render.Theme, label string, pos, size int, value string, active bool) string {
	barWidth := 16
	filled := 0
	if size > 1 {
		filled = pos * barWidth / (size - 1)
	}
	bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
	line := fmt.Sprintf("%-14s %s %3d/%d  %s", label, bar, pos, size-1, value)
	if active {
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("> " + line)
	}
	return lipgloss.NewStyle().Foreground(theme.Muted).Render("  " + line)
}

// rangeValue formats the slider's world coordinate when a range is
// attached, or the bare index otherwise.
func rangeValue(ranges [][]float64, axis, pos int) string {
	if axis < len(ranges) && ranges[axis] != nil && pos < len(ranges[axis]) {
		return fmt.Sprintf("%.4g", ranges[axis][pos])
	}
	return fmt.Sprintf("%d", pos)
}
