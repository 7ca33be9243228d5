package render

import (
	"math"
	"strings"
)

// Braille cells pack 2x4 sub-pixels per character, Unicode offset 0x2800.
var dotBits = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille-cell drawing grid. Sub-pixel resolution is
// (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

func (c *Canvas) SubWidth() int { return c.Width * 2 }
func (c *Canvas) SubHeight() int { return c.Height * 4 }

// Set lights the sub-pixel at (x, y). Out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(dotBits[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line between sub-pixel coordinates with Bresenham
// stepping.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawSeries plots vals across the full canvas width, scaling the value
// range to the canvas height. Constant series draw as a centered line.
func (c *Canvas) DrawSeries(vals []float64) {
	if len(vals) < 2 {
		return
	}
	min, max := vals[0], vals[0]
	for _, v := range vals[1:] {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	span := max - min
	if span == 0 {
		span = 1
	}
	cw, ch := c.SubWidth(), c.SubHeight()
	px, py := 0, 0
	for i, v := range vals {
		x := i * (cw - 1) / (len(vals) - 1)
		y := ch - 1 - int(float64(ch-1)*(v-min)/span)
		if i > 0 {
			c.DrawLine(px, py, x, y)
		}
		px, py = x, y
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
