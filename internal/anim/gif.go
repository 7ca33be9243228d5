package anim

import (
	"image"
	"image/color"
	"image/gif"
	"os"

	"github.com/san-kum/cubeview/internal/ndarray"
	"github.com/san-kum/cubeview/internal/render"
)

// Braille dot layout for expanding canvas cells into pixels.
var frameDotBits = [4][2]int{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// canvasFrame rasterizes a braille canvas into a black/white paletted
// image, one dot per sub-pixel block.
func canvasFrame(c *render.Canvas) *image.Paletted {
	charW, charH := 8, 16
	imgW, imgH := c.Width*charW, c.Height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.Black, color.White})
	dotW, dotH := charW/2, charH/4
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			r := c.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&frameDotBits[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, 1)
						}
					}
				}
			}
		}
	}
	return img
}

// planeFrame rasterizes a 2D array through a colormap, scaling each cell
// to a small pixel block. Row 0 lands at the bottom.
func planeFrame(arr *ndarray.Array, cm *render.Colormap) *image.Paletted {
	const cell = 8
	rows, cols := arr.Dim(0), arr.Dim(1)
	pal := make(color.Palette, 0, 64)
	for _, c := range cm.Colors(64) {
		pal = append(pal, c)
	}
	img := image.NewPaletted(image.Rect(0, 0, cols*cell, rows*cell), pal)
	min, max := arr.MinMax()
	span := max - min
	if span == 0 {
		span = 1
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			idx := uint8((arr.At(r, c) - min) / span * 63)
			baseY := (rows - 1 - r) * cell
			for py := 0; py < cell; py++ {
				for px := 0; px < cell; px++ {
					img.SetColorIndex(c*cell+px, baseY+py, idx)
				}
			}
		}
	}
	return img
}

func writeGIF(path string, frames []*image.Paletted, delay int) error {
	if len(frames) == 0 {
		return nil
	}
	anim := gif.GIF{LoopCount: 0}
	for _, f := range frames {
		anim.Image = append(anim.Image, f)
		anim.Delay = append(anim.Delay, delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}
