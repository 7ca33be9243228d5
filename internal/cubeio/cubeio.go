package cubeio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/cubeview/internal/coords"
	"github.com/san-kum/cubeview/internal/cube"
	"github.com/san-kum/cubeview/internal/ndarray"
	"github.com/san-kum/cubeview/internal/units"
)

type axisJSON struct {
	Type     string  `json:"type"`
	Unit     string  `json:"unit"`
	RefPixel float64 `json:"ref_pixel"`
	RefValue float64 `json:"ref_value"`
	Delta    float64 `json:"delta"`
	Missing  bool    `json:"missing,omitempty"`
}

type cubeJSON struct {
	Shape []int             `json:"shape"`
	Data  []float64         `json:"data"`
	Unit  string            `json:"unit,omitempty"`
	Axes  []axisJSON        `json:"axes"`
	Meta  map[string]string `json:"meta,omitempty"`
}

// Save writes c as an indented JSON cube file.
func Save(path string, c *cube.Cube) error {
	doc := cubeJSON{
		Shape: c.Data.Shape(),
		Data:  c.Data.Data(),
		Unit:  c.Unit.Symbol,
		Meta:  c.Meta,
	}
	for i := 0; i < c.Coords.NAxes(); i++ {
		ax, err := c.Coords.Axis(i)
		if err != nil {
			return err
		}
		doc.Axes = append(doc.Axes, axisJSON{
			Type:     ax.Type,
			Unit:     ax.Unit.Symbol,
			RefPixel: ax.RefPixel,
			RefValue: ax.RefValue,
			Delta:    ax.Delta,
			Missing:  ax.Missing,
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Load reads a JSON cube file.
func Load(path string) (*cube.Cube, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc cubeJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("cubeio: %s: %w", path, err)
	}

	arr, err := ndarray.FromSlice(doc.Data, doc.Shape...)
	if err != nil {
		return nil, fmt.Errorf("cubeio: %s: %w", path, err)
	}

	axes := make([]coords.Axis, len(doc.Axes))
	for i, a := range doc.Axes {
		u, err := units.Parse(a.Unit)
		if err != nil {
			return nil, fmt.Errorf("cubeio: %s, axis %d: %w", path, i, err)
		}
		axes[i] = coords.Axis{
			Type:     a.Type,
			Unit:     u,
			RefPixel: a.RefPixel,
			RefValue: a.RefValue,
			Delta:    a.Delta,
			Missing:  a.Missing,
		}
	}
	sys, err := coords.NewSystem(axes...)
	if err != nil {
		return nil, fmt.Errorf("cubeio: %s: %w", path, err)
	}

	var opts []cube.Option
	if doc.Unit != "" {
		u, err := units.Parse(doc.Unit)
		if err != nil {
			return nil, fmt.Errorf("cubeio: %s: %w", path, err)
		}
		opts = append(opts, cube.WithUnit(u))
	}
	if doc.Meta != nil {
		opts = append(opts, cube.WithMeta(doc.Meta))
	}
	return cube.New(arr, sys, opts...)
}

// ExportCSV streams the cube as one row per element: array indices,
// world coordinates, value.
func ExportCSV(w io.Writer, c *cube.Cube) error {
	rank := c.Rank()

	// world coordinate lookup per axis, done once
	worlds := make([][]float64, rank)
	for ax := 0; ax < rank; ax++ {
		world, _, err := c.AxisWorldCoords(ax)
		if err != nil {
			return err
		}
		worlds[ax] = world
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := make([]string, 0, 2*rank+1)
	for ax := 0; ax < rank; ax++ {
		header = append(header, fmt.Sprintf("i%d", ax))
	}
	for ax := 0; ax < rank; ax++ {
		header = append(header, fmt.Sprintf("world%d", ax))
	}
	header = append(header, "value")
	if err := cw.Write(header); err != nil {
		return err
	}

	shape := c.Data.Shape()
	ix := make([]int, rank)
	for flat := 0; flat < c.Data.Len(); flat++ {
		row := make([]string, 0, 2*rank+1)
		for ax := 0; ax < rank; ax++ {
			row = append(row, strconv.Itoa(ix[ax]))
		}
		for ax := 0; ax < rank; ax++ {
			row = append(row, strconv.FormatFloat(worlds[ax][ix[ax]], 'g', -1, 64))
		}
		row = append(row, strconv.FormatFloat(c.Data.At1D(flat), 'g', -1, 64))
		if err := cw.Write(row); err != nil {
			return err
		}

		// increment the n-d index, innermost axis fastest
		for ax := rank - 1; ax >= 0; ax-- {
			ix[ax]++
			if ix[ax] < shape[ax] {
				break
			}
			ix[ax] = 0
		}
	}
	return nil
}
