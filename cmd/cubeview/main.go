package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/cubeview/internal/anim"
	"github.com/san-kum/cubeview/internal/config"
	"github.com/san-kum/cubeview/internal/cube"
	"github.com/san-kum/cubeview/internal/cubeio"
	"github.com/san-kum/cubeview/internal/export"
	"github.com/san-kum/cubeview/internal/plotting"
	"github.com/san-kum/cubeview/internal/render"
	"github.com/san-kum/cubeview/internal/surface"
	"github.com/spf13/cobra"
)

var (
	axesSpec   string
	unitX      string
	unitY      string
	outPath    string
	title      string
	themeName  string
	cmapName   string
	configFile string
	preset     string
	plotWidth  float64
	plotHeight float64
	termWidth  int
	termHeight int
	frameRate  int
	asciiMode  bool
	gifPath    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cubeview",
		Short: "plot and animate multi-dimensional labeled data cubes",
	}

	infoCmd := &cobra.Command{
		Use:   "info [cube]",
		Short: "describe a cube",
		Args:  cobra.ExactArgs(1),
		RunE:  showInfo,
	}

	renderCmd := &cobra.Command{
		Use:   "render [cube]",
		Short: "render a static plot",
		Args:  cobra.ExactArgs(1),
		RunE:  renderStatic,
	}
	renderCmd.Flags().StringVar(&axesSpec, "axes", "", "image axes, comma separated (default last two)")
	renderCmd.Flags().StringVar(&unitX, "unit-x", "", "x axis display unit")
	renderCmd.Flags().StringVar(&unitY, "unit-y", "", "y axis display unit")
	renderCmd.Flags().StringVar(&outPath, "out", "", "output file (default cubeview.<format>)")
	renderCmd.Flags().StringVar(&title, "title", "", "plot title")
	renderCmd.Flags().StringVar(&cmapName, "cmap", "", "colormap name")
	renderCmd.Flags().Float64Var(&plotWidth, "width", 0, "plot width in inches")
	renderCmd.Flags().Float64Var(&plotHeight, "height", 0, "plot height in inches")
	renderCmd.Flags().BoolVar(&asciiMode, "ascii", false, "draw to the terminal instead of a file")
	renderCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	renderCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	animateCmd := &cobra.Command{
		Use:   "animate [cube]",
		Short: "animate a cube interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnimate,
	}
	animateCmd.Flags().StringVar(&axesSpec, "axes", "", "image axes, comma separated; one axis sweeps a line")
	animateCmd.Flags().StringVar(&unitX, "unit-x", "", "x axis display unit")
	animateCmd.Flags().StringVar(&unitY, "unit-y", "", "data display unit")
	animateCmd.Flags().StringVar(&title, "title", "", "animation title")
	animateCmd.Flags().StringVar(&themeName, "theme", "", "color theme")
	animateCmd.Flags().StringVar(&cmapName, "cmap", "", "colormap name")
	animateCmd.Flags().IntVar(&termWidth, "width", 0, "plot width in terminal cells")
	animateCmd.Flags().IntVar(&termHeight, "height", 0, "plot height in terminal cells")
	animateCmd.Flags().IntVar(&frameRate, "fps", 0, "playback frame rate")
	animateCmd.Flags().StringVar(&gifPath, "gif", "", "recording target path")
	animateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	animateCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	demoCmd := &cobra.Command{
		Use:   "demo [name]",
		Short: "write a demo cube to a json file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writeDemo,
	}
	demoCmd.Flags().StringVar(&outPath, "out", "", "output file (default <name>.json)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [cube]",
		Short: "export cube data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [cube]",
		Short: "export the 1D view as a standalone SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  writeSnapshot,
	}
	snapshotCmd.Flags().StringVar(&axesSpec, "axes", "", "sweep axis for data of rank > 1")
	snapshotCmd.Flags().StringVar(&outPath, "out", "snapshot.svg", "output file")
	snapshotCmd.Flags().StringVar(&themeName, "theme", "", "color theme")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available configuration presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(infoCmd, renderCmd, animateCmd, demoCmd, exportCSVCmd, snapshotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadCube resolves the positional cube argument, either a demo name or
// a json file path.
func loadCube(arg string) (*cube.Cube, error) {
	for _, name := range cubeio.DemoNames() {
		if arg == name {
			return cubeio.Demo(name)
		}
	}
	return cubeio.Load(arg)
}

// resolveConfig layers preset, config file and defaults; CLI flags
// override via the callers checking Changed.
func resolveConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	return cfg, nil
}

func parseAxes(spec string) ([]int, error) {
	if spec == "" {
		return nil, nil
	}
	parts := strings.Split(spec, ",")
	axes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad axis %q: %w", p, err)
		}
		axes = append(axes, n)
	}
	return axes, nil
}

func showInfo(cmd *cobra.Command, args []string) error {
	c, err := loadCube(args[0])
	if err != nil {
		return err
	}

	shape := make([]string, c.Rank())
	for i, d := range c.Data.Shape() {
		shape[i] = strconv.Itoa(d)
	}
	fmt.Printf("shape: %s\n", strings.Join(shape, " x "))
	fmt.Printf("unit: %s\n", c.Unit)
	for k, v := range c.Meta {
		fmt.Printf("%s: %s\n", k, v)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "AXIS\tTYPE\tUNIT\tREF_VALUE\tDELTA\tMISSING")
	for i := 0; i < c.Coords.NAxes(); i++ {
		ax, err := c.Coords.Axis(i)
		if err != nil {
			return err
		}
		missing := ""
		if ax.Missing {
			missing = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%g\t%g\t%s\n",
			i, ax.Type, ax.Unit, ax.RefValue, ax.Delta, missing)
	}
	return w.Flush()
}

func renderStatic(cmd *cobra.Command, args []string) error {
	c, err := loadCube(args[0])
	if err != nil {
		return err
	}
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("cmap") {
		cmapName = cfg.Colormap
	}
	if !cmd.Flags().Changed("width") {
		plotWidth = cfg.Plot.Width
	}
	if !cmd.Flags().Changed("height") {
		plotHeight = cfg.Plot.Height
	}

	axes, err := parseAxes(axesSpec)
	if err != nil {
		return err
	}

	rendered, err := plotting.Plot(c, plotting.Request{
		ImageAxes: axes,
		UnitXAxis: unitX,
		UnitYAxis: unitY,
		Static: surface.Options{
			Title:    title,
			Width:    plotWidth,
			Height:   plotHeight,
			Colormap: cmapName,
		},
	})
	if err != nil {
		return err
	}

	switch r := rendered.(type) {
	case *surface.LinePlot:
		if asciiMode {
			graph := asciigraph.Plot(r.Y,
				asciigraph.Height(14),
				asciigraph.Width(72),
				asciigraph.Caption(title),
			)
			fmt.Println(graph)
			return nil
		}
		out := resolveOut(cfg.Format)
		if err := r.Surface().Save(out); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", out)
	case *surface.ImagePlot:
		if asciiMode {
			fmt.Print(render.Heatmap(r.Array, render.GetColormap(cmapName), 72, 28))
			return nil
		}
		out := resolveOut(cfg.Format)
		if err := r.Surface().Save(out); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", out)
	default:
		return fmt.Errorf("data of this rank animates; use: cubeview animate %s", args[0])
	}
	return nil
}

func resolveOut(format string) string {
	if outPath != "" {
		return outPath
	}
	if format == "" {
		format = "png"
	}
	return "cubeview." + format
}

func runAnimate(cmd *cobra.Command, args []string) error {
	c, err := loadCube(args[0])
	if err != nil {
		return err
	}
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("theme") {
		themeName = cfg.Theme
	}
	if !cmd.Flags().Changed("cmap") {
		cmapName = cfg.Colormap
	}
	if !cmd.Flags().Changed("width") {
		termWidth = cfg.Anim.Width
	}
	if !cmd.Flags().Changed("height") {
		termHeight = cfg.Anim.Height
	}
	if !cmd.Flags().Changed("fps") {
		frameRate = cfg.Anim.FPS
	}
	if !cmd.Flags().Changed("gif") {
		gifPath = cfg.Anim.GIFPath
	}

	axes, err := parseAxes(axesSpec)
	if err != nil {
		return err
	}

	rendered, err := plotting.Plot(c, plotting.Request{
		ImageAxes: axes,
		UnitXAxis: unitX,
		UnitYAxis: unitY,
		Anim: anim.Options{
			Title:    title,
			Width:    termWidth,
			Height:   termHeight,
			Theme:    themeName,
			Colormap: cmapName,
			FPS:      frameRate,
			GIFPath:  gifPath,
		},
	})
	if err != nil {
		return err
	}

	switch a := rendered.(type) {
	case *anim.LineAnimator:
		return a.Run()
	case *anim.ImageAnimator:
		return a.Run()
	default:
		return fmt.Errorf("data of this rank renders statically; use: cubeview render %s", args[0])
	}
}

func writeDemo(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for _, name := range cubeio.DemoNames() {
			fmt.Println(name)
		}
		return nil
	}
	name := args[0]
	c, err := cubeio.Demo(name)
	if err != nil {
		return err
	}
	out := outPath
	if out == "" {
		out = name + ".json"
	}
	if err := cubeio.Save(out, c); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	c, err := loadCube(args[0])
	if err != nil {
		return err
	}
	return cubeio.ExportCSV(os.Stdout, c)
}

func writeSnapshot(cmd *cobra.Command, args []string) error {
	c, err := loadCube(args[0])
	if err != nil {
		return err
	}
	axes, err := parseAxes(axesSpec)
	if err != nil {
		return err
	}

	rendered, err := plotting.Plot(c, plotting.Request{ImageAxes: axes})
	if err != nil {
		return err
	}

	theme := render.GetTheme(themeName)
	var svg string
	switch r := rendered.(type) {
	case *surface.LinePlot:
		svg = export.ProfileToSVG(r.X, r.Y, 640, 400, theme)
	case *anim.LineAnimator:
		svg = export.CanvasToSVG(r.Frame(), 4.0, theme)
	default:
		return fmt.Errorf("snapshot supports 1D views; pass --axes to sweep one axis")
	}
	if svg == "" {
		return fmt.Errorf("nothing to snapshot")
	}
	if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}
