package config

var Presets = map[string]*Config{
	"screen": {
		Theme: "observatory", Colormap: "viridis", Format: "png",
		Plot: PlotConfig{Width: 8, Height: 6},
		Anim: AnimConfig{Width: 72, Height: 14, FPS: 15, GIFPath: "cubeview.gif"},
	},
	"paper": {
		Theme: "mono", Colormap: "gray", Format: "svg",
		Plot: PlotConfig{Width: 6, Height: 4.5},
		Anim: AnimConfig{Width: 72, Height: 14, FPS: 10, GIFPath: "cubeview.gif"},
	},
	"terminal": {
		Theme: "solar", Colormap: "heat", Format: "png",
		Plot: PlotConfig{Width: 8, Height: 6},
		Anim: AnimConfig{Width: 100, Height: 20, FPS: 24, GIFPath: "cubeview.gif"},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
