package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS        = 15
	DefaultTermWidth  = 72
	DefaultTermHeight = 14
	DefaultPlotWidth  = 8.0
	DefaultPlotHeight = 6.0
)

type Config struct {
	Theme    string     `yaml:"theme"`
	Colormap string     `yaml:"colormap"`
	Format   string     `yaml:"format"`
	Plot     PlotConfig `yaml:"plot"`
	Anim     AnimConfig `yaml:"anim"`
}

// PlotConfig sizes static output, in inches.
type PlotConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AnimConfig sizes the terminal animation view.
type AnimConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	FPS     int    `yaml:"fps"`
	GIFPath string `yaml:"gif_path"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:    "observatory",
		Colormap: "viridis",
		Format:   "png",
		Plot: PlotConfig{
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
		},
		Anim: AnimConfig{
			Width:   DefaultTermWidth,
			Height:  DefaultTermHeight,
			FPS:     DefaultFPS,
			GIFPath: "cubeview.gif",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
