package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for interactive plot views.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Colormap  string // default colormap for image views
}

// Available themes
var (
	ThemeObservatory = Theme{
		Name:      "observatory",
		Primary:   lipgloss.Color("#00cccc"),
		Secondary: lipgloss.Color("#0088ff"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Error:     lipgloss.Color("#ff4444"),
		Colormap:  "viridis",
	}

	ThemeSolar = Theme{
		Name:      "solar",
		Primary:   lipgloss.Color("#ff8800"),
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff6b6b"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b5c"),
		Error:     lipgloss.Color("#ff4757"),
		Colormap:  "heat",
	}

	ThemeMono = Theme{
		Name:      "mono",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#888888"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Error:     lipgloss.Color("#ff0000"),
		Colormap:  "gray",
	}

	Themes = []Theme{ThemeObservatory, ThemeSolar, ThemeMono}
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeObservatory
}

// ThemeNames returns the available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme cycles to the theme after the named one.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeObservatory
}
