// Package theme defines the color themes used for styled terminal output.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme maps the roles of the budget report to colors.
type Theme struct {
	Name    string
	Rule    lipgloss.Color // banner and summary separators
	Title   lipgloss.Color // banner and summary titles
	Text    lipgloss.Color // totals
	Within  lipgloss.Color // positive balance
	Over    lipgloss.Color // negative balance
	Exact   lipgloss.Color // zero balance
	Warning lipgloss.Color // rejection notices
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme.
var FlexokiDark = Theme{
	Name:    "flexoki-dark",
	Rule:    lipgloss.Color("#575653"),
	Title:   lipgloss.Color("#3AA99F"),
	Text:    lipgloss.Color("#FFFCF0"),
	Within:  lipgloss.Color("#879A39"),
	Over:    lipgloss.Color("#D14D41"),
	Exact:   lipgloss.Color("#4385BE"),
	Warning: lipgloss.Color("#DA702C"),
}

// CatppuccinMocha is a pastel theme.
var CatppuccinMocha = Theme{
	Name:    "catppuccin-mocha",
	Rule:    lipgloss.Color("#6C7086"),
	Title:   lipgloss.Color("#89B4FA"),
	Text:    lipgloss.Color("#CDD6F4"),
	Within:  lipgloss.Color("#A6E3A1"),
	Over:    lipgloss.Color("#F38BA8"),
	Exact:   lipgloss.Color("#94E2D5"),
	Warning: lipgloss.Color("#FAB387"),
}

// TokyoNight is a cool blue/purple theme.
var TokyoNight = Theme{
	Name:    "tokyo-night",
	Rule:    lipgloss.Color("#565F89"),
	Title:   lipgloss.Color("#7AA2F7"),
	Text:    lipgloss.Color("#C0CAF5"),
	Within:  lipgloss.Color("#9ECE6A"),
	Over:    lipgloss.Color("#F7768E"),
	Exact:   lipgloss.Color("#7DCFFF"),
	Warning: lipgloss.Color("#FF9E64"),
}

// Terminal uses ANSI 16 colors only.
var Terminal = Theme{
	Name:    "terminal",
	Rule:    lipgloss.Color("8"),
	Title:   lipgloss.Color("6"),
	Text:    lipgloss.Color("15"),
	Within:  lipgloss.Color("2"),
	Over:    lipgloss.Color("1"),
	Exact:   lipgloss.Color("4"),
	Warning: lipgloss.Color("3"),
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// ByName returns a theme by its name and whether it was found.
// Unknown names yield FlexokiDark.
func ByName(name string) (Theme, bool) {
	for _, t := range All {
		if t.Name == name {
			return t, true
		}
	}
	return FlexokiDark, false
}

// SetActive sets the active theme by name and reports whether the name was known.
func SetActive(name string) bool {
	t, ok := ByName(name)
	Active = t
	return ok
}
