// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/paperscope/internal/prefs"
)

// Theme bundles the styles for one color scheme.
type Theme struct {
	Name string

	Header    lipgloss.Style
	Title     lipgloss.Style
	Meta      lipgloss.Style
	Abstract  lipgloss.Style
	Highlight lipgloss.Style
	Score     lipgloss.Style
	ErrorBar  lipgloss.Style
	StatusBar lipgloss.Style
	Prompt    lipgloss.Style
	Help      lipgloss.Style
	Badge     lipgloss.Style
}

// DarkTheme returns the styles for dark terminals.
func DarkTheme() Theme {
	return Theme{
		Name:      prefs.ThemeDark,
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111")),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Abstract:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111")),
		Score:     lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		ErrorBar:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("124")).Padding(0, 1),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("237")).Padding(0, 1),
		Prompt:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Badge:     lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("214")).Padding(0, 1),
	}
}

// LightTheme returns the styles for light terminals.
func LightTheme() Theme {
	return Theme{
		Name:      prefs.ThemeLight,
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("26")),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")),
		Meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Abstract:  lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		Highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("26")),
		Score:     lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		ErrorBar:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("160")).Padding(0, 1),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("253")).Padding(0, 1),
		Prompt:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("26")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Badge:     lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220")).Padding(0, 1),
	}
}

// themeFor maps a theme name to its styles, defaulting to dark.
func themeFor(name string) Theme {
	if name == prefs.ThemeLight {
		return LightTheme()
	}
	return DarkTheme()
}

// DetectTheme resolves the startup theme: a stored preference wins, then
// the configured default, then the terminal background. The resolution is
// done once here and passed in; nothing else reads ambient state.
func DetectTheme(store prefs.Store, configured string) Theme {
	if store != nil {
		if v, ok, err := store.Get(prefs.ThemeKey); err == nil && ok {
			return themeFor(v)
		}
	}
	switch configured {
	case prefs.ThemeDark, prefs.ThemeLight:
		return themeFor(configured)
	}
	if lipgloss.HasDarkBackground() {
		return DarkTheme()
	}
	return LightTheme()
}
