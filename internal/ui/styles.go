package ui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha (dark theme)
var mocha = struct {
	Red, Peach, Overlay lipgloss.Color
}{
	Red: "#f38ba8", Peach: "#fab387", Overlay: "#7f849c",
}

// Catppuccin Latte (light theme)
var latte = struct {
	Red, Peach, Overlay lipgloss.Color
}{
	Red: "#d20f39", Peach: "#fe640b", Overlay: "#8c8fa1",
}

// ThemePalette holds the current color scheme
type ThemePalette struct {
	Red, Peach, Overlay lipgloss.Color
}

var currentTheme ThemePalette

func init() {
	if DetectTheme() == ThemeDark {
		SetDarkTheme()
	} else {
		SetLightTheme()
	}
}

// SetDarkTheme switches to Catppuccin Mocha
func SetDarkTheme() {
	currentTheme = ThemePalette(mocha)
	refreshStyles()
}

// SetLightTheme switches to Catppuccin Latte
func SetLightTheme() {
	currentTheme = ThemePalette(latte)
	refreshStyles()
}

// Semantic styles used by the shell's own output: error messages, muted
// secondary text (e.g. history's index column, "not found" diagnostics),
// and echoed command names.
var (
	MutedStyle   lipgloss.Style
	ErrorStyle   lipgloss.Style
	CommandStyle lipgloss.Style
)

func refreshStyles() {
	MutedStyle = lipgloss.NewStyle().Foreground(currentTheme.Overlay)
	ErrorStyle = lipgloss.NewStyle().Foreground(currentTheme.Red).Bold(true)
	CommandStyle = lipgloss.NewStyle().Foreground(currentTheme.Peach).Bold(true)
}
