package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a set of ANSI escape codes, one per color role.
type Theme struct {
	Name string
	// Primary highlights beverage names and headings.
	Primary string
	// Accent highlights prompts and interactive hints.
	Accent    string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Info      string
	Bold      string
	Underline string
	Reset     string
}

var (
	// EspressoTheme is the default palette, tuned for dark backgrounds.
	EspressoTheme = Theme{
		Name:      "espresso",
		Primary:   "\033[38;5;180m", // Crema
		Accent:    "\033[38;5;80m",  // Teal
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;114m", // Green
		Warning:   "\033[38;5;221m", // Yellow
		Error:     "\033[38;5;203m", // Red
		Info:      "\033[38;5;176m", // Magenta
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// LatteTheme uses darker tones for light backgrounds.
	LatteTheme = Theme{
		Name:      "latte",
		Primary:   "\033[38;5;94m", // Roast brown
		Accent:    "\033[38;5;30m", // Dark teal
		Secondary: "\033[38;5;240m",
		Success:   "\033[38;5;28m",
		Warning:   "\033[38;5;130m",
		Error:     "\033[38;5;124m",
		Info:      "\033[38;5;90m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = EspressoTheme
	themeMutex   sync.RWMutex
)

// TUITheme holds the lipgloss colors of the dashboard.
type TUITheme struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
	Info    lipgloss.TerminalColor
}

var (
	// EspressoTUITheme pairs roasted browns with a crema accent.
	EspressoTUITheme = TUITheme{
		Text:    lipgloss.Color("#EDE0D4"),
		Border:  lipgloss.Color("#7F5539"),
		Accent:  lipgloss.Color("#DDB892"),
		Success: lipgloss.Color("#9ECE6A"),
		Warning: lipgloss.Color("#E9C46A"),
		Error:   lipgloss.Color("#E76F51"),
		Dim:     lipgloss.Color("#6B6B6B"),
		Info:    lipgloss.Color("#2A9D8F"),
	}

	// NoColorTUITheme renders with the terminal's default colors.
	NoColorTUITheme = TUITheme{
		Text:    lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
		Info:    lipgloss.NoColor{},
	}
)

// GetCurrentTUITheme returns NoColorTUITheme when colors are disabled and
// EspressoTUITheme otherwise.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	if currentTheme.Name == NoColorTheme.Name {
		return NoColorTUITheme
	}
	return EspressoTUITheme
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates a theme by name: "espresso", "latte" or "none".
// Unknown names select espresso.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case LatteTheme.Name:
		currentTheme = LatteTheme
	case NoColorTheme.Name:
		currentTheme = NoColorTheme
	default:
		currentTheme = EspressoTheme
	}
}

// InitTheme selects NoColorTheme when noColor is true or the NO_COLOR
// environment variable is present (https://no-color.org/), and
// EspressoTheme otherwise.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if _, exists := os.LookupEnv("NO_COLOR"); noColor || exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = EspressoTheme
}
