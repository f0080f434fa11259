package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/coffeemachine/internal/ui"
)

// Dashboard styles, rebuilt from the ui theme by initTUIStyles.
var (
	panelStyle       lipgloss.Style
	panelTitleStyle  lipgloss.Style
	headerStyle      lipgloss.Style
	titleStyle       lipgloss.Style
	versionStyle     lipgloss.Style
	elapsedStyle     lipgloss.Style
	cursorStyle      lipgloss.Style
	dimStyle         lipgloss.Style
	barStyle         lipgloss.Style
	paceStyle        lipgloss.Style
	logTimeStyle     lipgloss.Style
	logInfoStyle     lipgloss.Style
	logSuccessStyle  lipgloss.Style
	logErrorStyle    lipgloss.Style
	statusIdleStyle  lipgloss.Style
	statusBrewStyle  lipgloss.Style
	statusDoneStyle  lipgloss.Style
	statusErrorStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds the styles from the current ui theme. Run calls
// it again after InitTheme has picked the theme.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)
	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	versionStyle = lipgloss.NewStyle().Foreground(t.Dim)
	elapsedStyle = lipgloss.NewStyle().Foreground(t.Info)

	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	dimStyle = lipgloss.NewStyle().Foreground(t.Dim)
	barStyle = lipgloss.NewStyle().Foreground(t.Accent)
	paceStyle = lipgloss.NewStyle().Foreground(t.Info)

	logTimeStyle = lipgloss.NewStyle().Foreground(t.Dim)
	logInfoStyle = lipgloss.NewStyle().Foreground(t.Text)
	logSuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	logErrorStyle = lipgloss.NewStyle().Foreground(t.Error)

	statusIdleStyle = lipgloss.NewStyle().Foreground(t.Dim).Bold(true)
	statusBrewStyle = lipgloss.NewStyle().Foreground(t.Warning).Bold(true)
	statusDoneStyle = lipgloss.NewStyle().Foreground(t.Success).Bold(true)
	statusErrorStyle = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
}
