// Package tui implements the interactive dashboard: a beverage menu, the
// pending queue, live progress of the machine and an event log.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/coffeemachine/internal/errors"
	"github.com/agbru/coffeemachine/internal/format"
	"github.com/agbru/coffeemachine/internal/orchestration"
	"github.com/agbru/coffeemachine/internal/order"
)

// Layout constants for the dashboard.
const (
	headerHeight       = 1
	footerHeight       = 1
	minBodyHeight      = 8
	MenuPanelPercent   = 40
	ProgressPanelLines = 3
	maxLogEntries      = 200
	paceSamples        = 48
	tickInterval       = 250 * time.Millisecond
)

// BrewFunc queues names on the machine and drains it.
type BrewFunc func(names []string) error

type logKind int

const (
	logInfo logKind = iota
	logSuccess
	logError
)

type logEntry struct {
	at   time.Time
	text string
	kind logKind
}

// autoBrewMsg starts the orders given at launch.
type autoBrewMsg struct{}

// Model is the root bubbletea model of the dashboard.
type Model struct {
	header HeaderModel
	keymap KeyMap
	help   help.Model

	beverages []string
	cursor    int
	pending   []string

	brewing bool
	total   int
	served  int
	percent int
	pace    *PaceTracker
	log     []logEntry

	exitCode int
	brew     BrewFunc
	now      func() time.Time

	width  int
	height int
}

// NewModel creates a dashboard offering beverages. Orders in pending are
// brewed as soon as the program starts.
func NewModel(beverages, pending []string, version string, brew BrewFunc) Model {
	return Model{
		header:    NewHeaderModel(version),
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		beverages: beverages,
		pending:   append([]string(nil), pending...),
		pace:      NewPaceTracker(paceSamples),
		exitCode:  apperrors.ExitSuccess,
		brew:      brew,
		now:       time.Now,
	}
}

// Init starts the clock and the launch orders, if any.
func (m Model) Init() tea.Cmd {
	if len(m.pending) == 0 {
		return tickCmd()
	}
	return tea.Batch(tickCmd(), func() tea.Msg { return autoBrewMsg{} })
}

// ExitCode returns the exit code of the last cycle.
func (m Model) ExitCode() int { return m.exitCode }

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.header.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case autoBrewMsg:
		return m.startBrew()

	case StartedMsg:
		m.total, m.served, m.percent = msg.Orders, 0, 0
		m.pace.Reset()
		m.pace.Mark(m.now())
		m.addLog(logInfo, "started preparing %d orders", msg.Orders)
		return m, nil

	case ProgressMsg:
		m.served++
		m.percent = msg.Percent
		m.pace.Record(m.now())
		m.addLog(logInfo, "running %d %%", msg.Percent)
		return m, nil

	case FinishedMsg:
		m.addLog(logSuccess, "finished")
		return m, nil

	case AbortedMsg:
		m.addLog(logError, "aborted: %v", msg.Err)
		return m, nil

	case CycleDoneMsg:
		m.brewing = false
		m.exitCode = apperrors.ExitCodeFor(msg.Summary.Err)
		duration := format.FormatExecutionDuration(msg.Summary.Duration)
		if msg.Summary.Err != nil {
			m.header.Stop(m.now(), StatusAborted)
			m.addLog(logError, "cycle failed after %s", duration)
		} else {
			m.header.Stop(m.now(), StatusServed)
			m.addLog(logSuccess, "served %d orders in %s", msg.Summary.Orders, duration)
		}
		return m, nil

	case TickMsg:
		return m, tickCmd()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.beverages)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keymap.Add):
		if len(m.beverages) > 0 {
			m.pending = append(m.pending, m.beverages[m.cursor])
		}

	case key.Matches(msg, m.keymap.Remove):
		if len(m.pending) > 0 {
			m.pending = m.pending[:len(m.pending)-1]
		}

	case key.Matches(msg, m.keymap.Clear):
		m.pending = nil

	case key.Matches(msg, m.keymap.Brew):
		return m.startBrew()
	}
	return m, nil
}

// startBrew hands the pending orders to the machine. It is ignored while a
// cycle runs, since the machine rejects re-entrant requests.
func (m Model) startBrew() (tea.Model, tea.Cmd) {
	if m.brewing {
		return m, nil
	}
	if len(m.pending) == 0 {
		m.addLog(logInfo, "nothing to brew")
		return m, nil
	}

	names := m.pending
	m.pending = nil
	m.brewing = true
	m.header.Start(m.now())
	return m, brewCmd(m.brew, names)
}

func (m *Model) addLog(kind logKind, layout string, args ...any) {
	m.log = append(m.log, logEntry{at: m.now(), text: fmt.Sprintf(layout, args...), kind: kind})
	if over := len(m.log) - maxLogEntries; over > 0 {
		m.log = m.log[over:]
	}
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	bodyHeight := max(m.height-headerHeight-footerHeight, minBodyHeight)
	leftWidth := m.width * MenuPanelPercent / 100
	rightWidth := m.width - leftWidth

	menu := m.renderPanel("Menu", m.menuLines(), leftWidth)
	queue := m.renderPanel(fmt.Sprintf("Queue (%d)", len(m.pending)), m.queueLines(leftWidth-4), leftWidth)
	left := lipgloss.JoinVertical(lipgloss.Left, menu, queue)

	progress := m.renderPanel("Progress", m.progressLines(rightWidth-4), rightWidth)
	logLines := max(bodyHeight-lipgloss.Height(progress)-3, 1)
	events := m.renderPanel("Events", m.logLines(logLines), rightWidth)
	right := lipgloss.JoinVertical(lipgloss.Left, progress, events)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.help.View(m.keymap))
}

func (m Model) renderPanel(title string, lines []string, width int) string {
	content := panelTitleStyle.Render(title) + "\n" + strings.Join(lines, "\n")
	return panelStyle.Width(max(width-2, 1)).Render(content)
}

func (m Model) menuLines() []string {
	lines := make([]string, len(m.beverages))
	for i, name := range m.beverages {
		if i == m.cursor {
			lines[i] = cursorStyle.Render("▸ " + name)
		} else {
			lines[i] = "  " + name
		}
	}
	return lines
}

func (m Model) queueLines(width int) []string {
	if len(m.pending) == 0 {
		return []string{dimStyle.Render("empty")}
	}
	return []string{lipgloss.NewStyle().Width(max(width, 1)).Render(strings.Join(m.pending, ", "))}
}

func (m Model) progressLines(width int) []string {
	barWidth := max(width-6, 10)
	bar := barStyle.Render(format.ProgressBar(float64(m.percent)/100, barWidth))
	return []string{
		fmt.Sprintf("%s %3d%%", bar, m.percent),
		fmt.Sprintf("served %d/%d", m.served, m.total),
		"pace " + paceStyle.Render(m.pace.Sparkline()),
	}
}

func (m Model) logLines(n int) []string {
	entries := m.log[max(len(m.log)-n, 0):]
	lines := make([]string, len(entries))
	for i, e := range entries {
		style := logInfoStyle
		switch e.kind {
		case logSuccess:
			style = logSuccessStyle
		case logError:
			style = logErrorStyle
		}
		lines[i] = logTimeStyle.Render(e.at.Format("15:04:05")) + " " + style.Render(e.text)
	}
	return lines
}

func brewCmd(brew BrewFunc, names []string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		err := brew(names)
		return CycleDoneMsg{Summary: orchestration.CycleSummary{
			Orders:   len(names),
			Duration: time.Since(start),
			Err:      err,
		}}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Config wires the dashboard to a machine.
type Config struct {
	Registry *order.Registry
	Machine  *orchestration.Machine
	// Orders are brewed as soon as the dashboard opens.
	Orders  []string
	Version string
}

// Run opens the dashboard and blocks until the user quits or ctx is
// canceled. It returns the exit code of the last cycle.
func Run(ctx context.Context, cfg Config) int {
	initTUIStyles()

	ref := &programRef{}
	cfg.Machine.AddObserver(&Observer{ref: ref})

	model := NewModel(cfg.Registry.List(), cfg.Orders, cfg.Version, func(names []string) error {
		if err := orchestration.RequestByName(cfg.Machine, cfg.Registry, names); err != nil {
			return err
		}
		return cfg.Machine.Start()
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	ref.SetProgram(p)

	var final tea.Model
	done := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(done)
		var err error
		final, err = p.Run()
		return err
	})
	g.Go(func() error {
		select {
		case <-gctx.Done():
			p.Quit()
		case <-done:
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return apperrors.ExitErrorGeneric
	}
	if ctx.Err() != nil {
		return apperrors.ExitErrorCanceled
	}
	if m, ok := final.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}
