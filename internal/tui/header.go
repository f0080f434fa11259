package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/coffeemachine/internal/format"
)

// Status is the machine state shown in the header.
type Status int

const (
	StatusIdle Status = iota
	StatusBrewing
	StatusServed
	StatusAborted
)

func (s Status) String() string {
	switch s {
	case StatusBrewing:
		return "BREWING"
	case StatusServed:
		return "SERVED"
	case StatusAborted:
		return "ABORTED"
	default:
		return "IDLE"
	}
}

func (s Status) style() lipgloss.Style {
	switch s {
	case StatusBrewing:
		return statusBrewStyle
	case StatusServed:
		return statusDoneStyle
	case StatusAborted:
		return statusErrorStyle
	default:
		return statusIdleStyle
	}
}

// HeaderModel renders the top bar: title, version, elapsed time and status.
// The timer covers the current or last cycle.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	status    Status
	width     int
}

// NewHeaderModel creates an idle header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{version: version}
}

// Start restarts the timer for a new cycle.
func (h *HeaderModel) Start(now time.Time) {
	h.startTime = now
	h.endTime = time.Time{}
	h.status = StatusBrewing
}

// Stop freezes the timer with the cycle outcome.
func (h *HeaderModel) Stop(now time.Time, status Status) {
	h.endTime = now
	h.status = status
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// Elapsed returns the duration of the current or last cycle.
func (h HeaderModel) Elapsed() time.Duration {
	switch {
	case h.startTime.IsZero():
		return 0
	case !h.endTime.IsZero():
		return h.endTime.Sub(h.startTime)
	default:
		return time.Since(h.startTime)
	}
}

// View renders the header with the status right-aligned.
func (h HeaderModel) View() string {
	title := "Coffee Machine"
	if h.version != "" && h.version != "dev" {
		title += " " + h.version
	}
	left := titleStyle.Render(title) +
		versionStyle.Render(" | ") +
		elapsedStyle.Render(fmt.Sprintf("Elapsed: %s", format.FormatExecutionDuration(h.Elapsed())))
	right := h.status.style().Render(h.status.String())

	gap := max(h.width-2-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return headerStyle.Render(left + strings.Repeat(" ", gap) + right)
}
