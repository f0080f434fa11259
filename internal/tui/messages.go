package tui

import (
	"time"

	"github.com/agbru/coffeemachine/internal/orchestration"
)

// StartedMsg is sent when the machine begins draining its queue.
type StartedMsg struct {
	Orders int
}

// ProgressMsg is sent after each order completes.
type ProgressMsg struct {
	Percent int
}

// FinishedMsg is sent once every queued order has been served.
type FinishedMsg struct{}

// AbortedMsg is sent when an order or an observer fault stops a cycle.
type AbortedMsg struct {
	Err error
}

// CycleDoneMsg carries the outcome of a brew command back to the model.
type CycleDoneMsg struct {
	Summary orchestration.CycleSummary
}

// TickMsg refreshes the elapsed timer.
type TickMsg time.Time
