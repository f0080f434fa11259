package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/coffeemachine/internal/orchestration"
)

// programRef is a shared reference to the tea.Program.
// bubbletea copies the model on every Update, so the observer holds this
// pointer instead of the program itself.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send forwards msg to the program. It is a no-op until SetProgram.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// Observer turns machine events into bubbletea messages. It runs on the
// goroutine executing the brew command.
type Observer struct {
	ref *programRef
}

var (
	_ orchestration.OrderStateObserver = (*Observer)(nil)
	_ orchestration.AbortObserver      = (*Observer)(nil)
)

// Started sends a StartedMsg.
func (o *Observer) Started(numOrders int) error {
	o.ref.Send(StartedMsg{Orders: numOrders})
	return nil
}

// Progress sends a ProgressMsg.
func (o *Observer) Progress(percent int) error {
	o.ref.Send(ProgressMsg{Percent: percent})
	return nil
}

// Finished sends a FinishedMsg.
func (o *Observer) Finished() error {
	o.ref.Send(FinishedMsg{})
	return nil
}

// Aborted sends an AbortedMsg carrying err.
func (o *Observer) Aborted(err error) {
	o.ref.Send(AbortedMsg{Err: err})
}
