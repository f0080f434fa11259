//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"io"
	"time"
)

// OrderStateObserver receives the lifecycle notifications of a drain cycle.
// Notifications are delivered synchronously; returning an error aborts the
// remaining fan-out and the whole Start call.
type OrderStateObserver interface {
	// Started is called once per cycle with the number of queued orders.
	Started(numOrders int) error
	// Progress is called after each order with the completed percentage.
	Progress(percent int) error
	// Finished is called once after the last order of a successful cycle.
	Finished() error
}

// AbortObserver is implemented by observers that need to release resources
// when a cycle is aborted. Aborted is informational: it cannot alter or
// suppress the error returned by Start.
type AbortObserver interface {
	Aborted(err error)
}

// ObserverFuncs adapts a set of callbacks to OrderStateObserver. Nil
// callbacks are skipped.
type ObserverFuncs struct {
	OnStarted  func(numOrders int) error
	OnProgress func(percent int) error
	OnFinished func() error
}

// Started calls OnStarted.
func (f ObserverFuncs) Started(numOrders int) error {
	if f.OnStarted == nil {
		return nil
	}
	return f.OnStarted(numOrders)
}

// Progress calls OnProgress.
func (f ObserverFuncs) Progress(percent int) error {
	if f.OnProgress == nil {
		return nil
	}
	return f.OnProgress(percent)
}

// Finished calls OnFinished.
func (f ObserverFuncs) Finished() error {
	if f.OnFinished == nil {
		return nil
	}
	return f.OnFinished()
}

// NullObserver ignores every notification.
// Useful for quiet mode or testing.
type NullObserver struct{}

func (NullObserver) Started(int) error  { return nil }
func (NullObserver) Progress(int) error { return nil }
func (NullObserver) Finished() error    { return nil }

// CycleSummary describes one completed or aborted drain cycle.
type CycleSummary struct {
	// Orders is the number of orders that were queued when the cycle began.
	Orders int
	// Duration is the wall-clock time spent in Start.
	Duration time.Duration
	// Err is the error returned by Start, nil on success.
	Err error
}

// SummaryPresenter renders a CycleSummary. It decouples the machine from the
// CLI and TUI output formats.
type SummaryPresenter interface {
	PresentSummary(summary CycleSummary, out io.Writer)
}

var (
	_ OrderStateObserver = ObserverFuncs{}
	_ OrderStateObserver = NullObserver{}
)
