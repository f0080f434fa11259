package orchestration

import (
	"reflect"

	apperrors "github.com/agbru/coffeemachine/internal/errors"
	"github.com/agbru/coffeemachine/internal/logging"
	"github.com/agbru/coffeemachine/internal/order"
)

// Notification names carried by ObserverError.Event.
const (
	EventStarted  = "started"
	EventProgress = "progress"
	EventFinished = "finished"
)

// Machine owns a FIFO queue of orders and the observers notified while the
// queue is drained. It is single-owner: no method may be called concurrently
// with another, including from a goroutine spawned by an order or observer.
type Machine struct {
	queue     []order.Order
	next      int
	observers []OrderStateObserver
	logger    logging.Logger
	running   bool
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for cycle diagnostics.
func WithLogger(logger logging.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithObservers registers observers in the given order.
func WithObservers(observers ...OrderStateObserver) Option {
	return func(m *Machine) {
		for _, obs := range observers {
			m.AddObserver(obs)
		}
	}
}

// NewMachine returns an idle machine with an empty queue.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{logger: logging.NewNopLogger()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddObserver appends obs to the notification list. A nil observer is
// ignored.
func (m *Machine) AddObserver(obs OrderStateObserver) {
	if obs == nil {
		return
	}
	m.observers = append(m.observers, obs)
}

// RemoveObserver removes the first registration of obs and reports whether
// one was found. Observers of a non-comparable type, such as ObserverFuncs,
// cannot be removed.
func (m *Machine) RemoveObserver(obs OrderStateObserver) bool {
	if obs == nil || !reflect.TypeOf(obs).Comparable() {
		return false
	}
	for i, o := range m.observers {
		if o == obs {
			m.observers = append(m.observers[:i:i], m.observers[i+1:]...)
			return true
		}
	}
	return false
}

// Observers returns the number of registered observers.
func (m *Machine) Observers() int { return len(m.observers) }

// Request appends o to the tail of the queue. It fails with ErrNilOrder for
// a nil order and with ErrMachineBusy while Start is draining the queue.
func (m *Machine) Request(o order.Order) error {
	if o == nil {
		return apperrors.ErrNilOrder
	}
	if m.running {
		return apperrors.ErrMachineBusy
	}
	m.queue = append(m.queue, o)
	return nil
}

// Pending returns the number of orders not yet executed.
func (m *Machine) Pending() int { return len(m.queue) - m.next }

// Running reports whether Start is in progress.
func (m *Machine) Running() bool { return m.running }

// Start drains the queue. It broadcasts Started with the queue length,
// executes every order in FIFO order broadcasting Progress after each one,
// then empties the queue and broadcasts Finished.
//
// The first error from an order or an observer aborts the cycle: it is
// returned as an ExecutionError or ObserverError, the remaining orders are
// discarded without being executed, Finished is not broadcast and every
// AbortObserver is told. The queue is empty when Start returns, whatever
// the outcome. Calling Start from inside a cycle returns ErrMachineBusy.
func (m *Machine) Start() (err error) {
	if m.running {
		return apperrors.ErrMachineBusy
	}
	m.running = true
	defer func() {
		m.queue, m.next = nil, 0
		m.running = false
		if err != nil {
			m.logger.Error("cycle aborted", err)
			m.notifyAborted(err)
		}
	}()

	numOrders := len(m.queue)
	m.logger.Debug("cycle started", logging.Int("orders", numOrders))
	if err := m.broadcast(EventStarted, func(obs OrderStateObserver) error {
		return obs.Started(numOrders)
	}); err != nil {
		return err
	}

	for i := 1; i <= numOrders; i++ {
		o := m.queue[m.next]
		m.queue[m.next] = nil
		m.next++
		if err := o.Execute(); err != nil {
			return apperrors.ExecutionError{Index: i, Total: numOrders, Cause: err}
		}

		percent := PercentComplete(i, numOrders)
		if err := m.broadcast(EventProgress, func(obs OrderStateObserver) error {
			return obs.Progress(percent)
		}); err != nil {
			return err
		}
	}

	m.queue, m.next = nil, 0
	if err := m.broadcast(EventFinished, OrderStateObserver.Finished); err != nil {
		return err
	}
	m.logger.Debug("cycle finished", logging.Int("orders", numOrders))
	return nil
}

func (m *Machine) broadcast(event string, notify func(OrderStateObserver) error) error {
	for _, obs := range m.observers {
		if err := notify(obs); err != nil {
			return apperrors.ObserverError{Event: event, Cause: err}
		}
	}
	return nil
}

func (m *Machine) notifyAborted(err error) {
	for _, obs := range m.observers {
		if a, ok := obs.(AbortObserver); ok {
			a.Aborted(err)
		}
	}
}
