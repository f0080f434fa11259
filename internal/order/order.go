//go:generate mockgen -source=order.go -destination=mocks/mock_order.go -package=mocks

// Package order defines the executable unit queued into the coffee machine
// and the name-keyed registry that builds orders on demand.
package order

import (
	"github.com/google/uuid"

	"github.com/agbru/coffeemachine/internal/beverage"
)

// Order is one deferred unit of work. Execute performs it; calling Execute
// more than once on the same instance has no defined meaning.
type Order interface {
	Execute() error
}

// Func adapts an ordinary function to the Order interface.
type Func func() error

// Execute calls f().
func (f Func) Execute() error { return f() }

// FromAction wraps an action that cannot fail.
func FromAction(action func()) Order {
	return Func(func() error {
		action()
		return nil
	})
}

// FromBeverage returns an order that prepares b.
func FromBeverage(b *beverage.Beverage) Order {
	return beverageOrder{b: b}
}

type beverageOrder struct {
	b *beverage.Beverage
}

func (o beverageOrder) Execute() error {
	o.b.Prepare()
	return nil
}

// Ticket decorates an order with the registry name it was created under and
// a unique identifier.
type Ticket struct {
	id    uuid.UUID
	name  string
	order Order
}

// NewTicket wraps o under name with a fresh random ID.
func NewTicket(name string, o Order) *Ticket {
	return &Ticket{id: uuid.New(), name: name, order: o}
}

// ID returns the ticket identifier.
func (t *Ticket) ID() uuid.UUID { return t.id }

// Name returns the registry name.
func (t *Ticket) Name() string { return t.name }

// Unwrap returns the decorated order.
func (t *Ticket) Unwrap() Order { return t.order }

// Execute delegates to the decorated order.
func (t *Ticket) Execute() error { return t.order.Execute() }

// String returns "name#<first 8 hex digits of the ID>".
func (t *Ticket) String() string { return t.name + "#" + t.id.String()[:8] }
