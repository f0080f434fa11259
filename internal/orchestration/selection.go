package orchestration

import "github.com/agbru/coffeemachine/internal/order"

// RequestByName resolves every name through the registry, then queues the
// resulting orders in the given order. All names are resolved before the
// first Request, so an unknown name leaves the queue untouched.
//
// Parameters:
//   - m: The machine receiving the orders.
//   - registry: The registry used to build orders.
//   - names: The beverage names to order, duplicates allowed.
//
// Returns:
//   - error: A NotFoundError for the first unknown name, or the Request error.
func RequestByName(m *Machine, registry *order.Registry, names []string) error {
	orders := make([]order.Order, 0, len(names))
	for _, name := range names {
		o, err := registry.Create(name)
		if err != nil {
			return err
		}
		orders = append(orders, o)
	}
	for _, o := range orders {
		if err := m.Request(o); err != nil {
			return err
		}
	}
	return nil
}
