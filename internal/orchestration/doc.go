// Package orchestration implements the coffee machine: a FIFO queue of orders
// drained sequentially by Start, with lifecycle notifications (started,
// per-order progress, finished) broadcast to registered observers in
// registration order. The Machine is single-owner and not safe for
// concurrent use.
package orchestration
