// Package logging provides a unified logging interface for the coffee machine.
// It abstracts the underlying logging implementation (zerolog by default),
// allowing consistent structured logging across the machine, its observers
// and the brewing steps while supporting multiple backends.
package logging
