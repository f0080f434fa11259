// Package cli renders the coffee machine on a terminal: progress observers,
// the run summary, the interactive order session and shell completion.
//
// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a formatted string without performing I/O.
//   - *Observer types implement orchestration.OrderStateObserver.
package cli
