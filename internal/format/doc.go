// Package format renders durations, estimates and progress bars for the CLI
// and the TUI.
package format
