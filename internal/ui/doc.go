// Package ui holds the color themes shared by the CLI, the REPL and the TUI
// dashboard, and the ANSI helpers built on the active theme.
package ui
