package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agbru/coffeemachine/internal/beverage"
	"github.com/agbru/coffeemachine/internal/menu"
	"github.com/agbru/coffeemachine/internal/orchestration"
	"github.com/agbru/coffeemachine/internal/order"
	"github.com/agbru/coffeemachine/internal/recipe"
)

func newTestREPL(t *testing.T, input string) (*REPL, *bytes.Buffer) {
	t.Helper()
	noColor(t)
	var out bytes.Buffer
	registry := order.NewDefaultRegistry(beverage.NoOpSteps{})
	machine := orchestration.NewMachine(orchestration.WithObservers(NewConsoleObserver(&out)))
	r := NewREPL(registry, machine, menu.Default())
	r.SetInput(strings.NewReader(input))
	r.SetOutput(&out)
	return r, &out
}

func TestREPL_Commands(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "order and start",
			input:    "order coffee 2\norder tea\nstart\nexit\n",
			contains: []string{"Queued 2 x coffee (2 pending)", "Queued 1 x tea (3 pending)", "started preparing 3 orders", "running 33 %", "running 66 %", "running 100 %", "finished", "Served 3 orders", "Goodbye!"},
		},
		{
			name:     "beverage name as command",
			input:    "tea\nqueue\n",
			contains: []string{"Queued 1 x tea", "   1. tea"},
		},
		{
			name:     "empty queue",
			input:    "queue\nstart\n",
			contains: []string{"Queue is empty.", "started preparing 0 orders", "finished", "Served 0 orders"},
		},
		{
			name:     "unknown beverage",
			input:    "order mocha\n",
			contains: []string{`Unknown order: beverage "mocha" is not on the menu`},
		},
		{
			name:     "invalid count",
			input:    "order coffee many\norder coffee 0\norder coffee 101\nqueue\n",
			contains: []string{"Invalid count: many (1-100)", "Invalid count: 0", "Invalid count: 101", "Queue is empty."},
		},
		{
			name:     "missing name",
			input:    "order\n",
			contains: []string{"Usage: order <name> [n]"},
		},
		{
			name:     "clear",
			input:    "order tea 3\nclear\nqueue\n",
			contains: []string{"Queue cleared.", "Queue is empty."},
		},
		{
			name:     "menu",
			input:    "menu\n",
			contains: []string{"Beverage", "coffee", "150ml", "tea", "200ml"},
		},
		{
			name:     "unknown command",
			input:    "grind\n",
			contains: []string{"Unknown command: grind", "Type help"},
		},
		{
			name:     "start consumes the queue",
			input:    "order coffee\nstart\nqueue\n",
			contains: []string{"Served 1 orders", "Queue is empty."},
		},
		{
			name:     "eof without newline still runs last command",
			input:    "order tea",
			contains: []string{"Queued 1 x tea", "Goodbye!"},
		},
		{
			name:     "quit stops reading",
			input:    "quit\norder tea\n",
			excludes: []string{"Queued"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out := newTestREPL(t, tt.input)
			r.Start()
			got := out.String()
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\n%s", want, got)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("output should not contain %q\n%s", unwanted, got)
				}
			}
		})
	}
}

func TestREPL_HelpListsBeverages(t *testing.T) {
	r, out := newTestREPL(t, "help\n")
	r.Start()
	if !strings.Contains(out.String(), "List beverages (coffee, tea)") {
		t.Errorf("help should list beverages, got:\n%s", out.String())
	}
}

func TestREPL_MixedCaseBeverageName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:     "order command keeps the name as typed",
			input:    "ORDER Latte 2\nstart\n",
			contains: []string{"Queued 2 x Latte (2 pending)", "Served 2 orders"},
		},
		{
			name:     "bare name keeps its case",
			input:    "Latte\n",
			contains: []string{"Queued 1 x Latte (1 pending)"},
		},
		{
			name:     "names are matched exactly",
			input:    "order latte\n",
			contains: []string{`"latte"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out := newTestREPL(t, tt.input)
			r.registry.Register("Latte", order.BeverageConstructor("Latte", recipe.Fixed(120, 80), beverage.NoOpSteps{}))
			r.Start()
			got := out.String()
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\n%s", want, got)
				}
			}
		})
	}
}
