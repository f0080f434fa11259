package orchestration

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/agbru/coffeemachine/internal/logging"
	"github.com/agbru/coffeemachine/internal/order"
)

func TestLoggingObserver(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	obs := NewLoggingObserver(logging.NewLogger(&buf, "machine"))
	m := NewMachine(WithObservers(obs))
	_ = m.Request(order.FromAction(func() {}))
	_ = m.Request(order.Func(func() error { return errors.New("kettle broke") }))

	if err := m.Start(); err == nil {
		t.Fatal("expected Start to fail")
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		`"orders":2`,
		`"percent":50`,
		`kettle broke`,
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d log lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i, w := range want {
		if !strings.Contains(lines[i], w) {
			t.Errorf("line %d = %q, want it to contain %q", i, lines[i], w)
		}
	}
}

func TestObserverFuncs_NilCallbacks(t *testing.T) {
	t.Parallel()
	var f ObserverFuncs
	if f.Started(1) != nil || f.Progress(100) != nil || f.Finished() != nil {
		t.Error("zero ObserverFuncs should return nil for every notification")
	}
}
