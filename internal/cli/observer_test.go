package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/briandowns/spinner"
	"github.com/golang/mock/gomock"

	"github.com/agbru/coffeemachine/internal/cli/mocks"
	"github.com/agbru/coffeemachine/internal/orchestration"
	"github.com/agbru/coffeemachine/internal/order"
	"github.com/agbru/coffeemachine/internal/ui"
)

func TestConsoleObserver(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	m := orchestration.NewMachine(orchestration.WithObservers(NewConsoleObserver(&buf)))
	for range 4 {
		if err := m.Request(order.FromAction(func() {})); err != nil {
			t.Fatal(err)
		}
	}

	if err := m.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	want := "started preparing 4 orders\n" +
		"running 25 %\n" +
		"running 50 %\n" +
		"running 75 %\n" +
		"running 100 %\n" +
		"finished\n"
	if got := buf.String(); got != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestConsoleObserver_WriteErrorAbortsCycle(t *testing.T) {
	t.Parallel()
	m := orchestration.NewMachine(orchestration.WithObservers(NewConsoleObserver(failingWriter{})))
	ran := false
	_ = m.Request(order.FromAction(func() { ran = true }))

	err := m.Start()
	if err == nil {
		t.Fatal("expected error from failing writer")
	}
	if ran {
		t.Error("order should not run when Started fails")
	}
}

func withMockSpinner(t *testing.T, s Spinner) {
	t.Helper()
	original := newSpinner
	newSpinner = func(...spinner.Option) Spinner { return s }
	t.Cleanup(func() { newSpinner = original })
}

func TestSpinnerObserver(t *testing.T) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	t.Cleanup(func() { ui.InitTheme(false) })

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockSpinner(ctrl)
	withMockSpinner(t, mock)

	gomock.InOrder(
		mock.EXPECT().UpdateSuffix(gomock.Any()),
		mock.EXPECT().Start(),
		mock.EXPECT().UpdateSuffix(gomock.Any()).Do(func(s string) {
			if !strings.Contains(s, " 50%") {
				t.Errorf("suffix %q should show 50%%", s)
			}
		}),
		mock.EXPECT().UpdateSuffix(gomock.Any()).Do(func(s string) {
			if !strings.Contains(s, "100%") {
				t.Errorf("suffix %q should show 100%%", s)
			}
		}),
		mock.EXPECT().Stop(),
	)

	var buf bytes.Buffer
	m := orchestration.NewMachine(orchestration.WithObservers(NewSpinnerObserver(&buf)))
	_ = m.Request(order.FromAction(func() {}))
	_ = m.Request(order.FromAction(func() {}))

	if err := m.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !strings.Contains(buf.String(), "2 orders") {
		t.Errorf("final line should report 2 orders, got %q", buf.String())
	}
}

func TestSpinnerObserver_AbortStopsSpinner(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockSpinner(ctrl)
	withMockSpinner(t, mock)

	mock.EXPECT().UpdateSuffix(gomock.Any()).AnyTimes()
	mock.EXPECT().Start()
	mock.EXPECT().Stop().Times(1)

	var buf bytes.Buffer
	obs := NewSpinnerObserver(&buf)
	m := orchestration.NewMachine(orchestration.WithObservers(obs))
	_ = m.Request(order.Func(func() error { return errors.New("out of cups") }))

	if err := m.Start(); err == nil {
		t.Fatal("expected execution error")
	}
	obs.Aborted(nil)
}

func TestSpinnerObserver_EventsWithoutStart(t *testing.T) {
	t.Parallel()
	obs := NewSpinnerObserver(&bytes.Buffer{})
	if err := obs.Progress(50); err != nil {
		t.Errorf("Progress without Started: %v", err)
	}
	if err := obs.Finished(); err != nil {
		t.Errorf("Finished without Started: %v", err)
	}
	obs.Aborted(errors.New("ignored"))
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
}
