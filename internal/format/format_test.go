package format

import (
	"strings"
	"testing"
	"time"
)

func TestProgressBar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		progress float64
		length   int
		expected string
	}{
		{0.0, 10, "░░░░░░░░░░"},
		{0.5, 10, "█████░░░░░"},
		{1.0, 10, "██████████"},
		{1.2, 10, "██████████"},
		{-0.1, 10, "░░░░░░░░░░"},
		{0.5, 0, ""},
	}

	for _, tt := range tests {
		if got := ProgressBar(tt.progress, tt.length); got != tt.expected {
			t.Errorf("ProgressBar(%f, %d) = %s; want %s", tt.progress, tt.length, got, tt.expected)
		}
	}
}

func TestFormatETA(t *testing.T) {
	t.Parallel()
	tests := []struct {
		eta      time.Duration
		expected string
	}{
		{0, "calculating..."},
		{-time.Second, "calculating..."},
		{500 * time.Millisecond, "< 1s"},
		{45 * time.Second, "45s"},
		{time.Minute, "1m"},
		{2*time.Minute + 30*time.Second, "2m30s"},
		{2 * time.Hour, "2h"},
		{time.Hour + 15*time.Minute, "1h15m"},
	}

	for _, tt := range tests {
		if got := FormatETA(tt.eta); got != tt.expected {
			t.Errorf("FormatETA(%v) = %q, want %q", tt.eta, got, tt.expected)
		}
	}
}

func TestFormatProgressBarWithETA(t *testing.T) {
	t.Parallel()
	got := FormatProgressBarWithETA(0.5, 30*time.Second, 10)
	if want := "[█████░░░░░]  50% ETA: 30s"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := FormatProgressBarWithETA(1, 0, 4); !strings.Contains(got, "100%") {
		t.Errorf("complete bar should show 100%%, got %q", got)
	}
}

func TestETATracker(t *testing.T) {
	t.Parallel()
	clock := time.Unix(0, 0)
	tracker := newETATracker(func() time.Time { return clock })

	if tracker.ETA() != 0 {
		t.Error("ETA should be 0 before any progress")
	}

	clock = clock.Add(2 * time.Second)
	if got := tracker.Update(25); got != 6*time.Second {
		t.Errorf("ETA at 25%% after 2s = %v, want 6s", got)
	}
	if tracker.Percent() != 25 || tracker.Elapsed() != 2*time.Second {
		t.Errorf("Percent() = %d Elapsed() = %v", tracker.Percent(), tracker.Elapsed())
	}

	clock = clock.Add(1000 * time.Hour)
	if got := tracker.Update(1); got != maxETA {
		t.Errorf("ETA should be capped at %v, got %v", maxETA, got)
	}
	if got := tracker.Update(150); got != 0 || tracker.Percent() != 100 {
		t.Errorf("completed tracker: ETA = %v Percent = %d", got, tracker.Percent())
	}
}

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{500 * time.Nanosecond, "0\u00b5s"},
		{10 * time.Microsecond, "10\u00b5s"},
		{10 * time.Millisecond, "10ms"},
		{2 * time.Second, "2s"},
	}

	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.d); got != tt.expected {
			t.Errorf("FormatExecutionDuration(%v) = %s; want %s", tt.d, got, tt.expected)
		}
	}
}
