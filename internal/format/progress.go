package format

import (
	"fmt"
	"strings"
	"time"
)

// maxETA caps estimates produced from very slow early progress.
const maxETA = 24 * time.Hour

// ProgressBar renders progress (0.0 to 1.0, clamped) as a bar of length runes.
func ProgressBar(progress float64, length int) string {
	if length <= 0 {
		return ""
	}
	progress = min(max(progress, 0), 1)
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatETA formats an estimate compactly: "< 1s", "45s", "2m30s", "1h15m".
// Non-positive values mean no estimate is available yet.
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		m, s := int(eta.Minutes()), int(eta.Seconds())%60
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm%ds", m, s)
	default:
		h, m := int(eta.Hours()), int(eta.Minutes())%60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

// FormatProgressBarWithETA renders "[bar]  50% ETA: 30s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %3d%% ETA: %s",
		ProgressBar(progress, width), int(min(max(progress, 0), 1)*100), FormatETA(eta))
}

// ETATracker estimates the time left in a drain cycle from the completed
// percentage, assuming orders take roughly the same time.
type ETATracker struct {
	start   time.Time
	percent int
	now     func() time.Time
}

// NewETATracker starts tracking at the current time.
func NewETATracker() *ETATracker {
	return newETATracker(time.Now)
}

func newETATracker(now func() time.Time) *ETATracker {
	return &ETATracker{start: now(), now: now}
}

// Update records the completed percentage and returns the new estimate.
func (e *ETATracker) Update(percent int) time.Duration {
	e.percent = min(max(percent, 0), 100)
	return e.ETA()
}

// Percent returns the last recorded percentage.
func (e *ETATracker) Percent() int { return e.percent }

// Elapsed returns the time since tracking started.
func (e *ETATracker) Elapsed() time.Duration { return e.now().Sub(e.start) }

// ETA returns the estimated time left, 0 before the first completed order
// and after the last one.
func (e *ETATracker) ETA() time.Duration {
	if e.percent <= 0 || e.percent >= 100 {
		return 0
	}
	elapsed := e.Elapsed()
	eta := time.Duration(float64(elapsed) * float64(100-e.percent) / float64(e.percent))
	return min(eta, maxETA)
}
