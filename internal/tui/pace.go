package tui

import "time"

// sparkBlocks maps levels 0..7 to Unicode block elements.
var sparkBlocks = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// PaceTracker keeps the durations of the most recent orders in a ring so
// the dashboard can draw how evenly the machine is serving.
type PaceTracker struct {
	samples []time.Duration
	head    int
	count   int
	last    time.Time
}

// NewPaceTracker creates a tracker holding up to capacity samples.
func NewPaceTracker(capacity int) *PaceTracker {
	return &PaceTracker{samples: make([]time.Duration, max(capacity, 1))}
}

// Mark starts timing at t, typically when a cycle starts.
func (p *PaceTracker) Mark(t time.Time) {
	p.last = t
}

// Record stores the time elapsed since the previous Mark or Record. It is
// ignored before the first Mark.
func (p *PaceTracker) Record(t time.Time) {
	if p.last.IsZero() {
		return
	}
	p.samples[p.head] = t.Sub(p.last)
	p.head = (p.head + 1) % len(p.samples)
	p.count = min(p.count+1, len(p.samples))
	p.last = t
}

// Len returns the number of stored samples.
func (p *PaceTracker) Len() int { return p.count }

// Samples returns the stored durations, oldest first.
func (p *PaceTracker) Samples() []time.Duration {
	out := make([]time.Duration, p.count)
	start := (p.head - p.count + len(p.samples)) % len(p.samples)
	for i := range p.count {
		out[i] = p.samples[(start+i)%len(p.samples)]
	}
	return out
}

// Reset clears the samples and the mark.
func (p *PaceTracker) Reset() {
	p.head, p.count = 0, 0
	p.last = time.Time{}
}

// Sparkline renders the samples scaled to the slowest one.
func (p *PaceTracker) Sparkline() string {
	samples := p.Samples()
	var slowest time.Duration
	for _, d := range samples {
		slowest = max(slowest, d)
	}
	levels := make([]float64, len(samples))
	for i, d := range samples {
		if slowest > 0 {
			levels[i] = float64(d) / float64(slowest) * 100
		}
	}
	return RenderSparkline(levels)
}

// RenderSparkline draws values in 0..100 with one block per value. Values
// outside the range are clamped.
func RenderSparkline(values []float64) string {
	runes := make([]rune, len(values))
	for i, v := range values {
		v = min(max(v, 0), 100)
		runes[i] = sparkBlocks[int(v/100*7)]
	}
	return string(runes)
}
