// Package timing measures the stages of a generation run.
package timing

import (
	"fmt"
	"strings"
	"time"
)

// Stage is one measured step of a run.
type Stage struct {
	Label    string
	Duration time.Duration
}

// Timer records consecutive stages. Each stage lasts from the previous
// mark (or the timer start) to its own mark.
type Timer struct {
	start  time.Time
	last   time.Time
	stages []Stage
	now    func() time.Time
}

// NewTimer creates a new timer
func NewTimer() *Timer {
	return newTimerWithClock(time.Now)
}

func newTimerWithClock(now func() time.Time) *Timer {
	t := &Timer{now: now}
	t.Reset()
	return t
}

// Mark closes the current stage under label and returns its duration
func (t *Timer) Mark(label string) time.Duration {
	at := t.now()
	d := at.Sub(t.last)
	t.last = at
	t.stages = append(t.stages, Stage{Label: label, Duration: d})
	return d
}

// Elapsed returns total elapsed time since timer creation
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.start)
}

// Get returns the duration of the first stage with the given label
func (t *Timer) Get(label string) (time.Duration, bool) {
	for _, s := range t.stages {
		if s.Label == label {
			return s.Duration, true
		}
	}
	return 0, false
}

// Stages returns the recorded stages in order
func (t *Timer) Stages() []Stage {
	out := make([]Stage, len(t.stages))
	copy(out, t.stages)
	return out
}

// Summary returns a one-line summary, e.g. "Total: 1.200ms (generate: 1.000ms, write: 0.200ms)"
func (t *Timer) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total: %.3fms", ms(t.Elapsed()))

	if len(t.stages) > 0 {
		b.WriteString(" (")
		for i, s := range t.stages {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s: %.3fms", s.Label, ms(s.Duration))
		}
		b.WriteString(")")
	}

	return b.String()
}

// Reset restarts the timer and drops all stages
func (t *Timer) Reset() {
	t.start = t.now()
	t.last = t.start
	t.stages = nil
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
