// Package timing provides performance measurement utilities for routeconf.
package timing

import (
	"fmt"
	"strings"
	"time"
)

// Timer tracks execution time of the phases of a request
type Timer struct {
	start time.Time
	last  time.Time
	marks map[string]time.Duration
	order []string // Track order of marks for consistent output
}

// NewTimer creates a new timer
func NewTimer() *Timer {
	now := time.Now()
	return &Timer{
		start: now,
		last:  now,
		marks: make(map[string]time.Duration),
	}
}

// Mark records the time spent since the previous mark under label
func (t *Timer) Mark(label string) time.Duration {
	now := time.Now()
	phase := now.Sub(t.last)
	t.last = now
	if _, exists := t.marks[label]; !exists {
		t.order = append(t.order, label)
	}
	t.marks[label] += phase
	return phase
}

// Elapsed returns total elapsed time since timer creation
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Get returns the duration recorded for a phase
func (t *Timer) Get(label string) (time.Duration, bool) {
	d, ok := t.marks[label]
	return d, ok
}

// Summary returns a formatted summary of all phases
func (t *Timer) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total: %.3fms", millis(t.Elapsed()))

	if len(t.order) > 0 {
		b.WriteString(" (")
		for i, label := range t.order {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s: %.3fms", label, millis(t.marks[label]))
		}
		b.WriteString(")")
	}

	return b.String()
}

func millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
