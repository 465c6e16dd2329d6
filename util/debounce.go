package util

import (
	"time"
)

// Debouncer lets the first trigger of a key through and drops repeats of the
// same key that arrive within the wait window. Not safe for concurrent use.
type Debouncer struct {
	wait     time.Duration
	lastSeen map[int]time.Time
}

// NewDebouncer returns a Debouncer with the given window. A zero window lets everything through.
func NewDebouncer(wait time.Duration) *Debouncer {
	return &Debouncer{
		wait:     wait,
		lastSeen: make(map[int]time.Time),
	}
}

// Allow reports whether a trigger of key at now should be kept
func (d *Debouncer) Allow(key int, now time.Time) bool {
	last, seen := d.lastSeen[key]
	if seen && now.Sub(last) < d.wait {
		return false
	}
	d.lastSeen[key] = now
	return true
}
