package tui

import (
	"time"

	"github.com/vovakirdan/timeless/internal/core"
)

// DefaultHoldWindow is how long a held action lasts after its last key event.
// Terminals report presses and auto-repeats but never releases.
const DefaultHoldWindow = 150 * time.Millisecond

// InputTracker turns key press events into per-tick input snapshots.
type InputTracker struct {
	window  time.Duration
	lastHit map[core.Action]time.Time
	edges   core.InputSnapshot
}

// NewInputTracker creates a tracker with the given hold window.
func NewInputTracker(window time.Duration) *InputTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &InputTracker{
		window:  window,
		lastHit: make(map[core.Action]time.Time),
	}
}

// Press records a key event for an action at the given time.
func (t *InputTracker) Press(a core.Action, now time.Time) {
	if a.Held() {
		t.lastHit[a] = now
		return
	}
	t.edges.Set(a)
}

// Snapshot returns the input for a tick at the given time.
// Edge-triggered actions are reported once and then cleared.
func (t *InputTracker) Snapshot(now time.Time) core.InputSnapshot {
	in := t.edges
	for a, at := range t.lastHit {
		if now.Sub(at) < t.window {
			in.Set(a)
		} else {
			delete(t.lastHit, a)
		}
	}
	t.edges.ClearEdges()
	return in
}
