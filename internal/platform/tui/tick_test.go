package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameDelta(t *testing.T) {
	t0 := time.Unix(100, 0)

	tests := []struct {
		name string
		prev time.Time
		now  time.Time
		rate int
		want float64
	}{
		{"first tick is one nominal frame", time.Time{}, t0, 50, 0.02},
		{"first tick defaults rate", time.Time{}, t0, 0, 1.0 / 60},
		{"regular tick", t0, t0.Add(20 * time.Millisecond), 50, 0.02},
		{"stall is capped", t0, t0.Add(2 * time.Second), 60, MaxFrameDelta},
		{"clock going back is zero", t0, t0.Add(-time.Second), 60, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, frameDelta(tc.prev, tc.now, tc.rate), 1e-12)
		})
	}
}

func TestTickCmdProducesTickMsg(t *testing.T) {
	cmd := tickCmd(1000)
	if assert.NotNil(t, cmd) {
		_, ok := cmd().(TickMsg)
		assert.True(t, ok)
	}
}
