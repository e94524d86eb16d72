package game

import (
	"testing"

	"github.com/vovakirdan/timeless/internal/config"
	"github.com/vovakirdan/timeless/internal/core"
)

const frame = 1.0 / 60.0

// scriptedRand replays fixed values in a loop.
type scriptedRand struct {
	ints   []int
	floats []float64
	i, f   int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.ints[r.i%len(r.ints)] % n
	r.i++
	return v
}

func (r *scriptedRand) Float64() float64 {
	v := r.floats[r.f%len(r.floats)]
	r.f++
	return v
}

// flatRand always picks the first block band and the middle of every window.
func flatRand() *scriptedRand {
	return &scriptedRand{ints: []int{0}, floats: []float64{0.5}}
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return New(config.DefaultTimelessConfig(), NewRand(1))
}

func newTestWorldWith(t *testing.T, mutate func(*config.TimelessConfig), rng Rand) *World {
	t.Helper()
	cfg := config.DefaultTimelessConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return New(cfg, rng)
}

func idle() core.InputSnapshot {
	return core.InputSnapshot{}
}

func runRight() core.InputSnapshot {
	return core.InputSnapshot{Right: true, Run: true}
}

// noEnemyFire keeps enemies from ever shooting.
func noEnemyFire(cfg *config.TimelessConfig) {
	cfg.Enemy.Cooldown = 1e12
}
