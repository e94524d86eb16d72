package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/timeless/internal/config"
	"github.com/vovakirdan/timeless/internal/core"
)

func TestSpawnCounterDecrement(t *testing.T) {
	rng := &scriptedRand{ints: []int{70}, floats: []float64{0.5}}
	w := newTestWorldWith(t, nil, rng)
	w.counters.Blocks = 10
	w.player.VX = 100

	w.Step(idle(), 0.2)

	assert.Equal(t, -10.0, w.counters.Blocks)
	require.Len(t, w.blocks, 10)
	added := w.blocks[9]
	assert.Equal(t, core.NewRect(1152, 256, 128, 128), added.Box, "roll 70 picks the raised band")
	assert.Equal(t, SpriteBlockStone, added.Sprite)
	assert.Equal(t, 1152.0+128.0, w.blockSpawnX)

	// Other distance counters were charged the same displacement
	assert.Equal(t, 280.0, w.counters.Backgrounds)
	assert.Equal(t, 880.0, w.counters.Enemies)
	assert.Equal(t, 1480.0, w.counters.Pickups)
	assert.Equal(t, 580.0, w.enemies[0].Cooldown)

	// The next tick re-arms the counter, keeping the overshoot
	w.Step(idle(), 0.2)
	assert.Equal(t, 118.0, w.counters.Blocks)
	assert.Len(t, w.blocks, 10)
}

func TestSpawnCountersAreDistancePaced(t *testing.T) {
	w := newTestWorld(t)
	before := w.counters

	for i := 0; i < 300; i++ {
		w.Step(idle(), frame)
	}

	assert.Equal(t, before, w.counters, "standing still never spawns")
	assert.Len(t, w.blocks, 9)
}

func TestPickBand(t *testing.T) {
	bands := config.DefaultTimelessConfig().Blocks.Bands

	tests := []struct {
		roll int
		y    float64
	}{
		{0, 320},
		{59, 320},
		{60, 256},
		{84, 256},
		{85, 384},
		{99, 384},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.y, bands[pickBand(bands, tc.roll)].Y, "roll %d", tc.roll)
	}
}

func TestForwardSpawnsInsideWindow(t *testing.T) {
	rng := &scriptedRand{ints: []int{3}, floats: []float64{0, 0.999}}
	w := newTestWorldWith(t, nil, rng)
	w.counters.Backgrounds = 0
	w.counters.Enemies = 0
	w.counters.Pickups = 0
	traveled := w.Traveled()

	w.spawn()

	sc := w.cfg.Spawn
	require.Len(t, w.backgrounds, 2)
	bg := w.backgrounds[1]
	assert.Equal(t, traveled+sc.WindowMin, bg.Box.X)
	assert.InDelta(t, sc.Backgrounds.MinY+0.999*(sc.Backgrounds.MaxY-sc.Backgrounds.MinY), bg.Box.Y, 1e-9)
	assert.Equal(t, 270.0, bg.Rotation)

	require.Len(t, w.enemies, 2)
	e := w.enemies[1]
	assert.GreaterOrEqual(t, e.Box.X, traveled+sc.WindowMin)
	assert.Less(t, e.Box.X, traveled+sc.WindowMax)
	assert.GreaterOrEqual(t, e.Box.Y, sc.Enemies.MinY)
	assert.Less(t, e.Box.Y, sc.Enemies.MaxY)
	assert.Equal(t, w.cfg.Enemy.Cooldown, e.Cooldown)

	require.Len(t, w.pickups, 2)
	pk := w.pickups[1]
	assert.GreaterOrEqual(t, pk.Box.Y, sc.Pickups.MinY)
	assert.Less(t, pk.Box.Y, sc.Pickups.MaxY)
}

func TestTerrainKeepsAheadOfPlayer(t *testing.T) {
	w := newTestWorldWith(t, noEnemyFire, flatRand())

	for i := 0; i < 1200; i++ {
		w.Step(runRight(), frame)
	}

	require.Greater(t, w.Traveled(), 10000.0)
	assert.Greater(t, w.blockSpawnX, w.Traveled()+w.cfg.View.Width, "blocks are generated beyond the view")
	assert.True(t, w.player.Standing)
}
