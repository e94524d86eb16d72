package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/timeless/internal/config"
	"github.com/vovakirdan/timeless/internal/core"
)

func TestEvictionDisabledByDefault(t *testing.T) {
	w := newTestWorldWith(t, noEnemyFire, flatRand())
	for i := 0; i < 300; i++ {
		w.Step(runRight(), frame)
	}

	assert.Equal(t, 0.0, w.blocks[0].Box.X, "blocks are never pruned without eviction")
	assert.Greater(t, len(w.blocks), 9)
}

func TestEvictionPrunesBehind(t *testing.T) {
	w := newTestWorldWith(t, func(cfg *config.TimelessConfig) {
		noEnemyFire(cfg)
		cfg.World.EvictBehind = 300
	}, flatRand())

	for i := 0; i < 300; i++ {
		in := runRight()
		in.Fire = i%20 == 0
		w.Step(in, frame)
	}
	require.Greater(t, w.Traveled(), 2000.0)

	cutoff := w.Traveled() - 300
	for _, b := range w.blocks {
		assert.GreaterOrEqual(t, b.Box.Right(), cutoff)
	}
	for _, bg := range w.backgrounds {
		assert.GreaterOrEqual(t, bg.Box.Right(), cutoff)
	}
	for _, b := range w.bullets {
		assert.LessOrEqual(t, b.X, w.Traveled()+300)
	}
	assert.Less(t, len(w.blocks), 20)
	assert.True(t, w.player.Standing, "eviction keeps the blocks under the player")
}

func TestEvictionKeepsEntitiesAhead(t *testing.T) {
	w := newTestWorldWith(t, func(cfg *config.TimelessConfig) { cfg.World.EvictBehind = 100 }, NewRand(1))
	w.blocks = append(w.blocks, Block{Box: core.NewRect(-1000, 0, 128, 128)})

	w.Step(idle(), frame)

	assert.Len(t, w.blocks, 9)
	assert.Len(t, w.enemies, 1)
	assert.Len(t, w.pickups, 1)
}
