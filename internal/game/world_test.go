package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/timeless/internal/core"
)

func TestNewWorldSeededState(t *testing.T) {
	w := newTestWorld(t)

	p := w.Player()
	assert.Equal(t, 45.0, p.X)
	assert.Equal(t, 192.0, p.Y)
	assert.Equal(t, 1.0, p.Facing)
	assert.False(t, p.Standing)

	require.Len(t, w.blocks, 9)
	for i, b := range w.blocks {
		assert.Equal(t, core.NewRect(float64(i*128), 320, 128, 128), b.Box, "block %d", i)
	}
	assert.Equal(t, 1152.0, w.blockSpawnX)

	assert.Len(t, w.enemies, 1)
	assert.Len(t, w.pickups, 1)
	assert.Len(t, w.backgrounds, 1)
	assert.Empty(t, w.bullets)
	assert.Empty(t, w.enemyBullets)

	assert.Equal(t, 1.0, w.SpeedMultiplier())
	assert.Equal(t, -355.0, w.wall.X)
	assert.Equal(t, 0.0, w.camera.Scroll)
}

func TestResetIsIdempotent(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 120; i++ {
		in := runRight()
		in.Fire = i%10 == 0
		in.Jump = i%40 == 0
		w.Step(in, frame)
	}

	w.Reset()
	once := w.Snapshot()
	w.Reset()
	twice := w.Snapshot()

	assert.Equal(t, once, twice)
	assert.Equal(t, once.Hash(), twice.Hash())
}

func TestResetMatchesFreshWorld(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 90; i++ {
		w.Step(runRight(), frame)
	}
	w.Reset()

	fresh := newTestWorld(t)
	got, want := w.Snapshot(), fresh.Snapshot()
	got.Best, got.Deaths = want.Best, want.Deaths
	assert.Equal(t, want, got)
}

func TestGravityNeverExceedsMaxFall(t *testing.T) {
	for _, dt := range []float64{0, 0.001, frame, 0.1, 1, 10} {
		w := newTestWorld(t)
		w.player.Y = -1e6 // Far above any block

		for i := 0; i < 20; i++ {
			w.Step(idle(), dt)
			assert.LessOrEqual(t, w.player.VY, w.cfg.Physics.MaxFallSpeed, "dt=%v tick=%d", dt, i)
		}
	}
}

func TestInvalidDeltaTreatedAsZero(t *testing.T) {
	for _, dt := range []float64{-1, math.NaN()} {
		w := newTestWorld(t)
		before := w.Player()

		w.Step(core.InputSnapshot{Right: true}, dt)

		after := w.Player()
		assert.Equal(t, before.X, after.X, "dt=%v", dt)
		assert.Equal(t, before.Y, after.Y, "dt=%v", dt)
		assert.Equal(t, 0.0, after.VY, "dt=%v", dt)
	}
}

func TestManualReset(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 60; i++ {
		w.Step(runRight(), frame)
	}
	require.Greater(t, w.Traveled(), 45.0)

	res := w.Step(core.InputSnapshot{Reset: true}, 0)

	assert.Equal(t, ResetManual, res.Reset)
	assert.Equal(t, 45.0, w.player.X)
	assert.Equal(t, 192.0, w.player.Y)
	assert.Equal(t, 0, res.State.Deaths, "manual reset is not a death")
	assert.Greater(t, res.State.Best, 45, "best distance survives reset")
}

func TestQuitStopsWithoutStepping(t *testing.T) {
	w := newTestWorld(t)
	before := w.Snapshot()

	res := w.Step(core.InputSnapshot{Quit: true, Right: true}, frame)

	assert.True(t, res.Quit)
	assert.Equal(t, before, w.Snapshot())
}

func TestFireSpawnsBulletOnFacingSide(t *testing.T) {
	w := newTestWorld(t)

	w.Step(core.InputSnapshot{Fire: true}, frame)
	require.Len(t, w.bullets, 1)
	right := w.bullets[0]
	assert.Equal(t, 1.0, right.Dir)
	assert.GreaterOrEqual(t, right.X, w.Traveled()+w.player.W)

	w.Step(core.InputSnapshot{Left: true, Fire: true}, frame)
	require.Len(t, w.bullets, 2)
	left := w.bullets[1]
	assert.Equal(t, -1.0, left.Dir)
	assert.Less(t, left.Box().Right(), w.Traveled())

	// Bullets keep flying without touching anything
	x := w.bullets[0].X
	w.Step(idle(), frame)
	assert.InDelta(t, x+900*frame, w.bullets[0].X, 1e-9)
}

func TestJumpOnlyWhenStanding(t *testing.T) {
	w := newTestWorld(t)

	w.Step(core.InputSnapshot{Jump: true}, frame)
	assert.GreaterOrEqual(t, w.player.VY, 0.0, "airborne jump is ignored")

	for i := 0; i < 120 && !w.player.Standing; i++ {
		w.Step(idle(), frame)
	}
	require.True(t, w.player.Standing)

	y := w.player.Y
	w.Step(core.InputSnapshot{Jump: true}, frame)
	assert.False(t, w.player.Standing)
	assert.Less(t, w.player.VY, 0.0)
	assert.Less(t, w.player.Y, y)
}

func TestStepResultState(t *testing.T) {
	w := newTestWorld(t)
	var res StepResult
	for i := 0; i < 30; i++ {
		res = w.Step(runRight(), frame)
	}

	assert.Equal(t, ResetNone, res.Reset)
	assert.Equal(t, w.Distance(), res.State.Distance)
	assert.Equal(t, res.State.Distance, res.State.Best)
	assert.False(t, res.State.Slowed)
}

func TestResetCauseString(t *testing.T) {
	assert.Equal(t, "none", ResetNone.String())
	assert.Equal(t, "manual", ResetManual.String())
	assert.Equal(t, "enemy_bullet", ResetEnemyBullet.String())
	assert.Equal(t, "wall", ResetWall.String())
}
