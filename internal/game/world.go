// Package game implements the per-tick simulation of the runner: player
// kinematics, block collision, distance-paced spawning, the pursuing wall and
// the camera fold. It is pure and single-threaded; the platform layer feeds it
// input snapshots and frame deltas and draws the render list it emits.
package game

import (
	"math"

	"github.com/vovakirdan/timeless/internal/config"
	"github.com/vovakirdan/timeless/internal/core"
)

// ResetCause tells why a tick restarted the run.
type ResetCause int

const (
	ResetNone ResetCause = iota
	ResetManual
	ResetEnemyBullet
	ResetWall
)

// String returns a human-readable name for the cause.
func (r ResetCause) String() string {
	switch r {
	case ResetNone:
		return "none"
	case ResetManual:
		return "manual"
	case ResetEnemyBullet:
		return "enemy_bullet"
	case ResetWall:
		return "wall"
	default:
		return "unknown"
	}
}

// StepResult is returned by Step after each tick.
type StepResult struct {
	Reset ResetCause
	Quit  bool
	State core.GameState
}

// Counters hold the distance left until the next spawn of each kind.
type Counters struct {
	Blocks      float64
	Backgrounds float64
	Enemies     float64
	Pickups     float64
}

// World is the aggregate owning every entity and counter of a run.
type World struct {
	cfg        config.TimelessConfig
	rng        Rand
	difficulty *config.DifficultyManager

	player       Player
	camera       Camera
	blocks       []Block
	bullets      []Bullet
	enemies      []Enemy
	enemyBullets []EnemyBullet
	pickups      []Pickup
	backgrounds  []Background
	wall         Wall

	counters    Counters
	blockSpawnX float64
	bandSprites []SpriteID

	speedMultiplier float64
	slowMotionLeft  float64 // Seconds
	occluded        bool

	tick   uint64
	best   int
	deaths int
}

// New creates a world from a validated configuration and a random source.
// It panics if a block band names an unknown sprite; Validate rejects those.
func New(cfg config.TimelessConfig, rng Rand) *World {
	w := &World{
		cfg:         cfg,
		rng:         rng,
		difficulty:  config.NewDifficultyManager(cfg.Difficulty),
		bandSprites: resolveBandSprites(cfg.Blocks.Bands),
	}
	w.Reset()
	return w
}

// Reset restores the initial run state. Best distance and death count survive.
func (w *World) Reset() {
	cfg := w.cfg

	w.player = Player{
		X:      cfg.Player.StartX,
		Y:      cfg.Player.StartY,
		W:      cfg.Player.Width,
		H:      cfg.Player.Height,
		Facing: 1,
	}
	w.camera = Camera{Threshold: cfg.View.FollowThreshold}

	w.blocks = w.blocks[:0]
	for i := 0; i < cfg.Blocks.InitialCount; i++ {
		x := float64(i) * cfg.Blocks.TileWidth
		w.blocks = append(w.blocks, Block{
			Box:    core.NewRect(x, cfg.Blocks.InitialY, cfg.Blocks.TileWidth, cfg.Blocks.TileHeight),
			Sprite: SpriteBlockGrass,
		})
	}
	w.blockSpawnX = float64(cfg.Blocks.InitialCount) * cfg.Blocks.TileWidth

	w.bullets = w.bullets[:0]
	w.enemyBullets = w.enemyBullets[:0]
	w.enemies = append(w.enemies[:0], Enemy{
		Box:      core.NewRect(cfg.Enemy.InitialX, cfg.Enemy.InitialY, cfg.Spawn.Enemies.Width, cfg.Spawn.Enemies.Height),
		Cooldown: cfg.Enemy.Cooldown,
	})
	w.pickups = append(w.pickups[:0], Pickup{
		Box: core.NewRect(cfg.SlowMotion.InitialX, cfg.SlowMotion.InitialY, cfg.Spawn.Pickups.Width, cfg.Spawn.Pickups.Height),
	})
	w.backgrounds = append(w.backgrounds[:0], Background{
		Box:    core.NewRect(cfg.World.BackgroundX, cfg.World.BackgroundY, cfg.Spawn.Backgrounds.Width, cfg.Spawn.Backgrounds.Height),
		Sprite: SpriteBackground,
	})

	w.wall = Wall{X: cfg.Player.StartX - cfg.Wall.StartLag}
	w.counters = Counters{
		Blocks:      cfg.Blocks.Spacing,
		Backgrounds: cfg.Spawn.Backgrounds.Spacing,
		Enemies:     cfg.Spawn.Enemies.Spacing,
		Pickups:     cfg.Spawn.Pickups.Spacing,
	}
	w.speedMultiplier = 1.0
	w.slowMotionLeft = 0
	w.occluded = false
	w.tick = 0
}

// Step advances the world by dt seconds. Within a tick the phases run in a
// fixed order: integration, collision, spawning, hazards, eviction.
func (w *World) Step(in core.InputSnapshot, dt float64) StepResult {
	if in.Quit {
		return StepResult{Quit: true, State: w.State()}
	}
	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}

	cause := ResetNone
	if in.Reset {
		w.Reset()
		cause = ResetManual
	}

	w.tick++
	w.integrate(in, dt)
	w.collide(dt)
	w.spawn()
	if d := w.Distance(); d > w.best {
		w.best = d
	}

	if hit := w.updateHazards(dt); hit != ResetNone {
		w.deaths++
		w.Reset()
		return StepResult{Reset: hit, State: w.State()}
	}

	w.evict()
	return StepResult{Reset: cause, State: w.State()}
}

// Traveled returns the player's absolute world x.
func (w *World) Traveled() float64 {
	return w.camera.Traveled(w.player.X)
}

// Distance returns the traveled distance in whole units.
func (w *World) Distance() int {
	return int(w.Traveled())
}

// State returns the HUD summary of the run.
func (w *World) State() core.GameState {
	return core.GameState{
		Distance: w.Distance(),
		Best:     w.best,
		Deaths:   w.deaths,
		Slowed:   w.speedMultiplier < 1,
		Occluded: w.occluded,
	}
}

// Player returns a copy of the player state.
func (w *World) Player() Player {
	return w.player
}

// SpeedMultiplier returns the current world speed multiplier.
func (w *World) SpeedMultiplier() float64 {
	return w.speedMultiplier
}

// Counts reports the size of each entity collection.
func (w *World) Counts() map[string]int {
	return map[string]int{
		"blocks":        len(w.blocks),
		"bullets":       len(w.bullets),
		"enemies":       len(w.enemies),
		"enemy_bullets": len(w.enemyBullets),
		"pickups":       len(w.pickups),
		"backgrounds":   len(w.backgrounds),
	}
}
