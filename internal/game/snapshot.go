package game

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot contains the complete world state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick uint64 `msgpack:"tick"`

	// Player (X, Y, VX, VY, Facing) and flags
	Player        [5]float64 `msgpack:"player"`
	Standing      bool       `msgpack:"standing"`
	CollidesLeft  bool       `msgpack:"collides_left"`
	CollidesRight bool       `msgpack:"collides_right"`

	Scroll      float64    `msgpack:"scroll"`
	BlockSpawnX float64    `msgpack:"block_spawn_x"`
	Counters    [4]float64 `msgpack:"counters"` // Blocks, Backgrounds, Enemies, Pickups

	SpeedMultiplier float64 `msgpack:"speed_multiplier"`
	SlowMotionLeft  float64 `msgpack:"slow_motion_left"`
	WallX           float64 `msgpack:"wall_x"`
	WallSpeed       float64 `msgpack:"wall_speed"`
	Occluded        bool    `msgpack:"occluded"`

	Best   int `msgpack:"best"`
	Deaths int `msgpack:"deaths"`

	// Flattened entities: each block is 5 values (X, Y, W, H, Sprite),
	// each bullet 3 (X, Y, Dir), each enemy 3 (X, Y, Cooldown),
	// each enemy bullet 4 (X, Y, VX, VY), each pickup 2 (X, Y),
	// each background 3 (X, Y, Rotation).
	Blocks       []float64 `msgpack:"blocks"`
	Bullets      []float64 `msgpack:"bullets"`
	Enemies      []float64 `msgpack:"enemies"`
	EnemyBullets []float64 `msgpack:"enemy_bullets"`
	Pickups      []float64 `msgpack:"pickups"`
	Backgrounds  []float64 `msgpack:"backgrounds"`
}

// Snapshot returns the current world state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	p := w.player

	blocks := make([]float64, 0, len(w.blocks)*5)
	for _, b := range w.blocks {
		blocks = append(blocks, b.Box.X, b.Box.Y, b.Box.W, b.Box.H, float64(b.Sprite))
	}
	bullets := make([]float64, 0, len(w.bullets)*3)
	for _, b := range w.bullets {
		bullets = append(bullets, b.X, b.Y, b.Dir)
	}
	enemies := make([]float64, 0, len(w.enemies)*3)
	for _, e := range w.enemies {
		enemies = append(enemies, e.Box.X, e.Box.Y, e.Cooldown)
	}
	enemyBullets := make([]float64, 0, len(w.enemyBullets)*4)
	for _, b := range w.enemyBullets {
		enemyBullets = append(enemyBullets, b.Pos.X(), b.Pos.Y(), b.Vel.X(), b.Vel.Y())
	}
	pickups := make([]float64, 0, len(w.pickups)*2)
	for _, pk := range w.pickups {
		pickups = append(pickups, pk.Box.X, pk.Box.Y)
	}
	backgrounds := make([]float64, 0, len(w.backgrounds)*3)
	for _, bg := range w.backgrounds {
		backgrounds = append(backgrounds, bg.Box.X, bg.Box.Y, bg.Rotation)
	}

	return Snapshot{
		Tick:          w.tick,
		Player:        [5]float64{p.X, p.Y, p.VX, p.VY, p.Facing},
		Standing:      p.Standing,
		CollidesLeft:  p.CollidesLeft,
		CollidesRight: p.CollidesRight,

		Scroll:      w.camera.Scroll,
		BlockSpawnX: w.blockSpawnX,
		Counters:    [4]float64{w.counters.Blocks, w.counters.Backgrounds, w.counters.Enemies, w.counters.Pickups},

		SpeedMultiplier: w.speedMultiplier,
		SlowMotionLeft:  w.slowMotionLeft,
		WallX:           w.wall.X,
		WallSpeed:       w.wall.Speed,
		Occluded:        w.occluded,

		Best:   w.best,
		Deaths: w.deaths,

		Blocks:       blocks,
		Bullets:      bullets,
		Enemies:      enemies,
		EnemyBullets: enemyBullets,
		Pickups:      pickups,
		Backgrounds:  backgrounds,
	}
}

// Encode serializes the snapshot with msgpack.
func (snap *Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("game: encode snapshot: %w", err)
	}
	return data, nil
}

// Hash returns the xxhash64 of the encoded snapshot for determinism testing.
// Returns 0 if the snapshot cannot be encoded.
func (snap *Snapshot) Hash() uint64 {
	data, err := snap.Encode()
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}
