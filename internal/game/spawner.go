package game

import (
	"fmt"

	"github.com/vovakirdan/timeless/internal/config"
	"github.com/vovakirdan/timeless/internal/core"
)

// rearm adds the spacing back to every counter that fired on the previous
// tick instead of resetting it to the spacing. The overshoot carries into the
// next interval, so spawn positions follow the net distance traveled.
func (c *Counters) rearm(cfg config.TimelessConfig) {
	if c.Blocks <= 0 {
		c.Blocks += cfg.Blocks.Spacing
	}
	if c.Backgrounds <= 0 {
		c.Backgrounds += cfg.Spawn.Backgrounds.Spacing
	}
	if c.Enemies <= 0 {
		c.Enemies += cfg.Spawn.Enemies.Spacing
	}
	if c.Pickups <= 0 {
		c.Pickups += cfg.Spawn.Pickups.Spacing
	}
}

// consume charges a horizontal displacement to every counter.
func (c *Counters) consume(dx float64) {
	c.Blocks -= dx
	c.Backgrounds -= dx
	c.Enemies -= dx
	c.Pickups -= dx
}

// spawn creates one entity for every counter that has run out.
func (w *World) spawn() {
	if w.counters.Blocks <= 0 {
		w.spawnBlock()
	}
	if w.counters.Backgrounds <= 0 {
		w.spawnBackground()
	}
	if w.counters.Enemies <= 0 {
		w.spawnEnemy()
	}
	if w.counters.Pickups <= 0 {
		w.spawnPickup()
	}
}

// spawnBlock places a tile at blockSpawnX on the band picked by a [0,100) roll.
func (w *World) spawnBlock() {
	bc := w.cfg.Blocks
	i := pickBand(bc.Bands, w.rng.Intn(100))

	w.blocks = append(w.blocks, Block{
		Box:    core.NewRect(w.blockSpawnX, bc.Bands[i].Y, bc.TileWidth, bc.TileHeight),
		Sprite: w.bandSprites[i],
	})
	w.blockSpawnX += bc.TileWidth
}

// pickBand returns the index of the first band whose upper bound exceeds roll.
func pickBand(bands []config.BlockBand, roll int) int {
	for i, b := range bands {
		if roll < b.Upper {
			return i
		}
	}
	return len(bands) - 1
}

// resolveBandSprites maps every band to its sprite. An unknown name panics:
// assets are resolved once when the world is built, never during a tick.
func resolveBandSprites(bands []config.BlockBand) []SpriteID {
	sprites := make([]SpriteID, len(bands))
	for i, b := range bands {
		id, ok := ParseSpriteID(b.Sprite)
		if !ok {
			panic(fmt.Sprintf("game: blocks.bands[%d]: unknown sprite %q", i, b.Sprite))
		}
		sprites[i] = id
	}
	return sprites
}

// forwardRect draws a rectangle inside the forward spawn window and the kind's vertical band.
func (w *World) forwardRect(kind config.SpawnKind) core.Rect {
	sc := w.cfg.Spawn
	x := w.Traveled() + sc.WindowMin + w.rng.Float64()*(sc.WindowMax-sc.WindowMin)
	y := kind.MinY + w.rng.Float64()*(kind.MaxY-kind.MinY)
	return core.NewRect(x, y, kind.Width, kind.Height)
}

func (w *World) spawnBackground() {
	box := w.forwardRect(w.cfg.Spawn.Backgrounds)
	w.backgrounds = append(w.backgrounds, Background{
		Box:      box,
		Rotation: float64(w.rng.Intn(4) * 90),
		Sprite:   SpriteBackground,
	})
}

func (w *World) spawnEnemy() {
	w.enemies = append(w.enemies, Enemy{
		Box:      w.forwardRect(w.cfg.Spawn.Enemies),
		Cooldown: w.difficulty.Cooldown(w.cfg.Enemy.Cooldown, w.Traveled()),
	})
}

func (w *World) spawnPickup() {
	w.pickups = append(w.pickups, Pickup{Box: w.forwardRect(w.cfg.Spawn.Pickups)})
}
