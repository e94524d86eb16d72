package game

import "github.com/vovakirdan/timeless/internal/core"

// SpriteID identifies the asset an external renderer draws for an item.
type SpriteID int

const (
	SpriteNone SpriteID = iota
	SpriteBackground
	SpritePlayer
	SpriteBlockGrass
	SpriteBlockStone
	SpriteBlockDirt
	SpriteBullet
	SpriteEnemyBullet
	SpriteEnemy
	SpritePickup
	SpriteWall
)

var spriteNames = [...]string{
	SpriteNone:        "none",
	SpriteBackground:  "background",
	SpritePlayer:      "player",
	SpriteBlockGrass:  "block_grass",
	SpriteBlockStone:  "block_stone",
	SpriteBlockDirt:   "block_dirt",
	SpriteBullet:      "bullet",
	SpriteEnemyBullet: "enemy_bullet",
	SpriteEnemy:       "enemy",
	SpritePickup:      "pickup",
	SpriteWall:        "wall",
}

// String returns the asset name of the sprite.
func (s SpriteID) String() string {
	if s < 0 || int(s) >= len(spriteNames) {
		return "unknown"
	}
	return spriteNames[s]
}

// ParseSpriteID looks up a sprite by asset name.
func ParseSpriteID(name string) (SpriteID, bool) {
	for i, n := range spriteNames {
		if n == name {
			return SpriteID(i), true
		}
	}
	return SpriteNone, false
}

// Sprite is one item of the render list in camera-relative world units.
type Sprite struct {
	ID       SpriteID
	X, Y     float64
	W, H     float64
	Rotation float64 // Degrees, multiple of 90
}

// RenderList is the read-only view of one tick handed to a renderer.
// Items are ordered back to front.
type RenderList struct {
	Items    []Sprite
	Occluded bool // The pursuing wall covers the whole view
}

// RenderList builds the render list for the current state.
// The returned slice is freshly allocated and never aliases world state.
func (w *World) RenderList() RenderList {
	p := &w.player
	n := len(w.backgrounds) + 1 + len(w.blocks) + len(w.bullets) +
		len(w.enemyBullets) + len(w.enemies) + len(w.pickups) + 1
	items := make([]Sprite, 0, n)

	add := func(id SpriteID, r core.Rect, rot float64) {
		items = append(items, Sprite{ID: id, X: w.camera.Fold(r.X, p.X), Y: r.Y, W: r.W, H: r.H, Rotation: rot})
	}

	for _, bg := range w.backgrounds {
		add(bg.Sprite, bg.Box, bg.Rotation)
	}
	items = append(items, Sprite{ID: SpritePlayer, X: p.X, Y: p.Y, W: p.W, H: p.H})
	for _, b := range w.blocks {
		add(b.Sprite, b.Box, 0)
	}
	for _, b := range w.bullets {
		add(SpriteBullet, b.Box(), 0)
	}
	for _, b := range w.enemyBullets {
		add(SpriteEnemyBullet, b.Box(), 0)
	}
	for _, e := range w.enemies {
		add(SpriteEnemy, e.Box, 0)
	}
	for _, pk := range w.pickups {
		add(SpritePickup, pk.Box, 0)
	}
	add(SpriteWall, w.wall.Box(w.cfg.Wall.Width, w.cfg.View.Height), 0)

	return RenderList{Items: items, Occluded: w.occluded}
}
