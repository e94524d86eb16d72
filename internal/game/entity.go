package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/timeless/internal/core"
)

// Player is the runner's kinematic state.
// X is the position inside the view; once X reaches the follow threshold the
// camera scroll carries further forward motion.
type Player struct {
	X, Y   float64
	W, H   float64
	VX, VY float64
	Facing float64 // +1 right, -1 left

	Standing      bool
	CollidesLeft  bool // Sticky until no block overlaps the horizontal sensor
	CollidesRight bool
}

// Box returns the full body rectangle.
func (p *Player) Box() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// HorizontalSensor returns the middle band of the body used against walls,
// pickups and enemy bullets.
func (p *Player) HorizontalSensor() core.Rect {
	return core.NewRect(p.X, p.Y+p.H/4, p.W, p.H/2)
}

// LandingSensor returns the lower-center part of the body, reaching skin units below the feet.
func (p *Player) LandingSensor(skin float64) core.Rect {
	return core.NewRect(p.X+p.W/4, p.Y+p.H/2, p.W/2, p.H/2+skin)
}

// SupportSensor returns the full body, reaching skin units below the feet.
func (p *Player) SupportSensor(skin float64) core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H+skin)
}

// Block is a platform tile. Blocks never move once spawned.
type Block struct {
	Box    core.Rect
	Sprite SpriteID
}

// Bullet is a player-fired projectile. It travels at constant velocity and
// does not interact with anything.
type Bullet struct {
	X, Y  float64
	W, H  float64
	Speed float64
	Dir   float64
}

// Box returns the bullet's rectangle.
func (b Bullet) Box() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Enemy fires at the player whenever its cooldown runs out.
// The cooldown is measured in traveled distance.
type Enemy struct {
	Box      core.Rect
	Cooldown float64
}

// EnemyBullet flies along the velocity fixed when it was fired.
type EnemyBullet struct {
	Pos  mgl64.Vec2 // Top-left corner
	Vel  mgl64.Vec2
	W, H float64
}

// Box returns the enemy bullet's rectangle.
func (b EnemyBullet) Box() core.Rect {
	return core.NewRect(b.Pos.X(), b.Pos.Y(), b.W, b.H)
}

// Pickup triggers slow motion when touched.
type Pickup struct {
	Box core.Rect
}

// Background is a cosmetic decoration.
type Background struct {
	Box      core.Rect
	Rotation float64 // Degrees, multiple of 90
	Sprite   SpriteID
}

// Wall is the pursuing hazard. X is its leading (right) edge.
type Wall struct {
	X     float64
	Speed float64
}

// Box returns the wall band of the given width ending at the leading edge.
func (wl Wall) Box(width, height float64) core.Rect {
	return core.NewRect(wl.X-width, 0, width, height)
}
