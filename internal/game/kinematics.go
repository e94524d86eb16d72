package game

import "github.com/vovakirdan/timeless/internal/core"

// integrate applies input and gravity to the player's velocity.
// Horizontal velocity is a per-tick impulse; collide consumes and clears it.
func (w *World) integrate(in core.InputSnapshot, dt float64) {
	p := &w.player
	pc := w.cfg.Player

	speed := pc.BaseSpeed
	if in.Run {
		speed *= pc.SprintMultiplier
	}

	// An unblocked direction moves the player, right first. A blocked
	// direction only turns the player to face it.
	switch {
	case in.Right && !p.CollidesRight:
		p.Facing, p.VX = 1, speed
	case in.Left && !p.CollidesLeft:
		p.Facing, p.VX = -1, -speed
	case in.Right:
		p.Facing = 1
	case in.Left:
		p.Facing = -1
	}

	if in.Jump && p.Standing {
		p.VY = pc.JumpImpulse
		p.Standing = false
	}

	if in.Fire {
		w.fire()
	}

	if !p.Standing {
		p.VY += w.cfg.Physics.Gravity * dt
		if p.VY > w.cfg.Physics.MaxFallSpeed {
			p.VY = w.cfg.Physics.MaxFallSpeed
		}
	}
}

// fire appends a bullet at the muzzle on the player's facing side.
func (w *World) fire() {
	p := &w.player
	bc := w.cfg.Bullet

	x := w.Traveled() + p.W
	if p.Facing < 0 {
		x = w.Traveled() - bc.Width
	}
	w.bullets = append(w.bullets, Bullet{
		X:     x,
		Y:     p.Y + p.H/3,
		W:     bc.Width,
		H:     bc.Height,
		Speed: bc.Speed,
		Dir:   p.Facing,
	})
}
