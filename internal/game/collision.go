package game

import "github.com/vovakirdan/timeless/internal/core"

// collide runs the collision resolver for one tick: the horizontal pass,
// the sticky-flag refresh, horizontal displacement, then the landing and
// support passes and vertical displacement. Every pass is a single sweep
// over the blocks in spawn order.
func (w *World) collide(dt float64) {
	w.counters.rearm(w.cfg)
	w.resolveHorizontal(dt)
	w.refreshBlockedFlags()
	w.shift(w.player.VX * dt)
	w.player.VX = 0
	w.resolveLanding()
	w.resolveSupport()
	w.player.Y += w.player.VY * dt * w.speedMultiplier
}

// folded returns a block's rectangle in view coordinates.
func (w *World) folded(r core.Rect) core.Rect {
	return w.camera.FoldRect(r, w.player.X)
}

// resolveHorizontal pushes the player out of the first block overlapping the
// horizontal sensor. A Left resolution (player left of the block) blocks
// rightward movement and sets CollidesRight; Right sets CollidesLeft.
func (w *World) resolveHorizontal(dt float64) {
	p := &w.player
	sensor := p.HorizontalSensor()

	for _, b := range w.blocks {
		box := w.folded(b.Box)
		if !sensor.Intersects(box) {
			continue
		}

		_, side := core.ResolveHorizontalPenetration(sensor, box)
		switch side {
		case core.CollisionLeft:
			if p.VX > 0 {
				p.VX = 0
			}
			p.CollidesRight = true
		case core.CollisionRight:
			if p.VX < 0 {
				p.VX = 0
			}
			p.CollidesLeft = true
		}
		w.shift(side.Dir() * w.cfg.Player.WallNudge * dt)
		return
	}
}

// refreshBlockedFlags clears both blocked flags once no block overlaps the sensor.
func (w *World) refreshBlockedFlags() {
	p := &w.player
	if !p.CollidesLeft && !p.CollidesRight {
		return
	}

	sensor := p.HorizontalSensor()
	for _, b := range w.blocks {
		if sensor.Intersects(w.folded(b.Box)) {
			return
		}
	}
	p.CollidesLeft = false
	p.CollidesRight = false
}

// shift moves the player horizontally through the camera and charges the
// applied displacement to every distance-paced counter. Velocity, wall
// nudges and penetration pushes all go through here.
func (w *World) shift(dx float64) {
	moved := w.camera.Shift(&w.player, dx)
	w.counters.consume(moved)
	for i := range w.enemies {
		w.enemies[i].Cooldown -= moved
	}
}

// resolveLanding lands an airborne player on blocks under the landing sensor
// and pushes the body out of each overlapping block.
func (w *World) resolveLanding() {
	p := &w.player
	if p.Standing {
		return
	}

	skin := w.cfg.Player.SensorSkin
	for _, b := range w.blocks {
		box := w.folded(b.Box)
		if !p.LandingSensor(skin).Intersects(box) {
			continue
		}
		if p.VY > 0 {
			p.VY = 0
			p.Standing = true
		}
		dx, dy := core.ResolvePenetration(p.Box(), box)
		p.Y += dy
		w.shift(dx)
	}
}

// resolveSupport drops a standing player whose support sensor touches no block.
func (w *World) resolveSupport() {
	p := &w.player
	if !p.Standing {
		return
	}

	sensor := p.SupportSensor(w.cfg.Player.SensorSkin)
	for _, b := range w.blocks {
		if sensor.Intersects(w.folded(b.Box)) {
			return
		}
	}
	p.Standing = false
}
