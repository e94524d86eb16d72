package game

import (
	"github.com/go-gl/mathgl/mgl64"
)

// updateHazards runs the slow-motion timer, pickups, the wall, enemy fire and
// projectiles. It returns the cause when the run has to restart.
func (w *World) updateHazards(dt float64) ResetCause {
	w.tickSlowMotion(dt)
	w.collectPickups()
	w.updateWall(dt)
	w.fireEnemies()
	w.moveProjectiles(dt)

	if w.enemyBulletHit() {
		return ResetEnemyBullet
	}
	if w.occluded && w.cfg.Wall.Lethal {
		return ResetWall
	}
	return ResetNone
}

// tickSlowMotion counts the effect down in seconds and restores normal speed when it runs out.
func (w *World) tickSlowMotion(dt float64) {
	if w.slowMotionLeft <= 0 {
		return
	}
	w.slowMotionLeft -= dt
	if w.slowMotionLeft <= 0 {
		w.slowMotionLeft = 0
		w.speedMultiplier = 1.0
	}
}

// collectPickups starts slow motion when any pickup touches the sensor.
// Collecting one pickup clears the whole pickup set.
func (w *World) collectPickups() {
	sensor := w.player.HorizontalSensor()
	for _, pk := range w.pickups {
		if !sensor.Intersects(w.folded(pk.Box)) {
			continue
		}
		w.speedMultiplier = w.cfg.SlowMotion.Multiplier
		w.slowMotionLeft = w.cfg.SlowMotion.Duration
		w.pickups = w.pickups[:0]
		return
	}
}

// updateWall advances the pursuing wall. It accelerates while lagging far
// behind, falls back during slow motion and is pinned at the maximum lag.
func (w *World) updateWall(dt float64) {
	wc := w.cfg.Wall
	traveled := w.Traveled()
	lag := traveled - w.wall.X

	speed := w.difficulty.WallSpeed(wc.NormalSpeed, traveled)
	if lag > wc.CatchUpLag {
		speed = w.difficulty.WallSpeed(wc.AcceleratedSpeed, traveled)
	}
	if w.speedMultiplier < 1 {
		speed = -wc.RetreatSpeed
	}

	w.wall.X += speed * dt * w.speedMultiplier
	if traveled-w.wall.X > wc.MaxLag {
		w.wall.X = traveled - wc.MaxLag
		speed = 0
	}
	w.wall.Speed = speed
	w.occluded = w.wall.X-traveled > wc.OvertakeMargin
}

// fireEnemies spawns an enemy bullet for every enemy whose cooldown has run out.
// The bullet is aimed at the player's current center and never steers afterwards.
func (w *World) fireEnemies() {
	ec := w.cfg.Enemy
	p := &w.player
	target := mgl64.Vec2{w.Traveled() + p.W/2, p.Y + p.H/2}
	size := mgl64.Vec2{ec.BulletWidth, ec.BulletHeight}

	for i := range w.enemies {
		e := &w.enemies[i]
		if e.Cooldown > 0 {
			continue
		}
		e.Cooldown = w.difficulty.Cooldown(ec.Cooldown, w.Traveled())

		origin := mgl64.Vec2{e.Box.X + e.Box.W/2, e.Box.Y + e.Box.H/2}
		w.enemyBullets = append(w.enemyBullets, EnemyBullet{
			Pos: origin.Sub(size.Mul(0.5)),
			Vel: target.Sub(origin).Mul(1 / ec.BulletDivisor),
			W:   ec.BulletWidth,
			H:   ec.BulletHeight,
		})
	}
}

// moveProjectiles moves player bullets at constant speed and enemy bullets
// along their fixed velocity, scaled by the world speed multiplier.
func (w *World) moveProjectiles(dt float64) {
	for i := range w.bullets {
		b := &w.bullets[i]
		b.X += b.Speed * b.Dir * dt
	}
	for i := range w.enemyBullets {
		b := &w.enemyBullets[i]
		b.Pos = b.Pos.Add(b.Vel.Mul(dt * w.speedMultiplier))
	}
}

// enemyBulletHit reports whether any enemy bullet touches the player's sensor.
func (w *World) enemyBulletHit() bool {
	sensor := w.player.HorizontalSensor()
	for _, b := range w.enemyBullets {
		if sensor.Intersects(w.folded(b.Box())) {
			return true
		}
	}
	return false
}
