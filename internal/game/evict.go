package game

import "slices"

// evict prunes entities farther than world.evict_behind behind the player.
// Player bullets are also pruned that far ahead. Disabled when the distance is 0.
func (w *World) evict() {
	limit := w.cfg.World.EvictBehind
	if limit <= 0 {
		return
	}
	traveled := w.Traveled()
	cutoff := traveled - limit

	w.blocks = slices.DeleteFunc(w.blocks, func(b Block) bool { return b.Box.Right() < cutoff })
	w.backgrounds = slices.DeleteFunc(w.backgrounds, func(b Background) bool { return b.Box.Right() < cutoff })
	w.enemies = slices.DeleteFunc(w.enemies, func(e Enemy) bool { return e.Box.Right() < cutoff })
	w.pickups = slices.DeleteFunc(w.pickups, func(p Pickup) bool { return p.Box.Right() < cutoff })
	w.enemyBullets = slices.DeleteFunc(w.enemyBullets, func(b EnemyBullet) bool { return b.Box().Right() < cutoff })
	w.bullets = slices.DeleteFunc(w.bullets, func(b Bullet) bool {
		return b.Box().Right() < cutoff || b.X > traveled+limit
	})
}
