package game

import (
	"math"

	"github.com/vovakirdan/timeless/internal/core"
)

// Camera folds absolute world x coordinates into view coordinates.
// Forward motion past Threshold accumulates in Scroll while the player stays
// pinned; Scroll is non-zero only while the player sits at the threshold.
type Camera struct {
	Threshold float64
	Scroll    float64
}

// Traveled returns the player's absolute world x.
func (c Camera) Traveled(playerX float64) float64 {
	return playerX + c.Scroll
}

// Fold maps an absolute x into view coordinates for the given player position.
func (c Camera) Fold(x, playerX float64) float64 {
	if playerX < c.Threshold {
		return x
	}
	return x - playerX + c.Threshold - c.Scroll
}

// Unfold is the inverse of Fold.
func (c Camera) Unfold(x, playerX float64) float64 {
	if playerX < c.Threshold {
		return x
	}
	return x + playerX - c.Threshold + c.Scroll
}

// FoldRect returns r with its x folded into view coordinates.
func (c Camera) FoldRect(r core.Rect, playerX float64) core.Rect {
	r.X = c.Fold(r.X, playerX)
	return r
}

// Shift moves the player horizontally by dx and returns the displacement
// actually applied. Forward motion fills the view up to the threshold and
// then scrolls; backward motion unwinds the scroll first, then moves the
// player, stopping at the left edge of the view.
func (c *Camera) Shift(p *Player, dx float64) float64 {
	if dx >= 0 {
		room := c.Threshold - p.X
		if room < 0 {
			room = 0
		}
		if dx <= room {
			p.X += dx
			return dx
		}
		p.X = math.Max(p.X, c.Threshold)
		c.Scroll += dx - room
		return dx
	}

	back := -dx
	if back <= c.Scroll {
		c.Scroll -= back
		return dx
	}
	unwound := c.Scroll
	c.Scroll = 0
	back = core.ClampF(back-unwound, 0, p.X)
	p.X -= back
	return -(unwound + back)
}
