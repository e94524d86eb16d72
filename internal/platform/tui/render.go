package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/timeless/internal/core"
	"github.com/vovakirdan/timeless/internal/game"
)

// colorStyles holds one lipgloss style per palette color. It is built once
// and only read afterwards, so SSH sessions can share it.
var colorStyles = func() map[core.Color]lipgloss.Style {
	palette := []core.Color{
		core.ColorDefault, core.ColorRed, core.ColorGreen, core.ColorYellow,
		core.ColorMagenta, core.ColorBrightRed, core.ColorBrightYellow,
		core.ColorBrightCyan, core.ColorBrown, core.ColorGray,
	}
	styles := make(map[core.Color]lipgloss.Style, len(palette))
	for _, c := range palette {
		styles[c] = newColorStyle(c)
	}
	return styles
}()

func newColorStyle(c core.Color) lipgloss.Style {
	st := lipgloss.NewStyle()
	if code := c.ANSI(); code != "" {
		st = st.Foreground(lipgloss.Color(code))
	}
	return st
}

// styleFor returns the style that renders runs of color c.
func styleFor(c core.Color) lipgloss.Style {
	if st, ok := colorStyles[c]; ok {
		return st
	}
	return newColorStyle(c)
}

// glyph is how a sprite is drawn in a terminal cell.
type glyph struct {
	r rune
	c core.Color
}

// spriteGlyphs maps sprite identifiers to cell glyphs.
var spriteGlyphs = map[game.SpriteID]glyph{
	game.SpritePlayer:      {'@', core.ColorBrightYellow},
	game.SpriteBlockGrass:  {'█', core.ColorGreen},
	game.SpriteBlockStone:  {'█', core.ColorGray},
	game.SpriteBlockDirt:   {'▓', core.ColorBrown},
	game.SpriteBullet:      {'-', core.ColorYellow},
	game.SpriteEnemyBullet: {'*', core.ColorBrightRed},
	game.SpriteEnemy:       {'W', core.ColorRed},
	game.SpritePickup:      {'◆', core.ColorBrightCyan},
	game.SpriteWall:        {'▒', core.ColorMagenta},
}

// backgroundGlyphs picks a decoration rune per quarter turn.
var backgroundGlyphs = [4]rune{'.', '\'', '.', ','}

// Rasterizer draws a render list into a screen buffer.
// One cell covers UnitsX by UnitsY world units; Top rows are reserved for the HUD.
type Rasterizer struct {
	UnitsX float64
	UnitsY float64
	Top    int
}

// DefaultRasterizer returns the default 16x32 units-per-cell mapping below a one-line HUD.
func DefaultRasterizer() Rasterizer {
	return Rasterizer{UnitsX: 16, UnitsY: 32, Top: 1}
}

// Draw clears dst and draws every item of the list in order.
// An occluded list fills the view with the wall glyph instead.
func (r Rasterizer) Draw(dst *core.Screen, rl game.RenderList) {
	dst.Clear()

	if rl.Occluded {
		wall := spriteGlyphs[game.SpriteWall]
		dst.FillRect(0, r.Top, dst.Width(), dst.Height()-r.Top, wall.r, wall.c)
		return
	}

	for _, it := range rl.Items {
		x0, y0, x1, y1 := r.cells(it)
		if it.ID == game.SpriteBackground {
			quarter := int(math.Round(it.Rotation/90)) & 3
			dst.SetColored(x0, y0, backgroundGlyphs[quarter], core.ColorGray)
			continue
		}
		g, ok := spriteGlyphs[it.ID]
		if !ok {
			continue
		}
		dst.FillRect(x0, y0, x1-x0, y1-y0, g.r, g.c)
	}
}

// cells converts a sprite's world rectangle to a half-open cell range.
// Every sprite covers at least one cell.
func (r Rasterizer) cells(it game.Sprite) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(it.X / r.UnitsX))
	y0 = int(math.Floor(it.Y/r.UnitsY)) + r.Top
	x1 = int(math.Ceil((it.X + it.W) / r.UnitsX))
	y1 = int(math.Ceil((it.Y+it.H)/r.UnitsY)) + r.Top
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// DrawHUD writes the run summary on the first row.
func DrawHUD(dst *core.Screen, state core.GameState) {
	hud := fmt.Sprintf(" distance %d  best %d  deaths %d", state.Distance, state.Best, state.Deaths)
	if state.Slowed {
		hud += "  SLOW"
	}
	dst.DrawText(0, 0, hud)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
