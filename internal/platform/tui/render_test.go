package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/timeless/internal/core"
	"github.com/vovakirdan/timeless/internal/game"
)

func TestRasterizerPlacesSprites(t *testing.T) {
	r := DefaultRasterizer()
	s := core.NewScreen(40, 16)

	r.Draw(s, game.RenderList{Items: []game.Sprite{
		{ID: game.SpritePlayer, X: 48, Y: 192, W: 64, H: 64},
		{ID: game.SpriteBlockGrass, X: 0, Y: 320, W: 128, H: 128},
	}})

	// Player covers columns 3..6 and rows 7..8 below the HUD row.
	assert.Equal(t, '@', s.Get(3, 7))
	assert.Equal(t, '@', s.Get(6, 8))
	assert.Equal(t, ' ', s.Get(7, 7))
	assert.Equal(t, core.ColorBrightYellow, s.GetCell(3, 7).Color)

	assert.Equal(t, '█', s.Get(0, 11))
	assert.Equal(t, '█', s.Get(7, 14))
	assert.Equal(t, core.ColorGreen, s.GetCell(0, 11).Color)
}

func TestRasterizerTinySpriteCoversOneCell(t *testing.T) {
	r := DefaultRasterizer()
	s := core.NewScreen(20, 10)

	r.Draw(s, game.RenderList{Items: []game.Sprite{
		{ID: game.SpriteBullet, X: 33, Y: 40, W: 4, H: 4},
	}})

	assert.Equal(t, '-', s.Get(2, 2))
	assert.Equal(t, ' ', s.Get(3, 2))
}

func TestRasterizerBackgroundRotation(t *testing.T) {
	r := DefaultRasterizer()
	s := core.NewScreen(20, 10)

	r.Draw(s, game.RenderList{Items: []game.Sprite{
		{ID: game.SpriteBackground, X: 0, Y: 0, W: 128, H: 128, Rotation: 90},
	}})

	assert.Equal(t, '\'', s.Get(0, 1))
	assert.Equal(t, ' ', s.Get(1, 1))
}

func TestRasterizerOccludedFillsView(t *testing.T) {
	r := DefaultRasterizer()
	s := core.NewScreen(10, 5)
	s.DrawText(0, 0, "stale")

	r.Draw(s, game.RenderList{
		Items:    []game.Sprite{{ID: game.SpritePlayer, X: 0, Y: 0, W: 64, H: 64}},
		Occluded: true,
	})

	assert.Equal(t, ' ', s.Get(0, 0), "HUD row is cleared, not filled")
	for y := 1; y < 5; y++ {
		assert.Equal(t, strings.Repeat("▒", 10), s.Row(y))
	}
}

func TestDrawHUD(t *testing.T) {
	s := core.NewScreen(60, 2)
	DrawHUD(s, core.GameState{Distance: 120, Best: 300, Deaths: 2, Slowed: true})

	row := s.Row(0)
	assert.Contains(t, row, "distance 120")
	assert.Contains(t, row, "best 300")
	assert.Contains(t, row, "deaths 2")
	assert.Contains(t, row, "SLOW")
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(3, 1, 'x', core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ab")
	assert.Contains(t, lines[1], "x")
}
