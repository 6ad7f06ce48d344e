package tui

import (
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Default play field in logical pixels, used until the game reports its own.
const (
	defaultFieldW = 600
	defaultFieldH = 150
)

// TermCanvas draws the sprite calls of a game onto a character Screen.
// Logical pixels are scaled so the whole play field fits the screen; every
// sprite kind is drawn with its own glyph.
type TermCanvas struct {
	screen   *core.Screen
	fieldW   int
	fieldH   int
	inverted bool
}

// NewTermCanvas creates a canvas of cols x rows cells showing a play field of
// fieldW x fieldH logical pixels.
func NewTermCanvas(cols, rows, fieldW, fieldH int) *TermCanvas {
	c := &TermCanvas{screen: core.NewScreen(max(cols, 1), max(rows, 1))}
	c.SetField(fieldW, fieldH)
	return c
}

// SetField changes the logical size of the play field.
func (c *TermCanvas) SetField(w, h int) {
	if w <= 0 {
		w = defaultFieldW
	}
	if h <= 0 {
		h = defaultFieldH
	}
	c.fieldW, c.fieldH = w, h
}

// Resize changes the cell size of the canvas.
func (c *TermCanvas) Resize(cols, rows int) {
	c.screen.Resize(max(cols, 1), max(rows, 1))
}

// Screen returns the underlying cell buffer.
func (c *TermCanvas) Screen() *core.Screen {
	return c.screen
}

// Inverted reports whether night colours are active.
func (c *TermCanvas) Inverted() bool {
	return c.inverted
}

// Clear wipes the screen.
func (c *TermCanvas) Clear() {
	c.screen.Clear()
}

// SetInverted switches to night colours.
func (c *TermCanvas) SetInverted(on bool) {
	c.inverted = on
}

func (c *TermCanvas) col(x int) int {
	return floorDiv(x*c.screen.Width(), c.fieldW)
}

func (c *TermCanvas) row(y int) int {
	return floorDiv(y*c.screen.Height(), c.fieldH)
}

// cells maps a logical rectangle to cells. Anything visible covers at least one cell.
func (c *TermCanvas) cells(r core.Rect) core.Rect {
	x0, y0 := c.col(r.X), c.row(r.Y)
	x1, y1 := c.col(r.Right()), c.row(r.Bottom())
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func (c *TermCanvas) color(base core.Color, alpha float64) core.Color {
	if alpha < 0.75 {
		base = core.ColorGray
	}
	if c.inverted {
		return base.Invert()
	}
	return base
}

// DrawSprite draws a glyph approximation of the sprite into dst.
// Nearly transparent draws are skipped.
func (c *TermCanvas) DrawSprite(sp core.Sprite, _ core.Rect, dst core.Rect, alpha float64) {
	if alpha < 0.15 {
		return
	}
	r := c.cells(dst)
	s := c.screen

	switch sp.Kind {
	case core.SpriteTrex:
		col := c.color(core.ColorDefault, alpha)
		s.DrawRect(r, '█', col)
		// Eye on the top row, facing right.
		s.SetColored(r.Right()-2, r.Y, '▀', col)

	case core.SpriteCactusSmall, core.SpriteCactusLarge:
		col := c.color(core.ColorDefault, alpha)
		s.DrawRect(r, '║', col)
		s.DrawHLine(r.X, r.Y, r.W, 'Ψ', col)

	case core.SpritePterodactyl:
		col := c.color(core.ColorDefault, alpha)
		wing := '^'
		if sp.Index%2 == 1 {
			wing = 'v'
		}
		s.DrawHLine(r.X, r.Y, r.W, wing, col)
		for y := r.Y + 1; y < r.Bottom(); y++ {
			s.DrawHLine(r.X, y, r.W, '=', col)
		}
		s.SetColored(r.X, r.Y+r.H/2, '<', col)

	case core.SpriteHorizon:
		col := c.color(core.ColorGray, alpha)
		y := c.row(dst.Y + dst.H/2)
		for x := r.X; x < r.Right(); x++ {
			ch := '─'
			if sp.Index == 1 && (x-r.X)%7 == 3 {
				ch = '‿'
			}
			s.SetColored(x, y, ch, col)
		}

	case core.SpriteCloud:
		col := c.color(core.ColorGray, alpha)
		y := c.row(dst.Y + dst.H/2)
		s.DrawHLine(r.X, y, r.W, '~', col)

	case core.SpriteMoon:
		col := c.color(core.ColorYellow, alpha)
		ch := '('
		if r.W > 1 {
			ch = 'O'
		}
		s.SetColored(r.X, r.Y, ch, col)

	case core.SpriteStar:
		s.SetColored(r.X, r.Y, '*', c.color(core.ColorWhite, alpha))

	case core.SpriteText:
		c.drawText(sp.Index, r, alpha)

	case core.SpriteRestart:
		c.centered(r, "[R]", c.color(core.ColorDefault, alpha))
	}
}

func (c *TermCanvas) drawText(glyph int, r core.Rect, alpha float64) {
	col := c.color(core.ColorDefault, alpha)
	switch {
	case glyph >= 0 && glyph <= 9:
		c.screen.SetColored(r.X, r.Y, rune('0'+glyph), col)
	case glyph == 10:
		c.screen.SetColored(r.X, r.Y, 'H', col)
	case glyph == 11:
		c.screen.SetColored(r.X, r.Y, 'I', col)
	case glyph < 0:
		c.centered(r, "G A M E   O V E R", col)
	}
}

func (c *TermCanvas) centered(r core.Rect, text string, col core.Color) {
	n := len([]rune(text))
	x := r.X + (r.W-n)/2
	c.screen.DrawText(x, r.Y+r.H/2, text, col)
}

// StrokeRect outlines r in the given colour.
func (c *TermCanvas) StrokeRect(r core.Rect, col core.Color) {
	cr := c.cells(r)
	if c.inverted {
		col = col.Invert()
	}
	if cr.W < 2 || cr.H < 2 {
		c.screen.DrawRect(cr, '+', col)
		return
	}
	c.screen.DrawBox(cr, col)
}
