package trex

import (
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Render draws the current frame into dst, back to front.
func (g *Game) Render(dst core.Canvas) {
	if !g.ready {
		return
	}
	dst.Clear()
	dst.SetInverted(g.inverted)

	g.drawHorizon(dst)
	g.drawMeter(dst)
	g.drawCharacter(dst)
	if g.crashed {
		g.drawGameOver(dst)
	}
	if g.debugBoxes {
		g.drawBoxes(dst)
	}
}

// scaled returns a source rectangle on the sheet, sizes given in 1x pixels.
func (g *Game) scaled(x, y, w, h int) core.Rect {
	s := g.sheet.scale
	return core.NewRect(x, y, w*s, h*s)
}

func (g *Game) drawHorizon(dst core.Canvas) {
	h := g.horizon
	s := g.sheet.scale
	lc := g.cfg.Horizon
	for i := range 2 {
		src := g.scaled(g.sheet.def.Horizon.X+h.Line.SourceX[i]*s, g.sheet.def.Horizon.Y, lc.Width, lc.Height)
		bump := 0
		if h.Line.Bumpy(i) {
			bump = 1
		}
		dst.DrawSprite(core.Sprite{Kind: core.SpriteHorizon, Index: bump}, src,
			core.NewRect(h.Line.XPos[i], lc.YPos, lc.Width, lc.Height), 1)
	}

	g.drawNight(dst)

	cc := g.cfg.Cloud
	for _, c := range h.Clouds {
		src := g.scaled(g.sheet.def.Cloud.X, g.sheet.def.Cloud.Y, cc.Width, cc.Height)
		dst.DrawSprite(core.Sprite{Kind: core.SpriteCloud}, src,
			core.NewRect(c.XPos, c.YPos, cc.Width, cc.Height), 1)
	}

	for _, o := range h.Obstacles {
		g.drawObstacle(dst, o)
	}
}

func (g *Game) drawNight(dst core.Canvas) {
	n := g.horizon.Night
	if n.Opacity <= 0 {
		return
	}
	nc := g.cfg.NightMode
	s := g.sheet.scale

	if n.DrawStars {
		for i, st := range n.Stars {
			src := g.scaled(g.sheet.def.Star.X, g.sheet.def.Star.Y+nc.StarSize*i*s, nc.StarSize, nc.StarSize)
			dst.DrawSprite(core.Sprite{Kind: core.SpriteStar, Index: i}, src,
				core.NewRect(core.RoundHalfUp(st.X), st.Y, nc.StarSize, nc.StarSize), n.Opacity)
		}
	}

	w := n.MoonWidth()
	src := g.scaled(g.sheet.def.Moon.X+nc.Phases[n.CurrentPhase]*s, g.sheet.def.Moon.Y, w, nc.Height)
	dst.DrawSprite(core.Sprite{Kind: core.SpriteMoon, Index: n.CurrentPhase}, src,
		core.NewRect(core.RoundHalfUp(n.XPos), n.YPos, w, nc.Height), n.Opacity)
}

func (g *Game) drawObstacle(dst core.Canvas, o *Obstacle) {
	t := o.Type
	pos := g.sheet.obstacleSprite(t.Type)
	sw := t.Width * g.sheet.scale

	// Groups of 2 and 3 sit side by side after the single sprite on the sheet.
	srcX := pos.X + sw*o.Size*(o.Size-1)/2 + sw*o.CurrentFrame
	src := core.NewRect(srcX, pos.Y, sw*o.Size, t.Height*g.sheet.scale)

	sp := core.Sprite{Kind: obstacleKind(t.Type), Index: o.Size}
	if t.NumFrames > 0 {
		sp.Index = o.CurrentFrame
	}
	dst.DrawSprite(sp, src, core.NewRect(o.XPos, o.YPos, t.Width*o.Size, t.Height), 1)
}

func obstacleKind(typ string) core.SpriteKind {
	switch typ {
	case "CACTUS_LARGE":
		return core.SpriteCactusLarge
	case "PTERODACTYL":
		return core.SpritePterodactyl
	default:
		return core.SpriteCactusSmall
	}
}

func (g *Game) drawMeter(dst core.Canvas) {
	m := g.meter
	if m.Paint {
		g.drawDigits(dst, m.Digits, m.X, m.Y, 1)
	}
	if len(m.HighScore) > 0 {
		g.drawDigits(dst, m.HighScore, m.HighScoreX(), m.Y, 0.8)
	}
}

func (g *Game) drawDigits(dst core.Canvas, digits []int, x, y int, alpha float64) {
	mc := g.cfg.DistanceMeter
	s := g.sheet.scale
	for i, d := range digits {
		if d == glyphBlank {
			continue
		}
		src := g.scaled(g.sheet.def.TextSprite.X+mc.DigitWidth*d*s, g.sheet.def.TextSprite.Y, mc.DigitWidth, mc.DigitHeight)
		dst.DrawSprite(core.Sprite{Kind: core.SpriteText, Index: d}, src,
			core.NewRect(x+i*mc.DestWidth, y, mc.DigitWidth, mc.DigitHeight), alpha)
	}
}

func (g *Game) drawCharacter(dst core.Canvas) {
	c := g.char
	off := c.SpriteOffset()
	src := g.scaled(g.sheet.def.Trex.X+off*g.sheet.scale, g.sheet.def.Trex.Y, c.Width(), c.Height())
	dst.DrawSprite(core.Sprite{Kind: core.SpriteTrex, Index: off}, src,
		core.NewRect(c.XPos, c.YPos, c.Width(), c.Height()), 1)
}

// drawGameOver draws the "GAME OVER" text and the restart icon centred on the play field.
func (g *Game) drawGameOver(dst core.Canvas) {
	gc := g.cfg.GameOver
	s := g.sheet.scale
	text := g.scaled(g.sheet.def.TextSprite.X+gc.TextX*s, g.sheet.def.TextSprite.Y+gc.TextY*s, gc.TextWidth, gc.TextHeight)
	dst.DrawSprite(core.Sprite{Kind: core.SpriteText, Index: glyphBlank}, text, core.NewRect(
		g.width/2-gc.TextWidth/2,
		core.RoundHalfUp(float64(g.height-25)/3),
		gc.TextWidth, gc.TextHeight), 1)

	icon := g.scaled(g.sheet.def.Restart.X, g.sheet.def.Restart.Y, gc.RestartWidth, gc.RestartHeight)
	dst.DrawSprite(core.Sprite{Kind: core.SpriteRestart}, icon, core.NewRect(
		g.width/2-gc.RestartWidth/2,
		g.height/2,
		gc.RestartWidth, gc.RestartHeight), 1)
}

// drawBoxes outlines the hit boxes used against the nearest obstacle.
func (g *Game) drawBoxes(dst core.Canvas) {
	c := g.char
	charBox := core.NewRect(c.XPos, c.YPos, c.Width(), c.Height()).Inset(1)
	for _, b := range c.CollisionBoxes() {
		dst.StrokeRect(b.Translate(charBox), core.ColorCyan)
	}
	if len(g.horizon.Obstacles) == 0 {
		return
	}
	_, obsBox := outerBoxes(c, g.horizon.Obstacles[0])
	for _, b := range g.horizon.Obstacles[0].CollisionBoxes {
		dst.StrokeRect(b.Translate(obsBox), core.ColorRed)
	}
}
