package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	WallChar   = '▓'
	BallChar   = '●'
	NetChar    = '┊'
)

// viewport projects world coordinates (origin at center, +Y up) onto a
// screen of w×h cells.
type viewport struct {
	ext  core.Vec2 // World half-extent shown on screen
	w, h int
}

// cellX maps a world x to a continuous column in [0, w].
func (v viewport) cellX(x float64) float64 {
	return (x + v.ext.X) / (2 * v.ext.X) * float64(v.w)
}

// cellY maps a world y to a continuous row in [0, h].
func (v viewport) cellY(y float64) float64 {
	return (v.ext.Y - y) / (2 * v.ext.Y) * float64(v.h)
}

// rect returns the cells covered by a box. Every box covers at least one cell.
func (v viewport) rect(b core.Box) core.Rect {
	lo, hi := b.Min(), b.Max()
	x0 := int(math.Floor(v.cellX(lo.X)))
	x1 := int(math.Ceil(v.cellX(hi.X)))
	y0 := int(math.Floor(v.cellY(hi.Y)))
	y1 := int(math.Ceil(v.cellY(lo.Y)))
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// point returns the cell containing a world position.
func (v viewport) point(p core.Vec2) (int, int) {
	x := core.Clamp(int(math.Floor(v.cellX(p.X))), 0, max(0, v.w-1))
	y := core.Clamp(int(math.Floor(v.cellY(p.Y))), 0, max(0, v.h-1))
	return x, y
}

// Render draws the current world to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	vp := viewport{ext: g.sim.Geometry.Extent(), w: dst.Width(), h: dst.Height()}
	w := g.sim.World

	// Draw center line (net)
	dst.DrawVLine(dst.Width()/2, 0, dst.Height(), NetChar, core.ColorDarkGray)

	if w.Top != nil {
		dst.FillRect(vp.rect(w.Top.Box), WallChar, core.ColorDarkGray)
	}
	if w.Bottom != nil {
		dst.FillRect(vp.rect(w.Bottom.Box), WallChar, core.ColorDarkGray)
	}
	if w.Player != nil {
		dst.FillRect(vp.rect(w.Player.Box()), PaddleChar, core.ColorGray)
	}
	if w.Opponent != nil {
		dst.FillRect(vp.rect(w.Opponent.Box()), PaddleChar, core.ColorGray)
	}
	if w.Ball != nil {
		x, y := vp.point(w.Ball.Pos)
		dst.SetColored(x, y, BallChar, core.ColorMagenta)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
