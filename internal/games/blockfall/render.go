package blockfall

import (
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
)

const (
	cellW = 2  // screen columns per board cell
	hudW  = 18 // width of the side panel
	gap   = 2  // columns between board and panel
)

var tileColors = map[engine.TileID]core.Color{
	engine.TileI:     core.ColorCyan,
	engine.TileO:     core.ColorYellow,
	engine.TileT:     core.ColorMagenta,
	engine.TileJ:     core.ColorBlue,
	engine.TileL:     core.ColorOrange,
	engine.TileS:     core.ColorGreen,
	engine.TileZ:     core.ColorRed,
	engine.TileGhost: core.ColorGray,
}

// layout is where the board and panel sit on the screen.
type layout struct {
	frame core.Rect // board including its border
	hud   core.Rect
	board core.Rect // board bounds in board coordinates
}

func (g *Game) layout(dst *core.Screen) (layout, bool) {
	x, y, w, h := g.session.Bounds()
	frameW := w*cellW + 2
	frameH := h + 2
	total := frameW + gap + hudW

	if dst.Width() < frameW || dst.Height() < frameH {
		return layout{}, false
	}

	outer := dst.Bounds().Centered(min(total, dst.Width()), frameH)
	l := layout{
		frame: core.NewRect(outer.X, outer.Y, frameW, frameH),
		board: core.NewRect(x, y, w, h),
	}
	if dst.Width() >= total {
		l.hud = core.NewRect(l.frame.Right()+gap, outer.Y, hudW, frameH)
	}
	return l, true
}

// toScreen maps a board cell to the left column and row on screen.
func (l layout) toScreen(c engine.Cell) (int, int) {
	sx := l.frame.X + 1 + (c.X-l.board.X)*cellW
	sy := l.frame.Y + 1 + (l.board.Bottom() - 1 - c.Y)
	return sx, sy
}

// Render draws the board, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2, "Cannot start: "+g.err.Error(), core.ColorRed)
		return
	}
	if g.session == nil {
		return
	}

	l, ok := g.layout(dst)
	if !ok {
		_, _, w, h := g.session.Bounds()
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("need %dx%d", w*cellW+2, h+2), core.ColorGray)
		return
	}

	dst.DrawBox(l.frame, core.ColorGray)
	g.drawLayer(dst, l, g.ghost, '░')
	g.drawLayer(dst, l, g.board, '█')

	if !l.hud.Empty() {
		g.renderHUD(dst, l.hud)
	}

	switch {
	case g.session.GameOver():
		g.renderOverlay(dst, l.frame, []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Lines %d", g.session.Lines()),
			fmt.Sprintf("Level %d", g.session.Level()),
			"",
			"R restart",
			"Esc menu",
		})
	case g.paused:
		g.renderOverlay(dst, l.frame, []string{"PAUSED", "", "P resume"})
	}
}

func (g *Game) drawLayer(dst *core.Screen, l layout, layer *tileLayer, glyph rune) {
	for c, tile := range layer.tiles {
		if !l.board.Contains(c.X, c.Y) {
			continue
		}
		sx, sy := l.toScreen(c)
		color := tileColors[tile]
		for i := range cellW {
			dst.SetCell(sx+i, sy, glyph, color)
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen, r core.Rect) {
	rows := []struct {
		label string
		value string
	}{
		{"Mode", g.Title()},
		{"Level", fmt.Sprint(g.session.Level())},
		{"Lines", fmt.Sprint(g.session.Lines())},
		{"Time", formatClock(g.session.Elapsed())},
		{"Speed", g.session.StepDelay().String()},
	}

	dst.DrawTextColored(r.X, r.Y+1, "B L O C K F A L L", core.ColorBrightWhite)
	for i, row := range rows {
		y := r.Y + 3 + i
		dst.DrawTextColored(r.X, y, row.label, core.ColorGray)
		dst.DrawTextColored(r.X+7, y, row.value, core.ColorDefault)
	}
}

// renderOverlay draws lines centered over the board frame.
func (g *Game) renderOverlay(dst *core.Screen, frame core.Rect, lines []string) {
	width := 0
	for _, s := range lines {
		width = max(width, len(s))
	}
	box := frame.Centered(min(width+4, frame.W), len(lines)+2)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	for i, s := range lines {
		x := box.X + (box.W-len(s))/2
		dst.DrawTextColored(x, box.Y+1+i, s, core.ColorBrightWhite)
	}
}

func formatClock(d time.Duration) string {
	d = d.Truncate(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
