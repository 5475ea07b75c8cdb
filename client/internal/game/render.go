package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"mazedash/shared/game/maze"
	"mazedash/shared/protocol"
)

var (
	colBg    = color.NRGBA{16, 18, 26, 255}
	colPanel = color.NRGBA{32, 32, 44, 255}
	colText  = color.NRGBA{230, 232, 240, 255}
	colMuted = color.NRGBA{160, 165, 180, 255}
	colBad   = color.NRGBA{255, 120, 120, 255}
	colGold  = color.NRGBA{240, 196, 25, 255}
)

func cellColor(c maze.Cell) color.NRGBA {
	switch c {
	case maze.CellWall:
		return color.NRGBA{70, 74, 92, 255}
	case maze.CellStart:
		return color.NRGBA{46, 120, 70, 255}
	case maze.CellExit:
		return colGold
	}
	return color.NRGBA{24, 26, 34, 255}
}

func (g *Game) drawTopBar(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(protocol.ScreenW), float64(topBarH), colPanel)
	text.Draw(screen, "MAZE DASH", basicfont.Face7x13, pad+4, 27, colText)

	if g.sess != nil {
		t := fmt.Sprintf("TIME %ds", g.sess.Seconds())
		tx := protocol.ScreenW - boardPanelW - pad - 7*len(t)
		text.Draw(screen, t, basicfont.Face7x13, tx, 27, colGold)
	}
}

func (g *Game) drawBoardPanel(screen *ebiten.Image) {
	x := protocol.ScreenW - boardPanelW
	ebitenutil.DrawRect(screen, float64(x), 0, float64(boardPanelW), float64(protocol.ScreenH), colPanel)
	ebitenutil.DrawRect(screen, float64(x), 0, 1, float64(protocol.ScreenH), color.NRGBA{12, 13, 18, 255})

	text.Draw(screen, "LEADERBOARD", basicfont.Face7x13, x+pad+6, 27, colGold)

	y := topBarH + rowH
	if len(g.board.Entries) == 0 {
		text.Draw(screen, "No escapes yet.", basicfont.Face7x13, x+pad+6, y, colMuted)
	}
	for i, e := range g.board.Entries {
		line := fmt.Sprintf("%2d. %-12s %4.0fs", i+1, trim(e.PlayerName, 12), e.TimeTaken)
		text.Draw(screen, line, basicfont.Face7x13, x+pad+6, y+i*rowH, colText)
	}

	if g.boardStale || g.connSt == stateFailed {
		text.Draw(screen, "live updates off", basicfont.Face7x13, x+pad+6, protocol.ScreenH-10, colBad)
	}
}

func (g *Game) mazeViewport() (int, int, int) {
	n := g.grid.Size()
	if n == 0 {
		return 0, topBarH, 0
	}
	areaW := protocol.ScreenW - boardPanelW - 2*pad
	areaH := protocol.ScreenH - topBarH - 2*pad
	tile := areaW / n
	if t := areaH / n; t < tile {
		tile = t
	}
	x0 := pad + (areaW-tile*n)/2
	y0 := topBarH + pad + (areaH-tile*n)/2
	return x0, y0, tile
}

func (g *Game) drawMaze(screen *ebiten.Image) {
	x0, y0, tile := g.mazeViewport()
	if tile <= 0 {
		return
	}

	n := g.grid.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			ebitenutil.DrawRect(screen,
				float64(x0+c*tile)+1, float64(y0+r*tile)+1,
				float64(tile)-2, float64(tile)-2,
				cellColor(g.grid[r][c]))
		}
	}

	p := g.sess.Position()
	inset := tile / 4
	ebitenutil.DrawRect(screen,
		float64(x0+p.Col*tile+inset), float64(y0+p.Row*tile+inset),
		float64(tile-2*inset), float64(tile-2*inset),
		color.NRGBA{235, 235, 235, 255})

	if g.scr == screenPlaying {
		text.Draw(screen, "Arrow keys to move. Reach the gold tile.",
			basicfont.Face7x13, pad+4, protocol.ScreenH-10, colMuted)
	}
}

func (g *Game) drawLoading(screen *ebiten.Image) {
	if g.mazeErrMsg == "" {
		text.Draw(screen, "Loading maze...", basicfont.Face7x13,
			(protocol.ScreenW-boardPanelW)/2-52, protocol.ScreenH/2, colText)
		g.retryBtn = rect{}
		return
	}

	ebitenutil.DrawRect(screen, 0, 0, float64(protocol.ScreenW), float64(protocol.ScreenH), color.NRGBA{0, 0, 0, 140})

	w, h := 380, 150
	x := (protocol.ScreenW - w) / 2
	y := (protocol.ScreenH - h) / 2
	ebitenutil.DrawRect(screen, float64(x), float64(y), float64(w), float64(h), colPanel)

	text.Draw(screen, "Unable to load the maze", basicfont.Face7x13, x+20, y+36, colBad)
	text.Draw(screen, trim(g.mazeErrMsg, 48), basicfont.Face7x13, x+20, y+58, colMuted)
	text.Draw(screen, "Press R to retry", basicfont.Face7x13, x+20, y+84, colText)

	g.retryBtn = rect{x: x + 20, y: y + 100, w: btnW, h: btnH}
	drawButton(screen, g.retryBtn, "Retry", true)
}

func (g *Game) drawEscapedOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(protocol.ScreenW), float64(protocol.ScreenH), color.NRGBA{0, 0, 0, 140})

	w, h := 380, 230
	x := (protocol.ScreenW - w) / 2
	y := (protocol.ScreenH - h) / 2
	ebitenutil.DrawRect(screen, float64(x), float64(y), float64(w), float64(h), colPanel)

	text.Draw(screen, fmt.Sprintf("You escaped in %ds!", g.sess.Seconds()),
		basicfont.Face7x13, x+20, y+36, colGold)

	text.Draw(screen, "Name:", basicfont.Face7x13, x+20, y+76, colText)
	g.nameBox = rect{x: x + 70, y: y + 62, w: 240, h: 22}
	ebitenutil.DrawRect(screen, float64(g.nameBox.x), float64(g.nameBox.y), float64(g.nameBox.w), float64(g.nameBox.h), color.NRGBA{20, 21, 30, 255})
	if g.inputFocus {
		vector.StrokeRect(screen, float32(g.nameBox.x), float32(g.nameBox.y), float32(g.nameBox.w), float32(g.nameBox.h), 1, colGold, false)
	}
	name := g.nameInput
	if g.inputFocus {
		name += "_"
	}
	text.Draw(screen, name, basicfont.Face7x13, g.nameBox.x+6, g.nameBox.y+15, colText)

	g.submitBtn = rect{x: x + 20, y: y + 110, w: btnW, h: btnH}
	g.againBtn = rect{x: x + 20 + btnW + 12, y: y + 110, w: btnW, h: btnH}
	drawButton(screen, g.submitBtn, "Submit score", !g.submitting && !g.submitted)
	drawButton(screen, g.againBtn, "Play again", true)

	if g.statusMsg != "" {
		col := colMuted
		if g.submitted {
			col = colGold
		}
		text.Draw(screen, trim(g.statusMsg, 48), basicfont.Face7x13, x+20, y+170, col)
	}
	text.Draw(screen, "Enter submits. Ctrl+V pastes.", basicfont.Face7x13, x+20, y+206, colMuted)
}

func drawButton(dst *ebiten.Image, r rect, label string, enabled bool) {
	col := color.NRGBA{58, 64, 90, 255}
	if !enabled {
		col = color.NRGBA{44, 46, 58, 255}
	}
	ebitenutil.DrawRect(dst, float64(r.x), float64(r.y), float64(r.w), float64(r.h), col)
	tc := colText
	if !enabled {
		tc = colMuted
	}
	text.Draw(dst, label, basicfont.Face7x13, r.x+(r.w-7*len(label))/2, r.y+r.h/2+5, tc)
}

func trim(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-2]) + ".."
}
