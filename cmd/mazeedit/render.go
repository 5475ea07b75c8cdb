package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"mazedash/shared/game/maze"
)

func cellColor(c maze.Cell) color.NRGBA {
	switch c {
	case maze.CellWall:
		return color.NRGBA{70, 74, 92, 255}
	case maze.CellStart:
		return color.NRGBA{46, 120, 70, 255}
	case maze.CellExit:
		return color.NRGBA{240, 196, 25, 255}
	}
	return color.NRGBA{24, 26, 34, 255}
}

func (e *editor) Draw(screen *ebiten.Image) {
	vw, vh := ebiten.WindowSize()
	screen.Fill(color.NRGBA{16, 18, 26, 255})

	for i := 0; i < toolCount; i++ {
		x, y, w, h := btnRect(i)
		col := color.NRGBA{44, 46, 58, 255}
		if e.tool == i {
			col = color.NRGBA{58, 64, 90, 255}
		}
		ebitenutil.DrawRect(screen, float64(x), float64(y), float64(w), float64(h), col)
		text.Draw(screen, toolNames[i], basicfont.Face7x13, x+10, y+16, color.White)
	}
	hint := color.NRGBA{160, 165, 180, 255}
	text.Draw(screen, "S  save", basicfont.Face7x13, 8, 8+toolCount*28+16, hint)
	text.Draw(screen, "+/- size", basicfont.Face7x13, 8, 8+toolCount*28+34, hint)

	x0, y0, tile := e.viewport()
	n := e.grid.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cell := e.grid[r][c]
			ebitenutil.DrawRect(screen,
				float64(x0+c*tile)+1, float64(y0+r*tile)+1,
				float64(tile)-2, float64(tile)-2, cellColor(cell))
			if cell == maze.CellStart || cell == maze.CellExit {
				letter := "S"
				if cell == maze.CellExit {
					letter = "E"
				}
				text.Draw(screen, letter, basicfont.Face7x13,
					x0+c*tile+tile/2-3, y0+r*tile+tile/2+5, color.White)
			}
		}
	}

	ebitenutil.DrawRect(screen, 0, float64(vh-statusH), float64(vw), statusH, color.NRGBA{32, 32, 44, 255})
	mark := ""
	if e.dirty {
		mark = "*"
	}
	line := fmt.Sprintf("%s%s  [%dx%d]  %s", e.path, mark, n, n, e.status)
	text.Draw(screen, line, basicfont.Face7x13, 8, vh-10, color.White)
}
