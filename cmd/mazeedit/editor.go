package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mazedash/shared/game/maze"
)

const (
	toolOpen = iota
	toolWall
	toolStart
	toolExit
	toolCount
)

var (
	toolNames = [toolCount]string{"Open", "Wall", "Start", "Exit"}
	toolCells = [toolCount]maze.Cell{maze.CellOpen, maze.CellWall, maze.CellStart, maze.CellExit}
)

const (
	toolbarW = 120
	statusH  = 28
	minSize  = 2
	maxSize  = 16
)

// editor edits one layout file the server can seed from.
type editor struct {
	grid   maze.Grid
	path   string
	tool   int
	status string
	dirty  bool
}

func blankGrid(n int) maze.Grid {
	if n < minSize {
		n = minSize
	}
	if n > maxSize {
		n = maxSize
	}
	g := make(maze.Grid, n)
	for r := range g {
		g[r] = make([]maze.Cell, n)
	}
	return g
}

// paint sets one cell, keeping at most one start and one exit on the grid.
func paint(g maze.Grid, pos maze.Position, c maze.Cell) {
	if c == maze.CellStart || c == maze.CellExit {
		for r := range g {
			for col := range g[r] {
				if g[r][col] == c {
					g[r][col] = maze.CellOpen
				}
			}
		}
	}
	g[pos.Row][pos.Col] = c
}

func (e *editor) resize(n int) {
	if n < minSize || n > maxSize {
		e.status = fmt.Sprintf("size must stay between %d and %d", minSize, maxSize)
		return
	}
	ng := blankGrid(n)
	for r := 0; r < n && r < e.grid.Size(); r++ {
		for c := 0; c < n && c < e.grid.Size(); c++ {
			ng[r][c] = e.grid[r][c]
		}
	}
	e.grid = ng
	e.dirty = true
	e.status = fmt.Sprintf("resized to %dx%d", n, n)
}

func btnRect(i int) (x, y, w, h int) { return 8, 8 + i*28, toolbarW - 16, 24 }

func (e *editor) viewport() (x0, y0, tile int) {
	vw, vh := ebiten.WindowSize()
	n := e.grid.Size()
	if n == 0 {
		return toolbarW, 0, 0
	}
	aw := vw - toolbarW - 16
	ah := vh - statusH - 16
	tile = aw / n
	if t := ah / n; t < tile {
		tile = t
	}
	x0 = toolbarW + 8 + (aw-tile*n)/2
	y0 = 8 + (ah-tile*n)/2
	return
}

func (e *editor) cellAt(mx, my int) (int, int, bool) {
	x0, y0, tile := e.viewport()
	if tile <= 0 || mx < x0 || my < y0 {
		return 0, 0, false
	}
	n := e.grid.Size()
	r := (my - y0) / tile
	c := (mx - x0) / tile
	if r >= n || c >= n {
		return 0, 0, false
	}
	return r, c, true
}

func (e *editor) Update() error {
	mx, my := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		for i := 0; i < toolCount; i++ {
			x, y, w, h := btnRect(i)
			if mx >= x && mx < x+w && my >= y && my < y+h {
				e.tool = i
			}
		}
		if r, c, ok := e.cellAt(mx, my); ok {
			paint(e.grid, maze.Position{Row: r, Col: c}, toolCells[e.tool])
			e.dirty = true
		}
	}

	// drag-paint with the area tools; start/exit stay click-only
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && (e.tool == toolOpen || e.tool == toolWall) {
		if r, c, ok := e.cellAt(mx, my); ok && e.grid[r][c] != toolCells[e.tool] {
			paint(e.grid, maze.Position{Row: r, Col: c}, toolCells[e.tool])
			e.dirty = true
		}
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		switch k {
		case ebiten.KeyS:
			e.save()
		case ebiten.KeyEqual, ebiten.KeyKPAdd:
			e.resize(e.grid.Size() + 1)
		case ebiten.KeyMinus, ebiten.KeyKPSubtract:
			e.resize(e.grid.Size() - 1)
		}
	}
	return nil
}

func (e *editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Match the window size so UI scales with resize
	return ebiten.WindowSize()
}
