package game

import (
	"mazedash/shared/game/maze"
	"mazedash/shared/protocol"
)

// ---- Core enums / layout constants ----

type connState int

const (
	stateIdle connState = iota
	stateConnecting
	stateConnected
	stateFailed

	// UI layout
	topBarH     = 44
	boardPanelW = 220

	pad  = 8
	btnW = 120
	btnH = 32
	rowH = 20
)

type screen int

const (
	screenLoading screen = iota
	screenPlaying
	screenEscaped
)

// ---- Small utility types ----

type rect struct{ x, y, w, h int }

func (r rect) hit(mx, my int) bool {
	return mx >= r.x && mx <= r.x+r.w && my >= r.y && my <= r.y+r.h
}

// Used by async fetches
type mazeResult struct {
	grid maze.Grid
	err  error
}

type boardResult struct {
	board protocol.Leaderboard
	err   error
}

type submitResult struct {
	ack protocol.SubmitAck
	err error
}

type connResult struct {
	n   *Net
	err error
}
