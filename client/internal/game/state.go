package game

import (
	"mazedash/shared/game/maze"
	"mazedash/shared/protocol"
)

type Game struct {
	// maze fetch / boot
	mazeCh       chan mazeResult
	mazeErrMsg   string
	mazeInFlight bool

	// live board socket
	connCh          chan connResult
	connSt          connState
	connectInFlight bool
	net             *Net

	// leaderboard data
	boardCh    chan boardResult
	board      protocol.Leaderboard
	boardStale bool

	// play state
	scr  screen
	grid maze.Grid
	sess *maze.Session

	// escape / submit UI
	nameInput  string
	inputFocus bool
	submitCh   chan submitResult
	submitting bool
	submitted  bool
	statusMsg  string

	// clickable rects, recomputed every draw
	nameBox   rect
	submitBtn rect
	againBtn  rect
	retryBtn  rect
}
