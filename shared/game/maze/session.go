package maze

import "errors"

// State tracks a session through its lifecycle. Escaped is terminal.
type State uint8

const (
	StateIdle State = iota
	StateActive
	StateEscaped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateEscaped:
		return "escaped"
	}
	return "state(?)"
}

// ErrNoStart is returned when a session is built over a grid without a
// start cell.
var ErrNoStart = errors.New("grid has no start cell")

// Session is one playthrough: it owns the grid, the player position and
// the timer, so nothing about a run lives in package globals.
type Session struct {
	grid  Grid
	pos   Position
	state State
	timer *Timer
}

// NewSession validates the grid and places the player on its start cell.
// The session begins Idle; call Start once play should begin.
func NewSession(g Grid) (*Session, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	start, ok := g.Start()
	if !ok {
		return nil, ErrNoStart
	}
	return &Session{
		grid:  g,
		pos:   start,
		state: StateIdle,
		timer: NewTimer(),
	}, nil
}

// Start moves the session from Idle to Active and starts the timer at
// zero. Calls in any other state are no-ops.
func (s *Session) Start() {
	if s.state != StateIdle {
		return
	}
	s.state = StateActive
	s.timer.Start()
}

// Move applies one directional input. It reports whether the position
// changed. Input is ignored before Start and after escaping; rejected
// moves (walls, bounds) are normal outcomes, not errors. Landing on the
// exit cell freezes the timer and ends the session.
func (s *Session) Move(dir Direction) bool {
	if s.state != StateActive {
		return false
	}
	next, ok := s.grid.Step(s.pos, dir)
	if !ok {
		return false
	}
	s.pos = next
	if s.grid.At(next) == CellExit {
		s.timer.Stop()
		s.state = StateEscaped
	}
	return true
}

// Position returns the player's current cell.
func (s *Session) Position() Position { return s.pos }

// State returns the session state.
func (s *Session) State() State { return s.state }

// Escaped reports whether the player has reached the exit.
func (s *Session) Escaped() bool { return s.state == StateEscaped }

// Seconds returns the timer reading: live while Active, frozen at the
// final value once Escaped.
func (s *Session) Seconds() int { return s.timer.Seconds() }

// Grid returns the session's grid.
func (s *Session) Grid() Grid { return s.grid }
