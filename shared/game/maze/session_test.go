package maze

import (
	"testing"
	"time"
)

func newTestSession(t *testing.T) (*Session, *fakeClock) {
	t.Helper()
	s, err := NewSession(mustDecode(t, sampleLayout))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	clk := &fakeClock{t: time.Unix(1000, 0)}
	s.timer.now = clk.now
	return s, clk
}

func TestSessionStartsIdleAtStartCell(t *testing.T) {
	s, _ := newTestSession(t)
	if s.State() != StateIdle {
		t.Fatalf("state: got %v, want idle", s.State())
	}
	if s.Position() != (Position{Row: 0, Col: 0}) {
		t.Fatalf("position: got %+v, want (0,0)", s.Position())
	}
}

func TestSessionIgnoresMovesWhileIdle(t *testing.T) {
	s, _ := newTestSession(t)
	if s.Move(Right) {
		t.Fatal("move accepted before Start")
	}
	if s.Position() != (Position{Row: 0, Col: 0}) {
		t.Fatalf("position moved while idle: %+v", s.Position())
	}
}

// Walks the stock course: one open step right, a blocked step into the
// wall at (0,2), then the detour down and across to the exit at (0,4).
func TestSessionWalkthrough(t *testing.T) {
	s, clk := newTestSession(t)
	s.Start()
	if s.State() != StateActive {
		t.Fatalf("state after Start: got %v, want active", s.State())
	}

	if !s.Move(Right) {
		t.Fatal("right to (0,1) should be open")
	}
	if s.Move(Right) {
		t.Fatal("right into the wall at (0,2) should be rejected")
	}
	if s.Position() != (Position{Row: 0, Col: 1}) {
		t.Fatalf("position after rejection: got %+v, want (0,1)", s.Position())
	}
	if !s.Move(Left) {
		t.Fatal("back onto the start cell should be allowed")
	}

	clk.advance(12 * time.Second)

	path := []Direction{Down, Down, Right, Right, Up, Right, Right, Up}
	for i, d := range path {
		if !s.Move(d) {
			t.Fatalf("step %d (%v) from %+v rejected", i, d, s.Position())
		}
	}

	if !s.Escaped() {
		t.Fatalf("state after reaching exit: got %v, want escaped", s.State())
	}
	if s.Position() != (Position{Row: 0, Col: 4}) {
		t.Fatalf("final position: got %+v, want (0,4)", s.Position())
	}
	if got := s.Seconds(); got != 12 {
		t.Fatalf("final time: got %d, want 12", got)
	}
}

func TestSessionEscapedIsTerminal(t *testing.T) {
	s, clk := newTestSession(t)
	s.Start()
	for _, d := range []Direction{Right, Left, Down, Down, Right, Right, Up, Right, Right, Up} {
		s.Move(d)
	}
	if !s.Escaped() {
		t.Fatalf("setup: session not escaped, at %+v", s.Position())
	}
	final := s.Position()
	secs := s.Seconds()
	clk.advance(time.Minute)
	for _, d := range []Direction{Up, Down, Left, Right} {
		if s.Move(d) {
			t.Fatalf("%v accepted after escape", d)
		}
	}
	if s.Position() != final {
		t.Fatalf("position changed after escape: got %+v, want %+v", s.Position(), final)
	}
	if got := s.Seconds(); got != secs {
		t.Fatalf("timer moved after escape: got %d, want %d", got, secs)
	}
}

func TestNewSessionRejectsInvalidGrid(t *testing.T) {
	if _, err := NewSession(Grid{{CellOpen, CellOpen}, {CellOpen, CellOpen}}); err == nil {
		t.Fatal("want validation error for a grid without start/exit")
	}
}
