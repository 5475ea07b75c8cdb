// Package maze holds the grid model and movement rules shared by the
// server, the client and the editor. Layouts are decoded from the wire
// format once, into typed cells, and validated before anything walks them.
package maze

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Cell is one grid square.
type Cell uint8

const (
	CellOpen Cell = iota
	CellWall
	CellStart
	CellExit
)

// Layout validation errors.
var (
	ErrNoRows     = errors.New("layout has no rows")
	ErrNotSquare  = errors.New("layout rows must form a square")
	ErrStartCount = errors.New("layout needs exactly one start cell")
	ErrExitCount  = errors.New("layout needs exactly one exit cell")
)

// Walkable reports whether a player may stand on the cell.
func (c Cell) Walkable() bool { return c != CellWall }

func (c Cell) String() string {
	switch c {
	case CellOpen:
		return "open"
	case CellWall:
		return "wall"
	case CellStart:
		return "start"
	case CellExit:
		return "exit"
	}
	return fmt.Sprintf("cell(%d)", uint8(c))
}

// MarshalJSON emits the wire token for the cell: 0 open, 1 wall,
// "S" start, "E" exit.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c {
	case CellOpen:
		return []byte("0"), nil
	case CellWall:
		return []byte("1"), nil
	case CellStart:
		return []byte(`"S"`), nil
	case CellExit:
		return []byte(`"E"`), nil
	}
	return nil, fmt.Errorf("invalid cell value %d", uint8(c))
}

// UnmarshalJSON accepts the mixed number/string wire tokens and decodes
// them into typed cells, so nothing downstream re-checks token types.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case float64:
		switch t {
		case 0:
			*c = CellOpen
			return nil
		case 1:
			*c = CellWall
			return nil
		}
	case string:
		switch t {
		case "S":
			*c = CellStart
			return nil
		case "E":
			*c = CellExit
			return nil
		}
	}
	return fmt.Errorf("unknown cell token %s", string(data))
}

// Position is a (row, col) pair on the grid.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid is a square matrix of cells, immutable for the length of a session.
type Grid [][]Cell

// Decode parses a wire layout and validates it.
func Decode(data []byte) (Grid, error) {
	var g Grid
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks the grid invariants: at least one row, square shape,
// exactly one start and exactly one exit.
func (g Grid) Validate() error {
	if len(g) == 0 {
		return ErrNoRows
	}
	size := len(g)
	starts, exits := 0, 0
	for r, row := range g {
		if len(row) != size {
			return fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), size, ErrNotSquare)
		}
		for _, c := range row {
			switch c {
			case CellStart:
				starts++
			case CellExit:
				exits++
			}
		}
	}
	if starts != 1 {
		return fmt.Errorf("found %d: %w", starts, ErrStartCount)
	}
	if exits != 1 {
		return fmt.Errorf("found %d: %w", exits, ErrExitCount)
	}
	return nil
}

// Size returns the side length of the grid.
func (g Grid) Size() int { return len(g) }

// In reports whether p lies inside the grid bounds.
func (g Grid) In(p Position) bool {
	return p.Row >= 0 && p.Row < len(g) && p.Col >= 0 && p.Col < len(g)
}

// At returns the cell at p. Callers check In first.
func (g Grid) At(p Position) Cell { return g[p.Row][p.Col] }

// Start returns the start cell's position.
func (g Grid) Start() (Position, bool) { return g.find(CellStart) }

// Exit returns the exit cell's position.
func (g Grid) Exit() (Position, bool) { return g.find(CellExit) }

func (g Grid) find(want Cell) (Position, bool) {
	for r, row := range g {
		for col, c := range row {
			if c == want {
				return Position{Row: r, Col: col}, true
			}
		}
	}
	return Position{}, false
}

// Clone returns a deep copy, for callers that need to edit a layout
// without touching the original.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = append([]Cell(nil), row...)
	}
	return out
}
