package maze

// Direction is one of the four unit moves.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "direction(?)"
}

// delta returns the row/col offset for the direction.
func (d Direction) delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// Step applies one move from pos. It rejects moves that leave the grid or
// land on a wall; on rejection the returned position equals pos and ok is
// false. The grid is never modified.
func (g Grid) Step(pos Position, dir Direction) (Position, bool) {
	dr, dc := dir.delta()
	next := Position{Row: pos.Row + dr, Col: pos.Col + dc}
	if !g.In(next) || !g.At(next).Walkable() {
		return pos, false
	}
	return next, true
}
