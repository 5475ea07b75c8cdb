package protocol

import "mazedash/shared/game/maze"

// Maze is the GET /maze response body.
type Maze struct {
	Layout maze.Grid `json:"layout"`
}
