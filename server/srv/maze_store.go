package srv

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"mazedash/shared/game/maze"
)

// mazeRecord is the single persisted maze row.
type mazeRecord struct {
	ID     string    `json:"id"`
	Layout maze.Grid `json:"layout"`
}

// MazeStore holds the one playable layout. Seeded once, read-only after.
type MazeStore struct {
	path string
}

// NewMazeStore opens the maze store under dir, seeding a layout when
// none is persisted yet. A non-empty seedFile overrides the built-in
// layout; seeding is skipped entirely if a record already exists.
func NewMazeStore(dir, seedFile string) (*MazeStore, error) {
	if err := ensureDir(dir); err != nil {
		return nil, &StorageError{Op: "init", Err: err}
	}
	s := &MazeStore{path: filepath.Join(dir, "maze.json")}
	if err := s.seed(seedFile); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MazeStore) seed(seedFile string) error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return &StorageError{Op: "stat", Err: err}
	}

	layout := maze.Default()
	if seedFile != "" {
		b, err := os.ReadFile(seedFile)
		if err != nil {
			return &StorageError{Op: "read seed", Err: err}
		}
		g, err := maze.Decode(b)
		if err != nil {
			return &StorageError{Op: "parse seed", Err: err}
		}
		layout = g
	}

	rec := mazeRecord{ID: uuid.NewString(), Layout: layout}
	if err := writeJSONAtomic(s.path, rec); err != nil {
		return &StorageError{Op: "write", Err: err}
	}
	log.Printf("STORE: seeded %dx%d maze layout (id %s)", layout.Size(), layout.Size(), rec.ID)
	return nil
}

// Layout returns the persisted grid.
func (s *MazeStore) Layout() (maze.Grid, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &NotFoundError{What: "maze layout"}
	}
	if err != nil {
		return nil, &StorageError{Op: "read", Err: err}
	}
	var rec mazeRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, &StorageError{Op: "parse", Err: err}
	}
	if err := rec.Layout.Validate(); err != nil {
		return nil, &StorageError{Op: "parse", Err: err}
	}
	return rec.Layout, nil
}
