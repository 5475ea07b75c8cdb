package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"mazedash/shared/game/maze"
)

// load reads the layout at e.path.
func (e *editor) load() error {
	b, err := os.ReadFile(e.path)
	if err != nil {
		return err
	}
	g, err := maze.Decode(b)
	if err != nil {
		return fmt.Errorf("%s: %w", e.path, err)
	}
	e.grid = g
	e.status = "loaded " + e.path
	return nil
}

// save validates the layout and replaces the file atomically, the same
// write the server does for its stores.
func (e *editor) save() {
	if err := e.grid.Validate(); err != nil {
		e.status = "invalid: " + err.Error()
		return
	}
	b, err := json.MarshalIndent(e.grid, "", "  ")
	if err != nil {
		e.status = "encode failed: " + err.Error()
		return
	}
	if dir := filepath.Dir(e.path); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	tmp := e.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		e.status = "save failed: " + err.Error()
		return
	}
	if err := os.Rename(tmp, e.path); err != nil {
		e.status = "save failed: " + err.Error()
		return
	}
	e.dirty = false
	e.status = "saved " + e.path
}
