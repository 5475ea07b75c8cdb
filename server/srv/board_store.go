package srv

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"mazedash/shared/protocol"
)

// boardRecord is one persisted leaderboard row.
type boardRecord struct {
	ID         string  `json:"id"`
	PlayerName string  `json:"player_name"`
	TimeTaken  float64 `json:"time_taken"`
}

// BoardStore persists escape times, append-only. Rows are never updated
// or deleted, and names are not deduplicated.
type BoardStore struct {
	mu   sync.Mutex
	path string
}

func NewBoardStore(dir string) (*BoardStore, error) {
	if err := ensureDir(dir); err != nil {
		return nil, &StorageError{Op: "init", Err: err}
	}
	return &BoardStore{path: filepath.Join(dir, "leaderboard.json")}, nil
}

// Record validates and durably appends one score.
func (s *BoardStore) Record(name string, seconds float64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Code: "EMPTY_NAME", Message: "player_name must not be empty"}
	}
	if len(name) > protocol.MaxNameLen {
		return &ValidationError{
			Code:    "NAME_TOO_LONG",
			Message: fmt.Sprintf("player_name is limited to %d characters", protocol.MaxNameLen),
		}
	}
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return &ValidationError{Code: "BAD_TIME", Message: "time_taken must be a finite number"}
	}
	if seconds < 0 {
		return &ValidationError{Code: "BAD_TIME", Message: "time_taken must not be negative"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.load()
	if err != nil {
		return err
	}
	rows = append(rows, boardRecord{ID: uuid.NewString(), PlayerName: name, TimeTaken: seconds})
	if err := writeJSONAtomic(s.path, rows); err != nil {
		return &StorageError{Op: "write", Err: err}
	}
	return nil
}

// List returns entries sorted ascending by time, ties kept in insertion
// order. limit <= 0 returns everything.
func (s *BoardStore) List(limit int) ([]protocol.LeaderboardEntry, error) {
	s.mu.Lock()
	rows, err := s.load()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TimeTaken < rows[j].TimeTaken })
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	out := make([]protocol.LeaderboardEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, protocol.LeaderboardEntry{PlayerName: r.PlayerName, TimeTaken: r.TimeTaken})
	}
	return out, nil
}

func (s *BoardStore) load() ([]boardRecord, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "read", Err: err}
	}
	var rows []boardRecord
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, &StorageError{Op: "parse", Err: err}
	}
	return rows, nil
}
