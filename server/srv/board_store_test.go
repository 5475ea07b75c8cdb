package srv

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mazedash/shared/protocol"
)

func newTestBoard(t *testing.T) (*BoardStore, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewBoardStore(dir)
	if err != nil {
		t.Fatalf("NewBoardStore failed: %v", err)
	}
	return s, dir
}

func TestRecordAndListSortsAscending(t *testing.T) {
	s, _ := newTestBoard(t)

	if err := s.Record("Ann", 12); err != nil {
		t.Fatalf("Record Ann failed: %v", err)
	}
	if err := s.Record("Bo", 5); err != nil {
		t.Fatalf("Record Bo failed: %v", err)
	}

	got, err := s.List(0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].PlayerName != "Bo" || got[1].PlayerName != "Ann" {
		t.Errorf("got order [%s %s], want [Bo Ann]", got[0].PlayerName, got[1].PlayerName)
	}
}

func TestListKeepsTiesInInsertionOrder(t *testing.T) {
	s, _ := newTestBoard(t)

	for _, name := range []string{"first", "second", "third"} {
		if err := s.Record(name, 7); err != nil {
			t.Fatalf("Record %s failed: %v", name, err)
		}
	}

	got, err := s.List(0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i].PlayerName != want[i] {
			t.Errorf("entry %d: got %s, want %s", i, got[i].PlayerName, want[i])
		}
	}
}

func TestRecordRejectsBadSubmissions(t *testing.T) {
	s, _ := newTestBoard(t)

	cases := []struct {
		label    string
		name     string
		seconds  float64
		wantCode string
	}{
		{"empty name", "", 5, "EMPTY_NAME"},
		{"blank name", "   ", 5, "EMPTY_NAME"},
		{"negative time", "Ann", -1, "BAD_TIME"},
		{"nan time", "Ann", math.NaN(), "BAD_TIME"},
		{"inf time", "Ann", math.Inf(1), "BAD_TIME"},
		{"long name", strings.Repeat("x", protocol.MaxNameLen+1), 5, "NAME_TOO_LONG"},
	}
	for _, c := range cases {
		err := s.Record(c.name, c.seconds)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("%s: got %v, want ValidationError", c.label, err)
		}
		if vErr.Code != c.wantCode {
			t.Errorf("%s: got code %s, want %s", c.label, vErr.Code, c.wantCode)
		}
	}

	// Nothing rejected may appear on the board
	got, err := s.List(0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d entries after rejections, want 0", len(got))
	}
}

func TestRecordTrimsName(t *testing.T) {
	s, _ := newTestBoard(t)

	if err := s.Record("  Ann  ", 3); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	got, err := s.List(0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if got[0].PlayerName != "Ann" {
		t.Errorf("got name %q, want %q", got[0].PlayerName, "Ann")
	}
}

func TestListCapsAtLimit(t *testing.T) {
	s, _ := newTestBoard(t)

	for i := 0; i < 12; i++ {
		if err := s.Record("runner", float64(12-i)); err != nil {
			t.Fatalf("Record %d failed: %v", i, err)
		}
	}

	got, err := s.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("got %d entries, want 10", len(got))
	}
	// Fastest 10 of the 12, still ascending
	for i := 0; i < len(got)-1; i++ {
		if got[i].TimeTaken > got[i+1].TimeTaken {
			t.Fatalf("entries out of order at %d: %v > %v", i, got[i].TimeTaken, got[i+1].TimeTaken)
		}
	}
	if got[9].TimeTaken != 10 {
		t.Errorf("slowest kept entry: got %v, want 10", got[9].TimeTaken)
	}
}

func TestBoardSurvivesReopen(t *testing.T) {
	s, dir := newTestBoard(t)

	if err := s.Record("Ann", 9); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	reopened, err := NewBoardStore(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	got, err := reopened.List(0)
	if err != nil {
		t.Fatalf("List after reopen failed: %v", err)
	}
	if len(got) != 1 || got[0].PlayerName != "Ann" || got[0].TimeTaken != 9 {
		t.Errorf("got %+v, want [Ann 9]", got)
	}
}

func TestListSurfacesCorruptStore(t *testing.T) {
	s, dir := newTestBoard(t)

	if err := os.WriteFile(filepath.Join(dir, "leaderboard.json"), []byte("not json"), 0o644); err != nil {
		t.Fatalf("corrupting store failed: %v", err)
	}

	_, err := s.List(0)
	var sErr *StorageError
	if !errors.As(err, &sErr) {
		t.Fatalf("got %v, want StorageError", err)
	}
}
