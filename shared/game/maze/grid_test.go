package maze

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

const sampleLayout = `[["S",0,1,0,"E"],[0,1,0,0,0],[0,0,0,1,0],[1,0,1,0,0],[0,0,0,0,0]]`

func TestDecodeLayout(t *testing.T) {
	g, err := Decode([]byte(sampleLayout))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if g.Size() != 5 {
		t.Fatalf("size: got %d, want 5", g.Size())
	}
	start, ok := g.Start()
	if !ok || start != (Position{Row: 0, Col: 0}) {
		t.Fatalf("start: got %+v ok=%v, want (0,0)", start, ok)
	}
	exit, ok := g.Exit()
	if !ok || exit != (Position{Row: 0, Col: 4}) {
		t.Fatalf("exit: got %+v ok=%v, want (0,4)", exit, ok)
	}
	if c := g.At(Position{Row: 0, Col: 2}); c != CellWall {
		t.Fatalf("cell (0,2): got %v, want wall", c)
	}
	if c := g.At(Position{Row: 1, Col: 0}); c != CellOpen {
		t.Fatalf("cell (1,0): got %v, want open", c)
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	g, err := Decode([]byte(sampleLayout))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	wire, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	back, err := Decode(wire)
	if err != nil {
		t.Fatalf("Decode(round trip) failed: %v", err)
	}
	if !reflect.DeepEqual(g, back) {
		t.Fatalf("round trip changed the grid:\n got %v\nwant %v", back, g)
	}
}

func TestDecodeRejectsBadLayouts(t *testing.T) {
	cases := []struct {
		name   string
		layout string
		want   error
	}{
		{"empty", `[]`, ErrNoRows},
		{"ragged", `[["S",0],[0,"E",0]]`, ErrNotSquare},
		{"rectangular", `[["S",0,"E"],[0,0,0]]`, ErrNotSquare},
		{"no start", `[[0,0],[0,"E"]]`, ErrStartCount},
		{"two starts", `[["S","S"],[0,"E"]]`, ErrStartCount},
		{"no exit", `[["S",0],[0,0]]`, ErrExitCount},
		{"two exits", `[["S","E"],["E",0]]`, ErrExitCount},
	}
	for _, tc := range cases {
		if _, err := Decode([]byte(tc.layout)); !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestDecodeRejectsUnknownTokens(t *testing.T) {
	for _, layout := range []string{
		`[["S",2],[0,"E"]]`,
		`[["S","X"],[0,"E"]]`,
		`[["S",true],[0,"E"]]`,
		`[["S",null],[0,"E"]]`,
	} {
		if _, err := Decode([]byte(layout)); err == nil {
			t.Errorf("Decode(%s): want token error, got nil", layout)
		}
	}
}

func TestCellTokens(t *testing.T) {
	cases := []struct {
		cell Cell
		wire string
	}{
		{CellOpen, `0`},
		{CellWall, `1`},
		{CellStart, `"S"`},
		{CellExit, `"E"`},
	}
	for _, tc := range cases {
		b, err := json.Marshal(tc.cell)
		if err != nil {
			t.Fatalf("marshal %v: %v", tc.cell, err)
		}
		if string(b) != tc.wire {
			t.Errorf("marshal %v: got %s, want %s", tc.cell, b, tc.wire)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, _ := Decode([]byte(sampleLayout))
	c := g.Clone()
	c[0][1] = CellWall
	if g[0][1] != CellOpen {
		t.Fatalf("mutating the clone touched the original")
	}
}
