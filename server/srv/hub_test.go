package srv

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"mazedash/shared/protocol"
)

func newTestHub(t *testing.T) (*Hub, *BoardStore) {
	t.Helper()
	board, err := NewBoardStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewBoardStore failed: %v", err)
	}
	return NewHub(board, 10), board
}

func dialHub(t *testing.T, h *Hub) *websocket.Conn {
	t.Helper()
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		h.HandleWS(conn)
	}))
	t.Cleanup(s.Close)

	url := "ws" + strings.TrimPrefix(s.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) protocol.MsgEnvelope {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	var env protocol.MsgEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("bad envelope: %v", err)
	}
	return env
}

func TestHubPushesBoardOnConnect(t *testing.T) {
	h, _ := newTestHub(t)
	conn := dialHub(t, h)

	env := readEnvelope(t, conn)
	if env.Type != "Leaderboard" {
		t.Fatalf("got type %q, want Leaderboard", env.Type)
	}
	var lb protocol.Leaderboard
	if err := json.Unmarshal(env.Data, &lb); err != nil {
		t.Fatalf("decoding board failed: %v", err)
	}
	if len(lb.Entries) != 0 {
		t.Errorf("got %d entries on a fresh board, want 0", len(lb.Entries))
	}
}

func TestBroadcastReachesWatcher(t *testing.T) {
	h, board := newTestHub(t)
	conn := dialHub(t, h)
	readEnvelope(t, conn) // initial push

	if err := board.Record("Ann", 8); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	h.BroadcastBoard()

	env := readEnvelope(t, conn)
	if env.Type != "Leaderboard" {
		t.Fatalf("got type %q, want Leaderboard", env.Type)
	}
	var lb protocol.Leaderboard
	if err := json.Unmarshal(env.Data, &lb); err != nil {
		t.Fatalf("decoding board failed: %v", err)
	}
	if len(lb.Entries) != 1 || lb.Entries[0].PlayerName != "Ann" {
		t.Errorf("got %+v, want [Ann]", lb.Entries)
	}
}

func TestHubAnswersGetLeaderboard(t *testing.T) {
	h, board := newTestHub(t)
	conn := dialHub(t, h)
	readEnvelope(t, conn) // initial push

	if err := board.Record("Bo", 4); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	req, _ := json.Marshal(protocol.MsgEnvelope{Type: "GetLeaderboard", Data: []byte("{}")})
	if err := conn.WriteMessage(websocket.TextMessage, req); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	env := readEnvelope(t, conn)
	if env.Type != "Leaderboard" {
		t.Fatalf("got type %q, want Leaderboard", env.Type)
	}
	var lb protocol.Leaderboard
	if err := json.Unmarshal(env.Data, &lb); err != nil {
		t.Fatalf("decoding board failed: %v", err)
	}
	if len(lb.Entries) != 1 || lb.Entries[0].PlayerName != "Bo" {
		t.Errorf("got %+v, want [Bo]", lb.Entries)
	}
}

func TestSubmitPushesToWatchers(t *testing.T) {
	h, board := newTestHub(t)
	api := &API{Board: board, Hub: h, Limit: 10}

	conn := dialHub(t, h)
	readEnvelope(t, conn) // initial push

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/leaderboard", strings.NewReader(`{"player_name":"Ann","time_taken":7}`))
	api.HandleLeaderboard(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("submit: got status %d, want 200", rr.Code)
	}

	env := readEnvelope(t, conn)
	if env.Type != "Leaderboard" {
		t.Fatalf("got type %q, want Leaderboard", env.Type)
	}
	var lb protocol.Leaderboard
	if err := json.Unmarshal(env.Data, &lb); err != nil {
		t.Fatalf("decoding board failed: %v", err)
	}
	if len(lb.Entries) != 1 || lb.Entries[0].PlayerName != "Ann" {
		t.Errorf("got %+v, want [Ann]", lb.Entries)
	}
}

func TestHubRejectsUnknownType(t *testing.T) {
	h, _ := newTestHub(t)
	conn := dialHub(t, h)
	readEnvelope(t, conn) // initial push

	req, _ := json.Marshal(protocol.MsgEnvelope{Type: "Teleport", Data: []byte("{}")})
	if err := conn.WriteMessage(websocket.TextMessage, req); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	env := readEnvelope(t, conn)
	if env.Type != "Error" {
		t.Fatalf("got type %q, want Error", env.Type)
	}
	var resp protocol.ErrorResponse
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decoding error failed: %v", err)
	}
	if !strings.Contains(resp.Error, "Teleport") {
		t.Errorf("error %q does not name the offending type", resp.Error)
	}
}
