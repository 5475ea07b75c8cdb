// server/srv/hub.go
package srv

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"mazedash/server/metrics"
	"mazedash/shared/protocol"
)

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks connected board watchers and pushes fresh standings to all
// of them whenever a score lands.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}

	board *BoardStore
	limit int
}

func NewHub(board *BoardStore, limit int) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		board:   board,
		limit:   limit,
	}
}

// HandleWS registers the connection, sends the current standings, then
// owns the connection until the peer goes away.
func (h *Hub) HandleWS(conn *websocket.Conn) {
	c := &client{conn: conn, send: make(chan []byte, 64)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	metrics.BoardSubscribers.WithLabelValues().Set(float64(n))

	go c.writer()
	h.pushBoard(c)
	c.reader(h)
}

func (c *client) writer() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

func (c *client) reader(h *Hub) {
	defer func() {
		c.conn.Close()
		h.mu.Lock()
		delete(h.clients, c)
		close(c.send)
		n := len(h.clients)
		h.mu.Unlock()
		metrics.BoardSubscribers.WithLabelValues().Set(float64(n))
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var env protocol.MsgEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			log.Printf("WS: bad envelope: %v", err)
			continue
		}

		switch env.Type {
		case "GetLeaderboard":
			h.pushBoard(c)
		default:
			sendJSON(c, "Error", protocol.ErrorResponse{Error: "Unknown message type: " + env.Type})
		}
	}
}

func (h *Hub) buildBoard() (protocol.Leaderboard, error) {
	entries, err := h.board.List(h.limit)
	if err != nil {
		return protocol.Leaderboard{}, err
	}
	return protocol.Leaderboard{
		Entries:     entries,
		GeneratedAt: time.Now().UnixMilli(),
	}, nil
}

// pushBoard sends the current standings to one watcher.
func (h *Hub) pushBoard(c *client) {
	lb, err := h.buildBoard()
	if err != nil {
		log.Printf("WS: board read failed: %v", err)
		sendJSON(c, "Error", protocol.ErrorResponse{Error: err.Error()})
		return
	}
	sendJSON(c, "Leaderboard", lb)
}

// BroadcastBoard pushes the current standings to every watcher.
func (h *Hub) BroadcastBoard() {
	lb, err := h.buildBoard()
	if err != nil {
		log.Printf("WS: board read failed: %v", err)
		return
	}
	b, _ := json.Marshal(lb)
	out, _ := json.Marshal(protocol.MsgEnvelope{Type: "Leaderboard", Data: b})

	h.mu.Lock()
	for c := range h.clients {
		select {
		case c.send <- out:
		default:
		}
	}
	h.mu.Unlock()
}

func sendJSON(c *client, typ string, v interface{}) {
	b, _ := json.Marshal(v)
	env := protocol.MsgEnvelope{Type: typ, Data: b}
	out, _ := json.Marshal(env)
	select {
	case c.send <- out:
	default:
	}
}
