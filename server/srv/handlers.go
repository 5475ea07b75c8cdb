package srv

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"mazedash/server/metrics"
	"mazedash/shared/protocol"
)

// API owns the REST surface: the maze layout and the leaderboard.
type API struct {
	Mazes *MazeStore
	Board *BoardStore
	Hub   *Hub
	Limit int
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError surfaces every store failure as a 500 with a JSON body.
func writeError(w http.ResponseWriter, err error) {
	log.Printf("API: %v", err)
	writeJSON(w, http.StatusInternalServerError, protocol.ErrorResponse{Error: err.Error()})
}

// HandleMaze handles GET /maze
func (a *API) HandleMaze(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", 405)
		return
	}
	layout, err := a.Mazes.Layout()
	if err != nil {
		writeError(w, err)
		return
	}
	metrics.MazeFetches.WithLabelValues().Inc()
	writeJSON(w, http.StatusOK, protocol.Maze{Layout: layout})
}

// HandleLeaderboard handles GET and POST /leaderboard
func (a *API) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		a.listScores(w)
	case "POST":
		a.recordScore(w, r)
	default:
		http.Error(w, "Method not allowed", 405)
	}
}

func (a *API) listScores(w http.ResponseWriter) {
	entries, err := a.Board.List(a.Limit)
	if err != nil {
		writeError(w, err)
		return
	}
	metrics.BoardReads.WithLabelValues().Inc()
	writeJSON(w, http.StatusOK, protocol.Leaderboard{
		Entries:     entries,
		GeneratedAt: time.Now().UnixMilli(),
	})
}

func (a *API) recordScore(w http.ResponseWriter, r *http.Request) {
	var req protocol.SubmitScore
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.ScoreRejections.WithLabelValues().Inc()
		writeError(w, &ValidationError{Code: "BAD_JSON", Message: "request body is not valid JSON"})
		return
	}
	if err := a.Board.Record(req.PlayerName, req.TimeTaken); err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			metrics.ScoreRejections.WithLabelValues().Inc()
		}
		writeError(w, err)
		return
	}
	metrics.ScoreSubmissions.WithLabelValues().Inc()
	log.Printf("BOARD: recorded %q at %.0fs", req.PlayerName, req.TimeTaken)
	if a.Hub != nil {
		a.Hub.BroadcastBoard()
	}
	writeJSON(w, http.StatusOK, protocol.SubmitAck{Message: "score recorded"})
}
