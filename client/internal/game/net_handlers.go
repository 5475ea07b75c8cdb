package game

import (
	"encoding/json"
	"log"

	"mazedash/shared/protocol"
)

// handle dispatches one envelope from the live board socket.
func (g *Game) handle(env protocol.MsgEnvelope) {
	switch env.Type {
	case "Leaderboard":
		var lb protocol.Leaderboard
		if err := json.Unmarshal(env.Data, &lb); err != nil {
			log.Printf("NET: bad leaderboard payload: %v", err)
			return
		}
		g.board = lb
		g.boardStale = false

	case "Error":
		var e protocol.ErrorResponse
		_ = json.Unmarshal(env.Data, &e)
		log.Printf("NET: server error: %s", e.Error)

	default:
		log.Printf("NET: ignoring message type %q", env.Type)
	}
}
