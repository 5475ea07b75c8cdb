package protocol

import "encoding/json"

// Envelope
type MsgEnvelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ================= C -> S =================

// SubmitScore is the POST /leaderboard request body.
type SubmitScore struct {
	PlayerName string  `json:"player_name"`
	TimeTaken  float64 `json:"time_taken"`
}

// ================= S -> C =================

// SubmitAck confirms a recorded score.
type SubmitAck struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-200 HTTP reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
