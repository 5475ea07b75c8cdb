package protocol

// LeaderboardEntry is one recorded escape, as it appears on the wire.
type LeaderboardEntry struct {
	PlayerName string  `json:"player_name"`
	TimeTaken  float64 `json:"time_taken"`
}

// Leaderboard carries the ranked entries, fastest first.
type Leaderboard struct {
	Entries     []LeaderboardEntry `json:"leaderboard"`
	GeneratedAt int64              `json:"generated_at,omitempty"` // Unix ms
}

// Empty request. Client sends this to fetch the board.
type GetLeaderboard struct{}
