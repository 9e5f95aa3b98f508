package models

// LeaderboardEntry is one ranked row of GET /leaderboard. Entries are
// sorted ascending by score; equal scores keep the canonical state
// enumeration order.
type LeaderboardEntry struct {
	State string  `json:"state"`
	Score float64 `json:"score"`
}
