// Package analysis computes statistics over recorded sessions.
package analysis

import (
	"github.com/jaroslaw-wieczorek/cubik/internal/storage"
)

// SessionSummary contains aggregate statistics for one session.
type SessionSummary struct {
	SessionID      string         `json:"session_id"`
	TotalMoves     int            `json:"total_moves"`
	ManualMoves    int            `json:"manual_moves"`
	ShuffleMoves   int            `json:"shuffle_moves"`
	DurationMs     int64          `json:"duration_ms"`
	TPS            float64        `json:"tps"`
	LongestPauseMs int64          `json:"longest_pause_ms"`
	FaceCounts     map[string]int `json:"face_counts"`
	MostUsedFace   string         `json:"most_used_face"`
}

// Summarize computes a summary from a session row and its move log.
func Summarize(sess *storage.Session, moves []storage.MoveRecord) *SessionSummary {
	s := &SessionSummary{
		SessionID:  sess.SessionID,
		TotalMoves: len(moves),
		FaceCounts: make(map[string]int),
	}
	if sess.DurationMs != nil {
		s.DurationMs = *sess.DurationMs
	}

	for _, m := range moves {
		if m.Source == "shuffle" {
			s.ShuffleMoves++
		} else {
			s.ManualMoves++
		}
		s.FaceCounts[m.Face]++
	}

	best := 0
	for face, count := range s.FaceCounts {
		if count > best || (count == best && face < s.MostUsedFace) {
			best = count
			s.MostUsedFace = face
		}
	}

	s.TPS = CalculateTPS(len(moves), s.DurationMs)
	s.LongestPauseMs = FindLongestPause(moves)
	return s
}

// CalculateTPS calculates turns per second.
func CalculateTPS(moveCount int, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return float64(moveCount) / (float64(durationMs) / 1000.0)
}

// FindLongestPause finds the longest gap between consecutive moves in
// milliseconds.
func FindLongestPause(moves []storage.MoveRecord) int64 {
	var longest int64
	for i := 1; i < len(moves); i++ {
		gap := moves[i].TsMs - moves[i-1].TsMs
		if gap > longest {
			longest = gap
		}
	}
	return longest
}
