package response

import (
	"sort"
	"time"

	"github.com/Captainbleu/Boggle/internal/model"
	"github.com/Captainbleu/Boggle/internal/services/game"
)

// Session represents a game session in API responses. Board letters
// are rendered as row strings ("ATE", "CAT", ...) for display.
type Session struct {
	ID         string    `json:"id"`
	Language   string    `json:"language"`
	Size       int       `json:"size"`
	Board      []string  `json:"board"`
	FoundWords []string  `json:"found_words"`
	Score      int       `json:"score"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SessionFromModel converts a model.Session to a response Session
func SessionFromModel(s *model.Session) Session {
	rows := make([]string, 0, s.Board.Size)
	for _, row := range s.Board.Letters() {
		rows = append(rows, string(row))
	}

	found := make([]string, 0, len(s.FoundWords))
	for word := range s.FoundWords {
		found = append(found, word)
	}
	sort.Strings(found)

	return Session{
		ID:         string(s.ID),
		Language:   s.Language,
		Size:       s.Board.Size,
		Board:      rows,
		FoundWords: found,
		Score:      s.Score,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// SubmitWord is the response for a word submission
type SubmitWord struct {
	Word       string `json:"word"`
	Accepted   bool   `json:"accepted"`
	Score      int    `json:"score"`
	TotalScore int    `json:"total_score"`
	Reason     string `json:"reason,omitempty"`
}

// SubmitWordFromResult converts a game.SubmitResult
func SubmitWordFromResult(r *game.SubmitResult) SubmitWord {
	resp := SubmitWord{
		Word:       r.Word,
		Accepted:   r.Accepted,
		Score:      r.Score,
		TotalScore: r.TotalScore,
	}
	if r.Reason != nil {
		resp.Reason = r.Reason.Error()
	}
	return resp
}

// Health is the response for the health endpoint
type Health struct {
	Status    string   `json:"status"`
	Languages []string `json:"languages"`
}
