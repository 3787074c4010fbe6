package model

import "time"

// SessionID uniquely identifies a game session
type SessionID string

// Session is one player's game: a board, the language it was generated
// for, and the words already accepted on the current board. A session
// owns its board and found-word set exclusively; nothing is shared
// between concurrent sessions.
type Session struct {
	ID       SessionID `json:"id"`
	Language string    `json:"language"`
	Board    *Board    `json:"board"`

	// Words accepted on the current board, normalized uppercase.
	// Reset whenever a new board is generated; only grows in between.
	FoundWords map[string]bool `json:"found_words"`

	// Score accumulated across all boards of the session
	Score int `json:"score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession creates a session around a freshly generated board
func NewSession(id SessionID, language string, board *Board, now time.Time) *Session {
	return &Session{
		ID:         id,
		Language:   language,
		Board:      board,
		FoundWords: make(map[string]bool),
		Score:      0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// HasFound returns true if the word was already accepted on this board
func (s *Session) HasFound(word string) bool {
	return s.FoundWords[word]
}

// RecordWord marks the word as found on this board and adds its score
func (s *Session) RecordWord(word string, score int) {
	s.FoundWords[word] = true
	s.Score += score
}

// ReplaceBoard installs a new board and clears the found-word set.
// The session score carries over.
func (s *Session) ReplaceBoard(board *Board) {
	s.Board = board
	s.FoundWords = make(map[string]bool)
}
