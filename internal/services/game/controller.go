package game

import (
	"context"
	"log/slog"

	"github.com/Captainbleu/Boggle/internal/dependencies/clock"
	"github.com/Captainbleu/Boggle/internal/dependencies/random"
	"github.com/Captainbleu/Boggle/internal/language"
	"github.com/Captainbleu/Boggle/internal/model"
	"github.com/Captainbleu/Boggle/internal/services/board"
	"github.com/Captainbleu/Boggle/internal/services/dictionary"
	"github.com/Captainbleu/Boggle/internal/services/scoring"
	"github.com/Captainbleu/Boggle/internal/storage"
)

// DefaultBoardSize is the classic 4x4 grid
const DefaultBoardSize = 4

// MinWordLength is the shortest word a player may submit
const MinWordLength = 2

const sessionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const sessionIDLength = 12

// Controller is the word-acceptance layer. Each session it manages
// owns its board, found-word set and score exclusively; nothing is
// shared across sessions, so concurrent games never interfere.
type Controller struct {
	storage        storage.Storage
	boardService   *board.Service
	dictService    *dictionary.Service
	scoringService *scoring.Service
	clock          clock.Clock
	random         random.Random
	logger         *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	dictService *dictionary.Service,
	scoringService *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:        storage,
		boardService:   boardService,
		dictService:    dictService,
		scoringService: scoringService,
		clock:          clock,
		random:         random,
		logger:         logger,
	}
}

// SubmitResult reports the outcome of one word submission. Reason is
// nil when the word was accepted; otherwise it is one of the
// model.ErrWord* sentinels. Rejections are normal gameplay outcomes,
// not errors, so SubmitWord does not return them on its error path.
type SubmitResult struct {
	Word       string // normalized form
	Accepted   bool
	Score      int // points awarded for this word
	TotalScore int // session score after this submission
	Reason     error
}

// CreateSession generates a board for the language and wraps it in a
// fresh session
func (c *Controller) CreateSession(ctx context.Context, languageCode string, size int) (*model.Session, error) {
	profile, err := language.Get(languageCode)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		size = DefaultBoardSize
	}

	b, err := c.boardService.Generate(size, profile, c.random)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	id := model.SessionID(c.random.String(sessionIDLength, sessionIDAlphabet))
	session := model.NewSession(id, languageCode, b, now)

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("session created",
		slog.String("session_id", string(id)),
		slog.String("language", languageCode),
		slog.Int("size", size),
	)
	return session, nil
}

// GetSession retrieves a session by ID
func (c *Controller) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// DeleteSession removes a session
func (c *Controller) DeleteSession(ctx context.Context, id model.SessionID) error {
	return c.storage.DeleteSession(ctx, id)
}

// NewBoard regenerates the session's board for a new turn. The found
// word set resets with the board; the session score carries over.
func (c *Controller) NewBoard(ctx context.Context, id model.SessionID) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	profile, err := language.Get(session.Language)
	if err != nil {
		return nil, err
	}

	b, err := c.boardService.Generate(session.Board.Size, profile, c.random)
	if err != nil {
		return nil, err
	}

	session.ReplaceBoard(b)
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("board regenerated",
		slog.String("session_id", string(id)),
	)
	return session, nil
}

// SubmitWord runs the acceptance pipeline for one candidate word:
// normalize, reject empty/short/duplicate, check the board path (the
// cheap, local test goes first), then the dictionary. An accepted word
// is scored and recorded on the session.
func (c *Controller) SubmitWord(ctx context.Context, id model.SessionID, word string) (*SubmitResult, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	profile, err := language.Get(session.Language)
	if err != nil {
		return nil, err
	}

	idx, err := c.dictService.Index(session.Language)
	if err != nil {
		return nil, err
	}

	normalized := dictionary.Normalize(word)
	result := &SubmitResult{Word: normalized, TotalScore: session.Score}

	if reason := evaluate(session, idx, normalized); reason != nil {
		result.Reason = reason
		return result, nil
	}

	score := c.scoringService.WordScore(profile, normalized)
	session.RecordWord(normalized, score)
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	result.Accepted = true
	result.Score = score
	result.TotalScore = session.Score

	c.logger.Info("word accepted",
		slog.String("session_id", string(id)),
		slog.String("word", normalized),
		slog.Int("score", score),
	)
	return result, nil
}

// evaluate returns the rejection reason for a normalized word, or nil
// if the word should be accepted
func evaluate(session *model.Session, idx *dictionary.WordIndex, word string) error {
	if word == "" {
		return model.ErrEmptyWord
	}
	if len([]rune(word)) < MinWordLength {
		return model.ErrWordTooShort
	}
	if session.HasFound(word) {
		return model.ErrWordAlreadyFound
	}
	if !session.Board.Contains(word) {
		return model.ErrWordNotOnBoard
	}
	if !idx.Contains(word) {
		return model.ErrWordNotInDictionary
	}
	return nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateSession(ctx context.Context, languageCode string, size int) (*model.Session, error)
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	NewBoard(ctx context.Context, id model.SessionID) (*model.Session, error)
	SubmitWord(ctx context.Context, id model.SessionID, word string) (*SubmitResult, error)
}

var _ ControllerInterface = (*Controller)(nil)
