package board

import (
	"fmt"
	"log/slog"

	"github.com/Captainbleu/Boggle/internal/dependencies/random"
	"github.com/Captainbleu/Boggle/internal/language"
	"github.com/Captainbleu/Boggle/internal/model"
)

// Retry budget for one cell during generation. After every
// replaceAfterFailures consecutive rejections the die is discarded and
// rebuilt with fresh faces; past maxFailuresPerCell the whole board
// fails. The failure counter is never reset by a replacement.
const (
	replaceAfterFailures = 5
	maxFailuresPerCell   = 30
)

// MinBoardSize is the smallest playable grid
const MinBoardSize = 2

// Service generates boards under a profile's letter occurrence quotas
type Service struct {
	logger *slog.Logger
}

// New creates a new BoardService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Generate fills a size×size board with dice drawn from the profile,
// keeping every letter's visible count within the profile's quota
// scaled to the board area. The fill is greedy with local retries only;
// earlier cells are never revisited, so rare quota configurations can
// fail even though a satisfying board exists. That trade keeps latency
// bounded.
func (s *Service) Generate(size int, profile *language.Profile, rnd random.Random) (*model.Board, error) {
	if size < MinBoardSize {
		return nil, model.ErrInvalidBoardSize
	}

	board := model.NewBoard(size)
	quotas := profile.ScaledMax(size)

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			die, err := s.fillCell(profile, rnd, quotas)
			if err != nil {
				s.logger.Warn("board generation failed",
					slog.String("language", profile.Code()),
					slog.Int("size", size),
					slog.Int("row", row),
					slog.Int("col", col),
				)
				return nil, fmt.Errorf("cell (%d,%d): %w", row, col, err)
			}
			board.Cells[row][col] = die
		}
	}

	s.logger.Info("board generated",
		slog.String("language", profile.Code()),
		slog.Int("size", size),
	)
	return board, nil
}

// fillCell retries a single cell until its visible letter fits within
// the remaining quotas, decrementing the quota it settles on.
func (s *Service) fillCell(profile *language.Profile, rnd random.Random, quotas map[rune]int) (*model.Die, error) {
	die := model.NewDie(rnd, profile)
	failures := 0
	for {
		letter := die.Visible
		if quotas[letter] > 0 {
			quotas[letter]--
			return die, nil
		}

		failures++
		if failures > maxFailuresPerCell {
			return nil, model.ErrBoardUnsatisfiable
		}
		if failures%replaceAfterFailures == 0 {
			// All six faces may be quota-exhausted; fresh faces
			// diversify the letter pool.
			die = model.NewDie(rnd, profile)
		} else {
			die.Roll(rnd)
		}
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	Generate(size int, profile *language.Profile, rnd random.Random) (*model.Board, error)
}

var _ ServiceInterface = (*Service)(nil)
