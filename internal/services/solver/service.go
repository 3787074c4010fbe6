package solver

import (
	"sort"

	"github.com/Captainbleu/Boggle/internal/language"
	"github.com/Captainbleu/Boggle/internal/model"
	"github.com/Captainbleu/Boggle/internal/services/dictionary"
	"github.com/Captainbleu/Boggle/internal/services/game"
	"github.com/Captainbleu/Boggle/internal/services/scoring"
)

// Service finds every dictionary word present on a board
type Service struct {
	dictService    *dictionary.Service
	scoringService *scoring.Service
}

// New creates a new SolverService
func New(dictService *dictionary.Service, scoringService *scoring.Service) *Service {
	return &Service{
		dictService:    dictService,
		scoringService: scoringService,
	}
}

// ScoredWord is one solved word with its score
type ScoredWord struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// Result is the full solution of a board
type Result struct {
	Words      []ScoredWord `json:"words"`
	TotalScore int          `json:"total_score"`
}

// Solve returns every word of the language's dictionary that can be
// traced on the board, scored and sorted by score descending (ties
// alphabetical). A word longer than the board area can never fit, so
// only lengths up to size² are considered.
func (s *Service) Solve(lang string, board *model.Board) (*Result, error) {
	idx, err := s.dictService.Index(lang)
	if err != nil {
		return nil, err
	}
	profile, err := language.Get(lang)
	if err != nil {
		return nil, err
	}

	result := &Result{Words: []ScoredWord{}}
	area := board.Size * board.Size

	for length := game.MinWordLength; length <= area; length++ {
		for _, word := range idx.WordsOfLength(length) {
			if !board.Contains(word) {
				continue
			}
			score := s.scoringService.WordScore(profile, word)
			result.Words = append(result.Words, ScoredWord{Word: word, Score: score})
			result.TotalScore += score
		}
	}

	sort.Slice(result.Words, func(i, j int) bool {
		if result.Words[i].Score != result.Words[j].Score {
			return result.Words[i].Score > result.Words[j].Score
		}
		return result.Words[i].Word < result.Words[j].Word
	})

	return result, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Solve(lang string, board *model.Board) (*Result, error)
}

var _ ServiceInterface = (*Service)(nil)
