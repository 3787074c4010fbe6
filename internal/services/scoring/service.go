package scoring

import (
	"github.com/Captainbleu/Boggle/internal/language"
)

// Service computes word scores from a profile's letter point values
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// WordScore returns the score of a word: the sum of the profile's
// point values for its letters. Letters outside the profile score 0.
func (s *Service) WordScore(profile *language.Profile, word string) int {
	total := 0
	for _, r := range word {
		total += profile.Points(r)
	}
	return total
}

// Interface for dependency injection
type ServiceInterface interface {
	WordScore(profile *language.Profile, word string) int
}

var _ ServiceInterface = (*Service)(nil)
