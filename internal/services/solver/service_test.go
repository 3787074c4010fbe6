package solver

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Captainbleu/Boggle/internal/model"
	"github.com/Captainbleu/Boggle/internal/services/dictionary"
	"github.com/Captainbleu/Boggle/internal/services/scoring"
	"github.com/Captainbleu/Boggle/internal/storage/memory"
	"github.com/Captainbleu/Boggle/internal/testutil"
)

type SolverSuite struct {
	suite.Suite
	dictService *dictionary.Service
	service     *Service
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

func (s *SolverSuite) SetupTest() {
	s.dictService = dictionary.New(memory.New(), testutil.NopLogger())
	s.service = New(s.dictService, scoring.New())
}

func (s *SolverSuite) board(rows ...string) *model.Board {
	b, err := model.BoardFromRows(rows)
	s.Require().NoError(err)
	return b
}

func (s *SolverSuite) TestSolveFindsAllTraceableWords() {
	err := s.dictService.LoadWords("en", []string{"CAT", "ATE", "RATS", "TEA", "DOG", "STARE"})
	s.Require().NoError(err)

	b := s.board(
		"ATE",
		"CAT",
		"RST",
	)

	result, err := s.service.Solve("en", b)
	s.Require().NoError(err)

	// CAT scores 5 (C=3), RATS 4, ATE and TEA 3 each. DOG and STARE
	// cannot be traced.
	expected := []ScoredWord{
		{Word: "CAT", Score: 5},
		{Word: "RATS", Score: 4},
		{Word: "ATE", Score: 3},
		{Word: "TEA", Score: 3},
	}
	s.Equal(expected, result.Words)
	s.Equal(15, result.TotalScore)
}

func (s *SolverSuite) TestSolveEmptyDictionaryMatch() {
	err := s.dictService.LoadWords("en", []string{"ZOO", "QUIZ"})
	s.Require().NoError(err)

	result, err := s.service.Solve("en", s.board("AB", "CD"))
	s.Require().NoError(err)
	s.Empty(result.Words)
	s.Equal(0, result.TotalScore)
}

func (s *SolverSuite) TestSolveSkipsWordsLongerThanArea() {
	err := s.dictService.LoadWords("en", []string{"AB", "BAKED"})
	s.Require().NoError(err)

	result, err := s.service.Solve("en", s.board("AB", "CD"))
	s.Require().NoError(err)
	s.Equal([]ScoredWord{{Word: "AB", Score: 4}}, result.Words)
}

func (s *SolverSuite) TestSolveDictionaryNotLoaded() {
	_, err := s.service.Solve("en", s.board("AB", "CD"))
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *SolverSuite) TestSolveUnknownLanguage() {
	err := s.dictService.LoadWords("xx", []string{"AB"})
	s.Require().NoError(err)

	_, err = s.service.Solve("xx", s.board("AB", "CD"))
	s.ErrorIs(err, model.ErrUnknownLanguage)
}
