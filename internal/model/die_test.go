package model

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Captainbleu/Boggle/internal/dependencies/mocks"
	"github.com/Captainbleu/Boggle/internal/dependencies/random"
)

// sequenceSampler returns letters from a fixed sequence, cycling
type sequenceSampler struct {
	letters []rune
	next    int
}

func (s *sequenceSampler) Sample(_ random.Random) rune {
	letter := s.letters[s.next%len(s.letters)]
	s.next++
	return letter
}

type DieSuite struct {
	suite.Suite
}

func TestDieSuite(t *testing.T) {
	suite.Run(t, new(DieSuite))
}

func (s *DieSuite) TestNewDieDrawsSixFaces() {
	sampler := &sequenceSampler{letters: []rune("ABCDEF")}
	rnd := mocks.NewMockRandom()
	rnd.QueueIntn(2) // visible pick

	die := NewDie(rnd, sampler)

	s.Equal([DieFaces]rune{'A', 'B', 'C', 'D', 'E', 'F'}, die.Faces)
	s.Equal('C', die.Visible)
}

func (s *DieSuite) TestVisibleIsAlwaysAFace() {
	sampler := &sequenceSampler{letters: []rune("QZ")}
	rnd := random.NewSeeded(7)

	for i := 0; i < 50; i++ {
		die := NewDie(rnd, sampler)
		s.Contains(die.Faces[:], die.Visible)
	}
}

func (s *DieSuite) TestRollKeepsFaces() {
	sampler := &sequenceSampler{letters: []rune("ABCDEF")}
	rnd := random.NewSeeded(11)

	die := NewDie(rnd, sampler)
	faces := die.Faces

	for i := 0; i < 50; i++ {
		visible := die.Roll(rnd)
		s.Equal(faces, die.Faces)
		s.Equal(visible, die.Visible)
		s.Contains(die.Faces[:], die.Visible)
	}
}
