package language

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Captainbleu/Boggle/internal/dependencies/random"
	"github.com/Captainbleu/Boggle/internal/model"
)

type ProfileSuite struct {
	suite.Suite
}

func TestProfileSuite(t *testing.T) {
	suite.Run(t, new(ProfileSuite))
}

func (s *ProfileSuite) samplingCounts(p *Profile) map[rune]int {
	counts := make(map[rune]int)
	for i := 0; i < SamplingSize; i++ {
		// Drive Sample through every table slot via a determined
		// random source.
		counts[p.sampling[i]]++
	}
	return counts
}

func (s *ProfileSuite) TestBundledProfiles() {
	s.Equal([]string{"en", "fr"}, Codes())

	en, err := Get("en")
	s.Require().NoError(err)
	s.Equal("en", en.Code())

	fr, err := Get("fr")
	s.Require().NoError(err)
	s.Equal("fr", fr.Code())

	_, err = Get("de")
	s.ErrorIs(err, model.ErrUnknownLanguage)
}

func (s *ProfileSuite) TestSamplingTableSize() {
	s.Len(English.sampling, SamplingSize)
	s.Len(French.sampling, SamplingSize)
}

func (s *ProfileSuite) TestSamplingProportionalToMaxCount() {
	// French max counts sum to exactly 100, so every letter's share
	// is exact.
	counts := s.samplingCounts(French)
	for _, l := range French.Letters() {
		s.Equal(l.MaxCount, counts[l.Rune], "letter %c", l.Rune)
	}

	// English sums to 98; shares may be off by at most one slot.
	counts = s.samplingCounts(English)
	for _, l := range English.Letters() {
		s.InDelta(float64(l.MaxCount), float64(counts[l.Rune]), 1.0, "letter %c", l.Rune)
	}
}

func (s *ProfileSuite) TestSampleDrawsFromTable() {
	rnd := random.NewSeeded(3)
	for i := 0; i < 200; i++ {
		letter := English.Sample(rnd)
		s.GreaterOrEqual(English.MaxCount(letter), 1)
	}
}

func (s *ProfileSuite) TestPointsAndMaxCount() {
	s.Equal(1, English.Points('E'))
	s.Equal(10, English.Points('Q'))
	s.Equal(12, English.MaxCount('E'))
	s.Equal(1, English.MaxCount('Q'))

	// Letters outside the profile score nothing
	s.Equal(0, English.Points('É'))
	s.Equal(0, English.MaxCount('É'))

	s.Equal(15, French.MaxCount('E'))
	s.Equal(10, French.Points('W'))
}

func (s *ProfileSuite) TestScaledMaxRoundsUp() {
	// Reference board: quotas equal the base max counts.
	quotas := English.ScaledMax(4)
	s.Equal(12, quotas['E'])
	s.Equal(1, quotas['Q'])

	// 3x3: area 9/16 of the reference, rounded up per letter.
	quotas = English.ScaledMax(3)
	s.Equal(7, quotas['E'])  // ceil(12*9/16) = ceil(6.75)
	s.Equal(1, quotas['Q'])  // ceil(1*9/16)
	s.Equal(3, quotas['D'])  // ceil(4*9/16) = ceil(2.25)

	// 5x5 scales up.
	quotas = English.ScaledMax(5)
	s.Equal(19, quotas['E']) // ceil(12*25/16) = ceil(18.75)
	s.Equal(2, quotas['Q'])  // ceil(1*25/16)
}

func (s *ProfileSuite) TestScaledMaxDoesNotMutateProfile() {
	before := English.MaxCount('E')
	quotas := English.ScaledMax(8)
	quotas['E'] = 0
	s.Equal(before, English.MaxCount('E'))

	again := English.ScaledMax(8)
	s.Equal(48, again['E']) // ceil(12*64/16)
}

func (s *ProfileSuite) TestLettersReturnsCopy() {
	letters := English.Letters()
	letters[0].Points = 99
	s.Equal(1, English.Points('A'))
}
