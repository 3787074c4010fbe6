package language

import (
	"github.com/Captainbleu/Boggle/internal/dependencies/random"
	"github.com/Captainbleu/Boggle/internal/model"
)

// SamplingSize is the size of the weighted sampling table derived from
// a profile. Each letter occupies a share of the table proportional to
// its base max occurrence.
const SamplingSize = 100

// referenceArea is the board area the base max occurrences are
// calibrated for (the classic 4x4 board).
const referenceArea = 16

// Letter describes one letter of a profile: its point value and the
// maximum number of times it may appear on a reference 4x4 board.
type Letter struct {
	Rune     rune
	Points   int
	MaxCount int
}

// Profile is an immutable letter profile for one language. Scaling for
// a board size never mutates the profile; it produces fresh quota data.
type Profile struct {
	code     string
	letters  map[rune]Letter
	ordered  []Letter
	sampling []rune
}

// NewProfile builds a profile from an ordered letter list and derives
// its weighted sampling table.
func NewProfile(code string, letters []Letter) *Profile {
	p := &Profile{
		code:    code,
		letters: make(map[rune]Letter, len(letters)),
		ordered: make([]Letter, len(letters)),
	}
	copy(p.ordered, letters)
	for _, l := range letters {
		p.letters[l.Rune] = l
	}
	p.sampling = buildSampling(p.ordered)
	return p
}

// buildSampling expands the per-letter max occurrences into a table of
// SamplingSize entries using largest-remainder apportionment, so each
// letter's share is proportional to its max occurrence.
func buildSampling(letters []Letter) []rune {
	total := 0
	for _, l := range letters {
		total += l.MaxCount
	}
	if total == 0 {
		return nil
	}

	table := make([]rune, 0, SamplingSize)
	type remainder struct {
		index int
		frac  int
	}
	remainders := make([]remainder, 0, len(letters))
	for i, l := range letters {
		share := l.MaxCount * SamplingSize / total
		for j := 0; j < share; j++ {
			table = append(table, l.Rune)
		}
		remainders = append(remainders, remainder{
			index: i,
			frac:  l.MaxCount*SamplingSize - share*total,
		})
	}

	// Hand the leftover slots to the letters with the largest
	// fractional shares; ties resolve by profile order.
	for len(table) < SamplingSize {
		best := -1
		for i, r := range remainders {
			if r.frac <= 0 {
				continue
			}
			if best == -1 || r.frac > remainders[best].frac {
				best = i
			}
		}
		if best == -1 {
			break
		}
		table = append(table, letters[remainders[best].index].Rune)
		remainders[best].frac = 0
	}
	return table
}

// Code returns the language code of the profile
func (p *Profile) Code() string {
	return p.code
}

// Letters returns the profile's letters in their defined order
func (p *Profile) Letters() []Letter {
	out := make([]Letter, len(p.ordered))
	copy(out, p.ordered)
	return out
}

// Points returns the point value of the letter, or 0 if the letter is
// not part of the profile
func (p *Profile) Points(letter rune) int {
	return p.letters[letter].Points
}

// MaxCount returns the base max occurrence of the letter on a 4x4 board
func (p *Profile) MaxCount(letter rune) int {
	return p.letters[letter].MaxCount
}

// Sample draws one letter from the weighted sampling table
func (p *Profile) Sample(rnd random.Random) rune {
	if len(p.sampling) == 0 {
		return 0
	}
	return p.sampling[rnd.Intn(len(p.sampling))]
}

// ScaledMax returns the per-letter occurrence quotas for a board of the
// given size: ceil(base * size² / 16). The profile itself is untouched.
func (p *Profile) ScaledMax(size int) map[rune]int {
	area := size * size
	quotas := make(map[rune]int, len(p.ordered))
	for _, l := range p.ordered {
		quotas[l.Rune] = (l.MaxCount*area + referenceArea - 1) / referenceArea
	}
	return quotas
}

// Interface check: a profile feeds die construction
var _ model.LetterSampler = (*Profile)(nil)

// profiles holds the bundled languages, keyed by code
var profiles = map[string]*Profile{
	English.Code(): English,
	French.Code():  French,
}

// Get returns the bundled profile for the given language code
func Get(code string) (*Profile, error) {
	p, ok := profiles[code]
	if !ok {
		return nil, model.ErrUnknownLanguage
	}
	return p, nil
}

// Codes returns the bundled language codes
func Codes() []string {
	return []string{English.Code(), French.Code()}
}
