package model

import (
	"github.com/Captainbleu/Boggle/internal/dependencies/random"
)

// DieFaces is the number of faces on a letter die
const DieFaces = 6

// LetterSampler draws letters from a weighted distribution
type LetterSampler interface {
	// Sample returns one letter, weighted by the distribution
	Sample(rnd random.Random) rune
}

// Die is a single grid cell's letter generator. Its faces are fixed at
// construction; only the visible face changes on a roll.
type Die struct {
	Faces   [DieFaces]rune `json:"faces"`
	Visible rune           `json:"visible"`
}

// NewDie draws six faces independently from the sampler and picks one
// of them, uniformly, as the visible face.
func NewDie(rnd random.Random, sampler LetterSampler) *Die {
	var d Die
	for i := range d.Faces {
		d.Faces[i] = sampler.Sample(rnd)
	}
	d.Visible = d.Faces[rnd.Intn(DieFaces)]
	return &d
}

// Roll picks a new visible face uniformly among the existing six faces.
// It never redraws the faces themselves.
func (d *Die) Roll(rnd random.Random) rune {
	d.Visible = d.Faces[rnd.Intn(DieFaces)]
	return d.Visible
}
