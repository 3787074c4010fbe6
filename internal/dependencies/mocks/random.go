package mocks

import (
	"strings"

	"github.com/Captainbleu/Boggle/internal/dependencies/random"
)

// MockRandom returns queued Intn values so tests can script exactly
// which choices a caller makes. An exhausted queue yields 0.
type MockRandom struct {
	intnQueue []int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom with an empty queue
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// QueueIntn appends values to the Intn queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.intnQueue = append(r.intnQueue, values...)
}

// Intn pops the next queued value, or returns 0 when the queue is empty
func (r *MockRandom) Intn(n int) int {
	if len(r.intnQueue) == 0 {
		return 0
	}
	v := r.intnQueue[0]
	r.intnQueue = r.intnQueue[1:]
	return v
}

// String deterministically repeats the alphabet up to length
func (r *MockRandom) String(length int, alphabet string) string {
	if alphabet == "" || length <= 0 {
		return ""
	}
	repeated := strings.Repeat(alphabet, length/len(alphabet)+1)
	return repeated[:length]
}
