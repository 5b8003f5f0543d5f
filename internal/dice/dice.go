package dice

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/hotdice/internal/dice Roller

// Sides is the number of faces on every die in the game
const Sides = 6

// Roller produces die faces
type Roller interface {
	// Roll returns a uniformly random face in 1..sides
	Roll(sides int) int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// RandomRoller provides dice rolling backed by math/rand
type RandomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &RandomRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *RandomRoller) Roll(sides int) int {
	if sides < 1 {
		sides = Sides
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(sides) + 1
}

// SequenceRoller replays a fixed list of faces. Peers use it to reproduce a
// roll that was made on another client; once the list is exhausted it
// falls back to 1s so a short payload can never panic the machine.
type SequenceRoller struct {
	faces []int
	next  int
}

// NewSequence returns a roller that yields faces in order
func NewSequence(faces ...int) *SequenceRoller {
	return &SequenceRoller{faces: append([]int(nil), faces...)}
}

// Roll returns the next queued face, ignoring sides
func (s *SequenceRoller) Roll(int) int {
	if s.next >= len(s.faces) {
		return 1
	}
	face := s.faces[s.next]
	s.next++
	return face
}

// Remaining reports how many queued faces have not been consumed yet
func (s *SequenceRoller) Remaining() int {
	return len(s.faces) - s.next
}

// Load replaces the queue with faces, discarding anything not yet rolled
func (s *SequenceRoller) Load(faces ...int) {
	s.faces = append(s.faces[:0], faces...)
	s.next = 0
}
