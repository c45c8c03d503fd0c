package random

import (
	"math/rand"
	"sync"
)

// Picker draws uniform random offsets and is safe for concurrent use.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker returns a Picker seeded from crypto/rand.
func NewPicker() (*Picker, error) {
	rng, err := NewRand()
	if err != nil {
		return nil, err
	}
	return &Picker{rng: rng}, nil
}

// Intn returns a uniform value in [0, n).
func (p *Picker) Intn(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Intn(n)
}
