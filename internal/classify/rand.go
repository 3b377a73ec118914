package classify

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the randomness source for the encouragement branch. Production
// wiring uses a real generator; tests inject a fixed sequence.
type Rand interface {
	Float64() float64
}

// NewRand returns a locked, time-seeded randomness source.
func NewRand() Rand {
	return &lockedRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// FixedRand returns the provided values in order, then repeats the last one.
// It exists for deterministic tests.
type FixedRand struct {
	Values []float64
	idx    int
}

func (f *FixedRand) Float64() float64 {
	if len(f.Values) == 0 {
		return 0
	}
	if f.idx >= len(f.Values) {
		return f.Values[len(f.Values)-1]
	}
	v := f.Values[f.idx]
	f.idx++
	return v
}
