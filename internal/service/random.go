package service

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource abstrae la aleatoriedad para poder inyectar una fuente determinista en tests.
// *rand.Rand la satisface.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// lockedSource serializa el acceso a *rand.Rand, que no es seguro entre goroutines.
type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomSource crea una fuente segura para handlers concurrentes. seed 0 usa el reloj.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{rnd: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}
