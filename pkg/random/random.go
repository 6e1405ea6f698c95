package random

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	mrand "math/rand/v2"
	"sync"
	"time"
)

// ErrInvalidBound is returned when a sampling bound is not positive.
var ErrInvalidBound = errors.New("random: bound must be positive")

// Source yields uniformly distributed integers. For n > 0, IntN must return
// a value in [0, n). Both *math/rand/v2.Rand and *Generator-friendly test
// doubles satisfy it.
type Source interface {
	IntN(n int) int
}

// Generator samples bounded integers from an explicit source, so tests can
// substitute a deterministic one.
type Generator struct {
	src Source
}

// NewGenerator creates a Generator backed by src.
// A nil src falls back to the package default source.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = defaultSource
	}
	return &Generator{src: src}
}

// LessThan returns a uniformly distributed integer in [0, n).
// Returns ErrInvalidBound when n <= 0.
func (g *Generator) LessThan(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	return g.src.IntN(n), nil
}

// LessThan samples from the package default source.
// See [Generator.LessThan].
func LessThan(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	return defaultSource.IntN(n), nil
}

var defaultSource = newPCGSource()

// lockedSource makes a *rand.Rand safe for concurrent callers.
type lockedSource struct {
	mu sync.Mutex
	r  *mrand.Rand
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// newPCGSource seeds a PCG generator from crypto/rand.
func newPCGSource() Source {
	var seed [16]byte
	if _, err := rand.Read(seed[:]); err != nil {
		// Fallback: time-based seed (degraded but functional)
		binary.BigEndian.PutUint64(seed[:8], uint64(time.Now().UnixNano()))
		binary.BigEndian.PutUint64(seed[8:], uint64(time.Now().UnixMilli()))
	}
	return &lockedSource{r: mrand.New(mrand.NewPCG(
		binary.BigEndian.Uint64(seed[:8]),
		binary.BigEndian.Uint64(seed[8:]),
	))}
}
