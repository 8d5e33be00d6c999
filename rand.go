package randomchoice

import (
	"sync"
	"time"

	"gonum.org/v1/gonum/mathext/prng"
)

// globalSource backs the entry points that take no explicit Source.
var globalSource = NewSource(uint64(time.Now().UnixNano()))

// NewSource returns a Source backed by an MT19937 generator with the
// given seed. A cryptographically secure source is unnecessary here;
// there is no need for the sampling to be unpredictable. The returned
// Source locks around each draw and is safe for concurrent use.
func NewSource(seed uint64) Source {
	source := prng.NewMT19937()
	source.Seed(seed)
	return &lockedSource{src: source}
}

type lockedSource struct {
	lock sync.Mutex
	src  *prng.MT19937
}

func (s *lockedSource) Float64() float64 {
	return float64(s.uint64()>>11) / (1 << 53)
}

func (s *lockedSource) Float32() float32 {
	return float32(s.uint64()>>40) / (1 << 24)
}

func (s *lockedSource) uint64() uint64 {
	// Uint64 advances the generator state, so a write lock is required.
	s.lock.Lock()
	n := s.src.Uint64()
	s.lock.Unlock()
	return n
}
