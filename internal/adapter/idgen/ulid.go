package idgen

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ULIDGenerator hands out operation and transfer ids. Ids from one generator
// are strictly increasing, even within the same millisecond.
type ULIDGenerator struct {
	mu      sync.Mutex
	now     func() time.Time
	entropy *ulid.MonotonicEntropy
}

// NewULIDGenerator creates a generator stamped with the wall clock.
func NewULIDGenerator() *ULIDGenerator {
	return NewULIDGeneratorAt(time.Now)
}

// NewULIDGeneratorAt creates a generator that reads timestamps from now.
func NewULIDGeneratorAt(now func() time.Time) *ULIDGenerator {
	return &ULIDGenerator{
		now:     now,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Generate returns the next id.
func (g *ULIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(g.now()), g.entropy).String()
}
