package ident

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ID is an opaque identifier for orders and fills. It is comparable and
// usable as a map key; callers should not parse it.
type ID string

// Generator produces identifiers with negligible collision probability
// across the process lifetime. Implementations must be safe for concurrent
// use from multiple producers.
type Generator interface {
	NewID() ID
}

// Random generates random 128-bit identifiers. It never fails and needs no
// coordination between callers.
type Random struct{}

func (Random) NewID() ID { return ID(uuid.NewString()) }

// Sequential is a deterministic generator for reproducible test fixtures.
type Sequential struct {
	Prefix string

	mu sync.Mutex
	n  uint64
}

func (s *Sequential) NewID() ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return ID(fmt.Sprintf("%s%06d", s.Prefix, s.n))
}

var (
	sourceMu sync.RWMutex
	source   Generator = Random{}
)

// New returns an identifier from the current process-wide source.
func New() ID {
	sourceMu.RLock()
	g := source
	sourceMu.RUnlock()
	return g.NewID()
}

// SetSource swaps the process-wide generator and returns a function that
// restores the previous one. Intended for tests that need stable ids.
func SetSource(g Generator) (restore func()) {
	sourceMu.Lock()
	prev := source
	source = g
	sourceMu.Unlock()
	return func() {
		sourceMu.Lock()
		source = prev
		sourceMu.Unlock()
	}
}
