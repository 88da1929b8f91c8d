package tracking

import (
	"context"
	"sync"
	"time"
)

// Simulator advances a highlighted step through Steps on a repeating timer,
// wrapping back to the first step after the last. It simulates a live
// tracking feed for display purposes only; nothing here reflects the actual
// whereabouts of a parcel.
type Simulator struct {
	interval time.Duration

	mu      sync.RWMutex
	current int
}

func NewSimulator(interval time.Duration) *Simulator {
	return &Simulator{interval: interval}
}

// Run advances the step until ctx is cancelled.
func (s *Simulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Advance()
		}
	}
}

// Advance moves the highlight one step forward, wrapping at the end.
func (s *Simulator) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = (s.current + 1) % len(Steps)
}

// Current returns the index of the highlighted step. Steps before it are
// rendered as completed.
func (s *Simulator) Current() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
