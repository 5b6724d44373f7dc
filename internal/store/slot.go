package store

import (
	"errors"
	"sync"

	"github.com/i474232898/skysense/internal/weather"
)

var (
	// ErrNotFound is returned when no outcome has been published yet.
	ErrNotFound = errors.New("no search outcome published")
)

// LatestSlot is a concurrency-safe, last-writer-wins holder for the most
// recent search outcome, guarded by a monotonically increasing token.
type LatestSlot struct {
	mu sync.RWMutex

	issued uint64
	latest weather.Outcome
	has    bool

	subscribers []chan weather.Outcome
}

// NewLatestSlot creates an empty slot.
func NewLatestSlot() *LatestSlot {
	return &LatestSlot{}
}

// Issue returns the token for a new search. Tokens start at 1.
func (s *LatestSlot) Issue() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued++
	return s.issued
}

// Publish stores o if its token is the latest issued one and fans it out to
// subscribers. Outcomes from superseded searches are dropped.
func (s *LatestSlot) Publish(o weather.Outcome) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o.Token == 0 || o.Token != s.issued {
		return false
	}
	s.latest = o
	s.has = true

	for _, ch := range s.subscribers {
		// Subscribers only care about the newest value; replace a pending one.
		select {
		case <-ch:
		default:
		}
		ch <- o
	}
	return true
}

// Latest returns the most recently published outcome.
func (s *LatestSlot) Latest() (weather.Outcome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.has {
		return weather.Outcome{}, ErrNotFound
	}
	return s.latest, nil
}

// Subscribe returns a channel that receives every published outcome.
// The channel buffers one value; a slow reader only sees the newest.
func (s *LatestSlot) Subscribe() <-chan weather.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan weather.Outcome, 1)
	s.subscribers = append(s.subscribers, ch)
	return ch
}
