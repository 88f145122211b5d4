// Package session holds the short-lived, per-conversation message buffers.
// Long-term memory lives behind core.HistoryRepository; this store only
// feeds the prompt window and is swept on a timer.
package session

import (
	"sync"
	"time"

	"github.com/sandevgo/mordomo/internal/core"
)

type entry struct {
	mu       sync.Mutex
	turns    []core.Turn
	lastSeen time.Time
}

type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	ttl     time.Duration
	// Maximum turns kept per session. Doubled against the configured cap
	// so a user+assistant pair counts as one logical exchange.
	maxTurns int
}

func NewStore(ttl time.Duration, turnCap int) *Store {
	return &Store{
		entries:  make(map[string]*entry),
		ttl:      ttl,
		maxTurns: turnCap * 2,
	}
}

func (s *Store) getOrCreate(id string) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		e = &entry{lastSeen: time.Now()}
		s.entries[id] = e
	}
	return e
}

// Lock serializes the read-modify-append cycle for one session id. Two
// concurrent turns on the same id must not interleave, or the history can
// duplicate or lose turns; different ids proceed independently. History
// and Append require the session lock to be held.
func (s *Store) Lock(id string) func() {
	e := s.getOrCreate(id)
	e.mu.Lock()
	return e.mu.Unlock
}

// History returns a copy of the session's turns, oldest first. A session
// that does not exist yet is simply empty, never an error.
func (s *Store) History(id string) []core.Turn {
	e := s.getOrCreate(id)
	out := make([]core.Turn, len(e.turns))
	copy(out, e.turns)
	return out
}

// Append adds turns to the session, refreshes its activity timestamp and
// truncates the buffer to the most recent maxTurns entries.
func (s *Store) Append(id string, turns ...core.Turn) {
	e := s.getOrCreate(id)
	e.turns = append(e.turns, turns...)
	if len(e.turns) > s.maxTurns {
		e.turns = e.turns[len(e.turns)-s.maxTurns:]
	}
	e.lastSeen = time.Now()
}

// Reset drops one session explicitly.
func (s *Store) Reset(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

// Sweep removes every session whose last activity is older than the TTL
// and reports how many were evicted.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, e := range s.entries {
		// A held session lock means a turn is in flight right now, so
		// the session cannot be stale. TryLock also makes lastSeen safe
		// to read here: writers hold the same lock.
		if !e.mu.TryLock() {
			continue
		}
		stale := now.Sub(e.lastSeen) > s.ttl
		e.mu.Unlock()

		if stale {
			delete(s.entries, id)
			evicted++
		}
	}
	return evicted
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
