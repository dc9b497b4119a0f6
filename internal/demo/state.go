// Package demo holds the single piece of mutable state in the server: a
// record of the last simulated "config update" made through the
// unauthenticated /api/update-config endpoint.
package demo

import (
	"sync"
	"time"
)

// State tracks who last hit the update endpoint and when. Both fields start
// unset and are always set together. Requests are served on multiple
// goroutines, so the pair is guarded by a mutex.
type State struct {
	mu             sync.Mutex
	lastModifiedBy string
	lastModifiedAt time.Time
	modified       bool
}

// Snapshot is a point-in-time copy of the state. The fields are null in JSON
// until the first update.
type Snapshot struct {
	LastModifiedBy *string    `json:"last_modified_by"`
	LastModifiedAt *time.Time `json:"last_modified_at"`
}

func NewState() *State {
	return &State{}
}

// RecordUpdate sets both last-modified fields together and returns the new
// snapshot.
func (s *State) RecordUpdate(user string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastModifiedBy = user
	s.lastModifiedAt = time.Now().UTC()
	s.modified = true

	return s.snapshotLocked()
}

// Snapshot returns the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *State) snapshotLocked() Snapshot {
	if !s.modified {
		return Snapshot{}
	}
	by := s.lastModifiedBy
	at := s.lastModifiedAt
	return Snapshot{LastModifiedBy: &by, LastModifiedAt: &at}
}
