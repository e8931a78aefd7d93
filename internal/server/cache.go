package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mj1618/uibuilder/internal/model"
)

// storeEntry holds a stored design with its timestamp.
type storeEntry struct {
	elements  []model.DesignElement
	timestamp time.Time
}

// DesignStore keeps analyzed designs for a while so later tool calls can
// refer to them by id instead of resending the whole tree.
type DesignStore struct {
	mu      sync.Mutex
	entries map[string]storeEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewDesignStore creates a store. A ttl of 0 disables storing.
func NewDesignStore(ttl time.Duration) *DesignStore {
	return &DesignStore{
		entries: make(map[string]storeEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Put stores elements and returns their id, or "" when storing is disabled.
func (s *DesignStore) Put(elements []model.DesignElement) string {
	if s.ttl == 0 {
		return ""
	}
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	s.entries[id] = storeEntry{elements: elements, timestamp: s.now()}
	return id
}

// Get returns the design stored under id if it has not expired.
func (s *DesignStore) Get(id string) ([]model.DesignElement, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	if s.now().Sub(entry.timestamp) >= s.ttl {
		delete(s.entries, id)
		return nil, false
	}
	return entry.elements, true
}

// Delete removes a stored design.
func (s *DesignStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

// Len returns the number of live entries.
func (s *DesignStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	return len(s.entries)
}

func (s *DesignStore) pruneLocked() {
	now := s.now()
	for id, entry := range s.entries {
		if now.Sub(entry.timestamp) >= s.ttl {
			delete(s.entries, id)
		}
	}
}
