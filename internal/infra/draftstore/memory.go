package draftstore

import (
	"context"
	"sync"
	"time"

	"shuttlesync/internal/domain/booking"
	"shuttlesync/internal/pkg/clock"

	"github.com/google/uuid"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore keeps encoded drafts in process. Drafts do not survive a restart
// and are not shared between replicas.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[uuid.UUID]memoryEntry
	ttl     time.Duration
	clock   clock.Clock
}

func NewMemoryStore(ttl time.Duration, clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		entries: make(map[uuid.UUID]memoryEntry),
		ttl:     ttl,
		clock:   clk,
	}
}

func (s *MemoryStore) Create(ctx context.Context, d *booking.Draft) error {
	b, err := encode(d)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	s.entries[d.ID()] = memoryEntry{data: b, expiresAt: s.clock.Now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (*booking.Draft, error) {
	s.mu.Lock()
	entry, ok := s.liveLocked(id)
	s.mu.Unlock()
	if !ok {
		return nil, notFound()
	}
	return decode(entry.data)
}

func (s *MemoryStore) Update(ctx context.Context, id uuid.UUID, fn func(d *booking.Draft) error) (*booking.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.liveLocked(id)
	if !ok {
		return nil, notFound()
	}
	d, err := decode(entry.data)
	if err != nil {
		return nil, err
	}
	if err := fn(d); err != nil {
		return nil, err
	}
	b, err := encode(d)
	if err != nil {
		return nil, err
	}
	s.entries[id] = memoryEntry{data: b, expiresAt: s.clock.Now().Add(s.ttl)}
	return d, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

func (s *MemoryStore) liveLocked(id uuid.UUID) (memoryEntry, bool) {
	entry, ok := s.entries[id]
	if !ok {
		return memoryEntry{}, false
	}
	if !s.clock.Now().Before(entry.expiresAt) {
		delete(s.entries, id)
		return memoryEntry{}, false
	}
	return entry, true
}

func (s *MemoryStore) pruneLocked() {
	now := s.clock.Now()
	for id, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
}
