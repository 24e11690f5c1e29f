package note

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps notes in a slice, newest first. Nothing survives a restart.
type MemoryStore struct {
	mu    sync.RWMutex
	notes []Note
	now   func() time.Time
}

func NewMemoryStore(seed ...Note) *MemoryStore {
	notes := make([]Note, len(seed))
	copy(notes, seed)
	return &MemoryStore{notes: notes, now: time.Now}
}

func (s *MemoryStore) List(ctx context.Context) ([]Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.notes {
		if n.ID == id {
			return n, nil
		}
	}
	return Note{}, ErrNotFound
}

func (s *MemoryStore) Create(ctx context.Context, in CreateInput) (Note, error) {
	if err := in.Validate(); err != nil {
		return Note{}, err
	}
	n := newNote(in, s.now())

	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = append([]Note{n}, s.notes...)
	return n, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]Note, 0, len(s.notes))
	for _, n := range s.notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(s.notes) {
		return ErrNotFound
	}
	s.notes = kept
	return nil
}
