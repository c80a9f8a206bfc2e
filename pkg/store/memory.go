// ABOUTME: In-memory store adapter
// ABOUTME: Maps guarded by a RWMutex, copies in and out

package store

import (
	"fmt"
	"sync"

	"github.com/nainya/docstore/pkg/manifest"
)

// MemStore keeps every manifest in memory. Safe for concurrent use.
type MemStore struct {
	mu        sync.RWMutex
	documents map[string]manifest.Document
	bundles   map[string]manifest.Bundle
	journals  map[string]manifest.Bundle
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		documents: map[string]manifest.Document{},
		bundles:   map[string]manifest.Bundle{},
		journals:  map[string]manifest.Bundle{},
	}
}

func (s *MemStore) AddDocument(m manifest.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[m.ID]; ok {
		return fmt.Errorf("document %q: %w", m.ID, ErrAlreadyExists)
	}
	s.documents[m.ID] = m.Clone()
	return nil
}

func (s *MemStore) UpdateDocument(m manifest.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[m.ID]; !ok {
		return fmt.Errorf("document %q: %w", m.ID, ErrNotFound)
	}
	s.documents[m.ID] = m.Clone()
	return nil
}

func (s *MemStore) Document(id string) (manifest.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.documents[id]
	if !ok {
		return manifest.Document{}, fmt.Errorf("document %q: %w", id, ErrNotFound)
	}
	return m.Clone(), nil
}

func (s *MemStore) AddBundle(m manifest.Bundle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bundles[m.ID]; ok {
		return fmt.Errorf("bundle %q: %w", m.ID, ErrAlreadyExists)
	}
	s.bundles[m.ID] = m.Clone()
	return nil
}

func (s *MemStore) UpdateBundle(m manifest.Bundle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bundles[m.ID]; !ok {
		return fmt.Errorf("bundle %q: %w", m.ID, ErrNotFound)
	}
	s.bundles[m.ID] = m.Clone()
	return nil
}

func (s *MemStore) Bundle(id string) (manifest.Bundle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.bundles[id]
	if !ok {
		return manifest.Bundle{}, fmt.Errorf("bundle %q: %w", id, ErrNotFound)
	}
	return m.Clone(), nil
}

func (s *MemStore) AddJournal(m manifest.Bundle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.journals[m.ID]; ok {
		return fmt.Errorf("journal %q: %w", m.ID, ErrAlreadyExists)
	}
	s.journals[m.ID] = m.Clone()
	return nil
}

func (s *MemStore) UpdateJournal(m manifest.Bundle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.journals[m.ID]; !ok {
		return fmt.Errorf("journal %q: %w", m.ID, ErrNotFound)
	}
	s.journals[m.ID] = m.Clone()
	return nil
}

func (s *MemStore) Journal(id string) (manifest.Bundle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.journals[id]
	if !ok {
		return manifest.Bundle{}, fmt.Errorf("journal %q: %w", id, ErrNotFound)
	}
	return m.Clone(), nil
}

func (s *MemStore) Counts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Counts{
		Documents: len(s.documents),
		Bundles:   len(s.bundles),
		Journals:  len(s.journals),
	}
}

// put applies a record unconditionally, used by log replay where the
// original add/update validation already happened before the record was
// written.
func (s *MemStore) put(kind recordKind, id string, document manifest.Document, bundle manifest.Bundle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch kind {
	case recordDocument:
		s.documents[id] = document
	case recordBundle:
		s.bundles[id] = bundle
	case recordJournal:
		s.journals[id] = bundle
	}
}
