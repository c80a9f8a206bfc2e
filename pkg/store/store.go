// ABOUTME: Persistence boundary for manifests
// ABOUTME: Interface plus shared sentinels and counters

// Package store persists document, bundle and journal manifests by id.
// Adapters are interchangeable behind the Store interface; the engine only
// ever reads and writes whole manifests.
package store

import (
	"errors"

	"github.com/nainya/docstore/pkg/manifest"
)

var (
	// ErrNotFound indicates no manifest stored under the id
	ErrNotFound = errors.New("store: manifest not found")

	// ErrAlreadyExists indicates an id already taken by a stored manifest
	ErrAlreadyExists = errors.New("store: manifest already exists")
)

// Counts reports how many manifests of each kind are stored.
type Counts struct {
	Documents int
	Bundles   int
	Journals  int
}

// Store is the persistence boundary. Add rejects taken ids, Update rejects
// unknown ids, and the getters return copies the caller may mutate freely.
type Store interface {
	AddDocument(m manifest.Document) error
	UpdateDocument(m manifest.Document) error
	Document(id string) (manifest.Document, error)

	AddBundle(m manifest.Bundle) error
	UpdateBundle(m manifest.Bundle) error
	Bundle(id string) (manifest.Bundle, error)

	AddJournal(m manifest.Bundle) error
	UpdateJournal(m manifest.Bundle) error
	Journal(id string) (manifest.Bundle, error)

	Counts() Counts
}
