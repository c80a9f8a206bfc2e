// ABOUTME: Tests for the store adapters
// ABOUTME: Add/update/get semantics, replay and tail truncation

package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nainya/docstore/pkg/manifest"
)

func documentFixture(id string) manifest.Document {
	m := manifest.NewDocument(id)
	return m.AddVersion("http://x/"+id+".xml", manifest.NoBindings("fig1.png"), nil)
}

func bundleFixture(id string) manifest.Bundle {
	m := manifest.NewBundle(id, nil)
	m = m.SetMetadata("publication_year", "2014", nil)
	m, _ = m.AddItem(id+"-doc-1", nil)
	return m
}

func TestMemStoreDocumentLifecycle(t *testing.T) {
	s := NewMemStore()
	m := documentFixture("doc-1")

	if err := s.AddDocument(m); err != nil {
		t.Fatalf("AddDocument failed: %v", err)
	}
	if err := s.AddDocument(m); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("second add expected ErrAlreadyExists, got %v", err)
	}

	got, err := s.Document("doc-1")
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	if len(got.Versions) != 1 || got.Versions[0].Data != "http://x/doc-1.xml" {
		t.Errorf("unexpected manifest: %+v", got)
	}

	updated := m.AddVersion("http://x/doc-1-v2.xml", manifest.NoBindings(), nil)
	if err := s.UpdateDocument(updated); err != nil {
		t.Fatalf("UpdateDocument failed: %v", err)
	}
	got, _ = s.Document("doc-1")
	if len(got.Versions) != 2 {
		t.Errorf("update not applied: %d versions", len(got.Versions))
	}

	if err := s.UpdateDocument(manifest.NewDocument("doc-x")); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown update expected ErrNotFound, got %v", err)
	}
	if _, err := s.Document("doc-x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown get expected ErrNotFound, got %v", err)
	}
}

func TestMemStoreReturnsCopies(t *testing.T) {
	s := NewMemStore()
	if err := s.AddDocument(documentFixture("doc-1")); err != nil {
		t.Fatalf("AddDocument failed: %v", err)
	}

	got, _ := s.Document("doc-1")
	got.Versions[0].Data = "mutated"

	again, _ := s.Document("doc-1")
	if again.Versions[0].Data != "http://x/doc-1.xml" {
		t.Errorf("caller mutation leaked into the store: %q", again.Versions[0].Data)
	}
}

func TestMemStoreBundlesAndJournalsAreSeparate(t *testing.T) {
	s := NewMemStore()
	if err := s.AddBundle(bundleFixture("same-id")); err != nil {
		t.Fatalf("AddBundle failed: %v", err)
	}
	if err := s.AddJournal(bundleFixture("same-id")); err != nil {
		t.Fatalf("AddJournal failed: %v", err)
	}

	counts := s.Counts()
	if counts.Bundles != 1 || counts.Journals != 1 || counts.Documents != 0 {
		t.Errorf("unexpected counts: %+v", counts)
	}
	if _, err := s.Document("same-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("kinds should not share a namespace, got %v", err)
	}
}

func TestFileStoreReplay(t *testing.T) {
	dir, err := os.MkdirTemp("", "store-replay-*")
	if err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "docstore.log")

	s, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("OpenFileStore failed: %v", err)
	}
	if err := s.AddDocument(documentFixture("doc-1")); err != nil {
		t.Fatalf("AddDocument failed: %v", err)
	}
	doc, _ := s.Document("doc-1")
	if err := s.UpdateDocument(doc.AddVersion("http://x/doc-1-v2.xml", manifest.NoBindings(), nil)); err != nil {
		t.Fatalf("UpdateDocument failed: %v", err)
	}
	if err := s.AddBundle(bundleFixture("bundle-1")); err != nil {
		t.Fatalf("AddBundle failed: %v", err)
	}
	if err := s.AddJournal(bundleFixture("journal-1")); err != nil {
		t.Fatalf("AddJournal failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Document("doc-1")
	if err != nil {
		t.Fatalf("Document after replay failed: %v", err)
	}
	if len(got.Versions) != 2 {
		t.Errorf("replay lost the update: %d versions", len(got.Versions))
	}

	bundle, err := reopened.Bundle("bundle-1")
	if err != nil {
		t.Fatalf("Bundle after replay failed: %v", err)
	}
	if year, _ := bundle.GetMetadata("publication_year"); year != "2014" {
		t.Errorf("replay lost bundle metadata: %v", year)
	}

	counts := reopened.Counts()
	if counts.Documents != 1 || counts.Bundles != 1 || counts.Journals != 1 {
		t.Errorf("unexpected counts after replay: %+v", counts)
	}
}

func TestFileStoreTruncatesCorruptTail(t *testing.T) {
	dir, err := os.MkdirTemp("", "store-corrupt-*")
	if err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "docstore.log")

	s, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("OpenFileStore failed: %v", err)
	}
	if err := s.AddDocument(documentFixture("doc-1")); err != nil {
		t.Fatalf("AddDocument failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Simulate an interrupted write
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		t.Fatalf("open for append failed: %v", err)
	}
	if _, err := f.Write([]byte{1, 1, 0, 0, 99}); err != nil {
		t.Fatalf("write garbage failed: %v", err)
	}
	f.Close()

	reopened, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("reopen with corrupt tail failed: %v", err)
	}
	defer reopened.Close()

	if _, err := reopened.Document("doc-1"); err != nil {
		t.Errorf("intact prefix should survive: %v", err)
	}

	// The corrupt tail is gone and new appends work
	if err := reopened.AddDocument(documentFixture("doc-2")); err != nil {
		t.Errorf("append after truncation failed: %v", err)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	payload := []byte(`{"id":"doc-1"}`)
	encoded := encodeRecord(recordDocument, opAdd, payload)

	kind, op, decoded, consumed, err := decodeRecord(encoded)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if kind != recordDocument || op != opAdd {
		t.Errorf("kind/op mismatch: %d/%d", kind, op)
	}
	if string(decoded) != string(payload) {
		t.Errorf("payload mismatch: %q", decoded)
	}
	if consumed != len(encoded) {
		t.Errorf("consumed %d of %d bytes", consumed, len(encoded))
	}

	// Flip a payload byte
	encoded[recordHeaderSize] ^= 0xFF
	if _, _, _, _, err := decodeRecord(encoded); !errors.Is(err, ErrCorrupted) {
		t.Errorf("expected ErrCorrupted, got %v", err)
	}

	if _, _, _, _, err := decodeRecord(encoded[:5]); !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}
