// ABOUTME: DocumentsBundle aggregate (issue-like grouping of documents)
// ABOUTME: Publication facets plus ordered document membership

package bundle

import (
	"fmt"
	"regexp"

	"github.com/nainya/docstore/pkg/manifest"
	"github.com/nainya/docstore/pkg/timeline"
)

var publicationYearPattern = regexp.MustCompile(`^\d{4}$`)

// DocumentsBundle groups documents under publication facets (year, volume,
// number, supplement, titles). Facet history is kept per field; the document
// list is ordered and duplicate-free.
type DocumentsBundle struct {
	manifest manifest.Bundle
	now      timeline.Clock
}

// NewDocumentsBundle creates an empty bundle known by its id.
func NewDocumentsBundle(id string, opts ...Option) *DocumentsBundle {
	cfg := newConfig(opts)
	return &DocumentsBundle{manifest: manifest.NewBundle(id, cfg.now), now: cfg.now}
}

// DocumentsBundleFromManifest rehydrates a bundle from a stored manifest.
func DocumentsBundleFromManifest(m manifest.Bundle, opts ...Option) *DocumentsBundle {
	cfg := newConfig(opts)
	return &DocumentsBundle{manifest: m, now: cfg.now}
}

// ID returns the bundle identity.
func (b *DocumentsBundle) ID() string {
	return b.manifest.ID
}

// Manifest returns a copy of the current manifest.
func (b *DocumentsBundle) Manifest() manifest.Bundle {
	return b.manifest.Clone()
}

// Data returns the manifest with every metadata field collapsed to its
// latest value.
func (b *DocumentsBundle) Data() manifest.Snapshot {
	return b.manifest.TakeSnapshot()
}

// PublicationYear returns the latest publication year, empty when unset.
func (b *DocumentsBundle) PublicationYear() string {
	return metadataString(b.manifest, "publication_year")
}

// SetPublicationYear records a new publication year. Values other than four
// digits are rejected without touching the manifest.
func (b *DocumentsBundle) SetPublicationYear(value string) error {
	if !publicationYearPattern.MatchString(value) {
		return fmt.Errorf("cannot set publication_year with value %q: %w", value, ErrInvalidValue)
	}
	b.manifest = b.manifest.SetMetadata("publication_year", value, b.now)
	return nil
}

// Volume returns the latest volume, empty when unset.
func (b *DocumentsBundle) Volume() string {
	return metadataString(b.manifest, "volume")
}

func (b *DocumentsBundle) SetVolume(value string) {
	b.manifest = b.manifest.SetMetadata("volume", value, b.now)
}

// Number returns the latest issue number, empty when unset.
func (b *DocumentsBundle) Number() string {
	return metadataString(b.manifest, "number")
}

func (b *DocumentsBundle) SetNumber(value string) {
	b.manifest = b.manifest.SetMetadata("number", value, b.now)
}

// Supplement returns the latest supplement, empty when unset.
func (b *DocumentsBundle) Supplement() string {
	return metadataString(b.manifest, "supplement")
}

func (b *DocumentsBundle) SetSupplement(value string) {
	b.manifest = b.manifest.SetMetadata("supplement", value, b.now)
}

// Titles returns the latest language-to-title mapping.
func (b *DocumentsBundle) Titles() map[string]string {
	return metadataStringMap(b.manifest, "titles")
}

func (b *DocumentsBundle) SetTitles(titles map[string]string) {
	copied := make(map[string]string, len(titles))
	for lang, title := range titles {
		copied[lang] = title
	}
	b.manifest = b.manifest.SetMetadata("titles", copied, b.now)
}

// AddDocument appends a document id to the bundle. Duplicates are rejected.
func (b *DocumentsBundle) AddDocument(document string) error {
	m, err := b.manifest.AddItem(document, b.now)
	if err != nil {
		return err
	}
	b.manifest = m
	return nil
}

// InsertDocument inserts a document id at index, clamped to the list bounds.
func (b *DocumentsBundle) InsertDocument(index int, document string) error {
	m, err := b.manifest.InsertItem(index, document, b.now)
	if err != nil {
		return err
	}
	b.manifest = m
	return nil
}

// RemoveDocument removes a document id. Absent ids are rejected.
func (b *DocumentsBundle) RemoveDocument(document string) error {
	m, err := b.manifest.RemoveItem(document, b.now)
	if err != nil {
		return err
	}
	b.manifest = m
	return nil
}

// Documents returns the ordered document ids.
func (b *DocumentsBundle) Documents() []string {
	items := make([]string, len(b.manifest.Items))
	copy(items, b.manifest.Items)
	return items
}
