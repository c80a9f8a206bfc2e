// ABOUTME: Document aggregate over the versioned manifest
// ABOUTME: Version lifecycle, asset linking and point-in-time assembly

package document

import (
	"fmt"
	"time"

	"github.com/nainya/docstore/pkg/fetch"
	"github.com/nainya/docstore/pkg/manifest"
	"github.com/nainya/docstore/pkg/timeline"
)

// Result reports whether a mutation changed the manifest. NoOp with a nil
// error means the request matched the current state and nothing was done.
type Result int

const (
	// Applied means the manifest gained a new entry
	Applied Result = iota

	// NoOp means the requested version equals the latest one already
	NoOp
)

// DefaultTimeout bounds the remote fetch performed by NewVersion and Data.
const DefaultTimeout = 2 * time.Second

// Document is the stateful aggregate over a document manifest. Every
// mutation computes a new immutable manifest and swaps the aggregate's
// reference to it; readers holding a previously returned manifest or view
// are never affected.
type Document struct {
	manifest manifest.Document
	getter   fetch.Getter
	timeout  time.Duration
	now      timeline.Clock
}

// Option configures a Document.
type Option func(*Document)

// WithGetter replaces the remote content getter (fetch.AssetsFromRemoteXML
// by default).
func WithGetter(g fetch.Getter) Option {
	return func(d *Document) { d.getter = g }
}

// WithTimeout sets the fetch timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Document) { d.timeout = timeout }
}

// WithClock replaces the timestamp source, mainly for tests.
func WithClock(c timeline.Clock) Option {
	return func(d *Document) { d.now = c }
}

// New creates an empty document known only by its id.
func New(id string, opts ...Option) *Document {
	return FromManifest(manifest.NewDocument(id), opts...)
}

// FromManifest rehydrates a document from a stored manifest.
func FromManifest(m manifest.Document, opts ...Option) *Document {
	d := &Document{
		manifest: m,
		getter:   fetch.AssetsFromRemoteXML,
		timeout:  DefaultTimeout,
		now:      timeline.UTCNow,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ID returns the document identity.
func (d *Document) ID() string {
	return d.manifest.ID
}

// Manifest returns a copy of the current manifest.
func (d *Document) Manifest() manifest.Document {
	return d.manifest.Clone()
}

// VersionView is one version with each asset collapsed to a single URI
// (empty when the asset has no binding at the requested point).
type VersionView struct {
	Data      string            `json:"data"`
	Assets    map[string]string `json:"assets"`
	Timestamp string            `json:"timestamp"`
}

// Version resolves a version by index; negative indices count from the end,
// so Version(-1) is the latest. Each asset collapses to its most recently
// appended URI.
func (d *Document) Version(index int) (VersionView, error) {
	versions := d.manifest.Versions
	idx := index
	if idx < 0 {
		idx += len(versions)
	}
	if idx < 0 || idx >= len(versions) {
		return VersionView{}, fmt.Errorf("missing version for index %d: %w", index, manifest.ErrVersionNotFound)
	}
	version := versions[idx]

	assets := make(map[string]string, len(version.Assets))
	for id, history := range version.Assets {
		if entry, ok := history.Latest(); ok {
			assets[id] = entry.Value
		} else {
			assets[id] = ""
		}
	}
	return VersionView{Data: version.Data, Assets: assets, Timestamp: version.Timestamp}, nil
}

// VersionAt resolves the document state as of an instant. A bare date is
// widened to end-of-day. The version is the latest one stamped at or before
// the instant, and each asset resolves independently against its own
// history, so asset bindings are reconstructed as they stood at that moment
// even if the data URI last changed earlier.
func (d *Document) VersionAt(ts string) (VersionView, error) {
	normalized, err := timeline.NormalizeTimestamp(ts)
	if err != nil {
		return VersionView{}, err
	}

	versions := d.manifest.Versions
	var target *manifest.Version
	for i := len(versions) - 1; i >= 0; i-- {
		if versions[i].Timestamp <= normalized {
			target = &versions[i]
			break
		}
	}
	if target == nil {
		return VersionView{}, fmt.Errorf("missing version for timestamp %s: %w", ts, manifest.ErrVersionNotFound)
	}

	assets := make(map[string]string, len(target.Assets))
	for id, history := range target.Assets {
		if entry, err := history.At(normalized); err == nil {
			assets[id] = entry.Value
		} else {
			assets[id] = ""
		}
	}
	return VersionView{Data: target.Data, Assets: assets, Timestamp: target.Timestamp}, nil
}

// NewVersion fetches dataURL, discovers its asset references and appends a
// new version. Assets rediscovered from the previous version keep their
// last known URI binding. Returns NoOp when dataURL already is the latest
// version's data URI.
func (d *Document) NewVersion(dataURL string) (Result, error) {
	if latest, err := d.Version(-1); err == nil && latest.Data == dataURL {
		return NoOp, nil
	}

	_, refs, err := d.getter(dataURL, d.timeout)
	if err != nil {
		return NoOp, err
	}
	ids := make([]string, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID()
	}

	d.manifest = d.manifest.AddVersion(dataURL, manifest.Bindings(d.linkAssets(ids)), d.now)
	return Applied, nil
}

// linkAssets maps each discovered asset id to the URI currently resolved
// for it in the latest version, empty when there is none.
func (d *Document) linkAssets(ids []string) map[string]string {
	bound := map[string]string{}
	if latest, err := d.Version(-1); err == nil {
		bound = latest.Assets
	}
	linked := make(map[string]string, len(ids))
	for _, id := range ids {
		linked[id] = bound[id]
	}
	return linked
}

// NewAssetVersion appends dataURL as a new version of the named asset in
// the latest document version. Returns NoOp when the URI equals the asset's
// latest resolved binding. No validation is performed on dataURL.
func (d *Document) NewAssetVersion(assetID, dataURL string) (Result, error) {
	if latest, err := d.Version(-1); err == nil {
		if uri, ok := latest.Assets[assetID]; ok && uri == dataURL {
			return NoOp, nil
		}
	}

	m, err := d.manifest.AddAssetVersion(assetID, dataURL, d.now)
	if err != nil {
		return NoOp, fmt.Errorf("cannot add version for %q: %w", assetID, err)
	}
	d.manifest = m
	return Applied, nil
}

// Data assembles the renderable document for the version at index: it
// re-fetches the version's data URI and rewrites every discovered asset
// reference to the binding resolved for that version, empty for assets
// without one.
func (d *Document) Data(index int) ([]byte, error) {
	view, err := d.Version(index)
	if err != nil {
		return nil, err
	}
	return d.assemble(view)
}

// DataAt is Data resolved at an instant instead of an index; asset
// bindings are reconstructed as of that instant.
func (d *Document) DataAt(ts string) ([]byte, error) {
	view, err := d.VersionAt(ts)
	if err != nil {
		return nil, err
	}
	return d.assemble(view)
}

func (d *Document) assemble(view VersionView) ([]byte, error) {
	content, refs, err := d.getter(view.Data, d.timeout)
	if err != nil {
		return nil, err
	}
	for _, ref := range refs {
		ref.Rewrite(view.Assets[ref.ID()])
	}
	return content.Bytes()
}
