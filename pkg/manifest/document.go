// ABOUTME: Immutable document manifest value type
// ABOUTME: Append-only version list with per-asset URI histories

package manifest

import (
	"fmt"
	"sort"

	"github.com/nainya/docstore/pkg/timeline"
)

// Document is the full version history of one document. It is a value type:
// every operation returns a new Document and leaves the receiver untouched,
// so snapshots held by earlier readers never change.
type Document struct {
	ID       string    `json:"id"`
	Versions []Version `json:"versions"`
}

// Version is one snapshot of a document: its content reference plus the
// URI history of every asset discovered in that content. The asset id set
// is fixed when the version is created.
type Version struct {
	Data      string                               `json:"data"`
	Assets    map[string]timeline.Timeline[string] `json:"assets"`
	Timestamp string                               `json:"timestamp"`
}

// NewDocument returns a manifest with zero versions.
func NewDocument(id string) Document {
	return Document{ID: id, Versions: []Version{}}
}

// AssetRefs names the assets of a new version. It is either a bare id set
// (histories start empty) or a mapping of id to a URI that seeds the
// asset's history.
type AssetRefs struct {
	ids  []string
	uris map[string]string
}

// NoBindings builds an AssetRefs whose asset histories all start empty.
func NoBindings(ids ...string) AssetRefs {
	copied := make([]string, len(ids))
	copy(copied, ids)
	return AssetRefs{ids: copied}
}

// Bindings builds an AssetRefs from an id-to-URI mapping. Empty URIs leave
// the corresponding history unseeded.
func Bindings(uris map[string]string) AssetRefs {
	ids := make([]string, 0, len(uris))
	for id := range uris {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	copied := make(map[string]string, len(uris))
	for id, uri := range uris {
		copied[id] = uri
	}
	return AssetRefs{ids: ids, uris: copied}
}

// IDs returns the asset ids named by the refs.
func (r AssetRefs) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// AddVersion appends a new version stamped by now. Prior versions are
// shared, never copied or modified.
func (d Document) AddVersion(dataURI string, refs AssetRefs, now timeline.Clock) Document {
	if now == nil {
		now = timeline.UTCNow
	}
	assets := make(map[string]timeline.Timeline[string], len(refs.ids))
	version := Version{Data: dataURI, Assets: assets, Timestamp: now()}
	for _, id := range refs.ids {
		var history timeline.Timeline[string]
		if uri := refs.uris[id]; uri != "" {
			history = history.Append(now(), uri)
		}
		assets[id] = history
	}

	versions := make([]Version, len(d.Versions)+1)
	copy(versions, d.Versions)
	versions[len(d.Versions)] = version
	return Document{ID: d.ID, Versions: versions}
}

// AddAssetVersion appends one entry to the named asset's history within the
// most recent version only. Asset ids outside the latest version's asset
// set are rejected.
func (d Document) AddAssetVersion(assetID, assetURI string, now timeline.Clock) (Document, error) {
	if now == nil {
		now = timeline.UTCNow
	}
	if len(d.Versions) == 0 {
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownAsset, assetID)
	}
	latest := d.Versions[len(d.Versions)-1]
	history, ok := latest.Assets[assetID]
	if !ok {
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownAsset, assetID)
	}

	assets := make(map[string]timeline.Timeline[string], len(latest.Assets))
	for id, h := range latest.Assets {
		assets[id] = h
	}
	assets[assetID] = history.Append(now(), assetURI)

	versions := make([]Version, len(d.Versions))
	copy(versions, d.Versions)
	versions[len(versions)-1] = Version{
		Data:      latest.Data,
		Assets:    assets,
		Timestamp: latest.Timestamp,
	}
	return Document{ID: d.ID, Versions: versions}, nil
}

// LatestVersion returns the most recent version, if any.
func (d Document) LatestVersion() (Version, bool) {
	if len(d.Versions) == 0 {
		return Version{}, false
	}
	return d.Versions[len(d.Versions)-1], true
}

// Clone copies the version list and asset maps. Timelines are immutable and
// stay shared.
func (d Document) Clone() Document {
	versions := make([]Version, len(d.Versions))
	for i, v := range d.Versions {
		assets := make(map[string]timeline.Timeline[string], len(v.Assets))
		for id, history := range v.Assets {
			assets[id] = history
		}
		versions[i] = Version{Data: v.Data, Assets: assets, Timestamp: v.Timestamp}
	}
	return Document{ID: d.ID, Versions: versions}
}
