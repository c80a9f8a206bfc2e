// ABOUTME: Immutable bundle manifest value type
// ABOUTME: Ordered unique items, per-field metadata timelines, keyed components

package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/nainya/docstore/pkg/timeline"
)

// Bundle is the manifest of an issue-like or journal-like container: an
// ordered set of item ids plus a map of metadata fields, each field backed
// by its own append-only timeline. Components are plain last-write-wins
// keyed values with no history.
//
// Like Document, Bundle is a value type: every operation returns a new
// Bundle and refreshes Updated.
type Bundle struct {
	ID         string
	Created    string
	Updated    string
	Items      []string
	Metadata   map[string]timeline.Timeline[any]
	Components map[string]any
}

// Snapshot is a bundle manifest with every metadata field collapsed to its
// most recent value.
type Snapshot struct {
	ID         string
	Created    string
	Updated    string
	Items      []string
	Metadata   map[string]any
	Components map[string]any
}

// NewBundle returns an empty bundle manifest stamped by now.
func NewBundle(id string, now timeline.Clock) Bundle {
	if now == nil {
		now = timeline.UTCNow
	}
	ts := now()
	return Bundle{
		ID:       id,
		Created:  ts,
		Updated:  ts,
		Items:    []string{},
		Metadata: map[string]timeline.Timeline[any]{},
	}
}

func (b Bundle) clone() Bundle {
	items := make([]string, len(b.Items))
	copy(items, b.Items)
	metadata := make(map[string]timeline.Timeline[any], len(b.Metadata))
	for name, history := range b.Metadata {
		metadata[name] = history
	}
	var components map[string]any
	if b.Components != nil {
		components = make(map[string]any, len(b.Components))
		for name, value := range b.Components {
			components[name] = value
		}
	}
	return Bundle{
		ID:         b.ID,
		Created:    b.Created,
		Updated:    b.Updated,
		Items:      items,
		Metadata:   metadata,
		Components: components,
	}
}

// Clone returns an independent copy of the manifest. Timelines are
// immutable and stay shared.
func (b Bundle) Clone() Bundle {
	return b.clone()
}

// SetMetadata appends value to the named field's history and refreshes
// Updated with the same instant.
func (b Bundle) SetMetadata(name string, value any, now timeline.Clock) Bundle {
	if now == nil {
		now = timeline.UTCNow
	}
	out := b.clone()
	ts := now()
	out.Metadata[name] = out.Metadata[name].Append(ts, value)
	out.Updated = ts
	return out
}

// GetMetadata returns the latest value of the named field.
func (b Bundle) GetMetadata(name string) (any, bool) {
	entry, ok := b.Metadata[name].Latest()
	if !ok {
		return nil, false
	}
	return entry.Value, true
}

// GetMetadataAll returns the named field's full history.
func (b Bundle) GetMetadataAll(name string) timeline.Timeline[any] {
	return b.Metadata[name]
}

func (b Bundle) itemIndex(item string) int {
	for i, existing := range b.Items {
		if existing == item {
			return i
		}
	}
	return -1
}

// AddItem appends item to the ordered item list. Duplicates are rejected.
func (b Bundle) AddItem(item string, now timeline.Clock) (Bundle, error) {
	if b.itemIndex(item) >= 0 {
		return Bundle{}, fmt.Errorf("cannot add item %q in bundle: %w", item, ErrAlreadyExists)
	}
	if now == nil {
		now = timeline.UTCNow
	}
	out := b.clone()
	out.Items = append(out.Items, item)
	out.Updated = now()
	return out, nil
}

// InsertItem inserts item at index, clamped to the list bounds. Duplicates
// are rejected.
func (b Bundle) InsertItem(index int, item string, now timeline.Clock) (Bundle, error) {
	if b.itemIndex(item) >= 0 {
		return Bundle{}, fmt.Errorf("cannot insert item %q in bundle: %w", item, ErrAlreadyExists)
	}
	if now == nil {
		now = timeline.UTCNow
	}
	if index < 0 {
		index = 0
	}
	if index > len(b.Items) {
		index = len(b.Items)
	}
	out := b.clone()
	out.Items = append(out.Items[:index], append([]string{item}, out.Items[index:]...)...)
	out.Updated = now()
	return out, nil
}

// RemoveItem removes item from the list. Absent items are rejected.
func (b Bundle) RemoveItem(item string, now timeline.Clock) (Bundle, error) {
	index := b.itemIndex(item)
	if index < 0 {
		return Bundle{}, fmt.Errorf("cannot remove item %q from bundle: %w", item, ErrDoesNotExist)
	}
	if now == nil {
		now = timeline.UTCNow
	}
	out := b.clone()
	out.Items = append(out.Items[:index], out.Items[index+1:]...)
	out.Updated = now()
	return out, nil
}

// SetComponent stores a named component value, last write wins.
func (b Bundle) SetComponent(name string, value any, now timeline.Clock) Bundle {
	if now == nil {
		now = timeline.UTCNow
	}
	out := b.clone()
	if out.Components == nil {
		out.Components = map[string]any{}
	}
	out.Components[name] = value
	out.Updated = now()
	return out
}

// GetComponent returns the named component value.
func (b Bundle) GetComponent(name string) (any, bool) {
	value, ok := b.Components[name]
	return value, ok
}

// RemoveComponent deletes the named component. Absent components are
// rejected.
func (b Bundle) RemoveComponent(name string, now timeline.Clock) (Bundle, error) {
	if _, ok := b.Components[name]; !ok {
		return Bundle{}, fmt.Errorf("cannot remove component %q from bundle: %w", name, ErrDoesNotExist)
	}
	if now == nil {
		now = timeline.UTCNow
	}
	out := b.clone()
	delete(out.Components, name)
	out.Updated = now()
	return out, nil
}

// TakeSnapshot collapses every metadata field to its latest value.
func (b Bundle) TakeSnapshot() Snapshot {
	metadata := make(map[string]any, len(b.Metadata))
	for name, history := range b.Metadata {
		if entry, ok := history.Latest(); ok {
			metadata[name] = entry.Value
		}
	}
	items := make([]string, len(b.Items))
	copy(items, b.Items)
	components := make(map[string]any, len(b.Components))
	for name, value := range b.Components {
		components[name] = value
	}
	return Snapshot{
		ID:         b.ID,
		Created:    b.Created,
		Updated:    b.Updated,
		Items:      items,
		Metadata:   metadata,
		Components: components,
	}
}

// reservedBundleKeys are the fixed manifest fields; component names in this
// set are skipped during serialization to keep the JSON shape unambiguous.
var reservedBundleKeys = map[string]struct{}{
	"id":       {},
	"created":  {},
	"updated":  {},
	"items":    {},
	"metadata": {},
}

// MarshalJSON flattens components into the top level of the object:
// {id, created, updated, items, metadata, <components...>}.
func (b Bundle) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 5+len(b.Components))
	out["id"] = b.ID
	out["created"] = b.Created
	out["updated"] = b.Updated
	items := b.Items
	if items == nil {
		items = []string{}
	}
	out["items"] = items
	metadata := b.Metadata
	if metadata == nil {
		metadata = map[string]timeline.Timeline[any]{}
	}
	out["metadata"] = metadata
	for name, value := range b.Components {
		if _, reserved := reservedBundleKeys[name]; reserved {
			continue
		}
		out[name] = value
	}
	return json.Marshal(out)
}

func (b *Bundle) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	decoded := Bundle{
		Items:    []string{},
		Metadata: map[string]timeline.Timeline[any]{},
	}
	if v, ok := raw["id"]; ok {
		if err := json.Unmarshal(v, &decoded.ID); err != nil {
			return err
		}
	}
	if v, ok := raw["created"]; ok {
		if err := json.Unmarshal(v, &decoded.Created); err != nil {
			return err
		}
	}
	if v, ok := raw["updated"]; ok {
		if err := json.Unmarshal(v, &decoded.Updated); err != nil {
			return err
		}
	}
	if v, ok := raw["items"]; ok {
		if err := json.Unmarshal(v, &decoded.Items); err != nil {
			return err
		}
	}
	if v, ok := raw["metadata"]; ok {
		if err := json.Unmarshal(v, &decoded.Metadata); err != nil {
			return err
		}
	}
	for name, v := range raw {
		if _, reserved := reservedBundleKeys[name]; reserved {
			continue
		}
		var value any
		if err := json.Unmarshal(v, &value); err != nil {
			return err
		}
		if decoded.Components == nil {
			decoded.Components = map[string]any{}
		}
		decoded.Components[name] = value
	}

	*b = decoded
	return nil
}
