// ABOUTME: Shared plumbing for the bundle aggregates
// ABOUTME: Options, validation sentinel and metadata coercion helpers

// Package bundle provides the container aggregates built on the bundle
// manifest: DocumentsBundle groups documents under publication facets and
// Journal groups issues under journal-level metadata. Both validate input
// before touching the manifest, so a failed setter leaves no trace.
package bundle

import (
	"errors"

	"github.com/nainya/docstore/pkg/manifest"
	"github.com/nainya/docstore/pkg/timeline"
)

// ErrInvalidValue indicates a setter value rejected by validation.
var ErrInvalidValue = errors.New("bundle: the value is not valid")

type config struct {
	now timeline.Clock
}

// Option configures a bundle aggregate.
type Option func(*config)

// WithClock replaces the timestamp source, mainly for tests.
func WithClock(c timeline.Clock) Option {
	return func(cfg *config) { cfg.now = c }
}

func newConfig(opts []Option) config {
	cfg := config{now: timeline.UTCNow}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Metadata values round-trip through JSON as generic values: maps decode as
// map[string]any and lists as []any. The helpers below coerce both the
// in-memory and the decoded shapes back to the accessor's declared type.

func metadataString(m manifest.Bundle, name string) string {
	v, ok := m.GetMetadata(name)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func metadataStringSlice(m manifest.Bundle, name string) []string {
	v, ok := m.GetMetadata(name)
	if !ok {
		return nil
	}
	switch vv := v.(type) {
	case []string:
		out := make([]string, len(vv))
		copy(out, vv)
		return out
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func metadataStringMap(m manifest.Bundle, name string) map[string]string {
	v, ok := m.GetMetadata(name)
	if !ok {
		return map[string]string{}
	}
	switch vv := v.(type) {
	case map[string]string:
		out := make(map[string]string, len(vv))
		for k, s := range vv {
			out[k] = s
		}
		return out
	case map[string]any:
		out := make(map[string]string, len(vv))
		for k, item := range vv {
			if s, ok := item.(string); ok {
				out[k] = s
			}
		}
		return out
	}
	return map[string]string{}
}

func metadataMap(m manifest.Bundle, name string) map[string]any {
	v, ok := m.GetMetadata(name)
	if !ok {
		return map[string]any{}
	}
	switch vv := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(vv))
		for k, item := range vv {
			out[k] = item
		}
		return out
	case map[string]string:
		out := make(map[string]any, len(vv))
		for k, s := range vv {
			out[k] = s
		}
		return out
	}
	return map[string]any{}
}

func metadataMapSlice(m manifest.Bundle, name string) []map[string]any {
	v, ok := m.GetMetadata(name)
	if !ok {
		return nil
	}
	switch vv := v.(type) {
	case []map[string]any:
		out := make([]map[string]any, len(vv))
		copy(out, vv)
		return out
	case []any:
		out := make([]map[string]any, 0, len(vv))
		for _, item := range vv {
			if mm, ok := item.(map[string]any); ok {
				out = append(out, mm)
			}
		}
		return out
	}
	return nil
}
