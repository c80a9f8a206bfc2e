// ABOUTME: Generic append-only timeline primitive
// ABOUTME: Point-in-index and point-in-time resolution over (timestamp, value) entries

package timeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"
)

var (
	// ErrNotFound indicates that no entry qualifies for the requested
	// index or instant
	ErrNotFound = errors.New("timeline: no qualifying entry")

	// ErrInvalidTimestamp indicates a timestamp outside the accepted grammar
	ErrInvalidTimestamp = errors.New("timeline: invalid timestamp")
)

// Clock produces the timestamp stamped onto new entries
type Clock func() string

// UTCNow returns the current UTC instant as an ISO-8601 string with
// microsecond precision, e.g. "2020-05-01T14:25:03.000123Z". Fixed-width
// fractions keep timestamps ordered under plain string comparison.
func UTCNow() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000000") + "Z"
}

var (
	timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}(:\d{2}(\.\d{1,6})?)?Z)?$`)
	datePattern      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// NormalizeTimestamp validates ts against the accepted grammar and widens a
// bare date to end-of-day, so that a date-only query means "state at the end
// of that day".
func NormalizeTimestamp(ts string) (string, error) {
	if !timestampPattern.MatchString(ts) {
		return "", fmt.Errorf("%w: %s: must match pattern: %s",
			ErrInvalidTimestamp, ts, timestampPattern.String())
	}
	if datePattern.MatchString(ts) {
		return ts + "T23:59:59.999999Z", nil
	}
	return ts, nil
}

// Entry is a single (timestamp, value) pair. Its JSON form is the
// two-element array [timestamp, value].
type Entry[V any] struct {
	Timestamp string
	Value     V
}

func (e Entry[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{e.Timestamp, e.Value})
}

func (e *Entry[V]) UnmarshalJSON(data []byte) error {
	var raw [2]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw[0] == nil || raw[1] == nil {
		return fmt.Errorf("timeline: entry must be a [timestamp, value] pair")
	}
	if err := json.Unmarshal(raw[0], &e.Timestamp); err != nil {
		return err
	}
	return json.Unmarshal(raw[1], &e.Value)
}

// Timeline is an immutable append-only sequence of entries. Append returns a
// new Timeline value; snapshots held by earlier readers never change. The
// zero value is an empty timeline.
//
// Entries are assumed to arrive in non-decreasing timestamp order; the
// timeline never sorts or reorders them.
type Timeline[V any] struct {
	entries []Entry[V]
}

// From builds a timeline from existing entries (the slice is copied).
func From[V any](entries []Entry[V]) Timeline[V] {
	copied := make([]Entry[V], len(entries))
	copy(copied, entries)
	return Timeline[V]{entries: copied}
}

// Len returns the number of entries.
func (t Timeline[V]) Len() int {
	return len(t.entries)
}

// Append returns a new timeline with one more entry. The receiver is left
// untouched.
func (t Timeline[V]) Append(ts string, value V) Timeline[V] {
	entries := make([]Entry[V], len(t.entries)+1)
	copy(entries, t.entries)
	entries[len(t.entries)] = Entry[V]{Timestamp: ts, Value: value}
	return Timeline[V]{entries: entries}
}

// ByIndex returns the entry at position i. Negative indices count from the
// end, so -1 is the most recent entry.
func (t Timeline[V]) ByIndex(i int) (Entry[V], error) {
	idx := i
	if idx < 0 {
		idx += len(t.entries)
	}
	if idx < 0 || idx >= len(t.entries) {
		return Entry[V]{}, fmt.Errorf("%w: index %d", ErrNotFound, i)
	}
	return t.entries[idx], nil
}

// At returns the last entry whose timestamp is <= ts. Among entries sharing
// the maximal qualifying timestamp the one appended last wins. ts must
// already be a fully qualified instant; see NormalizeTimestamp.
func (t Timeline[V]) At(ts string) (Entry[V], error) {
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i].Timestamp <= ts {
			return t.entries[i], nil
		}
	}
	return Entry[V]{}, fmt.Errorf("%w: timestamp %s", ErrNotFound, ts)
}

// Latest returns the most recently appended entry.
func (t Timeline[V]) Latest() (Entry[V], bool) {
	if len(t.entries) == 0 {
		return Entry[V]{}, false
	}
	return t.entries[len(t.entries)-1], true
}

// Entries returns a copy of the underlying entries.
func (t Timeline[V]) Entries() []Entry[V] {
	out := make([]Entry[V], len(t.entries))
	copy(out, t.entries)
	return out
}

func (t Timeline[V]) MarshalJSON() ([]byte, error) {
	if t.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.entries)
}

func (t *Timeline[V]) UnmarshalJSON(data []byte) error {
	var entries []Entry[V]
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	t.entries = entries
	return nil
}
