// ABOUTME: Tests for the append-only timeline primitive
// ABOUTME: Verifies resolution rules, immutability and JSON shape

package timeline

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestAppendReturnsNewValue(t *testing.T) {
	var tl Timeline[string]

	one := tl.Append("2020-01-01T00:00:00.000000Z", "u1")
	two := one.Append("2020-01-02T00:00:00.000000Z", "u2")

	if tl.Len() != 0 {
		t.Errorf("zero value mutated: len=%d", tl.Len())
	}
	if one.Len() != 1 {
		t.Errorf("earlier snapshot mutated: len=%d", one.Len())
	}
	if two.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", two.Len())
	}

	// Entries of the earlier snapshot are present, unmodified and in order
	// in the later one
	for i, e := range one.Entries() {
		if two.Entries()[i] != e {
			t.Errorf("entry %d changed after append: %v", i, two.Entries()[i])
		}
	}
}

func TestByIndex(t *testing.T) {
	tl := From([]Entry[string]{
		{Timestamp: "2020-01-01T00:00:00.000000Z", Value: "u1"},
		{Timestamp: "2020-01-02T00:00:00.000000Z", Value: "u2"},
		{Timestamp: "2020-01-03T00:00:00.000000Z", Value: "u3"},
	})

	cases := []struct {
		index int
		want  string
	}{
		{0, "u1"},
		{2, "u3"},
		{-1, "u3"},
		{-3, "u1"},
	}
	for _, c := range cases {
		e, err := tl.ByIndex(c.index)
		if err != nil {
			t.Fatalf("ByIndex(%d) failed: %v", c.index, err)
		}
		if e.Value != c.want {
			t.Errorf("ByIndex(%d) = %q, want %q", c.index, e.Value, c.want)
		}
	}

	for _, index := range []int{3, -4} {
		if _, err := tl.ByIndex(index); !errors.Is(err, ErrNotFound) {
			t.Errorf("ByIndex(%d) expected ErrNotFound, got %v", index, err)
		}
	}
}

func TestAt(t *testing.T) {
	tl := From([]Entry[string]{
		{Timestamp: "2020-01-01T10:00:00.000000Z", Value: "u1"},
		{Timestamp: "2020-01-05T10:00:00.000000Z", Value: "u2"},
	})

	e, err := tl.At("2020-01-03T00:00:00.000000Z")
	if err != nil {
		t.Fatalf("At failed: %v", err)
	}
	if e.Value != "u1" {
		t.Errorf("expected u1, got %q", e.Value)
	}

	// Exactly at an entry's own timestamp resolves to that entry
	e, err = tl.At("2020-01-05T10:00:00.000000Z")
	if err != nil {
		t.Fatalf("At failed: %v", err)
	}
	if e.Value != "u2" {
		t.Errorf("expected u2, got %q", e.Value)
	}

	// All entries postdate the instant
	if _, err := tl.At("2019-12-31T23:59:59.999999Z"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Empty timeline
	var empty Timeline[string]
	if _, err := empty.At("2020-01-01T00:00:00.000000Z"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on empty timeline, got %v", err)
	}
}

func TestAtTieBreaksLaterEntry(t *testing.T) {
	ts := "2020-01-01T10:00:00.000000Z"
	tl := From([]Entry[string]{
		{Timestamp: ts, Value: "first"},
		{Timestamp: ts, Value: "second"},
	})

	e, err := tl.At(ts)
	if err != nil {
		t.Fatalf("At failed: %v", err)
	}
	if e.Value != "second" {
		t.Errorf("tie should resolve to the later entry, got %q", e.Value)
	}
}

func TestNormalizeTimestamp(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2020-05-01", "2020-05-01T23:59:59.999999Z"},
		{"2020-05-01T14:25Z", "2020-05-01T14:25Z"},
		{"2020-05-01T14:25:03Z", "2020-05-01T14:25:03Z"},
		{"2020-05-01T14:25:03.000123Z", "2020-05-01T14:25:03.000123Z"},
	}
	for _, c := range cases {
		got, err := NormalizeTimestamp(c.in)
		if err != nil {
			t.Fatalf("NormalizeTimestamp(%q) failed: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("NormalizeTimestamp(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	invalid := []string{"", "2020", "01-05-2020", "2020-05-01T14Z", "2020-05-01 14:25", "yesterday"}
	for _, in := range invalid {
		if _, err := NormalizeTimestamp(in); !errors.Is(err, ErrInvalidTimestamp) {
			t.Errorf("NormalizeTimestamp(%q) expected ErrInvalidTimestamp, got %v", in, err)
		}
	}
}

func TestUTCNowOrdering(t *testing.T) {
	a := UTCNow()
	b := UTCNow()
	if a > b {
		t.Errorf("UTCNow not monotonic under string comparison: %q > %q", a, b)
	}
	if _, err := NormalizeTimestamp(a[:10]); err != nil {
		t.Errorf("UTCNow date part rejected: %v", err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	tl := From([]Entry[string]{
		{Timestamp: "2020-01-01T00:00:00.000000Z", Value: "u1"},
		{Timestamp: "2020-01-02T00:00:00.000000Z", Value: "u2"},
	})

	data, err := json.Marshal(tl)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `[["2020-01-01T00:00:00.000000Z","u1"],["2020-01-02T00:00:00.000000Z","u2"]]`
	if string(data) != want {
		t.Errorf("unexpected JSON: %s", data)
	}

	var decoded Timeline[string]
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.Len() != 2 {
		t.Fatalf("expected 2 entries after round trip, got %d", decoded.Len())
	}
	latest, _ := decoded.Latest()
	if latest.Value != "u2" {
		t.Errorf("expected u2, got %q", latest.Value)
	}

	var empty Timeline[string]
	data, err = json.Marshal(empty)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("empty timeline should marshal to [], got %s", data)
	}
}
