// ABOUTME: Tests for the document manifest value type
// ABOUTME: Verifies append-only semantics and the persisted JSON shape

package manifest

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

// fakeClock returns a Clock handing out canned timestamps in order, sticking
// to the last one once exhausted.
func fakeClock(stamps ...string) func() string {
	i := 0
	return func() string {
		ts := stamps[i]
		if i < len(stamps)-1 {
			i++
		}
		return ts
	}
}

func TestNewDocument(t *testing.T) {
	m := NewDocument("0034-8910-rsp-48-2-0347")

	if m.ID != "0034-8910-rsp-48-2-0347" {
		t.Errorf("unexpected id: %q", m.ID)
	}
	if len(m.Versions) != 0 {
		t.Errorf("new manifest should have zero versions, got %d", len(m.Versions))
	}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"id":"0034-8910-rsp-48-2-0347","versions":[]}`
	if string(data) != want {
		t.Errorf("unexpected JSON: %s", data)
	}
}

func TestAddVersionNoBindings(t *testing.T) {
	clock := fakeClock("2020-01-01T00:00:00.000000Z")
	m := NewDocument("doc-1").AddVersion("http://x/v1.xml", NoBindings("fig1.png", "fig2.png"), clock)

	if len(m.Versions) != 1 {
		t.Fatalf("expected 1 version, got %d", len(m.Versions))
	}
	v := m.Versions[0]
	if v.Data != "http://x/v1.xml" {
		t.Errorf("unexpected data uri: %q", v.Data)
	}
	if v.Timestamp != "2020-01-01T00:00:00.000000Z" {
		t.Errorf("unexpected timestamp: %q", v.Timestamp)
	}
	if len(v.Assets) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(v.Assets))
	}
	for id, history := range v.Assets {
		if history.Len() != 0 {
			t.Errorf("asset %q history should start empty, has %d entries", id, history.Len())
		}
	}
}

func TestAddVersionBindings(t *testing.T) {
	clock := fakeClock("2020-01-01T00:00:00.000000Z")
	m := NewDocument("doc-1").AddVersion("http://x/v1.xml", Bindings(map[string]string{
		"fig1.png": "http://x/fig1.png",
		"fig2.png": "",
	}), clock)

	v := m.Versions[0]
	seeded := v.Assets["fig1.png"]
	if seeded.Len() != 1 {
		t.Fatalf("bound asset should have 1 entry, got %d", seeded.Len())
	}
	entry, _ := seeded.Latest()
	if entry.Value != "http://x/fig1.png" {
		t.Errorf("unexpected seeded uri: %q", entry.Value)
	}
	if unbound := v.Assets["fig2.png"]; unbound.Len() != 0 {
		t.Errorf("empty uri should not seed a history, has %d entries", unbound.Len())
	}
}

func TestAddVersionLeavesOriginalUntouched(t *testing.T) {
	clock := fakeClock(
		"2020-01-01T00:00:00.000000Z",
		"2020-01-02T00:00:00.000000Z",
	)
	m1 := NewDocument("doc-1").AddVersion("http://x/v1.xml", NoBindings("fig1.png"), clock)
	m2 := m1.AddVersion("http://x/v2.xml", NoBindings("fig1.png"), clock)

	if len(m1.Versions) != 1 {
		t.Errorf("prior manifest gained versions: %d", len(m1.Versions))
	}
	if len(m2.Versions) != 2 {
		t.Fatalf("expected 2 versions, got %d", len(m2.Versions))
	}
	// Every version present in m1 is present, unmodified and in order in m2
	if !reflect.DeepEqual(m1.Versions[0].Data, m2.Versions[0].Data) ||
		m1.Versions[0].Timestamp != m2.Versions[0].Timestamp {
		t.Errorf("shared version changed: %+v vs %+v", m1.Versions[0], m2.Versions[0])
	}
}

func TestAddAssetVersion(t *testing.T) {
	clock := fakeClock(
		"2020-01-01T00:00:00.000000Z",
		"2020-01-02T00:00:00.000000Z",
	)
	m1 := NewDocument("doc-1").AddVersion("http://x/v1.xml", NoBindings("fig1.png"), clock)
	m2, err := m1.AddAssetVersion("fig1.png", "http://x/fig1.png", clock)
	if err != nil {
		t.Fatalf("AddAssetVersion failed: %v", err)
	}

	history := m2.Versions[0].Assets["fig1.png"]
	if history.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", history.Len())
	}
	entry, _ := history.Latest()
	if entry.Value != "http://x/fig1.png" {
		t.Errorf("unexpected uri: %q", entry.Value)
	}
	if m1.Versions[0].Assets["fig1.png"].Len() != 0 {
		t.Errorf("prior manifest's asset history mutated")
	}
}

func TestAddAssetVersionTargetsLatestVersionOnly(t *testing.T) {
	clock := fakeClock(
		"2020-01-01T00:00:00.000000Z",
		"2020-01-02T00:00:00.000000Z",
		"2020-01-03T00:00:00.000000Z",
	)
	m := NewDocument("doc-1").
		AddVersion("http://x/v1.xml", NoBindings("fig1.png"), clock).
		AddVersion("http://x/v2.xml", NoBindings("fig1.png"), clock)

	m, err := m.AddAssetVersion("fig1.png", "http://x/fig1-v2.png", clock)
	if err != nil {
		t.Fatalf("AddAssetVersion failed: %v", err)
	}

	if m.Versions[0].Assets["fig1.png"].Len() != 0 {
		t.Errorf("append leaked into a past version")
	}
	if m.Versions[1].Assets["fig1.png"].Len() != 1 {
		t.Errorf("append missed the latest version")
	}
}

func TestAddAssetVersionUnknownAsset(t *testing.T) {
	clock := fakeClock("2020-01-01T00:00:00.000000Z")
	m := NewDocument("doc-1").AddVersion("http://x/v1.xml", NoBindings("fig1.png"), clock)

	if _, err := m.AddAssetVersion("nope.png", "http://x/nope.png", clock); !errors.Is(err, ErrUnknownAsset) {
		t.Errorf("expected ErrUnknownAsset, got %v", err)
	}

	var empty Document
	if _, err := empty.AddAssetVersion("fig1.png", "http://x/fig1.png", clock); !errors.Is(err, ErrUnknownAsset) {
		t.Errorf("expected ErrUnknownAsset on empty manifest, got %v", err)
	}
}

func TestDocumentJSONShape(t *testing.T) {
	clock := fakeClock(
		"2020-01-01T00:00:00.000000Z",
		"2020-01-02T00:00:00.000000Z",
	)
	m := NewDocument("doc-1").AddVersion("http://x/v1.xml", NoBindings("fig1.png"), clock)
	m, err := m.AddAssetVersion("fig1.png", "http://x/fig1.png", clock)
	if err != nil {
		t.Fatalf("AddAssetVersion failed: %v", err)
	}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"id":"doc-1","versions":[{"data":"http://x/v1.xml",` +
		`"assets":{"fig1.png":[["2020-01-02T00:00:00.000000Z","http://x/fig1.png"]]},` +
		`"timestamp":"2020-01-01T00:00:00.000000Z"}]}`
	if string(data) != want {
		t.Errorf("unexpected JSON:\n got %s\nwant %s", data, want)
	}

	var decoded Document
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(decoded, m) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, m)
	}
}

func TestDocumentClone(t *testing.T) {
	clock := fakeClock("2020-01-01T00:00:00.000000Z")
	m := NewDocument("doc-1").AddVersion("http://x/v1.xml", NoBindings("fig1.png"), clock)

	c := m.Clone()
	c.Versions[0].Assets["injected"] = c.Versions[0].Assets["fig1.png"]
	if _, ok := m.Versions[0].Assets["injected"]; ok {
		t.Errorf("clone shares asset map with original")
	}
}
