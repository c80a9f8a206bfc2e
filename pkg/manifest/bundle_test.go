// ABOUTME: Tests for the bundle manifest value type
// ABOUTME: Verifies item membership rules, metadata history and components

package manifest

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestNewBundle(t *testing.T) {
	clock := fakeClock("2020-01-01T00:00:00.000000Z")
	b := NewBundle("0034-8910-2020-v48-n2", clock)

	if b.ID != "0034-8910-2020-v48-n2" {
		t.Errorf("unexpected id: %q", b.ID)
	}
	if b.Created != b.Updated || b.Created != "2020-01-01T00:00:00.000000Z" {
		t.Errorf("created/updated mismatch: %q / %q", b.Created, b.Updated)
	}
	if len(b.Items) != 0 {
		t.Errorf("new bundle should have no items")
	}
}

func TestSetMetadataKeepsHistory(t *testing.T) {
	clock := fakeClock(
		"2020-01-01T00:00:00.000000Z",
		"2020-01-02T00:00:00.000000Z",
		"2020-01-03T00:00:00.000000Z",
	)
	b := NewBundle("b1", clock)
	b = b.SetMetadata("publication_year", "2019", clock)
	b = b.SetMetadata("publication_year", "2020", clock)

	value, ok := b.GetMetadata("publication_year")
	if !ok || value != "2020" {
		t.Errorf("expected latest value 2020, got %v", value)
	}
	history := b.GetMetadataAll("publication_year")
	if history.Len() != 2 {
		t.Fatalf("expected full history of 2 entries, got %d", history.Len())
	}
	first, _ := history.ByIndex(0)
	if first.Value != "2019" {
		t.Errorf("history lost the first value: %v", first.Value)
	}
	if b.Updated != "2020-01-03T00:00:00.000000Z" {
		t.Errorf("updated not refreshed: %q", b.Updated)
	}
}

func TestGetMetadataMissing(t *testing.T) {
	b := NewBundle("b1", fakeClock("2020-01-01T00:00:00.000000Z"))
	if _, ok := b.GetMetadata("nope"); ok {
		t.Errorf("expected missing metadata to report !ok")
	}
	if b.GetMetadataAll("nope").Len() != 0 {
		t.Errorf("expected empty history for missing field")
	}
}

func TestAddItemRejectsDuplicates(t *testing.T) {
	clock := fakeClock(
		"2020-01-01T00:00:00.000000Z",
		"2020-01-02T00:00:00.000000Z",
	)
	b := NewBundle("b1", clock)
	b, err := b.AddItem("doc-1", clock)
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if _, err := b.AddItem("doc-1", clock); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
	if len(b.Items) != 1 {
		t.Errorf("failed add changed the item list: %v", b.Items)
	}
}

func TestInsertItem(t *testing.T) {
	clock := fakeClock("2020-01-01T00:00:00.000000Z")
	b := NewBundle("b1", clock)
	b, _ = b.AddItem("doc-1", clock)
	b, _ = b.AddItem("doc-3", clock)

	b, err := b.InsertItem(1, "doc-2", clock)
	if err != nil {
		t.Fatalf("InsertItem failed: %v", err)
	}
	want := []string{"doc-1", "doc-2", "doc-3"}
	if !reflect.DeepEqual(b.Items, want) {
		t.Errorf("unexpected order: %v", b.Items)
	}

	// Out-of-range indices clamp
	b, err = b.InsertItem(100, "doc-9", clock)
	if err != nil {
		t.Fatalf("InsertItem failed: %v", err)
	}
	if b.Items[len(b.Items)-1] != "doc-9" {
		t.Errorf("expected clamp to tail: %v", b.Items)
	}

	if _, err := b.InsertItem(0, "doc-2", clock); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRemoveItem(t *testing.T) {
	clock := fakeClock("2020-01-01T00:00:00.000000Z")
	b := NewBundle("b1", clock)
	b, _ = b.AddItem("doc-1", clock)

	b, err := b.RemoveItem("doc-1", clock)
	if err != nil {
		t.Fatalf("RemoveItem failed: %v", err)
	}
	if len(b.Items) != 0 {
		t.Errorf("item not removed: %v", b.Items)
	}

	if _, err := b.RemoveItem("doc-1", clock); !errors.Is(err, ErrDoesNotExist) {
		t.Errorf("expected ErrDoesNotExist, got %v", err)
	}
}

func TestComponents(t *testing.T) {
	clock := fakeClock("2020-01-01T00:00:00.000000Z")
	b := NewBundle("journal-1", clock)
	b = b.SetComponent("aop", "aop-bundle-1", clock)
	b = b.SetComponent("aop", "aop-bundle-2", clock)

	value, ok := b.GetComponent("aop")
	if !ok || value != "aop-bundle-2" {
		t.Errorf("components should be last-write-wins, got %v", value)
	}

	b, err := b.RemoveComponent("aop", clock)
	if err != nil {
		t.Fatalf("RemoveComponent failed: %v", err)
	}
	if _, ok := b.GetComponent("aop"); ok {
		t.Errorf("component not removed")
	}
	if _, err := b.RemoveComponent("aop", clock); !errors.Is(err, ErrDoesNotExist) {
		t.Errorf("expected ErrDoesNotExist, got %v", err)
	}
}

func TestMutationsLeaveOriginalUntouched(t *testing.T) {
	clock := fakeClock("2020-01-01T00:00:00.000000Z")
	b1 := NewBundle("b1", clock)
	b2, _ := b1.AddItem("doc-1", clock)
	b3 := b2.SetMetadata("volume", "48", clock)

	if len(b1.Items) != 0 || len(b2.Items) != 1 {
		t.Errorf("item lists shared between snapshots")
	}
	if _, ok := b2.GetMetadata("volume"); ok {
		t.Errorf("metadata leaked into earlier snapshot")
	}
	if v, _ := b3.GetMetadata("volume"); v != "48" {
		t.Errorf("expected volume 48, got %v", v)
	}
}

func TestBundleJSONShape(t *testing.T) {
	clock := fakeClock(
		"2020-01-01T00:00:00.000000Z",
		"2020-01-02T00:00:00.000000Z",
		"2020-01-03T00:00:00.000000Z",
	)
	b := NewBundle("journal-1", clock)
	b = b.SetMetadata("title", "Revista de Saúde Pública", clock)
	b, _ = b.AddItem("issue-1", clock)
	b = b.SetComponent("aop", "aop-1", clock)

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal into map failed: %v", err)
	}
	if raw["id"] != "journal-1" {
		t.Errorf("unexpected id: %v", raw["id"])
	}
	// Components live at the top level of the object
	if raw["aop"] != "aop-1" {
		t.Errorf("component not flattened to top level: %v", raw)
	}
	metadata, ok := raw["metadata"].(map[string]any)
	if !ok {
		t.Fatalf("missing metadata map: %v", raw)
	}
	title, ok := metadata["title"].([]any)
	if !ok || len(title) != 1 {
		t.Fatalf("metadata field should be a list of [ts, value] pairs: %v", metadata)
	}

	var decoded Bundle
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.ID != b.ID || decoded.Created != b.Created || decoded.Updated != b.Updated {
		t.Errorf("round trip lost stamps: %+v", decoded)
	}
	if !reflect.DeepEqual(decoded.Items, b.Items) {
		t.Errorf("round trip lost items: %v", decoded.Items)
	}
	if v, _ := decoded.GetMetadata("title"); v != "Revista de Saúde Pública" {
		t.Errorf("round trip lost metadata: %v", v)
	}
	if v, _ := decoded.GetComponent("aop"); v != "aop-1" {
		t.Errorf("round trip lost component: %v", v)
	}
}
