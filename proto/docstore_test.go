// ABOUTME: Wire round-trip checks for the hand-maintained message types
// ABOUTME: Covers the struct-tag cases the generator would normally emit

package proto

import (
	"testing"

	gproto "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/protoadapt"
)

// The messages in this package are maintained by hand, so the struct tags
// are the only wire contract. Exercise the cases that are easy to get
// wrong: map fields and negative varints.

func TestGetVersionResponseWireRoundTrip(t *testing.T) {
	in := &GetVersionResponse{
		Data:      "http://x/v1.xml",
		Timestamp: "2020-05-01T10:00:00.000000Z",
		Assets: map[string]string{
			"fig1.png":   "http://x/fig1.png",
			"video1.mp4": "",
		},
	}

	data, err := gproto.Marshal(protoadapt.MessageV2Of(in))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	out := &GetVersionResponse{}
	if err := gproto.Unmarshal(data, protoadapt.MessageV2Of(out)); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if out.Data != in.Data || out.Timestamp != in.Timestamp {
		t.Errorf("scalar fields lost: %+v", out)
	}
	if out.Assets["fig1.png"] != "http://x/fig1.png" {
		t.Errorf("map field lost: %v", out.Assets)
	}
}

func TestGetVersionRequestNegativeIndex(t *testing.T) {
	in := &GetVersionRequest{Id: "doc-1", Index: -1}

	data, err := gproto.Marshal(protoadapt.MessageV2Of(in))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	out := &GetVersionRequest{}
	if err := gproto.Unmarshal(data, protoadapt.MessageV2Of(out)); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if out.Index != -1 {
		t.Errorf("negative index lost: %d", out.Index)
	}
}
