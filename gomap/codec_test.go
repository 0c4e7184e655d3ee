package gomap

import (
	"testing"

	"github.com/remap-format/remap/ir"
)

type box struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags,omitempty"`
}

func TestDecode(t *testing.T) {
	y, err := Decode(box{Name: "b", Count: 2, Tags: []string{"x"}})
	if err != nil {
		t.Fatal(err)
	}
	if y.Type != ir.ObjectType {
		t.Fatalf("type = %s", y.Type)
	}
	// field order follows struct order
	if y.Keys[0] != "name" || y.Keys[1] != "count" || y.Keys[2] != "tags" {
		t.Errorf("keys = %v", y.Keys)
	}
	if got := y.Get("count"); !got.IsInt() || *got.Int64 != 2 {
		t.Errorf("count = %v", got)
	}
}

func TestEncode(t *testing.T) {
	y, err := ir.Unmarshal([]byte(`{"name":"b","count":3,"tags":["a","b"]}`))
	if err != nil {
		t.Fatal(err)
	}
	var b box
	if err := Encode(y, &b); err != nil {
		t.Fatal(err)
	}
	if b.Name != "b" || b.Count != 3 || len(b.Tags) != 2 {
		t.Errorf("box = %+v", b)
	}
}

func TestRoundTrip(t *testing.T) {
	in := map[string]any{"k": []any{1, "x", nil}}
	y, err := Decode(in)
	if err != nil {
		t.Fatal(err)
	}
	var out map[string]any
	if err := Encode(y, &out); err != nil {
		t.Fatal(err)
	}
	if len(out["k"].([]any)) != 3 {
		t.Errorf("out = %v", out)
	}
}
