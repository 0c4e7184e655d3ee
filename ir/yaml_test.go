package ir

import (
	"testing"
)

func TestFromYAML(t *testing.T) {
	doc := `
z: 1
items:
  - a
  - 2.5
a:
  nested: true
`
	y, err := FromYAML([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if y.Keys[0] != "z" || y.Keys[1] != "items" || y.Keys[2] != "a" {
		t.Errorf("key order = %v", y.Keys)
	}
	items := y.Get("items")
	if items.Len() != 2 {
		t.Fatalf("items = %v", items)
	}
	if items.At(0).String != "a" {
		t.Errorf("items[0] = %v", items.At(0))
	}
	if items.At(1).IsInt() {
		t.Error("2.5 decoded as int")
	}
	if !y.Get("a").Get("nested").Bool {
		t.Error("nested = false")
	}
}
