package literal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLink_Markdown(t *testing.T) {
	if got := NewLink("notes/a.md").Markdown(); got != "[notes/a.md](notes/a.md)" {
		t.Fatalf("link without display: %q", got)
	}
	if got := NewLink("notes/a.md", "A").Markdown(); got != "[A](notes/a.md)" {
		t.Fatalf("link with display: %q", got)
	}
}

func TestObject_SetKeepsPosition(t *testing.T) {
	obj := ObjectOf("a", 1, "b", 2)
	obj.Set("a", 10)

	want := []string{"a", "b"}
	if diff := cmp.Diff(want, obj.Keys()); diff != "" {
		t.Fatalf("overwrite must keep key position (-want +got):\n%s", diff)
	}
	if v, ok := obj.Get("a"); !ok || v != 10 {
		t.Fatalf("Get(a) = %v, %v", v, ok)
	}
}

func TestObject_NilSafety(t *testing.T) {
	var obj *Object
	if obj.Len() != 0 {
		t.Fatalf("nil object should have zero length")
	}
	if _, ok := obj.Get("x"); ok {
		t.Fatalf("nil object should not report keys")
	}
	if got := obj.Entries(); got != nil {
		t.Fatalf("nil object entries = %v", got)
	}
}

func TestObjectOf_DropsUnpairedTrailingKey(t *testing.T) {
	obj := ObjectOf("a", 1, "dangling")
	if obj.Len() != 1 {
		t.Fatalf("expected one entry, got %d", obj.Len())
	}
}
