package markup

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewElement_Classes(t *testing.T) {
	n := NewElement("ul", "one", "", "  two  ")
	if got := Attr(n, "class"); got != "one two" {
		t.Fatalf("class = %q", got)
	}

	n = NewElement("span")
	if got := Attr(n, "class"); got != "" {
		t.Fatalf("expected no class attribute, got %q", got)
	}
}

func TestAppend_DetachesFromPreviousParent(t *testing.T) {
	a := NewElement("div")
	b := NewElement("div")
	child := NewText("x")

	Append(a, child)
	Append(b, child)

	if len(Children(a)) != 0 {
		t.Fatalf("child should have left its first parent")
	}
	if len(Children(b)) != 1 {
		t.Fatalf("child should have joined its new parent")
	}
}

func TestReplaceChildren(t *testing.T) {
	n := NewElement("div")
	AppendText(n, "old1")
	AppendText(n, "old2")

	other := NewElement("p")
	kept := NewText("new")
	Append(other, kept)

	ReplaceChildren(n, kept)

	kids := Children(n)
	if len(kids) != 1 || kids[0].Data != "new" {
		t.Fatalf("unexpected children after replace: %d", len(kids))
	}
	if len(Children(other)) != 0 {
		t.Fatalf("replacement child should have been detached from its old parent")
	}
}

func TestReplaceChildren_Empty(t *testing.T) {
	n := NewElement("div")
	AppendText(n, "old")

	ReplaceChildren(n)

	if len(Children(n)) != 0 {
		t.Fatalf("expected no children")
	}
}

func TestSetAttr_Overwrites(t *testing.T) {
	n := NewElement("a")
	SetAttr(n, "href", "one")
	SetAttr(n, "href", "two")

	if got := Attr(n, "href"); got != "two" {
		t.Fatalf("href = %q", got)
	}
	if len(n.Attr) != 1 {
		t.Fatalf("expected a single attribute, got %d", len(n.Attr))
	}
}

func TestInnerText(t *testing.T) {
	n := NewElement("div")
	AppendText(n, "a")
	span := NewElement("span")
	AppendText(span, "b")
	Append(n, span)
	AppendText(n, "c")

	if got := InnerText(n); got != "abc" {
		t.Fatalf("InnerText = %q", got)
	}
}

func TestRenderChildren(t *testing.T) {
	n := NewElement("div")
	span := NewElement("span", "x")
	AppendText(span, "hi")
	Append(n, span)

	got, err := RenderChildren(n)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff(`<span class="x">hi</span>`, got); diff != "" {
		t.Fatalf("serialised output (-want +got):\n%s", diff)
	}
}

func TestChildren_Snapshot(t *testing.T) {
	n := NewElement("div")
	AppendText(n, "a")
	AppendText(n, "b")

	kids := Children(n)
	for _, c := range kids {
		Detach(c)
	}
	if len(kids) != 2 {
		t.Fatalf("snapshot should keep both nodes")
	}
	if len(Children(n)) != 0 {
		t.Fatalf("nodes should have detached")
	}
}
