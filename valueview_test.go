package valueview

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-valueview/pkg/literal"
)

func TestRenderHTML_Compact(t *testing.T) {
	out, err := RenderHTML(context.Background(), []any{"a", "b"}, "")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, ", ") {
		t.Fatalf("compact lists are comma-joined, got %q", out)
	}
	if strings.Contains(out, "<ul") {
		t.Fatalf("compact mode must not emit bulleted lists, got %q", out)
	}
}

func TestRenderHTML_Expanded(t *testing.T) {
	out, err := RenderHTMLExpanded(context.Background(), []any{"a", "b"}, "")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "<ul") || !strings.Contains(out, "<li") {
		t.Fatalf("expanded mode emits bulleted lists, got %q", out)
	}
}

func TestRenderHTML_InlineMarkupInStrings(t *testing.T) {
	out, err := RenderHTML(context.Background(), "some **bold** text", "")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Fatalf("inline markup embedded in strings is honoured, got %q", out)
	}
	if strings.Contains(out, "<p>") {
		t.Fatalf("single paragraphs collapse in compact rendering, got %q", out)
	}
}

func TestRenderHTML_ObjectEntries(t *testing.T) {
	obj := literal.ObjectOf("name", "ada", "age", int64(36))
	out, err := RenderHTML(context.Background(), obj, "")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "name: ") || !strings.Contains(out, "age: ") {
		t.Fatalf("object entries carry key prefixes, got %q", out)
	}
	name := strings.Index(out, "name: ")
	age := strings.Index(out, "age: ")
	if name > age {
		t.Fatalf("entries must keep insertion order, got %q", out)
	}
}
