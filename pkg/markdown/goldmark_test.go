package markdown

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-valueview/pkg/markup"
)

func TestGoldmark_RendersInlineMarkup(t *testing.T) {
	svc := NewGoldmark()
	target := markup.NewElement("div")

	if err := svc.Render(context.Background(), "hello **bold**", target, ""); err != nil {
		t.Fatalf("render: %v", err)
	}

	out, err := markup.RenderChildren(target)
	if err != nil {
		t.Fatalf("serialise: %v", err)
	}
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Fatalf("expected strong element in output, got %q", out)
	}
	if !strings.Contains(out, "<p>") {
		t.Fatalf("expected paragraph wrapper from block rendering, got %q", out)
	}
}

func TestGoldmark_SanitizesScriptTags(t *testing.T) {
	svc := NewGoldmark()
	target := markup.NewElement("div")

	if err := svc.Render(context.Background(), "hi <script>alert(1)</script>", target, ""); err != nil {
		t.Fatalf("render: %v", err)
	}

	out, err := markup.RenderChildren(target)
	if err != nil {
		t.Fatalf("serialise: %v", err)
	}
	if strings.Contains(out, "<script") {
		t.Fatalf("script tags must be sanitised away, got %q", out)
	}
	if !strings.Contains(out, "hi") {
		t.Fatalf("surrounding text should survive sanitisation, got %q", out)
	}
}

func TestGoldmark_CancelledContext(t *testing.T) {
	svc := NewGoldmark()
	target := markup.NewElement("div")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Render(ctx, "hi", target, "")
	if err == nil {
		t.Fatalf("expected the context error")
	}
	if got := markup.Children(target); len(got) != 0 {
		t.Fatalf("cancelled renders must not touch the target, got %d children", len(got))
	}
}

func TestGoldmark_RelativeLinkResolution(t *testing.T) {
	svc := NewGoldmark(WithRelativeLinkResolution())
	target := markup.NewElement("div")

	if err := svc.Render(context.Background(), "[a](other.md)", target, "notes/today.md"); err != nil {
		t.Fatalf("render: %v", err)
	}

	out, err := markup.RenderChildren(target)
	if err != nil {
		t.Fatalf("serialise: %v", err)
	}
	if !strings.Contains(out, `href="notes/other.md"`) {
		t.Fatalf("relative links should resolve against the origin, got %q", out)
	}
}

func TestGoldmark_ReentrantUse(t *testing.T) {
	svc := NewGoldmark()

	outer := markup.NewElement("div")
	if err := svc.Render(context.Background(), "outer", outer, ""); err != nil {
		t.Fatalf("outer render: %v", err)
	}
	// A nested invocation against a child of the first render's output.
	inner := markup.Children(outer)[0]
	if err := svc.Render(context.Background(), "inner", inner, ""); err != nil {
		t.Fatalf("nested render: %v", err)
	}
}

func TestParseFragment_DetachesNodes(t *testing.T) {
	nodes, err := ParseFragment([]byte("<p>one</p><p>two</p>"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected two top-level nodes, got %d", len(nodes))
	}
	for _, n := range nodes {
		if n.Parent != nil {
			t.Fatalf("fragment nodes must come back detached")
		}
	}
}
