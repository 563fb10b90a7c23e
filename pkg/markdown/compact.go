package markdown

import (
	"context"
	"fmt"

	"golang.org/x/net/html"

	"github.com/goliatone/go-valueview/pkg/markup"
)

// Surface declares which paragraph-collapsing strategy RenderCompact uses.
// The caller states it explicitly instead of the renderer inferring it from
// the call site.
type Surface string

const (
	// SurfacePreview renders into a detached scratch node and replaces the
	// target's children wholesale, leaving no wrapper of its own. Intended
	// for surfaces that re-read the target's children afterwards.
	SurfacePreview Surface = "preview"
	// SurfaceGeneric renders into a span child of the target and collapses
	// a lone paragraph inside it, keeping the span as the outer wrapper.
	SurfaceGeneric Surface = "generic"
)

// RenderCompact renders a markup string through svc and collapses
// single-paragraph wrapping, so inline fragments attach without a block
// wrapper around them. Host rendering failures propagate untouched; on
// failure the target may have been partially modified.
func RenderCompact(ctx context.Context, svc Service, source string, target *html.Node, origin string, surface Surface) error {
	if svc == nil {
		return fmt.Errorf("markdown: service is required")
	}

	switch surface {
	case SurfacePreview:
		return compactPreview(ctx, svc, source, target, origin)
	case SurfaceGeneric, "":
		return compactGeneric(ctx, svc, source, target, origin)
	default:
		return fmt.Errorf("markdown: unknown surface %q", surface)
	}
}

// compactPreview renders into a scratch node. A single top-level <p> is
// unwrapped entirely; otherwise the full content (which may be several
// sibling block elements with no enclosing paragraph) moves over as-is. The
// scratch node is discarded either way.
func compactPreview(ctx context.Context, svc Service, source string, target *html.Node, origin string) error {
	scratch := markup.NewElement("div")
	if err := svc.Render(ctx, source, scratch, origin); err != nil {
		return err
	}

	kids := markup.Children(scratch)
	if len(kids) == 1 && markup.IsElement(kids[0], "p") {
		markup.ReplaceChildren(target, markup.Children(kids[0])...)
		return nil
	}
	markup.ReplaceChildren(target, kids...)
	return nil
}

// compactGeneric renders into a span appended to the target. A lone <p>
// inside the span is hoisted so its children become the span's children;
// the span itself stays as the wrapper.
func compactGeneric(ctx context.Context, svc Service, source string, target *html.Node, origin string) error {
	sub := markup.NewElement("span")
	markup.Append(target, sub)
	if err := svc.Render(ctx, source, sub, origin); err != nil {
		return err
	}

	kids := markup.Children(sub)
	if len(kids) == 1 && markup.IsElement(kids[0], "p") {
		markup.ReplaceChildren(sub, markup.Children(kids[0])...)
	}
	return nil
}
