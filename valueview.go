// Package valueview renders dynamically-typed, possibly self-referential
// values into an HTML node tree: scalars flow through a markdown pipeline,
// composites lay out as comma-joined spans or bulleted lists, and
// everything unrecognised degrades to a visible placeholder instead of an
// error. The root package re-exports the main entry points; the real work
// lives in pkg/render, pkg/markdown, pkg/markup, and pkg/literal.
package valueview

import (
	"context"

	"github.com/goliatone/go-valueview/pkg/literal"
	"github.com/goliatone/go-valueview/pkg/markdown"
	"github.com/goliatone/go-valueview/pkg/markup"
	"github.com/goliatone/go-valueview/pkg/render"
)

// Settings is the per-render configuration threaded through every
// recursive call.
type Settings = render.Settings

// RenderOptions carries the per-call knobs of the full entry point.
type RenderOptions = render.RenderOptions

// Classes holds the class names stamped on generated containers.
type Classes = render.Classes

// Link is a document reference rendered through the markup pipeline.
type Link = literal.Link

// Object is the insertion-ordered mapping type.
type Object = literal.Object

// Surface selects the paragraph-collapsing strategy for markup
// delegations.
type Surface = markdown.Surface

const (
	SurfacePreview = markdown.SurfacePreview
	SurfaceGeneric = markdown.SurfaceGeneric
)

// NewRenderer exposes the renderer constructor from the top-level module.
func NewRenderer(svc markdown.Service, options ...render.Option) (*render.Renderer, error) {
	return render.New(svc, options...)
}

// RenderHTML renders a value to an HTML string using the default goldmark
// markup service. It is the simplest entry point for callers that just
// want markup output.
func RenderHTML(ctx context.Context, value any, origin string, options ...render.Option) (string, error) {
	return renderHTML(ctx, value, origin, render.RenderOptions{}, options...)
}

// RenderHTMLExpanded is RenderHTML with composites expanded into bulleted
// lists.
func RenderHTMLExpanded(ctx context.Context, value any, origin string, options ...render.Option) (string, error) {
	return renderHTML(ctx, value, origin, render.RenderOptions{Expand: true}, options...)
}

func renderHTML(ctx context.Context, value any, origin string, opts render.RenderOptions, options ...render.Option) (string, error) {
	renderer, err := render.New(markdown.NewGoldmark(), options...)
	if err != nil {
		return "", err
	}
	container := markup.NewElement("div")
	if err := renderer.RenderWith(ctx, value, container, origin, opts); err != nil {
		return "", err
	}
	return markup.RenderChildren(container)
}
