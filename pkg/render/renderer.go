package render

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/net/html"

	"github.com/goliatone/go-valueview/pkg/literal"
	"github.com/goliatone/go-valueview/pkg/markdown"
	"github.com/goliatone/go-valueview/pkg/markup"
)

// Option configures a Renderer before construction.
type Option func(*config)

type config struct {
	settings Settings
	surface  markdown.Surface
	classes  Classes
	themeErr error
}

// WithSettings replaces the default render settings.
func WithSettings(settings Settings) Option {
	return func(cfg *config) {
		cfg.settings = settings
	}
}

// WithSurface selects the paragraph-collapsing strategy used for every
// markup delegation. The default is the generic surface, which wraps each
// fragment in its own span and is safe for shared containers; the preview
// surface replaces the target's children and expects a dedicated target
// per fragment.
func WithSurface(surface markdown.Surface) Option {
	return func(cfg *config) {
		if surface != "" {
			cfg.surface = surface
		}
	}
}

// WithClasses overrides the class names stamped on generated containers.
// Empty fields keep their defaults.
func WithClasses(classes Classes) Option {
	return func(cfg *config) {
		cfg.classes = mergeClasses(cfg.classes, classes)
	}
}

func mergeClasses(base, override Classes) Classes {
	if override.List != "" {
		base.List = override.List
	}
	if override.ListRoot != "" {
		base.ListRoot = override.ListRoot
	}
	if override.ListNested != "" {
		base.ListNested = override.ListNested
	}
	if override.ListItem != "" {
		base.ListItem = override.ListItem
	}
	if override.InlineGroup != "" {
		base.InlineGroup = override.InlineGroup
	}
	return base
}

// Renderer is the recursive value renderer. It holds no per-call state; a
// single instance is safe for concurrent use as long as callers supply
// distinct output containers.
type Renderer struct {
	svc      markdown.Service
	settings Settings
	surface  markdown.Surface
	classes  Classes
}

// New builds a Renderer around the given markup service.
func New(svc markdown.Service, options ...Option) (*Renderer, error) {
	if svc == nil {
		return nil, fmt.Errorf("render: markup service is required")
	}

	cfg := &config{
		settings: DefaultSettings(),
		surface:  markdown.SurfaceGeneric,
		classes:  DefaultClasses(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.themeErr != nil {
		return nil, cfg.themeErr
	}
	if cfg.settings.MaxRecursionDepth < 0 {
		return nil, fmt.Errorf("render: max recursion depth must be >= 0, got %d", cfg.settings.MaxRecursionDepth)
	}

	return &Renderer{
		svc:      svc,
		settings: cfg.settings,
		surface:  cfg.surface,
		classes:  cfg.classes,
	}, nil
}

// Settings returns the settings the renderer was built with.
func (r *Renderer) Settings() Settings {
	if r == nil {
		return Settings{}
	}
	return r.settings
}

// RenderOptions carries the per-call knobs of the full entry point.
type RenderOptions struct {
	// Expand switches composites from comma-joined spans to bulleted lists.
	Expand bool
	// Context seeds the styling context; the zero value means ContextRoot.
	Context Context
	// Depth seeds the recursion depth, for callers embedding this renderer
	// inside an outer recursive walk.
	Depth int
}

// Render renders value into container in compact mode at root context.
func (r *Renderer) Render(ctx context.Context, value any, container *html.Node, origin string) error {
	return r.RenderWith(ctx, value, container, origin, RenderOptions{})
}

// RenderExpanded renders value with composites expanded into bulleted
// lists.
func (r *Renderer) RenderExpanded(ctx context.Context, value any, container *html.Node, origin string) error {
	return r.RenderWith(ctx, value, container, origin, RenderOptions{Expand: true})
}

// RenderWith is the full entry point.
func (r *Renderer) RenderWith(ctx context.Context, value any, container *html.Node, origin string, opts RenderOptions) error {
	if r == nil || r.svc == nil {
		return fmt.Errorf("render: renderer is not initialised")
	}
	if container == nil {
		return fmt.Errorf("render: output container is required")
	}
	rctx := opts.Context
	if rctx == "" {
		rctx = ContextRoot
	}
	return r.renderValue(ctx, value, container, origin, opts.Expand, rctx, opts.Depth)
}

// renderValue is the dispatcher. Arms run in fixed precedence; every
// unrecognised shape degrades to a visible placeholder, and only host
// markup failures escape as errors.
func (r *Renderer) renderValue(ctx context.Context, value any, container *html.Node, origin string, expand bool, rctx Context, depth int) error {
	if depth > r.settings.MaxRecursionDepth {
		markup.AppendText(container, TruncationMarker)
		return nil
	}

	switch literal.Classify(value) {
	case literal.KindNull:
		return r.compact(ctx, r.settings.NullDisplay, container, origin)

	case literal.KindDate:
		markup.AppendText(container, FormatDate(asTime(value), r.settings))
		return nil

	case literal.KindDuration:
		markup.AppendText(container, FormatDuration(value.(time.Duration)))
		return nil

	case literal.KindString, literal.KindBoolean, literal.KindNumber:
		return r.compact(ctx, stringify(value), container, origin)

	case literal.KindLink:
		return r.compact(ctx, asLink(value).Markdown(), container, origin)

	case literal.KindNode:
		markup.Append(container, value.(*html.Node))
		return nil

	case literal.KindWidget:
		return r.renderWidget(ctx, value.(literal.Widget), container, origin, expand, rctx, depth)

	case literal.KindFunction:
		markup.AppendText(container, "<function>")
		return nil

	case literal.KindSequence:
		return r.renderSequence(ctx, literal.SequenceValues(value), container, origin, expand, rctx, depth)

	case literal.KindMapping:
		return r.renderMapping(ctx, literal.MappingEntries(value), container, origin, expand, rctx, depth)

	case literal.KindForeign:
		// Foreign structs never get their fields walked; they may hold
		// cycles the depth bound would only catch late.
		markup.AppendText(container, "<"+literal.TypeName(value)+">")
		return nil

	default:
		markup.AppendText(container, "Unrecognized: "+dump(value))
		return nil
	}
}

// renderWidget sub-dispatches on the widget discriminator. List pairs are
// transparent: both sides render at the pair's own depth and context.
func (r *Renderer) renderWidget(ctx context.Context, w literal.Widget, container *html.Node, origin string, expand bool, rctx Context, depth int) error {
	switch w := w.(type) {
	case literal.ListPair:
		if err := r.renderValue(ctx, w.Key, container, origin, expand, rctx, depth); err != nil {
			return err
		}
		markup.AppendText(container, ": ")
		return r.renderValue(ctx, w.Value, container, origin, expand, rctx, depth)

	case literal.ExternalLink:
		text := w.Display
		if text == "" {
			text = w.URL
		}
		anchor := markup.NewElement("a", ClassExternalLink)
		markup.SetAttr(anchor, "href", w.URL)
		markup.SetAttr(anchor, "target", "_blank")
		markup.SetAttr(anchor, "rel", "noopener")
		markup.AppendText(anchor, text)
		markup.Append(container, anchor)
		return nil

	default:
		markup.AppendText(container, fmt.Sprintf("<unknown widget '%s'>", w.Discriminator()))
		return nil
	}
}

// renderSequence implements the composite list algorithm. Children render
// strictly in order, each completed before the next starts, so append
// order always matches source order.
func (r *Renderer) renderSequence(ctx context.Context, items []any, container *html.Node, origin string, expand bool, rctx Context, depth int) error {
	if expand {
		list := markup.NewElement("ul", r.classes.List, r.contextClass(rctx))
		markup.Append(container, list)
		for _, item := range items {
			li := markup.NewElement("li", r.classes.ListItem)
			markup.Append(list, li)
			if err := r.renderValue(ctx, item, li, origin, expand, ContextList, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	if len(items) == 0 {
		markup.AppendText(container, "<empty list>")
		return nil
	}

	group := markup.NewElement("span", r.classes.InlineGroup)
	markup.Append(container, group)
	for i, item := range items {
		if i > 0 {
			markup.AppendText(group, ", ")
		}
		if err := r.renderValue(ctx, item, group, origin, expand, ContextList, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// renderMapping mirrors the list algorithm over key/value entries in
// enumeration order.
func (r *Renderer) renderMapping(ctx context.Context, entries []literal.Entry, container *html.Node, origin string, expand bool, rctx Context, depth int) error {
	if expand {
		list := markup.NewElement("ul", r.classes.List, r.contextClass(rctx))
		markup.Append(container, list)
		for _, entry := range entries {
			li := markup.NewElement("li", r.classes.ListItem)
			markup.Append(list, li)
			markup.AppendText(li, entry.Key+": ")
			if err := r.renderValue(ctx, entry.Value, li, origin, expand, ContextList, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	if len(entries) == 0 {
		markup.AppendText(container, "<empty object>")
		return nil
	}

	group := markup.NewElement("span", r.classes.InlineGroup)
	markup.Append(container, group)
	for i, entry := range entries {
		if i > 0 {
			markup.AppendText(group, ", ")
		}
		markup.AppendText(group, entry.Key+": ")
		if err := r.renderValue(ctx, entry.Value, group, origin, expand, ContextList, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) compact(ctx context.Context, source string, container *html.Node, origin string) error {
	return markdown.RenderCompact(ctx, r.svc, source, container, origin, r.surface)
}

func (r *Renderer) contextClass(rctx Context) string {
	if rctx == ContextRoot {
		return r.classes.ListRoot
	}
	return r.classes.ListNested
}

func asTime(v any) time.Time {
	switch x := v.(type) {
	case time.Time:
		return x
	case *time.Time:
		return *x
	}
	return time.Time{}
}

func asLink(v any) literal.Link {
	switch x := v.(type) {
	case literal.Link:
		return x
	case *literal.Link:
		return *x
	}
	return literal.Link{}
}
