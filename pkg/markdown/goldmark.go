package markdown

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-valueview/pkg/markup"
)

// GoldmarkOption configures the default markup service before construction.
type GoldmarkOption func(*goldmarkConfig)

type goldmarkConfig struct {
	md           goldmark.Markdown
	policy       *bluemonday.Policy
	noSanitize   bool
	resolveLinks bool
}

// WithGoldmark replaces the underlying goldmark instance, for callers that
// need extra extensions or renderer options.
func WithGoldmark(md goldmark.Markdown) GoldmarkOption {
	return func(cfg *goldmarkConfig) {
		if md != nil {
			cfg.md = md
		}
	}
}

// WithPolicy replaces the bluemonday policy applied to rendered output.
func WithPolicy(policy *bluemonday.Policy) GoldmarkOption {
	return func(cfg *goldmarkConfig) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// WithoutSanitizer disables output sanitisation. Only use this when the
// markup source is fully trusted.
func WithoutSanitizer() GoldmarkOption {
	return func(cfg *goldmarkConfig) {
		cfg.noSanitize = true
	}
}

// WithRelativeLinkResolution rewrites relative link targets in rendered
// output against the origin path passed to Render.
func WithRelativeLinkResolution() GoldmarkOption {
	return func(cfg *goldmarkConfig) {
		cfg.resolveLinks = true
	}
}

// Goldmark is the default Service implementation: goldmark with GFM
// extensions, output sanitised through bluemonday, parsed into nodes with
// x/net/html. Safe for concurrent and re-entrant use.
type Goldmark struct {
	md           goldmark.Markdown
	policy       *bluemonday.Policy
	resolveLinks bool
}

var _ Service = (*Goldmark)(nil)

// NewGoldmark constructs the default markup service.
func NewGoldmark(options ...GoldmarkOption) *Goldmark {
	cfg := &goldmarkConfig{}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}

	if cfg.md == nil {
		// Raw HTML passes through goldmark here; bluemonday is the safety
		// layer, so authored inline HTML survives sanitisation instead of
		// being escaped outright.
		cfg.md = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
		)
	}
	if cfg.policy == nil && !cfg.noSanitize {
		cfg.policy = defaultPolicy()
	}

	return &Goldmark{
		md:           cfg.md,
		policy:       cfg.policy,
		resolveLinks: cfg.resolveLinks,
	}
}

// Render converts the markdown source and appends the resulting nodes to
// target. Conversion is synchronous; the context is checked before work
// starts so cancelled scopes never touch the output tree.
func (g *Goldmark) Render(ctx context.Context, source string, target *html.Node, origin string) error {
	if g == nil {
		return fmt.Errorf("markdown: service is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := g.md.Convert([]byte(source), &buf); err != nil {
		return fmt.Errorf("markdown: convert: %w", err)
	}

	out := buf.Bytes()
	if g.policy != nil {
		out = g.policy.SanitizeBytes(out)
	}

	nodes, err := ParseFragment(out)
	if err != nil {
		return fmt.Errorf("markdown: parse rendered output: %w", err)
	}

	for _, n := range nodes {
		if g.resolveLinks {
			resolveRelativeLinks(n, origin)
		}
		markup.Append(target, n)
	}
	return nil
}

// ParseFragment parses an HTML fragment in body context and returns its
// top-level nodes, detached.
func ParseFragment(fragment []byte) ([]*html.Node, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(bytes.NewReader(fragment), body)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		markup.Detach(n)
	}
	return nodes, nil
}

func defaultPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Globally()
	policy.AllowAttrs("target", "rel").OnElements("a")
	return policy
}

func resolveRelativeLinks(n *html.Node, origin string) {
	if origin == "" || n == nil {
		return
	}
	base := path.Dir(origin)
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if markup.IsElement(cur, "a") {
			if href := markup.Attr(cur, "href"); isRelative(href) {
				markup.SetAttr(cur, "href", path.Join(base, href))
			}
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
}

func isRelative(href string) bool {
	if href == "" || href[0] == '/' || href[0] == '#' {
		return false
	}
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}
