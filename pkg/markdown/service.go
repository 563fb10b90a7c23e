// Package markdown hosts the markup rendering service the value renderer
// delegates to, plus the compact renderer that strips single-paragraph
// wrapping from its output. The default implementation parses markdown with
// goldmark and sanitises the result with bluemonday before attaching it to
// the output tree.
package markdown

import (
	"context"

	"golang.org/x/net/html"
)

// Service renders a markup string into children of target. origin
// identifies the document the markup came from so link resolution can be
// relative to it. The context is the lifecycle token for the call: when the
// owning scope is cancelled, in-flight rendering returns the context error.
// Implementations must be re-entrant for nested invocations.
type Service interface {
	Render(ctx context.Context, source string, target *html.Node, origin string) error
}

// ServiceFunc adapts a function to the Service interface.
type ServiceFunc func(ctx context.Context, source string, target *html.Node, origin string) error

func (f ServiceFunc) Render(ctx context.Context, source string, target *html.Node, origin string) error {
	return f(ctx, source, target, origin)
}
