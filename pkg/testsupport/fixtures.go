// Package testsupport provides the shared fixtures the renderer test suites
// lean on: a recording stub markup service and a compact textual dump of
// node trees that diffs well under go-cmp.
package testsupport

import (
	"context"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/goliatone/go-valueview/pkg/literal"
	"github.com/goliatone/go-valueview/pkg/markup"
)

// Call records a single markup service invocation.
type Call struct {
	Source string
	Origin string
}

// StubService is a markup service double. It appends the source as a text
// node, optionally wrapped in a paragraph the way a markdown host wraps
// single-line input, and records every call in order.
type StubService struct {
	Calls []Call
	// WrapParagraph wraps output in a <p> element, mimicking markdown
	// block rendering.
	WrapParagraph bool
	// Err, when set, is returned from every call without touching the
	// target.
	Err error
}

// NewStubService returns a stub that wraps output in a paragraph, matching
// what a markdown host does for plain text.
func NewStubService() *StubService {
	return &StubService{WrapParagraph: true}
}

func (s *StubService) Render(_ context.Context, source string, target *html.Node, origin string) error {
	if s.Err != nil {
		return s.Err
	}
	s.Calls = append(s.Calls, Call{Source: source, Origin: origin})

	if s.WrapParagraph {
		p := markup.NewElement("p")
		markup.AppendText(p, source)
		markup.Append(target, p)
		return nil
	}
	markup.AppendText(target, source)
	return nil
}

// NodeShape renders a node tree as a compact one-line expression:
// elements as tag.class[child, child], text nodes as quoted strings.
func NodeShape(n *html.Node) string {
	if n == nil {
		return ""
	}
	switch n.Type {
	case html.TextNode:
		return strconv.Quote(n.Data)
	case html.ElementNode:
		var sb strings.Builder
		sb.WriteString(n.Data)
		if class := markup.Attr(n, "class"); class != "" {
			sb.WriteString("." + strings.ReplaceAll(class, " ", "."))
		}
		kids := ChildShapes(n)
		if len(kids) > 0 {
			sb.WriteString("[" + strings.Join(kids, ", ") + "]")
		}
		return sb.String()
	default:
		return "?"
	}
}

// ChildShapes returns NodeShape for every direct child of n.
func ChildShapes(n *html.Node) []string {
	var out []string
	for _, c := range markup.Children(n) {
		out = append(out, NodeShape(c))
	}
	return out
}

// SampleObject builds a nested ordered object exercising most value kinds.
func SampleObject() *literal.Object {
	return literal.ObjectOf(
		"title", "Weekly review",
		"done", false,
		"priority", int64(2),
		"due", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		"spent", 90*time.Minute,
		"source", literal.NewLink("notes/review.md", "review"),
		"tags", []any{"work", "recurring"},
	)
}
