// Package markup wraps golang.org/x/net/html nodes with the small
// append-only surface the renderer needs: element construction, text
// appends, and child replacement. The renderer never reads completed
// siblings back, so nothing here supports querying beyond direct children.
package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NewElement builds a detached element node. Classes are joined into a
// single class attribute; empty class names are skipped.
func NewElement(tag string, classes ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	cleaned := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	if len(cleaned) > 0 {
		SetAttr(n, "class", strings.Join(cleaned, " "))
	}
	return n
}

// NewText builds a detached text node.
func NewText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// Append attaches child to parent, detaching it from any previous parent
// first so hoisted nodes can be re-homed safely.
func Append(parent, child *html.Node) {
	if parent == nil || child == nil {
		return
	}
	Detach(child)
	parent.AppendChild(child)
}

// AppendText appends a text node to parent.
func AppendText(parent *html.Node, text string) {
	Append(parent, NewText(text))
}

// Detach removes n from its parent, if it has one.
func Detach(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Children returns the direct children of n as a slice. The slice is a
// snapshot: detaching or re-homing the nodes afterwards is safe.
func Children(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// ReplaceChildren removes every child of n and appends the given nodes in
// order, detaching each from its previous parent.
func ReplaceChildren(n *html.Node, children ...*html.Node) {
	if n == nil {
		return
	}
	for _, c := range Children(n) {
		n.RemoveChild(c)
	}
	for _, c := range children {
		Append(n, c)
	}
}

// IsElement reports whether n is an element with the given tag name.
func IsElement(n *html.Node, tag string) bool {
	return n != nil && n.Type == html.ElementNode && n.Data == tag
}

// SetAttr sets or overwrites an attribute on n.
func SetAttr(n *html.Node, key, value string) {
	if n == nil {
		return
	}
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

// Attr returns the value of an attribute, or "" when absent.
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// InnerText concatenates every text node under n in document order.
func InnerText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			sb.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// Render serialises n, including the node itself.
func Render(n *html.Node) (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderChildren serialises only the children of n, which is what callers
// want when n is a scratch container.
func RenderChildren(n *html.Node) (string, error) {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}
