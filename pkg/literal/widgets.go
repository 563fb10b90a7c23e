package literal

// Built-in widget discriminators recognised by the renderer.
const (
	WidgetListPair     = "list-pair"
	WidgetExternalLink = "external-link"
)

// Widget is a presentation-only value variant. The classification oracle
// treats widgets as opaque; the renderer sub-dispatches on the
// discriminator and falls back to an opaque placeholder for discriminators
// it does not recognise.
type Widget interface {
	Discriminator() string
}

// ListPair pairs a key with a value for display. A pair is a transparent
// pass-through, not a composite level: both sides render at the depth and
// context of the pair itself.
type ListPair struct {
	Key   any
	Value any
}

func (ListPair) Discriminator() string { return WidgetListPair }

// NewListPair builds a list-pair widget.
func NewListPair(key, value any) ListPair {
	return ListPair{Key: key, Value: value}
}

// ExternalLink is a hyperlink that leaves the host entirely; it renders as
// an anchor node directly instead of going through the markup service.
type ExternalLink struct {
	URL     string
	Display string
}

func (ExternalLink) Discriminator() string { return WidgetExternalLink }

// NewExternalLink builds an external-link widget with an optional display
// text; the URL doubles as the visible text when display is empty.
func NewExternalLink(url string, display ...string) ExternalLink {
	w := ExternalLink{URL: url}
	if len(display) > 0 {
		w.Display = display[0]
	}
	return w
}
