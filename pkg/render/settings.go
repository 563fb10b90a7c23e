// Package render implements the recursive value renderer: it classifies a
// value through the literal oracle and either emits it directly, delegates
// to the compact markup renderer, or recurses into the list/object layout
// algorithms. Rendering is depth-bounded, sequential, and append-only with
// respect to the output tree.
package render

// Context classifies where a value sits during recursion. It only affects
// the styling applied to composite containers, never control flow, and it
// flips to ContextList for every descent into a composite's children.
type Context string

const (
	ContextRoot Context = "root"
	ContextList Context = "list"
)

// TruncationMarker is appended when recursion depth runs out.
const TruncationMarker = "…"

// Settings is the immutable per-render configuration, threaded unchanged
// through every recursive call. Locale resolution happens before this
// struct is built: the date layouts are already in the caller's locale.
type Settings struct {
	// MaxRecursionDepth bounds recursive descent into composites; frames
	// deeper than this render the truncation marker and stop. This is the
	// only defence against self-referential values.
	MaxRecursionDepth int
	// NullDisplay is the markup rendered in place of null values.
	NullDisplay string
	// DateFormat is the Go layout for dates with no time-of-day component.
	DateFormat string
	// DateTimeFormat is the Go layout for dates carrying a time-of-day.
	DateTimeFormat string
}

// DefaultSettings mirrors the defaults callers get without any
// configuration.
func DefaultSettings() Settings {
	return Settings{
		MaxRecursionDepth: 4,
		NullDisplay:       "-",
		DateFormat:        "January 02, 2006",
		DateTimeFormat:    "3:04 PM - January 02, 2006",
	}
}

// Classes holds the CSS class names stamped onto generated container nodes.
// The external-link anchor class is a fixed contract and not configurable.
type Classes struct {
	// List goes on every generated <ul>.
	List string
	// ListRoot additionally goes on root-context lists, ListNested on
	// lists nested inside another composite.
	ListRoot   string
	ListNested string
	// ListItem goes on every generated <li>.
	ListItem string
	// InlineGroup goes on the span grouping compact composite children.
	InlineGroup string
}

// ClassExternalLink marks anchors produced for external-link widgets.
const ClassExternalLink = "external-link"

// DefaultClasses returns the built-in class names.
func DefaultClasses() Classes {
	return Classes{
		List:        "valueview-ul",
		ListRoot:    "valueview-ul-root",
		ListNested:  "valueview-ul-nested",
		ListItem:    "valueview-li",
		InlineGroup: "valueview-inline-list",
	}
}
