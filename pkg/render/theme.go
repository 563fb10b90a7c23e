package render

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Theme token keys recognised for class-name overrides. Tokens missing from
// the manifest keep the built-in class names.
const (
	themeTokenList        = "valueview.class.list"
	themeTokenListRoot    = "valueview.class.listRoot"
	themeTokenListNested  = "valueview.class.listNested"
	themeTokenListItem    = "valueview.class.listItem"
	themeTokenInlineGroup = "valueview.class.inlineGroup"
)

// WithTheme resolves the named theme/variant through a go-theme selector
// and applies any `valueview.class.*` manifest tokens as class-name
// overrides. Selection failures surface from New.
func WithTheme(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		if selector == nil {
			return
		}
		selection, err := selector.Select(name, variant)
		if err != nil {
			cfg.themeErr = fmt.Errorf("render: select theme %q: %w", name, err)
			return
		}
		cfg.classes = mergeClasses(cfg.classes, classesFromSelection(selection))
	}
}

func classesFromSelection(selection *theme.Selection) Classes {
	if selection == nil || selection.Manifest == nil {
		return Classes{}
	}
	tokens := selection.Manifest.Tokens
	lookup := func(key string) string {
		return strings.TrimSpace(tokens[key])
	}
	return Classes{
		List:        lookup(themeTokenList),
		ListRoot:    lookup(themeTokenListRoot),
		ListNested:  lookup(themeTokenListNested),
		ListItem:    lookup(themeTokenListItem),
		InlineGroup: lookup(themeTokenInlineGroup),
	}
}
