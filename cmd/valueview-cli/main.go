package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/flosch/pongo2/v6"

	valueview "github.com/goliatone/go-valueview"
	"github.com/goliatone/go-valueview/internal/yamlval"
)

//go:embed templates/page.html
var templateFS embed.FS

func main() {
	source := flag.String("source", "", "YAML value document to render")
	output := flag.String("output", "", "output file (stdout if empty)")
	expand := flag.Bool("expand", false, "render composites as bulleted lists")
	page := flag.Bool("page", false, "wrap output in a full HTML page")
	title := flag.String("title", "valueview", "page title when -page is set")
	origin := flag.String("origin", "", "origin path used for link resolution")
	interactive := flag.Bool("interactive", false, "prompt for missing choices")
	flag.Parse()

	if *interactive {
		if err := promptChoices(source, expand, page); err != nil {
			log.Fatalf("prompt: %v", err)
		}
	}
	if *source == "" {
		log.Fatalf("a -source document is required")
	}

	data, err := os.ReadFile(*source)
	if err != nil {
		log.Fatalf("read %s: %v", *source, err)
	}
	value, err := yamlval.DecodeBytes(data)
	if err != nil {
		log.Fatalf("decode %s: %v", *source, err)
	}

	ctx := context.Background()
	var rendered string
	if *expand {
		rendered, err = valueview.RenderHTMLExpanded(ctx, value, *origin)
	} else {
		rendered, err = valueview.RenderHTML(ctx, value, *origin)
	}
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	if *page {
		rendered, err = wrapPage(rendered, *title)
		if err != nil {
			log.Fatalf("wrap page: %v", err)
		}
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(rendered), 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", *output)
		return
	}
	fmt.Println(rendered)
}

func promptChoices(source *string, expand, page *bool) error {
	if *source == "" {
		prompt := &survey.Input{Message: "Value document to render:"}
		if err := survey.AskOne(prompt, source, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	mode := "compact"
	if *expand {
		mode = "expanded"
	}
	layout := &survey.Select{
		Message: "Composite layout:",
		Options: []string{"compact", "expanded"},
		Default: mode,
	}
	if err := survey.AskOne(layout, &mode); err != nil {
		return err
	}
	*expand = mode == "expanded"

	confirm := &survey.Confirm{Message: "Wrap output in a full HTML page?", Default: *page}
	return survey.AskOne(confirm, page)
}

func wrapPage(content, title string) (string, error) {
	set := pongo2.NewSet("valueview-cli", pongo2.NewFSLoader(templateFS))
	tpl, err := set.FromFile("templates/page.html")
	if err != nil {
		return "", fmt.Errorf("load page template: %w", err)
	}
	return tpl.Execute(pongo2.Context{
		"title":   title,
		"content": content,
	})
}
