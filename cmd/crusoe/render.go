package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"crusoe/pkg/css"
	"crusoe/pkg/html"
	"crusoe/pkg/layout"
	"crusoe/pkg/net"
	"crusoe/pkg/paint"
	"crusoe/pkg/style"
)

var (
	renderCSS    []string
	renderOutput string
	renderWidth  float64
	renderHeight float64
)

var renderCmd = &cobra.Command{
	Use:   "render <document>",
	Short: "Lay out a document and write it to a PNG",
	Long: `Render fetches an HTML document (file path or http(s) URL), applies its
stylesheets, runs block layout against the viewport, and rasterizes the
resulting display list to a PNG.

Stylesheets come from the document's <style> elements and stylesheet
links unless --css is given, which replaces them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		box, err := layoutDocument(args[0])
		if err != nil {
			return err
		}

		list := paint.BuildDisplayList(box)
		logger.Debug("display list built", zap.Int("commands", len(list)))

		renderer := paint.NewRenderer(int(renderWidth), int(renderHeight))
		renderer.Render(list)
		if err := renderer.SavePNG(renderOutput); err != nil {
			return fmt.Errorf("writing %s: %w", renderOutput, err)
		}
		fmt.Printf("rendered %s to %s (%d paint commands)\n", args[0], renderOutput, len(list))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringArrayVar(&renderCSS, "css", nil, "stylesheet to use instead of the document's own (repeatable)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "output.png", "output PNG path")
	renderCmd.Flags().Float64VarP(&renderWidth, "width", "w", 800, "viewport width in pixels")
	renderCmd.Flags().Float64VarP(&renderHeight, "height", "H", 600, "viewport height in pixels")
	rootCmd.AddCommand(renderCmd)
}

// layoutDocument runs the whole pipeline short of painting: fetch, parse,
// cascade, and lay out against the configured viewport.
func layoutDocument(ref string) (*layout.Box, error) {
	doc, sheets, err := loadPage(ref)
	if err != nil {
		return nil, err
	}

	styleRoot := style.BuildTree(doc.Root, sheets)

	viewport := layout.Dimensions{
		Content: layout.Rect{Width: renderWidth, Height: renderHeight},
	}
	box, err := layout.Layout(styleRoot, viewport)
	if err != nil {
		return nil, fmt.Errorf("could not lay out document: %w", err)
	}
	return box, nil
}

func loadPage(ref string) (*html.Document, []*css.Stylesheet, error) {
	body, err := net.Fetch(ref)
	if err != nil {
		return nil, nil, err
	}
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, nil, err
	}

	var sources []string
	if len(renderCSS) > 0 {
		for _, cssRef := range renderCSS {
			text, err := net.Fetch(cssRef)
			if err != nil {
				return nil, nil, err
			}
			sources = append(sources, string(text))
		}
	} else {
		sources = append(sources, doc.Stylesheets...)
		fetcher := net.NewFetcher(ref)
		for _, link := range doc.StylesheetLinks {
			logger.Debug("fetching linked stylesheet", zap.String("href", link))
			text, err := fetcher.Fetch(link)
			if err != nil {
				return nil, nil, err
			}
			sources = append(sources, string(text))
		}
	}

	var sheets []*css.Stylesheet
	for _, src := range sources {
		sheet, err := css.Parse(src)
		if err != nil {
			return nil, nil, err
		}
		sheets = append(sheets, sheet)
	}
	logger.Debug("page loaded",
		zap.String("document", ref),
		zap.Int("stylesheets", len(sheets)))
	return doc, sheets, nil
}
