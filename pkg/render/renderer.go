package render

import (
	"context"

	"github.com/goliatone/go-magnitude/pkg/dataset"
)

// Page is everything a renderer needs to produce the index document: the
// loaded datasets in display order and the href the page should use to link
// its stylesheet.
type Page struct {
	Datasets       []dataset.Dataset
	StylesheetHref string
}

// RenderOptions carries per-request rendering overrides.
type RenderOptions struct {
	// TableHeaders overrides the column labels of every dataset table.
	// Leave empty for the renderer defaults.
	TableHeaders []string
}

// Renderer converts a Page into a byte representation (HTML, Markdown, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, page Page, options RenderOptions) ([]byte, error)
}
