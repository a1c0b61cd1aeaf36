// Package page renders loaded datasets as the static index page: one HTML
// section per dataset, each holding a three-column scientific-notation table.
package page

import (
	"context"
	"fmt"
	"html"
	"io/fs"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-magnitude/pkg/dataset"
	"github.com/goliatone/go-magnitude/pkg/render"
	"github.com/goliatone/go-magnitude/pkg/render/template"
	"github.com/goliatone/go-magnitude/pkg/render/template/pongo2tpl"
	"github.com/goliatone/go-magnitude/pkg/sci"
)

// Name is the identifier the renderer registers under.
const Name = "page"

const (
	pageTemplate  = "index"
	sectionIndent = "      "
)

var defaultTableHeaders = []string{"Order of magnitude", "Name", "Value"}

// templateVariables are the context names the renderer supplies to the page
// template. A template referencing neither would render a page with every
// dataset silently dropped, so their absence is a construction error.
var templateVariables = [...]string{"css_href", "tables"}

// Option configures the renderer before construction.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer template.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer template.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer produces the index page markup from loaded datasets.
type Renderer struct {
	templates template.TemplateRenderer
	policy    *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the page renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	templates := cfg.templateRenderer
	if templates == nil {
		if err := validatePageTemplate(cfg.templateFS); err != nil {
			return nil, err
		}
		engine, err := pongo2tpl.New(pongo2tpl.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("page: create template engine: %w", err)
		}
		templates = engine
	}

	return &Renderer{
		templates: templates,
		policy:    bluemonday.StrictPolicy(),
	}, nil
}

// validatePageTemplate checks that the resolved page template references
// every variable the renderer fills, failing with the name of the first
// missing placeholder.
func validatePageTemplate(fsys fs.FS) error {
	raw, err := fs.ReadFile(fsys, pageTemplate+".html")
	if err != nil {
		return fmt.Errorf("page: read template %q: %w", pageTemplate, err)
	}
	source := string(raw)
	for _, name := range templateVariables {
		if !strings.Contains(source, name) {
			return fmt.Errorf("page: template %q missing placeholder %q", pageTemplate, name)
		}
	}
	return nil
}

// Name identifies the renderer inside a registry.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the MIME type of the rendered output.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render fills the page template with one table section per dataset. Dataset
// and observable order is preserved exactly.
func (r *Renderer) Render(ctx context.Context, page render.Page, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	headers := options.TableHeaders
	if len(headers) == 0 {
		headers = defaultTableHeaders
	}

	sections := make([]string, 0, len(page.Datasets))
	for _, ds := range page.Datasets {
		sections = append(sections, r.renderSection(ds, headers))
	}

	rendered, err := r.templates.Render(pageTemplate, map[string]any{
		"css_href": page.StylesheetHref,
		"tables":   strings.Join(sections, "\n\n"),
	})
	if err != nil {
		return nil, fmt.Errorf("page: render template: %w", err)
	}
	return []byte(rendered), nil
}

// renderSection renders one dataset as a section containing a table.
func (r *Renderer) renderSection(ds dataset.Dataset, headers []string) string {
	indent := sectionIndent
	rowIndent := indent + "      "

	rows := make([]string, 0, len(ds.Observables))
	for _, observable := range ds.Observables {
		rows = append(rows, r.renderRow(observable, rowIndent))
	}

	headerCells := make([]string, 0, len(headers))
	for _, label := range headers {
		headerCells = append(headerCells, fmt.Sprintf("%s        <th>%s</th>", indent, r.policy.Sanitize(label)))
	}

	lines := []string{
		indent + `<section class="dataset">`,
		fmt.Sprintf("%s  <h2>%s</h2>", indent, r.policy.Sanitize(ds.Title)),
		indent + "  <table>",
		indent + "    <thead>",
		indent + "      <tr>",
		strings.Join(headerCells, "\n"),
		indent + "      </tr>",
		indent + "    </thead>",
		indent + "    <tbody>",
		strings.Join(rows, "\n"),
		indent + "    </tbody>",
		indent + "  </table>",
		indent + "</section>",
	}
	return strings.Join(lines, "\n")
}

// renderRow renders one observable as a table row. The first column carries
// the order of magnitude, the last the full scientific-notation value.
func (r *Renderer) renderRow(observable dataset.Observable, indent string) string {
	notation := sci.FromDecimal(observable.Value)
	unit := html.EscapeString(observable.Unit)
	value := fmt.Sprintf("%s x 10<sup>%d</sup> %s", notation.Mantissa, notation.Exponent, unit)
	return strings.Join([]string{
		indent + "<tr>",
		fmt.Sprintf(`%s  <td class="math">10<sup>%d</sup> %s</td>`, indent, notation.Exponent, unit),
		fmt.Sprintf("%s  <td>%s</td>", indent, r.policy.Sanitize(observable.Name)),
		fmt.Sprintf(`%s  <td class="math">%s</td>`, indent, value),
		indent + "</tr>",
	}, "\n")
}
