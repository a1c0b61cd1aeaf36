// Package orchestrator coordinates the full pipeline from dataset YAML
// sources to the rendered index page.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-magnitude/pkg/dataset"
	"github.com/goliatone/go-magnitude/pkg/render"
	"github.com/goliatone/go-magnitude/pkg/renderers/page"
	"github.com/goliatone/go-magnitude/pkg/units"
)

const defaultRendererName = page.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom dataset loader.
func WithLoader(loader *dataset.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithConverter injects the unit conversion capability used when the
// orchestrator builds its own loader.
func WithConverter(converter units.Converter) Option {
	return func(o *Orchestrator) {
		o.converter = converter
	}
}

// WithFileSystem supplies the fs.FS used to resolve fs-backed dataset
// sources when the orchestrator builds its own loader.
func WithFileSystem(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.fsys = fsys
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// Request describes one page generation: the ordered dataset sources with
// their target units, the renderer to use, and the stylesheet href the page
// should link.
type Request struct {
	Datasets       []dataset.Config
	Renderer       string
	StylesheetHref string
	Options        render.RenderOptions
}

// Orchestrator coordinates loading and rendering. It applies sensible
// defaults (page renderer, built-in unit registry) while remaining open to
// dependency injection for advanced callers.
type Orchestrator struct {
	loader          *dataset.Loader
	converter       units.Converter
	fsys            fs.FS
	registry        *render.Registry
	defaultRenderer string
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}
	o.defaultsApplied = true

	if o.loader == nil {
		var loaderOptions []dataset.Option
		if o.converter != nil {
			loaderOptions = append(loaderOptions, dataset.WithConverter(o.converter))
		}
		if o.fsys != nil {
			loaderOptions = append(loaderOptions, dataset.WithFileSystem(o.fsys))
		}
		o.loader = dataset.NewLoader(loaderOptions...)
	}

	if o.registry == nil {
		o.registry = render.NewRegistry()
	}
	if !o.registry.Has(page.Name) {
		renderer, err := page.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: create page renderer: %w", err)
			return
		}
		o.registry.MustRegister(renderer)
	}
}

// LoadDatasets loads every configured dataset in order, failing fast on the
// first invalid source or record.
func (o *Orchestrator) LoadDatasets(ctx context.Context, configs []dataset.Config) ([]dataset.Dataset, error) {
	if o.initialiseErr != nil {
		return nil, o.initialiseErr
	}

	datasets := make([]dataset.Dataset, 0, len(configs))
	for _, cfg := range configs {
		ds, err := o.loader.LoadConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, ds)
	}
	return datasets, nil
}

// Generate loads the requested datasets and renders them into page bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if o.initialiseErr != nil {
		return nil, o.initialiseErr
	}
	if len(req.Datasets) == 0 {
		return nil, errors.New("orchestrator: request needs at least one dataset")
	}

	datasets, err := o.LoadDatasets(ctx, req.Datasets)
	if err != nil {
		return nil, err
	}

	name := req.Renderer
	if name == "" {
		name = o.defaultRenderer
	}
	renderer, err := o.registry.Get(name)
	if err != nil {
		return nil, err
	}

	return renderer.Render(ctx, render.Page{
		Datasets:       datasets,
		StylesheetHref: req.StylesheetHref,
	}, req.Options)
}
