// Package magnitude renders static HTML pages presenting physical
// observables ("orders of magnitude" of length, time, and so on) as
// scientific-notation tables, sourced from human-edited YAML dataset files.
package magnitude

import (
	"context"

	"github.com/goliatone/go-magnitude/pkg/dataset"
	"github.com/goliatone/go-magnitude/pkg/orchestrator"
	"github.com/goliatone/go-magnitude/pkg/render"
	"github.com/goliatone/go-magnitude/pkg/units"
)

// Observable aliases the dataset record type exported via the root package
// for convenience.
type Observable = dataset.Observable

// Dataset is an ordered collection of observables.
type Dataset = dataset.Dataset

// DatasetConfig pairs a dataset source with its canonical target unit.
type DatasetConfig = dataset.Config

// RenderOptions carries per-request rendering overrides.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module so callers can wire the pipeline with a single import.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GeneratePage loads the configured datasets and renders them with the named
// renderer. It is the simplest entry point for callers that just want the
// page bytes.
func GeneratePage(ctx context.Context, configs []DatasetConfig, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Datasets: configs,
		Renderer: rendererName,
	})
}

// WithConverter registers an alternate unit conversion capability that can
// be passed to GeneratePage alongside other orchestrator options.
func WithConverter(converter units.Converter) orchestrator.Option {
	return orchestrator.WithConverter(converter)
}

// WithDefaultRenderer overrides the renderer used when no name is supplied.
func WithDefaultRenderer(name string) orchestrator.Option {
	return orchestrator.WithDefaultRenderer(name)
}
