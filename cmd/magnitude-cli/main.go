package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	magnitude "github.com/goliatone/go-magnitude"
	"github.com/goliatone/go-magnitude/internal/site"
	"github.com/goliatone/go-magnitude/pkg/dataset"
	"github.com/goliatone/go-magnitude/pkg/orchestrator"
)

// datasetFlags collects repeated --data path=unit pairs in order.
type datasetFlags []dataset.Config

func (f *datasetFlags) String() string {
	parts := make([]string, 0, len(*f))
	for _, cfg := range *f {
		parts = append(parts, cfg.Source.Location()+"="+cfg.TargetUnit)
	}
	return strings.Join(parts, ",")
}

func (f *datasetFlags) Set(raw string) error {
	path, unit, ok := strings.Cut(raw, "=")
	if !ok || strings.TrimSpace(path) == "" || strings.TrimSpace(unit) == "" {
		return fmt.Errorf("expected path=unit, got %q", raw)
	}
	*f = append(*f, dataset.Config{
		Source:     dataset.SourceFromFile(strings.TrimSpace(path)),
		TargetUnit: strings.TrimSpace(unit),
	})
	return nil
}

func main() {
	var data datasetFlags
	htmlPath := flag.String("html", site.DefaultHTMLFilename, "output HTML file path")
	cssPath := flag.String("css", site.DefaultCSSFilename, "output CSS file path")
	renderer := flag.String("renderer", "", "renderer to use (default: page)")
	watch := flag.Bool("watch", false, "rebuild when dataset files change")
	serve := flag.String("serve", "", "serve a preview of the generated site on this address (e.g. :8080)")
	force := flag.Bool("force", false, "overwrite existing output files without asking")
	flag.Var(&data, "data", "dataset source as path=unit (repeatable; default: embedded datasets)")
	flag.Parse()

	ctx := context.Background()

	configs := []dataset.Config(data)
	var options []orchestrator.Option
	if len(configs) == 0 {
		configs = magnitude.DefaultSources()
		options = append(options, orchestrator.WithFileSystem(magnitude.EmbeddedData()))
	}

	if !*force {
		if err := confirmOverwrite(*htmlPath, *cssPath); err != nil {
			log.Fatalf("Aborted: %v", err)
		}
	}

	builder := site.NewBuilder(orchestrator.New(options...), configs, *renderer)
	if err := builder.Build(ctx, *htmlPath, *cssPath); err != nil {
		log.Fatalf("Failed to build site: %v", err)
	}
	fmt.Printf("Site written to %s (styles: %s)\n", *htmlPath, *cssPath)

	if *watch {
		if len(data) == 0 {
			log.Fatalf("--watch needs on-disk datasets; pass at least one --data path=unit")
		}
		go watchLoop(ctx, builder, data, *htmlPath, *cssPath)
	}

	if *serve != "" {
		fmt.Printf("Serving preview on %s\n", *serve)
		if err := site.Serve(*serve, *htmlPath, *cssPath); err != nil {
			log.Fatalf("Preview server failed: %v", err)
		}
		return
	}

	if *watch {
		// Block on the watch loop alone.
		select {}
	}
}

func watchLoop(ctx context.Context, builder *site.Builder, data datasetFlags, htmlPath, cssPath string) {
	paths := make([]string, 0, len(data))
	for _, cfg := range data {
		paths = append(paths, cfg.Source.Location())
	}
	err := site.Watch(ctx, paths, func() {
		if err := builder.Build(ctx, htmlPath, cssPath); err != nil {
			log.Printf("Rebuild failed: %v", err)
			return
		}
		log.Printf("Rebuilt %s", htmlPath)
	})
	if err != nil {
		log.Fatalf("Watch failed: %v", err)
	}
}

// confirmOverwrite prompts before clobbering outputs that already exist.
// Silently proceeds when stdin is not a terminal-backed prompt target.
func confirmOverwrite(paths ...string) error {
	existing := make([]string, 0, len(paths))
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	ok := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Overwrite %s?", strings.Join(existing, ", ")),
		Default: true,
	}
	if err := survey.AskOne(prompt, &ok); err != nil {
		// Non-interactive runs (CI, pipes) cannot answer; treat as consent.
		return nil
	}
	if !ok {
		return fmt.Errorf("declined to overwrite %s", strings.Join(existing, ", "))
	}
	return nil
}
