package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-magnitude/pkg/sci"
	"github.com/goliatone/go-magnitude/pkg/units"
)

// requiredFields lists the mandatory keys of every observable mapping.
var requiredFields = [...]string{"name", "value", "unit"}

// Loader validates raw dataset documents into Dataset values, converting
// every observable to the dataset target unit. Loading is fail-fast: the
// first invalid record aborts the load and no partial Dataset is returned.
type Loader struct {
	converter units.Converter
	fs        fs.FS
}

// Option customises the loader during construction.
type Option func(*Loader)

// WithConverter injects the unit conversion capability. Defaults to the
// built-in registry.
func WithConverter(converter units.Converter) Option {
	return func(l *Loader) {
		if converter != nil {
			l.converter = converter
		}
	}
}

// WithFileSystem supplies the fs.FS used to resolve SourceKindFS sources.
func WithFileSystem(fsys fs.FS) Option {
	return func(l *Loader) {
		l.fs = fsys
	}
}

// NewLoader constructs a Loader applying any provided options.
func NewLoader(options ...Option) *Loader {
	l := &Loader{converter: units.NewRegistry()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// LoadConfig reads the configured source and loads it as a dataset.
func (l *Loader) LoadConfig(ctx context.Context, cfg Config) (Dataset, error) {
	if err := ctx.Err(); err != nil {
		return Dataset{}, err
	}
	if cfg.Source == nil {
		return Dataset{}, errors.New("dataset: source is required")
	}

	var (
		data []byte
		err  error
	)
	switch cfg.Source.Kind() {
	case SourceKindFile:
		data, err = os.ReadFile(cfg.Source.Location())
	case SourceKindFS:
		if l.fs == nil {
			return Dataset{}, errors.New("dataset: fs source requires a file system")
		}
		data, err = fs.ReadFile(l.fs, cfg.Source.Location())
	default:
		return Dataset{}, fmt.Errorf("dataset: unsupported source kind %q", cfg.Source.Kind())
	}
	if err != nil {
		return Dataset{}, fmt.Errorf("dataset: read %s: %w", cfg.Source.Location(), err)
	}

	doc, err := NewDocument(cfg.Source, data)
	if err != nil {
		return Dataset{}, err
	}
	return l.Load(doc, cfg.TargetUnit)
}

// Load decodes the document payload as YAML and parses it into a Dataset.
func (l *Loader) Load(doc Document, targetUnit string) (Dataset, error) {
	var raw any
	if err := yaml.Unmarshal(doc.Raw(), &raw); err != nil {
		return Dataset{}, fmt.Errorf("dataset: parse %s: %w", doc.Location(), err)
	}
	return l.Parse(raw, targetUnit)
}

// Parse validates an already-decoded YAML document and converts every
// observable to targetUnit. Record order in the result mirrors input order.
func (l *Loader) Parse(raw any, targetUnit string) (Dataset, error) {
	mapping, ok := raw.(map[string]any)
	if !ok {
		return Dataset{}, &StructuralError{Index: noRecord, Detail: "top-level document must be a mapping"}
	}

	rawTitle, ok := mapping["title"]
	if !ok {
		return Dataset{}, &MissingFieldError{Index: noRecord, Field: "title"}
	}
	title, ok := rawTitle.(string)
	if !ok {
		return Dataset{}, &TypeMismatchError{Index: noRecord, Field: "title", Expected: "string", Value: rawTitle}
	}
	if strings.TrimSpace(title) == "" {
		return Dataset{}, &TypeMismatchError{Index: noRecord, Field: "title", Expected: "non-empty string", Value: rawTitle}
	}

	rawItems, ok := mapping["observables"]
	if !ok {
		return Dataset{}, &MissingFieldError{Index: noRecord, Field: "observables"}
	}
	items, ok := rawItems.([]any)
	if !ok {
		return Dataset{}, &StructuralError{Index: noRecord, Detail: "'observables' must be a list"}
	}

	observables := make([]Observable, 0, len(items))
	for index, item := range items {
		observable, err := l.parseObservable(item, index, targetUnit)
		if err != nil {
			return Dataset{}, err
		}
		observables = append(observables, observable)
	}

	return Dataset{Title: title, Observables: observables}, nil
}

func (l *Loader) parseObservable(item any, index int, targetUnit string) (Observable, error) {
	record, ok := item.(map[string]any)
	if !ok {
		return Observable{}, &StructuralError{Index: index, Detail: "must be a mapping"}
	}
	for _, field := range requiredFields {
		if _, present := record[field]; !present {
			return Observable{}, &MissingFieldError{Index: index, Field: field}
		}
	}

	name, ok := record["name"].(string)
	if !ok {
		return Observable{}, &TypeMismatchError{Index: index, Field: "name", Expected: "string", Value: record["name"]}
	}
	if strings.TrimSpace(name) == "" {
		return Observable{}, &TypeMismatchError{Index: index, Field: "name", Expected: "non-empty string", Value: record["name"]}
	}
	unit, ok := record["unit"].(string)
	if !ok {
		return Observable{}, &TypeMismatchError{Index: index, Field: "unit", Expected: "string", Value: record["unit"]}
	}
	value, err := parseDecimal(record["value"], index)
	if err != nil {
		return Observable{}, err
	}

	converted, err := l.converter.Convert(value, unit, targetUnit)
	if err != nil {
		return Observable{}, &RecordError{Index: index, Field: "unit", Err: err}
	}

	return Observable{Name: name, Value: converted, Unit: targetUnit}, nil
}

// parseDecimal builds the exact decimal magnitude of a record. Construction
// always goes through a string intermediate so inputs like 0.1 keep their
// decimal meaning. Booleans are rejected even though YAML treats them as
// scalars that could coerce numerically.
func parseDecimal(value any, index int) (decimal.Decimal, error) {
	mismatch := func() error {
		return &TypeMismatchError{Index: index, Field: "value", Expected: "number", Value: value}
	}

	switch v := value.(type) {
	case bool:
		return decimal.Decimal{}, mismatch()
	case int:
		return decimal.NewFromString(strconv.Itoa(v))
	case int64:
		return decimal.NewFromString(strconv.FormatInt(v, 10))
	case uint64:
		return decimal.NewFromString(strconv.FormatUint(v, 10))
	case float64:
		parsed, err := sci.DecimalFromFloat(v)
		if err != nil {
			var formatErr *sci.FormatError
			if errors.As(err, &formatErr) {
				return decimal.Decimal{}, &RecordError{Index: index, Field: "value", Err: err}
			}
			return decimal.Decimal{}, mismatch()
		}
		return parsed, nil
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}, mismatch()
		}
		return parsed, nil
	default:
		return decimal.Decimal{}, mismatch()
	}
}
