package magnitude

import (
	"embed"
	"io/fs"

	"github.com/goliatone/go-magnitude/pkg/dataset"
)

//go:embed data/*.yml
var embeddedData embed.FS

// EmbeddedData exposes the dataset YAML files shipped with the module so the
// CLI and tests can render the stock site without any files on disk.
func EmbeddedData() fs.FS {
	return embeddedData
}

// DefaultSources returns the stock dataset configuration: lengths in metres
// followed by times in seconds, both resolved against EmbeddedData(). Order
// is significant; it is the section order of the rendered page.
func DefaultSources() []dataset.Config {
	return []dataset.Config{
		{Source: dataset.SourceFromFS("data/lengths.yml"), TargetUnit: "m"},
		{Source: dataset.SourceFromFS("data/times.yml"), TargetUnit: "s"},
	}
}
