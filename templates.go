package magnitude

import (
	"io/fs"

	"github.com/goliatone/go-magnitude/pkg/renderers/page"
)

// EmbeddedTemplates exposes the built-in page templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return page.TemplatesFS()
}

// EmbeddedAssets exposes the built-in stylesheet bundle that accompanies the
// rendered page.
func EmbeddedAssets() fs.FS {
	return page.AssetsFS()
}
