package template

import (
	"io"
)

// TemplateRenderer is the seam page renderers rely on. Render resolves a
// named template from the engine's bundle; RenderString parses and executes
// inline template content. Both return the rendered text and optionally copy
// it to the supplied writers.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
