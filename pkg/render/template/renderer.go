package template

import (
	"io"
)

// TemplateRenderer renders named templates. Globals are shared by every
// render and are expected to be set before the first one.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any, w io.Writer) error
	SetGlobals(data map[string]any)
}
