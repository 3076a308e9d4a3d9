package template

import (
	"io"
)

// TemplateRenderer is the seam the cloud renderer draws its markup through.
// The default implementation is the pongo2-backed engine in the gotemplate
// subpackage; callers can inject their own to change the markup entirely.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
