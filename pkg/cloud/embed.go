package cloud

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

const (
	tagTemplate   = "tag"
	cloudTemplate = "cloud"
)

// TemplatesFS exposes the built-in tag and container templates. Replacement
// bundles passed to WithTemplatesFS must provide tag.tmpl and cloud.tmpl.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
