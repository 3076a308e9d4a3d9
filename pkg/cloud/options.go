package cloud

import (
	"io/fs"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	rendertemplate "github.com/goliatone/go-tagcloud/pkg/render/template"
)

// Option configures a Cloud at construction time.
type Option func(*options)

type options struct {
	shuffler         Shuffler
	sanitizer        *bluemonday.Policy
	templateFS       fs.FS
	templateDir      string
	templateRenderer rendertemplate.TemplateRenderer
	classes          Classes
}

// WithShuffler replaces the random-order provider used when shuffling.
func WithShuffler(shuffler Shuffler) Option {
	return func(o *options) {
		if shuffler != nil {
			o.shuffler = shuffler
		}
	}
}

// WithSanitizer runs the rendered fragment through policy. See
// DefaultPolicy for a policy matching the built-in markup.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(o *options) {
		o.sanitizer = policy
	}
}

// WithTemplatesFS supplies an alternate template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(o *options) {
		o.templateFS = files
		o.templateDir = ""
	}
}

// WithTemplatesDir loads tag.tmpl and cloud.tmpl from a directory on disk
// instead of the embedded bundle.
func WithTemplatesDir(path string) Option {
	return func(o *options) {
		path = strings.TrimSpace(path)
		if path == "" {
			return
		}
		o.templateDir = path
		o.templateFS = nil
	}
}

// WithTemplateRenderer injects a custom template renderer. It must resolve
// the "tag" and "cloud" template names.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(o *options) {
		if renderer != nil {
			o.templateRenderer = renderer
		}
	}
}

// WithClasses overrides the container and tag CSS classes. Blank fields
// keep the configured value.
func WithClasses(classes Classes) Option {
	return func(o *options) {
		o.classes = classes
	}
}
