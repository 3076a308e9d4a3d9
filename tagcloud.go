// Package tagcloud renders HTML tag clouds. The heavy lifting lives in
// pkg/cloud; this package offers one-call helpers for the common cases.
package tagcloud

import (
	"fmt"
	"io/fs"

	"github.com/goliatone/go-tagcloud/pkg/cloud"
	"github.com/goliatone/go-tagcloud/pkg/config"
)

// Render builds a cloud from cfg and renders tags in one step.
func Render(cfg cloud.Config, tags []cloud.Tag, opts ...cloud.Option) (string, error) {
	c, err := cloud.New(cfg, opts...)
	if err != nil {
		return "", err
	}
	return c.Render(tags...)
}

// RenderFiles loads a configuration file and a tag file (YAML or JSON) and
// renders the resulting cloud. An empty configPath uses the defaults.
func RenderFiles(configPath, tagsPath string, opts ...cloud.Option) (string, error) {
	cfg := cloud.DefaultConfig()
	if configPath != "" {
		loaded, err := config.LoadFile(configPath)
		if err != nil {
			return "", err
		}
		cfg = loaded
	}

	tags, err := config.LoadTags(tagsPath)
	if err != nil {
		return "", err
	}

	out, err := Render(cfg, tags, opts...)
	if err != nil {
		return "", fmt.Errorf("tagcloud: render %s: %w", tagsPath, err)
	}
	return out, nil
}

// EmbeddedTemplates exposes the built-in cloud templates so callers can copy
// or extend them.
func EmbeddedTemplates() fs.FS {
	return cloud.TemplatesFS()
}
