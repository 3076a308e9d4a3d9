package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-tagcloud/pkg/cloud"
)

// TagRecord is the on-disk form of a tag. Either "tag" or "label" names it.
type TagRecord struct {
	Tag   string `yaml:"tag" json:"tag,omitempty"`
	Label string `yaml:"label" json:"label,omitempty"`
	Count int    `yaml:"count" json:"count"`
	URL   string `yaml:"url" json:"url,omitempty"`
}

type tagDocument struct {
	Tags []TagRecord `yaml:"tags"`
}

// LoadFile reads a YAML or JSON configuration file and applies it over
// cloud.DefaultConfig.
func LoadFile(path string) (cloud.Config, error) {
	provider, err := LoadProvider(path)
	if err != nil {
		return cloud.Config{}, err
	}
	return FromProvider(provider), nil
}

// LoadProvider reads a YAML or JSON file into a MapProvider.
func LoadProvider(path string) (MapProvider, error) {
	data, err := readSource(path)
	if err != nil {
		return nil, err
	}
	provider, err := ParseProvider(data)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return provider, nil
}

// ParseProvider decodes YAML (or JSON) into a MapProvider. Empty input
// yields an empty provider.
func ParseProvider(data []byte) (MapProvider, error) {
	out := MapProvider{}
	if len(strings.TrimSpace(string(data))) == 0 {
		return out, nil
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadTags reads a YAML or JSON tag file. See ParseTags for the layout.
func LoadTags(path string) ([]cloud.Tag, error) {
	data, err := readSource(path)
	if err != nil {
		return nil, err
	}
	tags, err := ParseTags(data)
	if err != nil {
		return nil, fmt.Errorf("config: parse tags %s: %w", path, err)
	}
	return tags, nil
}

// ParseTags decodes either a top-level list of tag records or a mapping
// with a "tags" list.
func ParseTags(data []byte) ([]cloud.Tag, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, nil
	}

	node := root.Content[0]
	var records []TagRecord
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&records); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		var doc tagDocument
		if err := node.Decode(&doc); err != nil {
			return nil, err
		}
		records = doc.Tags
	default:
		return nil, fmt.Errorf("expected a list of tags or a mapping with a tags key (line %d)", node.Line)
	}

	tags := make([]cloud.Tag, 0, len(records))
	for i, record := range records {
		tag, err := record.toTag()
		if err != nil {
			return nil, fmt.Errorf("tag %d: %w", i, err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (r TagRecord) toTag() (cloud.Tag, error) {
	label := r.Tag
	if strings.TrimSpace(label) == "" {
		label = r.Label
	}
	return cloud.NewTag(label, r.Count, cloud.WithURL(r.URL))
}

func readSource(path string) ([]byte, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("config: path is required")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("config: unsupported file type %q", filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return data, nil
}
