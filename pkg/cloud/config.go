package cloud

import (
	"fmt"
	"strings"
)

const (
	DefaultMinFontSize    = 12
	DefaultMaxFontSize    = 24
	DefaultFontUnit       = "px"
	DefaultContainerClass = "tags"
	DefaultTagClass       = "tag"
)

// Config controls sizing and output of a Cloud.
type Config struct {
	MinFontSize int    `json:"min_font_size" yaml:"min_font_size"`
	MaxFontSize int    `json:"max_font_size" yaml:"max_font_size"`
	FontUnit    string `json:"font_unit" yaml:"font_unit"`
	// AddSpace appends a single space after every tag element.
	AddSpace bool `json:"add_space" yaml:"add_space"`
	// Shuffle randomises tag order on every render.
	Shuffle        bool   `json:"shuffle" yaml:"shuffle"`
	ContainerClass string `json:"container_class" yaml:"container_class"`
	TagClass       string `json:"tag_class" yaml:"tag_class"`
}

// DefaultConfig returns sizes 12..24px, no spacing, shuffling on.
func DefaultConfig() Config {
	return Config{
		MinFontSize:    DefaultMinFontSize,
		MaxFontSize:    DefaultMaxFontSize,
		FontUnit:       DefaultFontUnit,
		AddSpace:       false,
		Shuffle:        true,
		ContainerClass: DefaultContainerClass,
		TagClass:       DefaultTagClass,
	}
}

// Validate checks the font range invariant.
func (c Config) Validate() error {
	if c.MaxFontSize < c.MinFontSize {
		return fmt.Errorf("%w: min %d, max %d", ErrInvalidFontRange, c.MinFontSize, c.MaxFontSize)
	}
	return nil
}

// normalized fills blank string fields with their defaults.
func (c Config) normalized() Config {
	c.FontUnit = strings.TrimSpace(c.FontUnit)
	if c.FontUnit == "" {
		c.FontUnit = DefaultFontUnit
	}
	c.ContainerClass = strings.TrimSpace(c.ContainerClass)
	if c.ContainerClass == "" {
		c.ContainerClass = DefaultContainerClass
	}
	c.TagClass = strings.TrimSpace(c.TagClass)
	if c.TagClass == "" {
		c.TagClass = DefaultTagClass
	}
	return c
}

func (c Config) pixelUnit() bool {
	return c.FontUnit == "px"
}
