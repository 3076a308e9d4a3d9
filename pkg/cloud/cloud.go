package cloud

import (
	"fmt"
	"math"
	"strconv"

	"github.com/microcosm-cc/bluemonday"

	rendertemplate "github.com/goliatone/go-tagcloud/pkg/render/template"
	"github.com/goliatone/go-tagcloud/pkg/render/template/gotemplate"
)

// Cloud holds a set of tags and the configuration used to size and render
// them. A Cloud is not safe for concurrent mutation.
type Cloud struct {
	cfg       Config
	tags      []Tag
	shuffler  Shuffler
	sanitizer *bluemonday.Policy
	templates rendertemplate.TemplateRenderer
}

// Stats summarises the counts of the stored tags.
type Stats struct {
	Len    int
	Min    int
	Max    int
	Sum    int
	Offset int
}

// New validates cfg and builds a Cloud. Blank unit and class fields fall
// back to their defaults.
func New(cfg Config, opts ...Option) (*Cloud, error) {
	o := options{templateFS: TemplatesFS()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}

	if o.classes.Container != "" {
		cfg.ContainerClass = o.classes.Container
	}
	if o.classes.Tag != "" {
		cfg.TagClass = o.classes.Tag
	}
	cfg = cfg.normalized()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if o.shuffler == nil {
		o.shuffler = DefaultShuffler()
	}

	source := gotemplate.WithFS(o.templateFS)
	switch {
	case o.templateDir != "":
		source = gotemplate.WithBaseDir(o.templateDir)
	case o.templateFS == nil:
		source = gotemplate.WithFS(TemplatesFS())
	}

	renderer := o.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(source, gotemplate.WithExtension(".tmpl"))
		if err != nil {
			return nil, fmt.Errorf("cloud: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Cloud{
		cfg:       cfg,
		shuffler:  o.shuffler,
		sanitizer: o.sanitizer,
		templates: renderer,
	}, nil
}

// Config returns the effective configuration.
func (c *Cloud) Config() Config {
	return c.cfg
}

// SetTags replaces the stored tags.
func (c *Cloud) SetTags(tags []Tag) {
	c.tags = append([]Tag(nil), tags...)
}

// Tags returns a copy of the stored tags in insertion order.
func (c *Cloud) Tags() []Tag {
	return append([]Tag(nil), c.tags...)
}

// Len reports the number of stored tags.
func (c *Cloud) Len() int {
	return len(c.tags)
}

func (c *Cloud) MinimumCount() (int, error) {
	if len(c.tags) == 0 {
		return 0, ErrEmptyCloud
	}
	lowest := c.tags[0].count
	for _, tag := range c.tags[1:] {
		lowest = min(lowest, tag.count)
	}
	return lowest, nil
}

func (c *Cloud) MaximumCount() (int, error) {
	if len(c.tags) == 0 {
		return 0, ErrEmptyCloud
	}
	highest := c.tags[0].count
	for _, tag := range c.tags[1:] {
		highest = max(highest, tag.count)
	}
	return highest, nil
}

func (c *Cloud) SumCount() (int, error) {
	if len(c.tags) == 0 {
		return 0, ErrEmptyCloud
	}
	total := 0
	for _, tag := range c.tags {
		total += tag.count
	}
	return total, nil
}

// Offset is the spread between the highest and lowest count, never below 1.
func (c *Cloud) Offset() (int, error) {
	highest, err := c.MaximumCount()
	if err != nil {
		return 0, err
	}
	lowest, err := c.MinimumCount()
	if err != nil {
		return 0, err
	}
	return max(highest-lowest, 1), nil
}

// Stats computes all aggregates in one call.
func (c *Cloud) Stats() (Stats, error) {
	if len(c.tags) == 0 {
		return Stats{}, ErrEmptyCloud
	}
	lowest, _ := c.MinimumCount()
	highest, _ := c.MaximumCount()
	total, _ := c.SumCount()
	offset, _ := c.Offset()
	return Stats{
		Len:    len(c.tags),
		Min:    lowest,
		Max:    highest,
		Sum:    total,
		Offset: offset,
	}, nil
}

// FontSize scales tag.Count() against the highest stored count onto the
// configured font range. Pixel sizes are floored; other units are rounded
// to two decimals.
func (c *Cloud) FontSize(tag Tag) (float64, error) {
	highest, err := c.MaximumCount()
	if err != nil {
		return 0, err
	}
	return c.fontSize(tag, highest), nil
}

func (c *Cloud) fontSize(tag Tag, highest int) float64 {
	lowSize := float64(c.cfg.MinFontSize)
	if highest <= 0 {
		return lowSize
	}
	span := float64(c.cfg.MaxFontSize - c.cfg.MinFontSize)
	size := float64(tag.count)/float64(highest)*span + lowSize
	if c.cfg.pixelUnit() {
		return math.Floor(size)
	}
	return roundHundredths(size)
}

// roundHundredths rounds half away from zero at two decimals. The scaled
// value is first cut to 15 significant digits so inputs such as 1.005,
// stored as 1.00499..., still round up.
func roundHundredths(size float64) float64 {
	scaled, err := strconv.ParseFloat(strconv.FormatFloat(size*100, 'g', 15, 64), 64)
	if err != nil {
		scaled = size * 100
	}
	return math.Round(scaled) / 100
}
