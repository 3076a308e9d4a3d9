package cloud_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-tagcloud/pkg/cloud"
	"github.com/goliatone/go-tagcloud/pkg/testsupport"
)

func newCloud(t *testing.T, cfg cloud.Config, opts ...cloud.Option) *cloud.Cloud {
	t.Helper()

	c, err := cloud.New(cfg, opts...)
	if err != nil {
		t.Fatalf("new cloud: %v", err)
	}
	return c
}

func TestCloud_Aggregates(t *testing.T) {
	c := newCloud(t, cloud.DefaultConfig())
	c.SetTags(testsupport.Tags(t, "a", 1, "b", 5, "c", 10))

	stats, err := c.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	want := cloud.Stats{Len: 3, Min: 1, Max: 10, Sum: 16, Offset: 9}
	if diff := testsupport.CompareGolden(want, stats); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}

	if got, _ := c.MinimumCount(); got != 1 {
		t.Fatalf("min: want 1, got %d", got)
	}
	if got, _ := c.MaximumCount(); got != 10 {
		t.Fatalf("max: want 10, got %d", got)
	}
	if got, _ := c.SumCount(); got != 16 {
		t.Fatalf("sum: want 16, got %d", got)
	}
	if got, _ := c.Offset(); got != 9 {
		t.Fatalf("offset: want 9, got %d", got)
	}
}

func TestCloud_OffsetFloorsAtOne(t *testing.T) {
	c := newCloud(t, cloud.DefaultConfig())
	c.SetTags(testsupport.Tags(t, "a", 4, "b", 4))

	offset, err := c.Offset()
	if err != nil {
		t.Fatalf("offset: %v", err)
	}
	if offset != 1 {
		t.Fatalf("offset: want 1, got %d", offset)
	}
}

func TestCloud_EmptyCloudErrors(t *testing.T) {
	c := newCloud(t, cloud.DefaultConfig())
	tag := cloud.MustNewTag("lonely", 3)

	checks := map[string]func() error{
		"min":    func() error { _, err := c.MinimumCount(); return err },
		"max":    func() error { _, err := c.MaximumCount(); return err },
		"sum":    func() error { _, err := c.SumCount(); return err },
		"offset": func() error { _, err := c.Offset(); return err },
		"stats":  func() error { _, err := c.Stats(); return err },
		"size":   func() error { _, err := c.FontSize(tag); return err },
		"tag":    func() error { _, err := c.RenderTag(tag); return err },
	}

	for name, check := range checks {
		t.Run(name, func(t *testing.T) {
			if err := check(); !errors.Is(err, cloud.ErrEmptyCloud) {
				t.Fatalf("expected ErrEmptyCloud, got %v", err)
			}
		})
	}
}

func TestCloud_FontSize(t *testing.T) {
	tests := []struct {
		name  string
		unit  string
		min   int
		max   int
		count int
		want  float64
	}{
		{name: "max count hits max size", unit: "px", min: 12, max: 24, count: 10, want: 24},
		{name: "zero count hits min size", unit: "px", min: 12, max: 24, count: 0, want: 12},
		{name: "pixels are floored", unit: "px", min: 12, max: 24, count: 1, want: 13},
		{name: "midpoint", unit: "px", min: 12, max: 24, count: 5, want: 18},
		{name: "other units round to two decimals", unit: "em", min: 1, max: 2, count: 3, want: 1.3},
		{name: "rem rounding", unit: "rem", min: 1, max: 3, count: 1, want: 1.2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := cloud.DefaultConfig()
			cfg.FontUnit = tc.unit
			cfg.MinFontSize = tc.min
			cfg.MaxFontSize = tc.max

			c := newCloud(t, cfg)
			c.SetTags(testsupport.Tags(t, "zero", 0, "top", 10))

			got, err := c.FontSize(cloud.MustNewTag("probe", tc.count))
			if err != nil {
				t.Fatalf("font size: %v", err)
			}
			if got != tc.want {
				t.Fatalf("font size: want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCloud_FontSizeRoundsThirds(t *testing.T) {
	cfg := cloud.DefaultConfig()
	cfg.FontUnit = "em"
	cfg.MinFontSize = 1
	cfg.MaxFontSize = 2

	c := newCloud(t, cfg)
	c.SetTags(testsupport.Tags(t, "a", 1, "b", 3))

	got, err := c.FontSize(cloud.MustNewTag("a", 1))
	if err != nil {
		t.Fatalf("font size: %v", err)
	}
	if got != 1.33 {
		t.Fatalf("font size: want 1.33, got %v", got)
	}
}

func TestCloud_FontSizeRoundsHalfUp(t *testing.T) {
	cfg := cloud.DefaultConfig()
	cfg.FontUnit = "em"
	cfg.MinFontSize = 1
	cfg.MaxFontSize = 2

	c := newCloud(t, cfg)
	c.SetTags(testsupport.Tags(t, "rare", 1, "common", 200))

	tests := []struct {
		count int
		want  float64
	}{
		{count: 1, want: 1.01},
		{count: 3, want: 1.02},
		{count: 200, want: 2},
	}
	for _, tc := range tests {
		got, err := c.FontSize(cloud.MustNewTag("probe", tc.count))
		if err != nil {
			t.Fatalf("font size: %v", err)
		}
		if got != tc.want {
			t.Fatalf("count %d: want %v, got %v", tc.count, tc.want, got)
		}
	}
}

func TestCloud_FontSizeAllZeroCounts(t *testing.T) {
	c := newCloud(t, cloud.DefaultConfig())
	c.SetTags(testsupport.Tags(t, "a", 0, "b", 0))

	got, err := c.FontSize(cloud.MustNewTag("a", 0))
	if err != nil {
		t.Fatalf("font size: %v", err)
	}
	if got != cloud.DefaultMinFontSize {
		t.Fatalf("font size: want %d, got %v", cloud.DefaultMinFontSize, got)
	}
}

func TestNew_RejectsInvertedFontRange(t *testing.T) {
	cfg := cloud.DefaultConfig()
	cfg.MinFontSize = 30
	cfg.MaxFontSize = 10

	if _, err := cloud.New(cfg); !errors.Is(err, cloud.ErrInvalidFontRange) {
		t.Fatalf("expected ErrInvalidFontRange, got %v", err)
	}
}

func TestNew_FillsBlankDefaults(t *testing.T) {
	c := newCloud(t, cloud.Config{MinFontSize: 10, MaxFontSize: 20})

	cfg := c.Config()
	if cfg.FontUnit != cloud.DefaultFontUnit {
		t.Fatalf("font unit: want %q, got %q", cloud.DefaultFontUnit, cfg.FontUnit)
	}
	if cfg.ContainerClass != cloud.DefaultContainerClass || cfg.TagClass != cloud.DefaultTagClass {
		t.Fatalf("classes not defaulted: %+v", cfg)
	}
}

func TestCloud_SetTagsCopiesInput(t *testing.T) {
	c := newCloud(t, cloud.DefaultConfig())
	tags := testsupport.Tags(t, "a", 1, "b", 2)
	c.SetTags(tags)

	tags[0] = cloud.MustNewTag("mutated", 99)

	stored := c.Tags()
	if stored[0].Label() != "a" {
		t.Fatalf("stored tags aliased caller slice: %v", stored)
	}
	if c.Len() != 2 {
		t.Fatalf("len: want 2, got %d", c.Len())
	}
}
