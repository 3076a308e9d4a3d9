package config

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tagcloud/pkg/cloud"
)

func TestMapProvider_Lookup(t *testing.T) {
	provider := MapProvider{
		"tagcloud": map[string]any{
			"fontSize": map[string]any{"max": 30},
		},
		"tagcloud.fontUnit": "rem",
	}

	if value, ok := provider.Lookup(KeyMaxFontSize); !ok || value != 30 {
		t.Fatalf("nested lookup: got %v, %v", value, ok)
	}
	if value, ok := provider.Lookup(KeyFontUnit); !ok || value != "rem" {
		t.Fatalf("literal lookup: got %v, %v", value, ok)
	}
	if _, ok := provider.Lookup("tagcloud.fontSize.max.extra"); ok {
		t.Fatalf("expected lookup through a scalar to fail")
	}
	if _, ok := MapProvider(nil).Lookup(KeyMinFontSize); ok {
		t.Fatalf("expected nil provider lookup to fail")
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		provider MapProvider
		want     cloud.Config
	}{
		{
			name:     "empty provider keeps defaults",
			provider: MapProvider{},
			want:     cloud.DefaultConfig(),
		},
		{
			name: "all keys",
			provider: MapProvider{
				KeyMinFontSize:    8,
				KeyMaxFontSize:    int64(40),
				KeyFontUnit:       " em ",
				KeyAddSpaces:      true,
				KeyShuffleTags:    false,
				KeyContainerClass: "cloud",
				KeyTagClass:       "cloud-tag",
			},
			want: cloud.Config{
				MinFontSize:    8,
				MaxFontSize:    40,
				FontUnit:       "em",
				AddSpace:       true,
				Shuffle:        false,
				ContainerClass: "cloud",
				TagClass:       "cloud-tag",
			},
		},
		{
			name: "zero sizes and non-bool flags are ignored",
			provider: MapProvider{
				KeyMinFontSize: 0,
				KeyMaxFontSize: "nope",
				KeyAddSpaces:   "true",
				KeyShuffleTags: 1,
				KeyFontUnit:    "",
			},
			want: cloud.DefaultConfig(),
		},
		{
			name: "out of range numbers are ignored",
			provider: MapProvider{
				KeyMinFontSize: uint64(math.MaxUint64),
				KeyMaxFontSize: 1e300,
			},
			want: cloud.DefaultConfig(),
		},
		{
			name: "numeric strings and floats convert",
			provider: MapProvider{
				KeyMinFontSize: "14",
				KeyMaxFontSize: 28.9,
			},
			want: func() cloud.Config {
				cfg := cloud.DefaultConfig()
				cfg.MinFontSize = 14
				cfg.MaxFontSize = 28
				return cfg
			}(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FromProvider(tc.provider)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApply_NilProvider(t *testing.T) {
	base := cloud.DefaultConfig()
	base.AddSpace = true
	if got := Apply(base, nil); got != base {
		t.Fatalf("expected base config unchanged, got %+v", got)
	}
}
