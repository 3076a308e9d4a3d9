package tagcloud

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-tagcloud/pkg/cloud"
)

func TestRenderFiles(t *testing.T) {
	out, err := RenderFiles(
		filepath.Join("testdata", "cloud.yaml"),
		filepath.Join("testdata", "tags.yaml"),
	)
	if err != nil {
		t.Fatalf("render files: %v", err)
	}

	want := `<div class="tags">` +
		`<a href="/tags/go" class="tag" title="go" style="font-size: 24px">go</a> ` +
		`<span class="tag" title="zig" style="font-size: 18px">zig</span> ` +
		`</div>`
	if out != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, out)
	}
}

func TestRenderFiles_MissingTags(t *testing.T) {
	if _, err := RenderFiles("", filepath.Join("testdata", "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing tag file")
	}
}

func TestRender_InvalidConfig(t *testing.T) {
	cfg := cloud.DefaultConfig()
	cfg.MaxFontSize = 1
	if _, err := Render(cfg, nil); err == nil {
		t.Fatalf("expected invalid font range error")
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	for _, name := range []string{"tag.tmpl", "cloud.tmpl"} {
		if _, err := fs.Stat(EmbeddedTemplates(), name); err != nil {
			t.Fatalf("expected embedded template %s: %v", name, err)
		}
	}
}
