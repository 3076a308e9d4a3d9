package testsupport

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tagcloud/pkg/cloud"
)

// Tags builds tags from label/count pairs, failing the test on invalid input.
func Tags(t *testing.T, pairs ...any) []cloud.Tag {
	t.Helper()

	if len(pairs)%2 != 0 {
		t.Fatalf("testsupport: tags need label/count pairs, got %d values", len(pairs))
	}
	out := make([]cloud.Tag, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		label, ok := pairs[i].(string)
		if !ok {
			t.Fatalf("testsupport: label at %d is %T, want string", i, pairs[i])
		}
		count, ok := pairs[i+1].(int)
		if !ok {
			t.Fatalf("testsupport: count at %d is %T, want int", i+1, pairs[i+1])
		}
		tag, err := cloud.NewTag(label, count)
		if err != nil {
			t.Fatalf("testsupport: new tag: %v", err)
		}
		out = append(out, tag)
	}
	return out
}

// IdentityShuffler leaves the order untouched while recording how many
// times it was asked to shuffle.
type IdentityShuffler struct {
	Calls int
}

func (s *IdentityShuffler) Shuffle(int, func(i, j int)) {
	s.Calls++
}

// ReverseShuffler reverses the order, giving tests a visible permutation.
type ReverseShuffler struct{}

func (ReverseShuffler) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file without its trailing line break.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return strings.TrimRight(string(MustReadGolden(t, path)), "\r\n")
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
