package cloud

import (
	"fmt"
	"strings"
)

// Tag is a labelled item with an occurrence count and an optional link.
// Tags are immutable; build them with NewTag.
type Tag struct {
	label string
	count int
	url   string
}

// TagOption customises a Tag during construction.
type TagOption func(*Tag)

// WithURL links the tag. Tags with a URL render as anchors.
func WithURL(url string) TagOption {
	return func(t *Tag) {
		t.url = strings.TrimSpace(url)
	}
}

// NewTag builds a Tag. Labels must not be blank and counts must not be
// negative.
func NewTag(label string, count int, opts ...TagOption) (Tag, error) {
	if strings.TrimSpace(label) == "" {
		return Tag{}, fmt.Errorf("%w: label is required", ErrInvalidTag)
	}
	if count < 0 {
		return Tag{}, fmt.Errorf("%w: count for %q is negative (%d)", ErrInvalidTag, label, count)
	}

	tag := Tag{label: label, count: count}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&tag)
	}
	return tag, nil
}

// MustNewTag panics when NewTag fails. Useful for literals and tests.
func MustNewTag(label string, count int, opts ...TagOption) Tag {
	tag, err := NewTag(label, count, opts...)
	if err != nil {
		panic(err)
	}
	return tag
}

func (t Tag) Label() string { return t.label }
func (t Tag) Count() int    { return t.count }
func (t Tag) URL() string   { return t.url }

// HasURL reports whether the tag renders as a link.
func (t Tag) HasURL() bool { return t.url != "" }

func (t Tag) String() string {
	return fmt.Sprintf("%s (%d)", t.label, t.count)
}
