package cloud

import "errors"

var (
	// ErrEmptyCloud is returned by aggregate and sizing operations when the
	// cloud holds no tags.
	ErrEmptyCloud = errors.New("cloud: tag cloud is empty")
	// ErrInvalidFontRange reports a configuration whose maximum font size is
	// below its minimum.
	ErrInvalidFontRange = errors.New("cloud: max font size is below min font size")
	// ErrInvalidTag reports a tag with a blank label or a negative count.
	ErrInvalidTag = errors.New("cloud: invalid tag")
)
