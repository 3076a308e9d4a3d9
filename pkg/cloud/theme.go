package cloud

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Theme tokens read by ThemeClasses.
const (
	TokenContainerClass = "tagcloud.container-class"
	TokenTagClass       = "tagcloud.tag-class"
)

// Classes names the CSS classes applied to the container and tag elements.
type Classes struct {
	Container string
	Tag       string
}

// ThemeClasses resolves the cloud classes from a go-theme selection.
// Variant tokens override the manifest's base tokens. Missing tokens leave
// the corresponding field blank so WithClasses keeps the configured class.
func ThemeClasses(selector theme.ThemeSelector, name, variant string) (Classes, error) {
	if selector == nil {
		return Classes{}, nil
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return Classes{}, fmt.Errorf("cloud: select theme %q/%q: %w", name, variant, err)
	}
	if selection == nil || selection.Manifest == nil {
		return Classes{}, nil
	}

	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if v, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range v.Tokens {
			tokens[key] = value
		}
	}

	return Classes{
		Container: strings.TrimSpace(tokens[TokenContainerClass]),
		Tag:       strings.TrimSpace(tokens[TokenTagClass]),
	}, nil
}
