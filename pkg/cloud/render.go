package cloud

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Render replaces the stored tags when any are given, then renders every
// stored tag inside the container element. Order is shuffled when the
// configuration asks for it; the stored order is left untouched. An empty
// cloud renders an empty container.
func (c *Cloud) Render(tags ...Tag) (string, error) {
	if len(tags) > 0 {
		c.SetTags(tags)
	}

	ordered := c.Tags()
	if c.cfg.Shuffle && len(ordered) > 1 {
		c.shuffler.Shuffle(len(ordered), func(i, j int) {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		})
	}

	var body strings.Builder
	if len(ordered) > 0 {
		highest, err := c.MaximumCount()
		if err != nil {
			return "", err
		}
		for _, tag := range ordered {
			element, err := c.renderTag(tag, highest)
			if err != nil {
				return "", err
			}
			body.WriteString(element)
		}
	}

	out, err := c.templates.RenderTemplate(cloudTemplate, map[string]any{
		"class": c.cfg.ContainerClass,
		"body":  body.String(),
	})
	if err != nil {
		return "", fmt.Errorf("cloud: render container: %w", err)
	}
	out = trimTemplateOutput(out)

	if c.sanitizer != nil {
		out = c.sanitizer.Sanitize(out)
	}
	return out, nil
}

// RenderTo writes the output of Render to w.
func (c *Cloud) RenderTo(w io.Writer, tags ...Tag) error {
	out, err := c.Render(tags...)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("cloud: write output: %w", err)
	}
	return nil
}

// RenderTag renders a single tag element sized against the stored tags: an
// anchor when the tag has a URL, a span otherwise. The label is escaped in
// both the text and the title attribute.
func (c *Cloud) RenderTag(tag Tag) (string, error) {
	highest, err := c.MaximumCount()
	if err != nil {
		return "", err
	}
	return c.renderTag(tag, highest)
}

func (c *Cloud) renderTag(tag Tag, highest int) (string, error) {
	size := c.fontSize(tag, highest)

	out, err := c.templates.RenderTemplate(tagTemplate, map[string]any{
		"label": tag.label,
		"url":   tag.url,
		"class": c.cfg.TagClass,
		"size":  formatSize(size),
		"unit":  c.cfg.FontUnit,
	})
	if err != nil {
		return "", fmt.Errorf("cloud: render tag %q: %w", tag.label, err)
	}
	out = trimTemplateOutput(out)

	if c.cfg.AddSpace {
		out += " "
	}
	return out, nil
}

func formatSize(size float64) string {
	return strconv.FormatFloat(size, 'f', -1, 64)
}

// trimTemplateOutput drops the line break editors leave at the end of
// template files.
func trimTemplateOutput(out string) string {
	return strings.TrimRight(out, "\r\n")
}
