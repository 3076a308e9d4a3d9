// Package cloud renders tag clouds: each tag's occurrence count is mapped
// onto a font size between a configured minimum and maximum, and the tags
// are emitted as an HTML fragment wrapped in a container element.
//
// Typical use:
//
//	c, err := cloud.New(cloud.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	html, err := c.Render(
//		cloud.MustNewTag("go", 10, cloud.WithURL("/tags/go")),
//		cloud.MustNewTag("rust", 4),
//	)
//
// Shuffling goes through a Shuffler so tests can fix the order, and an
// optional bluemonday policy can be applied to the final fragment.
package cloud
