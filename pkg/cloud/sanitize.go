package cloud

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var fontSizeStyle = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?[a-z%]*$`)

// DefaultPolicy returns a bluemonday policy that keeps the built-in cloud
// markup (container div, tag anchors and spans, class/title attributes and
// the font-size style) and strips everything else, including unsafe link
// schemes such as javascript:.
func DefaultPolicy() *bluemonday.Policy {
	policy := bluemonday.StrictPolicy()
	policy.AllowElements("div", "a", "span")
	policy.AllowAttrs("class").OnElements("div", "a", "span")
	policy.AllowAttrs("title").OnElements("a", "span")
	policy.AllowAttrs("href").OnElements("a")
	policy.RequireParseableURLs(true)
	policy.AllowURLSchemes("http", "https", "mailto")
	policy.AllowRelativeURLs(true)
	policy.AllowStyles("font-size").Matching(fontSizeStyle).OnElements("a", "span")
	return policy
}
