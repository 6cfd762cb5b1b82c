// Package htmlsanitize cleans user-supplied text before it is stored.
// Application messages and organization descriptions arrive as free text
// and may contain markup pasted from other tools.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richPolicy   = buildRichPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

func buildRichPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("u", "s", "sub", "sup", "mark")
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).
		OnElements("table", "thead", "tbody", "tr", "td", "th")
	return p
}

// Sanitize removes dangerous markup while keeping common formatting
// (paragraphs, emphasis, lists, tables, code blocks, links, images).
func Sanitize(s string) string {
	return richPolicy.Sanitize(s)
}

// StripTags removes all markup, leaving plain text. Used for fields that
// must never contain HTML, such as names and contact details.
func StripTags(s string) string {
	return strictPolicy.Sanitize(s)
}

// IsPlainText reports whether s contains no HTML tags.
func IsPlainText(s string) bool {
	return !(strings.Contains(s, "<") && strings.Contains(s, ">"))
}
