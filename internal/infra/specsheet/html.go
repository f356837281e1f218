package specsheet

import (
	"html"
	"regexp"
	"strings"
)

var (
	breakRe     = regexp.MustCompile(`(?i)<br\s*/?>`)
	paragraphRe = regexp.MustCompile(`(?i)</p>\s*<p[^>]*>`)
	tagRe       = regexp.MustCompile(`<[^>]+>`)
	spacesRe    = regexp.MustCompile(` +`)
	blankRunsRe = regexp.MustCompile(`\n{3,}`)
)

// StripMarkup flattens store-managed rich text into plain lines for the
// document: line breaks and paragraph breaks become newlines, remaining
// tags are dropped, entities are decoded and blank runs are collapsed.
func StripMarkup(text string) string {
	if text == "" {
		return ""
	}

	clean := breakRe.ReplaceAllString(text, "\n")
	clean = paragraphRe.ReplaceAllString(clean, "\n\n")
	clean = tagRe.ReplaceAllString(clean, "")

	clean = strings.ReplaceAll(clean, "&nbsp;", " ")
	clean = html.UnescapeString(clean)

	clean = strings.ReplaceAll(clean, `\r\n`, "\n")
	clean = strings.ReplaceAll(clean, "\r\n", "\n")
	clean = strings.ReplaceAll(clean, `\n`, "\n")

	clean = spacesRe.ReplaceAllString(clean, " ")
	clean = blankRunsRe.ReplaceAllString(clean, "\n\n")

	return strings.TrimSpace(clean)
}
