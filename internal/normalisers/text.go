package normalisers

import (
	"html"
	"regexp"
	"strings"
)

var multiSpaces = regexp.MustCompile(`\s+`)

// cleanTitle decodes HTML entities and collapses whitespace.
// Page titles from some sources arrive escaped ("Q&amp;A").
func cleanTitle(title string) string {
	title = html.UnescapeString(title)
	title = multiSpaces.ReplaceAllString(title, " ")
	return strings.TrimSpace(title)
}

func cleanURL(rawURL string) string {
	return strings.TrimSpace(rawURL)
}
