package normalisers

import (
	"net/url"
	"strings"
)

const faviconService = "https://www.google.com/s2/favicons?domain="

// IconHint derives a favicon URL for sources that do not report one.
// Only http and https URLs with a host produce a hint.
func IconHint(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	host := u.Hostname()
	if host == "" {
		return ""
	}
	return faviconService + url.QueryEscape(host) + "&sz=16"
}
