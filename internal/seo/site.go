package seo

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// Site identifies the published website.
type Site struct {
	BaseURL string
	Name    string
	// Locale is a BCP 47 tag such as "fr-FR".
	Locale string
}

// URL returns the absolute URL of path on the site.
func (s Site) URL(path string) string {
	base := strings.TrimRight(s.BaseURL, "/")
	if path == "" || path == "/" {
		return base
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// AbsoluteURL returns path unchanged when it is already absolute, and
// resolves it against the site otherwise.
func (s Site) AbsoluteURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return s.URL(path)
}

// OGLocale returns the locale in Open Graph form ("fr_FR").
func (s Site) OGLocale() string {
	return strings.ReplaceAll(s.Locale, "-", "_")
}

// FormatPrice renders a whole-euro amount the French way, e.g. "1 200€".
func FormatPrice(amount int) string {
	return humanize.FormatInteger("# ###,", amount) + "€"
}
