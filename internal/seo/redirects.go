package seo

import (
	"maps"
	"sort"
)

var legacyRedirects = map[string]string{
	"site-web":    "site-vitrine",
	"ecommerce":   "site-ecommerce",
	"seo":         "seo-avance",
	"ia":          "chatbot-ia",
	"marketplace": "marketplace",
}

// Redirects maps legacy service identifiers to their current ones.
type Redirects struct {
	table map[string]string
}

// NewRedirects builds a redirect table from a copy of table.
func NewRedirects(table map[string]string) Redirects {
	return Redirects{table: maps.Clone(table)}
}

// DefaultRedirects returns the site's legacy identifier table.
func DefaultRedirects() Redirects {
	return NewRedirects(legacyRedirects)
}

// Resolve returns the identifier id now lives under. An entry mapping an id
// to itself is not a redirect.
func (r Redirects) Resolve(id string) (string, bool) {
	target, ok := r.table[id]
	if !ok || target == id || target == "" {
		return "", false
	}
	return target, true
}

// LegacyIDs returns the identifiers that redirect elsewhere, sorted.
func (r Redirects) LegacyIDs() []string {
	out := make([]string, 0, len(r.table))
	for id := range r.table {
		if _, ok := r.Resolve(id); ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
