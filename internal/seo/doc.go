// Package seo produces what search engines read outside the page body: head
// metadata (title, description, canonical, robots, Open Graph, Twitter), the
// legacy identifier redirect table, and verified image paths.
package seo
