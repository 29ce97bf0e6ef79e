// Package export renders the whole site to a directory of static HTML files
// that any file server can host, including redirect stubs for legacy service
// identifiers and a 404 page.
package export
