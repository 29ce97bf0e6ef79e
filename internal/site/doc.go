// Package site assembles and renders the public pages: home, the services
// catalog, service detail, not-found, and static redirect stubs. Templates
// are embedded in the binary.
package site
