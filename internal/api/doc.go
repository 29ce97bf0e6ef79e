// Package api exposes the site over HTTP: server-rendered pages, the JSON
// catalog and pack endpoints, and the shared middleware chain (request ids,
// access logging, panic recovery, rate limiting, CORS on /api).
package api
