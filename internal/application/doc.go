// Package application provides application initialization and dependency wiring.
// It encapsulates the creation of the catalog store, pack calculator, page
// builders, handlers, routers, the static exporter and the HTTP server,
// making the main package cleaner and more focused on CLI parsing and
// orchestration.
package application
