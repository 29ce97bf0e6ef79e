// Package catalog holds the agency's service catalog: the Service record, the
// built-in list compiled into the binary, and an optional YAML catalog file
// that replaces it at startup. The catalog is constant for the process
// lifetime.
package catalog
