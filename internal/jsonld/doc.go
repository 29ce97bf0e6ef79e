// Package jsonld builds the schema.org structured data embedded in pages as
// application/ld+json. Nodes are plain structs; Marshal encodes them.
package jsonld
