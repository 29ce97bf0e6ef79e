// Package analytics derives the read model behind service pages from the
// catalog: category average price, related and complementary services, and
// the fixed display statistics.
package analytics
