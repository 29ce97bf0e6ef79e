package analytics

import (
	"math"

	"github.com/eugenenazirov/agency-site/internal/catalog"
)

const (
	maxRelated       = 3
	maxComplementary = 4
)

// Stats are the fixed social-proof figures shown on every service page.
type Stats struct {
	TotalReviews      int     `json:"totalReviews"`
	AvgRating         float64 `json:"avgRating"`
	DeliveredProjects int     `json:"deliveredProjects"`
	SatisfactionRate  int     `json:"satisfactionRate"`
}

// DefaultStats returns the figures displayed across the site.
func DefaultStats() Stats {
	return Stats{
		TotalReviews:      127,
		AvgRating:         4.9,
		DeliveredProjects: 500,
		SatisfactionRate:  98,
	}
}

// Snapshot is the read model behind a service detail page.
type Snapshot struct {
	Service          catalog.Service   `json:"service"`
	AvgPrice         int               `json:"avgPrice"`
	Related          []catalog.Service `json:"related"`
	Complementary    []catalog.Service `json:"complementary"`
	CategoryServices []catalog.Service `json:"categoryServices"`
	Stats            Stats             `json:"stats"`
}

// For computes the snapshot of the service identified by id.
// It reports false when id is not in the catalog.
func For(store catalog.Store, id string) (Snapshot, bool) {
	svc, ok := store.Find(id)
	if !ok {
		return Snapshot{}, false
	}

	category := store.BySubCategory(svc.SubCategory)

	related := make([]catalog.Service, 0, maxRelated)
	for _, other := range category {
		if len(related) == maxRelated {
			break
		}
		if other.ID != svc.ID {
			related = append(related, other)
		}
	}

	complementary := make([]catalog.Service, 0, maxComplementary)
	if svc.IsBase() {
		for _, other := range store.All() {
			if len(complementary) == maxComplementary {
				break
			}
			if other.DependsOn(svc.ID) {
				complementary = append(complementary, other)
			}
		}
	}

	return Snapshot{
		Service:          svc,
		AvgPrice:         Average(category),
		Related:          related,
		Complementary:    complementary,
		CategoryServices: category,
		Stats:            DefaultStats(),
	}, true
}

// Average returns the arithmetic mean price of services rounded to the
// nearest currency unit, or 0 for an empty list.
func Average(services []catalog.Service) int {
	if len(services) == 0 {
		return 0
	}
	total := 0
	for _, svc := range services {
		total += svc.Price
	}
	return int(math.Round(float64(total) / float64(len(services))))
}
