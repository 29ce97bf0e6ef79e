package pricing

import (
	"fmt"
	"slices"
	"strings"

	"github.com/eugenenazirov/agency-site/internal/catalog"
)

const (
	standardDiscountPercent = 10
	advancedDiscountPercent = 15
	advancedComponentCount  = 3

	complexityStandard = "Standard"
	complexityAdvanced = "Avancé"
	defaultCTA         = "Configurer ce pack"
)

type tieredCalculator struct {
	store catalog.Store
}

// New creates a Calculator that prices packs from store with the tiered discount.
func New(store catalog.Store) Calculator {
	return &tieredCalculator{store: store}
}

// DiscountRate returns the discount percentage applied to a pack with the
// given number of components (base included).
func DiscountRate(componentCount int) int {
	if componentCount >= advancedComponentCount {
		return advancedDiscountPercent
	}
	return standardDiscountPercent
}

// Discount returns percent of amount, rounded up to the next currency unit.
func Discount(amount, percent int) int {
	if amount <= 0 || percent <= 0 {
		return 0
	}
	return (amount*percent + 99) / 100
}

func (c *tieredCalculator) Build(def Definition) (Pack, bool) {
	base, ok := c.store.Find(def.BaseID)
	if !ok {
		return Pack{}, false
	}

	pack := c.price(base, def.AddonIDs)
	pack.Name = def.Name
	pack.Description = def.Description
	pack.Popular = def.Popular
	return pack, true
}

func (c *tieredCalculator) BuildAll(defs []Definition) []Pack {
	packs := make([]Pack, 0, len(defs))
	for _, def := range defs {
		if pack, ok := c.Build(def); ok {
			packs = append(packs, pack)
		}
	}
	return packs
}

func (c *tieredCalculator) Quote(baseID string, addonIDs []string) (Pack, error) {
	baseID = strings.TrimSpace(baseID)
	if baseID == "" {
		return Pack{}, ErrMissingBase
	}

	base, ok := c.store.Find(baseID)
	if !ok {
		return Pack{}, fmt.Errorf("%w: %q", ErrUnknownBase, baseID)
	}

	pack := c.price(base, addonIDs)
	pack.Name = "Pack " + base.Name
	return pack, nil
}

// price keeps the add-ons that were requested and declare base as a
// dependency, in catalog order, then applies the tiered discount.
func (c *tieredCalculator) price(base catalog.Service, addonIDs []string) Pack {
	var addons []catalog.Service
	for _, svc := range c.store.All() {
		if svc.ID == base.ID {
			continue
		}
		if slices.Contains(addonIDs, svc.ID) && svc.DependsOn(base.ID) {
			addons = append(addons, svc)
		}
	}

	original := base.Price
	components := []string{base.ID}
	features := []string{base.Name}
	for _, addon := range addons {
		original += addon.Price
		components = append(components, addon.ID)
		features = append(features, addon.Name)
	}

	var excluded []string
	for _, id := range addonIDs {
		if !slices.Contains(components, id) && !slices.Contains(excluded, id) {
			excluded = append(excluded, id)
		}
	}

	count := len(components)
	rate := DiscountRate(count)
	savings := Discount(original, rate)

	complexity := complexityStandard
	if count >= advancedComponentCount {
		complexity = complexityAdvanced
	}

	return Pack{
		ServiceID:      base.ID,
		Price:          original - savings,
		OriginalPrice:  original,
		Savings:        savings,
		DiscountRate:   rate,
		ComponentCount: count,
		Components:     components,
		Features:       features,
		Excluded:       excluded,
		Complexity:     complexity,
		CTA:            defaultCTA,
	}
}
