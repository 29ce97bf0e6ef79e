package pricing

import "slices"

var defaultDefinitions = []Definition{
	{
		Name:        "Pack Présence Digitale",
		Description: "Solution complète pour créer votre site vitrine professionnel avec SEO avancé et maintenance incluse.",
		BaseID:      "site-vitrine",
		AddonIDs:    []string{"seo-avance", "maintenance-annuelle"},
		Popular:     true,
	},
	{
		Name:        "Pack E-commerce Pro",
		Description: "Boutique en ligne complète avec gestion intelligente des stocks et programme de fidélité.",
		BaseID:      "site-ecommerce",
		AddonIDs:    []string{"gestion-inventaire-ia", "systeme-parrainage"},
	},
}

// DefaultDefinitions returns a copy of the packs featured on the site.
func DefaultDefinitions() []Definition {
	out := make([]Definition, len(defaultDefinitions))
	for i, def := range defaultDefinitions {
		def.AddonIDs = slices.Clone(def.AddonIDs)
		out[i] = def
	}
	return out
}
