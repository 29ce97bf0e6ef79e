package jsonld

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/eugenenazirov/agency-site/internal/analytics"
	"github.com/eugenenazirov/agency-site/internal/pricing"
	"github.com/eugenenazirov/agency-site/internal/seo"
)

// Marshal encodes a structured-data document. HTML-significant characters
// are escaped so the output can sit inside a <script> element.
func Marshal(doc any) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode structured data: %w", err)
	}
	return data, nil
}

func organizationID(site seo.Site) string {
	return site.URL("") + "/#organization"
}

// OrganizationSchema describes the agency itself.
func OrganizationSchema(site seo.Site) Organization {
	return Organization{
		Context: schemaContext,
		Type:    "Organization",
		ID:      organizationID(site),
		Name:    site.Name,
		URL:     site.URL(""),
		Logo:    site.URL("/images/logo.png"),
	}
}

// ReviewsSchema describes the agency rating and the featured testimonials.
func ReviewsSchema(site seo.Site, stats analytics.Stats, testimonials []analytics.Testimonial) Organization {
	reviews := make([]Review, 0, len(testimonials))
	for _, t := range testimonials {
		reviews = append(reviews, Review{
			Type:         "Review",
			Author:       Person{Type: "Person", Name: t.Author},
			ReviewRating: Rating{Type: "Rating", RatingValue: t.Rating, BestRating: 5},
			ReviewBody:   t.Quote,
		})
	}

	return Organization{
		Context: schemaContext,
		Type:    "Organization",
		ID:      organizationID(site),
		Name:    site.Name,
		AggregateRating: &AggregateRating{
			Type:        "AggregateRating",
			RatingValue: stats.AvgRating,
			ReviewCount: stats.TotalReviews,
			BestRating:  5,
		},
		Review: reviews,
	}
}

// ServicesPage builds the graph of the catalog page: the page, the offer
// catalog of packs, and the FAQ. now stamps the offers' validFrom.
func ServicesPage(site seo.Site, packs []pricing.Pack, now time.Time) Graph {
	seller := &Organization{Type: "Organization", Name: site.Name}

	offers := make([]Offer, 0, len(packs))
	for _, pack := range packs {
		offers = append(offers, Offer{
			Type:          "Offer",
			Name:          pack.Name,
			Description:   pack.Description,
			Price:         pack.Price,
			PriceCurrency: currency,
			Availability:  inStock,
			ValidFrom:     now.UTC().Format(time.RFC3339),
			URL:           site.URL("/services") + "#" + pack.ServiceID,
			Seller:        seller,
		})
	}

	return Graph{
		Context: schemaContext,
		Graph: []any{
			WebPage{
				Type:        "WebPage",
				ID:          site.URL("/services"),
				Name:        "Services Web & Développement Digital",
				Description: "Catalogue complet de services web : création de sites, e-commerce, SEO, IA, applications mobiles.",
				URL:         site.URL("/services"),
				InLanguage:  site.Locale,
				IsPartOf:    WebSite{Type: "WebSite", ID: site.URL("") + "/", Name: site.Name, URL: site.URL("")},
			},
			Service{
				Type:        "Service",
				Name:        "Services de Développement Web",
				Provider:    Organization{Type: "Organization", Name: site.Name},
				ServiceType: "Développement Web",
				AreaServed:  "FR",
				HasOfferCatalog: OfferCatalog{
					Type:            "OfferCatalog",
					Name:            "Catalogue Services Web",
					ItemListElement: offers,
				},
			},
			FAQPage{
				Type: "FAQPage",
				MainEntity: []Question{
					question("Quels sont vos packs web disponibles ?", packsAnswer(packs)),
					question(
						"Combien de temps prend le développement ?",
						"Le délai varie selon le projet : 7-10 jours pour un site vitrine, 4-6 semaines pour un e-commerce complet.",
					),
				},
			},
		},
	}
}

func packsAnswer(packs []pricing.Pack) string {
	if len(packs) == 0 {
		return "Contactez-nous pour composer un pack adapté à votre projet."
	}
	parts := make([]string, 0, len(packs))
	for _, pack := range packs {
		parts = append(parts, fmt.Sprintf("%s à partir de %s", pack.Name, seo.FormatPrice(pack.Price)))
	}
	return fmt.Sprintf("Nous proposons %d packs principaux : %s.", len(packs), strings.Join(parts, " et "))
}

// ServiceDetail builds the graph of a service page: the page with its
// breadcrumb trail, the service offer, the organization, and the FAQ.
func ServiceDetail(site seo.Site, snap analytics.Snapshot, heroImage string) Graph {
	svc := snap.Service
	serviceURL := site.URL("/service/" + svc.ID)
	orgID := organizationID(site)

	durationAnswer := "Les délais varient, contactez-nous."
	if svc.Duration != "" {
		durationAnswer = fmt.Sprintf("Le développement prend %s.", svc.Duration)
	}

	return Graph{
		Context: schemaContext,
		Graph: []any{
			WebPage{
				Type:        "WebPage",
				ID:          serviceURL,
				Name:        fmt.Sprintf("%s | Service %s", svc.Name, svc.SubCategory),
				Description: svc.Description,
				URL:         serviceURL,
				InLanguage:  site.Locale,
				IsPartOf:    WebSite{Type: "WebSite", ID: site.URL("") + "/", Name: site.Name, URL: site.URL("")},
				Breadcrumb: &BreadcrumbList{
					Type: "BreadcrumbList",
					ItemListElement: []ListItem{
						{Type: "ListItem", Position: 1, Name: "Accueil", Item: site.URL("")},
						{Type: "ListItem", Position: 2, Name: "Services", Item: site.URL("/services")},
						{Type: "ListItem", Position: 3, Name: svc.SubCategory, Item: site.URL("/services?filter=" + svc.SubCategory)},
						{Type: "ListItem", Position: 4, Name: svc.Name, Item: serviceURL},
					},
				},
			},
			ServiceProduct{
				Type:        []string{"Service", "Product"},
				ID:          serviceURL + "#service-product",
				Name:        svc.Name,
				Description: svc.Description,
				Image:       site.AbsoluteURL(heroImage),
				URL:         serviceURL,
				SKU:         svc.ID,
				Brand:       Brand{Type: "Brand", Name: site.Name},
				Category:    "Services " + svc.SubCategory,
				ServiceType: svc.SubCategory,
				Provider:    Organization{Type: "Organization", ID: orgID},
				Offers: Offer{
					Type:          "Offer",
					Price:         svc.Price,
					PriceCurrency: currency,
					Availability:  inStock,
					Seller:        &Organization{ID: orgID},
				},
				AggregateRating: AggregateRating{
					Type:        "AggregateRating",
					RatingValue: snap.Stats.AvgRating,
					ReviewCount: snap.Stats.TotalReviews,
				},
			},
			Organization{
				Type: "Organization",
				ID:   orgID,
				Name: site.Name,
				URL:  site.URL(""),
				Logo: site.URL("/images/logo.png"),
			},
			FAQPage{
				Type: "FAQPage",
				MainEntity: []Question{
					question(
						fmt.Sprintf("Combien coûte %s ?", svc.Name),
						fmt.Sprintf("%s coûte %d€. Le prix moyen pour cette catégorie est de %d€.", svc.Name, svc.Price, snap.AvgPrice),
					),
					question(fmt.Sprintf("Quels sont les délais pour %s ?", svc.Name), durationAnswer),
				},
			},
		},
	}
}
