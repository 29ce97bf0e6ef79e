package seo

import (
	"fmt"
	"strings"

	"github.com/eugenenazirov/agency-site/internal/analytics"
	"github.com/eugenenazirov/agency-site/internal/pricing"
)

// Robots controls search engine indexing of a page.
type Robots struct {
	Index  bool
	Follow bool
	// Extended adds the preview directives used on indexable landing pages.
	Extended bool
}

func (r Robots) String() string {
	index, follow := "noindex", "nofollow"
	if r.Index {
		index = "index"
	}
	if r.Follow {
		follow = "follow"
	}
	parts := []string{index, follow}
	if r.Extended {
		parts = append(parts, "max-video-preview:-1", "max-image-preview:large", "max-snippet:-1")
	}
	return strings.Join(parts, ", ")
}

// Image is a social sharing image.
type Image struct {
	URL    string
	Width  int
	Height int
	Alt    string
}

// OpenGraph holds the og:* properties of a page.
type OpenGraph struct {
	Title       string
	Description string
	URL         string
	SiteName    string
	Type        string
	Locale      string
	Images      []Image
}

// Twitter holds the twitter:* card properties of a page.
type Twitter struct {
	Card        string
	Title       string
	Description string
	Images      []string
}

// Metadata is everything a page exposes in its <head> for search engines.
type Metadata struct {
	Title       string
	Description string
	Keywords    []string
	Canonical   string
	Robots      Robots
	OpenGraph   OpenGraph
	Twitter     Twitter
}

var servicesKeywords = []string{
	"développement web",
	"création site internet",
	"e-commerce",
	"SEO",
	"intelligence artificielle",
	"web3",
	"application mobile",
	"pack web",
	"site vitrine",
	"boutique en ligne",
	"marketing digital",
}

// HomeMetadata describes the landing page.
func HomeMetadata(site Site) Metadata {
	title := site.Name + " | Création de sites web, e-commerce et IA"
	description := "Agence web : sites vitrines, boutiques en ligne, SEO et intelligence artificielle. Packs clés en main et devis gratuit."
	return Metadata{
		Title:       title,
		Description: description,
		Canonical:   site.URL("/"),
		Robots:      Robots{Index: true, Follow: true, Extended: true},
		OpenGraph: OpenGraph{
			Title:       title,
			Description: description,
			URL:         site.URL("/"),
			SiteName:    site.Name,
			Type:        "website",
			Locale:      site.OGLocale(),
			Images: []Image{
				{URL: site.URL("/images/og-home.jpg"), Width: 1200, Height: 630, Alt: site.Name},
			},
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       title,
			Description: description,
			Images:      []string{site.URL("/images/og-home.jpg")},
		},
	}
}

// ServicesMetadata describes the catalog page. Pack prices in the copy come
// from packs so they never drift from the displayed offers.
func ServicesMetadata(site Site, packs []pricing.Pack, serviceCount int) Metadata {
	offers := make([]string, 0, len(packs))
	for _, pack := range packs {
		offers = append(offers, fmt.Sprintf("%s (%s)", pack.Name, FormatPrice(pack.Price)))
	}

	description := fmt.Sprintf(
		"Découvrez nos packs web professionnels : %s. +%d services : SEO, IA, Web3, PWA. Devis gratuit.",
		strings.Join(offers, ", "), serviceCount,
	)
	ogDescription := "Site vitrine, e-commerce, IA, SEO. Des solutions complètes pour votre transformation digitale."
	if len(packs) > 0 {
		ogDescription = fmt.Sprintf("Packs web à partir de %s. %s", FormatPrice(lowestPrice(packs)), ogDescription)
	}

	return Metadata{
		Title:       "Services Web & Développement Digital | Packs et Solutions sur-Mesure",
		Description: description,
		Keywords:    append([]string(nil), servicesKeywords...),
		Canonical:   site.URL("/services"),
		Robots:      Robots{Index: true, Follow: true, Extended: true},
		OpenGraph: OpenGraph{
			Title:       "Services Web & Développement Digital | Solutions Complètes",
			Description: ogDescription,
			URL:         site.URL("/services"),
			SiteName:    site.Name,
			Type:        "website",
			Locale:      site.OGLocale(),
			Images: []Image{
				{URL: site.URL("/images/services-og.jpg"), Width: 1200, Height: 630, Alt: "Services web et packs digitaux"},
			},
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       "Services Web & Packs Digitaux",
			Description: "Découvrez nos solutions web complètes. Site vitrine, e-commerce, IA, SEO.",
			Images:      []string{site.URL("/images/services-twitter.jpg")},
		},
	}
}

// ServiceMetadata describes a service detail page. ogImage is the verified
// public path of the sharing image.
func ServiceMetadata(site Site, snap analytics.Snapshot, ogImage string) Metadata {
	svc := snap.Service
	canonical := site.URL("/service/" + svc.ID)
	title := fmt.Sprintf("%s - %d€ | Expert %s", svc.Name, svc.Price, svc.SubCategory)

	var b strings.Builder
	fmt.Fprintf(&b, "%s À partir de %d€.", svc.Description, svc.Price)
	if svc.Duration != "" {
		fmt.Fprintf(&b, " Délai : %s.", svc.Duration)
	}
	fmt.Fprintf(&b, " %d fonctionnalités incluses.", len(svc.Features))
	description := b.String()

	image := site.AbsoluteURL(ogImage)
	return Metadata{
		Title:       title,
		Description: description,
		Keywords:    []string{svc.Name, svc.SubCategory, "agence web"},
		Canonical:   canonical,
		Robots:      Robots{Index: true, Follow: true, Extended: true},
		OpenGraph: OpenGraph{
			Title:       title,
			Description: description,
			URL:         canonical,
			SiteName:    site.Name,
			Type:        "website",
			Locale:      site.OGLocale(),
			Images: []Image{
				{URL: image, Width: 1200, Height: 630, Alt: svc.Name},
			},
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       title,
			Description: svc.Description,
			Images:      []string{image},
		},
	}
}

// NotFoundMetadata describes the page served for unknown services.
func NotFoundMetadata() Metadata {
	return Metadata{
		Title:       "Service non trouvé | Erreur 404",
		Description: "Le service recherché n'existe pas.",
		Robots:      Robots{Index: false, Follow: false},
	}
}

func lowestPrice(packs []pricing.Pack) int {
	lowest := packs[0].Price
	for _, pack := range packs[1:] {
		if pack.Price < lowest {
			lowest = pack.Price
		}
	}
	return lowest
}
