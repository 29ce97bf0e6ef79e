package site

import (
	"errors"
	"fmt"
	"html/template"
	"slices"
	"time"

	"github.com/eugenenazirov/agency-site/internal/analytics"
	"github.com/eugenenazirov/agency-site/internal/catalog"
	"github.com/eugenenazirov/agency-site/internal/jsonld"
	"github.com/eugenenazirov/agency-site/internal/pricing"
	"github.com/eugenenazirov/agency-site/internal/seo"
)

// ErrServiceNotFound is returned when a page is requested for an identifier
// that is not in the catalog.
var ErrServiceNotFound = errors.New("service not found")

// Page is the data handed to a page template.
type Page struct {
	Site           seo.Site
	Meta           seo.Metadata
	StructuredData []template.HTML
	Content        any
}

// HomeContent is the body of the landing page.
type HomeContent struct {
	Packs        []pricing.Pack
	Featured     []catalog.Service
	Stats        analytics.Stats
	Testimonials []analytics.Testimonial
}

// ServicesContent is the body of the catalog page.
type ServicesContent struct {
	Packs         []pricing.Pack
	Services      []catalog.Service
	SubCategories []string
	Filter        string
}

// ServiceContent is the body of a service detail page.
type ServiceContent struct {
	Snapshot  analytics.Snapshot
	HeroImage string
	Style     CategoryStyle
}

// RedirectContent is the body of a static redirect stub.
type RedirectContent struct {
	Target string
}

// Pages assembles page data from the catalog. Every call recomputes packs and
// analytics; nothing is cached between requests.
type Pages struct {
	site   seo.Site
	store  catalog.Store
	calc   pricing.Calculator
	images seo.ImageResolver
	packs  []pricing.Definition
	clock  func() time.Time
}

// PagesOption configures Pages behaviour.
type PagesOption func(*Pages)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) PagesOption {
	return func(p *Pages) {
		p.clock = clock
	}
}

// WithPackDefinitions replaces the featured packs.
func WithPackDefinitions(defs []pricing.Definition) PagesOption {
	return func(p *Pages) {
		p.packs = defs
	}
}

// NewPages constructs a Pages builder.
func NewPages(site seo.Site, store catalog.Store, calc pricing.Calculator, images seo.ImageResolver, opts ...PagesOption) *Pages {
	p := &Pages{
		site:   site,
		store:  store,
		calc:   calc,
		images: images,
		packs:  pricing.DefaultDefinitions(),
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Site returns the site identity pages are built for.
func (p *Pages) Site() seo.Site {
	return p.site
}

// Packs prices the featured packs, dropping those whose base is missing.
func (p *Pages) Packs() []pricing.Pack {
	return p.calc.BuildAll(p.packs)
}

// Home builds the landing page.
func (p *Pages) Home() (Page, error) {
	stats := analytics.DefaultStats()
	testimonials := analytics.Testimonials()

	scripts, err := structuredData(
		jsonld.OrganizationSchema(p.site),
		jsonld.ReviewsSchema(p.site, stats, testimonials),
	)
	if err != nil {
		return Page{}, err
	}

	var featured []catalog.Service
	for _, svc := range p.store.All() {
		if svc.IsBase() {
			featured = append(featured, svc)
		}
	}

	return Page{
		Site:           p.site,
		Meta:           seo.HomeMetadata(p.site),
		StructuredData: scripts,
		Content: HomeContent{
			Packs:        p.Packs(),
			Featured:     featured,
			Stats:        stats,
			Testimonials: testimonials,
		},
	}, nil
}

// Services builds the catalog page. An unknown filter shows every service.
func (p *Pages) Services(filter string) (Page, error) {
	packs := p.Packs()
	all := p.store.All()
	subCategories := p.store.SubCategories()

	services := all
	if slices.Contains(subCategories, filter) {
		services = p.store.BySubCategory(filter)
	} else {
		filter = ""
	}

	scripts, err := structuredData(jsonld.ServicesPage(p.site, packs, p.clock()))
	if err != nil {
		return Page{}, err
	}

	return Page{
		Site:           p.site,
		Meta:           seo.ServicesMetadata(p.site, packs, len(all)),
		StructuredData: scripts,
		Content: ServicesContent{
			Packs:         packs,
			Services:      services,
			SubCategories: subCategories,
			Filter:        filter,
		},
	}, nil
}

// Service builds the detail page of id. It returns ErrServiceNotFound for
// identifiers outside the catalog; legacy redirects are resolved by callers.
func (p *Pages) Service(id string) (Page, error) {
	snap, ok := analytics.For(p.store, id)
	if !ok {
		return Page{}, fmt.Errorf("%w: %q", ErrServiceNotFound, id)
	}

	hero := p.images.Verify(seo.HeroImage(id))
	ogImage := p.images.Verify(seo.OGImage(id))

	scripts, err := structuredData(jsonld.ServiceDetail(p.site, snap, ogImage))
	if err != nil {
		return Page{}, err
	}

	return Page{
		Site:           p.site,
		Meta:           seo.ServiceMetadata(p.site, snap, ogImage),
		StructuredData: scripts,
		Content: ServiceContent{
			Snapshot:  snap,
			HeroImage: hero,
			Style:     StyleFor(snap.Service.SubCategory),
		},
	}, nil
}

// NotFound builds the page served for unknown services.
func (p *Pages) NotFound() Page {
	return Page{
		Site: p.site,
		Meta: seo.NotFoundMetadata(),
	}
}

// Redirect builds a static stub pointing browsers and crawlers at target.
func (p *Pages) Redirect(target string) Page {
	return Page{
		Site: p.site,
		Meta: seo.Metadata{
			Title:     "Redirection",
			Canonical: p.site.URL(target),
			Robots:    seo.Robots{Index: false, Follow: true},
		},
		Content: RedirectContent{Target: target},
	}
}

// structuredData wraps each document in its own ld+json script element.
// jsonld.Marshal escapes '<', '>' and '&', so the payload cannot close the
// element early.
func structuredData(docs ...any) ([]template.HTML, error) {
	out := make([]template.HTML, 0, len(docs))
	for _, doc := range docs {
		data, err := jsonld.Marshal(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, template.HTML(`<script type="application/ld+json">`+string(data)+`</script>`))
	}
	return out, nil
}
