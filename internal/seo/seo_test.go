package seo

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/eugenenazirov/agency-site/internal/analytics"
	"github.com/eugenenazirov/agency-site/internal/catalog"
	"github.com/eugenenazirov/agency-site/internal/pricing"
)

var testSite = Site{BaseURL: "https://agence.example/", Name: "Votre Agence Web", Locale: "fr-FR"}

func TestSiteURL(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":              "https://agence.example",
		"/":             "https://agence.example",
		"/services":     "https://agence.example/services",
		"service/x":     "https://agence.example/service/x",
		"/images/a.jpg": "https://agence.example/images/a.jpg",
	}
	for in, want := range tests {
		if got := testSite.URL(in); got != want {
			t.Fatalf("URL(%q): expected %q, got %q", in, want, got)
		}
	}

	if got := testSite.AbsoluteURL("https://cdn.example/a.jpg"); got != "https://cdn.example/a.jpg" {
		t.Fatalf("expected absolute URL to be kept, got %q", got)
	}
	if got := testSite.OGLocale(); got != "fr_FR" {
		t.Fatalf("expected fr_FR, got %q", got)
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	tests := map[int]string{
		0:     "0€",
		890:   "890€",
		1215:  "1 215€",
		12500: "12 500€",
	}
	for in, want := range tests {
		if got := FormatPrice(in); got != want {
			t.Fatalf("FormatPrice(%d): expected %q, got %q", in, want, got)
		}
	}
}

func TestRedirects(t *testing.T) {
	t.Parallel()

	r := DefaultRedirects()

	tests := []struct {
		id     string
		target string
		ok     bool
	}{
		{id: "site-web", target: "site-vitrine", ok: true},
		{id: "ecommerce", target: "site-ecommerce", ok: true},
		{id: "seo", target: "seo-avance", ok: true},
		{id: "ia", target: "chatbot-ia", ok: true},
		{id: "marketplace", ok: false},
		{id: "site-vitrine", ok: false},
	}
	for _, tc := range tests {
		target, ok := r.Resolve(tc.id)
		if ok != tc.ok || target != tc.target {
			t.Fatalf("Resolve(%q): expected (%q, %v), got (%q, %v)", tc.id, tc.target, tc.ok, target, ok)
		}
	}

	want := []string{"ecommerce", "ia", "seo", "site-web"}
	if got := r.LegacyIDs(); !slices.Equal(got, want) {
		t.Fatalf("expected legacy ids %v, got %v", want, got)
	}
}

func TestRedirectTargetsExistInCatalog(t *testing.T) {
	t.Parallel()

	store := catalog.NewDefaultStore()
	r := DefaultRedirects()
	for _, id := range r.LegacyIDs() {
		target, _ := r.Resolve(id)
		if _, ok := store.Find(target); !ok {
			t.Fatalf("legacy id %q redirects to unknown service %q", id, target)
		}
	}
}

func TestImageResolverVerify(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "images", "services"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "images", "services", "site-vitrine-hero.jpg"), []byte("jpg"), 0o600); err != nil {
		t.Fatalf("write image: %v", err)
	}

	r := NewImageResolver(dir)

	if got := r.Verify(HeroImage("site-vitrine")); got != "/images/services/site-vitrine-hero.jpg" {
		t.Fatalf("expected existing image, got %q", got)
	}
	if got := r.Verify(OGImage("site-vitrine")); got != DefaultFallbackImage {
		t.Fatalf("expected fallback for missing image, got %q", got)
	}
	if got := r.Verify("/images/services"); got != DefaultFallbackImage {
		t.Fatalf("expected fallback for directory, got %q", got)
	}
	if got := r.Verify("/../../etc/passwd"); got != DefaultFallbackImage {
		t.Fatalf("expected fallback for path outside public dir, got %q", got)
	}

	custom := ImageResolver{PublicDir: dir, Fallback: "/images/other.jpg"}
	if got := custom.Verify(""); got != "/images/other.jpg" {
		t.Fatalf("expected custom fallback, got %q", got)
	}
	if got := (ImageResolver{}).Verify(HeroImage("x")); got != DefaultFallbackImage {
		t.Fatalf("expected default fallback without public dir, got %q", got)
	}
}

func TestRobotsString(t *testing.T) {
	t.Parallel()

	if got := (Robots{}).String(); got != "noindex, nofollow" {
		t.Fatalf("unexpected robots: %q", got)
	}
	got := Robots{Index: true, Follow: true, Extended: true}.String()
	if !strings.HasPrefix(got, "index, follow, ") || !strings.Contains(got, "max-image-preview:large") {
		t.Fatalf("unexpected robots: %q", got)
	}
}

func TestServiceMetadata(t *testing.T) {
	t.Parallel()

	snap, ok := analytics.For(catalog.NewDefaultStore(), "site-vitrine")
	if !ok {
		t.Fatalf("expected snapshot")
	}

	meta := ServiceMetadata(testSite, snap, OGImage("site-vitrine"))
	if meta.Title != "Site Vitrine - 890€ | Expert visibilite" {
		t.Fatalf("unexpected title %q", meta.Title)
	}
	if !strings.Contains(meta.Description, "À partir de 890€") ||
		!strings.Contains(meta.Description, "7-10 jours") ||
		!strings.Contains(meta.Description, "6 fonctionnalités") {
		t.Fatalf("unexpected description %q", meta.Description)
	}
	if meta.Canonical != "https://agence.example/service/site-vitrine" {
		t.Fatalf("unexpected canonical %q", meta.Canonical)
	}
	if !meta.Robots.Index {
		t.Fatalf("service pages must be indexable")
	}
	if meta.OpenGraph.Images[0].URL != "https://agence.example/images/services/site-vitrine-og.jpg" {
		t.Fatalf("unexpected og image %q", meta.OpenGraph.Images[0].URL)
	}
}

func TestServiceMetadataWithoutDuration(t *testing.T) {
	t.Parallel()

	snap := analytics.Snapshot{Service: catalog.Service{ID: "x", Name: "X", Price: 10, Description: "Desc."}}
	meta := ServiceMetadata(testSite, snap, DefaultFallbackImage)
	if strings.Contains(meta.Description, "Délai") {
		t.Fatalf("expected no duration in %q", meta.Description)
	}
}

func TestServicesMetadata(t *testing.T) {
	t.Parallel()

	packs := []pricing.Pack{{Name: "Pack A", Price: 3468}, {Name: "Pack B", Price: 1215}}
	meta := ServicesMetadata(testSite, packs, 24)

	if !strings.Contains(meta.Description, "Pack A (3 468€), Pack B (1 215€)") {
		t.Fatalf("unexpected description %q", meta.Description)
	}
	if !strings.Contains(meta.OpenGraph.Description, "à partir de 1 215€") {
		t.Fatalf("expected lowest pack price in %q", meta.OpenGraph.Description)
	}
	if meta.Canonical != "https://agence.example/services" || len(meta.Keywords) == 0 {
		t.Fatalf("unexpected metadata %+v", meta)
	}
}

func TestNotFoundMetadata(t *testing.T) {
	t.Parallel()

	meta := NotFoundMetadata()
	if meta.Robots.Index || meta.Robots.Follow {
		t.Fatalf("not-found page must not be indexed")
	}
	if meta.Title != "Service non trouvé | Erreur 404" {
		t.Fatalf("unexpected title %q", meta.Title)
	}
}

func TestHomeMetadata(t *testing.T) {
	t.Parallel()

	meta := HomeMetadata(testSite)
	if meta.Canonical != "https://agence.example" || meta.OpenGraph.Locale != "fr_FR" {
		t.Fatalf("unexpected metadata %+v", meta)
	}
}
