package export

import (
	"context"
	"errors"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/agency-site/internal/catalog"
	"github.com/eugenenazirov/agency-site/internal/pricing"
	"github.com/eugenenazirov/agency-site/internal/seo"
	"github.com/eugenenazirov/agency-site/internal/site"
)

func newTestExporter(t *testing.T, opts ...Option) *Exporter {
	t.Helper()

	store := catalog.NewDefaultStore()
	calc := pricing.New(store)
	siteInfo := seo.Site{BaseURL: "https://agence.example", Name: "Agence Test", Locale: "fr-FR"}
	clock := func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC) }
	pages := site.NewPages(siteInfo, store, calc, seo.NewImageResolver(t.TempDir()), site.WithClock(clock))

	renderer, err := site.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	opts = append([]Option{WithLogger(zaptest.NewLogger(t))}, opts...)
	return New(pages, renderer, store, opts...)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestExportWritesEveryPage(t *testing.T) {
	out := t.TempDir()
	exporter := newTestExporter(t)

	res, err := exporter.Export(context.Background(), out)
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	services := catalog.Default()
	if want := len(services) + 3; res.Pages != want {
		t.Fatalf("expected %d pages, got %d", want, res.Pages)
	}
	if want := len(seo.DefaultRedirects().LegacyIDs()); res.Redirects != want {
		t.Fatalf("expected %d redirect stubs, got %d", want, res.Redirects)
	}

	for _, rel := range []string{"index.html", "services/index.html", "404.html"} {
		if _, err := os.Stat(filepath.Join(out, rel)); err != nil {
			t.Fatalf("expected %s: %v", rel, err)
		}
	}
	for _, svc := range services {
		html := readFile(t, filepath.Join(out, "service", svc.ID, "index.html"))
		if !strings.Contains(html, template.HTMLEscapeString(svc.Name)) {
			t.Fatalf("expected page of %s to mention its name", svc.ID)
		}
	}

	notFound := readFile(t, filepath.Join(out, "404.html"))
	if !strings.Contains(notFound, "noindex, nofollow") {
		t.Fatalf("expected 404 page to be noindex")
	}
}

func TestExportRedirectStubs(t *testing.T) {
	out := t.TempDir()
	if _, err := newTestExporter(t).Export(context.Background(), out); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	stub := readFile(t, filepath.Join(out, "service", "site-web", "index.html"))
	if !strings.Contains(stub, `url=/service/site-vitrine/`) {
		t.Fatalf("expected meta refresh to site-vitrine, got:\n%s", stub)
	}

	// marketplace maps to itself and is exported as a regular page.
	page := readFile(t, filepath.Join(out, "service", "marketplace", "index.html"))
	if strings.Contains(page, "http-equiv") {
		t.Fatalf("expected marketplace to be a full page, not a redirect")
	}
}

func TestExportCopiesPublicAssets(t *testing.T) {
	public := t.TempDir()
	if err := os.MkdirAll(filepath.Join(public, "images", "services"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(public, "images", "services", "default-service.jpg"), []byte("jpg"), 0o644); err != nil {
		t.Fatalf("write asset: %v", err)
	}

	out := t.TempDir()
	res, err := newTestExporter(t, WithPublicDir(public)).Export(context.Background(), out)
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	if res.Assets != 1 {
		t.Fatalf("expected 1 asset, got %d", res.Assets)
	}
	if got := readFile(t, filepath.Join(out, "images", "services", "default-service.jpg")); got != "jpg" {
		t.Fatalf("unexpected asset content %q", got)
	}
}

func TestExportMissingPublicDir(t *testing.T) {
	out := t.TempDir()
	res, err := newTestExporter(t, WithPublicDir(filepath.Join(t.TempDir(), "absent"))).Export(context.Background(), out)
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if res.Assets != 0 {
		t.Fatalf("expected no assets, got %d", res.Assets)
	}
}

func TestExportCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := newTestExporter(t).Export(ctx, t.TempDir())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if res.Pages != 0 {
		t.Fatalf("expected no pages written, got %d", res.Pages)
	}
}

func TestExportEmptyOutputDir(t *testing.T) {
	if _, err := newTestExporter(t).Export(context.Background(), ""); !errors.Is(err, ErrOutputDir) {
		t.Fatalf("expected ErrOutputDir, got %v", err)
	}
}

func TestExportRefusesPathsOutsideOutput(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "out")
	exporter := newTestExporter(t)

	rel := filepath.Join("service", "..", "..", "escaped", "index.html")
	err := exporter.write(out, rel, site.PageNotFound, exporter.pages.NotFound())
	if !errors.Is(err, ErrOutputDir) {
		t.Fatalf("expected ErrOutputDir, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "escaped")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected nothing written outside the output directory, got %v", err)
	}
}
