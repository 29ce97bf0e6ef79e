package api

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/agency-site/internal/catalog"
	"github.com/eugenenazirov/agency-site/internal/pricing"
	"github.com/eugenenazirov/agency-site/internal/seo"
	"github.com/eugenenazirov/agency-site/internal/site"
)

type controllableClock struct {
	mu  sync.RWMutex
	now time.Time
}

func newControllableClock(initial time.Time) *controllableClock {
	return &controllableClock{now: initial}
}

func (c *controllableClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *controllableClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

var testSite = seo.Site{
	BaseURL: "https://agence.example",
	Name:    "Agence Test",
	Locale:  "fr-FR",
}

func newTestHandler(t *testing.T, clock *controllableClock) *Handler {
	t.Helper()

	store := catalog.NewDefaultStore()
	calc := pricing.New(store)
	pages := site.NewPages(testSite, store, calc, seo.NewImageResolver(t.TempDir()), site.WithClock(clock.Now))
	renderer, err := site.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	return NewHandler(pages, renderer, store, calc,
		WithClock(clock.Now),
		WithLogger(zaptest.NewLogger(t)),
	)
}

func setupTestRouter(t *testing.T) (http.Handler, *controllableClock) {
	t.Helper()

	clock := newControllableClock(time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC))
	handler := newTestHandler(t, clock)
	router := NewRouter(handler, zaptest.NewLogger(t), WithLogging(false))

	return router, clock
}

func newTestRouter(t *testing.T, opts ...RouterOption) http.Handler {
	t.Helper()

	clock := newControllableClock(time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC))
	return NewRouter(newTestHandler(t, clock), zaptest.NewLogger(t), opts...)
}
