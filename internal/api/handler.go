package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/eugenenazirov/agency-site/internal/analytics"
	"github.com/eugenenazirov/agency-site/internal/catalog"
	"github.com/eugenenazirov/agency-site/internal/pricing"
	"github.com/eugenenazirov/agency-site/internal/seo"
	"github.com/eugenenazirov/agency-site/internal/site"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler wires the catalog, pricing and page builders into HTTP handlers.
type Handler struct {
	pages     *site.Pages
	renderer  *site.Renderer
	store     catalog.Store
	calc      pricing.Calculator
	redirects seo.Redirects

	logger *zap.Logger
	clock  func() time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithLogger sets the logger used to report rendering failures.
func WithLogger(logger *zap.Logger) HandlerOption {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithRedirects replaces the legacy identifier table.
func WithRedirects(redirects seo.Redirects) HandlerOption {
	return func(h *Handler) {
		h.redirects = redirects
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(pages *site.Pages, renderer *site.Renderer, store catalog.Store, calc pricing.Calculator, opts ...HandlerOption) *Handler {
	h := &Handler{
		pages:     pages,
		renderer:  renderer,
		store:     store,
		calc:      calc,
		redirects: seo.DefaultRedirects(),
		logger:    zap.NewNop(),
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Services:  len(h.store.All()),
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListServices(w http.ResponseWriter, r *http.Request) {
	subCategories := h.store.SubCategories()
	services := h.store.All()

	// An unknown filter lists the whole catalog, as the services page does.
	filter := strings.TrimSpace(r.URL.Query().Get("filter"))
	if slices.Contains(subCategories, filter) {
		services = h.store.BySubCategory(filter)
	} else {
		filter = ""
	}

	resp := servicesResponse{
		Services:      services,
		SubCategories: subCategories,
		Total:         len(services),
		Filter:        filter,
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetService(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	snap, ok := analytics.For(h.store, id)
	if !ok {
		if target, moved := h.redirects.Resolve(id); moved {
			writeError(w, http.StatusNotFound, "Service not found", fmt.Sprintf("no service with id %q", id),
				fmt.Sprintf("this service is now published as %q", target))
			return
		}
		writeError(w, http.StatusNotFound, "Service not found", fmt.Sprintf("no service with id %q", id),
			"list available services with GET /api/services")
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

func (h *Handler) handleListPacks(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := packsResponse{
		Packs:       h.pages.Packs(),
		GeneratedAt: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	pack, err := h.calc.Quote(req.BaseID, req.AddonIDs)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrMissingBase):
			writeError(w, http.StatusBadRequest, "Invalid request", err.Error())
		case errors.Is(err, pricing.ErrUnknownBase):
			suggestion := "choose a base service from GET /api/services?filter=<subCategory>"
			if target, moved := h.redirects.Resolve(strings.TrimSpace(req.BaseID)); moved {
				suggestion = fmt.Sprintf("use %q instead", target)
			}
			writeError(w, http.StatusNotFound, "Unknown base service", err.Error(), suggestion)
		default:
			writeInternalError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, pack)
}

func (h *Handler) handleAPINotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not found", fmt.Sprintf("no endpoint for %s %s", r.Method, r.URL.Path))
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type quoteRequest struct {
	BaseID   string   `json:"baseId"`
	AddonIDs []string `json:"addonIds"`
}

type servicesResponse struct {
	Services      []catalog.Service `json:"services"`
	SubCategories []string          `json:"subCategories"`
	Total         int               `json:"total"`
	Filter        string            `json:"filter,omitempty"`
}

type packsResponse struct {
	Packs       []pricing.Pack `json:"packs"`
	GeneratedAt time.Time      `json:"generatedAt"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Services  int       `json:"services"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
