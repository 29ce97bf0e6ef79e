package api

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/eugenenazirov/agency-site/internal/site"
)

func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	page, err := h.pages.Home()
	if err != nil {
		h.renderFailure(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, site.PageHome, page)
}

func (h *Handler) handleServices(w http.ResponseWriter, r *http.Request) {
	page, err := h.pages.Services(r.URL.Query().Get("filter"))
	if err != nil {
		h.renderFailure(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, site.PageServices, page)
}

// handleService serves /service/{id}. Legacy identifiers are redirected
// before the catalog lookup.
func (h *Handler) handleService(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if target, ok := h.redirects.Resolve(id); ok {
		http.Redirect(w, r, "/service/"+url.PathEscape(target), http.StatusTemporaryRedirect)
		return
	}

	page, err := h.pages.Service(id)
	if err != nil {
		if errors.Is(err, site.ErrServiceNotFound) {
			h.handleNotFound(w, r)
			return
		}
		h.renderFailure(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, site.PageService, page)
}

func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, site.PageNotFound, h.pages.NotFound())
}

// render buffers the whole page so a template failure never leaves a
// half-written 200 response.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, page site.Page) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, name, page); err != nil {
		h.renderFailure(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) renderFailure(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("page rendering failed",
		zap.String("path", r.URL.Path),
		zap.String("request_id", requestIDFromContext(r.Context())),
		zap.Error(err),
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
