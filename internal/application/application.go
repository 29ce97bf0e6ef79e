package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/agency-site/internal/api"
	"github.com/eugenenazirov/agency-site/internal/catalog"
	"github.com/eugenenazirov/agency-site/internal/config"
	"github.com/eugenenazirov/agency-site/internal/export"
	"github.com/eugenenazirov/agency-site/internal/pricing"
	"github.com/eugenenazirov/agency-site/internal/seo"
	"github.com/eugenenazirov/agency-site/internal/site"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	store     catalog.Store
	calc      pricing.Calculator
	handler   *api.Handler
	router    http.Handler
	exporter  *export.Exporter
	publicDir string
	logger    *zap.Logger
	server    *http.Server
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	store, err := loadStore(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	publicDir, err := resolvePublicDir(cfg.PublicDir)
	if err != nil {
		logger.Warn("public directory not found, images will use the fallback",
			zap.String("public_dir", cfg.PublicDir),
			zap.Error(err),
		)
		publicDir = cfg.PublicDir
	}

	siteInfo := seo.Site{
		BaseURL: cfg.BaseURL,
		Name:    cfg.SiteName,
		Locale:  cfg.Locale,
	}
	redirects := seo.DefaultRedirects()

	calc := pricing.New(store)
	pages := site.NewPages(siteInfo, store, calc, seo.NewImageResolver(publicDir))
	renderer, err := site.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	handler := api.NewHandler(pages, renderer, store, calc,
		api.WithLogger(logger),
		api.WithRedirects(redirects),
	)
	siteRouter := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	exporter := export.New(pages, renderer, store,
		export.WithPublicDir(publicDir),
		export.WithRedirects(redirects),
		export.WithLogger(logger),
	)

	return &App{
		store:     store,
		calc:      calc,
		handler:   handler,
		router:    siteRouter,
		exporter:  exporter,
		publicDir: publicDir,
		logger:    logger,
		server:    NewServer(cfg, BuildRootHandler(siteRouter, publicDir)),
	}, nil
}

// loadStore builds the catalog from path, or from the built-in list when path is empty.
func loadStore(path string) (catalog.Store, error) {
	if path == "" {
		return catalog.NewDefaultStore(), nil
	}

	services, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	store, err := catalog.NewMemoryStore(services)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// BuildRootHandler constructs the root HTTP handler that serves public assets
// and routes every other request to the site router.
func BuildRootHandler(siteHandler http.Handler, publicDir string) http.Handler {
	mux := http.NewServeMux()

	assets := noDirectoryListing(http.FileServer(http.Dir(publicDir)))
	mux.Handle("GET /images/", assets)
	mux.Handle("GET /static/", assets)
	mux.Handle("/", siteHandler)

	return mux
}

func noDirectoryListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening",
			zap.String("addr", a.server.Addr),
			zap.String("public_dir", a.publicDir),
			zap.Int("services", len(a.store.All())),
		)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Export writes the static rendition of the site into outDir.
func (a *App) Export(ctx context.Context, outDir string) (export.Result, error) {
	return a.exporter.Export(ctx, outDir)
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}

// resolvePublicDir returns dir unchanged when absolute, otherwise locates it
// relative to the project root.
func resolvePublicDir(dir string) (string, error) {
	if filepath.IsAbs(dir) {
		if _, err := os.Stat(dir); err != nil {
			return "", err
		}
		return dir, nil
	}
	return resolveProjectPath(dir)
}

// resolveProjectPath locates a file or directory relative to the project root by walking up the directory tree.
func resolveProjectPath(relative string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, relative)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("unable to locate %s", relative)
}
