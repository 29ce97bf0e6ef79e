package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/eugenenazirov/agency-site/internal/catalog"
	"github.com/eugenenazirov/agency-site/internal/seo"
	"github.com/eugenenazirov/agency-site/internal/site"
)

// ErrOutputDir is returned when the output directory is missing or unusable.
var ErrOutputDir = errors.New("invalid output directory")

const (
	indexFile    = "index.html"
	notFoundFile = "404.html"
)

// Result summarises a completed export.
type Result struct {
	OutputDir string
	Pages     int
	Redirects int
	Assets    int
}

// Exporter writes every page of the site as static files in a trailing-slash
// layout: /services/ becomes services/index.html.
type Exporter struct {
	pages     *site.Pages
	renderer  *site.Renderer
	store     catalog.Store
	redirects seo.Redirects
	publicDir string
	logger    *zap.Logger
}

// Option configures Exporter behaviour.
type Option func(*Exporter)

// WithPublicDir copies the static assets found in dir into the output.
func WithPublicDir(dir string) Option {
	return func(e *Exporter) {
		e.publicDir = dir
	}
}

// WithLogger sets the logger used to report progress.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRedirects replaces the legacy identifier table.
func WithRedirects(redirects seo.Redirects) Option {
	return func(e *Exporter) {
		e.redirects = redirects
	}
}

// New constructs an Exporter.
func New(pages *site.Pages, renderer *site.Renderer, store catalog.Store, opts ...Option) *Exporter {
	e := &Exporter{
		pages:     pages,
		renderer:  renderer,
		store:     store,
		redirects: seo.DefaultRedirects(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export renders the site into outDir. It stops at the first failure or when
// ctx is cancelled; files already written are left in place.
func (e *Exporter) Export(ctx context.Context, outDir string) (Result, error) {
	if outDir == "" {
		return Result{}, fmt.Errorf("%w: path is empty", ErrOutputDir)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrOutputDir, err)
	}

	res := Result{OutputDir: outDir}

	type job struct {
		rel  string
		name string
		page func() (site.Page, error)
	}

	jobs := []job{
		{rel: indexFile, name: site.PageHome, page: e.pages.Home},
		{rel: filepath.Join("services", indexFile), name: site.PageServices, page: func() (site.Page, error) {
			return e.pages.Services("")
		}},
	}
	for _, svc := range e.store.All() {
		id := svc.ID
		jobs = append(jobs, job{
			rel:  filepath.Join("service", id, indexFile),
			name: site.PageService,
			page: func() (site.Page, error) { return e.pages.Service(id) },
		})
	}
	jobs = append(jobs, job{rel: notFoundFile, name: site.PageNotFound, page: func() (site.Page, error) {
		return e.pages.NotFound(), nil
	}})

	for _, j := range jobs {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		page, err := j.page()
		if err != nil {
			return res, fmt.Errorf("build %s: %w", j.rel, err)
		}
		if err := e.write(outDir, j.rel, j.name, page); err != nil {
			return res, err
		}
		res.Pages++
	}

	for _, legacy := range e.redirects.LegacyIDs() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		target, _ := e.redirects.Resolve(legacy)
		rel := filepath.Join("service", legacy, indexFile)
		if err := e.write(outDir, rel, site.PageRedirect, e.pages.Redirect("/service/"+target+"/")); err != nil {
			return res, err
		}
		res.Redirects++
	}

	if e.publicDir != "" {
		copied, err := copyTree(ctx, e.publicDir, outDir)
		res.Assets = copied
		if err != nil {
			return res, fmt.Errorf("copy public assets: %w", err)
		}
	}

	e.logger.Info("static export completed",
		zap.String("output_dir", outDir),
		zap.Int("pages", res.Pages),
		zap.Int("redirects", res.Redirects),
		zap.Int("assets", res.Assets),
	)
	return res, nil
}

func (e *Exporter) write(outDir, rel, name string, page site.Page) error {
	if !filepath.IsLocal(rel) {
		return fmt.Errorf("%w: %s escapes the output directory", ErrOutputDir, rel)
	}

	var buf bytes.Buffer
	if err := e.renderer.Render(&buf, name, page); err != nil {
		return fmt.Errorf("render %s: %w", rel, err)
	}

	dst := filepath.Join(outDir, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}

	e.logger.Debug("page exported", zap.String("path", rel))
	return nil
}

// copyTree copies regular files under src into dst, keeping relative paths.
// A missing src copies nothing.
func copyTree(ctx context.Context, src, dst string) (int, error) {
	if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}

	copied := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		copied++
		return nil
	})
	return copied, err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
