package site

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/assets"
	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/pages"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/render"
	"github.com/ziadkadry99/folio/internal/source"
	"github.com/ziadkadry99/folio/internal/surface"
)

// StaticDirName is the output subdirectory receiving copied assets.
const StaticDirName = "static"

// StaticPagePath is where the static build writes the page with the given id.
func StaticPagePath(id string) string {
	return "projects/" + id + ".html"
}

// Generator builds the static site of a configuration.
type Generator struct {
	cfg         *config.Config
	router      *pages.Router
	highlighter *render.ChromaHighlighter
	fragments   *FragmentLoader
	reporter    progress.Reporter
	logger      *zap.Logger
}

// Options holds the collaborators of a Generator. Only Config and Router are
// required.
type Options struct {
	Config      *config.Config
	Router      *pages.Router
	Highlighter *render.ChromaHighlighter
	Reporter    progress.Reporter
	Logger      *zap.Logger
}

// Result summarizes a build.
type Result struct {
	Pages   int      // project pages written
	Missing []string // served ids with no record in the content document
	Assets  assets.CopyResult
}

// NewGenerator creates a Generator.
func NewGenerator(opts Options) *Generator {
	g := &Generator{
		cfg:         opts.Config,
		router:      opts.Router,
		highlighter: opts.Highlighter,
		reporter:    opts.Reporter,
		logger:      opts.Logger,
	}
	if g.highlighter == nil {
		g.highlighter = render.NewChromaHighlighter(g.cfg.HighlightStyle)
	}
	if g.reporter == nil {
		g.reporter = progress.Nop{}
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	g.fragments = NewFragmentLoader(g.cfg.HighlightStyle)
	return g
}

// Generate writes the whole site below the configured output directory. A
// content document that cannot be loaded aborts the build; pages missing from
// the document are written with their placeholder and listed in the result.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	out := g.cfg.OutputDir
	if err := os.MkdirAll(filepath.Join(out, "projects"), 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	frags, err := g.fragments.Load(g.cfg.Header, g.cfg.Footer)
	if err != nil {
		return nil, fmt.Errorf("loading fragments: %w", err)
	}
	layout, err := NewLayout(g.cfg.Title, frags, BuildNavTree(g.servedPages(), StaticPagePath))
	if err != nil {
		return nil, err
	}

	res := &Result{}
	var index []SearchEntry

	entries := g.entries(layout.Nav())
	g.reporter.Start(len(entries))
	for i, e := range entries {
		s := surface.NewMain()
		err := g.router.Render(ctx, e.ID, s)

		var loadErr *source.LoadError
		switch {
		case errors.As(err, &loadErr):
			g.reporter.Finish()
			return nil, fmt.Errorf("building %s: %w", e.ID, err)
		case errors.Is(err, pages.ErrPageDataMissing):
			g.logger.Warn("page missing from content document", zap.String("page", e.ID))
			g.reporter.Missing(e.ID)
			res.Missing = append(res.Missing, e.ID)
		case err != nil:
			g.reporter.Finish()
			return nil, fmt.Errorf("building %s: %w", e.ID, err)
		default:
			index = append(index, NewSearchEntry(e, s))
		}

		if err := g.writePage(layout, e, s); err != nil {
			g.reporter.Finish()
			return nil, err
		}
		res.Pages++
		g.reporter.Update(i+1, e.ID)
	}
	g.reporter.Finish()

	err = multierr.Combine(
		g.writeIndex(layout),
		g.writeNotFound(layout),
		g.writeHighlightCSS(),
		WriteSearchIndex(index, filepath.Join(out, "search-index.json")),
	)
	for name, body := range StaticFiles() {
		err = multierr.Append(err, g.writeFile(name, []byte(body)))
	}
	if err != nil {
		return nil, err
	}

	res.Assets, err = g.copyAssets()
	if err != nil {
		return nil, err
	}

	g.logger.Info("site built",
		zap.String("output", out),
		zap.Int("pages", res.Pages),
		zap.Int("missing", len(res.Missing)),
		zap.Int("assets_copied", res.Assets.Copied),
	)
	return res, nil
}

// servedPages returns the configured entries the router serves.
func (g *Generator) servedPages() []config.PageEntry {
	var out []config.PageEntry
	for _, p := range g.cfg.Pages {
		if g.router.Supported(p.ID) {
			out = append(out, p)
		}
	}
	return out
}

// entries flattens the navigation tree in display order.
func (g *Generator) entries(nav *NavTree) []NavEntry {
	var out []NavEntry
	for _, group := range nav.Groups {
		out = append(out, group.Entries...)
	}
	return out
}

func (g *Generator) writePage(layout *Layout, e NavEntry, s *surface.Element) error {
	f, err := g.create(StaticPagePath(e.ID))
	if err != nil {
		return err
	}
	return multierr.Append(layout.WritePage(f, e.Title, e.ID, "../", s), f.Close())
}

func (g *Generator) writeIndex(layout *Layout) error {
	f, err := g.create("index.html")
	if err != nil {
		return err
	}
	return multierr.Append(layout.WriteIndex(f, ""), f.Close())
}

func (g *Generator) writeNotFound(layout *Layout) error {
	s := surface.NewMain()
	s.Append(render.NotFound())

	f, err := g.create("404.html")
	if err != nil {
		return err
	}
	return multierr.Append(layout.WritePage(f, "Not found", "", "", s), f.Close())
}

func (g *Generator) writeHighlightCSS() error {
	f, err := g.create("highlight.css")
	if err != nil {
		return err
	}
	return multierr.Append(g.highlighter.WriteCSS(f), f.Close())
}

func (g *Generator) writeFile(name string, data []byte) error {
	return os.WriteFile(filepath.Join(g.cfg.OutputDir, name), data, 0o644)
}

func (g *Generator) create(name string) (*os.File, error) {
	path := filepath.Join(g.cfg.OutputDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.Create(path)
}

func (g *Generator) copyAssets() (assets.CopyResult, error) {
	if g.cfg.StaticDir == "" {
		return assets.CopyResult{}, nil
	}
	files, err := assets.Walk(assets.Options{
		RootDir: g.cfg.StaticDir,
		Include: g.cfg.Assets.Include,
		Exclude: g.cfg.Assets.Exclude,
	})
	if err != nil {
		return assets.CopyResult{}, err
	}
	return assets.Copy(files, filepath.Join(g.cfg.OutputDir, StaticDirName), g.logger)
}
