package pages

import (
	"context"
	"errors"
	"net/url"

	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/render"
	"github.com/ziadkadry99/folio/internal/source"
	"github.com/ziadkadry99/folio/internal/surface"
)

var (
	// ErrPageNotFound means the requested id is not one the site serves.
	ErrPageNotFound = errors.New("page not found")
	// ErrPageDataMissing means the id is served but the content document has
	// no record for it.
	ErrPageDataMissing = errors.New("page data missing from content document")
)

// QueryParam is the URL parameter carrying the page identifier.
const QueryParam = "page"

// Router selects a page by identifier and renders its content into a surface.
type Router struct {
	supported map[string]bool
	order     []string
	def       string
	source    source.Source
	builder   *render.Builder
	logger    *zap.Logger
}

// Config holds the collaborators of a Router.
type Config struct {
	Supported []string // page ids the site serves, in display order
	Default   string   // page rendered when no id is given; may be empty
	Source    source.Source
	Builder   *render.Builder // defaults to render.NewBuilder()
	Logger    *zap.Logger     // defaults to a no-op logger
}

// NewRouter creates a Router from cfg.
func NewRouter(cfg Config) *Router {
	r := &Router{
		supported: make(map[string]bool, len(cfg.Supported)),
		def:       cfg.Default,
		source:    cfg.Source,
		builder:   cfg.Builder,
		logger:    cfg.Logger,
	}
	for _, id := range cfg.Supported {
		if r.supported[id] {
			continue
		}
		r.supported[id] = true
		r.order = append(r.order, id)
	}
	if r.builder == nil {
		r.builder = render.NewBuilder()
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	return r
}

// Supported reports whether id is a page the site serves.
func (r *Router) Supported(id string) bool {
	return r.supported[id]
}

// Pages returns the supported ids in configuration order.
func (r *Router) Pages() []string {
	return append([]string(nil), r.order...)
}

// Resolve returns the id to render for a request, applying the default page
// when pageID is empty.
func (r *Router) Resolve(pageID string) string {
	if pageID == "" {
		return r.def
	}
	return pageID
}

// Render clears s and fills it with the content of pageID. The returned error
// classifies what was rendered: ErrPageNotFound, a *source.LoadError or
// ErrPageDataMissing each come with exactly one placeholder node on s. With
// no id and no default page, s is left empty and the error is nil.
func (r *Router) Render(ctx context.Context, pageID string, s surface.Surface) error {
	s.Clear()

	id := r.Resolve(pageID)
	if id == "" {
		return nil
	}

	if !r.Supported(id) {
		s.Append(render.NotFound())
		return ErrPageNotFound
	}

	doc, err := r.source.Load(ctx)
	if err != nil {
		r.logger.Error("loading content failed", zap.String("page", id), zap.Error(err))
		s.Append(render.LoadFailed())
		var loadErr *source.LoadError
		if !errors.As(err, &loadErr) {
			err = &source.LoadError{Location: "content source", Err: err}
		}
		return err
	}

	page, ok := doc.Lookup(id)
	if !ok {
		r.logger.Warn("page has no content record", zap.String("page", id))
		s.Append(render.Unavailable(id))
		return ErrPageDataMissing
	}

	s.Append(r.builder.BuildAll(page.Data)...)
	return nil
}

// PageFromQuery returns the page identifier carried by a query string.
func PageFromQuery(q url.Values) string {
	return q.Get(QueryParam)
}

// ProjectURL returns the link a project card navigates to.
func ProjectURL(id string) string {
	return "project.html?" + url.Values{QueryParam: {id}}.Encode()
}
