package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/ziadkadry99/folio/internal/surface"
)

// Layout renders complete HTML documents around page surfaces.
type Layout struct {
	siteTitle string
	fragments Fragments
	nav       *NavTree
	page      *template.Template
	index     *template.Template
}

// pageData holds the data passed to the layout template for each page.
type pageData struct {
	Title     string
	SiteTitle string
	BasePath  string
	Header    template.HTML
	Footer    template.HTML
	Nav       template.HTML
	Body      template.HTML
}

// NewLayout parses the page templates.
func NewLayout(siteTitle string, frags Fragments, nav *NavTree) (*Layout, error) {
	page, err := template.New("page").Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	index, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing index template: %w", err)
	}
	if nav == nil {
		nav = &NavTree{}
	}
	return &Layout{
		siteTitle: siteTitle,
		fragments: frags,
		nav:       nav,
		page:      page,
		index:     index,
	}, nil
}

// Nav returns the navigation tree of the layout.
func (l *Layout) Nav() *NavTree { return l.nav }

// WritePage writes the document for one rendered surface. activeID marks the
// sidebar entry of the page and basePath is the prefix back to the site root.
func (l *Layout) WritePage(w io.Writer, title, activeID, basePath string, s *surface.Element) error {
	var body bytes.Buffer
	if err := s.Render(&body); err != nil {
		return fmt.Errorf("rendering surface: %w", err)
	}
	return l.write(w, title, activeID, basePath, template.HTML(body.String()))
}

// WriteIndex writes the landing page with one card per configured page.
func (l *Layout) WriteIndex(w io.Writer, basePath string) error {
	var body bytes.Buffer
	err := l.index.Execute(&body, struct {
		Groups   []*NavGroup
		BasePath string
	}{l.nav.Groups, basePath})
	if err != nil {
		return fmt.Errorf("rendering index: %w", err)
	}
	return l.write(w, "", "", basePath, template.HTML(body.String()))
}

func (l *Layout) write(w io.Writer, title, activeID, basePath string, body template.HTML) error {
	return l.page.Execute(w, pageData{
		Title:     title,
		SiteTitle: l.siteTitle,
		BasePath:  basePath,
		Header:    l.fragments.Header,
		Footer:    l.fragments.Footer,
		Nav:       template.HTML(l.nav.ToHTML(activeID, basePath)),
		Body:      body,
	})
}
