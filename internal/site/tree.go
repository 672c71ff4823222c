package site

import (
	"fmt"
	"html"
	"strings"

	"github.com/ziadkadry99/folio/internal/config"
)

// NavTree is the sidebar navigation: configured pages grouped by their
// group name. Groups keep the order in which they first appear and pages
// keep configuration order.
type NavTree struct {
	Groups []*NavGroup
}

// NavGroup is one named section of the sidebar. The ungrouped section has an
// empty name and always comes first.
type NavGroup struct {
	Name    string
	Entries []NavEntry
}

// NavEntry links to one page.
type NavEntry struct {
	ID      string
	Title   string
	Summary string
	Image   string
	Href    string // relative to the site root
}

// BuildNavTree groups pages. href maps a page id to its link.
func BuildNavTree(pages []config.PageEntry, href func(id string) string) *NavTree {
	tree := &NavTree{}
	index := make(map[string]*NavGroup)

	for _, p := range pages {
		g, ok := index[p.Group]
		if !ok {
			g = &NavGroup{Name: p.Group}
			index[p.Group] = g
			if p.Group == "" {
				tree.Groups = append([]*NavGroup{g}, tree.Groups...)
			} else {
				tree.Groups = append(tree.Groups, g)
			}
		}
		g.Entries = append(g.Entries, NavEntry{
			ID:      p.ID,
			Title:   p.DisplayTitle(),
			Summary: p.Summary,
			Image:   p.Image,
			Href:    href(p.ID),
		})
	}
	return tree
}

// Len returns the number of pages in the tree.
func (t *NavTree) Len() int {
	n := 0
	for _, g := range t.Groups {
		n += len(g.Entries)
	}
	return n
}

// Entry returns the entry of the page with the given id.
func (t *NavTree) Entry(id string) (NavEntry, bool) {
	for _, g := range t.Groups {
		for _, e := range g.Entries {
			if e.ID == id {
				return e, true
			}
		}
	}
	return NavEntry{}, false
}

// ToHTML renders the tree as nested <ul><li> HTML for the sidebar.
// basePath is the relative prefix back to the site root (e.g. "../").
func (t *NavTree) ToHTML(activeID, basePath string) string {
	var b strings.Builder
	b.WriteString("<ul>\n")
	for _, g := range t.Groups {
		if g.Name == "" {
			renderEntries(&b, g.Entries, activeID, basePath)
			continue
		}
		fmt.Fprintf(&b, `<li class="group"><span>%s</span>`+"\n<ul>\n", html.EscapeString(g.Name))
		renderEntries(&b, g.Entries, activeID, basePath)
		b.WriteString("</ul>\n</li>\n")
	}
	b.WriteString("</ul>\n")
	return b.String()
}

func renderEntries(b *strings.Builder, entries []NavEntry, activeID, basePath string) {
	for _, e := range entries {
		activeClass := ""
		if e.ID == activeID {
			activeClass = ` class="active"`
		}
		fmt.Fprintf(b, `<li class="page"><a href="%s"%s data-page="%s">%s</a></li>`+"\n",
			html.EscapeString(basePath+e.Href), activeClass, html.EscapeString(e.ID), html.EscapeString(e.Title))
	}
}
