package render

import "golang.org/x/net/html"

// NotFound is shown when the requested page is not one the site serves.
func NotFound() *html.Node {
	h := element("h1", "error404")
	h.AppendChild(text("404 - Page not found"))
	return h
}

// Unavailable is shown when a served page has no record in the content
// document.
func Unavailable(pageID string) *html.Node {
	h := element("h2", "content-unavailable", attr("data-page", pageID))
	h.AppendChild(text("Content unavailable."))
	return h
}

// LoadFailed is shown when the content document could not be loaded.
func LoadFailed() *html.Node {
	h := element("h2", "load-error")
	h.AppendChild(text("Error loading content."))
	return h
}
