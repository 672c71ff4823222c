// Package export converts rendered pages into Markdown.
package export

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"
)

// Markdown converts the tree rooted at n, n included. Surrounding blank lines
// are trimmed and the result ends with one newline.
func Markdown(n *html.Node) (string, error) {
	if n == nil {
		return "", nil
	}
	out, err := htmltomarkdown.ConvertNode(n)
	if err != nil {
		return "", fmt.Errorf("converting html to markdown: %w", err)
	}
	md := strings.TrimSpace(string(out))
	if md == "" {
		return "", nil
	}
	return md + "\n", nil
}
