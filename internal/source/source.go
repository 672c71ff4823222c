package source

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/ziadkadry99/folio/internal/content"
)

// Source loads the content document. Every call performs a fresh read;
// nothing is cached between calls.
type Source interface {
	Load(ctx context.Context) (*content.Document, error)
}

// LoadError is returned when the document cannot be fetched or parsed.
type LoadError struct {
	Location string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading content from %s: %v", e.Location, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// New returns an HTTPSource for http(s) locations and a FileSource otherwise.
func New(location string) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, nil)
	}
	return NewFileSource(location)
}

// HTTPSource fetches the document with a plain GET request.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource creates an HTTPSource. A nil client uses http.DefaultClient.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{URL: url, Client: client}
}

// Load fetches and decodes the document.
func (s *HTTPSource) Load(ctx context.Context) (*content.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, &LoadError{Location: s.URL, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, &LoadError{Location: s.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoadError{Location: s.URL, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	doc, err := content.Decode(resp.Body)
	if err != nil {
		return nil, &LoadError{Location: s.URL, Err: err}
	}
	return doc, nil
}

// FileSource reads the document from the local filesystem.
type FileSource struct {
	Path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load opens and decodes the document.
func (s *FileSource) Load(ctx context.Context) (*content.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Location: s.Path, Err: err}
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, &LoadError{Location: s.Path, Err: err}
	}
	defer f.Close()

	doc, err := content.Decode(f)
	if err != nil {
		return nil, &LoadError{Location: s.Path, Err: err}
	}
	return doc, nil
}
