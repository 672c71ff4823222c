package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBody = `{"pages": [{"page": "geogrid", "data": [{"kind": "title", "level": 1, "content": "Hello"}]}]}`

func TestHTTPSourceLoad(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(validBody))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL+"/data/projectsData.json", srv.Client())

	doc, err := src.Load(context.Background())
	require.NoError(t, err)
	_, ok := doc.Lookup("geogrid")
	assert.True(t, ok)

	// Each load is a fresh fetch.
	_, err = src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestHTTPSourceErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}},
		{"bad body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"pages": "nope"}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewHTTPSource(srv.URL, srv.Client()).Load(context.Background())
			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, srv.URL, loadErr.Location)
		})
	}
}

func TestHTTPSourceUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPSource(url, nil).Load(context.Background())
	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestFileSourceLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.json")
	require.NoError(t, os.WriteFile(path, []byte(validBody), 0o644))

	doc, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, doc.Pages, 1)
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.json")).Load(context.Background())
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFileSourceCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSource("unused.json").Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewPicksImplementation(t *testing.T) {
	assert.IsType(t, &HTTPSource{}, New("https://example.com/data.json"))
	assert.IsType(t, &FileSource{}, New("data/projectsData.json"))
}
