package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/folio/internal/config"
)

const testDocument = `{"pages": [
  {"page": "geogrid", "data": [
    {"kind": "title", "level": 1, "content": "Geo Grid"},
    {"kind": "paragraph", "content": {"text": "flags", "emphasis": "em"}}
  ]}
]}`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	contentPath := filepath.Join(dir, "projectsData.json")
	require.NoError(t, os.WriteFile(contentPath, []byte(testDocument), 0o644))

	cfg := config.DefaultConfig()
	cfg.Content = contentPath
	cfg.OutputDir = filepath.Join(dir, "public")
	cfg.StaticDir = ""
	cfg.DefaultPage = "geogrid"
	cfg.Pages = []config.PageEntry{{ID: "geogrid"}, {ID: "pasapalabra"}}
	cfg.Log.Level = config.LogNone

	path := filepath.Join(dir, ".folio.yml")
	require.NoError(t, cfg.Save(path))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRenderHTML(t *testing.T) {
	path := writeTestConfig(t)
	out, err := execute(t, "--config", path, "render", "geogrid", "--markdown=false")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<main class="project-main">`))
	assert.Contains(t, out, `<h1 class="title-lvl1">Geo Grid</h1>`)
	assert.Contains(t, out, `<p class="text"><em>flags</em></p>`)
}

func TestRenderMarkdownDefaultPage(t *testing.T) {
	path := writeTestConfig(t)
	out, err := execute(t, "--config", path, "render", "--markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "# Geo Grid")
	assert.Contains(t, out, "*flags*")
}

func TestRenderMissingPagePrintsPlaceholder(t *testing.T) {
	path := writeTestConfig(t)
	out, err := execute(t, "--config", path, "render", "pasapalabra", "--markdown=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Content unavailable.")
}

func TestBuild(t *testing.T) {
	path := writeTestConfig(t)
	output := filepath.Join(filepath.Dir(path), "dist")
	_, err := execute(t, "--config", path, "build", "--output", output, "--watch=false")
	require.NoError(t, err)

	for _, name := range []string{"index.html", "projects/geogrid.html", "projects/pasapalabra.html"} {
		_, err := os.Stat(filepath.Join(output, filepath.FromSlash(name)))
		assert.NoError(t, err, name)
	}
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".folio.yml")
	require.NoError(t, os.WriteFile(path, []byte("content: \"\"\n"), 0o644))

	_, err := execute(t, "--config", path, "render", "geogrid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "folio dev\n", out)
}
