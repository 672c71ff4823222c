package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Content != "data/projectsData.json" {
		t.Errorf("expected default content %q, got %q", "data/projectsData.json", cfg.Content)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("expected default output_dir %q, got %q", "public", cfg.OutputDir)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Log.Level != LogInfo {
		t.Errorf("expected default log level %q, got %q", LogInfo, cfg.Log.Level)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.folio.yml")

	original := DefaultConfig()
	original.Title = "Portfolio"
	original.Content = "https://example.com/data/projectsData.json"
	original.OutputDir = "dist"
	original.DefaultPage = "geogrid"
	original.Pages = []PageEntry{
		{ID: "geogrid", Title: "Geo Grid", Group: "Games"},
		{ID: "tictactoe", Title: "Tic Tac Toe", Group: "Games"},
	}
	original.Server.Port = 9000

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Title != original.Title {
		t.Errorf("title: got %q, want %q", loaded.Title, original.Title)
	}
	if loaded.Content != original.Content {
		t.Errorf("content: got %q, want %q", loaded.Content, original.Content)
	}
	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if loaded.DefaultPage != original.DefaultPage {
		t.Errorf("default_page: got %q, want %q", loaded.DefaultPage, original.DefaultPage)
	}
	if loaded.Server.Port != 9000 {
		t.Errorf("server.port: got %d, want 9000", loaded.Server.Port)
	}
	if len(loaded.Pages) != len(original.Pages) {
		t.Fatalf("pages length: got %d, want %d", len(loaded.Pages), len(original.Pages))
	}
	for i, p := range loaded.Pages {
		if p != original.Pages[i] {
			t.Errorf("pages[%d]: got %+v, want %+v", i, p, original.Pages[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("expected default output_dir, got %q", cfg.OutputDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("FOLIO_OUTPUT_DIR", "site")
	t.Setenv("FOLIO_SERVER__PORT", "3000")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.OutputDir != "site" {
		t.Errorf("env override failed: got %q, want %q", loaded.OutputDir, "site")
	}
	if loaded.Server.Port != 3000 {
		t.Errorf("nested env override failed: got %d, want 3000", loaded.Server.Port)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yml")
	if err := os.WriteFile(path, []byte("pages: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty content", func(c *Config) { c.Content = "" }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"page without id", func(c *Config) { c.Pages = []PageEntry{{Title: "x"}} }},
		{"page id with slash", func(c *Config) { c.Pages = []PageEntry{{ID: "a/b"}} }},
		{"duplicate page", func(c *Config) { c.Pages = []PageEntry{{ID: "a"}, {ID: "a"}} }},
		{"unknown default page", func(c *Config) { c.Pages = []PageEntry{{ID: "a"}}; c.DefaultPage = "b" }},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"invalid log level", func(c *Config) { c.Log.Level = "chatty" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error for %s", tt.name)
			}
		})
	}
}

func TestPageLookup(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pages = []PageEntry{{ID: "geogrid", Title: "Geo Grid"}, {ID: "tictactoe"}}

	ids := cfg.PageIDs()
	if len(ids) != 2 || ids[0] != "geogrid" || ids[1] != "tictactoe" {
		t.Errorf("PageIDs = %v", ids)
	}
	if p, ok := cfg.Page("geogrid"); !ok || p.Title != "Geo Grid" {
		t.Errorf("Page(geogrid) = %+v, %v", p, ok)
	}
	if _, ok := cfg.Page("missing"); ok {
		t.Error("Page(missing) should not be found")
	}
}

func TestFormatTitle(t *testing.T) {
	tests := []struct{ input, want string }{
		{"geogrid", "Geogrid"},
		{"tic-tac-toe", "Tic Tac Toe"},
		{"wise_pilo_games", "Wise Pilo Games"},
	}
	for _, tt := range tests {
		if got := formatTitle(tt.input); got != tt.want {
			t.Errorf("formatTitle(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim(" geogrid, tictactoe ,,pasapalabra ")
	want := []string{"geogrid", "tictactoe", "pasapalabra"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDetectPageIDs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.json")
	body := `{"pages": [{"page": "a", "data": []}, {"page": "b", "data": []}]}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	ids := detectPageIDs(path)
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("detectPageIDs = %v", ids)
	}
	if ids := detectPageIDs(filepath.Join(dir, "missing.json")); ids != nil {
		t.Errorf("expected nil for missing file, got %v", ids)
	}
}

func TestDisplayTitle(t *testing.T) {
	if got := (PageEntry{ID: "geogrid", Title: "Geo Grid"}).DisplayTitle(); got != "Geo Grid" {
		t.Errorf("DisplayTitle with title = %q", got)
	}
	if got := (PageEntry{ID: "tic-tac-toe"}).DisplayTitle(); got != "Tic Tac Toe" {
		t.Errorf("DisplayTitle from id = %q", got)
	}
}
