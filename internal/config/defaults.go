package config

// DefaultExcludes are glob patterns never copied from the static directory.
var DefaultExcludes = []string{
	".git/**",
	"node_modules/**",
	"**/.DS_Store",
	"*.map",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:          "Projects",
		Content:        "data/projectsData.json",
		OutputDir:      "public",
		StaticDir:      "static",
		HighlightStyle: "github",
		Assets: AssetsConfig{
			Include: []string{"**"},
			Exclude: DefaultExcludes,
		},
		Server: ServerConfig{
			Port: 8080,
		},
		Log: LogConfig{
			Level: LogInfo,
		},
	}
}

// PageIDs returns the ids of the configured pages, in order.
func (c *Config) PageIDs() []string {
	ids := make([]string, 0, len(c.Pages))
	for _, p := range c.Pages {
		ids = append(ids, p.ID)
	}
	return ids
}

// Page returns the entry with the given id.
func (c *Config) Page(id string) (PageEntry, bool) {
	for _, p := range c.Pages {
		if p.ID == id {
			return p, true
		}
	}
	return PageEntry{}, false
}

// DisplayTitle returns the entry title, or one derived from the id.
func (p PageEntry) DisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return formatTitle(p.ID)
}
