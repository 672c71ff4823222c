package config

// LogLevel controls how much the console logger prints.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
	LogNone  LogLevel = "none"
)

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	Title          string       `yaml:"title" koanf:"title"`
	Content        string       `yaml:"content" koanf:"content"`
	OutputDir      string       `yaml:"output_dir" koanf:"output_dir"`
	DefaultPage    string       `yaml:"default_page" koanf:"default_page"`
	Pages          []PageEntry  `yaml:"pages" koanf:"pages"`
	Header         string       `yaml:"header" koanf:"header"`
	Footer         string       `yaml:"footer" koanf:"footer"`
	StaticDir      string       `yaml:"static_dir" koanf:"static_dir"`
	Assets         AssetsConfig `yaml:"assets" koanf:"assets"`
	HighlightStyle string       `yaml:"highlight_style" koanf:"highlight_style"`
	Server         ServerConfig `yaml:"server" koanf:"server"`
	Log            LogConfig    `yaml:"log" koanf:"log"`
}

// PageEntry describes one page the site serves. The ids of all entries form
// the supported set of the page router.
type PageEntry struct {
	ID      string `yaml:"id" koanf:"id"`
	Title   string `yaml:"title" koanf:"title"`
	Summary string `yaml:"summary,omitempty" koanf:"summary"`
	Image   string `yaml:"image,omitempty" koanf:"image"`
	Group   string `yaml:"group,omitempty" koanf:"group"`
}

// AssetsConfig selects which files of StaticDir are copied into the output.
type AssetsConfig struct {
	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`
}

// ServerConfig holds dev server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level LogLevel `yaml:"level" koanf:"level"`
}
