package config

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Config is the complete configuration.
type Config struct {
	Link LinkConfig `toml:"link"`
	Log  LogConfig  `toml:"log"`
}

// LinkConfig configures link editing.
type LinkConfig struct {
	// AddTargetToExternalLinks registers the isExternal decorator.
	AddTargetToExternalLinks bool              `toml:"addTargetToExternalLinks"`
	Decorators               []DecoratorConfig `toml:"decorators"`
}

// DecoratorConfig is one [[link.decorators]] table.
type DecoratorConfig struct {
	ID         string            `toml:"id"`
	Mode       string            `toml:"mode"`
	Label      string            `toml:"label"`
	Default    bool              `toml:"default"`
	Attributes map[string]string `toml:"attributes"`

	// Exactly one of these is required for automatic decorators.
	Pattern string `toml:"pattern"`
	Lua     string `toml:"lua"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Log: LogConfig{Level: "info"}}
}

// Loader reads the configuration file and applies environment overrides.
type Loader struct {
	path string
	toml *TOMLLoader
	env  *EnvLoader
}

// Option configures a Loader.
type Option func(*Loader)

// WithFS sets the file system the file is read from.
func WithFS(fsys FileSystem) Option {
	return func(l *Loader) {
		l.toml = NewTOMLLoader(fsys)
	}
}

// WithEnv sets the environment loader. nil disables overrides.
func WithEnv(env *EnvLoader) Option {
	return func(l *Loader) {
		l.env = env
	}
}

// NewLoader creates a loader for path. An empty path loads defaults and
// environment overrides only.
func NewLoader(path string, opts ...Option) *Loader {
	l := &Loader{
		path: path,
		toml: NewTOMLLoader(nil),
		env:  NewEnvLoader(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path returns the configuration file path.
func (l *Loader) Path() string {
	return l.path
}

// Load reads the configuration. Keys missing from the file keep their
// defaults.
func (l *Loader) Load() (*Config, error) {
	merged := make(map[string]any)
	if l.path != "" {
		file, err := l.toml.LoadFrom(l.path)
		if err != nil {
			return nil, err
		}
		merged = DeepMerge(merged, file)
	}
	if l.env != nil {
		merged = DeepMerge(merged, l.env.Load())
	}

	cfg := Default()
	if err := decode(merged, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads path with the OS file system and environment.
func Load(path string) (*Config, error) {
	return NewLoader(path).Load()
}

func decode(m map[string]any, cfg *Config) error {
	if len(m) == 0 {
		return nil
	}
	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode merged config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

// Validate checks values that decoding cannot.
func (c *Config) Validate() error {
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.Link.Decorators))
	for _, d := range c.Link.Decorators {
		if d.ID == "" {
			return fmt.Errorf("%w: missing id", ErrInvalidDecorator)
		}
		if seen[d.ID] {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidDecorator, d.ID)
		}
		seen[d.ID] = true
	}
	return nil
}
