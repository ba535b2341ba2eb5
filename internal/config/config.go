package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dshills/glance/internal/config/loader"
)

// EnvPrefix is the prefix of environment variables read as configuration.
const EnvPrefix = "GLANCE_"

// Config is the typed, merged configuration.
type Config struct {
	Log  LogConfig
	View ViewConfig
	Keys KeysConfig

	// Path is the config file that was loaded, if any.
	Path string
}

// LogConfig configures logging.
type LogConfig struct {
	Level string // debug, info, warn or error
	File  string // Empty disables logging
}

// ViewConfig configures what the viewer draws.
type ViewConfig struct {
	Filler string // Marker for rows past the end of the document
	Banner string // Empty selects the built-in banner
}

// KeysConfig configures key bindings.
type KeysConfig struct {
	WASD bool     // Bind w/a/s/d as arrow aliases
	Quit []string // Single characters that quit
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := FromMap(defaultConfig())
	if err != nil {
		panic(err)
	}
	return cfg
}

// defaultConfig returns the default configuration values.
func defaultConfig() map[string]any {
	return map[string]any{
		"log": map[string]any{
			"level": "info",
			"file":  "",
		},
		"view": map[string]any{
			"filler": "~",
			"banner": "",
		},
		"keys": map[string]any{
			"wasd": true,
			"quit": []any{"q"},
		},
	}
}

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// Path is the config file to read. If empty, the default user config
	// file is used when it exists.
	Path string

	// FS is the file system to read from. Defaults to the OS.
	FS loader.FileSystem

	// Env overrides the environment variable source.
	Env loader.Loader

	// Overrides is the highest-priority layer, typically set from flags.
	Overrides map[string]any
}

// Load reads and merges all configuration layers.
func Load(opts LoadOptions) (*Config, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = loader.DefaultFS()
	}

	merged := defaultConfig()

	path := opts.Path
	if path == "" {
		path = findDefaultFile(fsys)
	} else if _, err := fsys.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrFileNotFound)
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if path != "" {
		l, err := loader.ForFile(fsys, path)
		if err != nil {
			return nil, err
		}
		fileConfig, err := l.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, fileConfig)
	}

	env := opts.Env
	if env == nil {
		env = loader.NewEnvLoader(EnvPrefix)
	}
	envConfig, err := env.Load()
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	merged = loader.DeepMerge(merged, envConfig)
	merged = loader.DeepMerge(merged, loader.Clone(opts.Overrides))

	cfg, err := FromMap(merged)
	if err != nil {
		return nil, err
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultUserConfigDir returns the directory holding the user config file.
func DefaultUserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "glance")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "glance")
}

// findDefaultFile returns the first existing default config file.
func findDefaultFile(fsys loader.FileSystem) string {
	dir := DefaultUserConfigDir()
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(dir, name)
		if _, err := fsys.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// FromMap decodes a merged configuration tree. Unknown keys are ignored.
func FromMap(m map[string]any) (*Config, error) {
	var (
		cfg Config
		err error
	)
	if cfg.Log.Level, err = getString(m, "log.level"); err != nil {
		return nil, err
	}
	if cfg.Log.File, err = getString(m, "log.file"); err != nil {
		return nil, err
	}
	if cfg.View.Filler, err = getString(m, "view.filler"); err != nil {
		return nil, err
	}
	if cfg.View.Banner, err = getString(m, "view.banner"); err != nil {
		return nil, err
	}
	if cfg.Keys.WASD, err = getBool(m, "keys.wasd"); err != nil {
		return nil, err
	}
	if cfg.Keys.Quit, err = getStringSlice(m, "keys.quit"); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every setting holds an acceptable value.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "log.level", Message: "must be one of debug, info, warn, error", Value: c.Log.Level}
	}

	if utf8.RuneCountInString(c.View.Filler) != 1 {
		return &ValidationError{Path: "view.filler", Message: "must be a single character", Value: c.View.Filler}
	}

	for _, q := range c.Keys.Quit {
		if utf8.RuneCountInString(q) != 1 {
			return &ValidationError{Path: "keys.quit", Message: "entries must be single characters", Value: q}
		}
	}

	return nil
}

// QuitRunes returns the quit keys as runes.
func (c *Config) QuitRunes() []rune {
	out := make([]rune, 0, len(c.Keys.Quit))
	for _, q := range c.Keys.Quit {
		r, _ := utf8.DecodeRuneInString(q)
		out = append(out, r)
	}
	return out
}

func getString(m map[string]any, path string) (string, error) {
	v, ok := loader.GetByPath(m, path)
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

func getBool(m map[string]any, path string) (bool, error) {
	v, ok := loader.GetByPath(m, path)
	if !ok || v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
	}
	return b, nil
}

func getStringSlice(m map[string]any, path string) ([]string, error) {
	v, ok := loader.GetByPath(m, path)
	if !ok || v == nil {
		return nil, nil
	}

	switch val := v.(type) {
	case []string:
		return val, nil
	case string:
		return []string{val}, nil
	case []any:
		result := make([]string, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, &TypeError{Path: path, Expected: "[]string", Actual: typeName(v)}
			}
			result[i] = s
		}
		return result, nil
	default:
		return nil, &TypeError{Path: path, Expected: "[]string", Actual: typeName(v)}
	}
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
