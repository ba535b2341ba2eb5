package config

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/dshills/glance/internal/config/loader"
)

type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	s, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(s), nil
}

func (m memFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m[path]; !ok {
		return nil, fs.ErrNotExist
	}
	return fileInfo(path), nil
}

type fileInfo string

func (f fileInfo) Name() string       { return string(f) }
func (f fileInfo) Size() int64        { return 0 }
func (f fileInfo) Mode() fs.FileMode  { return 0644 }
func (f fileInfo) ModTime() time.Time { return time.Time{} }
func (f fileInfo) IsDir() bool        { return false }
func (f fileInfo) Sys() any           { return nil }

type envMap map[string]any

func (e envMap) Load() (map[string]any, error) {
	out := make(map[string]any)
	for path, v := range e {
		loader.SetByPath(out, path, v)
	}
	return out, nil
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Log.Level != "info" || cfg.Log.File != "" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.View.Filler != "~" || cfg.View.Banner != "" {
		t.Errorf("View = %+v", cfg.View)
	}
	if !cfg.Keys.WASD {
		t.Error("WASD should be on by default")
	}
	if got := cfg.QuitRunes(); len(got) != 1 || got[0] != 'q' {
		t.Errorf("QuitRunes = %q", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadLayers(t *testing.T) {
	fsys := memFS{
		"/etc/glance.toml": `
[log]
level = "debug"
file = "/tmp/file.log"

[view]
filler = "·"

[keys]
quit = ["q", "x"]
`,
	}

	cfg, err := Load(LoadOptions{
		Path: "/etc/glance.toml",
		FS:   fsys,
		Env:  envMap{"log.file": "/tmp/env.log", "keys.wasd": false},
		Overrides: map[string]any{
			"log": map[string]any{"level": "error"},
		},
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Path != "/etc/glance.toml" {
		t.Errorf("Path = %q", cfg.Path)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("flag override lost: level = %q", cfg.Log.Level)
	}
	if cfg.Log.File != "/tmp/env.log" {
		t.Errorf("env should override file: %q", cfg.Log.File)
	}
	if cfg.View.Filler != "·" {
		t.Errorf("filler = %q", cfg.View.Filler)
	}
	if cfg.Keys.WASD {
		t.Error("env should disable wasd")
	}
	if got := cfg.QuitRunes(); len(got) != 2 || got[1] != 'x' {
		t.Errorf("QuitRunes = %q", got)
	}
}

func TestLoadYAML(t *testing.T) {
	fsys := memFS{"/c.yaml": "view:\n  banner: hello\n"}

	cfg, err := Load(LoadOptions{Path: "/c.yaml", FS: fsys, Env: envMap{}})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.View.Banner != "hello" {
		t.Errorf("banner = %q", cfg.View.Banner)
	}
	if cfg.View.Filler != "~" {
		t.Errorf("defaults should survive: filler = %q", cfg.View.Filler)
	}
}

func TestLoadNoFile(t *testing.T) {
	cfg, err := Load(LoadOptions{FS: memFS{}, Env: envMap{}})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty", cfg.Path)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("level = %q", cfg.Log.Level)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		fsys   memFS
		target error
	}{
		{"missing file", "/missing.toml", memFS{}, ErrFileNotFound},
		{"unsupported", "/c.json", memFS{"/c.json": "{}"}, loader.ErrUnsupportedFormat},
		{"type mismatch", "/c.toml", memFS{"/c.toml": "[keys]\nwasd = \"yes\"\n"}, ErrTypeMismatch},
		{"bad level", "/c.toml", memFS{"/c.toml": "[log]\nlevel = \"loud\"\n"}, ErrValidationFailed},
		{"bad filler", "/c.toml", memFS{"/c.toml": "[view]\nfiller = \"--\"\n"}, ErrValidationFailed},
		{"bad quit", "/c.toml", memFS{"/c.toml": "[keys]\nquit = [\"qq\"]\n"}, ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(LoadOptions{Path: tt.path, FS: tt.fsys, Env: envMap{}})
			if !errors.Is(err, tt.target) {
				t.Errorf("err = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestLoadParseError(t *testing.T) {
	fsys := memFS{"/c.toml": "[log\n"}
	_, err := Load(LoadOptions{Path: "/c.toml", FS: fsys, Env: envMap{}})

	var perr *loader.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *loader.ParseError", err)
	}
}

func TestFromMapQuitString(t *testing.T) {
	cfg, err := FromMap(map[string]any{
		"keys": map[string]any{"quit": "x"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Keys.Quit) != 1 || cfg.Keys.Quit[0] != "x" {
		t.Errorf("Quit = %v", cfg.Keys.Quit)
	}
}

func TestTypeErrorMessage(t *testing.T) {
	err := &TypeError{Path: "keys.wasd", Expected: "bool", Actual: "string"}
	if err.Error() != "type error for keys.wasd: expected bool, got string" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestDefaultUserConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := DefaultUserConfigDir(); got != "/xdg/glance" {
		t.Errorf("DefaultUserConfigDir = %q", got)
	}
}
