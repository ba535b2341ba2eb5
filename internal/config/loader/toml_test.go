package loader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Now() }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/glance.toml", `
[log]
level = "debug"

[view]
filler = "·"

[keys]
wasd = false
quit = ["q", "x"]
`)

	config, err := NewTOMLLoaderWithFS(memfs, "/glance.toml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if v, _ := GetByPath(config, "log.level"); v != "debug" {
		t.Errorf("log.level = %v, want debug", v)
	}
	if v, _ := GetByPath(config, "view.filler"); v != "·" {
		t.Errorf("view.filler = %v, want ·", v)
	}
	if v, _ := GetByPath(config, "keys.wasd"); v != false {
		t.Errorf("keys.wasd = %v (%T), want false", v, v)
	}
	quit, _ := GetByPath(config, "keys.quit")
	if items, ok := quit.([]any); !ok || len(items) != 2 || items[1] != "x" {
		t.Errorf("keys.quit = %v (%T)", quit, quit)
	}
}

func TestTOMLLoader_Missing(t *testing.T) {
	config, err := NewTOMLLoaderWithFS(NewMemFS(), "/nope.toml").Load()
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if config != nil {
		t.Errorf("config = %v, want nil", config)
	}
}

func TestTOMLLoader_ParseError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.toml", "[log]\nlevel = \n")

	_, err := NewTOMLLoaderWithFS(memfs, "/bad.toml").Load()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if perr.Path != "/bad.toml" {
		t.Errorf("Path = %q", perr.Path)
	}
	if perr.Line < 1 {
		t.Errorf("Line = %d, want a position", perr.Line)
	}
	if !strings.Contains(err.Error(), "/bad.toml") {
		t.Errorf("message should name the file: %v", err)
	}
}

func TestTOMLLoader_LoadFromReader(t *testing.T) {
	config, err := NewTOMLLoader("").LoadFromReader(strings.NewReader("[view]\nbanner = \"hi\"\n"))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if v, _ := GetByPath(config, "view.banner"); v != "hi" {
		t.Errorf("view.banner = %v", v)
	}
}

func TestForFile(t *testing.T) {
	memfs := NewMemFS()

	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"/a.toml", "*loader.TOMLLoader", false},
		{"/a.TOML", "*loader.TOMLLoader", false},
		{"/a.yaml", "*loader.YAMLLoader", false},
		{"/a.yml", "*loader.YAMLLoader", false},
		{"/a.json", "", true},
		{"/a", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			l, err := ForFile(memfs, tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("err = %v, want ErrUnsupportedFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ForFile: %v", err)
			}
			switch l.(type) {
			case *TOMLLoader:
				if tt.want != "*loader.TOMLLoader" {
					t.Errorf("got TOML loader for %s", tt.path)
				}
			case *YAMLLoader:
				if tt.want != "*loader.YAMLLoader" {
					t.Errorf("got YAML loader for %s", tt.path)
				}
			}
		})
	}
}
