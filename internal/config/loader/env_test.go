package loader

import (
	"testing"
)

func TestEnvLoader_Load(t *testing.T) {
	t.Setenv("GLANCE_LOG_LEVEL", "debug")
	t.Setenv("GLANCE_KEYS_WASD", "off")
	t.Setenv("GLANCE_KEYS_QUIT", "q, x,,")
	t.Setenv("GLANCE_VIEW_BANNER", "")
	t.Setenv("GLANCE_UNKNOWN", "ignored")

	config, err := NewEnvLoader("GLANCE_").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if v, _ := GetByPath(config, "log.level"); v != "debug" {
		t.Errorf("log.level = %v, want debug", v)
	}
	if v, _ := GetByPath(config, "keys.wasd"); v != false {
		t.Errorf("keys.wasd = %v (%T), want false", v, v)
	}
	quit, _ := GetByPath(config, "keys.quit")
	if items, ok := quit.([]any); !ok || len(items) != 2 || items[0] != "q" || items[1] != "x" {
		t.Errorf("keys.quit = %#v", quit)
	}
	if v, ok := GetByPath(config, "view.banner"); !ok || v != "" {
		t.Errorf("empty value should be kept, got %v, %v", v, ok)
	}
	if _, ok := config["unknown"]; ok {
		t.Error("unmapped variables should be ignored")
	}
}

func TestEnvLoader_AddMapping(t *testing.T) {
	l := NewEnvLoaderWithMapping("APP_", nil)
	l.AddMapping("APP_LOG_FILE", "log.file")
	l.environ = func() []string {
		return []string{"APP_LOG_FILE=/var/log/app.log", "OTHER=1", "malformed"}
	}

	config, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := GetByPath(config, "log.file"); v != "/var/log/app.log" {
		t.Errorf("log.file = %v", v)
	}
	if len(config) != 1 {
		t.Errorf("config = %v", config)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		path string
		in   string
		want any
	}{
		{"keys.wasd", "true", true},
		{"keys.wasd", "Yes", true},
		{"keys.wasd", "1", true},
		{"keys.wasd", "0", false},
		{"keys.wasd", "no", false},
		{"log.level", "info", "info"},
		{"log.level", "", ""},
	}

	for _, tt := range tests {
		if got := parseValue(tt.path, tt.in); got != tt.want {
			t.Errorf("parseValue(%q, %q) = %v, want %v", tt.path, tt.in, got, tt.want)
		}
	}
}
