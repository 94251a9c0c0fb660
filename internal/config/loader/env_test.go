package loader

import (
	"reflect"
	"testing"
)

func TestEnvLoader_Load(t *testing.T) {
	t.Setenv("SGTEST_LOG_LEVEL", "debug")
	t.Setenv("SGTEST_HISTORY_MAX_SIZE", "20")
	t.Setenv("SGTEST_METRICS_ENABLED", "yes")
	t.Setenv("SGTEST_DB", "/tmp/sg.db")

	config, err := NewEnvLoader("SGTEST_").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := map[string]any{
		"logging": map[string]any{"level": "debug"},
		"history": map[string]any{"maxSize": int64(20)},
		"metrics": map[string]any{"enabled": true},
		"storage": map[string]any{"path": "/tmp/sg.db"},
	}
	if !reflect.DeepEqual(config, want) {
		t.Errorf("Load() = %v, want %v", config, want)
	}
}

func TestEnvLoader_envToPath(t *testing.T) {
	loader := NewEnvLoader("SOFTGLOW_")

	tests := []struct {
		env      string
		expected string
	}{
		{"SOFTGLOW_HISTORY_MAX_SIZE", "history.maxSize"},
		{"SOFTGLOW_HISTORY_KEYBOARD_SHORTCUTS", "history.keyboardShortcuts"},
		{"SOFTGLOW_METRICS_ADDRESS", "metrics.address"},
		{"SOFTGLOW_SIMPLE", "simple"},
	}

	for _, tt := range tests {
		got := loader.envToPath(tt.env)
		if got != tt.expected {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.expected)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"true", true},
		{"YES", true},
		{"on", true},
		{"false", false},
		{"Off", false},
		{"1", int64(1)},
		{"42", int64(42)},
		{"-10", int64(-10)},
		{"3.14", 3.14},
		{`["a","b"]`, []any{"a", "b"}},
		{`{"key":"value"}`, map[string]any{"key": "value"}},
		{"[broken", "[broken"},
		{"both", "both"},
		{":9464", ":9464"},
		{"", ""},
	}

	for _, tt := range tests {
		got := parseValue(tt.input)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("parseValue(%q) = %v (%T), want %v (%T)",
				tt.input, got, got, tt.expected, tt.expected)
		}
	}
}

func TestEnvLoader_AddMapping(t *testing.T) {
	loader := NewEnvLoaderWithMapping("SGTEST2_", nil)
	loader.AddMapping("SGTEST_CUSTOM_VAR", "custom.path")
	t.Setenv("SGTEST_CUSTOM_VAR", "custom_value")

	config, _ := loader.Load()
	want := map[string]any{"custom": map[string]any{"path": "custom_value"}}
	if !reflect.DeepEqual(config, want) {
		t.Errorf("Load() = %v, want %v", config, want)
	}
}
