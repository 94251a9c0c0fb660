package loader

import (
	"errors"
	"reflect"
	"testing"
	"testing/fstest"
)

func TestYAMLLoader(t *testing.T) {
	fsys := MapFS{FS: fstest.MapFS{
		"config.yaml": {Data: []byte("history:\n  maxSize: 25\n  modifier: ctrl\nmetrics:\n  enabled: true\n")},
		"bad.yaml":    {Data: []byte("history: [unclosed\n")},
	}}

	config, err := NewYAMLLoaderWithFS(fsys, "config.yaml").Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := map[string]any{
		"history": map[string]any{"maxSize": 25, "modifier": "ctrl"},
		"metrics": map[string]any{"enabled": true},
	}
	if !reflect.DeepEqual(config, want) {
		t.Errorf("Load() = %v, want %v", config, want)
	}

	config, err = NewYAMLLoaderWithFS(fsys, "missing.yaml").Load()
	if err != nil || config != nil {
		t.Errorf("Load(missing) = %v, %v; want nil, nil", config, err)
	}

	config, err = NewYAMLLoaderWithFS(fsys, "").Load()
	if err != nil || config != nil {
		t.Errorf("Load(\"\") = %v, %v; want nil, nil", config, err)
	}

	_, err = NewYAMLLoaderWithFS(fsys, "bad.yaml").Load()
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Load(bad) error = %v, want *ParseError", err)
	}
	if pe.Path != "bad.yaml" {
		t.Errorf("ParseError.Path = %q, want bad.yaml", pe.Path)
	}
}
