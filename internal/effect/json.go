package effect

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Errors returned by the JSON helpers.
var (
	ErrInvalidJSON = errors.New("invalid JSON")
	ErrNotObject   = errors.New("JSON value is not an object")
	ErrUnknownPath = errors.New("unknown state path")
)

// sectionAliases maps short section names to their JSON names.
var sectionAliases = map[string]string{
	"glow":     "glowSettings",
	"blur":     "blurSettings",
	"glass":    "glassSettings",
	"neomorph": "neomorphSettings",
	"clay":     "claySettings",
	"effects":  "activeEffects",
	"theme":    "themeMode",
	"power":    "powerOn",
}

// Export encodes s as indented JSON.
func Export(s State) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("export state: %w", err)
	}
	return pretty.Pretty(data), nil
}

// Import decodes a state document. Keys present in data override the
// defaults field by field; unknown keys are ignored.
func Import(data []byte) (State, error) {
	return Merge(Default(), data)
}

// Merge applies the JSON object patch to s. Nested objects are merged key by
// key, every other value replaces the one in s.
func Merge(s State, patch []byte) (State, error) {
	if !gjson.ValidBytes(patch) {
		return s, ErrInvalidJSON
	}
	obj := gjson.ParseBytes(patch)
	if !obj.IsObject() {
		return s, ErrNotObject
	}

	base, err := json.Marshal(s)
	if err != nil {
		return s, fmt.Errorf("merge state: %w", err)
	}
	base, err = mergeObject(base, "", obj)
	if err != nil {
		return s, fmt.Errorf("merge state: %w", err)
	}
	return decode(base, s)
}

// SetPath assigns value to the field at a dot separated path such as
// "glowSettings.hue". The first segment may use a short section name like
// "glow". The path must name an existing field.
func SetPath(s State, path string, value any) (State, error) {
	path = resolvePath(path)

	base, err := json.Marshal(s)
	if err != nil {
		return s, fmt.Errorf("set %s: %w", path, err)
	}
	if !gjson.GetBytes(base, path).Exists() {
		return s, fmt.Errorf("%w: %s", ErrUnknownPath, path)
	}
	base, err = sjson.SetBytes(base, path, value)
	if err != nil {
		return s, fmt.Errorf("set %s: %w", path, err)
	}
	return decode(base, s)
}

// Get returns the value at a dot separated path.
func Get(s State, path string) (gjson.Result, bool) {
	data, err := json.Marshal(s)
	if err != nil {
		return gjson.Result{}, false
	}
	res := gjson.GetBytes(data, resolvePath(path))
	return res, res.Exists()
}

func resolvePath(path string) string {
	head, rest, found := strings.Cut(path, ".")
	if alias, ok := sectionAliases[head]; ok {
		head = alias
	}
	if !found {
		return head
	}
	return head + "." + rest
}

func mergeObject(base []byte, prefix string, obj gjson.Result) ([]byte, error) {
	var err error
	obj.ForEach(func(key, value gjson.Result) bool {
		path := escapeKey(key.String())
		if prefix != "" {
			path = prefix + "." + path
		}
		current := gjson.GetBytes(base, path)
		if value.IsObject() && current.IsObject() {
			base, err = mergeObject(base, path, value)
		} else {
			base, err = sjson.SetRawBytes(base, path, []byte(value.Raw))
		}
		return err == nil
	})
	return base, err
}

func escapeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// decode unmarshals data into a fresh state, returning fallback on error.
func decode(data []byte, fallback State) (State, error) {
	var out State
	if err := json.Unmarshal(data, &out); err != nil {
		return fallback, fmt.Errorf("decode state: %w", err)
	}
	return Normalize(out), nil
}
