package script

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/softglow/internal/colormath"
	"github.com/dshills/softglow/internal/effect"
)

// Transform is a compiled script that defines
//
//	function transform(state) ... end
//
// The function receives the effect state as a table using the JSON field
// names and returns a table of changes, which is merged into the state.
// Returning nil leaves the state unchanged.
type Transform struct {
	name  string
	state *State
}

// Compile loads source into a fresh sandbox.
func Compile(name, source string, opts ...StateOption) (*Transform, error) {
	s := NewState(opts...)
	s.RegisterModule("color", colorModule)

	if err := s.DoString(source); err != nil {
		s.Close()
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	if s.GetGlobal("transform").Type() != lua.LTFunction {
		s.Close()
		return nil, fmt.Errorf("compile %s: %w", name, ErrNoTransform)
	}
	return &Transform{name: name, state: s}, nil
}

// Load compiles the script at path. The transform is named after the file
// without its extension.
func Load(path string, opts ...StateOption) (*Transform, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Compile(name, string(data), opts...)
}

// Name returns the script name.
func (t *Transform) Name() string {
	return t.name
}

// Apply runs the transform against s.
func (t *Transform) Apply(s effect.State) (effect.State, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return s, err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return s, err
	}

	results, err := t.state.Call("transform", toLua(t.state.L, doc))
	if err != nil {
		return s, err
	}
	if len(results) == 0 || results[0] == lua.LNil {
		return s, nil
	}
	tbl, ok := results[0].(*lua.LTable)
	if !ok {
		return s, fmt.Errorf("%w, got %s", ErrBadResult, results[0].Type())
	}

	patch, err := json.Marshal(toGo(tbl))
	if err != nil {
		return s, err
	}
	return effect.Merge(s, patch)
}

// Close releases the script's Lua state.
func (t *Transform) Close() error {
	return t.state.Close()
}

// colorModule exposes color conversions to scripts as the global "color".
var colorModule = map[string]lua.LGFunction{
	"hex_to_oklch": func(L *lua.LState) int {
		c := colormath.HexToOklch(L.CheckString(1))
		L.Push(lua.LNumber(c.L))
		L.Push(lua.LNumber(c.C))
		L.Push(lua.LNumber(c.H))
		return 3
	},
	"oklch_to_hex": func(L *lua.LState) int {
		l := float64(L.CheckNumber(1))
		c := float64(L.CheckNumber(2))
		h := float64(L.CheckNumber(3))
		L.Push(lua.LString(colormath.OklchToHex(l, c, h)))
		return 1
	},
	"is_hex": func(L *lua.LState) int {
		L.Push(lua.LBool(colormath.IsHex(L.CheckString(1))))
		return 1
	},
}
