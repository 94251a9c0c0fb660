package app

import (
	"errors"
	"testing"
)

func TestOperationError(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{"op only", NewOperationError("export", "", base), "export: boom"},
		{"with target", NewOperationError("import", "a.json", base), "import a.json: boom"},
		{"with context", NewOperationError("script", "x.lua", base).WithContext("line 3"), "script x.lua (line 3): boom"},
		{"no cause", NewOperationError("export", "", nil), "export"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}

	if !errors.Is(NewOperationError("import", "a", base), base) {
		t.Error("OperationError should unwrap to its cause")
	}

	var nilErr *OperationError
	if nilErr.WithContext("x") != nil {
		t.Error("WithContext on nil should return nil")
	}
	if nilErr.Error() != "" {
		t.Error("Error on nil should be empty")
	}
}

func TestInitError(t *testing.T) {
	base := errors.New("locked")
	err := &InitError{Component: "storage", Err: base}

	if err.Error() != "init storage: locked" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("InitError should unwrap to its cause")
	}
}

func TestErrorList(t *testing.T) {
	var list ErrorList
	if list.AsError() != nil {
		t.Fatal("empty list should be nil")
	}

	list.Add(nil)
	if list.Len() != 0 {
		t.Fatal("nil errors should be ignored")
	}

	first := errors.New("first")
	list.Add(first)
	if list.Error() != "first" {
		t.Errorf("Error() = %q", list.Error())
	}

	list.Add(ErrClosed)
	if list.Error() != "2 errors: first: first" {
		t.Errorf("Error() = %q", list.Error())
	}

	err := list.AsError()
	if !errors.Is(err, first) || !errors.Is(err, ErrClosed) {
		t.Error("ErrorList should expose every error")
	}
}
