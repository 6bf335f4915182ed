package registry

import (
	"errors"
	"slices"
	"testing"

	"github.com/simonhull/boxtree/internal/binary"
	"github.com/simonhull/boxtree/internal/types"
)

func TestRegisterAndGet(t *testing.T) {
	// Use a name that's unlikely to conflict with real registrations
	called := false
	Register("test-always", func(binary.View) bool {
		called = true
		return true
	})

	got := Get("test-always")
	if got == nil {
		t.Fatal("Get() returned nil for registered heuristic")
	}

	if !got(binary.NewView(make([]byte, 16))) {
		t.Error("registered predicate should accept")
	}
	if !called {
		t.Error("Get() returned a different predicate")
	}
}

func TestGet_Unregistered(t *testing.T) {
	if got := Get("definitely-not-registered"); got != nil {
		t.Error("Get() returned a predicate for an unregistered name")
	}
}

func TestLookup_Unregistered(t *testing.T) {
	_, err := Lookup("definitely-not-registered")

	var uhe *types.UnknownHeuristicError
	if !errors.As(err, &uhe) {
		t.Fatalf("expected UnknownHeuristicError, got %v", err)
	}
}

func TestRegister_Replaces(t *testing.T) {
	Register("test-replace", func(binary.View) bool { return false })
	Register("test-replace", func(binary.View) bool { return true })

	p, err := Lookup("test-replace")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p(binary.NewView(nil)) {
		t.Error("second registration should win")
	}
}

func TestNames_Sorted(t *testing.T) {
	Register("test-zz", func(binary.View) bool { return false })
	Register("test-aa", func(binary.View) bool { return false })

	names := Names()
	if !slices.IsSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	if !slices.Contains(names, "test-aa") || !slices.Contains(names, "test-zz") {
		t.Errorf("Names() missing registrations: %v", names)
	}
}
