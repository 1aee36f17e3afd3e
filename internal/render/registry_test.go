package render

import (
	"errors"
	"sort"
	"testing"

	"github.com/stubforge/stubforge/pkg/spec"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry returned nil")
	}

	expected := []string{"jest", "junit", "mocha", "pytest", "unittest"}
	got := r.List()

	if len(got) != len(expected) {
		t.Errorf("expected %d renderers, got %d", len(expected), len(got))
	}
	for _, name := range expected {
		if _, err := r.Resolve(spec.Framework(name)); err != nil {
			t.Errorf("renderer %s not found: %v", name, err)
		}
	}
}

func TestRegistry_List_Sorted(t *testing.T) {
	r := NewRegistry()
	names := r.List()
	if !sort.StringsAreSorted(names) {
		t.Errorf("List() not sorted: %v", names)
	}
}

func TestRegistry_Resolve_Unsupported(t *testing.T) {
	r := NewRegistry()

	_, err := r.Resolve("nope")
	if err == nil {
		t.Fatal("expected error for unregistered framework")
	}

	var unsupported *UnsupportedFrameworkError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedFrameworkError, got %T", err)
	}
	if unsupported.Framework != "nope" {
		t.Errorf("Framework = %q, want nope", unsupported.Framework)
	}
	if len(unsupported.Registered) != 5 {
		t.Errorf("Registered = %v, want all five built-ins", unsupported.Registered)
	}
}

func TestRegistry_Register_Overwrites(t *testing.T) {
	r := NewRegistry()

	custom := &PytestRenderer{Now: fixedClock}
	r.Register(custom)

	resolved, err := r.Resolve(spec.FrameworkPytest)
	if err != nil {
		t.Fatal(err)
	}
	if resolved != custom {
		t.Error("Register did not overwrite the pytest renderer")
	}
	if len(r.List()) != 5 {
		t.Errorf("overwrite changed registry size: %v", r.List())
	}
}

func TestRegistry_ResolveForLanguage(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		language string
		wantErr  bool
	}{
		{"python", false},
		{"javascript", false},
		{"java", false},
		{"cobol", true},
	}

	for _, tt := range tests {
		rr, err := r.ResolveForLanguage(spec.Language(tt.language))
		if tt.wantErr {
			if err == nil {
				t.Errorf("ResolveForLanguage(%s) expected error", tt.language)
			}
			continue
		}
		if err != nil {
			t.Errorf("ResolveForLanguage(%s) error: %v", tt.language, err)
			continue
		}
		if rr.Language() != tt.language {
			t.Errorf("ResolveForLanguage(%s) returned renderer for %s", tt.language, rr.Language())
		}
	}
}

func TestRegistry_Generate_ValidatesSpec(t *testing.T) {
	r := NewRegistry()

	_, err := r.Generate(spec.Spec{Framework: spec.FrameworkPytest, SubjectName: "   "})
	var invalid *spec.InvalidSpecificationError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidSpecificationError, got %v", err)
	}
}

func TestRegistry_Generate_DefaultsTestType(t *testing.T) {
	r := NewRegistry()

	out, err := r.Generate(spec.Spec{
		Framework:   spec.FrameworkPytest,
		SubjectName: "Sample",
		Members:     []string{"doThing"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !contains(out, "Generated unit tests") {
		t.Errorf("omitted test type did not default to unit:\n%s", out)
	}
}
