package render

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stubforge/stubforge/pkg/spec"
)

// fixedClock pins the header timestamp so output comparisons are stable.
func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}

// timestampPattern matches the RFC3339 value embedded in headers. The
// timestamp is informational; any check on generated output must strip or
// ignore it.
var timestampPattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z`)

func stripTimestamp(s string) string {
	return timestampPattern.ReplaceAllString(s, "<ts>")
}

// fixedRegistry returns a registry whose renderers all use the fixed clock.
func fixedRegistry() *Registry {
	r := NewRegistry()
	r.Register(&PytestRenderer{Now: fixedClock})
	r.Register(&UnittestRenderer{Now: fixedClock})
	r.Register(&JestRenderer{Now: fixedClock})
	r.Register(&MochaRenderer{Now: fixedClock})
	r.Register(&JUnitRenderer{Now: fixedClock})
	return r
}

// Every registered framework must render a minimal spec with its import
// marker, a container derived from the subject, and exactly one test unit
// for the single member.
func TestFrameworkCoverage(t *testing.T) {
	r := fixedRegistry()

	tests := []struct {
		framework    string
		importMarker string
		container    string
		unitName     string
	}{
		{"pytest", "import pytest", "class TestSample:", "def test_do_thing(self):"},
		{"unittest", "import unittest", "class TestSample(unittest.TestCase):", "def test_do_thing(self):"},
		{"jest", "require(", "describe('Sample'", "test('should doThing correctly'"},
		{"mocha", "require('assert')", "describe('Sample'", "it('should doThing correctly'"},
		{"junit", "import org.junit.jupiter.api.Test;", "public class SampleTest {", "void testDoThing() {"},
	}

	for _, tt := range tests {
		t.Run(tt.framework, func(t *testing.T) {
			out, err := r.Generate(spec.Spec{
				Framework:   spec.Framework(tt.framework),
				TestType:    spec.TestTypeUnit,
				SubjectName: "Sample",
				Members:     []string{"doThing"},
			})
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			if !contains(out, tt.importMarker) {
				t.Errorf("missing import marker %q in:\n%s", tt.importMarker, out)
			}
			if !contains(out, tt.container) {
				t.Errorf("missing container %q in:\n%s", tt.container, out)
			}
			if n := strings.Count(out, tt.unitName); n != 1 {
				t.Errorf("expected exactly one unit %q, found %d in:\n%s", tt.unitName, n, out)
			}
		})
	}
}

// Two generations of the same spec must be byte-identical once the
// informational timestamp is normalized.
func TestDeterminism(t *testing.T) {
	s := spec.Spec{
		Framework:   spec.FrameworkJest,
		TestType:    spec.TestTypeUnit,
		SubjectName: "user service",
		Members:     []string{"create", "delete"},
		Setup:       []string{"const svc = new UserService();"},
	}

	for _, framework := range NewRegistry().List() {
		s.Framework = spec.Framework(framework)

		// Fresh registries with independent clocks; only the timestamp may
		// differ between the two runs.
		first, err := fixedRegistry().Generate(s)
		if err != nil {
			t.Fatalf("%s: %v", framework, err)
		}
		second, err := NewRegistry().Generate(s)
		if err != nil {
			t.Fatalf("%s: %v", framework, err)
		}

		if stripTimestamp(first) != stripTimestamp(second) {
			t.Errorf("%s: generation is not deterministic:\n--- first\n%s\n--- second\n%s",
				framework, stripTimestamp(first), stripTimestamp(second))
		}
	}
}

// Members are emitted in given order, never sorted or deduplicated.
func TestOrderingPreserved(t *testing.T) {
	r := fixedRegistry()

	out, err := r.Generate(spec.Spec{
		Framework:   spec.FrameworkPytest,
		TestType:    spec.TestTypeUnit,
		SubjectName: "Sample",
		Members:     []string{"b", "a", "c"},
	})
	if err != nil {
		t.Fatal(err)
	}

	posB := strings.Index(out, "def test_b(")
	posA := strings.Index(out, "def test_a(")
	posC := strings.Index(out, "def test_c(")
	if posB == -1 || posA == -1 || posC == -1 {
		t.Fatalf("missing test units in:\n%s", out)
	}
	if !(posB < posA && posA < posC) {
		t.Errorf("units out of order: b=%d a=%d c=%d", posB, posA, posC)
	}
}

func TestDuplicateMembersKept(t *testing.T) {
	r := fixedRegistry()

	out, err := r.Generate(spec.Spec{
		Framework:   spec.FrameworkPytest,
		TestType:    spec.TestTypeUnit,
		SubjectName: "Sample",
		Members:     []string{"add", "add"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, "def test_add(self):"); n != 2 {
		t.Errorf("expected 2 duplicate units, got %d", n)
	}
}

func TestOutputFileName(t *testing.T) {
	tests := []struct {
		framework string
		subject   string
		filename  string
		want      string
	}{
		{"pytest", "Calculator", "", "test_calculator.py"},
		{"unittest", "user service", "", "test_user_service.py"},
		{"jest", "UserService", "", "user-service.test.js"},
		{"mocha", "checkout flow", "", "checkout-flow.spec.js"},
		{"junit", "user service", "", "UserServiceTest.java"},
		{"pytest", "Calculator", "custom_tests.py", "custom_tests.py"},
	}

	r := NewRegistry()
	for _, tt := range tests {
		renderer, err := r.Resolve(spec.Framework(tt.framework))
		if err != nil {
			t.Fatal(err)
		}
		got := OutputFileName(renderer, spec.Spec{SubjectName: tt.subject, Filename: tt.filename})
		if got != tt.want {
			t.Errorf("OutputFileName(%s, %q) = %q, want %q", tt.framework, tt.subject, got, tt.want)
		}
	}
}
