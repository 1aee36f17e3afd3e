// Package spec defines the Specification - the normalized description of
// one test-generation request. A Specification is built programmatically or
// parsed from a JSON document, validated once, handed to a renderer, and
// discarded. It is never mutated after construction.
package spec

import (
	"fmt"
	"strings"
)

// Framework identifies a target test framework. The set of valid frameworks
// is owned by the render registry, not by this type; any string is
// representable here and resolution fails later for unregistered values.
type Framework string

const (
	FrameworkPytest   Framework = "pytest"
	FrameworkUnittest Framework = "unittest"
	FrameworkJest     Framework = "jest"
	FrameworkMocha    Framework = "mocha"
	FrameworkJUnit    Framework = "junit"
)

// Language identifies the surface syntax of the generated file. It selects
// comment and import style only; no semantic analysis happens anywhere.
type Language string

const (
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "javascript"
	LanguageJava       Language = "java"
)

// TestType determines which structural template applies.
type TestType string

const (
	TestTypeUnit        TestType = "unit"
	TestTypeIntegration TestType = "integration"
	TestTypeE2E         TestType = "e2e"
	TestTypeAPI         TestType = "api"
)

// TestCase carries caller-supplied literal phase content for one test unit
// (explicit mode). Lines are emitted verbatim under their phase marker.
type TestCase struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Setup       []string `json:"setup,omitempty"`
	Act         []string `json:"act,omitempty"`
	Assertions  []string `json:"assertions,omitempty"`
	Teardown    []string `json:"teardown,omitempty"`
}

// Scenario is the behavior-style counterpart of TestCase, using BDD phase
// names. Scenarios target e2e specs.
type Scenario struct {
	Name        string   `json:"scenario"`
	Description string   `json:"description,omitempty"`
	Given       []string `json:"given,omitempty"`
	When        []string `json:"when,omitempty"`
	Then        []string `json:"then,omitempty"`
}

// Spec is one generation request. A Spec owns either TestCases or Scenarios,
// never both. With neither present, generation runs in generic mode and
// produces one failing stub per member.
type Spec struct {
	Framework   Framework  `json:"framework"`
	Language    Language   `json:"language,omitempty"`
	TestType    TestType   `json:"test_type"`
	SubjectName string     `json:"subject_name"`
	Members     []string   `json:"members,omitempty"`
	Setup       []string   `json:"setup,omitempty"`
	Teardown    []string   `json:"teardown,omitempty"`
	TestCases   []TestCase `json:"test_cases,omitempty"`
	Scenarios   []Scenario `json:"scenarios,omitempty"`

	// Filename overrides the derived output file name when set.
	Filename string `json:"filename,omitempty"`
}

// InvalidSpecificationError reports malformed or incomplete input. It is
// always surfaced to the caller, never recovered silently.
type InvalidSpecificationError struct {
	Field   string
	Message string
}

func (e *InvalidSpecificationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid specification: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid specification: %s", e.Message)
}

var validTestTypes = map[TestType]bool{
	TestTypeUnit:        true,
	TestTypeIntegration: true,
	TestTypeE2E:         true,
	TestTypeAPI:         true,
}

// Normalize applies the documented defaults in place. An omitted test type
// becomes unit; it is never inferred from content.
func (s *Spec) Normalize() {
	if s.TestType == "" {
		s.TestType = TestTypeUnit
	}
}

// Validate checks structural rules. Framework registration is deliberately
// not checked here; the registry reports UnsupportedFrameworkError with the
// registered set at resolve time.
func (s *Spec) Validate() error {
	if strings.TrimSpace(s.SubjectName) == "" {
		return &InvalidSpecificationError{Field: "subject_name", Message: "must not be empty"}
	}
	if s.Framework == "" {
		return &InvalidSpecificationError{Field: "framework", Message: "must not be empty"}
	}
	if len(s.TestCases) > 0 && len(s.Scenarios) > 0 {
		return &InvalidSpecificationError{
			Field:   "test_cases",
			Message: "test_cases and scenarios are mutually exclusive",
		}
	}
	if s.TestType != "" && !validTestTypes[s.TestType] {
		return &InvalidSpecificationError{
			Field:   "test_type",
			Message: fmt.Sprintf("unknown test type %q", s.TestType),
		}
	}
	return nil
}

// Explicit reports whether the spec carries caller-supplied phase content.
func (s *Spec) Explicit() bool {
	return len(s.TestCases) > 0 || len(s.Scenarios) > 0
}
