package spec

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Document is a batch of generation requests parsed from one JSON file.
type Document struct {
	Specs []Spec
}

// lineList accepts either a JSON array of lines or a single string with
// embedded newlines. Older spec files use the string form.
type lineList []string

func (l *lineList) UnmarshalJSON(data []byte) error {
	var lines []string
	if err := json.Unmarshal(data, &lines); err == nil {
		*l = lines
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*l = nil
		return nil
	}
	*l = strings.Split(s, "\n")
	return nil
}

// rawDocument mirrors the batch JSON shape. Unknown keys are ignored.
type rawDocument struct {
	Framework string     `json:"framework"`
	Language  string     `json:"language"`
	Tests     []rawEntry `json:"tests"`
}

type rawEntry struct {
	Type        string        `json:"type"`
	Filename    string        `json:"filename"`
	ModuleName  string        `json:"moduleName"`
	FeatureName string        `json:"featureName"`
	Framework   string        `json:"framework"`
	Language    string        `json:"language"`
	Methods     []string      `json:"methods"`
	Setup       lineList      `json:"setup"`
	Cleanup     lineList      `json:"cleanup"`
	TestCases   []rawTestCase `json:"testCases"`
	Scenarios   []rawScenario `json:"scenarios"`
}

type rawTestCase struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Setup       lineList `json:"setup"`
	Act         lineList `json:"act"`
	Assertions  lineList `json:"assertions"`
	Teardown    lineList `json:"teardown"`
}

type rawScenario struct {
	Scenario    string   `json:"scenario"`
	Description string   `json:"description"`
	Given       lineList `json:"given"`
	When        lineList `json:"when"`
	Then        lineList `json:"then"`
}

// ParseDocument parses the batch document shape:
//
//	{"tests": [{"type", "filename", "moduleName"|"featureName",
//	            "setup", "cleanup", "testCases"|"scenarios"}, ...]}
//
// Framework and language set at the top level are inherited by entries that
// do not override them. Every returned spec is normalized and validated.
func ParseDocument(data []byte) (*Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &InvalidSpecificationError{Message: fmt.Sprintf("malformed JSON: %v", err)}
	}
	if len(raw.Tests) == 0 {
		return nil, &InvalidSpecificationError{Field: "tests", Message: "missing required key"}
	}

	doc := &Document{Specs: make([]Spec, 0, len(raw.Tests))}
	for i, entry := range raw.Tests {
		s, err := entry.toSpec(raw.Framework, raw.Language)
		if err != nil {
			return nil, fmt.Errorf("tests[%d]: %w", i, err)
		}
		doc.Specs = append(doc.Specs, *s)
	}
	return doc, nil
}

func (e *rawEntry) toSpec(defaultFramework, defaultLanguage string) (*Spec, error) {
	subject := e.ModuleName
	if subject == "" {
		subject = e.FeatureName
	}
	if subject == "" {
		return nil, &InvalidSpecificationError{
			Field:   "moduleName",
			Message: "missing required key (one of moduleName, featureName)",
		}
	}

	framework := e.Framework
	if framework == "" {
		framework = defaultFramework
	}
	language := e.Language
	if language == "" {
		language = defaultLanguage
	}

	s := &Spec{
		Framework:   Framework(framework),
		Language:    Language(language),
		TestType:    TestType(e.Type),
		SubjectName: subject,
		Members:     e.Methods,
		Setup:       e.Setup,
		Teardown:    e.Cleanup,
		Filename:    e.Filename,
	}
	for _, tc := range e.TestCases {
		s.TestCases = append(s.TestCases, TestCase{
			Name:        tc.Name,
			Description: tc.Description,
			Setup:       tc.Setup,
			Act:         tc.Act,
			Assertions:  tc.Assertions,
			Teardown:    tc.Teardown,
		})
	}
	for _, sc := range e.Scenarios {
		s.Scenarios = append(s.Scenarios, Scenario{
			Name:        sc.Scenario,
			Description: sc.Description,
			Given:       sc.Given,
			When:        sc.When,
			Then:        sc.Then,
		})
	}

	s.Normalize()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// rawSingle mirrors the flat single-suite shape.
type rawSingle struct {
	ClassName string        `json:"class_name"`
	Framework string        `json:"framework"`
	Language  string        `json:"language"`
	Type      string        `json:"test_type"`
	TestCases []rawTestCase `json:"test_cases"`
}

// ParseSingle parses the flat single-suite shape:
//
//	{"class_name": ..., "test_cases": [{"name", "description", "setup", "assertions"}]}
//
// The framework falls back to pytest when absent, matching the historical
// behavior of the flat format.
func ParseSingle(data []byte) (*Spec, error) {
	var raw rawSingle
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &InvalidSpecificationError{Message: fmt.Sprintf("malformed JSON: %v", err)}
	}
	if raw.ClassName == "" {
		return nil, &InvalidSpecificationError{Field: "class_name", Message: "missing required key"}
	}

	framework := raw.Framework
	if framework == "" {
		framework = string(FrameworkPytest)
	}

	s := &Spec{
		Framework:   Framework(framework),
		Language:    Language(raw.Language),
		TestType:    TestType(raw.Type),
		SubjectName: raw.ClassName,
	}
	for _, tc := range raw.TestCases {
		s.TestCases = append(s.TestCases, TestCase{
			Name:        tc.Name,
			Description: tc.Description,
			Setup:       tc.Setup,
			Act:         tc.Act,
			Assertions:  tc.Assertions,
			Teardown:    tc.Teardown,
		})
	}

	s.Normalize()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
