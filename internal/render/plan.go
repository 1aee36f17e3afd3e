package render

import (
	"fmt"

	"github.com/stubforge/stubforge/pkg/spec"
)

// Phase markers shared by all renderers.
const (
	markerArrange = "Arrange"
	markerAct     = "Act"
	markerAssert  = "Assert"
	markerCleanup = "Cleanup"
	markerGiven   = "Given"
	markerWhen    = "When"
	markerThen    = "Then"
)

// filePlan is the framework-neutral shape of one generated file. Renderers
// serialize a plan into their own syntax; all mode resolution, ordering, and
// mismatch checking happens here exactly once.
type filePlan struct {
	Subject  string
	TestType spec.TestType
	Setup    []string
	Teardown []string
	Units    []unitPlan
}

// unitPlan is one test unit. Stub units carry empty phase lines and the
// renderer substitutes its placeholder statement and failing assertion;
// explicit units carry literal lines emitted verbatim.
type unitPlan struct {
	Name        string
	Description string
	Phases      []phasePlan
	Stub        bool
}

type phasePlan struct {
	Marker string
	Lines  []string
}

// buildPlan resolves a spec into a plan. Members, cases, and scenarios keep
// their given order; duplicates are kept so a caller's input error surfaces
// as colliding test names rather than being masked.
func buildPlan(s spec.Spec) (*filePlan, error) {
	plan := &filePlan{
		Subject:  s.SubjectName,
		TestType: s.TestType,
		Setup:    s.Setup,
		Teardown: s.Teardown,
	}

	switch {
	case len(s.Scenarios) > 0:
		if s.TestType != spec.TestTypeE2E {
			return nil, &TemplateMismatchError{
				Field:   "scenarios",
				Message: fmt.Sprintf("scenarios require test type %q, got %q", spec.TestTypeE2E, s.TestType),
			}
		}
		for i, sc := range s.Scenarios {
			if sc.Name == "" {
				return nil, &TemplateMismatchError{
					Field:   fmt.Sprintf("scenarios[%d].scenario", i),
					Message: "scenario name is required",
				}
			}
			plan.Units = append(plan.Units, unitPlan{
				Name:        sc.Name,
				Description: sc.Description,
				Phases: []phasePlan{
					{Marker: markerGiven, Lines: sc.Given},
					{Marker: markerWhen, Lines: sc.When},
					{Marker: markerThen, Lines: sc.Then},
				},
			})
		}

	case len(s.TestCases) > 0:
		if s.TestType == spec.TestTypeE2E {
			return nil, &TemplateMismatchError{
				Field:   "test_cases",
				Message: fmt.Sprintf("test type %q takes scenarios, not test cases", spec.TestTypeE2E),
			}
		}
		for i, tc := range s.TestCases {
			if tc.Name == "" {
				return nil, &TemplateMismatchError{
					Field:   fmt.Sprintf("test_cases[%d].name", i),
					Message: "test case name is required",
				}
			}
			phases := []phasePlan{
				{Marker: markerArrange, Lines: tc.Setup},
				{Marker: markerAct, Lines: tc.Act},
				{Marker: markerAssert, Lines: tc.Assertions},
			}
			if len(tc.Teardown) > 0 {
				phases = append(phases, phasePlan{Marker: markerCleanup, Lines: tc.Teardown})
			}
			plan.Units = append(plan.Units, unitPlan{
				Name:        tc.Name,
				Description: tc.Description,
				Phases:      phases,
			})
		}

	default:
		members := s.Members
		if len(members) == 0 {
			// One generic initialization unit rather than an empty file, so
			// the generated suite always exercises at least one failing stub.
			members = []string{"initialization"}
		}
		for _, m := range members {
			plan.Units = append(plan.Units, unitPlan{
				Name:   m,
				Phases: stubPhases(s.TestType),
				Stub:   true,
			})
		}
	}

	return plan, nil
}

func stubPhases(t spec.TestType) []phasePlan {
	if t == spec.TestTypeE2E {
		return []phasePlan{
			{Marker: markerGiven},
			{Marker: markerWhen},
			{Marker: markerThen},
		}
	}
	return []phasePlan{
		{Marker: markerArrange},
		{Marker: markerAct},
		{Marker: markerAssert},
	}
}

// hasFixtures reports whether the plan needs a suite-level fixture block.
func (p *filePlan) hasFixtures() bool {
	return len(p.Setup) > 0 || len(p.Teardown) > 0
}
