package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/stubforge/stubforge/pkg/spec"
)

// PytestRenderer generates pytest test classes.
type PytestRenderer struct {
	// Now overrides the header timestamp clock. Nil means time.Now.
	Now func() time.Time
}

func (r *PytestRenderer) Name() string          { return "pytest" }
func (r *PytestRenderer) Language() string      { return "python" }
func (r *PytestRenderer) FileExtension() string { return ".py" }

// Render produces a complete pytest file for a spec.
func (r *PytestRenderer) Render(s spec.Spec) (string, error) {
	plan, err := buildPlan(s)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	// Header
	sb.WriteString(fmt.Sprintf("\"\"\"Generated %s tests for %s.\n\n", plan.TestType, plan.Subject))
	sb.WriteString(fmt.Sprintf("Generated by stubforge at %s.\n\"\"\"\n\n", timestamp(r.Now)))
	sb.WriteString("import pytest\n\n\n")

	// Container
	sb.WriteString(fmt.Sprintf("class Test%s:\n", toPascal(plan.Subject)))

	// Fixtures
	if len(plan.Setup) > 0 {
		sb.WriteString("    def setup_method(self):\n")
		writeLines(&sb, "        ", plan.Setup)
		sb.WriteString("\n")
	}
	if len(plan.Teardown) > 0 {
		sb.WriteString("    def teardown_method(self):\n")
		writeLines(&sb, "        ", plan.Teardown)
		sb.WriteString("\n")
	}

	for i, unit := range plan.Units {
		if i > 0 {
			sb.WriteString("\n")
		}
		r.emitUnit(&sb, unit)
	}

	return sb.String(), nil
}

func (r *PytestRenderer) emitUnit(sb *strings.Builder, unit unitPlan) {
	sb.WriteString(fmt.Sprintf("    def test_%s(self):\n", toSnake(unit.Name)))
	if unit.Description != "" {
		sb.WriteString(fmt.Sprintf("        \"\"\"%s\"\"\"\n", unit.Description))
	}

	for _, phase := range unit.Phases {
		sb.WriteString(fmt.Sprintf("        # %s\n", phase.Marker))
		if unit.Stub {
			r.emitStubPhase(sb, phase.Marker, unit.Name)
			continue
		}
		writeLines(sb, "        ", phase.Lines)
	}
}

func (r *PytestRenderer) emitStubPhase(sb *strings.Builder, marker, member string) {
	switch marker {
	case markerAct, markerWhen:
		sb.WriteString(fmt.Sprintf("        result = None  # TODO: call %s\n", member))
	case markerAssert, markerThen:
		sb.WriteString(fmt.Sprintf("        assert False, \"not implemented: %s\"\n", escapeDoubleQuotes(member)))
	}
}
