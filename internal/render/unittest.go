package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/stubforge/stubforge/pkg/spec"
)

// UnittestRenderer generates Python unittest.TestCase classes.
type UnittestRenderer struct {
	Now func() time.Time
}

func (r *UnittestRenderer) Name() string          { return "unittest" }
func (r *UnittestRenderer) Language() string      { return "python" }
func (r *UnittestRenderer) FileExtension() string { return ".py" }

// Render produces a complete unittest file for a spec, including the
// run-as-main footer the framework expects.
func (r *UnittestRenderer) Render(s spec.Spec) (string, error) {
	plan, err := buildPlan(s)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\"\"\"Generated %s tests for %s.\n\n", plan.TestType, plan.Subject))
	sb.WriteString(fmt.Sprintf("Generated by stubforge at %s.\n\"\"\"\n\n", timestamp(r.Now)))
	sb.WriteString("import unittest\n\n\n")

	sb.WriteString(fmt.Sprintf("class Test%s(unittest.TestCase):\n", toPascal(plan.Subject)))

	if len(plan.Setup) > 0 {
		sb.WriteString("    def setUp(self):\n")
		writeLines(&sb, "        ", plan.Setup)
		sb.WriteString("\n")
	}
	if len(plan.Teardown) > 0 {
		sb.WriteString("    def tearDown(self):\n")
		writeLines(&sb, "        ", plan.Teardown)
		sb.WriteString("\n")
	}

	for i, unit := range plan.Units {
		if i > 0 {
			sb.WriteString("\n")
		}
		r.emitUnit(&sb, unit)
	}

	// Footer
	sb.WriteString("\n\nif __name__ == \"__main__\":\n    unittest.main()\n")

	return sb.String(), nil
}

func (r *UnittestRenderer) emitUnit(sb *strings.Builder, unit unitPlan) {
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

func (r *UnittestRenderer) emitStubPhase(sb *strings.Builder, marker, member string) {
	switch marker {
	case markerAct, markerWhen:
		sb.WriteString(fmt.Sprintf("        result = None  # TODO: call %s\n", member))
	case markerAssert, markerThen:
		sb.WriteString(fmt.Sprintf("        self.fail(\"not implemented: %s\")\n", escapeDoubleQuotes(member)))
	}
}
