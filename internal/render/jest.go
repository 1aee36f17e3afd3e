package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/stubforge/stubforge/pkg/spec"
)

// JestRenderer generates Jest describe blocks.
type JestRenderer struct {
	Now func() time.Time
}

func (r *JestRenderer) Name() string          { return "jest" }
func (r *JestRenderer) Language() string      { return "javascript" }
func (r *JestRenderer) FileExtension() string { return ".test.js" }

// Render produces a complete Jest test file for a spec. Jest needs no
// explicit entry point, so there is no footer.
func (r *JestRenderer) Render(s spec.Spec) (string, error) {
	plan, err := buildPlan(s)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	sb.WriteString("/**\n")
	sb.WriteString(fmt.Sprintf(" * Generated %s tests for %s.\n", plan.TestType, plan.Subject))
	sb.WriteString(fmt.Sprintf(" * Generated by stubforge at %s.\n", timestamp(r.Now)))
	sb.WriteString(" */\n\n")
	sb.WriteString(fmt.Sprintf("const { %s } = require('./%s');\n\n", toPascal(plan.Subject), toKebab(plan.Subject)))

	// Describe-string containers keep the subject verbatim.
	sb.WriteString(fmt.Sprintf("describe('%s', () => {\n", escapeSingleQuotes(plan.Subject)))

	if len(plan.Setup) > 0 {
		sb.WriteString("  beforeEach(() => {\n")
		writeLines(&sb, "    ", plan.Setup)
		sb.WriteString("  });\n\n")
	}
	if len(plan.Teardown) > 0 {
		sb.WriteString("  afterEach(() => {\n")
		writeLines(&sb, "    ", plan.Teardown)
		sb.WriteString("  });\n\n")
	}

	for i, unit := range plan.Units {
		if i > 0 {
			sb.WriteString("\n")
		}
		r.emitUnit(&sb, unit)
	}

	sb.WriteString("});\n")

	return sb.String(), nil
}

func (r *JestRenderer) emitUnit(sb *strings.Builder, unit unitPlan) {
	title := unit.Description
	if title == "" {
		title = fmt.Sprintf("should %s correctly", unit.Name)
	}
	sb.WriteString(fmt.Sprintf("  test('%s', () => {\n", escapeSingleQuotes(title)))

	for _, phase := range unit.Phases {
		sb.WriteString(fmt.Sprintf("    // %s\n", phase.Marker))
		if unit.Stub {
			r.emitStubPhase(sb, phase.Marker, unit.Name)
			continue
		}
		writeLines(sb, "    ", phase.Lines)
	}

	sb.WriteString("  });\n")
}

func (r *JestRenderer) emitStubPhase(sb *strings.Builder, marker, member string) {
	switch marker {
	case markerAct, markerWhen:
		sb.WriteString(fmt.Sprintf("    let result = null; // TODO: call %s\n", member))
	case markerAssert, markerThen:
		sb.WriteString(fmt.Sprintf("    throw new Error('not implemented: %s');\n", escapeSingleQuotes(member)))
	}
}
