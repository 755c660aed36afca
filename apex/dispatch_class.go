package apex

import (
	"fmt"

	"github.com/teranos/packgen/dispatch"
	"github.com/teranos/packgen/output"
)

// DispatchClass emits the main class: one Func holder per pack plus the
// routing Func whose execN runs the pack's ladder.
type DispatchClass struct{}

// Name returns "dispatch"
func (DispatchClass) Name() string {
	return "dispatch"
}

// Enabled is always true
func (DispatchClass) Enabled(*Model) bool {
	return true
}

// Generate implements Unit
func (DispatchClass) Generate(m *Model) ([]output.File, error) {
	lines := []string{
		m.Comment,
		fmt.Sprintf("public class %s {", m.ClassName),
		"    private static Object nthArg(List<Object> args, Integer index) {",
		"        return index >= 0 && index < args.size() ? args.get(index) : null;",
		"    }",
		"",
	}

	for _, plan := range m.Plans {
		lines = append(lines, holderLines(plan)...)
		lines = append(lines, routerLines(plan)...)
	}

	lines = append(lines, "}")

	return classFiles(m, m.ClassName, lines), nil
}

// holderLines declares the pack's Func fields, one per overload group.
func holderLines(plan *dispatch.Plan) []string {
	cls := plan.ClassName
	lines := []string{
		fmt.Sprintf("    public static final %sFuncs %s = new %sFuncs();", cls, cls, cls),
		"",
		fmt.Sprintf("    public class %sFuncs {", cls),
		fmt.Sprintf("        private Func base = new %sFunc();", cls),
		"",
	}

	for _, fragment := range plan.Fragments {
		lines = append(lines, fmt.Sprintf("        public Func %s = base.apply('%s');", fragment.EmitName, fragment.EmitName))
	}

	return append(lines, "    }", "")
}

// routerLines is the Func subclass that switches on the invoked name.
func routerLines(plan *dispatch.Plan) []string {
	lines := []string{
		fmt.Sprintf("    private class %sFunc extends Func {", plan.ClassName),
		"        public override Object execN(List<Object> args) {",
		"            String funcName = (String)args.get(0);",
		"",
	}

	lines = append(lines, plan.Ladder()...)

	return append(lines,
		"",
		"            return null;",
		"        }",
		"    }",
		"",
	)
}
