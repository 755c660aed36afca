package apex

import (
	"fmt"

	"github.com/teranos/packgen/output"
)

// PackageClass emits the registration class exporting every (pack, name)
// pair under "<Pack>Cls.<name>".
type PackageClass struct{}

// Name returns "package"
func (PackageClass) Name() string {
	return "package"
}

// Enabled reports whether package generation is on
func (PackageClass) Enabled(m *Model) bool {
	return m.GeneratePackage
}

// Generate implements Unit
func (PackageClass) Generate(m *Model) ([]output.File, error) {
	lines := []string{
		m.Comment,
		fmt.Sprintf("public class %s extends Func.DefaultPackage {", m.PackageClassName()),
		"    public override void init() {",
	}

	for _, plan := range m.Plans {
		for _, fragment := range plan.Fragments {
			lines = append(lines, fmt.Sprintf("        this.export('%s.%s', %s.%s.%s);",
				plan.ClassName, fragment.EmitName, m.ClassName, plan.ClassName, fragment.EmitName))
		}
	}

	lines = append(lines,
		"    }",
		"",
		"}",
	)

	return classFiles(m, m.PackageClassName(), lines), nil
}
