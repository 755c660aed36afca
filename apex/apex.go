// Package apex assembles dispatch plans and fixed boilerplate into Apex
// classes: the main dispatch class, the package registration class and the
// smoke-test class. Each class is written together with its metadata sidecar.
package apex

import (
	"slices"
	"strings"

	"github.com/teranos/packgen/dispatch"
	"github.com/teranos/packgen/errors"
	"github.com/teranos/packgen/output"
	"github.com/teranos/packgen/pack"
)

const (
	// ClassExt is the extension of Apex class sources
	ClassExt = ".cls"
	// MetaExt is the extension of the metadata sidecar written next to each class
	MetaExt = ".cls-meta.xml"
)

// Model is everything the emitter needs for one run.
type Model struct {
	// ClassName is the main dispatch class; the package and test classes derive from it
	ClassName string
	// Comment is written as the first line of every class
	Comment string
	// Meta is the metadata sidecar content, written verbatim
	Meta  string
	Namer pack.Namer
	// Plans are in pack discovery order
	Plans []*dispatch.Plan

	GeneratePackage bool
	GenerateTest    bool
	// SkipTests lists packs that get no test method
	SkipTests []string
}

// PackageClassName is the name of the registration class.
func (m *Model) PackageClassName() string {
	return m.ClassName + "Package"
}

// TestClassName is the name of the smoke-test class.
func (m *Model) TestClassName() string {
	return m.ClassName + "Test"
}

func (m *Model) skipTest(packName string) bool {
	return slices.Contains(m.SkipTests, packName)
}

// Unit emits one generated class.
type Unit interface {
	// Name is used in logs
	Name() string
	Enabled(m *Model) bool
	Generate(m *Model) ([]output.File, error)
}

// Units returns every known unit in emission order.
func Units() []Unit {
	return []Unit{
		DispatchClass{},
		PackageClass{},
		TestClass{},
	}
}

// Render generates every enabled unit. Nothing is written here.
func Render(m *Model) ([]output.File, error) {
	if m.ClassName == "" {
		return nil, errors.NewInvalidConfigError("apex class name is empty")
	}

	var files []output.File
	for _, unit := range Units() {
		if !unit.Enabled(m) {
			continue
		}
		generated, err := unit.Generate(m)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to generate %s", unit.Name())
		}
		files = append(files, generated...)
	}
	return files, nil
}

// classFiles pairs a class source with its metadata sidecar.
// Lines are joined without a trailing newline.
func classFiles(m *Model, className string, lines []string) []output.File {
	return []output.File{
		{Path: className + ClassExt, Content: strings.Join(lines, "\n")},
		{Path: className + MetaExt, Content: m.Meta},
	}
}
