// Package pack builds the in-memory model of one pack: its canonically ordered
// methods, the overload groups derived from them, and the emission names.
package pack

import (
	"sort"
	"strings"

	"github.com/teranos/packgen/signature"
)

// Pack is a named group of methods read from one source unit.
//
// Methods is sorted once by Build and never resorted; every grouping below
// preserves that order as its tie-break.
type Pack struct {
	Name    string
	Methods []signature.Method
}

// Build copies methods into a new Pack and applies the canonical ordering:
// kind weight ascending, then name ascending (byte-wise), then parameter
// count descending. The sort is stable, so full ties keep declaration order.
func Build(name string, methods []signature.Method) *Pack {
	sorted := make([]signature.Method, len(methods))
	copy(sorted, methods)

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	return &Pack{Name: name, Methods: sorted}
}

func less(a, b signature.Method) bool {
	if a.Kind.Weight() != b.Kind.Weight() {
		return a.Kind.Weight() < b.Kind.Weight()
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.Arity() > b.Arity()
}

// NameFromFile derives a pack name from its source unit file name by removing
// the pack suffix. A file name without the suffix is returned unchanged.
func NameFromFile(fileName, suffix string) string {
	return strings.TrimSuffix(fileName, suffix)
}

// OwnerType is the type an instance method's receiver is checked against and
// cast to: the first constructor's name, or the pack name when the pack
// declares no constructor.
func (p *Pack) OwnerType() string {
	for _, m := range p.Methods {
		if m.Kind == signature.Constructor {
			return m.Name
		}
	}
	return p.Name
}

// ClassName returns the name of the generated holder for a pack, e.g. "GeometryCls".
func ClassName(packName string) string {
	return packName + "Cls"
}
