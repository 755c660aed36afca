package pack

import (
	"slices"
)

// ConstructName is the routed name every constructor group is exported under.
const ConstructName = "construct"

// Namer resolves the name a group is emitted under.
type Namer struct {
	// Reserved lists names that collide with target-language keywords
	Reserved []string
	// Suffix is appended to reserved names, e.g. "Fn"
	Suffix string
}

// DefaultReservedSuffix matches the historical output of the generator.
const DefaultReservedSuffix = "Fn"

// EmitName returns the name a group is exported and routed under.
// Grouping always uses the declared name; only emission uses this one.
func (n Namer) EmitName(g OverloadGroup) string {
	if g.IsConstructor() {
		return ConstructName
	}
	return n.Resolve(g.Name)
}

// Resolve applies reserved-word renaming to a declared name.
func (n Namer) Resolve(name string) string {
	if slices.Contains(n.Reserved, name) {
		return name + n.Suffix
	}
	return name
}
