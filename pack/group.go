package pack

import (
	"github.com/teranos/packgen/signature"
)

// OverloadGroup holds every method of a pack sharing one declared name.
type OverloadGroup struct {
	// Name is the declared name, before reserved-word renaming
	Name    string
	Methods []signature.Method
	Buckets []ArityBucket
}

// ArityBucket holds the methods of a group that share a parameter count.
type ArityBucket struct {
	Arity   int
	Methods []signature.Method
}

// IsConstructor reports whether the group routes to constructors. The group's
// first method decides.
func (g OverloadGroup) IsConstructor() bool {
	return len(g.Methods) > 0 && g.Methods[0].Kind == signature.Constructor
}

// Ambiguous reports whether the bucket needs per-parameter type checks.
func (b ArityBucket) Ambiguous() bool {
	return len(b.Methods) > 1
}

// Groups partitions the pack's methods by declared name, then by arity.
//
// Groups appear in the order their first method appears in the sorted
// sequence, and buckets in the order their first method appears within the
// group. Because the sequence is ordered by descending arity within a name,
// buckets come out longest parameter list first.
func (p *Pack) Groups() []OverloadGroup {
	var groups []OverloadGroup
	groupIndex := make(map[string]int)

	for _, m := range p.Methods {
		gi, ok := groupIndex[m.Name]
		if !ok {
			gi = len(groups)
			groupIndex[m.Name] = gi
			groups = append(groups, OverloadGroup{Name: m.Name})
		}
		groups[gi].Methods = append(groups[gi].Methods, m)
	}

	for i := range groups {
		groups[i].Buckets = bucketize(groups[i].Methods)
	}

	return groups
}

func bucketize(methods []signature.Method) []ArityBucket {
	var buckets []ArityBucket
	bucketIndex := make(map[int]int)

	for _, m := range methods {
		bi, ok := bucketIndex[m.Arity()]
		if !ok {
			bi = len(buckets)
			bucketIndex[m.Arity()] = bi
			buckets = append(buckets, ArityBucket{Arity: m.Arity()})
		}
		buckets[bi].Methods = append(buckets[bi].Methods, m)
	}

	return buckets
}
