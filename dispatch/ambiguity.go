package dispatch

import (
	"fmt"
	"strings"

	"github.com/teranos/packgen/errors"
	"github.com/teranos/packgen/pack"
	"github.com/teranos/packgen/signature"
)

// Ambiguity records a method whose branch can never be selected because an
// earlier branch in the same name+arity bucket accepts every call shaped for it.
//
// Output is not changed: the earlier branch keeps winning at runtime.
type Ambiguity struct {
	Pack     string
	Name     string
	Arity    int
	Winner   signature.Method
	Shadowed signature.Method
}

func (a Ambiguity) String() string {
	return fmt.Sprintf("%s.%s/%d: %q shadows %q", a.Pack, a.Name, a.Arity, a.Winner.String(), a.Shadowed.String())
}

// findAmbiguities reports, per multi-method bucket, every later method shadowed
// by an earlier one. Each shadowed method is reported once, against the first
// method that masks it.
func (s *Synthesizer) findAmbiguities(packName string, group pack.OverloadGroup) []Ambiguity {
	var found []Ambiguity

	for _, bucket := range group.Buckets {
		if !bucket.Ambiguous() {
			continue
		}
		for j := 1; j < len(bucket.Methods); j++ {
			for i := 0; i < j; i++ {
				if s.shadows(bucket.Methods[i], bucket.Methods[j]) {
					found = append(found, Ambiguity{
						Pack:     packName,
						Name:     group.Name,
						Arity:    bucket.Arity,
						Winner:   bucket.Methods[i],
						Shadowed: bucket.Methods[j],
					})
					break
				}
			}
		}
	}

	return found
}

// shadows reports whether every call the guard of b accepts is also accepted
// by the guard of a. Type names are compared as strings only.
func (s *Synthesizer) shadows(a, b signature.Method) bool {
	// An instance guard also tests the receiver slot, which calls to a
	// static of the same arity leave empty
	if a.Kind == signature.Instance && b.Kind != signature.Instance {
		return false
	}
	for k, t := range a.ParamTypes {
		if t != s.universal() && t != b.ParamTypes[k] {
			return false
		}
	}
	return true
}

// AmbiguityError folds the reported ambiguities into one error marked with
// errors.ErrAmbiguousOverload. It returns nil when there are none.
func AmbiguityError(ambiguities []Ambiguity) error {
	if len(ambiguities) == 0 {
		return nil
	}

	lines := make([]string, len(ambiguities))
	for i, a := range ambiguities {
		lines[i] = a.String()
	}

	err := errors.Newf("%d shadowed overload(s):\n  %s", len(ambiguities), strings.Join(lines, "\n  "))
	err = errors.Mark(err, errors.ErrAmbiguousOverload)
	return errors.WithHint(err, "give the shadowed overload a distinguishing parameter type, or write an override unit for the name")
}
