// Package dispatch turns a pack's overload groups into the routing ladder of
// its generated dispatch function.
//
// Every group is handled by exactly one strategy, chosen before any code is
// shaped: Verbatim when an override unit exists for it, Synthesized otherwise.
// A synthesized group yields one branch per arity bucket of size one (guarded
// by argument count only) and one branch per method for larger buckets
// (guarded by runtime type checks on every non-universal parameter).
package dispatch

import (
	"go.uber.org/zap"

	"github.com/teranos/packgen/logger"
	"github.com/teranos/packgen/pack"
	"github.com/teranos/packgen/signature"
)

// DiscriminatorOffset is the number of leading argument slots taken by the
// invoked-name discriminator. Declared parameter i lives at index i+1.
const DiscriminatorOffset = 1

// ConstructorOverrideKey is the override key used by constructor groups.
const ConstructorOverrideKey = "constructor"

// DefaultUniversalType is the type that matches any argument and is never checked.
const DefaultUniversalType = "Object"

// OverrideSource supplies override units by (pack, key). The key is the
// declared name of a group, or ConstructorOverrideKey for constructor groups.
type OverrideSource interface {
	Override(pack, key string) (string, bool)
}

// NoOverrides is an OverrideSource with no override units.
type NoOverrides struct{}

// Override implements OverrideSource
func (NoOverrides) Override(string, string) (string, bool) {
	return "", false
}

// Strategy selects how a group's dispatch body is produced.
type Strategy int

const (
	Synthesized Strategy = iota
	Verbatim
)

func (s Strategy) String() string {
	if s == Verbatim {
		return "verbatim"
	}
	return "synthesized"
}

// TypeCheck is a runtime type test on one argument slot.
type TypeCheck struct {
	Index int
	Type  string
}

// Guard is the condition of one ladder branch.
type Guard struct {
	// FuncName is the routed (emission) name compared against the discriminator
	FuncName string
	// CountChecked is set for single-method buckets, which are told apart by arity alone
	CountChecked bool
	ArgCount     int
	TypeChecks   []TypeCheck
}

// Arg is one positional argument passed to the target, cast to its declared type.
type Arg struct {
	Index int
	Type  string
}

// Action is the call made when a branch's guard holds.
type Action struct {
	Kind signature.Kind
	// Target is the constructed type, the static's qualifying pack, or the
	// instance method's receiver type
	Target string
	Method string
	// ReceiverIndex is the argument slot of the receiver for instance methods
	ReceiverIndex int
	Args          []Arg
	Void          bool
}

// Branch is one guarded element of the ladder.
type Branch struct {
	Guard  Guard
	Action Action
	Method signature.Method
}

// Fragment is the dispatch body of one overload group.
type Fragment struct {
	Group    pack.OverloadGroup
	EmitName string
	Strategy Strategy
	// Override holds the override unit contents for Verbatim fragments
	Override string
	Branches []Branch
}

// Plan is the complete dispatch surface of one pack.
type Plan struct {
	Pack        *pack.Pack
	ClassName   string
	OwnerType   string
	Fragments   []Fragment
	Ambiguities []Ambiguity
}

// Synthesizer builds dispatch plans. The zero value synthesizes every group,
// treats "Object" as universal and applies no reserved-word renaming.
type Synthesizer struct {
	UniversalType string
	Namer         pack.Namer
	Overrides     OverrideSource
	// Log receives override hits; nil means the global logger
	Log *zap.SugaredLogger
}

func (s *Synthesizer) log() *zap.SugaredLogger {
	if s.Log == nil {
		return logger.Logger
	}
	return s.Log
}

func (s *Synthesizer) universal() string {
	if s.UniversalType == "" {
		return DefaultUniversalType
	}
	return s.UniversalType
}

func (s *Synthesizer) overrides() OverrideSource {
	if s.Overrides == nil {
		return NoOverrides{}
	}
	return s.Overrides
}

// Synthesize builds the plan for one pack. Groups and buckets are visited in
// the pack's sequence order, so the same pack and overrides always produce
// the same plan.
func (s *Synthesizer) Synthesize(p *pack.Pack) *Plan {
	plan := &Plan{
		Pack:      p,
		ClassName: pack.ClassName(p.Name),
		OwnerType: p.OwnerType(),
	}

	for _, group := range p.Groups() {
		fragment := Fragment{
			Group:    group,
			EmitName: s.Namer.EmitName(group),
		}

		if content, ok := s.overrides().Override(p.Name, OverrideKey(group)); ok {
			fragment.Strategy = Verbatim
			fragment.Override = content
			s.log().Debugw("Using override unit", logger.FieldPack, p.Name, logger.FieldKey, OverrideKey(group))
		} else {
			fragment.Strategy = Synthesized
			fragment.Branches = s.branches(plan, fragment.EmitName, group)
			plan.Ambiguities = append(plan.Ambiguities, s.findAmbiguities(p.Name, group)...)
		}

		plan.Fragments = append(plan.Fragments, fragment)
	}

	return plan
}

// OverrideKey returns the key an override unit for the group is looked up by.
func OverrideKey(g pack.OverloadGroup) string {
	if g.IsConstructor() {
		return ConstructorOverrideKey
	}
	return g.Name
}

func (s *Synthesizer) branches(plan *Plan, funcName string, group pack.OverloadGroup) []Branch {
	var branches []Branch

	for _, bucket := range group.Buckets {
		for _, m := range bucket.Methods {
			guard := Guard{FuncName: funcName}

			if bucket.Ambiguous() {
				guard.TypeChecks = s.typeChecks(m)
				if m.Kind == signature.Instance {
					guard.TypeChecks = append(guard.TypeChecks, TypeCheck{
						Index: receiverIndex(m),
						Type:  plan.OwnerType,
					})
				}
			} else {
				guard.CountChecked = true
				guard.ArgCount = argCount(m)
			}

			branches = append(branches, Branch{
				Guard:  guard,
				Action: action(plan, m),
				Method: m,
			})
		}
	}

	return branches
}

func (s *Synthesizer) typeChecks(m signature.Method) []TypeCheck {
	var checks []TypeCheck
	for i, t := range m.ParamTypes {
		if t == s.universal() {
			continue
		}
		checks = append(checks, TypeCheck{Index: i + DiscriminatorOffset, Type: t})
	}
	return checks
}

func action(plan *Plan, m signature.Method) Action {
	a := Action{
		Kind:   m.Kind,
		Method: m.Name,
		Args:   make([]Arg, len(m.ParamTypes)),
		Void:   m.Kind != signature.Constructor && !m.HasReturn(),
	}
	for i, t := range m.ParamTypes {
		a.Args[i] = Arg{Index: i + DiscriminatorOffset, Type: t}
	}

	switch m.Kind {
	case signature.Constructor:
		a.Target = m.Name
	case signature.Static:
		a.Target = plan.Pack.Name
	case signature.Instance:
		a.Target = plan.OwnerType
		a.ReceiverIndex = receiverIndex(m)
	}
	return a
}

// argCount is the exact argument list size a call to m arrives with.
func argCount(m signature.Method) int {
	n := m.Arity() + DiscriminatorOffset
	if m.Kind == signature.Instance {
		n++
	}
	return n
}

// receiverIndex is the slot right after the declared parameters.
func receiverIndex(m signature.Method) int {
	return m.Arity() + DiscriminatorOffset
}
