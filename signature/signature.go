// Package signature parses the line-oriented pack notation into Method records.
//
// One declaration per line:
//
//	[constructor |static ]Name :: Type1 -> Type2 -> ... -> ReturnType
//
// Constructors carry no return slot: every token is a parameter. A lone "()"
// token stands for an empty parameter list. Blank lines are ignored.
package signature

import (
	"strings"
)

// Kind classifies a declaration.
type Kind int

const (
	Constructor Kind = iota
	Static
	Instance
)

// Weight is the ordering weight used by the pack comparator: constructors first,
// then statics, then instance methods.
func (k Kind) Weight() int {
	return int(k)
}

func (k Kind) String() string {
	switch k {
	case Constructor:
		return "constructor"
	case Static:
		return "static"
	case Instance:
		return "method"
	default:
		return "unknown"
	}
}

const (
	// NameSeparator splits the declared name from its signature expression
	NameSeparator = "::"
	// Arrow splits the signature expression into type tokens
	Arrow = "->"
	// EmptyParams is the zero-parameter sentinel
	EmptyParams = "()"
	// Void marks a method that produces no value
	Void = "void"
)

// Method is one declared operation of a pack.
//
// ParamTypes keeps declaration order; call sites index arguments by position.
type Method struct {
	Kind       Kind
	Name       string
	ParamTypes []string
	// ReturnType is empty when the method produces no value. Always empty for constructors.
	ReturnType string
}

// Arity returns the number of declared parameters (excluding any receiver).
func (m Method) Arity() int {
	return len(m.ParamTypes)
}

// HasReturn reports whether a call produces a value.
func (m Method) HasReturn() bool {
	return m.ReturnType != ""
}

// String renders the method back into the input notation.
func (m Method) String() string {
	return m.Format(DefaultSyntax)
}

// Format renders the method in the input notation using syntax's prefixes.
func (m Method) Format(syntax Syntax) string {
	var sb strings.Builder
	switch m.Kind {
	case Constructor:
		sb.WriteString(syntax.ConstructorPrefix)
	case Static:
		sb.WriteString(syntax.StaticPrefix)
	}
	sb.WriteString(m.Name)
	sb.WriteString(" " + NameSeparator + " ")

	tokens := append([]string{}, m.ParamTypes...)
	if len(tokens) == 0 {
		tokens = append(tokens, EmptyParams)
	}
	if m.Kind != Constructor {
		ret := m.ReturnType
		if ret == "" {
			ret = Void
		}
		tokens = append(tokens, ret)
	}
	sb.WriteString(strings.Join(tokens, " "+Arrow+" "))
	return sb.String()
}

// Syntax holds the configurable line prefixes that mark constructors and statics.
type Syntax struct {
	ConstructorPrefix string
	StaticPrefix      string
}

// DefaultSyntax matches the prefixes written by the retrieve helper.
var DefaultSyntax = Syntax{
	ConstructorPrefix: "constructor ",
	StaticPrefix:      "static ",
}
