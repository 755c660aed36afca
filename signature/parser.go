package signature

import (
	"strings"

	"github.com/teranos/packgen/errors"
)

// ParseLine converts one raw declaration line into a Method.
// The line must not be blank; use ParseUnit to process whole source units.
func ParseLine(line string, syntax Syntax) (Method, error) {
	var method Method

	rest := strings.TrimLeft(strings.TrimRight(line, "\r"), " \t")
	switch {
	case syntax.ConstructorPrefix != "" && strings.HasPrefix(rest, syntax.ConstructorPrefix):
		rest = rest[len(syntax.ConstructorPrefix):]
		method.Kind = Constructor
	case syntax.StaticPrefix != "" && strings.HasPrefix(rest, syntax.StaticPrefix):
		rest = rest[len(syntax.StaticPrefix):]
		method.Kind = Static
	default:
		method.Kind = Instance
	}

	name, expr, found := strings.Cut(rest, NameSeparator)
	if !found {
		return Method{}, errors.Newf("missing %q between name and signature", NameSeparator)
	}

	method.Name = strings.TrimSpace(name)
	if method.Name == "" {
		return Method{}, errors.New("missing method name")
	}

	tokens := strings.Split(expr, Arrow)
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	paramTokens := tokens
	if method.Kind != Constructor {
		last := tokens[len(tokens)-1]
		if last == "" || last == EmptyParams {
			return Method{}, errors.Newf("missing return type for %s", method.Name)
		}
		if last != Void {
			method.ReturnType = last
		}
		paramTokens = tokens[:len(tokens)-1]
	}

	method.ParamTypes = []string{}
	for _, token := range paramTokens {
		if token == EmptyParams {
			continue
		}
		if token == "" {
			// A dangling arrow on a constructor is not a return slot
			if method.Kind == Constructor {
				continue
			}
			return Method{}, errors.Newf("empty parameter type in %s", method.Name)
		}
		method.ParamTypes = append(method.ParamTypes, token)
	}

	return method, nil
}

// ParseUnit parses every line of a source unit in declaration order.
// Blank lines are skipped. The first malformed line aborts with a *ParseError.
func ParseUnit(unit, content string, syntax Syntax) ([]Method, error) {
	var methods []Method

	for i, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		method, err := ParseLine(line, syntax)
		if err != nil {
			return nil, newParseError(unit, i+1, strings.TrimRight(line, "\r"), err)
		}
		methods = append(methods, method)
	}

	return methods, nil
}
