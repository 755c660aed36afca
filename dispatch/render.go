package dispatch

import (
	"fmt"
	"strings"

	"github.com/teranos/packgen/signature"
)

const (
	branchIndent = "            "
	bodyIndent   = "                "
)

// Ladder renders the plan's if / else-if chain as Apex source lines.
//
// The chain spans every group of the pack. An override unit is spliced in as
// a single element and counts as a link, so the branch after it opens with
// "else if". The caller closes the chain with the fall-through return.
func (p *Plan) Ladder() []string {
	var lines []string
	first := true

	for _, fragment := range p.Fragments {
		if fragment.Strategy == Verbatim {
			lines = append(lines, fragment.Override)
			first = false
			continue
		}

		for _, branch := range fragment.Branches {
			keyword := "else if"
			if first {
				keyword = "if"
			}
			lines = append(lines, branchIndent+keyword+"("+branch.Guard.Render()+") {")
			lines = append(lines, branch.Action.Render()...)
			lines = append(lines, branchIndent+"}")
			first = false
		}
	}

	return lines
}

// Render returns the guard condition, without the surrounding parentheses.
func (g Guard) Render() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("funcName == '%s'", g.FuncName))
	if g.CountChecked {
		sb.WriteString(fmt.Sprintf(" && args.size() == %d", g.ArgCount))
	}
	for _, check := range g.TypeChecks {
		sb.WriteString(fmt.Sprintf(" && %s instanceof %s", nthArg(check.Index), check.Type))
	}
	return sb.String()
}

// Render returns the branch body lines.
func (a Action) Render() []string {
	var call string
	switch a.Kind {
	case signature.Constructor:
		return []string{fmt.Sprintf("%sreturn new %s(%s);", bodyIndent, a.Target, a.renderArgs())}
	case signature.Static:
		call = fmt.Sprintf("%s.%s(%s)", a.Target, a.Method, a.renderArgs())
	default:
		call = fmt.Sprintf("((%s)%s).%s(%s)", a.Target, nthArg(a.ReceiverIndex), a.Method, a.renderArgs())
	}

	if a.Void {
		return []string{
			bodyIndent + call + ";",
			bodyIndent + "return null;",
		}
	}
	return []string{bodyIndent + "return " + call + ";"}
}

func (a Action) renderArgs() string {
	parts := make([]string, len(a.Args))
	for i, arg := range a.Args {
		parts[i] = fmt.Sprintf("(%s)%s", arg.Type, nthArg(arg.Index))
	}
	return strings.Join(parts, ", ")
}

func nthArg(index int) string {
	return fmt.Sprintf("nthArg(args, %d)", index)
}
