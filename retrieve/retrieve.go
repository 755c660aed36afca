// Package retrieve converts method signatures copied from Apex reference
// documentation into pack notation:
//
//	public static Integer max(Integer i1, Integer i2)  ->  static max :: Integer -> Integer -> Integer
//	public Date(Integer year)                          ->  constructor Date :: Integer
//	public void clear()                                ->  clear :: () -> void
package retrieve

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/teranos/packgen/errors"
	"github.com/teranos/packgen/signature"
)

const (
	publicModifier = "public "
	staticModifier = "static "
)

// Line converts one documentation signature into a Method.
func Line(doc string) (signature.Method, error) {
	text := strings.TrimSpace(doc)
	text = strings.TrimSuffix(text, ";")
	text = strings.TrimPrefix(text, publicModifier)

	var m signature.Method
	m.Kind = signature.Instance
	if strings.HasPrefix(text, staticModifier) {
		text = text[len(staticModifier):]
		m.Kind = signature.Static
	}

	open := strings.Index(text, "(")
	if open < 0 || !strings.HasSuffix(text, ")") {
		return signature.Method{}, errors.Newf("no parameter list in %q", doc)
	}

	// A constructor has no return type: nothing separates it from its name
	head := strings.TrimSpace(text[:open])
	space := strings.LastIndex(head, " ")
	if space < 0 {
		if m.Kind == signature.Static {
			return signature.Method{}, errors.Newf("static method without return type in %q", doc)
		}
		m.Kind = signature.Constructor
		m.Name = head
	} else {
		m.Name = head[space+1:]
		m.ReturnType = strings.TrimSpace(head[:space])
		if strings.EqualFold(m.ReturnType, signature.Void) {
			m.ReturnType = ""
		}
	}
	if m.Name == "" {
		return signature.Method{}, errors.Newf("missing method name in %q", doc)
	}

	m.ParamTypes = []string{}
	for _, param := range splitParams(text[open+1 : len(text)-1]) {
		m.ParamTypes = append(m.ParamTypes, paramType(param))
	}

	return m, nil
}

// Convert reads documentation signatures from r, one per line, and writes
// the pack notation to w. Blank lines are skipped. It returns the number of
// declarations written.
func Convert(r io.Reader, w io.Writer, syntax signature.Syntax) (int, error) {
	scanner := bufio.NewScanner(r)
	count := 0
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		m, err := Line(line)
		if err != nil {
			return count, errors.Wrapf(err, "line %d", lineNo)
		}
		if _, err := fmt.Fprintln(w, m.Format(syntax)); err != nil {
			return count, errors.Wrap(err, "failed to write declaration")
		}
		count++
	}

	if err := scanner.Err(); err != nil {
		return count, errors.Wrap(err, "failed to read signatures")
	}
	return count, nil
}

// splitParams splits a parameter list on commas outside of generic brackets.
func splitParams(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}

	var params []string
	depth, start := 0, 0
	for i, r := range list {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				params = append(params, strings.TrimSpace(list[start:i]))
				start = i + 1
			}
		}
	}
	return append(params, strings.TrimSpace(list[start:]))
}

// paramType drops the parameter name, keeping generic types intact.
func paramType(param string) string {
	if i := strings.LastIndex(param, " "); i > 0 && !strings.HasSuffix(param, ">") {
		return strings.TrimSpace(param[:i])
	}
	return param
}
