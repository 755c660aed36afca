package signature

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/teranos/packgen/errors"
)

// ParseError is the MalformedSignature condition: it names the source unit,
// the 1-based line number and the offending line.
type ParseError struct {
	Unit string
	Line int
	Text string
	Err  error
}

func newParseError(unit string, line int, text string, cause error) *ParseError {
	return &ParseError{
		Unit: unit,
		Line: line,
		Text: text,
		Err:  errors.Mark(cause, errors.ErrMalformedSignature),
	}
}

// Error implements error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: malformed signature %q: %v", e.Unit, e.Line, e.Text, e.Err)
}

// Unwrap exposes the cause, which is marked with errors.ErrMalformedSignature
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Hint returns the expected notation.
func (e *ParseError) Hint() string {
	return "expected: [constructor |static ]Name :: Type1 -> ... -> ReturnType (constructors omit ReturnType, use () for no parameters)"
}

// FormatTerminal renders a colored multi-line report for the CLI.
func (e *ParseError) FormatTerminal() string {
	msg := pterm.Red(fmt.Sprintf("malformed signature in %s", e.Unit))
	msg += fmt.Sprintf("\n\n%s", pterm.LightCyan("Context:"))
	msg += fmt.Sprintf("\n  %s %d", pterm.Yellow("Line:"), e.Line)
	msg += fmt.Sprintf("\n  %s %s", pterm.Yellow("Text:"), e.Text)
	msg += fmt.Sprintf("\n  %s %v", pterm.Yellow("Problem:"), e.Err)
	msg += fmt.Sprintf("\n\n%s\n  %s", pterm.Green("Hint:"), e.Hint())
	return msg
}
