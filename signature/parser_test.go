package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/packgen/errors"
)

func TestParseLine(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		expected Method
	}{
		{
			name: "instance method",
			line: "Foo :: String -> Integer -> Boolean",
			expected: Method{
				Kind:       Instance,
				Name:       "Foo",
				ParamTypes: []string{"String", "Integer"},
				ReturnType: "Boolean",
			},
		},
		{
			name: "static method",
			line: "static max :: Integer -> Integer -> Integer",
			expected: Method{
				Kind:       Static,
				Name:       "max",
				ParamTypes: []string{"Integer", "Integer"},
				ReturnType: "Integer",
			},
		},
		{
			name: "constructor has no return slot",
			line: "constructor Point :: Integer -> Integer",
			expected: Method{
				Kind:       Constructor,
				Name:       "Point",
				ParamTypes: []string{"Integer", "Integer"},
			},
		},
		{
			name: "constructor ignores dangling arrow",
			line: "constructor Point :: Integer -> Integer -> ",
			expected: Method{
				Kind:       Constructor,
				Name:       "Point",
				ParamTypes: []string{"Integer", "Integer"},
			},
		},
		{
			name: "empty parameter sentinel",
			line: "static today :: () -> Date",
			expected: Method{
				Kind:       Static,
				Name:       "today",
				ParamTypes: []string{},
				ReturnType: "Date",
			},
		},
		{
			name: "zero-arg constructor",
			line: "constructor Stack :: ()",
			expected: Method{
				Kind:       Constructor,
				Name:       "Stack",
				ParamTypes: []string{},
			},
		},
		{
			name: "void return is absent",
			line: "clear :: () -> void",
			expected: Method{
				Kind:       Instance,
				Name:       "clear",
				ParamTypes: []string{},
			},
		},
		{
			name: "generic types keep inner spaces",
			line: "static keys :: Map<String, Object> -> Set<String>",
			expected: Method{
				Kind:       Static,
				Name:       "keys",
				ParamTypes: []string{"Map<String, Object>"},
				ReturnType: "Set<String>",
			},
		},
		{
			name: "carriage return is stripped",
			line: "size :: () -> Integer\r",
			expected: Method{
				Kind:       Instance,
				Name:       "size",
				ParamTypes: []string{},
				ReturnType: "Integer",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			method, err := ParseLine(tc.line, DefaultSyntax)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, method)
		})
	}
}

func TestParseLine_Malformed(t *testing.T) {
	testCases := []struct {
		name string
		line string
	}{
		{name: "missing separator", line: "Foo String -> Boolean"},
		{name: "missing name", line: " :: String -> Boolean"},
		{name: "missing return slot", line: "Foo ::"},
		{name: "trailing arrow on method", line: "static max :: Integer ->"},
		{name: "empty parameter", line: "Foo :: -> Boolean"},
		{name: "empty parameter list as return", line: "Foo :: ()"},
		{name: "static without return", line: "static now :: () -> ()"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLine(tc.line, DefaultSyntax)
			require.Error(t, err)
		})
	}
}

func TestParseLine_CustomSyntax(t *testing.T) {
	syntax := Syntax{ConstructorPrefix: "new ", StaticPrefix: "@"}

	method, err := ParseLine("@abs :: Integer -> Integer", syntax)
	require.NoError(t, err)
	assert.Equal(t, Static, method.Kind)
	assert.Equal(t, "abs", method.Name)

	method, err = ParseLine("new Point :: Integer", syntax)
	require.NoError(t, err)
	assert.Equal(t, Constructor, method.Kind)

	// Default prefixes mean nothing under a custom syntax
	method, err = ParseLine("static abs :: Integer -> Integer", syntax)
	require.NoError(t, err)
	assert.Equal(t, Instance, method.Kind)
	assert.Equal(t, "static abs", method.Name)
}

func TestParseUnit(t *testing.T) {
	content := "constructor Point :: Integer -> Integer\n\nstatic origin :: () -> Point\n   \nx :: () -> Integer\n"

	methods, err := ParseUnit("Geometry.pack", content, DefaultSyntax)
	require.NoError(t, err)
	require.Len(t, methods, 3)

	// Declaration order is preserved; sorting is the pack builder's job
	assert.Equal(t, "Point", methods[0].Name)
	assert.Equal(t, "origin", methods[1].Name)
	assert.Equal(t, "x", methods[2].Name)
}

func TestParseUnit_ReportsUnitAndLine(t *testing.T) {
	content := "constructor Point :: Integer -> Integer\n\nbroken line\n"

	_, err := ParseUnit("Geometry.pack", content, DefaultSyntax)
	require.Error(t, err)
	assert.True(t, errors.IsMalformedSignature(err))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "Geometry.pack", parseErr.Unit)
	assert.Equal(t, 3, parseErr.Line)
	assert.Equal(t, "broken line", parseErr.Text)
	assert.Contains(t, err.Error(), "Geometry.pack:3")
	assert.Contains(t, parseErr.FormatTerminal(), "broken line")
}

func TestMethodString(t *testing.T) {
	lines := []string{
		"constructor Point :: Integer -> Integer",
		"constructor Stack :: ()",
		"static today :: () -> Date",
		"clear :: () -> void",
		"Foo :: String -> Integer -> Boolean",
	}

	for _, line := range lines {
		method, err := ParseLine(line, DefaultSyntax)
		require.NoError(t, err)
		assert.Equal(t, line, method.String())
	}
}

func TestKind(t *testing.T) {
	assert.Less(t, Constructor.Weight(), Static.Weight())
	assert.Less(t, Static.Weight(), Instance.Weight())
	assert.Equal(t, "method", Instance.String())
}
