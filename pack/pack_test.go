package pack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/packgen/signature"
)

// =============================================================================
// Test helpers
// =============================================================================

func mustParse(t *testing.T, lines ...string) []signature.Method {
	t.Helper()
	methods := make([]signature.Method, 0, len(lines))
	for _, line := range lines {
		m, err := signature.ParseLine(line, signature.DefaultSyntax)
		require.NoError(t, err, line)
		methods = append(methods, m)
	}
	return methods
}

func names(methods []signature.Method) []string {
	out := make([]string, len(methods))
	for i, m := range methods {
		out[i] = m.String()
	}
	return out
}

// =============================================================================
// Ordering
// =============================================================================

func TestBuild_CanonicalOrder(t *testing.T) {
	methods := mustParse(t,
		"size :: () -> Integer",
		"static of :: Object -> List",
		"add :: Object -> void",
		"constructor List :: ()",
		"add :: Integer -> Object -> void",
		"static of :: Object -> Object -> List",
		"constructor List :: Integer",
	)

	p := Build("List", methods)

	assert.Equal(t, []string{
		"constructor List :: Integer",
		"constructor List :: ()",
		"static of :: Object -> Object -> List",
		"static of :: Object -> List",
		"add :: Integer -> Object -> void",
		"add :: Object -> void",
		"size :: () -> Integer",
	}, names(p.Methods))
}

func TestBuild_StableOnFullTies(t *testing.T) {
	methods := mustParse(t,
		"put :: String -> Object -> void",
		"put :: Integer -> Object -> void",
		"put :: Object -> Object -> void",
	)

	p := Build("Map", methods)

	// Same kind, name and arity: declaration order survives
	assert.Equal(t, names(methods), names(p.Methods))
}

func TestBuild_OrdinalNameCompare(t *testing.T) {
	methods := mustParse(t,
		"b :: () -> Integer",
		"B :: () -> Integer",
		"a :: () -> Integer",
	)

	p := Build("Case", methods)

	// Upper-case sorts before lower-case in a byte-wise compare
	assert.Equal(t, "B", p.Methods[0].Name)
	assert.Equal(t, "a", p.Methods[1].Name)
	assert.Equal(t, "b", p.Methods[2].Name)
}

func TestBuild_DoesNotAliasInput(t *testing.T) {
	methods := mustParse(t, "z :: () -> void", "a :: () -> void")

	Build("Alias", methods)

	assert.Equal(t, "z", methods[0].Name)
}

func TestBuild_Deterministic(t *testing.T) {
	methods := mustParse(t,
		"f :: Object -> void",
		"static f :: Object -> void",
		"f :: String -> void",
		"f :: String -> String -> void",
		"constructor T :: ()",
	)

	first := Build("T", methods)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.Methods, Build("T", methods).Methods)
	}
}

func TestNameFromFile(t *testing.T) {
	assert.Equal(t, "Geometry", NameFromFile("Geometry.pack", ".pack"))
	assert.Equal(t, "Geometry", NameFromFile("Geometry.funcs", ".funcs"))
	assert.Equal(t, "README.md", NameFromFile("README.md", ".pack"))
}

func TestOwnerType(t *testing.T) {
	withCtor := Build("Geometry", mustParse(t,
		"x :: () -> Integer",
		"constructor Point :: Integer -> Integer",
	))
	assert.Equal(t, "Point", withCtor.OwnerType())

	withoutCtor := Build("Bar", mustParse(t, "Foo :: String -> Boolean"))
	assert.Equal(t, "Bar", withoutCtor.OwnerType())
}

func TestClassName(t *testing.T) {
	assert.Equal(t, "GeometryCls", ClassName("Geometry"))
}
