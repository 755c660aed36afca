package pack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroups_FirstAppearanceOrder(t *testing.T) {
	p := Build("List", mustParse(t,
		"size :: () -> Integer",
		"add :: Object -> void",
		"constructor List :: ()",
		"add :: Integer -> Object -> void",
		"static of :: Object -> List",
	))

	groups := p.Groups()
	require.Len(t, groups, 4)

	assert.Equal(t, "List", groups[0].Name)
	assert.True(t, groups[0].IsConstructor())
	assert.Equal(t, "of", groups[1].Name)
	assert.Equal(t, "add", groups[2].Name)
	assert.Equal(t, "size", groups[3].Name)
	assert.False(t, groups[3].IsConstructor())
}

func TestGroups_BucketsDescendingArity(t *testing.T) {
	p := Build("Str", mustParse(t,
		"static join :: List<String> -> String",
		"static join :: List<String> -> String -> String",
		"static join :: Set<String> -> String",
		"static join :: ()  -> String",
	))

	groups := p.Groups()
	require.Len(t, groups, 1)

	buckets := groups[0].Buckets
	require.Len(t, buckets, 3)

	assert.Equal(t, 2, buckets[0].Arity)
	assert.False(t, buckets[0].Ambiguous())

	assert.Equal(t, 1, buckets[1].Arity)
	assert.True(t, buckets[1].Ambiguous())
	// Declaration order is kept inside a bucket
	assert.Equal(t, "List<String>", buckets[1].Methods[0].ParamTypes[0])
	assert.Equal(t, "Set<String>", buckets[1].Methods[1].ParamTypes[0])

	assert.Equal(t, 0, buckets[2].Arity)
}

func TestGroups_CaseSensitiveKey(t *testing.T) {
	p := Build("Case", mustParse(t,
		"get :: () -> Object",
		"Get :: () -> Object",
	))

	assert.Len(t, p.Groups(), 2)
}

func TestGroups_StaticAndInstanceShareName(t *testing.T) {
	p := Build("Mixed", mustParse(t,
		"f :: String -> String",
		"static f :: String -> String",
	))

	groups := p.Groups()

	// Different kinds sort apart, but the name still keys one group
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Buckets, 1)
	assert.Len(t, groups[0].Buckets[0].Methods, 2)
}

func TestNamer(t *testing.T) {
	namer := Namer{Reserved: []string{"new", "delete"}, Suffix: DefaultReservedSuffix}

	p := Build("Rec", mustParse(t,
		"constructor Rec :: ()",
		"delete :: () -> void",
		"save :: () -> void",
	))
	groups := p.Groups()
	require.Len(t, groups, 3)

	assert.Equal(t, ConstructName, namer.EmitName(groups[0]))
	assert.Equal(t, "deleteFn", namer.EmitName(groups[1]))
	assert.Equal(t, "save", namer.EmitName(groups[2]))

	// The group key stays the declared name
	assert.Equal(t, "delete", groups[1].Name)
}

func TestNamer_ConstructorNamedLikeReservedWord(t *testing.T) {
	namer := Namer{Reserved: []string{"List"}, Suffix: "Fn"}

	p := Build("List", mustParse(t, "constructor List :: ()"))

	assert.Equal(t, ConstructName, namer.EmitName(p.Groups()[0]))
}
