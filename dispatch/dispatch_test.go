package dispatch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/teranos/packgen/errors"
	"github.com/teranos/packgen/logger"
	"github.com/teranos/packgen/pack"
	"github.com/teranos/packgen/signature"
)

// =============================================================================
// Test helpers
// =============================================================================

type mapOverrides map[string]string

func (m mapOverrides) Override(packName, key string) (string, bool) {
	content, ok := m[packName+"_"+key]
	return content, ok
}

func buildPack(t *testing.T, name string, lines ...string) *pack.Pack {
	t.Helper()
	methods, err := signature.ParseUnit(name+".pack", strings.Join(lines, "\n"), signature.DefaultSyntax)
	require.NoError(t, err)
	return pack.Build(name, methods)
}

func ladder(t *testing.T, s *Synthesizer, p *pack.Pack) string {
	t.Helper()
	return strings.Join(s.Synthesize(p).Ladder(), "\n")
}

// =============================================================================
// Worked examples
// =============================================================================

func TestSynthesize_ConstructorArityOnly(t *testing.T) {
	p := buildPack(t, "Geometry", "constructor Point :: Integer -> Integer")

	got := ladder(t, &Synthesizer{}, p)

	want := strings.Join([]string{
		"            if(funcName == 'construct' && args.size() == 3) {",
		"                return new Point((Integer)nthArg(args, 1), (Integer)nthArg(args, 2));",
		"            }",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestSynthesize_InstanceOverloadsOfDifferentArity(t *testing.T) {
	p := buildPack(t, "Bar",
		"Foo :: String -> Boolean",
		"Foo :: String -> Integer -> Boolean",
	)

	got := ladder(t, &Synthesizer{}, p)

	// Longest parameter list first; each arity has one overload, so no type checks
	want := strings.Join([]string{
		"            if(funcName == 'Foo' && args.size() == 4) {",
		"                return ((Bar)nthArg(args, 3)).Foo((String)nthArg(args, 1), (Integer)nthArg(args, 2));",
		"            }",
		"            else if(funcName == 'Foo' && args.size() == 3) {",
		"                return ((Bar)nthArg(args, 2)).Foo((String)nthArg(args, 1));",
		"            }",
	}, "\n")
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "instanceof")
}

func TestSynthesize_SameArityUsesTypeChecks(t *testing.T) {
	p := buildPack(t, "Bar",
		"Foo :: String -> Boolean",
		"Foo :: Integer -> Boolean",
	)

	got := ladder(t, &Synthesizer{}, p)

	want := strings.Join([]string{
		"            if(funcName == 'Foo' && nthArg(args, 1) instanceof String && nthArg(args, 2) instanceof Bar) {",
		"                return ((Bar)nthArg(args, 2)).Foo((String)nthArg(args, 1));",
		"            }",
		"            else if(funcName == 'Foo' && nthArg(args, 1) instanceof Integer && nthArg(args, 2) instanceof Bar) {",
		"                return ((Bar)nthArg(args, 2)).Foo((Integer)nthArg(args, 1));",
		"            }",
	}, "\n")
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "args.size()")
}

func TestSynthesize_StaticAndVoid(t *testing.T) {
	p := buildPack(t, "Log",
		"static write :: String -> void",
		"static level :: () -> Integer",
	)

	got := ladder(t, &Synthesizer{}, p)

	want := strings.Join([]string{
		"            if(funcName == 'level' && args.size() == 1) {",
		"                return Log.level();",
		"            }",
		"            else if(funcName == 'write' && args.size() == 2) {",
		"                Log.write((String)nthArg(args, 1));",
		"                return null;",
		"            }",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestSynthesize_InstanceVoidUsesOwnerType(t *testing.T) {
	p := buildPack(t, "Geometry",
		"move :: Integer -> Integer -> void",
		"constructor Point :: Integer -> Integer",
	)

	plan := (&Synthesizer{}).Synthesize(p)
	assert.Equal(t, "Point", plan.OwnerType)
	assert.Equal(t, "GeometryCls", plan.ClassName)

	got := strings.Join(plan.Ladder(), "\n")
	assert.Contains(t, got, "            else if(funcName == 'move' && args.size() == 4) {\n"+
		"                ((Point)nthArg(args, 3)).move((Integer)nthArg(args, 1), (Integer)nthArg(args, 2));\n"+
		"                return null;\n"+
		"            }")
}

func TestSynthesize_UniversalTypeNeverChecked(t *testing.T) {
	p := buildPack(t, "Coll",
		"static put :: Object -> String -> void",
		"static put :: Integer -> Object -> void",
	)

	plan := (&Synthesizer{}).Synthesize(p)
	require.Len(t, plan.Fragments, 1)
	branches := plan.Fragments[0].Branches
	require.Len(t, branches, 2)

	assert.Equal(t, []TypeCheck{{Index: 2, Type: "String"}}, branches[0].Guard.TypeChecks)
	assert.Equal(t, []TypeCheck{{Index: 1, Type: "Integer"}}, branches[1].Guard.TypeChecks)
}

func TestSynthesize_CustomUniversalType(t *testing.T) {
	p := buildPack(t, "Any",
		"static f :: Any -> void",
		"static f :: Object -> void",
	)

	plan := (&Synthesizer{UniversalType: "Any"}).Synthesize(p)
	branches := plan.Fragments[0].Branches

	assert.Empty(t, branches[0].Guard.TypeChecks)
	assert.Equal(t, []TypeCheck{{Index: 1, Type: "Object"}}, branches[1].Guard.TypeChecks)
}

func TestSynthesize_ReservedNamesRenamedForRoutingOnly(t *testing.T) {
	p := buildPack(t, "Rec", "delete :: () -> void")

	s := &Synthesizer{Namer: pack.Namer{Reserved: []string{"delete"}, Suffix: "Fn"}}
	got := ladder(t, s, p)

	assert.Contains(t, got, "funcName == 'deleteFn' && args.size() == 2")
	// The call still targets the declared method
	assert.Contains(t, got, "((Rec)nthArg(args, 1)).delete();")
}

// =============================================================================
// Ladder chaining and overrides
// =============================================================================

func TestLadder_SingleChainAcrossNames(t *testing.T) {
	p := buildPack(t, "Str",
		"static upper :: String -> String",
		"static lower :: String -> String",
		"static trim :: String -> String",
	)

	lines := (&Synthesizer{}).Synthesize(p).Ladder()

	var opens []string
	for _, line := range lines {
		if strings.HasSuffix(line, "{") {
			opens = append(opens, strings.TrimSpace(line[:strings.Index(line, "(")]))
		}
	}
	assert.Equal(t, []string{"if", "else if", "else if"}, opens)
}

func TestLadder_OverridePrecedence(t *testing.T) {
	p := buildPack(t, "Str",
		"static format :: String -> List<Object> -> String",
		"static format :: String -> Object -> String",
		"static format :: String -> String",
		"static trim :: String -> String",
	)
	override := "            if(funcName == 'format') {\n                return Str.format(args);\n            }\n"

	plan := (&Synthesizer{Overrides: mapOverrides{"Str_format": override}}).Synthesize(p)
	require.Len(t, plan.Fragments, 2)

	format := plan.Fragments[0]
	assert.Equal(t, Verbatim, format.Strategy)
	assert.Empty(t, format.Branches)
	assert.Equal(t, override, format.Override)

	lines := plan.Ladder()
	// The override is one ladder element, spliced exactly
	assert.Equal(t, override, lines[0])
	// and the next generated branch continues the chain
	assert.True(t, strings.HasPrefix(lines[1], "            else if(funcName == 'trim'"))
}

func TestSynthesize_OverrideHitUsesInjectedLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core).Sugar().With(logger.FieldRunID, "run-1")

	p := buildPack(t, "Str", "static format :: String -> String", "static trim :: String -> String")
	s := &Synthesizer{Overrides: mapOverrides{"Str_format": "// custom"}, Log: log}
	s.Synthesize(p)

	hits := logs.FilterMessage("Using override unit").All()
	require.Len(t, hits, 1)
	fields := hits[0].ContextMap()
	assert.Equal(t, "run-1", fields[logger.FieldRunID])
	assert.Equal(t, "Str", fields[logger.FieldPack])
	assert.Equal(t, "format", fields[logger.FieldKey])
}

func TestLadder_ConstructorOverrideKey(t *testing.T) {
	p := buildPack(t, "Geometry",
		"constructor Point :: Integer -> Integer",
		"constructor Point :: ()",
	)

	overrides := mapOverrides{"Geometry_constructor": "// custom"}
	plan := (&Synthesizer{Overrides: overrides}).Synthesize(p)

	require.Len(t, plan.Fragments, 1)
	assert.Equal(t, Verbatim, plan.Fragments[0].Strategy)
	assert.Equal(t, "construct", plan.Fragments[0].EmitName)
	assert.Equal(t, []string{"// custom"}, plan.Ladder())

	// An override keyed by the constructor's declared name does not apply
	plan = (&Synthesizer{Overrides: mapOverrides{"Geometry_Point": "// wrong"}}).Synthesize(p)
	assert.Equal(t, Synthesized, plan.Fragments[0].Strategy)
}

func TestLadder_OverrideKeyIsDeclaredName(t *testing.T) {
	p := buildPack(t, "Rec", "delete :: () -> void")

	s := &Synthesizer{
		Namer:     pack.Namer{Reserved: []string{"delete"}, Suffix: "Fn"},
		Overrides: mapOverrides{"Rec_delete": "// hack"},
	}

	assert.Equal(t, []string{"// hack"}, s.Synthesize(p).Ladder())
}

func TestSynthesize_Deterministic(t *testing.T) {
	p := buildPack(t, "Mix",
		"zeta :: Object -> void",
		"static alpha :: String -> String",
		"zeta :: String -> void",
		"constructor Mix :: ()",
		"static alpha :: Integer -> String",
		"beta :: () -> Integer",
	)
	s := &Synthesizer{}

	first := ladder(t, s, p)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, ladder(t, s, p))
	}
}

// =============================================================================
// Ambiguity
// =============================================================================

func TestAmbiguity_UniversalParameterShadows(t *testing.T) {
	p := buildPack(t, "Bag",
		"add :: Object -> void",
		"add :: String -> void",
	)

	plan := (&Synthesizer{}).Synthesize(p)

	require.Len(t, plan.Ambiguities, 1)
	a := plan.Ambiguities[0]
	assert.Equal(t, "Bag", a.Pack)
	assert.Equal(t, "add", a.Name)
	assert.Equal(t, 1, a.Arity)
	assert.Equal(t, []string{"Object"}, a.Winner.ParamTypes)
	assert.Equal(t, []string{"String"}, a.Shadowed.ParamTypes)

	// Output is unchanged: the earlier branch comes first and checks nothing
	// but the receiver, so it wins for any argument
	branches := plan.Fragments[0].Branches
	require.Len(t, branches, 2)
	assert.Equal(t, []TypeCheck{{Index: 2, Type: "Bag"}}, branches[0].Guard.TypeChecks)
}

func TestAmbiguity_DistinctTypesAreFine(t *testing.T) {
	p := buildPack(t, "Bag",
		"add :: String -> void",
		"add :: Object -> void",
	)

	plan := (&Synthesizer{}).Synthesize(p)

	// String first, then the universal catch-all: both reachable
	assert.Empty(t, plan.Ambiguities)
}

func TestAmbiguity_IdenticalSignatures(t *testing.T) {
	p := buildPack(t, "Dup",
		"static f :: String -> Integer -> void",
		"static f :: String -> Integer -> String",
	)

	plan := (&Synthesizer{}).Synthesize(p)
	require.Len(t, plan.Ambiguities, 1)
	assert.Equal(t, "String", plan.Ambiguities[0].Shadowed.ReturnType)
}

func TestAmbiguity_StaticShadowsInstance(t *testing.T) {
	p := buildPack(t, "Mixed",
		"f :: String -> String",
		"static f :: String -> String",
	)

	plan := (&Synthesizer{}).Synthesize(p)

	// The static guard never tests the receiver slot
	require.Len(t, plan.Ambiguities, 1)
	assert.Equal(t, signature.Static, plan.Ambiguities[0].Winner.Kind)
	assert.Equal(t, signature.Instance, plan.Ambiguities[0].Shadowed.Kind)
}

func TestAmbiguity_OverriddenGroupNotReported(t *testing.T) {
	p := buildPack(t, "Bag",
		"add :: Object -> void",
		"add :: String -> void",
	)

	plan := (&Synthesizer{Overrides: mapOverrides{"Bag_add": "// hack"}}).Synthesize(p)
	assert.Empty(t, plan.Ambiguities)
}

func TestAmbiguityError(t *testing.T) {
	assert.NoError(t, AmbiguityError(nil))

	p := buildPack(t, "Bag",
		"add :: Object -> void",
		"add :: String -> void",
	)
	err := AmbiguityError((&Synthesizer{}).Synthesize(p).Ambiguities)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAmbiguousOverload))
	assert.Contains(t, err.Error(), "Bag.add/1")
	assert.NotEmpty(t, errors.GetAllHints(err))
}
