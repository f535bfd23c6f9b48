package parse_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlang/weft/compiler"
	"github.com/weftlang/weft/grammar"
	"github.com/weftlang/weft/parse"
	"github.com/weftlang/weft/token"
)

// TestParse_SingleAlternativeIsSequence verifies a one-alternative rule
// expands to its sequence directly, consuming no choice point.
func TestParse_SingleAlternativeIsSequence(t *testing.T) {
	node, err := parse.Parse("main = hello world")
	require.NoError(t, err)
	assert.Equal(t, grammar.Seq(grammar.Lit("hello"), grammar.Lit("world")), node)
}

// TestParse_WeightsAndAlternatives verifies weighted alternative parsing
// with the default weight 1.
func TestParse_WeightsAndAlternatives(t *testing.T) {
	node, err := parse.Parse("main = 2 big | small")
	require.NoError(t, err)
	assert.Equal(t, grammar.Pick(
		grammar.Alt(2, grammar.Lit("big")),
		grammar.Alt(1, grammar.Lit("small")),
	), node)
}

// TestParse_Marks verifies punctuation, article, glue and empty items.
func TestParse_Marks(t *testing.T) {
	node, err := parse.Parse("main = a/an cat , five + pm ; () .")
	require.NoError(t, err)
	assert.Equal(t, grammar.Seq(
		grammar.Mark{Kind: token.Article},
		grammar.Lit("cat"),
		grammar.Mark{Kind: token.Comma},
		grammar.Lit("five"),
		grammar.Mark{Kind: token.Glue},
		grammar.Lit("pm"),
		grammar.Mark{Kind: token.Semicolon},
		grammar.Empty(),
		grammar.Mark{Kind: token.Period},
	), node)
}

// TestParse_ReferencesAndLabels verifies rule expansion and Fixed
// wrapping, with forward references allowed.
func TestParse_ReferencesAndLabels(t *testing.T) {
	src := `
main = <animal> and <animal@pet>
animal = cat | dog
`
	node, err := parse.Parse(src)
	require.NoError(t, err)

	animal := grammar.Choice(grammar.Lit("cat"), grammar.Lit("dog"))
	assert.Equal(t, grammar.Seq(
		animal,
		grammar.Lit("and"),
		grammar.Fix("pet", animal),
	), node)
}

// TestParse_ShuffleRule verifies ~= builds a Shuffle node.
func TestParse_ShuffleRule(t *testing.T) {
	node, err := parse.Parse("main ~= one | two | three")
	require.NoError(t, err)
	assert.Equal(t, grammar.Mix(
		grammar.Lit("one"), grammar.Lit("two"), grammar.Lit("three"),
	), node)
}

// TestParse_EmptyAlternative verifies an empty alternative emits nothing:
// the optional-item idiom.
func TestParse_EmptyAlternative(t *testing.T) {
	node, err := parse.Parse("main = very | ")
	require.NoError(t, err)
	assert.Equal(t, grammar.Choice(grammar.Lit("very"), grammar.Empty()), node)
}

// TestParse_CommentsAndBlankLines verifies both are skipped, including
// trailing comments.
func TestParse_CommentsAndBlankLines(t *testing.T) {
	src := `
# a grammar
main = hello   # the only rule

`
	node, err := parse.Parse(src)
	require.NoError(t, err)
	assert.Equal(t, grammar.Lit("hello"), node)
}

// TestParse_Errors walks every sentinel.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"missing equals", "main hello", parse.ErrSyntax},
		{"bad rule name", "ma in = x", parse.ErrSyntax},
		{"zero weight", "main = 0 x | y", parse.ErrSyntax},
		{"weight on shuffle", "main ~= 2 x | y", parse.ErrSyntax},
		{"unclosed reference", "main = <animal", parse.ErrSyntax},
		{"stray bracket", "main = ani>mal", parse.ErrSyntax},
		{"empty reference", "main = <>", parse.ErrSyntax},
		{"bad label", "main = <x@>\nx = a", parse.ErrSyntax},
		{"duplicate rule", "main = x\nmain = y", parse.ErrDuplicateRule},
		{"unknown rule", "main = <ghost>", parse.ErrUnknownRule},
		{"direct recursion", "main = <main>", parse.ErrRecursiveRule},
		{"indirect recursion", "main = <a>\na = <b>\nb = <a>", parse.ErrRecursiveRule},
		{"no main rule", "other = x", parse.ErrNoMainRule},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse.Parse(tc.src)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestParse_RoundTrip compiles a parsed grammar and checks generation is
// deterministic and correlated via labels.
func TestParse_RoundTrip(t *testing.T) {
	src := `
pronoun = he | she
own     = his | her
line    = <pronoun@who> lost <own@who2> way   # independent labels
main    = <line> . <line>
`
	node, err := parse.Parse(src)
	require.NoError(t, err)

	tree, err := compiler.Compile(node)
	require.NoError(t, err)

	fresh, err := compiler.Compile(node)
	require.NoError(t, err)

	for seed := uint64(0); seed < 100; seed++ {
		out := tree.Generate(seed)
		assert.NotEmpty(t, out)
		assert.Equal(t, out, fresh.Generate(seed), "seed %d", seed)
	}
}

// TestParse_LabelCorrelatesAcrossReferences verifies two labeled
// references to one rule resolve identically per seed.
func TestParse_LabelCorrelatesAcrossReferences(t *testing.T) {
	src := `
animal = cat | dog
main   = <animal@pair> <animal@pair>
`
	node, err := parse.Parse(src)
	require.NoError(t, err)
	tree, err := compiler.Compile(node)
	require.NoError(t, err)

	for seed := uint64(0); seed < 100; seed++ {
		toks := tree.Tokens(seed)
		require.Len(t, toks, 2)
		assert.Equal(t, toks[0], toks[1], "seed %d", seed)
	}
}

// TestParseFile reads a grammar from disk.
func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pet.weft")
	require.NoError(t, os.WriteFile(path, []byte("main = a/an <animal>\nanimal = owl | cat\n"), 0o644))

	node, err := parse.ParseFile(path)
	require.NoError(t, err)

	tree, err := compiler.Compile(node)
	require.NoError(t, err)
	out := tree.Generate(0)
	assert.Contains(t, []string{"An owl.", "A cat."}, out)

	_, err = parse.ParseFile(filepath.Join(t.TempDir(), "missing.weft"))
	assert.Error(t, err)
}
