package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlang/weft/compiler"
	"github.com/weftlang/weft/grammar"
)

// sample is a grammar exercising every primitive; tests compile it fresh
// to avoid shuffle memo effects between assertions.
func sample() grammar.Node {
	return grammar.Seq(
		grammar.Article,
		grammar.Fix("kind", grammar.Choice(grammar.Lit("elf"), grammar.Lit("orc"))),
		grammar.Lit("walks in"),
		grammar.Comma,
		grammar.Mix(grammar.Lit("singing"), grammar.Lit("shouting"), grammar.Lit("humming")),
		grammar.Period,
		grammar.Lit("everyone stares"),
	)
}

// TestGenerate_Deterministic verifies the seed fully determines the
// output: two independently compiled trees agree at every seed.
func TestGenerate_Deterministic(t *testing.T) {
	a, err := compiler.Compile(sample())
	require.NoError(t, err)
	b, err := compiler.Compile(sample())
	require.NoError(t, err)

	for seed := uint64(0); seed < 200; seed++ {
		assert.Equal(t, a.Generate(seed), b.Generate(seed), "seed %d", seed)
	}
}

// TestGenerate_SeedsDiffer verifies different seeds actually vary the
// output across a modest window.
func TestGenerate_SeedsDiffer(t *testing.T) {
	tree, err := compiler.Compile(sample())
	require.NoError(t, err)

	seen := make(map[string]bool)
	for seed := uint64(0); seed < 50; seed++ {
		seen[tree.Generate(seed)] = true
	}
	assert.Greater(t, len(seen), 1, "50 seeds should not collapse to one output")
}

// TestWeighted_Bias verifies empirical frequencies converge to the weight
// ratios: 2/1/1 ⇒ ~50%/25%/25%.
func TestWeighted_Bias(t *testing.T) {
	tree, err := compiler.Compile(grammar.Pick(
		grammar.Alt(2, grammar.Lit("human")),
		grammar.Alt(1, grammar.Lit("elf")),
		grammar.Alt(1, grammar.Lit("dwarf")),
	))
	require.NoError(t, err)

	const n = 10000
	counts := make(map[string]int)
	for seed := uint64(0); seed < n; seed++ {
		toks := tree.Tokens(seed)
		require.Len(t, toks, 1)
		counts[toks[0].Text]++
	}

	assert.InDelta(t, 0.50, float64(counts["human"])/n, 0.02)
	assert.InDelta(t, 0.25, float64(counts["elf"])/n, 0.02)
	assert.InDelta(t, 0.25, float64(counts["dwarf"])/n, 0.02)
}

// TestWeighted_SeedZeroPicksFirst verifies seed 0 reduces to index 0: the
// first alternative.
func TestWeighted_SeedZeroPicksFirst(t *testing.T) {
	tree, err := compiler.Compile(grammar.Choice(
		grammar.Lit("first"), grammar.Lit("second"), grammar.Lit("third"),
	))
	require.NoError(t, err)

	toks := tree.Tokens(0)
	require.Len(t, toks, 1)
	assert.Equal(t, "first", toks[0].Text)
}

// TestShuffle_NoRepeatWithinSeed verifies three invocations of one shuffle
// node within one seed cover all three children exactly once.
func TestShuffle_NoRepeatWithinSeed(t *testing.T) {
	mix := grammar.Mix(grammar.Lit("one"), grammar.Lit("two"), grammar.Lit("three"))
	tree, err := compiler.Compile(grammar.Seq(mix, mix, mix))
	require.NoError(t, err)

	for seed := uint64(0); seed < 100; seed++ {
		toks := tree.Tokens(seed)
		require.Len(t, toks, 3, "seed %d", seed)

		got := map[string]bool{}
		for _, tk := range toks {
			got[tk.Text] = true
		}
		assert.Len(t, got, 3, "seed %d: a child repeated before exhaustion", seed)
	}
}

// TestShuffle_RefillsAfterExhaustion verifies the queue refills once all
// children have been emitted, repeating the seed's permutation.
func TestShuffle_RefillsAfterExhaustion(t *testing.T) {
	mix := grammar.Mix(grammar.Lit("a"), grammar.Lit("b"), grammar.Lit("c"))
	tree, err := compiler.Compile(grammar.Seq(mix, mix, mix, mix, mix, mix))
	require.NoError(t, err)

	toks := tree.Tokens(9)
	require.Len(t, toks, 6)
	assert.Equal(t, toks[:3], toks[3:], "refill replays the same seed's permutation")
}

// TestShuffle_ResetsOnNewSeed verifies a partially consumed queue is
// discarded when the seed changes.
func TestShuffle_ResetsOnNewSeed(t *testing.T) {
	mix := grammar.Mix(grammar.Lit("a"), grammar.Lit("b"), grammar.Lit("c"))
	tree, err := compiler.Compile(mix)
	require.NoError(t, err)

	// Consume one element at seed 3, then switch seeds; the queue must
	// rebuild, so three draws at seed 4 still cover all children.
	_ = tree.Tokens(3)

	got := map[string]bool{}
	for i := 0; i < 3; i++ {
		toks := tree.Tokens(4)
		require.Len(t, toks, 1)
		got[toks[0].Text] = true
	}
	assert.Len(t, got, 3)
}

// TestShuffle_SamplesWithoutReplacementAcrossCalls verifies repeated
// single-emission calls under one seed walk the whole child set before any
// repeat.
func TestShuffle_SamplesWithoutReplacementAcrossCalls(t *testing.T) {
	mix := grammar.Mix(grammar.Lit("x"), grammar.Lit("y"), grammar.Lit("z"))
	tree, err := compiler.Compile(mix)
	require.NoError(t, err)

	const seed = 17
	got := map[string]bool{}
	for i := 0; i < 3; i++ {
		toks := tree.Tokens(seed)
		require.Len(t, toks, 1)
		assert.False(t, got[toks[0].Text], "call %d repeated %q early", i, toks[0].Text)
		got[toks[0].Text] = true
	}
}

// TestFixed_LabelCorrelation verifies co-labeled choices resolve to the
// same branch index at every seed.
func TestFixed_LabelCorrelation(t *testing.T) {
	tree, err := compiler.Compile(grammar.Seq(
		grammar.Fix("gender", grammar.Choice(grammar.Lit("he"), grammar.Lit("she"))),
		grammar.Fix("gender", grammar.Choice(grammar.Lit("his"), grammar.Lit("her"))),
	))
	require.NoError(t, err)

	for seed := uint64(0); seed < 300; seed++ {
		toks := tree.Tokens(seed)
		require.Len(t, toks, 2)
		assert.Equal(t, toks[0].Text == "he", toks[1].Text == "his",
			"seed %d: %q / %q diverged", seed, toks[0].Text, toks[1].Text)
	}
}

// TestUnlabeled_ChoicesDecorrelate verifies distinct unlabeled choice
// points do not mirror each other everywhere: their cycles differ.
func TestUnlabeled_ChoicesDecorrelate(t *testing.T) {
	tree, err := compiler.Compile(grammar.Seq(
		grammar.Choice(grammar.Lit("he"), grammar.Lit("she")),
		grammar.Choice(grammar.Lit("his"), grammar.Lit("her")),
	))
	require.NoError(t, err)

	diverged := false
	for seed := uint64(0); seed < 10000 && !diverged; seed++ {
		toks := tree.Tokens(seed)
		diverged = (toks[0].Text == "he") != (toks[1].Text == "his")
	}
	assert.True(t, diverged, "independent choice points should disagree somewhere")
}

// TestEmpty_GeneratesNothing verifies the empty grammar yields the empty
// string, with no stray terminal period.
func TestEmpty_GeneratesNothing(t *testing.T) {
	tree, err := compiler.Compile(grammar.Empty())
	require.NoError(t, err)
	assert.Equal(t, "", tree.Generate(0))
}
