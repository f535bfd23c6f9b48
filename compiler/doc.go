// Package compiler turns a grammar node tree into a compiled Tree and
// evaluates it per seed.
//
// What:
//
//   - Compile(root) walks the tree once, binding every Weighted/Shuffle
//     choice point to a prime cycle from a fresh cycle.Pool (shared per
//     Fixed label), validating weights, alternative lists and label groups
//     as it goes. The pool and label map are discarded when Compile
//     returns; the Tree retains only the assigned cycles.
//   - Tree.Tokens(seed) walks the compiled tree and emits the flat token
//     stream for that seed.
//   - Tree.Generate(seed) assembles that stream into finished prose.
//
// Selection:
//
//   - Weighted: idx = (seed mod cycle) mod totalWeight, then a cumulative
//     walk over the weight vector — integer-only weighted selection.
//   - Shuffle: a per-node queue seeded by a partial swap pass; elements are
//     popped until exhausted, giving sampling without replacement across
//     repeated invocations within one seed's generation.
//
// Determinism:
//
//   - Same tree, same seed ⇒ same output. The only mutable state is the
//     Shuffle queue, which resets whenever the seed changes; Tree
//     serializes calls internally so a compiled tree is safe to share.
//
// Errors (errors.Is-branchable, returned by Compile only — evaluation is
// total on a compiled tree):
//
//   - ErrEmptyChoice: a Weighted/Shuffle node has no alternatives.
//   - ErrBadWeight: a weight is zero or negative.
//   - ErrLabelMismatch: co-labeled choices differ in kind or weight vector.
//   - cycle.ErrPoolExhausted: the grammar has more choice points than the
//     prime pool can serve.
package compiler
