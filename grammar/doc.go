// Package grammar defines the node model for weft grammars: a closed set of
// generative primitives assembled into a tree, later bound to prime cycles
// by the compiler and rendered per seed.
//
// What:
//
//   - Literal — emits its text unchanged; Empty() is the blank literal.
//   - Sequence — emits each child in order.
//   - Weighted — emits exactly one child, chosen with probability
//     proportional to its positive integer weight; Choice is the uniform
//     special case (all weights 1).
//   - Shuffle — emits exactly one child per invocation, sampling without
//     replacement across repeated invocations within one seed's generation.
//   - Fixed — transparent wrapper that makes its immediate Weighted/Shuffle
//     child share a selection modulus with every other Fixed node carrying
//     the same label, so co-labeled choices resolve identically per seed.
//   - Mark — the control tokens Period, Comma, Semicolon, Dash, Article
//     (a/an) and Glue (no separator), consumed by the prose assembler.
//
// Why:
//
//   - The tree is plain data: constructors are total, structurally compared,
//     and safe to build inline. All validation (positive weights, non-empty
//     alternative lists, consistent label groups) happens once, in
//     compiler.Compile.
//   - Node values may be shared: the same node appearing at several points
//     of a tree compiles once and keeps one selection cycle (and, for
//     Shuffle, one instance state), which is what gives "don't repeat until
//     exhausted" behavior to repeated references.
//
// See compiler for cycle binding and evaluation, prose for text assembly.
package grammar
