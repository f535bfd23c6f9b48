// Package parse reads weft's line-oriented grammar text and produces a
// grammar node tree ready for compiler.Compile.
//
// Format, one rule per line:
//
//	# a comment runs to end of line
//	animal = 2 cat | dog | elephant     # weighted alternatives
//	adj    = big | small
//	pair   ~= one | two | three         # ~= declares a shuffle rule
//	main   = a/an <adj> <animal> , and a/an <adj@second> <animal> .
//
// Rules:
//
//   - `name = body` declares a choice rule; `name ~= body` a shuffle rule.
//   - Alternatives are separated by `|`. A leading integer on an
//     alternative is its weight (choice rules only; default 1). An empty
//     alternative emits nothing.
//   - Items within an alternative are whitespace-separated: bare words are
//     literals; `<name>` expands a rule; `<name@label>` expands it wrapped
//     in a correlation label; `.` `,` `;` `--` are punctuation marks;
//     `a/an` is the article mark; `+` glues the surrounding tokens
//     together; `()` emits nothing.
//   - Generation starts at the rule named "main".
//
// Every reference expands into its own copy of the referenced rule, so two
// `<animal>` references draw independently; use `<animal@pet>` twice to
// make them agree. Forward references are fine (rules are collected before
// any body is resolved); self-reference, direct or indirect, is rejected
// with ErrRecursiveRule — the node model is a finite tree and cannot
// express unbounded recursion.
//
// Errors: ErrSyntax, ErrDuplicateRule, ErrUnknownRule, ErrRecursiveRule,
// ErrNoMainRule, each wrapped with the offending line.
package parse
