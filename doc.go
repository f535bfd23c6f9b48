// Package weft is a deterministic generative-grammar engine: it compiles a
// tree of generative nodes once, then renders it into punctuated prose for
// any integer seed — same seed ⇒ same text, different seeds ⇒ (very likely)
// different text.
//
// 🧵 What is weft?
//
//	A small, deterministic library built from five pieces:
//		• token/    — the output vocabulary: words plus control marks
//		• grammar/  — the node model: literals, sequences, weighted choice,
//		              shuffles, labeled (correlated) choice
//		• cycle/    — a fixed pool of prime moduli, one per choice point
//		• compiler/ — one-time compilation and per-seed evaluation
//		• prose/    — the assembler: spacing, capitalization, punctuation
//		              precedence, the a/an rule, the terminal period
//
// ✨ Why weft?
//
//   - Reproducible — no hidden randomness; a seed fully determines the output
//   - Total — evaluation never fails on a compiled tree, for any seed
//   - Pure Go library core — the only runtime dependency is x/text
//
// Quick taste:
//
//	root := grammar.Seq(
//	    grammar.Article,
//	    grammar.Choice(grammar.Lit("cat"), grammar.Lit("elephant")),
//	)
//	tree, _ := compiler.Compile(root)
//	fmt.Println(tree.Generate(0)) // e.g. "A cat."
//
// A line-oriented text format lives in parse/, and cmd/weft wraps the whole
// pipeline in a CLI with a seed-stepping REPL.
//
//	go get github.com/weftlang/weft
package weft
