// Package prose converts a flat token stream into finished text in a
// single pass: word spacing, sentence capitalization, punctuation
// precedence, a/an resolution, and the terminal period.
//
// What:
//
//   - Assemble walks the stream once, carrying a separator state between
//     words. Punctuation marks never emit text by themselves; they only
//     strengthen the pending separator, which the next word flushes.
//
// Precedence (strongest to weakest):
//
//	Period > Semicolon > Dash > Comma > plain space
//
// A stronger pending mark is never downgraded by a weaker one arriving
// later — the first strong-enough mark wins until a word is emitted.
//
// Other rules:
//
//   - The first word of the output and of every new sentence is
//     capitalized (first letter only, Unicode-aware via x/text).
//   - Article emits "a" and defers to the next word: a leading vowel
//     (aeiou, case-insensitive) turns it into "an".
//   - Glue suppresses the separator before the next token.
//   - A terminal "." is appended unless the stream already ended a
//     sentence (or produced nothing).
//
// Complexity: O(n) over tokens, one output buffer, no backtracking.
package prose
