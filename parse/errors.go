package parse

import "errors"

// Sentinel errors for grammar-text parsing. Branch with errors.Is; the
// parser wraps them with line context via %w.
var (
	// ErrSyntax indicates a malformed line, item, or weight.
	ErrSyntax = errors.New("parse: syntax error")

	// ErrDuplicateRule indicates a rule name declared twice.
	ErrDuplicateRule = errors.New("parse: duplicate rule")

	// ErrUnknownRule indicates a reference to a rule that is never declared.
	ErrUnknownRule = errors.New("parse: unknown rule")

	// ErrRecursiveRule indicates a rule that references itself, directly or
	// through other rules.
	ErrRecursiveRule = errors.New("parse: recursive rule")

	// ErrNoMainRule indicates the grammar never declares the start rule.
	ErrNoMainRule = errors.New("parse: no main rule")
)
