package compiler

import (
	"sync"

	"github.com/weftlang/weft/prose"
	"github.com/weftlang/weft/token"
)

// Tree is a compiled grammar. It is immutable except for the Shuffle
// queues, which persist across calls to realize sampling without
// replacement within one seed's generation; calls are serialized by an
// internal mutex so a Tree may be shared between goroutines.
type Tree struct {
	mu   sync.Mutex
	root node
}

// Tokens evaluates the tree for seed and returns the flat token stream.
// It never fails: evaluation is total on a compiled tree.
func (t *Tree) Tokens(seed uint64) []token.Token {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.root.emit(seed, nil)
}

// Generate evaluates the tree for seed and assembles the token stream into
// finished prose: spacing, capitalization, punctuation precedence, a/an
// resolution and the terminal period.
func (t *Tree) Generate(seed uint64) string {
	return prose.Assemble(t.Tokens(seed))
}
