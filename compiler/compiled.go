package compiler

import "github.com/weftlang/weft/token"

// node is a compiled grammar node: bound to its cycle (where it has one)
// and to compiled forms of its children. emit appends the node's token
// output for seed to out and returns the extended slice.
type node interface {
	emit(seed uint64, out []token.Token) []token.Token
}

// literal emits its text as a single word token; blank text emits nothing.
type literal struct {
	text string
}

func (l literal) emit(_ uint64, out []token.Token) []token.Token {
	if l.text == "" {
		return out
	}
	return append(out, token.Of(l.text))
}

// mark emits its control token.
type mark struct {
	kind token.Kind
}

func (m mark) emit(_ uint64, out []token.Token) []token.Token {
	return append(out, token.Mark(m.kind))
}

// sequence emits each child in declared order, same seed throughout.
type sequence struct {
	children []node
}

func (s *sequence) emit(seed uint64, out []token.Token) []token.Token {
	for _, c := range s.children {
		out = c.emit(seed, out)
	}
	return out
}

// weighted selects one child by reducing the seed modulo its cycle, then
// modulo the weight total, and walking the cumulative weights.
type weighted struct {
	cycle    uint64
	total    uint64
	weights  []uint64
	children []node
}

func (w *weighted) emit(seed uint64, out []token.Token) []token.Token {
	idx := (seed % w.cycle) % w.total
	for i, wt := range w.weights {
		if idx < wt {
			return w.children[i].emit(seed, out)
		}
		idx -= wt
	}
	// Unreachable: total is the sum of weights, so the walk always lands.
	return out
}

// shuffle owns the only mutable state in a compiled tree: the pending
// queue realizing sampling without replacement within one seed's
// generation. The queue rebuilds whenever the seed changes or it empties.
type shuffle struct {
	cycle    uint64
	children []node

	seeded   bool
	lastSeed uint64
	pending  []node
}

func (s *shuffle) emit(seed uint64, out []token.Token) []token.Token {
	if !s.seeded || s.lastSeed != seed || len(s.pending) == 0 {
		s.reset(seed)
	}
	last := len(s.pending) - 1
	next := s.pending[last]
	s.pending = s.pending[:last]
	return next.emit(seed, out)
}

// reset refills the queue with the children in declared order, then applies
// a seeded partial swap pass: each slot i swaps with
// (seed mod (cycle + 2i)) mod n.
func (s *shuffle) reset(seed uint64) {
	s.seeded = true
	s.lastSeed = seed
	s.pending = append(s.pending[:0], s.children...)
	n := uint64(len(s.pending))
	for i := range s.pending {
		j := (seed % (s.cycle + 2*uint64(i))) % n
		s.pending[i], s.pending[j] = s.pending[j], s.pending[i]
	}
}
