package compiler

import (
	"fmt"

	"github.com/weftlang/weft/cycle"
	"github.com/weftlang/weft/grammar"
)

// Compile walks root once and returns a Tree bound to prime cycles from a
// fresh pool. The pool and label map live only for the duration of the
// call. Compile is the single validation gate: it rejects nil nodes, empty
// choices, non-positive weights and inconsistent label groups, and fails
// with cycle.ErrPoolExhausted when the grammar has more choice points than
// the pool can serve. No partial tree is returned on error.
//
// Nodes are compiled by identity: the same grammar node reachable from
// several points of the tree compiles once and keeps one cycle (and, for
// Shuffle, one pending queue), so repeated references to one Shuffle node
// share its no-repeat behavior.
func Compile(root grammar.Node) (*Tree, error) {
	ctx := &context{
		pool:     cycle.NewPool(),
		labels:   make(map[string]labelSig),
		compiled: make(map[grammar.Node]node),
	}
	n, err := ctx.compile(root, "")
	if err != nil {
		return nil, err
	}
	return &Tree{root: n}, nil
}

// labelSig records what a label was first bound to, so later co-labeled
// choices can be checked against it.
type labelSig struct {
	shuffled bool
	weights  string
}

// context threads the compilation state (cycle pool, label signatures,
// identity memo) through the recursive walk. It is discarded once Compile
// returns.
type context struct {
	pool     *cycle.Pool
	labels   map[string]labelSig
	compiled map[grammar.Node]node
}

func (c *context) compile(n grammar.Node, label string) (node, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	if done, ok := c.compiled[n]; ok {
		// A shared node keeps the cycle of its first compilation; a label
		// arriving on a later reference must adopt that cycle, not vanish.
		if err := c.adoptLabel(done, label); err != nil {
			return nil, err
		}
		return done, nil
	}

	switch v := n.(type) {
	case *grammar.Literal:
		out := literal{text: v.Text}
		c.compiled[n] = out
		return out, nil

	case grammar.Mark:
		out := mark{kind: v.Kind}
		c.compiled[n] = out
		return out, nil

	case *grammar.Sequence:
		seq := &sequence{children: make([]node, 0, len(v.Children))}
		c.compiled[n] = seq
		for i, child := range v.Children {
			cc, err := c.compile(child, "")
			if err != nil {
				return nil, fmt.Errorf("sequence child %d: %w", i, err)
			}
			seq.children = append(seq.children, cc)
		}
		return seq, nil

	case *grammar.Weighted:
		return c.compileWeighted(v, label)

	case *grammar.Shuffle:
		return c.compileShuffle(v, label)

	case *grammar.Fixed:
		// Transparent: the label applies to the immediate child only.
		cc, err := c.compile(v.Child, v.Label)
		if err != nil {
			return nil, fmt.Errorf("fixed %q: %w", v.Label, err)
		}
		return cc, nil

	default:
		// Unreachable for the sealed grammar.Node vocabulary.
		return nil, fmt.Errorf("node %T: %w", n, ErrNilNode)
	}
}

func (c *context) compileWeighted(v *grammar.Weighted, label string) (node, error) {
	if len(v.Alts) == 0 {
		return nil, ErrEmptyChoice
	}

	w := &weighted{
		weights:  make([]uint64, 0, len(v.Alts)),
		children: make([]node, 0, len(v.Alts)),
	}
	for i, alt := range v.Alts {
		if alt.Weight <= 0 {
			return nil, fmt.Errorf("alternative %d has weight %d: %w", i, alt.Weight, ErrBadWeight)
		}
		w.weights = append(w.weights, uint64(alt.Weight))
		w.total += uint64(alt.Weight)

		cc, err := c.compile(alt.Child, "")
		if err != nil {
			return nil, fmt.Errorf("alternative %d: %w", i, err)
		}
		w.children = append(w.children, cc)
	}

	cyc, err := c.bind(label, labelSig{weights: weightKey(w.weights)})
	if err != nil {
		return nil, err
	}
	w.cycle = cyc
	c.compiled[v] = w
	return w, nil
}

func (c *context) compileShuffle(v *grammar.Shuffle, label string) (node, error) {
	if len(v.Children) == 0 {
		return nil, ErrEmptyChoice
	}

	s := &shuffle{children: make([]node, 0, len(v.Children))}
	for i, child := range v.Children {
		cc, err := c.compile(child, "")
		if err != nil {
			return nil, fmt.Errorf("shuffle child %d: %w", i, err)
		}
		s.children = append(s.children, cc)
	}

	cyc, err := c.bind(label, labelSig{shuffled: true, weights: weightKey(unitWeights(len(v.Children)))})
	if err != nil {
		return nil, err
	}
	s.cycle = cyc
	c.compiled[v] = s
	return s, nil
}

// adoptLabel binds label to the cycle an already-compiled choice carries,
// so later co-labeled choices share it. A label already bound to a
// different cycle cannot be satisfied and fails with ErrLabelMismatch.
// Labels on non-choice nodes are transparent, as everywhere else.
func (c *context) adoptLabel(done node, label string) error {
	if label == "" {
		return nil
	}

	var (
		cyc uint64
		sig labelSig
	)
	switch v := done.(type) {
	case *weighted:
		cyc = v.cycle
		sig = labelSig{weights: weightKey(v.weights)}
	case *shuffle:
		cyc = v.cycle
		sig = labelSig{shuffled: true, weights: weightKey(unitWeights(len(v.children)))}
	default:
		return nil
	}

	if prev, ok := c.labels[label]; ok {
		if prev != sig {
			return fmt.Errorf("label %q: %w", label, ErrLabelMismatch)
		}
	} else {
		c.labels[label] = sig
	}

	if bound, ok := c.pool.Label(label); ok {
		if bound != cyc {
			return fmt.Errorf("label %q is already bound to another choice's cycle: %w", label, ErrLabelMismatch)
		}
		return nil
	}
	c.pool.Bind(label, cyc)
	return nil
}

// bind allocates a cycle, shared per label when one is given. The first
// choice bound to a label fixes its signature; later bindings must match.
func (c *context) bind(label string, sig labelSig) (uint64, error) {
	if label == "" {
		return c.pool.Next()
	}
	if prev, ok := c.labels[label]; ok {
		if prev != sig {
			return 0, fmt.Errorf("label %q: %w", label, ErrLabelMismatch)
		}
	} else {
		c.labels[label] = sig
	}
	return c.pool.ForLabel(label)
}

// unitWeights is the weight vector of an n-way uniform choice.
func unitWeights(n int) []uint64 {
	w := make([]uint64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

// weightKey canonicalizes a weight vector for signature comparison.
func weightKey(weights []uint64) string {
	buf := make([]byte, 0, 4*len(weights))
	for _, w := range weights {
		buf = fmt.Appendf(buf, "%d,", w)
	}
	return string(buf)
}
