package grammar

import "github.com/weftlang/weft/token"

// Node is the sealed interface over grammar node variants. The compiler
// pattern-matches on the concrete types below; external packages construct
// nodes through the package constructors or composite literals.
type Node interface {
	node()
}

// Literal emits Text unchanged. An empty Text emits nothing.
type Literal struct {
	Text string
}

// Sequence emits each child's output in order. Order is significant.
type Sequence struct {
	Children []Node
}

// Alternative pairs a positive integer weight with a child node.
type Alternative struct {
	Weight int
	Child  Node
}

// Weighted emits exactly one alternative's output, chosen with probability
// proportional to its weight. Weights must be positive; the compiler
// rejects anything else.
type Weighted struct {
	Alts []Alternative
}

// Shuffle emits exactly one child per invocation and avoids repeating a
// child until all children have been emitted once within a seed's
// generation (the compiler owns the per-node queue realizing this).
type Shuffle struct {
	Children []Node
}

// Fixed is a transparent wrapper carrying a correlation label. Its
// immediate Weighted/Shuffle child shares a selection cycle with every
// other Fixed node of the same label. All co-labeled choices must have the
// same kind and weight vector; the compiler validates this.
type Fixed struct {
	Label string
	Child Node
}

// Mark is a control node that evaluates to the control token of its Kind.
type Mark struct {
	Kind token.Kind
}

func (*Literal) node()  {}
func (*Sequence) node() {}
func (*Weighted) node() {}
func (*Shuffle) node()  {}
func (*Fixed) node()    {}
func (Mark) node()      {}

// Control mark singletons. These are plain values; equality is structural.
var (
	// Period ends the current sentence.
	Period Node = Mark{Kind: token.Period}
	// Comma requests a ", " separator before the next word.
	Comma Node = Mark{Kind: token.Comma}
	// Semicolon requests a "; " separator before the next word.
	Semicolon Node = Mark{Kind: token.Semicolon}
	// Dash requests a " -- " separator before the next word.
	Dash Node = Mark{Kind: token.Dash}
	// Article resolves to "a" or "an" against the following word.
	Article Node = Mark{Kind: token.Article}
	// Glue suppresses the separator before the next token.
	Glue Node = Mark{Kind: token.Glue}
)
