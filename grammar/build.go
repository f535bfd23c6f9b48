package grammar

// Lit returns a literal node emitting text unchanged.
func Lit(text string) Node { return &Literal{Text: text} }

// Empty returns a node that emits nothing.
func Empty() Node { return &Literal{} }

// Seq returns a sequence emitting each child in order.
func Seq(children ...Node) Node { return &Sequence{Children: children} }

// Alt pairs a weight with a child for use with Pick.
func Alt(weight int, child Node) Alternative {
	return Alternative{Weight: weight, Child: child}
}

// Pick returns a weighted choice over the given alternatives.
func Pick(alts ...Alternative) Node { return &Weighted{Alts: alts} }

// Choice returns a uniform choice over children: a weighted choice with
// every weight equal to 1.
func Choice(children ...Node) Node {
	alts := make([]Alternative, len(children))
	for i, c := range children {
		alts[i] = Alternative{Weight: 1, Child: c}
	}
	return &Weighted{Alts: alts}
}

// Mix returns a shuffle over children: one child per invocation, none
// repeated until all have been emitted once within a seed's generation.
func Mix(children ...Node) Node { return &Shuffle{Children: children} }

// Fix wraps child with a correlation label. Co-labeled Weighted/Shuffle
// children share one selection cycle and therefore resolve identically for
// a given seed.
func Fix(label string, child Node) Node {
	return &Fixed{Label: label, Child: child}
}
