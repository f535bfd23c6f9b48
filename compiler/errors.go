package compiler

import "errors"

// Sentinel errors for compilation. Branch with errors.Is; Compile wraps
// them with node context via %w.
var (
	// ErrNilNode indicates a nil (or foreign) node in the input tree.
	ErrNilNode = errors.New("compiler: nil node")

	// ErrEmptyChoice indicates a Weighted or Shuffle node with no
	// alternatives; selection over nothing is undefined.
	ErrEmptyChoice = errors.New("compiler: choice with no alternatives")

	// ErrBadWeight indicates a zero or negative alternative weight.
	ErrBadWeight = errors.New("compiler: alternative weight must be positive")

	// ErrLabelMismatch indicates two Fixed nodes share a label but wrap
	// choices of different kind, arity, or weight vector, which would make
	// their selections silently diverge.
	ErrLabelMismatch = errors.New("compiler: co-labeled choices do not match")
)
