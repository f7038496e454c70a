package learn

import "github.com/google/uuid"

// IterationStats is the per-iteration snapshot handed to an Observer: the
// same quantities the controller's loop computes for its own bookkeeping.
type IterationStats struct {
	RunID      uuid.UUID
	Iteration  int
	N          int
	SampleMode string
	NewRules   int
	Saturation float64
	TotalRules int
}

// Observer receives a progress snapshot once per controller iteration. The
// controller never logs directly; cmd/anyburl wires a terminal-rendering
// Observer in front of a running Learn call.
type Observer interface {
	OnIteration(stats IterationStats)
}
