// Package walk samples "bottom rules": concrete paths through a kg.Graph
// used as pattern seeds for rule generalization.
//
// What
//
//   - Sample picks a random head triple, a random endpoint to start from,
//     and then grows a simple path of n-1 further edges, forbidding
//     revisits except for a cycle-closing final step back to the head's
//     other endpoint.
//   - BottomRule records the head, which endpoint the walk started from,
//     the traversed body with its per-step direction, the visited-node
//     set, and whether the walk closed a cycle.
//   - Chained and FlattenedNodes produce the canonical left-to-right view
//     used by the generalizer to assign variables.
//
// Why
//
//	Straight, non-revisiting walks capture the bottom-rule assumption of a
//	simple path, while allowing cycle closure at the very last step — which
//	is exactly what closed (C) rules require downstream.
//
// Failure is not an error
//
//	Sample returns (nil, nil) when no valid continuation exists at some
//	step (an empty candidate list). An unlucky walk is an expected outcome
//	of random sampling: callers (the anytime controller) silently retry,
//	they do not treat it as an error.
package walk
