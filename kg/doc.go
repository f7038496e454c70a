// Package kg provides the immutable triple store and relation-keyed graph
// index shared by every other anyburl package.
//
// What
//
//   - Triple is an opaque (subject, relation, object) fact, optionally
//     timestamped, with a Reversed flag that records sampling orientation
//     but never participates in equality.
//   - Graph indexes a slice of Triples once, at construction, into:
//   - outgoing / incoming adjacency for O(1) neighbor enumeration,
//   - adj / adjInv for O(1) fact membership and object/subject sets,
//   - a flat catalogue of entities and relations,
//   - an optional time index (timestamp -> triples, and time-sliced
//     adjacency) for the temporal extension.
//
// Why
//
//	Random-edge access, forward/backward neighbor enumeration, and
//	fact-membership tests are the inner loop of the sampler, the confidence
//	estimator, and the predictor. Building one read-only index up front
//	keeps all three O(1)/O(output) instead of re-scanning triples.
//
// Concurrency
//
//	Graph is built once by New and never mutated afterward. It has no
//	internal locking: concurrent readers (multiple sampler/estimator/predictor
//	goroutines in learn.LearnParallel) are safe precisely because nothing
//	ever writes to it again. The one exception is RandomTriple, which
//	advances the graph's own random source and so must not be called from
//	several goroutines at once.
package kg
