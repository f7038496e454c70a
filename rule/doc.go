// Package rule turns a concrete walk.BottomRule into one or more generalized
// rules: the same path with its entities replaced by variables, plus a
// running confidence estimate once confidence.Estimate has been applied.
//
// What: a GeneralizedRule pairs an immutable body (the head atom and body
// atoms, in terms of Variable/Constant Term values) with a mutable Stats
// block (confidence and the grounding counts it was computed from).
//
// Why a tagged Term: entity ids are opaque, so telling a variable like
// "A2" apart from an entity that happens to be named "A2" is impossible by
// looking at the string alone. Term carries its kind explicitly, which
// keeps the grounding logic total instead of leaning on a naming
// convention.
//
// Generalize enumerates every rule type a bottom rule supports: a cyclical
// bottom rule yields a C rule and two AC1 variants (Y or X held constant);
// an acyclic one yields an AC1 and an AC2 rule. Each call assigns variable
// names by first-occurrence order over the bottom rule's flattened node
// sequence, exactly as the path is walked.
package rule
