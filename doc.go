// Package anyburl is an anytime bottom-up rule learner for knowledge-graph
// completion.
//
// What is anyburl?
//
//	Given a set of subject-relation-object facts, it samples random walks
//	("bottom rules") from the graph, lifts them into variable-typed logic
//	rules, estimates each rule's confidence by Monte-Carlo sampling, and
//	accumulates a rule set under a wall-clock budget. The learned rules then
//	rank candidate entities for link-prediction queries of the form
//	(subject, relation, ?) or (?, relation, object).
//
// Under the hood, everything is organized into one package per concern:
//
//	kg/         — the indexed knowledge graph (Triple, Graph, adjacency)
//	walk/       — the bottom-rule sampler (random walks under visit constraints)
//	rule/       — rule representation (Term, Atom, GeneralizedRule) and the generalizer
//	confidence/ — Monte-Carlo confidence estimation
//	learn/      — the anytime controller (saturation-driven path growth)
//	predict/    — the rule-based predictor (grounding + lexicographic ranking)
//	eval/       — Hits@k and MRR evaluation
//	loader/     — CSV ingestion of triples
//	cmd/anyburl — CLI wiring the above into learn/predict/eval subcommands
//
// See DESIGN.md in the repository root for the per-package design
// rationale.
package anyburl
