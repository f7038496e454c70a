// Package confidence estimates a generalized rule's confidence by Monte
// Carlo sampling: repeatedly grounding the rule's body against a graph and
// checking how often the grounded head is also a fact.
//
// Estimate samples up to sampleSize independent body groundings (each with
// up to 50 inner attempts to satisfy every body atom) and applies
// Laplace-style smoothing with a pessimistic constant pc so that rules with
// very few groundings don't get an overconfident score from a handful of
// lucky samples.
package confidence
