// Package predict turns a learned rule set into link predictions: given a
// partially known triple, it grounds every applicable rule's body against
// the training graph and ranks the resulting candidate entities.
//
// Candidates are compared by the full descending tuple of confidences that
// proposed them, padded with zeros to length k and ordered
// lexicographically: a candidate backed by one high-confidence rule beats
// a candidate backed by any number of weaker ones, and ties on the best
// rule unwind through the second-best, and so on. This is the maximum
// aggregation strategy of the AnyBURL paper.
package predict
