// Package eval scores a predictor against held-out test triples using the
// standard filtered link-prediction metrics: Hits@1, Hits@k, and mean
// reciprocal rank (MRR).
//
// "Filtered" means a candidate already known to be true in training is
// dropped from the ranking before scoring, unless it happens to be the
// test triple's own answer — otherwise a correct-but-already-known fact
// would wrongly push the test answer further down the ranking.
package eval
