// Package learn implements the anytime bottom-up rule-learning controller:
// it repeatedly samples bottom rules of a growing path length, generalizes
// and scores each one, and grows the path length once a time span's newly
// discovered rules mostly duplicate what is already known.
//
// Learn runs a single cooperative loop and accepts an optional Observer so
// callers can render progress without the controller itself knowing how to
// log. LearnParallel runs the same loop across several goroutines, sharing
// one rule set behind a mutex, for callers who want to trade Learn's single
// ordered random stream for throughput.
package learn
