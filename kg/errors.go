package kg

import "errors"

// ErrEmptyGraph is returned by RandomTriple when the graph holds no triples.
// Callers should branch with errors.Is.
var ErrEmptyGraph = errors.New("kg: graph has no triples")
