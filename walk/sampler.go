package walk

import (
	"math/rand"

	"github.com/anyburl-go/anyburl/kg"
)

// Sampler draws bottom rules from a kg.Graph using its own random source,
// so callers can reproduce a run by constructing the Sampler with a seeded
// *rand.Rand.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a Sampler driven by rng. If rng is nil, a
// process-local default source is used.
func NewSampler(rng *rand.Rand) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Sampler{rng: rng}
}

// Sample draws one bottom rule of path length n (the head counts as 1, so
// the body has n-1 edges) under the given direction constraint.
//
// A nil, nil result means the walk could not be completed (NoSample): some
// step had no surviving candidate edge. This is not an error; callers are
// expected to retry with a fresh sample.
func (s *Sampler) Sample(g *kg.Graph, n int, dir Direction) (*BottomRule, error) {
	return s.sample(g, n, dir, false, 0)
}

// SampleTemporal draws one bottom rule like Sample while additionally
// enforcing time ordering: the head is drawn only from timestamped
// triples, a timestamped body edge must not precede the walk's current
// time, and, when window > 0, must not advance it by more than window.
// Edges without a timestamp are never rejected on temporal grounds.
func (s *Sampler) SampleTemporal(g *kg.Graph, n int, dir Direction, window float64) (*BottomRule, error) {
	return s.sample(g, n, dir, true, window)
}

func (s *Sampler) sample(g *kg.Graph, n int, dir Direction, temporal bool, window float64) (*BottomRule, error) {
	if n < 1 {
		return nil, ErrInvalidPathLength
	}
	switch dir {
	case Both, ForwardOnly, BackwardOnly:
	default:
		return nil, ErrInvalidDirection
	}

	var head kg.Triple
	if temporal {
		heads := g.TemporalTriples()
		if len(heads) == 0 {
			return nil, nil
		}
		head = heads[s.rng.Intn(len(heads))]
	} else {
		heads := g.Triples()
		if len(heads) == 0 {
			return nil, nil
		}
		head = heads[s.rng.Intn(len(heads))]
	}

	startFrom := Subject
	if s.rng.Intn(2) == 1 {
		startFrom = Object
	}
	currentNode := head.Subject
	if startFrom == Object {
		currentNode = head.Object
	}

	rule := newBottomRule(head, startFrom)
	if n == 1 {
		return rule, nil
	}

	for step := 0; step < n-1; step++ {
		stepDir, err := s.pickStepDirection(dir)
		if err != nil {
			return nil, err
		}

		candidates := possibleMoves(g, currentNode, stepDir)
		if len(candidates) == 0 {
			return nil, nil
		}

		isLastStep := step == n-2
		filtered := filterValidMoves(rule, candidates, stepDir, isLastStep)
		if temporal {
			filtered = filterTemporalMoves(rule, filtered, window)
		}
		if len(filtered) == 0 {
			return nil, nil
		}

		chosen := filtered[s.rng.Intn(len(filtered))]
		rule.addTriple(chosen, stepDir)
		if stepDir == Forward {
			rule.Visited[chosen.Object] = struct{}{}
			currentNode = chosen.Object
		} else {
			rule.Visited[chosen.Subject] = struct{}{}
			currentNode = chosen.Subject
		}
	}

	if currentNode == head.Subject || currentNode == head.Object {
		rule.Cyclical = true
	}
	return rule, nil
}

func (s *Sampler) pickStepDirection(dir Direction) (StepDirection, error) {
	switch dir {
	case ForwardOnly:
		return Forward, nil
	case BackwardOnly:
		return Backward, nil
	case Both:
		if s.rng.Float64() < 0.5 {
			return Forward, nil
		}
		return Backward, nil
	default:
		return 0, ErrInvalidDirection
	}
}

// possibleMoves enumerates every edge reachable from currentNode in the
// given step direction, as a triple oriented (subject, relation, object)
// regardless of traversal direction.
func possibleMoves(g *kg.Graph, currentNode string, stepDir StepDirection) []kg.Triple {
	if stepDir == Forward {
		out := g.NeighboursOut(currentNode)
		moves := make([]kg.Triple, len(out))
		for i, e := range out {
			moves[i] = kg.Triple{
				Subject: currentNode, Relation: e.Relation, Object: e.Object,
				Timestamp: e.Timestamp, HasTimestamp: e.HasTimestamp,
			}
		}
		return moves
	}
	in := g.NeighboursIn(currentNode)
	moves := make([]kg.Triple, len(in))
	for i, e := range in {
		moves[i] = kg.Triple{
			Subject: e.Subject, Relation: e.Relation, Object: currentNode,
			Timestamp: e.Timestamp, HasTimestamp: e.HasTimestamp,
		}
	}
	return moves
}

// filterTemporalMoves drops timestamped moves that would step backward in
// time, or further ahead than window when window > 0. Moves without a
// timestamp, and walks with no current time yet, pass through unchanged.
func filterTemporalMoves(rule *BottomRule, candidates []kg.Triple, window float64) []kg.Triple {
	if !rule.HasCurrentTime {
		return candidates
	}
	kept := make([]kg.Triple, 0, len(candidates))
	for _, move := range candidates {
		if move.HasTimestamp {
			if move.Timestamp < rule.CurrentTime {
				continue
			}
			if window > 0 && move.Timestamp-rule.CurrentTime > window {
				continue
			}
		}
		kept = append(kept, move)
	}
	return kept
}

// filterValidMoves rejects moves whose far endpoint was already visited,
// unless this is the final step and the far endpoint closes a cycle back
// to the head's other endpoint.
func filterValidMoves(rule *BottomRule, candidates []kg.Triple, stepDir StepDirection, isLastStep bool) []kg.Triple {
	filtered := make([]kg.Triple, 0, len(candidates))
	for _, move := range candidates {
		var farEndpoint string
		if stepDir == Forward {
			farEndpoint = move.Object
		} else {
			farEndpoint = move.Subject
		}

		if _, visited := rule.Visited[farEndpoint]; !visited {
			filtered = append(filtered, move)
			continue
		}
		if !isLastStep {
			continue
		}
		if rule.StartFrom == Subject && farEndpoint == rule.Head.Object {
			filtered = append(filtered, move)
		} else if rule.StartFrom == Object && farEndpoint == rule.Head.Subject {
			filtered = append(filtered, move)
		}
	}
	return filtered
}
