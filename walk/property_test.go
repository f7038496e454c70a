package walk_test

import (
	"fmt"
	"math/rand"
	"testing"

	"pgregory.net/rapid"

	"github.com/anyburl-go/anyburl/kg"
	"github.com/anyburl-go/anyburl/walk"
)

// TestSample_Invariants covers invariants 2 and 3 of the testable
// properties: body length equals n-1, every body endpoint is visited, and
// Cyclical is true iff the final node equals a head endpoint.
func TestSample_Invariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		numTriples := rapid.IntRange(3, 20).Draw(rt, "numTriples")
		entityGen := rapid.StringMatching(`[a-f]`)
		relationGen := rapid.StringMatching(`[pq]`)

		triples := make([]kg.Triple, numTriples)
		for i := 0; i < numTriples; i++ {
			s := entityGen.Draw(rt, fmt.Sprintf("s%d", i))
			r := relationGen.Draw(rt, fmt.Sprintf("r%d", i))
			o := entityGen.Draw(rt, fmt.Sprintf("o%d", i))
			triples[i] = kg.New(s, r, o)
		}
		g := kg.New(triples)

		n := rapid.IntRange(1, 4).Draw(rt, "n")
		seed := rapid.Int64().Draw(rt, "seed")
		s := walk.NewSampler(rand.New(rand.NewSource(seed)))

		rule, err := s.Sample(g, n, walk.Both)
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}
		if rule == nil {
			return // NoSample is an acceptable outcome, not a property violation.
		}

		if len(rule.Body) != n-1 {
			rt.Fatalf("len(Body) = %d, want %d", len(rule.Body), n-1)
		}

		for _, step := range rule.Body {
			if _, ok := rule.Visited[step.Subject]; !ok {
				rt.Fatalf("body endpoint %q not in Visited", step.Subject)
			}
			if _, ok := rule.Visited[step.Object]; !ok {
				rt.Fatalf("body endpoint %q not in Visited", step.Object)
			}
		}

		currentNode := rule.Head.Subject
		if rule.StartFrom == walk.Object {
			currentNode = rule.Head.Object
		}
		if len(rule.Body) > 0 {
			last := rule.Body[len(rule.Body)-1]
			if rule.Steps[len(rule.Steps)-1] == walk.Forward {
				currentNode = last.Object
			} else {
				currentNode = last.Subject
			}
		}
		wantCyclical := len(rule.Body) > 0 && currentNode == otherEndpoint
		if rule.Cyclical != wantCyclical {
			rt.Fatalf("Cyclical = %v, want %v", rule.Cyclical, wantCyclical)
		}
	})
}
