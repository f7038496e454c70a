package kg_test

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"github.com/anyburl-go/anyburl/kg"
)

// TestGraph_HasFactInvariant is invariant 1 of the testable properties: for
// any constructed graph and any triple from its input, HasFact must hold and
// the triple's entities/relation must appear in ObjectsOf/SubjectsOf.
func TestGraph_HasFactInvariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 12).Draw(rt, "n")
		entityGen := rapid.StringMatching(`[a-e]`)
		relationGen := rapid.StringMatching(`[pq]`)

		triples := make([]kg.Triple, n)
		for i := 0; i < n; i++ {
			s := entityGen.Draw(rt, fmt.Sprintf("s%d", i))
			r := relationGen.Draw(rt, fmt.Sprintf("r%d", i))
			o := entityGen.Draw(rt, fmt.Sprintf("o%d", i))
			triples[i] = kg.New(s, r, o)
		}

		g := kg.New(triples)

		for _, tr := range triples {
			if !g.HasFact(tr.Subject, tr.Relation, tr.Object) {
				rt.Fatalf("HasFact(%v) = false, want true", tr)
			}
			objs := g.ObjectsOf(tr.Relation, tr.Subject)
			if _, ok := objs[tr.Object]; !ok {
				rt.Fatalf("%v not in ObjectsOf(%s, %s)", tr.Object, tr.Relation, tr.Subject)
			}
			subjs := g.SubjectsOf(tr.Relation, tr.Object)
			if _, ok := subjs[tr.Subject]; !ok {
				rt.Fatalf("%v not in SubjectsOf(%s, %s)", tr.Subject, tr.Relation, tr.Object)
			}
		}
	})
}
