package kg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyburl-go/anyburl/kg"
)

// TestHasFact_TrivialGraph covers scenario S1: a two-edge chain a-r->b-r->c.
func TestHasFact_TrivialGraph(t *testing.T) {
	g := kg.New([]kg.Triple{
		kg.New("a", "r", "b"),
		kg.New("b", "r", "c"),
	})

	assert.True(t, g.HasFact("a", "r", "b"))
	assert.False(t, g.HasFact("a", "r", "c"))

	objs := g.ObjectsOf("r", "a")
	require.Len(t, objs, 1)
	_, ok := objs["b"]
	assert.True(t, ok)
}

func TestGraph_Invariants(t *testing.T) {
	triples := []kg.Triple{
		kg.New("a", "r1", "b"),
		kg.New("b", "r2", "c"),
		kg.New("a", "r1", "b"), // duplicate: must collapse in adjacency, not in Triples()
	}
	g := kg.New(triples)

	require.Len(t, g.Triples(), 3, "duplicates are preserved in the triple sequence")

	for _, tr := range triples {
		assert.True(t, g.HasFact(tr.Subject, tr.Relation, tr.Object))
		objs := g.ObjectsOf(tr.Relation, tr.Subject)
		_, ok := objs[tr.Object]
		assert.True(t, ok)
		subjs := g.SubjectsOf(tr.Relation, tr.Object)
		_, ok = subjs[tr.Subject]
		assert.True(t, ok)
	}

	assert.ElementsMatch(t, []string{"a", "b", "c"}, g.Entities())
	assert.ElementsMatch(t, []string{"r1", "r2"}, g.Relations())
}

func TestGraph_RandomTriple_EmptyGraph(t *testing.T) {
	g := kg.New(nil)
	_, err := g.RandomTriple()
	assert.ErrorIs(t, err, kg.ErrEmptyGraph)
}

func TestGraph_RandomTriple_Deterministic(t *testing.T) {
	triples := []kg.Triple{kg.New("a", "r", "b"), kg.New("b", "r", "c"), kg.New("c", "r", "a")}
	g := kg.New(triples)
	got, err := g.RandomTriple()
	require.NoError(t, err)
	found := false
	for _, tr := range triples {
		if tr == got {
			found = true
		}
	}
	assert.True(t, found, "RandomTriple must return one of the constructed triples")
}

func TestGraph_DegreeStats(t *testing.T) {
	g := kg.New([]kg.Triple{
		kg.New("a", "r", "b"),
		kg.New("a", "r", "c"),
		kg.New("b", "r", "c"),
	})
	stats := g.DegreeStats()
	assert.Equal(t, 2, stats.Max)
	assert.Greater(t, stats.Mean, 0.0)
}
