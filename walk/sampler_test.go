package walk_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyburl-go/anyburl/kg"
	"github.com/anyburl-go/anyburl/walk"
)

func TestSample_InvalidArguments(t *testing.T) {
	g := kg.New([]kg.Triple{kg.New("a", "r", "b")})
	s := walk.NewSampler(rand.New(rand.NewSource(1)))

	_, err := s.Sample(g, 0, walk.Both)
	assert.ErrorIs(t, err, walk.ErrInvalidPathLength)

	_, err = s.Sample(g, 2, walk.Direction(99))
	assert.ErrorIs(t, err, walk.ErrInvalidDirection)
}

func TestSample_EmptyGraphIsNoSample(t *testing.T) {
	g := kg.New(nil)
	s := walk.NewSampler(rand.New(rand.NewSource(1)))
	rule, err := s.Sample(g, 2, walk.Both)
	require.NoError(t, err)
	assert.Nil(t, rule)
}

// TestSample_CycleDetection is scenario S2: a-r->b-r->c-r->a, walking
// forward for 3 steps from a must close the cycle back to a.
func TestSample_CycleDetection(t *testing.T) {
	g := kg.New([]kg.Triple{
		kg.New("a", "r", "b"),
		kg.New("b", "r", "c"),
		kg.New("c", "r", "a"),
	})
	s := walk.NewSampler(rand.New(rand.NewSource(7)))

	var found *walk.BottomRule
	for i := 0; i < 200 && found == nil; i++ {
		rule, err := s.Sample(g, 3, walk.ForwardOnly)
		require.NoError(t, err)
		if rule != nil && rule.Cyclical {
			found = rule
		}
	}
	require.NotNil(t, found, "expected to sample a cyclical rule within 200 attempts")
	assert.Len(t, found.Body, 2)
}

func TestSample_BodyLengthAndVisited(t *testing.T) {
	g := kg.New([]kg.Triple{
		kg.New("a", "r", "b"),
		kg.New("b", "r", "c"),
		kg.New("c", "r", "d"),
		kg.New("d", "r", "e"),
	})
	s := walk.NewSampler(rand.New(rand.NewSource(3)))

	for i := 0; i < 50; i++ {
		n := 3
		rule, err := s.Sample(g, n, walk.ForwardOnly)
		require.NoError(t, err)
		if rule == nil {
			continue
		}
		assert.Len(t, rule.Body, n-1)
		for _, step := range rule.Body {
			_, ok := rule.Visited[step.Object]
			assert.True(t, ok)
		}
	}
}
