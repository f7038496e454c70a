package kg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anyburl-go/anyburl/kg"
)

func TestTemporal_HasFactTemporal(t *testing.T) {
	g := kg.New([]kg.Triple{
		kg.NewTemporal("a", "r", "b", 10),
		kg.NewTemporal("a", "r", "c", 20),
	})

	assert.True(t, g.HasFactTemporal("a", "r", "b", 10, true, 0))
	assert.False(t, g.HasFactTemporal("a", "r", "c", 10, true, 0))
	assert.True(t, g.HasFactTemporal("a", "r", "c", 15, true, 5))

	// Falling back to plain HasFact when no timestamp is supplied.
	assert.True(t, g.HasFactTemporal("a", "r", "b", 0, false, 0))
}

func TestTemporal_TriplesAtTimeAndInterval(t *testing.T) {
	g := kg.New([]kg.Triple{
		kg.NewTemporal("a", "r", "b", 1),
		kg.NewTemporal("b", "r", "c", 2),
		kg.NewTemporal("c", "r", "d", 3),
	})

	assert.Len(t, g.TriplesAtTime(2), 1)
	assert.Len(t, g.TriplesInInterval(1, 2), 2)
	assert.Len(t, g.TriplesInInterval(0, 10), 3)
}
