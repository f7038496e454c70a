package learn_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyburl-go/anyburl/kg"
	"github.com/anyburl-go/anyburl/learn"
	"github.com/anyburl-go/anyburl/rule"
)

func chainGraph() *kg.Graph {
	var triples []kg.Triple
	for i := 0; i < 20; i++ {
		a := rune('a' + i%10)
		b := rune('a' + (i+1)%10)
		triples = append(triples, kg.New(string(a), "next", string(b)))
		triples = append(triples, kg.New(string(a), "friend", string(b)))
	}
	return kg.New(triples)
}

type recordingObserver struct {
	calls []learn.IterationStats
}

func (r *recordingObserver) OnIteration(stats learn.IterationStats) {
	r.calls = append(r.calls, stats)
}

func TestLearn_DiscoversRules(t *testing.T) {
	g := chainGraph()
	obs := &recordingObserver{}
	cfg := learn.Config{
		SampleSize:   50,
		Sat:          0.8,
		TimeSpan:     20 * time.Millisecond,
		PC:           1.0,
		MaxTotalTime: 120 * time.Millisecond,
		Observer:     obs,
		Rand:         rand.New(rand.NewSource(42)),
	}

	rules, err := learn.Learn(context.Background(), g, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, rules)
	assert.NotEmpty(t, obs.calls)

	for canonical, r := range rules {
		assert.Equal(t, canonical, r.String())
		assert.GreaterOrEqual(t, r.Stats.HeadGroundingsCount, 2)
	}
}

func TestLearn_InvalidConfig(t *testing.T) {
	g := chainGraph()
	_, err := learn.Learn(context.Background(), g, learn.Config{})
	assert.ErrorIs(t, err, learn.ErrInvalidConfig)
}

func TestLearn_RespectsContextCancellation(t *testing.T) {
	g := chainGraph()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := learn.Config{
		SampleSize:   10,
		Sat:          0.8,
		TimeSpan:     time.Second,
		PC:           1.0,
		MaxTotalTime: time.Second,
	}
	_, err := learn.Learn(ctx, g, cfg)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLearn_CustomQualityFunction(t *testing.T) {
	g := chainGraph()
	cfg := learn.Config{
		SampleSize:   30,
		Sat:          0.8,
		TimeSpan:     20 * time.Millisecond,
		PC:           1.0,
		MaxTotalTime: 60 * time.Millisecond,
		Rand:         rand.New(rand.NewSource(7)),
		Quality: func(r *rule.GeneralizedRule) bool {
			return r.Stats.HeadGroundingsCount >= 100 // unreachable, should yield no rules
		},
	}
	rules, err := learn.Learn(context.Background(), g, cfg)
	require.NoError(t, err)
	assert.Empty(t, rules)
}
