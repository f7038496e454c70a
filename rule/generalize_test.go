package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyburl-go/anyburl/kg"
	"github.com/anyburl-go/anyburl/rule"
	"github.com/anyburl-go/anyburl/walk"
)

// buildAcyclicRule reconstructs the length-3 bottom rule whose head is
// (a, r, d) and whose body walks a -> b -> e, dangling away from the head:
// the only forward walk of length 3 in this graph. The dangling endpoint e
// keeps the rule acyclic.
func buildAcyclicRule() *walk.BottomRule {
	g := kg.New([]kg.Triple{
		kg.New("a", "r", "d"),
		kg.New("a", "p", "b"),
		kg.New("b", "q", "e"),
	})
	sampler := walk.NewSampler(nil)
	for i := 0; i < 500; i++ {
		br, err := sampler.Sample(g, 3, walk.ForwardOnly)
		if err != nil {
			continue
		}
		if br != nil && !br.Cyclical && br.Head.Subject == "a" && br.Head.Object == "d" {
			return br
		}
	}
	return nil
}

func TestGeneralize_AcyclicProducesAC1AndAC2(t *testing.T) {
	br := buildAcyclicRule()
	require.NotNil(t, br, "expected to reconstruct the acyclic bottom rule within 500 attempts")

	rules, err := rule.Generalize(br)
	require.NoError(t, err)
	require.Len(t, rules, 2)

	types := []rule.RuleType{rules[0].Type, rules[1].Type}
	assert.Contains(t, types, rule.AC1)
	assert.Contains(t, types, rule.AC2)

	for _, r := range rules {
		assert.NotEmpty(t, r.String())
		assert.Contains(t, r.String(), "<-")

		switch r.Type {
		case rule.AC1:
			// Acyclic AC1 anchors both head endpoints.
			assert.Equal(t, rule.NewConstant("a"), r.Head.Subject)
			assert.Equal(t, rule.NewConstant("d"), r.Head.Object)
		case rule.AC2:
			// AC2 anchors only the Y position; the walk started from the
			// subject here, so Y is the head object.
			assert.Equal(t, rule.Constant, r.Head.Object.Kind)
			assert.Equal(t, rule.Variable, r.Head.Subject.Kind)
		}
	}
}

func TestGeneralize_CyclicalProducesThreeVariants(t *testing.T) {
	g := kg.New([]kg.Triple{
		kg.New("a", "r", "b"),
		kg.New("b", "r", "c"),
		kg.New("c", "r", "a"),
	})
	sampler := walk.NewSampler(nil)

	var br *walk.BottomRule
	for i := 0; i < 500 && br == nil; i++ {
		candidate, err := sampler.Sample(g, 3, walk.ForwardOnly)
		require.NoError(t, err)
		if candidate != nil && candidate.Cyclical {
			br = candidate
		}
	}
	require.NotNil(t, br)

	rules, err := rule.Generalize(br)
	require.NoError(t, err)
	require.Len(t, rules, 3)

	var sawC, sawYConst, sawXConst bool
	var yConstRule, xConstRule *rule.GeneralizedRule
	for _, r := range rules {
		switch r.Type {
		case rule.C:
			sawC = true
			assert.Equal(t, rule.Variable, r.Head.Subject.Kind)
			assert.Equal(t, rule.Variable, r.Head.Object.Kind)
		case rule.AC1:
			switch r.Variant {
			case rule.YAsConstant:
				sawYConst = true
				yConstRule = r
			case rule.XAsConstant:
				sawXConst = true
				xConstRule = r
			}
		}
	}
	assert.True(t, sawC)
	assert.True(t, sawYConst)
	assert.True(t, sawXConst)

	// The two AC1 variants must anchor different head positions to
	// different constants, not the same entity under two labels.
	require.NotNil(t, yConstRule)
	require.NotNil(t, xConstRule)
	assert.NotEqual(t, yConstRule.String(), xConstRule.String())
	assert.NotEqual(t, headConstant(t, yConstRule), headConstant(t, xConstRule))
}

// headConstant returns the single constant entity anchored in r's head
// (exactly one of Subject/Object, since r is an AC1 variant).
func headConstant(t *testing.T, r *rule.GeneralizedRule) string {
	t.Helper()
	switch {
	case r.Head.Subject.Kind == rule.Constant && r.Head.Object.Kind == rule.Variable:
		return r.Head.Subject.Name
	case r.Head.Object.Kind == rule.Constant && r.Head.Subject.Kind == rule.Variable:
		return r.Head.Object.Name
	default:
		t.Fatalf("expected exactly one constant head position, got subject=%v object=%v", r.Head.Subject, r.Head.Object)
		return ""
	}
}

func TestGeneralize_KeyDeduplicatesIdenticalRules(t *testing.T) {
	br := buildAcyclicRule()
	require.NotNil(t, br)

	first, err := rule.Generalize(br)
	require.NoError(t, err)
	second, err := rule.Generalize(br)
	require.NoError(t, err)

	assert.Equal(t, first[0].Key(), second[0].Key())
	assert.Equal(t, first[0].String(), second[0].String())
}

func TestGeneralize_BodyLengthMatchesBottomRule(t *testing.T) {
	br := buildAcyclicRule()
	require.NotNil(t, br)

	rules, err := rule.Generalize(br)
	require.NoError(t, err)
	for _, r := range rules {
		assert.Len(t, r.Body, len(br.Body))
	}
}
