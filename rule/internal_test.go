package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anyburl-go/anyburl/kg"
	"github.com/anyburl-go/anyburl/walk"
)

func sampleBottomRule(t *testing.T, cyclical bool) *walk.BottomRule {
	t.Helper()
	g := kg.New([]kg.Triple{
		kg.New("a", "r", "b"),
		kg.New("b", "r", "c"),
		kg.New("c", "r", "a"),
	})
	s := walk.NewSampler(nil)
	for i := 0; i < 500; i++ {
		br, err := s.Sample(g, 3, walk.ForwardOnly)
		if err != nil || br == nil {
			continue
		}
		if br.Cyclical == cyclical {
			return br
		}
	}
	t.Fatalf("failed to sample a bottom rule with Cyclical=%v", cyclical)
	return nil
}

func TestNewGeneralizedRule_InvalidRuleType(t *testing.T) {
	br := sampleBottomRule(t, true)
	_, err := newGeneralizedRule(br, RuleType(99), NoVariant)
	assert.ErrorIs(t, err, ErrInvalidRuleType)
}

func TestNewGeneralizedRule_MissingAC1Variant(t *testing.T) {
	br := sampleBottomRule(t, true)
	_, err := newGeneralizedRule(br, AC1, NoVariant)
	assert.ErrorIs(t, err, ErrMissingAC1Variant)
}

func TestNewGeneralizedRule_UnexpectedAC1Variant(t *testing.T) {
	br := sampleBottomRule(t, true)
	_, err := newGeneralizedRule(br, C, YAsConstant)
	assert.ErrorIs(t, err, ErrUnexpectedAC1Variant)
}
