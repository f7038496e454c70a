package rule

import (
	"fmt"

	"github.com/anyburl-go/anyburl/walk"
)

// Generalize produces every generalized rule a bottom rule supports: a
// cyclical bottom rule yields a closed (C) rule and both AC1 anchorings; an
// acyclic one yields an AC1 and an AC2 rule.
func Generalize(b *walk.BottomRule) ([]*GeneralizedRule, error) {
	if b.Cyclical {
		y, err := newGeneralizedRule(b, AC1, YAsConstant)
		if err != nil {
			return nil, err
		}
		x, err := newGeneralizedRule(b, AC1, XAsConstant)
		if err != nil {
			return nil, err
		}
		closed, err := newGeneralizedRule(b, C, NoVariant)
		if err != nil {
			return nil, err
		}
		return []*GeneralizedRule{y, x, closed}, nil
	}

	ac1, err := newGeneralizedRule(b, AC1, NoVariant)
	if err != nil {
		return nil, err
	}
	ac2, err := newGeneralizedRule(b, AC2, NoVariant)
	if err != nil {
		return nil, err
	}
	return []*GeneralizedRule{ac1, ac2}, nil
}

// newGeneralizedRule validates (ruleType, variant) against b.Cyclical,
// assigns a Term to every distinct node touched by b in first-occurrence
// order over its chained view, then anchors the endpoints the rule type
// calls for.
func newGeneralizedRule(b *walk.BottomRule, ruleType RuleType, variant AC1Variant) (*GeneralizedRule, error) {
	switch ruleType {
	case AC1, AC2, C:
	default:
		return nil, ErrInvalidRuleType
	}
	if ruleType == AC1 && b.Cyclical && variant == NoVariant {
		return nil, ErrMissingAC1Variant
	}
	if ruleType != AC1 && variant != NoVariant {
		return nil, ErrUnexpectedAC1Variant
	}

	flattened := b.FlattenedNodes()

	order := make([]string, 0, len(flattened))
	seen := make(map[string]bool, len(flattened))
	for _, node := range flattened {
		if !seen[node] {
			seen[node] = true
			order = append(order, node)
		}
	}

	mapping := make(map[string]Term, len(order))
	assignedAux := make(map[string]bool)
	auxIndex := 2
	for i, node := range order {
		switch i {
		case 0:
			mapping[node] = NewVariable("Y")
		case 1:
			mapping[node] = NewVariable("X")
		default:
			for assignedAux[fmt.Sprintf("A%d", auxIndex)] {
				auxIndex++
			}
			name := fmt.Sprintf("A%d", auxIndex)
			mapping[node] = NewVariable(name)
			assignedAux[name] = true
		}
	}

	// startNode/xNode are the rule's Y and X head positions: the two
	// head endpoints, not the last node touched by the walk. For a
	// cyclical bottom rule the walk's final node coincides with
	// startNode (it closes back to the opposite head endpoint), so
	// anchoring "the last flattened node" would anchor startNode twice
	// under a different name instead of anchoring the distinct X
	// position AC1's XAsConstant variant calls for.
	startNode, xNode := flattened[0], flattened[1]
	switch ruleType {
	case C:
		// Both endpoints stay variables; nothing to override.
	case AC2:
		mapping[startNode] = NewConstant(startNode)
	case AC1:
		if b.Cyclical {
			if variant == YAsConstant {
				mapping[startNode] = NewConstant(startNode)
			} else {
				mapping[xNode] = NewConstant(xNode)
			}
		} else {
			mapping[startNode] = NewConstant(startNode)
			mapping[xNode] = NewConstant(xNode)
		}
	}

	head := Atom{
		Relation: b.Head.Relation,
		Subject:  mapping[b.Head.Subject],
		Object:   mapping[b.Head.Object],
	}
	body := make([]Atom, len(b.Body))
	for i, t := range b.Body {
		body[i] = Atom{
			Relation: t.Relation,
			Subject:  mapping[t.Subject],
			Object:   mapping[t.Object],
		}
	}

	chainedHead, chainedBody := b.Chained()
	mappedChainedHead := Atom{
		Relation: chainedHead.Relation,
		Subject:  mapping[chainedHead.Subject],
		Object:   mapping[chainedHead.Object],
	}
	mappedChainedBody := make([]Atom, len(chainedBody))
	for i, t := range chainedBody {
		mappedChainedBody[i] = Atom{
			Relation: t.Relation,
			Subject:  mapping[t.Subject],
			Object:   mapping[t.Object],
		}
	}

	return &GeneralizedRule{
		Type:      ruleType,
		Variant:   variant,
		Head:      head,
		Body:      body,
		key:       buildKey(mappedChainedHead, mappedChainedBody),
		canonical: canonicalString(mappedChainedHead, mappedChainedBody),
	}, nil
}
