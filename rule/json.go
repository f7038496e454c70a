package rule

import (
	"encoding/json"
	"fmt"
)

// FromAtoms reconstructs a GeneralizedRule from already-generalized atoms,
// recomputing its Key and canonical string from head and body as given.
// UnmarshalJSON uses it for records that carry no canonical string:
// Generalize is only reachable from a walk.BottomRule, but a previously
// learned rule set has none.
func FromAtoms(ruleType RuleType, variant AC1Variant, head Atom, body []Atom, stats Stats) *GeneralizedRule {
	return &GeneralizedRule{
		Type:      ruleType,
		Variant:   variant,
		Head:      head,
		Body:      body,
		Stats:     stats,
		key:       buildKey(head, body),
		canonical: canonicalString(head, body),
	}
}

func (k TermKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *TermKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "variable":
		*k = Variable
	case "constant":
		*k = Constant
	default:
		return fmt.Errorf("rule: unknown term kind %q", s)
	}
	return nil
}

func (rt RuleType) MarshalJSON() ([]byte, error) {
	return json.Marshal(rt.String())
}

func (rt *RuleType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "AC1":
		*rt = AC1
	case "AC2":
		*rt = AC2
	case "C":
		*rt = C
	default:
		return fmt.Errorf("rule: unknown rule type %q", s)
	}
	return nil
}

func (v AC1Variant) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

func (v *AC1Variant) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "Y_as_constant":
		*v = YAsConstant
	case "X_as_constant":
		*v = XAsConstant
	case "none":
		*v = NoVariant
	default:
		return fmt.Errorf("rule: unknown AC1 variant %q", s)
	}
	return nil
}

// ruleJSON is the wire shape for a GeneralizedRule. Head/Body hold the
// grounding-orientation atoms the predictor evaluates; the canonical string
// is stored alongside them because it is rendered from the walk-chained
// view, which cannot be reconstructed from Head/Body alone once the walk
// is gone.
type ruleJSON struct {
	Type      RuleType   `json:"type"`
	Variant   AC1Variant `json:"variant"`
	Head      Atom       `json:"head"`
	Body      []Atom     `json:"body"`
	Canonical string     `json:"canonical,omitempty"`
	Stats     Stats      `json:"stats"`
}

// MarshalJSON renders the rule's type, variant, atoms, canonical string,
// and stats. Key is derived, not stored.
func (r *GeneralizedRule) MarshalJSON() ([]byte, error) {
	return json.Marshal(ruleJSON{
		Type:      r.Type,
		Variant:   r.Variant,
		Head:      r.Head,
		Body:      r.Body,
		Canonical: r.canonical,
		Stats:     r.Stats,
	})
}

// UnmarshalJSON decodes a rule previously written by MarshalJSON. The
// stored canonical string is kept verbatim and its Key rebuilt by parsing
// it, so a rule's identity survives a save/load round trip; a record with
// no canonical field falls back to rendering one from Head/Body.
func (r *GeneralizedRule) UnmarshalJSON(data []byte) error {
	var wire ruleJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Canonical == "" {
		*r = *FromAtoms(wire.Type, wire.Variant, wire.Head, wire.Body, wire.Stats)
		return nil
	}
	chainedHead, chainedBody, err := ParseCanonical(wire.Canonical)
	if err != nil {
		return err
	}
	*r = GeneralizedRule{
		Type:      wire.Type,
		Variant:   wire.Variant,
		Head:      wire.Head,
		Body:      wire.Body,
		Stats:     wire.Stats,
		key:       buildKey(chainedHead, chainedBody),
		canonical: wire.Canonical,
	}
	return nil
}
