package rule

import "errors"

var (
	// ErrInvalidRuleType is returned when a rule is constructed with a
	// RuleType other than AC1, AC2, or C.
	ErrInvalidRuleType = errors.New("rule: rule type must be one of AC1, AC2, C")
	// ErrMissingAC1Variant is returned when an AC1 rule is built from a
	// cyclical bottom rule without specifying which endpoint stays constant.
	ErrMissingAC1Variant = errors.New("rule: cyclical AC1 rules require an AC1Variant")
	// ErrUnexpectedAC1Variant is returned when an AC1Variant is given for a
	// rule type other than AC1. An acyclic AC1 rule given a variant is not
	// rejected; its variant has no effect on the anchoring.
	ErrUnexpectedAC1Variant = errors.New("rule: AC1Variant only applies to cyclical AC1 rules")
	// ErrInvalidCanonical is returned by ParseCanonical when its input does
	// not match the canonical rule grammar.
	ErrInvalidCanonical = errors.New("rule: malformed canonical rule string")
)
