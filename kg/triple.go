package kg

import "fmt"

// Triple is an immutable (subject, relation, object) fact. All three
// components are opaque interned strings; Equal compares all three.
// Reversed is orientation metadata recorded by the sampler and does not
// participate in Equal. The built-in == operator (and use as a map key)
// compares every field, Reversed and Timestamp included. Timestamp is present only for temporally
// annotated facts; HasTimestamp reports whether it should be considered.
type Triple struct {
	Subject      string
	Relation     string
	Object       string
	Reversed     bool
	Timestamp    float64
	HasTimestamp bool
}

// New constructs a Triple with no timestamp and Reversed=false.
func New(subject, relation, object string) Triple {
	return Triple{Subject: subject, Relation: relation, Object: object}
}

// NewTemporal constructs a Triple carrying a timestamp.
func NewTemporal(subject, relation, object string, timestamp float64) Triple {
	return Triple{Subject: subject, Relation: relation, Object: object, Timestamp: timestamp, HasTimestamp: true}
}

// Flipped returns a new Triple with subject and object swapped and the
// Reversed flag toggled. The timestamp, if any, is carried over unchanged.
func (t Triple) Flipped() Triple {
	return Triple{
		Subject:      t.Object,
		Relation:     t.Relation,
		Object:       t.Subject,
		Reversed:     !t.Reversed,
		Timestamp:    t.Timestamp,
		HasTimestamp: t.HasTimestamp,
	}
}

// Equal compares two triples by (subject, relation, object) only, ignoring
// Reversed and Timestamp, matching the identity rule in the data model.
func (t Triple) Equal(other Triple) bool {
	return t.Subject == other.Subject && t.Relation == other.Relation && t.Object == other.Object
}

// String renders "(subject, relation, object)", with a "[reversed]" suffix
// when the Reversed flag is set.
func (t Triple) String() string {
	base := fmt.Sprintf("(%s, %s, %s)", t.Subject, t.Relation, t.Object)
	if t.Reversed {
		return base + " [reversed]"
	}
	return base
}
