package confidence

import (
	"math/rand"

	"github.com/anyburl-go/anyburl/kg"
	"github.com/anyburl-go/anyburl/rule"
)

const maxGroundingAttempts = 50

// Estimator samples body groundings from a kg.Graph using its own random
// source, so a learning run can be reproduced by constructing it with a
// seeded *rand.Rand.
type Estimator struct {
	rng *rand.Rand
}

// NewEstimator returns an Estimator driven by rng. If rng is nil, a
// process-local default source is used.
func NewEstimator(rng *rand.Rand) *Estimator {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Estimator{rng: rng}
}

// Estimate samples up to sampleSize body groundings of r against g and
// writes the resulting counts and Laplace-smoothed confidence into r.Stats.
func (e *Estimator) Estimate(r *rule.GeneralizedRule, g *kg.Graph, sampleSize int, pc float64) error {
	r.Stats.BodyGroundingsCount = 0
	r.Stats.HeadGroundingsCount = 0

	for i := 0; i < sampleSize; i++ {
		grounding, ok := e.sampleBodyGrounding(r, g)
		if !ok {
			continue
		}
		r.Stats.BodyGroundingsCount++
		if e.checkHeadGrounding(r, g, grounding) {
			r.Stats.HeadGroundingsCount++
		}
	}

	if r.Stats.BodyGroundingsCount > 0 {
		r.Stats.Confidence = (float64(r.Stats.HeadGroundingsCount) + pc) / (float64(r.Stats.BodyGroundingsCount) + pc)
	} else {
		r.Stats.Confidence = 0
	}
	return nil
}

// sampleBodyGrounding tries up to maxGroundingAttempts times to bind every
// body atom's variables to a consistent set of entities, starting from
// constants already fixed by the rule.
func (e *Estimator) sampleBodyGrounding(r *rule.GeneralizedRule, g *kg.Graph) (map[string]string, bool) {
	for attempt := 0; attempt < maxGroundingAttempts; attempt++ {
		grounding := make(map[string]string)
		for _, atom := range r.Body {
			if atom.Subject.Kind == rule.Constant {
				grounding[atom.Subject.Name] = atom.Subject.Name
			}
			if atom.Object.Kind == rule.Constant {
				grounding[atom.Object.Name] = atom.Object.Name
			}
		}

		ok := true
		for _, atom := range r.Body {
			if !e.bindAtom(g, atom, grounding) {
				ok = false
				break
			}
		}
		if ok {
			return grounding, true
		}
	}
	return nil, false
}

// bindAtom extends grounding to satisfy atom, choosing randomly among the
// graph's matching facts whenever more than one binding would work.
func (e *Estimator) bindAtom(g *kg.Graph, atom rule.Atom, grounding map[string]string) bool {
	subjKey, objKey := atom.Subject.Name, atom.Object.Name
	subjVal, subjBound := grounding[subjKey]
	objVal, objBound := grounding[objKey]

	switch {
	case subjBound && objBound:
		return g.HasFact(subjVal, atom.Relation, objVal)

	case subjBound:
		obj, ok := randomSetMember(e.rng, g.ObjectsOf(atom.Relation, subjVal))
		if !ok {
			return false
		}
		grounding[objKey] = obj
		return true

	case objBound:
		subj, ok := randomSetMember(e.rng, g.SubjectsOf(atom.Relation, objVal))
		if !ok {
			return false
		}
		grounding[subjKey] = subj
		return true

	default:
		bySubject := g.SubjectsWithRelation(atom.Relation)
		subj, ok := randomMapKey(e.rng, bySubject)
		if !ok {
			return false
		}
		obj, ok := randomSetMember(e.rng, bySubject[subj])
		if !ok {
			return false
		}
		grounding[subjKey] = subj
		grounding[objKey] = obj
		return true
	}
}

// checkHeadGrounding resolves the generalized head's subject and object
// against grounding (falling back to the term's own name for constants not
// otherwise bound), then checks whether the result is a fact in g.
func (e *Estimator) checkHeadGrounding(r *rule.GeneralizedRule, g *kg.Graph, grounding map[string]string) bool {
	subj, ok := grounding[r.Head.Subject.Name]
	if !ok {
		subj = r.Head.Subject.Name
	}
	obj, ok := grounding[r.Head.Object.Name]
	if !ok {
		obj = r.Head.Object.Name
	}
	return g.HasFact(subj, r.Head.Relation, obj)
}

func randomSetMember(rng *rand.Rand, set map[string]struct{}) (string, bool) {
	if len(set) == 0 {
		return "", false
	}
	target := rng.Intn(len(set))
	i := 0
	for k := range set {
		if i == target {
			return k, true
		}
		i++
	}
	panic("unreachable")
}

func randomMapKey(rng *rand.Rand, m map[string]map[string]struct{}) (string, bool) {
	if len(m) == 0 {
		return "", false
	}
	target := rng.Intn(len(m))
	i := 0
	for k := range m {
		if i == target {
			return k, true
		}
		i++
	}
	panic("unreachable")
}
