package predict

import (
	"sort"

	"github.com/anyburl-go/anyburl/kg"
	"github.com/anyburl-go/anyburl/rule"
)

// Prediction is one ranked candidate entity.
type Prediction struct {
	Entity     string
	Confidence float64
}

// Predictor grounds learned rules against a training graph to answer
// tail/head link-prediction queries.
type Predictor struct {
	byRelation map[string][]*rule.GeneralizedRule
	training   *kg.Graph
}

// NewPredictor indexes rules by their head relation, sorted by confidence
// descending within each relation, so PredictTail/PredictHead can apply the
// most discriminating rules first.
func NewPredictor(rules map[string]*rule.GeneralizedRule, training *kg.Graph) *Predictor {
	byRelation := make(map[string][]*rule.GeneralizedRule)
	for _, r := range rules {
		relation := r.Head.Relation
		byRelation[relation] = append(byRelation[relation], r)
	}
	for relation := range byRelation {
		rs := byRelation[relation]
		sort.SliceStable(rs, func(i, j int) bool {
			return rs[i].Stats.Confidence > rs[j].Stats.Confidence
		})
	}
	return &Predictor{byRelation: byRelation, training: training}
}

// PredictTail ranks the top-k predicted objects for (subject, relation, ?).
func (p *Predictor) PredictTail(subject, relation string, k int) []Prediction {
	if k <= 0 {
		return nil
	}
	candidates := make(map[string][]float64)
	for _, r := range p.byRelation[relation] {
		for _, pred := range p.applyRuleTail(r, subject) {
			candidates[pred.Entity] = append(candidates[pred.Entity], pred.Confidence)
		}
	}
	return topK(candidates, k)
}

// PredictHead ranks the top-k predicted subjects for (?, relation, object).
func (p *Predictor) PredictHead(relation, object string, k int) []Prediction {
	if k <= 0 {
		return nil
	}
	candidates := make(map[string][]float64)
	for _, r := range p.byRelation[relation] {
		for _, pred := range p.applyRuleHead(r, object) {
			candidates[pred.Entity] = append(candidates[pred.Entity], pred.Confidence)
		}
	}
	return topK(candidates, k)
}

func (p *Predictor) applyRuleTail(r *rule.GeneralizedRule, subject string) []Prediction {
	grounding := make(map[string]string)
	switch r.Head.Subject.Kind {
	case rule.Variable:
		grounding[r.Head.Subject.Name] = subject
	default: // Constant
		if r.Head.Subject.Name != subject {
			return nil
		}
	}

	var predictions []Prediction
	for _, g := range p.completeGrounding(r, grounding) {
		switch r.Head.Object.Kind {
		case rule.Variable:
			if val, ok := g[r.Head.Object.Name]; ok {
				predictions = append(predictions, Prediction{Entity: val, Confidence: r.Stats.Confidence})
			}
		default: // Constant
			predictions = append(predictions, Prediction{Entity: r.Head.Object.Name, Confidence: r.Stats.Confidence})
		}
	}
	return predictions
}

func (p *Predictor) applyRuleHead(r *rule.GeneralizedRule, object string) []Prediction {
	grounding := make(map[string]string)
	switch r.Head.Object.Kind {
	case rule.Variable:
		grounding[r.Head.Object.Name] = object
	default: // Constant
		if r.Head.Object.Name != object {
			return nil
		}
	}

	var predictions []Prediction
	for _, g := range p.completeGrounding(r, grounding) {
		switch r.Head.Subject.Kind {
		case rule.Variable:
			if val, ok := g[r.Head.Subject.Name]; ok {
				predictions = append(predictions, Prediction{Entity: val, Confidence: r.Stats.Confidence})
			}
		default: // Constant
			predictions = append(predictions, Prediction{Entity: r.Head.Subject.Name, Confidence: r.Stats.Confidence})
		}
	}
	return predictions
}

// completeGrounding enumerates every way to extend partial into a full
// grounding of r's body against the training graph, breadth-first: each
// body atom either checks an already-fully-bound fact or fans its
// groundings out over every matching entity in the graph.
func (p *Predictor) completeGrounding(r *rule.GeneralizedRule, partial map[string]string) []map[string]string {
	groundings := []map[string]string{partial}
	for _, atom := range r.Body {
		var next []map[string]string
		for _, g := range groundings {
			next = append(next, p.bindAtom(atom, g)...)
		}
		groundings = next
		if len(groundings) == 0 {
			break
		}
	}
	return groundings
}

func resolve(term rule.Term, grounding map[string]string) (string, bool) {
	if term.Kind == rule.Constant {
		return term.Name, true
	}
	val, ok := grounding[term.Name]
	return val, ok
}

func (p *Predictor) bindAtom(atom rule.Atom, grounding map[string]string) []map[string]string {
	subjVal, subjBound := resolve(atom.Subject, grounding)
	objVal, objBound := resolve(atom.Object, grounding)

	switch {
	case subjBound && objBound:
		if p.training.HasFact(subjVal, atom.Relation, objVal) {
			return []map[string]string{cloneGrounding(grounding)}
		}
		return nil

	case subjBound:
		var out []map[string]string
		for obj := range p.training.ObjectsOf(atom.Relation, subjVal) {
			ng := cloneGrounding(grounding)
			ng[atom.Object.Name] = obj
			out = append(out, ng)
		}
		return out

	case objBound:
		var out []map[string]string
		for subj := range p.training.SubjectsOf(atom.Relation, objVal) {
			ng := cloneGrounding(grounding)
			ng[atom.Subject.Name] = subj
			out = append(out, ng)
		}
		return out

	default:
		var out []map[string]string
		for subj, objs := range p.training.SubjectsWithRelation(atom.Relation) {
			for obj := range objs {
				ng := cloneGrounding(grounding)
				ng[atom.Subject.Name] = subj
				ng[atom.Object.Name] = obj
				out = append(out, ng)
			}
		}
		return out
	}
}

func cloneGrounding(g map[string]string) map[string]string {
	ng := make(map[string]string, len(g))
	for k, v := range g {
		ng[k] = v
	}
	return ng
}

// topK aggregates each entity's confidences into a descending tuple padded
// to length k, then returns the k entities whose tuples lexicographically
// compare largest.
func topK(candidates map[string][]float64, k int) []Prediction {
	type scored struct {
		entity string
		tuple  []float64
	}
	scoredEntities := make([]scored, 0, len(candidates))
	for entity, confidences := range candidates {
		sorted := append([]float64(nil), confidences...)
		sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
		tuple := make([]float64, k)
		copy(tuple, sorted)
		scoredEntities = append(scoredEntities, scored{entity: entity, tuple: tuple})
	}

	sort.Slice(scoredEntities, func(i, j int) bool {
		return lexGreater(scoredEntities[i].tuple, scoredEntities[j].tuple)
	})

	if len(scoredEntities) > k {
		scoredEntities = scoredEntities[:k]
	}

	out := make([]Prediction, len(scoredEntities))
	for i, s := range scoredEntities {
		conf := 0.0
		if len(s.tuple) > 0 {
			conf = s.tuple[0]
		}
		out[i] = Prediction{Entity: s.entity, Confidence: conf}
	}
	return out
}

// lexGreater reports whether a sorts before b under "larger tuple first"
// lexicographic comparison. a and b must have equal length.
func lexGreater(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return false
}
