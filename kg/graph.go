package kg

import (
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// edgeOut pairs a relation with the object it leads to, from some implicit
// subject. The timestamp, when present, is carried so that walks can apply
// time-ordering constraints without a second lookup.
type edgeOut struct {
	Relation     string
	Object       string
	Timestamp    float64
	HasTimestamp bool
}

// edgeIn pairs a relation with the subject it comes from, into some implicit object.
type edgeIn struct {
	Relation     string
	Subject      string
	Timestamp    float64
	HasTimestamp bool
}

// Graph is the in-memory relational index built once from a sequence of
// triples. It is read-only after construction: see the package doc for the
// concurrency contract.
type Graph struct {
	triples []Triple

	outgoing map[string][]edgeOut
	incoming map[string][]edgeIn

	adj    map[string]map[string]map[string]struct{} // adj[relation][subject] = {object,...}
	adjInv map[string]map[string]map[string]struct{} // adjInv[relation][object] = {subject,...}

	entities  []string
	relations []string

	rng *rand.Rand

	temporal *temporalIndex
}

// Option configures Graph construction.
type Option func(*Graph)

// WithRand supplies the random source for RandomTriple, instead of the
// default source seeded with 1. Useful for reproducible tests.
func WithRand(rng *rand.Rand) Option {
	return func(g *Graph) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// New builds a Graph from triples in O(|triples|). Duplicate triples
// collapse in the adjacency sets but are preserved in Triples().
func New(triples []Triple, opts ...Option) *Graph {
	g := &Graph{
		triples:  make([]Triple, 0, len(triples)),
		outgoing: make(map[string][]edgeOut),
		incoming: make(map[string][]edgeIn),
		adj:      make(map[string]map[string]map[string]struct{}),
		adjInv:   make(map[string]map[string]map[string]struct{}),
		temporal: newTemporalIndex(),
	}
	for _, o := range opts {
		o(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(1))
	}

	entitySeen := make(map[string]struct{})
	relationSeen := make(map[string]struct{})

	for _, t := range triples {
		g.triples = append(g.triples, t)

		g.outgoing[t.Subject] = append(g.outgoing[t.Subject], edgeOut{
			Relation: t.Relation, Object: t.Object,
			Timestamp: t.Timestamp, HasTimestamp: t.HasTimestamp,
		})
		g.incoming[t.Object] = append(g.incoming[t.Object], edgeIn{
			Relation: t.Relation, Subject: t.Subject,
			Timestamp: t.Timestamp, HasTimestamp: t.HasTimestamp,
		})

		g.addAdj(t.Relation, t.Subject, t.Object)

		if t.HasTimestamp {
			g.temporal.add(t)
		}

		if _, ok := entitySeen[t.Subject]; !ok {
			entitySeen[t.Subject] = struct{}{}
			g.entities = append(g.entities, t.Subject)
		}
		if _, ok := entitySeen[t.Object]; !ok {
			entitySeen[t.Object] = struct{}{}
			g.entities = append(g.entities, t.Object)
		}
		if _, ok := relationSeen[t.Relation]; !ok {
			relationSeen[t.Relation] = struct{}{}
			g.relations = append(g.relations, t.Relation)
		}
	}

	return g
}

func (g *Graph) addAdj(relation, subject, object string) {
	bySubj, ok := g.adj[relation]
	if !ok {
		bySubj = make(map[string]map[string]struct{})
		g.adj[relation] = bySubj
	}
	objs, ok := bySubj[subject]
	if !ok {
		objs = make(map[string]struct{})
		bySubj[subject] = objs
	}
	objs[object] = struct{}{}

	byObj, ok := g.adjInv[relation]
	if !ok {
		byObj = make(map[string]map[string]struct{})
		g.adjInv[relation] = byObj
	}
	subjs, ok := byObj[object]
	if !ok {
		subjs = make(map[string]struct{})
		byObj[object] = subjs
	}
	subjs[subject] = struct{}{}
}

// Size returns the number of triples in the graph (including duplicates).
func (g *Graph) Size() int { return len(g.triples) }

// Triples returns the ordered slice of triples as constructed. The returned
// slice must not be mutated by callers.
func (g *Graph) Triples() []Triple { return g.triples }

// Entities returns the flat catalogue of entity IDs.
func (g *Graph) Entities() []string { return g.entities }

// Relations returns the flat catalogue of relation IDs.
func (g *Graph) Relations() []string { return g.relations }

// HasFact reports whether (s, r, o) was present in the input triples.
func (g *Graph) HasFact(s, r, o string) bool {
	bySubj, ok := g.adj[r]
	if !ok {
		return false
	}
	objs, ok := bySubj[s]
	if !ok {
		return false
	}
	_, ok = objs[o]
	return ok
}

// NeighboursOut returns the (relation, object) pairs reachable by a single
// forward edge from s. The returned slice must not be mutated.
func (g *Graph) NeighboursOut(s string) []edgeOut { return g.outgoing[s] }

// NeighboursIn returns the (relation, subject) pairs reachable by a single
// backward edge into o. The returned slice must not be mutated.
func (g *Graph) NeighboursIn(o string) []edgeIn { return g.incoming[o] }

// ObjectsOf returns the set of objects o such that (s, r, o) holds.
func (g *Graph) ObjectsOf(r, s string) map[string]struct{} {
	bySubj, ok := g.adj[r]
	if !ok {
		return nil
	}
	return bySubj[s]
}

// SubjectsOf returns the set of subjects s such that (s, r, o) holds.
func (g *Graph) SubjectsOf(r, o string) map[string]struct{} {
	byObj, ok := g.adjInv[r]
	if !ok {
		return nil
	}
	return byObj[o]
}

// SubjectsWithRelation returns the map of subject -> object-set for every
// subject that has at least one outgoing r edge. Used by the confidence
// estimator to pick a uniformly random subject for a relation, and by the
// predictor to enumerate every subject of it.
func (g *Graph) SubjectsWithRelation(r string) map[string]map[string]struct{} {
	return g.adj[r]
}

// RandomTriple returns a uniformly random triple from the original input
// sequence. Returns ErrEmptyGraph if the graph has no triples. It advances
// the graph's random source, which is not safe for concurrent use.
func (g *Graph) RandomTriple() (Triple, error) {
	if len(g.triples) == 0 {
		return Triple{}, ErrEmptyGraph
	}
	return g.triples[g.rng.Intn(len(g.triples))], nil
}

// Rand exposes the graph's random source, so sampler/estimator code that
// wants graph-scoped randomness (e.g. picking among adjacency-set members)
// can share it instead of constructing a separate source.
func (g *Graph) Rand() *rand.Rand { return g.rng }

// DegreeStats summarizes the out-degree distribution of the graph, counting
// one "edge" per (relation, object) pair leaving each subject.
type DegreeStats struct {
	Mean   float64
	StdDev float64
	Max    int
}

// DegreeStats computes descriptive statistics over the per-entity
// out-degree distribution using gonum/stat. This is a diagnostic aid, not
// used by any learning or prediction path.
func (g *Graph) DegreeStats() DegreeStats {
	if len(g.entities) == 0 {
		return DegreeStats{}
	}
	degrees := make([]float64, len(g.entities))
	maxDeg := 0
	for i, e := range g.entities {
		d := len(g.outgoing[e])
		degrees[i] = float64(d)
		if d > maxDeg {
			maxDeg = d
		}
	}
	mean, std := stat.MeanStdDev(degrees, nil)
	return DegreeStats{Mean: mean, StdDev: std, Max: maxDeg}
}
