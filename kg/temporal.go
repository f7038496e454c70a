package kg

// temporalIndex holds the optional time-sliced adjacency for timestamped
// facts. It is populated only for triples carrying a timestamp;
// non-temporal graphs pay no cost beyond the empty maps.
type temporalIndex struct {
	all       []Triple
	byTime    map[float64][]Triple
	adjByTime map[float64]map[string]map[string]map[string]struct{} // t -> relation -> subject -> objects
	adjInvByT map[float64]map[string]map[string]map[string]struct{} // t -> relation -> object -> subjects
	times     []float64
}

func newTemporalIndex() *temporalIndex {
	return &temporalIndex{
		byTime:    make(map[float64][]Triple),
		adjByTime: make(map[float64]map[string]map[string]map[string]struct{}),
		adjInvByT: make(map[float64]map[string]map[string]map[string]struct{}),
	}
}

func (idx *temporalIndex) add(t Triple) {
	idx.all = append(idx.all, t)
	if _, ok := idx.byTime[t.Timestamp]; !ok {
		idx.times = append(idx.times, t.Timestamp)
	}
	idx.byTime[t.Timestamp] = append(idx.byTime[t.Timestamp], t)

	byRelSubj, ok := idx.adjByTime[t.Timestamp]
	if !ok {
		byRelSubj = make(map[string]map[string]map[string]struct{})
		idx.adjByTime[t.Timestamp] = byRelSubj
	}
	bySubj, ok := byRelSubj[t.Relation]
	if !ok {
		bySubj = make(map[string]map[string]struct{})
		byRelSubj[t.Relation] = bySubj
	}
	objs, ok := bySubj[t.Subject]
	if !ok {
		objs = make(map[string]struct{})
		bySubj[t.Subject] = objs
	}
	objs[t.Object] = struct{}{}

	byRelObj, ok := idx.adjInvByT[t.Timestamp]
	if !ok {
		byRelObj = make(map[string]map[string]map[string]struct{})
		idx.adjInvByT[t.Timestamp] = byRelObj
	}
	byObj, ok := byRelObj[t.Relation]
	if !ok {
		byObj = make(map[string]map[string]struct{})
		byRelObj[t.Relation] = byObj
	}
	subjs, ok := byObj[t.Object]
	if !ok {
		subjs = make(map[string]struct{})
		byObj[t.Object] = subjs
	}
	subjs[t.Subject] = struct{}{}
}

// TemporalTriples returns every triple that carries a timestamp, in input
// order. Temporal-window sampling picks its head triples from this slice.
func (g *Graph) TemporalTriples() []Triple {
	return g.temporal.all
}

// TriplesAtTime returns every triple stamped with exactly this timestamp.
func (g *Graph) TriplesAtTime(timestamp float64) []Triple {
	return g.temporal.byTime[timestamp]
}

// TriplesInInterval returns every triple whose timestamp falls in
// [start, end]. The scan is linear over distinct timestamps; with very
// many of them a sorted structure and binary search would pay off.
func (g *Graph) TriplesInInterval(start, end float64) []Triple {
	var result []Triple
	for _, t := range g.temporal.times {
		if t >= start && t <= end {
			result = append(result, g.temporal.byTime[t]...)
		}
	}
	return result
}

// HasFactTemporal checks whether (s, r, o) holds at the given timestamp
// within +/- tolerance. A nil timestamp (hasTimestamp=false) falls back to
// the plain, time-agnostic HasFact.
func (g *Graph) HasFactTemporal(s, r, o string, timestamp float64, hasTimestamp bool, tolerance float64) bool {
	if !hasTimestamp {
		return g.HasFact(s, r, o)
	}
	tMin, tMax := timestamp-tolerance, timestamp+tolerance
	for _, t := range g.temporal.times {
		if t < tMin || t > tMax {
			continue
		}
		byRelSubj, ok := g.temporal.adjByTime[t]
		if !ok {
			continue
		}
		bySubj, ok := byRelSubj[r]
		if !ok {
			continue
		}
		objs, ok := bySubj[s]
		if !ok {
			continue
		}
		if _, ok := objs[o]; ok {
			return true
		}
	}
	return false
}
