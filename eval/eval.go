package eval

import (
	"gonum.org/v1/gonum/stat"

	"github.com/anyburl-go/anyburl/kg"
	"github.com/anyburl-go/anyburl/predict"
)

// Metrics summarizes a predictor's performance over a test set.
type Metrics struct {
	Hits1   float64
	HitsAtK float64
	MRR     float64
}

// Evaluate scores predictor's tail predictions against testTriples,
// filtering out training facts other than the test triple's own answer
// before ranking, and returns Hits@1, Hits@k, and MRR.
func Evaluate(predictor *predict.Predictor, training *kg.Graph, testTriples []kg.Triple, k int) Metrics {
	if len(testTriples) == 0 {
		return Metrics{}
	}

	var hits1, hitsAtK int
	reciprocalRanks := make([]float64, 0, len(testTriples))

	for _, test := range testTriples {
		predictions := predictor.PredictTail(test.Subject, test.Relation, k)
		known := training.ObjectsOf(test.Relation, test.Subject)

		filtered := make([]string, 0, len(predictions))
		for _, p := range predictions {
			if p.Entity == test.Object {
				filtered = append(filtered, p.Entity)
				continue
			}
			if _, isKnown := known[p.Entity]; !isKnown {
				filtered = append(filtered, p.Entity)
			}
		}

		if len(filtered) > 0 && filtered[0] == test.Object {
			hits1++
		}

		rank := indexOf(filtered, test.Object)
		if rank >= 0 && rank < k {
			hitsAtK++
		}

		if rank >= 0 {
			reciprocalRanks = append(reciprocalRanks, 1.0/float64(rank+1))
		} else {
			reciprocalRanks = append(reciprocalRanks, 0.0)
		}
	}

	total := float64(len(testTriples))
	return Metrics{
		Hits1:   float64(hits1) / total,
		HitsAtK: float64(hitsAtK) / total,
		MRR:     stat.Mean(reciprocalRanks, nil),
	}
}

func indexOf(entities []string, target string) int {
	for i, e := range entities {
		if e == target {
			return i
		}
	}
	return -1
}
