package learn

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/anyburl-go/anyburl/confidence"
	"github.com/anyburl-go/anyburl/kg"
	"github.com/anyburl-go/anyburl/rule"
	"github.com/anyburl-go/anyburl/walk"
)

// Learn runs the anytime controller to completion: it samples bottom rules
// of a growing path length, generalizes and scores each one, and returns
// every rule that ever passed cfg.Quality, keyed by its canonical string.
//
// A later duplicate of a canonical string overwrites the earlier one
// within the same iteration's span, matching the last-writer-wins merge of
// the algorithm this controller implements.
func Learn(ctx context.Context, g *kg.Graph, cfg Config) (map[string]*rule.GeneralizedRule, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	runID := uuid.New()
	sampler := walk.NewSampler(cfg.Rand)
	estimator := confidence.NewEstimator(cfg.Rand)

	n := 2
	// Keyed by the structured rule.Key while learning; the printable
	// canonical form is only materialized for the returned map.
	globalRules := make(map[rule.Key]*rule.GeneralizedRule)

	iteration := 0
	totalStart := time.Now()
	for time.Since(totalStart) < cfg.MaxTotalTime {
		if ctx.Err() != nil {
			return byCanonical(globalRules), ctx.Err()
		}
		iteration++

		sampleMode := "all"
		if n == 3 && cfg.AlternateCyclicSampling && iteration%2 == 1 {
			sampleMode = "cyclic"
		}

		spanRules := make(map[rule.Key]*rule.GeneralizedRule)
		spanStart := time.Now()
		for time.Since(spanStart) < cfg.TimeSpan {
			if ctx.Err() != nil {
				return byCanonical(globalRules), ctx.Err()
			}

			bottomRule, err := sampler.Sample(g, n, walk.Both)
			if err != nil {
				return byCanonical(globalRules), err
			}
			if bottomRule == nil {
				continue
			}
			if sampleMode == "cyclic" && !bottomRule.Cyclical {
				continue
			}

			generalized, err := rule.Generalize(bottomRule)
			if err != nil {
				return byCanonical(globalRules), err
			}

			for _, r := range generalized {
				if err := estimator.Estimate(r, g, cfg.SampleSize, cfg.PC); err != nil {
					return byCanonical(globalRules), err
				}
				if cfg.Quality(r) {
					spanRules[r.Key()] = r
				}
			}
		}

		saturation := computeSaturation(spanRules, globalRules)
		if saturation > cfg.Sat {
			n++
		}
		for k, r := range spanRules {
			globalRules[k] = r
		}

		if cfg.Observer != nil {
			cfg.Observer.OnIteration(IterationStats{
				RunID:      runID,
				Iteration:  iteration,
				N:          n,
				SampleMode: sampleMode,
				NewRules:   len(spanRules),
				Saturation: saturation,
				TotalRules: len(globalRules),
			})
		}
	}

	return byCanonical(globalRules), nil
}

// byCanonical renders a key-indexed rule map into the canonical-string
// form the entrypoints return.
func byCanonical(rules map[rule.Key]*rule.GeneralizedRule) map[string]*rule.GeneralizedRule {
	out := make(map[string]*rule.GeneralizedRule, len(rules))
	for _, r := range rules {
		out[r.String()] = r
	}
	return out
}

// computeSaturation is the fraction of spanRules whose key was already
// present in globalRules before this iteration's merge.
func computeSaturation(spanRules, globalRules map[rule.Key]*rule.GeneralizedRule) float64 {
	if len(spanRules) == 0 {
		return 0.0
	}
	common := 0
	for k := range spanRules {
		if _, ok := globalRules[k]; ok {
			common++
		}
	}
	return float64(common) / float64(len(spanRules))
}
