package learn

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/anyburl-go/anyburl/confidence"
	"github.com/anyburl-go/anyburl/kg"
	"github.com/anyburl-go/anyburl/rule"
	"github.com/anyburl-go/anyburl/walk"
)

// LearnParallel runs workers independent copies of the controller's
// sampling loop concurrently, sharing one rule set behind a mutex. Each
// worker's saturation is measured against the shared rule set as it stood
// at the start of that worker's span; merges are last-writer-wins, exactly
// as in the sequential controller, so a worker finishing later can
// overwrite a same-keyed rule a different worker merged moments earlier.
//
// This is an optional, purely additive extension: Learn alone is a
// complete implementation of the algorithm.
func LearnParallel(ctx context.Context, g *kg.Graph, cfg Config, workers int) (map[string]*rule.GeneralizedRule, error) {
	if workers < 1 {
		workers = 1
	}
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	runID := uuid.New()
	var mu sync.Mutex
	globalRules := make(map[rule.Key]*rule.GeneralizedRule)
	var sharedN int64 = 2

	totalStart := time.Now()
	eg, ctx := errgroup.WithContext(ctx)

	for worker := 0; worker < workers; worker++ {
		workerSeed := cfg.Rand.Int63() + int64(worker)
		eg.Go(func() error {
			return runWorker(ctx, g, cfg, runID, workerSeed, totalStart, &mu, globalRules, &sharedN)
		})
	}

	if err := eg.Wait(); err != nil {
		return byCanonical(globalRules), err
	}
	return byCanonical(globalRules), nil
}

func runWorker(
	ctx context.Context,
	g *kg.Graph,
	cfg Config,
	runID uuid.UUID,
	seed int64,
	totalStart time.Time,
	mu *sync.Mutex,
	globalRules map[rule.Key]*rule.GeneralizedRule,
	sharedN *int64,
) error {
	rng := rand.New(rand.NewSource(seed))
	sampler := walk.NewSampler(rng)
	estimator := confidence.NewEstimator(rng)

	iteration := 0
	for time.Since(totalStart) < cfg.MaxTotalTime {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		iteration++

		currentN := int(atomic.LoadInt64(sharedN))
		sampleMode := "all"
		if currentN == 3 && cfg.AlternateCyclicSampling && iteration%2 == 1 {
			sampleMode = "cyclic"
		}

		mu.Lock()
		snapshot := make(map[rule.Key]struct{}, len(globalRules))
		for k := range globalRules {
			snapshot[k] = struct{}{}
		}
		mu.Unlock()

		spanRules := make(map[rule.Key]*rule.GeneralizedRule)
		spanStart := time.Now()
		for time.Since(spanStart) < cfg.TimeSpan {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			bottomRule, err := sampler.Sample(g, currentN, walk.Both)
			if err != nil {
				return err
			}
			if bottomRule == nil {
				continue
			}
			if sampleMode == "cyclic" && !bottomRule.Cyclical {
				continue
			}

			generalized, err := rule.Generalize(bottomRule)
			if err != nil {
				return err
			}

			for _, r := range generalized {
				if err := estimator.Estimate(r, g, cfg.SampleSize, cfg.PC); err != nil {
					return err
				}
				if cfg.Quality(r) {
					spanRules[r.Key()] = r
				}
			}
		}

		saturation := 0.0
		if len(spanRules) > 0 {
			common := 0
			for k := range spanRules {
				if _, ok := snapshot[k]; ok {
					common++
				}
			}
			saturation = float64(common) / float64(len(spanRules))
		}
		if saturation > cfg.Sat {
			atomic.CompareAndSwapInt64(sharedN, int64(currentN), int64(currentN+1))
		}

		mu.Lock()
		for k, r := range spanRules {
			globalRules[k] = r
		}
		totalRules := len(globalRules)
		mu.Unlock()

		if cfg.Observer != nil {
			cfg.Observer.OnIteration(IterationStats{
				RunID:      runID,
				Iteration:  iteration,
				N:          currentN,
				SampleMode: sampleMode,
				NewRules:   len(spanRules),
				Saturation: saturation,
				TotalRules: totalRules,
			})
		}
	}
	return nil
}
