package learn

import (
	"math/rand"
	"time"

	"github.com/anyburl-go/anyburl/rule"
)

// Config holds every tunable of the anytime controller.
type Config struct {
	// SampleSize is the number of body groundings confidence.Estimate
	// draws per rule.
	SampleSize int
	// Sat is the saturation threshold: once a time span's fraction of
	// rediscovered (vs. newly discovered) rules exceeds Sat, the path
	// length grows by one.
	Sat float64
	// TimeSpan is how long a single sampling span runs before saturation
	// is checked.
	TimeSpan time.Duration
	// PC is the pessimistic (Laplace) smoothing constant passed to the
	// confidence estimator.
	PC float64
	// MaxTotalTime bounds the controller's entire run.
	MaxTotalTime time.Duration
	// AlternateCyclicSampling, when true, restricts sampling to cyclical
	// bottom rules on odd iterations while the path length is exactly 3.
	AlternateCyclicSampling bool
	// Quality decides whether a scored rule is kept. Defaults to keeping
	// rules with at least two head groundings, the paper's own "very lax"
	// default criterion.
	Quality func(*rule.GeneralizedRule) bool
	// Observer, if set, receives a progress snapshot after every
	// iteration.
	Observer Observer
	// Rand seeds the sampler and estimator's random sources. A nil value
	// falls back to a fixed default seed.
	Rand *rand.Rand
}

func defaultQuality(r *rule.GeneralizedRule) bool {
	return r.Stats.HeadGroundingsCount >= 2
}

func (c Config) withDefaults() Config {
	if c.Quality == nil {
		c.Quality = defaultQuality
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(1))
	}
	return c
}

func (c Config) validate() error {
	if c.TimeSpan <= 0 || c.MaxTotalTime <= 0 {
		return ErrInvalidConfig
	}
	return nil
}
