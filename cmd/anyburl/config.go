package main

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// learnFileConfig mirrors learn.Config for YAML decoding; its duration
// fields are plain seconds rather than Go duration strings, matching the
// original algorithm's ts/max_total_time parameters.
type learnFileConfig struct {
	SampleSize              int     `yaml:"sample_size"`
	Sat                     float64 `yaml:"sat"`
	TimeSpanSeconds         float64 `yaml:"time_span_seconds"`
	PC                      float64 `yaml:"pc"`
	MaxTotalTimeSeconds     float64 `yaml:"max_total_time_seconds"`
	AlternateCyclicSampling bool    `yaml:"alternate_cyclic_sampling"`
	Workers                 int     `yaml:"workers"`
}

func defaultLearnFileConfig() learnFileConfig {
	return learnFileConfig{
		SampleSize:              500,
		Sat:                     0.95,
		TimeSpanSeconds:         1.0,
		PC:                      1.0,
		MaxTotalTimeSeconds:     60.0,
		AlternateCyclicSampling: true,
		Workers:                 1,
	}
}

func loadLearnFileConfig(path string) (learnFileConfig, error) {
	cfg := defaultLearnFileConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c learnFileConfig) timeSpan() time.Duration {
	return time.Duration(c.TimeSpanSeconds * float64(time.Second))
}

func (c learnFileConfig) maxTotalTime() time.Duration {
	return time.Duration(c.MaxTotalTimeSeconds * float64(time.Second))
}
