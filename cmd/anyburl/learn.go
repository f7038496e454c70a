package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/anyburl-go/anyburl/kg"
	"github.com/anyburl-go/anyburl/learn"
	"github.com/anyburl-go/anyburl/loader"
	"github.com/anyburl-go/anyburl/rule"
)

func newLearnCmd() *cobra.Command {
	var configPath, trainPath, outPath string

	cmd := &cobra.Command{
		Use:   "learn",
		Short: "Learn a rule set from a training graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := loadLearnFileConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			triples, err := loader.LoadTriplesCSV(trainPath)
			if err != nil {
				return fmt.Errorf("loading training triples: %w", err)
			}
			g := kg.New(triples)

			cfg := learn.Config{
				SampleSize:              fileCfg.SampleSize,
				Sat:                     fileCfg.Sat,
				TimeSpan:                fileCfg.timeSpan(),
				PC:                      fileCfg.PC,
				MaxTotalTime:            fileCfg.maxTotalTime(),
				AlternateCyclicSampling: fileCfg.AlternateCyclicSampling,
				Rand:                    rand.New(rand.NewSource(1)),
			}

			rules, err := runLearnWithProgress(cmd.Context(), g, cfg, fileCfg.Workers)
			if err != nil {
				return err
			}

			if err := writeRulesJSONL(outPath, rules); err != nil {
				return fmt.Errorf("writing rules: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "learned %d rules -> %s\n", len(rules), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML learner configuration")
	cmd.Flags().StringVar(&trainPath, "train", "", "training triples CSV")
	cmd.Flags().StringVar(&outPath, "out", "rules.jsonl", "output rule set path")
	cmd.MarkFlagRequired("train")

	return cmd
}

// runLearnWithProgress drives the controller on a background goroutine,
// relaying iteration stats to a bubbletea progress view when stdout is a
// terminal, and to a plain line-at-a-time printer otherwise.
func runLearnWithProgress(ctx context.Context, g *kg.Graph, cfg learn.Config, workers int) (map[string]*rule.GeneralizedRule, error) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		cfg.Observer = textObserver{}
		return runLearn(ctx, g, cfg, workers)
	}

	program := tea.NewProgram(progressModel{})
	cfg.Observer = &progressObserver{program: program}

	type result struct {
		rules map[string]*rule.GeneralizedRule
		err   error
	}
	resultCh := make(chan result, 1)
	go func() {
		rules, err := runLearn(ctx, g, cfg, workers)
		program.Send(doneMsg{})
		resultCh <- result{rules: rules, err: err}
	}()

	if _, err := program.Run(); err != nil {
		return nil, err
	}
	res := <-resultCh
	return res.rules, res.err
}

func runLearn(ctx context.Context, g *kg.Graph, cfg learn.Config, workers int) (map[string]*rule.GeneralizedRule, error) {
	if workers > 1 {
		return learn.LearnParallel(ctx, g, cfg, workers)
	}
	return learn.Learn(ctx, g, cfg)
}

// textObserver is the non-interactive fallback: one line per iteration.
type textObserver struct{}

func (textObserver) OnIteration(stats learn.IterationStats) {
	fmt.Printf("iteration %d: n=%d new=%d total=%d saturation=%.2f\n",
		stats.Iteration, stats.N, stats.NewRules, stats.TotalRules, stats.Saturation)
}
