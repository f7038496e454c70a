package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anyburl-go/anyburl/eval"
	"github.com/anyburl-go/anyburl/kg"
	"github.com/anyburl-go/anyburl/loader"
	"github.com/anyburl-go/anyburl/predict"
)

func newEvalCmd() *cobra.Command {
	var rulesPath, trainPath, testPath string
	var k int

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Score a rule set against a held-out test set",
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := readRulesJSONL(rulesPath)
			if err != nil {
				return fmt.Errorf("loading rules: %w", err)
			}
			trainTriples, err := loader.LoadTriplesCSV(trainPath)
			if err != nil {
				return fmt.Errorf("loading training triples: %w", err)
			}
			testTriples, err := loader.LoadTriplesCSV(testPath)
			if err != nil {
				return fmt.Errorf("loading test triples: %w", err)
			}

			g := kg.New(trainTriples)
			predictor := predict.NewPredictor(rules, g)
			metrics := eval.Evaluate(predictor, g, testTriples, k)

			fmt.Fprintf(cmd.OutOrStdout(), "Hits@1:  %.4f\n", metrics.Hits1)
			fmt.Fprintf(cmd.OutOrStdout(), "Hits@%d: %.4f\n", k, metrics.HitsAtK)
			fmt.Fprintf(cmd.OutOrStdout(), "MRR:     %.4f\n", metrics.MRR)
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "learned rule set (JSONL)")
	cmd.Flags().StringVar(&trainPath, "train", "", "training triples CSV")
	cmd.Flags().StringVar(&testPath, "test", "", "test triples CSV")
	cmd.Flags().IntVarP(&k, "k", "k", 10, "cutoff for Hits@k")
	cmd.MarkFlagRequired("rules")
	cmd.MarkFlagRequired("train")
	cmd.MarkFlagRequired("test")

	return cmd
}
