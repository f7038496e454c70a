package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anyburl-go/anyburl/kg"
	"github.com/anyburl-go/anyburl/loader"
	"github.com/anyburl-go/anyburl/predict"
)

func newPredictCmd() *cobra.Command {
	var rulesPath, trainPath, subject, relation, object string
	var k int

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict missing entities for a partial triple",
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := readRulesJSONL(rulesPath)
			if err != nil {
				return fmt.Errorf("loading rules: %w", err)
			}
			triples, err := loader.LoadTriplesCSV(trainPath)
			if err != nil {
				return fmt.Errorf("loading training triples: %w", err)
			}
			g := kg.New(triples)
			predictor := predict.NewPredictor(rules, g)

			var predictions []predict.Prediction
			if object == "" {
				predictions = predictor.PredictTail(subject, relation, k)
			} else {
				predictions = predictor.PredictHead(relation, object, k)
			}

			for i, p := range predictions {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s (confidence %.4f)\n", i+1, p.Entity, p.Confidence)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "learned rule set (JSONL)")
	cmd.Flags().StringVar(&trainPath, "train", "", "training triples CSV")
	cmd.Flags().StringVar(&subject, "subject", "", "known subject (predicting the object)")
	cmd.Flags().StringVar(&relation, "relation", "", "relation")
	cmd.Flags().StringVar(&object, "object", "", "known object (predicting the subject)")
	cmd.Flags().IntVarP(&k, "k", "k", 10, "number of predictions to return")
	cmd.MarkFlagRequired("rules")
	cmd.MarkFlagRequired("train")
	cmd.MarkFlagRequired("relation")

	return cmd
}
