// Command anyburl learns, applies, and evaluates anytime bottom-up rules
// over a knowledge graph stored as CSV triples.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "anyburl",
		Short:         "Anytime bottom-up rule learning for knowledge-graph completion",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newLearnCmd())
	root.AddCommand(newPredictCmd())
	root.AddCommand(newEvalCmd())
	return root
}
