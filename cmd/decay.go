package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var decayCmd = &cobra.Command{
	Use:   "decay",
	Short: "Run one decay-and-prune pass over the graph",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEngine()
		if err != nil {
			return err
		}
		defer e.Close()

		result, err := e.Decay()
		if err != nil {
			return fmt.Errorf("decay failed: %w", err)
		}
		fmt.Printf("pruned %d synapses, %d neurons\n", result.PrunedSynapses, result.PrunedNeurons)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decayCmd)
}
