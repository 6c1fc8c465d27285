package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print a summary of the current memory graph",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEngine()
		if err != nil {
			return err
		}
		defer e.Close()

		s, err := e.Stats()
		if err != nil {
			return fmt.Errorf("stats failed: %w", err)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Metric", "Value"})
		table.Append([]string{"Neurons", fmt.Sprintf("%d", s.NeuronCount)})
		table.Append([]string{"Synapses", fmt.Sprintf("%d", s.SynapseCount)})
		table.Append([]string{"Superhighways (myelination > 0.5)", fmt.Sprintf("%d", s.Superhighways)})
		table.Append([]string{"Total accesses", fmt.Sprintf("%d", s.TotalAccesses)})
		table.Append([]string{"Average myelination", fmt.Sprintf("%.4f", s.AvgMyelination)})
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
