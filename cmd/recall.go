package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/brainbox/engine/internal/engine"
)

var (
	recallType  string
	recallLimit int
)

var recallCmd = &cobra.Command{
	Use:   "recall <query>",
	Short: "Recall neurons matching a query via keyword-seeded spreading activation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nt, err := engine.ParseNeuronType(recallType)
		if err != nil {
			return err
		}

		e, err := openEngine()
		if err != nil {
			return err
		}
		defer e.Close()

		results := e.Recall(args[0], nt, recallLimit)
		if len(results) == 0 {
			fmt.Println("no matches")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Path", "Type", "Confidence", "Activation Path", "Myelination"})
		for _, r := range results {
			table.Append([]string{
				r.Neuron.Path,
				r.Neuron.Type.String(),
				fmt.Sprintf("%.3f", r.Confidence),
				string(r.ActivationPath),
				fmt.Sprintf("%.3f", r.Neuron.Myelination),
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recallCmd)
	recallCmd.Flags().StringVarP(&recallType, "type", "t", "file", "neuron type: file, tool, error, or semantic")
	recallCmd.Flags().IntVarP(&recallLimit, "limit", "n", 5, "maximum number of results")
}
