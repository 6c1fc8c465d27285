package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brainbox/engine/internal/engine"
)

var (
	recordType    string
	recordContext string
)

var recordCmd = &cobra.Command{
	Use:   "record <path>",
	Short: "Record an access, strengthening its synapses to whatever else was recently recorded",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nt, err := engine.ParseNeuronType(recordType)
		if err != nil {
			return err
		}

		e, err := openEngine()
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.Record(args[0], nt, strings.TrimSpace(recordContext)); err != nil {
			return fmt.Errorf("record failed: %w", err)
		}
		fmt.Printf("recorded %s:%s\n", nt, args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recordCmd)
	recordCmd.Flags().StringVarP(&recordType, "type", "t", "file", "neuron type: file, tool, error, or semantic")
	recordCmd.Flags().StringVarP(&recordContext, "context", "c", "", "free-text context for this access")
}
