// Package cmd implements BrainBox's command-line surface: a thin Cobra
// layer over internal/engine, matching the teacher simulator's split
// between cmd (flag parsing and wiring) and the packages that do the
// actual work.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brainbox/engine/internal/config"
	"github.com/brainbox/engine/internal/engine"
)

var (
	configFile string
	dbPathFlag string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "brainbox",
	Short: "BrainBox: a self-organizing graph memory for coding assistants",
	Long: `BrainBox is a command-line tool around a persistent, Hebbian
graph of neurons and synapses. Each record strengthens the memories that
occur close together in time; each recall spreads activation outward from
keyword matches through that graph.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(); it only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a TOML config file (optional)")
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "path to the BrainBox database file (overrides config)")
}

// loadConfig resolves the effective AppConfig from defaults, an optional
// TOML file, and the --db flag, in that precedence order.
func loadConfig() (config.AppConfig, error) {
	cfg, err := config.LoadFile(configFile)
	if err != nil {
		return cfg, err
	}
	if dbPathFlag != "" {
		cfg.DBPath = dbPathFlag
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openEngine loads the effective configuration and opens the engine
// against its database path. Callers are responsible for closing it.
func openEngine() (*engine.Engine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return engine.Open(cfg.DBPath)
}
