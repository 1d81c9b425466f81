package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"insightmix/internal/config"
	"insightmix/internal/core"
	"insightmix/internal/normalize"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "insightmix",
	Short: "insightmix ranks AI-derived business insights and mixes them into content requests.",
	Long: `insightmix is the Power Mode toolkit for marketing intelligence: it
normalizes heterogeneous insight snapshots into uniform cards, scores
them for emotional resonance and mutual compatibility, and lets you
assemble a mix interactively or via recipes before handing it to the
content generator.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.insightmix.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if _, err := config.Load(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load configuration: %v\n", err)
	}
}

// loadSnapshot reads an upstream context snapshot from a JSON file, or
// from stdin when path is "-".
func loadSnapshot(path string) (core.ContextSnapshot, error) {
	var snapshot core.ContextSnapshot

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return snapshot, fmt.Errorf("failed to read snapshot: %w", err)
	}

	if err := json.Unmarshal(data, &snapshot); err != nil {
		return snapshot, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return snapshot, nil
}

// loadCards loads a snapshot and normalizes it into insight cards.
func loadCards(path string) ([]core.InsightCard, error) {
	snapshot, err := loadSnapshot(path)
	if err != nil {
		return nil, err
	}
	return normalize.NewNormalizer().Normalize(snapshot), nil
}
