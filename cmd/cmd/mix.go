package cmd

import (
	"context"
	"fmt"

	"insightmix/internal/config"
	"insightmix/internal/core"
	"insightmix/internal/generate"
	"insightmix/internal/logger"
	"insightmix/internal/store"
	"insightmix/internal/tui"

	"github.com/spf13/cobra"
)

var mixCmd = &cobra.Command{
	Use:   "mix <snapshot.json>",
	Short: "Launch the Power Mode screen to assemble a mix interactively",
	Long: `Open the interactive Power Mode screen: browse scored insight cards,
toggle them into your mix, apply recipes, inspect compatibility between
adjacent selections, and hand the final mix to the content generator.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := loadCards(args[0])
		if err != nil {
			return err
		}

		cfg := config.Get()

		st, err := store.NewStore(cfg.App.DataDir)
		var prefs core.ViewPreferences
		var saver tui.PreferenceSaver
		if err != nil {
			// Preferences are a convenience; Power Mode works without them.
			logger.Warn("Failed to open preference store", "error", err.Error())
		} else {
			defer st.Close()
			saver = st
			if prefs, err = st.LoadViewPreferences(); err != nil {
				logger.Warn("Failed to load view preferences", "error", err.Error())
			}
		}

		var gen generate.Generator
		client, err := generate.NewClient(context.Background(), cfg.AI.Gemini.Model)
		if err != nil {
			// Browsing and mixing stay available without a generator.
			fmt.Println("Content generation unavailable:", err)
		} else {
			defer client.Close()
			gen = client
		}

		tui.Start(tui.Options{
			Cards:       cards,
			Preferences: prefs,
			Saver:       saver,
			Generator:   gen,
			Filter:      cfg.Mix.DefaultFilter,
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mixCmd)
}
