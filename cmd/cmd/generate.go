package cmd

import (
	"context"
	"fmt"
	"time"

	"insightmix/internal/config"
	"insightmix/internal/core"
	"insightmix/internal/generate"
	"insightmix/internal/logger"
	"insightmix/internal/recipes"
	"insightmix/internal/store"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	generateRecipeID string
	generateIDs      []string
)

var generateCmd = &cobra.Command{
	Use:   "generate <snapshot.json>",
	Short: "Hand a mix to the content generator",
	Long: `Hand an ordered list of selected insight ids to the content generator.
The mix comes either from --id flags (in order) or from applying a
recipe with --recipe. Generation failures are logged; the mix itself is
never altered, so the same command can simply be re-run.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := loadCards(args[0])
		if err != nil {
			return err
		}

		ids := generateIDs
		framework := ""
		template := ""
		if generateRecipeID != "" {
			recipe, err := recipes.Lookup(generateRecipeID)
			if err != nil {
				return err
			}
			ids = recipes.Apply(recipe, cards)
			framework = recipe.PrimaryFramework
			if len(recipe.CompatibleTemplates) > 0 {
				template = recipe.CompatibleTemplates[0]
			}
		}
		if len(ids) == 0 {
			return fmt.Errorf("empty mix: pass --id or --recipe to select insights")
		}

		cfg := config.Get()
		client, err := generate.NewClient(context.Background(), cfg.AI.Gemini.Model)
		if err != nil {
			return err
		}
		defer client.Close()

		result, genErr := client.Generate(context.Background(), generate.Request{
			InsightIDs: ids,
			Cards:      cards,
			Framework:  framework,
			Template:   template,
		})

		record := core.GenerationRecord{
			ID:            uuid.NewString(),
			InsightIDs:    ids,
			Framework:     framework,
			ModelUsed:     client.ModelName(),
			Succeeded:     genErr == nil,
			DateGenerated: time.Now(),
		}
		if genErr != nil {
			record.Error = genErr.Error()
		}
		if st, err := store.NewStore(cfg.App.DataDir); err == nil {
			if err := st.RecordGeneration(record); err != nil {
				logger.Warn("Failed to record generation", "error", err.Error())
			}
			st.Close()
		}

		if genErr != nil {
			// The mix is untouched; re-running the command retries it.
			logger.Error("Content generation failed", genErr)
			fmt.Println("Generation failed; your mix is unchanged. Re-run to retry.")
			return nil
		}

		fmt.Println(result.Content)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent content-generation hand-offs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		st, err := store.NewStore(cfg.App.DataDir)
		if err != nil {
			return err
		}
		defer st.Close()

		records, err := st.ListGenerations(20)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No generations recorded yet.")
			return nil
		}
		for _, record := range records {
			status := "ok"
			if !record.Succeeded {
				status = "failed"
			}
			fmt.Printf("%s  %-6s %2d insights  %s\n",
				record.DateGenerated.Format("2006-01-02 15:04"), status, len(record.InsightIDs), record.ModelUsed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(historyCmd)
	generateCmd.Flags().StringVar(&generateRecipeID, "recipe", "", "recipe id to auto-select the mix")
	generateCmd.Flags().StringSliceVar(&generateIDs, "id", nil, "insight id to include (repeatable, order preserved)")
}
