package cmd

import (
	"fmt"
	"strings"

	"insightmix/internal/recipes"

	"github.com/spf13/cobra"
)

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "List the recipe catalog",
	Run: func(cmd *cobra.Command, args []string) {
		for _, recipe := range recipes.Catalog() {
			types := make([]string, len(recipe.InsightTypes))
			for i, t := range recipe.InsightTypes {
				types[i] = string(t)
			}
			fmt.Printf("%s %s (%s)\n", recipe.Icon, recipe.Name, recipe.ID)
			fmt.Printf("   %s\n", recipe.Description)
			fmt.Printf("   types: %s | insights: %d-%d | framework: %s\n",
				strings.Join(types, ", "), recipe.MinInsights, recipe.MaxInsights, recipe.PrimaryFramework)
		}
	},
}

var recipesApplyCmd = &cobra.Command{
	Use:   "apply <recipe-id> <snapshot.json>",
	Short: "Apply a recipe against a snapshot and print the selected ids",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		recipe, err := recipes.Lookup(args[0])
		if err != nil {
			return err
		}
		cards, err := loadCards(args[1])
		if err != nil {
			return err
		}

		ids := recipes.Apply(recipe, cards)
		if len(ids) == 0 {
			fmt.Println("No insights match this recipe.")
			return nil
		}
		if len(ids) < recipe.MinInsights {
			fmt.Printf("Note: only %d of the %d requested insights matched.\n", len(ids), recipe.MinInsights)
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recipesCmd)
	recipesCmd.AddCommand(recipesApplyCmd)
}
