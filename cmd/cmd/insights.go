package cmd

import (
	"fmt"
	"strings"

	"insightmix/internal/mix"
	"insightmix/internal/profiles"
	"insightmix/internal/scoring"

	"github.com/spf13/cobra"
)

var insightsTypeFilter string

var insightsCmd = &cobra.Command{
	Use:   "insights <snapshot.json>",
	Short: "List scored insight cards from a context snapshot",
	Long: `Normalize an upstream context snapshot into insight cards and print
them in display order: validation tier first, then blended score. Use
"-" to read the snapshot from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := loadCards(args[0])
		if err != nil {
			return err
		}

		selection := mix.NewSelection()
		ordered := mix.DisplayOrder(cards, selection, insightsTypeFilter)
		if len(ordered) == 0 {
			fmt.Println("No insights in this category.")
			return nil
		}

		for _, card := range ordered {
			eq := scoring.EQScore(card)
			fmt.Printf("%-18s T%d EQ:%3d %3.0f%% [%s] %s\n",
				card.ID, mix.ValidationTier(card), eq, card.Confidence*100, card.Type, card.Title)
			fmt.Printf("%-18s audience: %s\n", "", strings.Join(profiles.MatchProfiles(card), ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
	insightsCmd.Flags().StringVarP(&insightsTypeFilter, "type", "t", mix.FilterAll, "filter by insight type (customer, market, competition, local, opportunity)")
}
