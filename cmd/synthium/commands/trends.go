package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var trendsLimit int

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Analyze your trajectory over recent states",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.Recent(cmd.Context(), userID, trendsLimit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return fmt.Errorf("no history for user %s, analyze something first", userID)
		}

		report, err := newEngine().Trends(records)
		if err != nil {
			return err
		}

		count, err := store.Count(cmd.Context(), userID)
		if err != nil {
			return err
		}
		report.TotalStates = count

		if jsonOutput {
			return printJSON(report)
		}
		renderTrends(report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trendsCmd)
	trendsCmd.Flags().IntVar(&trendsLimit, "limit", 10, "number of recent states to analyze")
}
