package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

var analyzeTopK int

var analyzeCmd = &cobra.Command{
	Use:   "analyze <description>",
	Short: "Analyze a described state of mind",
	Long: `Project a natural language description onto the five consciousness
dimensions and analyze the resulting state. The state is appended to
your local history so trends can track it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		eng := newEngine()
		analysis, err := eng.AnalyzeText(cmd.Context(), text, analyzeTopK)
		if err != nil {
			return err
		}

		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		record := &models.StateRecord{
			UserID:    userID,
			Text:      text,
			Vector:    analysis.Vector,
			Wellbeing: analysis.WellbeingScore,
			Phase:     analysis.Phase,
		}
		if err := store.Append(cmd.Context(), record); err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(analysis)
		}
		renderAnalysis(analysis)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().IntVar(&analyzeTopK, "top-k", 0, "number of similar phenomena to return")
}
