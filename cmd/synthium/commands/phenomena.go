package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sinagolchin/SYNTHIUM/internal/catalog"
)

var (
	phenomenaPhase string
	phenomenaTag   string
	phenomenaLimit int
)

var phenomenaCmd = &cobra.Command{
	Use:   "phenomena",
	Short: "List the consciousness phenomena catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := catalog.New().List(catalog.Filter{
			Phase: phenomenaPhase,
			Tag:   phenomenaTag,
			Limit: phenomenaLimit,
		})

		if jsonOutput {
			return printJSON(entries)
		}

		title(fmt.Sprintf("Phenomena (%d)", len(entries)))
		for _, p := range entries {
			fmt.Printf("  %s %s %s\n",
				labelStyle.Render(fmt.Sprintf("%2d", p.ID)),
				valueStyle.Render(fmt.Sprintf("%-26s", p.Term)),
				phaseStyle.Render(p.Phase))
			fmt.Println(labelStyle.Render("     " + p.Description))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(phenomenaCmd)
	phenomenaCmd.Flags().StringVar(&phenomenaPhase, "phase", "", "filter by phase")
	phenomenaCmd.Flags().StringVar(&phenomenaTag, "tag", "", "filter by tag")
	phenomenaCmd.Flags().IntVar(&phenomenaLimit, "limit", 0, "cap the number of results")
}
