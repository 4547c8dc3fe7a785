package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sinagolchin/SYNTHIUM/internal/catalog"
)

var showCmd = &cobra.Command{
	Use:   "show <term>",
	Short: "Show a catalog entry and its related phenomena",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := strings.Join(args, " ")
		cat := catalog.New()

		entry, err := cat.Get(term)
		if err != nil {
			return err
		}
		related, err := cat.Related(term)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(map[string]any{
				"phenomenon": entry,
				"related":    related,
			})
		}

		title(entry.Term)
		fmt.Println(labelStyle.Render("  " + entry.Description))
		fmt.Println()
		renderVector(entry.Vector)
		fmt.Println()
		field("Phase", phaseStyle.Render(entry.Phase))
		if len(entry.Tags) > 0 {
			field("Tags", strings.Join(entry.Tags, ", "))
		}

		if len(related) > 0 {
			fmt.Println()
			title("Related")
			for _, rel := range related {
				fmt.Printf("  %s %s\n",
					valueStyle.Render(rel.Term),
					labelStyle.Render(rel.Description))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
