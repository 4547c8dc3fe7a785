package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sinagolchin/SYNTHIUM/internal/validation"
)

var (
	exportFormat string
	exportOut    string
	exportLimit  int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your state history as JSON or CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportFormat != "json" && exportFormat != "csv" {
			return fmt.Errorf("format must be json or csv, got %q", exportFormat)
		}

		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.Recent(cmd.Context(), userID, exportLimit)
		if err != nil {
			return err
		}

		var out io.Writer = os.Stdout
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		if exportFormat == "csv" {
			return validation.ExportCSV(out, records)
		}
		return validation.ExportJSON(out, records)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format (json or csv)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "write to a file instead of stdout")
	exportCmd.Flags().IntVar(&exportLimit, "limit", 0, "cap the number of exported records")
}
