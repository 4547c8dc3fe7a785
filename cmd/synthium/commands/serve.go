package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sinagolchin/SYNTHIUM/internal/api"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API backed by your local history",
	Long: `Start the SYNTHIUM HTTP and WebSocket API on this machine. History is
stored in the local SQLite database, so analyses made over the API and
from the CLI share one trajectory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		server := api.NewServer(api.Config{
			Engine:  newEngine(),
			Store:   store,
			Version: cliVersion,
			Logger:  logger,
		})

		logger.Info("starting synthium server", "port", servePort, "version", cliVersion)
		return server.Run(":" + servePort)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "port to listen on")
}
