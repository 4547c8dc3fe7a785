package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sinagolchin/SYNTHIUM/internal/catalog"
	"github.com/sinagolchin/SYNTHIUM/internal/embeddings"
	"github.com/sinagolchin/SYNTHIUM/internal/engine"
	"github.com/sinagolchin/SYNTHIUM/internal/projection"
	"github.com/sinagolchin/SYNTHIUM/internal/storage"
)

const cliVersion = "2.1.0"

var (
	cfgFile     string
	jsonOutput  bool
	userID      string
	historyPath string
)

var rootCmd = &cobra.Command{
	Use:   "synthium",
	Short: "Consciousness state analysis from the command line",
	Long: `SYNTHIUM quantifies states of consciousness as five-dimensional vectors
and relates them to a catalog of known phenomena.

Describe how you feel, explore the catalog, plan transformations between
states and track your trajectory over time.`,
	Version:       cliVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.synthium.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print raw JSON instead of styled output")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "local", "user id for history records")
	rootCmd.PersistentFlags().StringVar(&historyPath, "db", "", "history database path (default ~/.synthium/history.db)")

	viper.BindPFlags(rootCmd.PersistentFlags())

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		renderHelp(cmd)
	})
}

func renderHelp(cmd *cobra.Command) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("SYNTHIUM %s", cliVersion)))
	if cmd.Long != "" {
		fmt.Println(cmd.Long)
	} else {
		fmt.Println(cmd.Short)
	}
	fmt.Println()

	fmt.Println(titleStyle.Render("USAGE"))
	fmt.Printf("  %s\n\n", cmd.UseLine())

	fmt.Println(titleStyle.Render("COMMANDS"))
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() {
			fmt.Printf("  %-12s %s\n", c.Name(), c.Short)
		}
	}
	fmt.Println()

	fmt.Println(titleStyle.Render("FLAGS"))
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		line := fmt.Sprintf("  --%-10s %s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" {
			line += fmt.Sprintf(" (default %s)", f.DefValue)
		}
		fmt.Println(labelStyle.Render(line))
	})
	fmt.Println()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.SetConfigFile(filepath.Join(home, ".synthium.yaml"))
			viper.SetConfigType("yaml")
		}
	}
	viper.SetEnvPrefix("SYNTHIUM")
	viper.AutomaticEnv()
	viper.ReadInConfig()
}

// newEngine builds the analysis engine with the configured embedding
// provider. Without configuration the deterministic hash provider keeps
// the CLI fully offline.
func newEngine() *engine.Service {
	provider := embeddings.NewProvider(embeddings.Config{
		Provider: viper.GetString("embeddings_provider"),
		APIKey:   viper.GetString("embeddings_api_key"),
		BaseURL:  viper.GetString("embeddings_base_url"),
		Model:    viper.GetString("embeddings_model"),
	})
	projector := projection.NewProjector(provider)
	return engine.NewService(catalog.New(), projector)
}

// openHistory opens the SQLite history store, creating its directory on
// first use.
func openHistory() (*storage.SQLiteStore, error) {
	path := historyPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".synthium", "history.db")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}
	return storage.NewSQLiteStore(path)
}
