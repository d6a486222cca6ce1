package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/swiss-tournament/internal/config"
	"github.com/mauv0809/swiss-tournament/internal/database"
	"github.com/mauv0809/swiss-tournament/internal/metrics"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	driver    string
	dbName    string
	oddPolicy string
	verbose   bool

	store    tournament.TournamentStore
	teardown func()
)

var rootCmd = &cobra.Command{
	Use:   "swiss",
	Short: "Run a Swiss-system tournament from the command line",
	Long: `A command-line interface for registering players, recording results
and producing standings and next-round pairings.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}

		policy, err := tournament.ParseOddPlayerPolicy(oddPolicy)
		if err != nil {
			return err
		}

		gw, td, err := database.Connect(config.DBConfig{
			Driver:         driver,
			Name:           dbName,
			ConnectTimeout: 5 * time.Second,
			Turso: config.TursoConfig{
				PrimaryURL: os.Getenv("TURSO_PRIMARY_URL"),
				AuthToken:  os.Getenv("TURSO_AUTH_TOKEN"),
			},
		})
		if err != nil {
			return err
		}
		teardown = td
		store = tournament.New(gw, metrics.NewService(prometheus.NewRegistry()), policy)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeStore()
	},
}

func closeStore() {
	if teardown != nil {
		teardown()
		teardown = nil
	}
	store = nil
}

func envOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func init() {
	// Optional; flags fall back to built-in defaults.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&driver, "driver", envOrDefault("DB_DRIVER", "sqlite3"), "Database driver (sqlite3, libsql, postgres)")
	rootCmd.PersistentFlags().StringVar(&dbName, "db", envOrDefault("DB_NAME", "tournament.db"), "Database file or DSN")
	rootCmd.PersistentFlags().StringVar(&oddPolicy, "odd-policy", envOrDefault("ODD_PLAYER_POLICY", "error"), "What to do with an odd roster when pairing (error, bye)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		closeStore()
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
