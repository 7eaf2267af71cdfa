package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	adapthttp "fitness/internal/adapter/http"
	"fitness/internal/app"
	"fitness/internal/config"
	"fitness/internal/store"
)

var (
	// Global flags
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fitness",
	Short: "Fitness tracker store and calorie reports",
	Long: `fitness records users, meals and workouts and reports calories
consumed, calories burned and whether each user is on track for their goal.

The backend is chosen by DATABASE_URL:
  postgres://...   PostgreSQL
  sqlite:<path>    embedded SQLite file
  memory:          in-process store, lost on exit`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger, err = newLogger(cfg.LogLevel, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	statsCmd.Flags().IntVar(&statsTop, "top", 0, "Number of foods to list (default TOP_FOODS)")
	goalCheckCmd.Flags().Int64Var(&goalUserID, "user", 0, "User id (required)")
	_ = goalCheckCmd.MarkFlagRequired("user")
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML catalog to import (required)")
	_ = seedCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(serveCmd, statsCmd, goalCheckCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

// openServices connects to the configured store and wires the application
// services on top of it. The caller closes the returned store.
func openServices() (adapthttp.Services, store.Store, error) {
	st, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		return adapthttp.Services{}, nil, err
	}
	kind, _, _ := store.Parse(cfg.DatabaseURL)
	logger.Debug("store opened", zap.String("backend", string(kind)))

	stats := app.NewStatsService(st)
	return adapthttp.Services{
		Users:    app.NewUserService(st),
		Catalog:  app.NewCatalogService(st),
		Workouts: app.NewWorkoutService(st, st, st, st),
		Meals:    app.NewMealService(st, st, st, st),
		Stats:    stats,
		Goals:    app.NewGoalService(st, stats),
	}, st, nil
}
