// Package seed wires configuration into the dataset seed tool.
package seed

import (
	"context"
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/symbl-cc/symbl/internal/platform/config"
	"github.com/symbl-cc/symbl/internal/platform/timeouts"
	"github.com/symbl-cc/symbl/internal/seed"
	"github.com/symbl-cc/symbl/internal/storage/sqlite"
)

// Config holds the seed command configuration.
type Config struct {
	DBPath string `env:"SYMBL_DB_PATH" envDefault:"symbl.db"`
	// Days is the span of the day-symbol calendar to schedule.
	Days int `env:"SYMBL_SEED_DAYS" envDefault:"366"`
	// DryRun seeds an in-memory database to validate fixtures without
	// touching the dataset file.
	DryRun  bool
	Verbose bool
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite dataset path")
	fs.IntVar(&cfg.Days, "days", cfg.Days, "day-symbol calendar span in days")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate fixtures against an in-memory database")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the seed command.
func Run(ctx context.Context, cfg Config) error {
	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	path := cfg.DBPath
	if cfg.DryRun {
		path = ":memory:"
	}
	store, err := sqlite.Open(path)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("close dataset", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, timeouts.SeedRun)
	defer cancel()

	if err := seed.Run(ctx, store, cfg.Days, logger); err != nil {
		return fmt.Errorf("seed dataset: %w", err)
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zapConfig.Build()
}
