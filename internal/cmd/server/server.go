// Package server wires configuration into the site's HTTP server.
package server

import (
	"context"
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/symbl-cc/symbl/internal/platform/config"
	"github.com/symbl-cc/symbl/internal/platform/otel"
	"github.com/symbl-cc/symbl/internal/random"
	"github.com/symbl-cc/symbl/internal/storage/sqlite"
	"github.com/symbl-cc/symbl/internal/web"
)

// serviceName identifies this process in traces.
const serviceName = "symbl-web"

// Config holds the server command configuration. Environment values
// are read first; flags override them.
type Config struct {
	HTTPAddr string `env:"SYMBL_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath   string `env:"SYMBL_DB_PATH" envDefault:"symbl.db"`
	LogLevel string `env:"SYMBL_LOG_LEVEL" envDefault:"info"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite dataset path")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	shutdownTracing, err := otel.Setup(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("shutdown tracing", zap.Error(err))
		}
	}()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("close dataset", zap.Error(err))
		}
	}()

	picker, err := random.NewPicker()
	if err != nil {
		return fmt.Errorf("init rng: %w", err)
	}

	server, err := web.NewServer(web.Config{
		HTTPAddr: cfg.HTTPAddr,
		Store:    store,
		Logger:   logger,
		Pick:     picker.Intn,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	parsed, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	zapConfig.Level = parsed
	return zapConfig.Build()
}
