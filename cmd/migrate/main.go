// Package main provisions the Villages table. The API server never runs
// migrations itself.
//
// Usage:
//
//	migrate [up|down|version]
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/nucleus/village-api/internal/config"
	"github.com/nucleus/village-api/internal/database"
	"github.com/nucleus/village-api/internal/logging"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	if err := run(context.Background(), cfg, cmd, logger); err != nil {
		logger.Fatal("migrate failed", zap.String("command", cmd), zap.Error(err))
	}
}

type migrator interface {
	Up() error
	Down() error
	Version() (uint, bool, error)
}

func run(ctx context.Context, cfg *config.Config, cmd string, logger *zap.Logger) error {
	if !knownCommand(cmd) {
		return errUnknownCommand(cmd)
	}

	db, err := database.NewClient(ctx, cfg.DBDriver, cfg.DSN(), database.Options{MaxOpenConns: 1})
	if err != nil {
		return err
	}
	defer db.Close()

	m, err := db.NewMigrator(cfg.MigrationsURL())
	if err != nil {
		return err
	}
	return apply(m, cmd, logger)
}

func knownCommand(cmd string) bool {
	switch cmd {
	case "up", "down", "version":
		return true
	}
	return false
}

func errUnknownCommand(cmd string) error {
	return fmt.Errorf("unknown command %q (want up, down or version)", cmd)
}

// apply runs one command and logs the resulting schema version.
func apply(m migrator, cmd string, logger *zap.Logger) error {
	var err error
	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "version":
	default:
		return errUnknownCommand(cmd)
	}
	if err != nil {
		return err
	}

	v, dirty, err := m.Version()
	if err != nil {
		return err
	}
	logger.Info("schema version", zap.String("command", cmd), zap.Uint("version", v), zap.Bool("dirty", dirty))
	return nil
}
