package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "github.com/lib/pq"
	"github.com/mediastorage/backend/internal/infrastructure/config"
	"github.com/mediastorage/backend/internal/infrastructure/logger"
	"github.com/mediastorage/backend/internal/infrastructure/migration"
	"go.uber.org/zap"
)

const defaultMigrationsPath = "migrations"

func main() {
	var (
		migrationsPath string
		logLevel       string
	)

	flag.StringVar(&migrationsPath, "path", defaultMigrationsPath, "Path to migrations directory")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	log, err := logger.New(&logger.Config{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	absPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		log.Fatal("Failed to resolve migrations path", zap.Error(err))
	}

	migrator, err := migration.NewFromURL(cfg.Database.DSN(), absPath, log)
	if err != nil {
		log.Fatal("Failed to create migrator", zap.Error(err))
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			log.Error("Error closing migrator", zap.Error(err))
		}
	}()

	switch command {
	case "up":
		if err := migrator.Up(); err != nil {
			log.Fatal("Migration up failed", zap.Error(err))
		}
	case "down":
		if err := migrator.Down(); err != nil {
			log.Fatal("Migration down failed", zap.Error(err))
		}
	case "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			log.Fatal("Failed to get version", zap.Error(err))
		}
		log.Info("Current migration version",
			zap.Uint("version", version),
			zap.Bool("dirty", dirty),
		)
	case "force":
		if len(args) < 2 {
			log.Fatal("Version required. Usage: migrate force <version>")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal("Invalid version", zap.String("version", args[1]))
		}
		if err := migrator.Force(version); err != nil {
			log.Fatal("Force failed", zap.Error(err))
		}
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Usage: migrate [flags] <command>

Commands:
  up        Apply all pending migrations
  down      Roll back all migrations
  version   Print the current migration version
  force <v> Set the migration version without running migrations

Flags:
  -path       Path to migrations directory (default: ./migrations)
  -log-level  Log level (default: info)`)
}
