// Command campus-seed prepares a database for the campus content server. It
// applies the schema and loads the default content into an empty database.
//
// Usage:
//
//	campus-seed [-force] [-migrate-only]
//	campus-seed -hash-password <password>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/tendant/campus-content/pkg/campus"
	"github.com/tendant/campus-content/pkg/campus/auth"
	"github.com/tendant/campus-content/pkg/campus/config"
	"github.com/tendant/campus-content/pkg/campus/seed"
)

func main() {
	_ = godotenv.Load()

	force := flag.Bool("force", false, "load default content even when programs already exist")
	migrateOnly := flag.Bool("migrate-only", false, "apply the schema without loading content")
	hashPassword := flag.String("hash-password", "", "print a bcrypt hash for ADMIN_PASSWORD_HASH and exit")
	flag.Parse()

	if *hashPassword != "" {
		hash, err := auth.HashPassword(*hashPassword)
		if err != nil {
			slog.Error("Failed to hash password", "err", err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	cfg, err := config.Load(config.WithEnv(), config.WithAutoMigrate(true), config.WithSeedOnStart(false))
	if err != nil {
		slog.Error("Failed to load configuration", "err", err)
		os.Exit(1)
	}
	if err := run(context.Background(), cfg, *force, *migrateOnly); err != nil {
		slog.Error("Seeding failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.ServerConfig, force, migrateOnly bool) error {
	if cfg.DatabaseType != "postgres" {
		return errNotPostgres
	}
	repo, err := cfg.BuildRepository(ctx)
	if err != nil {
		return err
	}
	defer repo.Close()
	slog.Info("Schema is up to date", "schema", cfg.DBSchema)

	if migrateOnly {
		return nil
	}
	return load(ctx, repo, force)
}

func load(ctx context.Context, repo campus.Repository, force bool) error {
	if force {
		if err := seed.Load(ctx, repo); err != nil {
			return err
		}
		slog.Info("Loaded default content")
		return nil
	}

	loaded, err := seed.IfEmpty(ctx, repo)
	if err != nil {
		return err
	}
	if !loaded {
		slog.Info("Programs already exist; nothing loaded (use -force to load anyway)")
		return nil
	}
	slog.Info("Loaded default content")
	return nil
}

var errNotPostgres = errors.New("DATABASE_URL must point at postgres")
