package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tendant/campus-content/pkg/campus"
	"github.com/tendant/campus-content/pkg/campus/auth"
	"github.com/tendant/campus-content/pkg/campus/media"
	fsmedia "github.com/tendant/campus-content/pkg/campus/media/fs"
	memorymedia "github.com/tendant/campus-content/pkg/campus/media/memory"
	s3media "github.com/tendant/campus-content/pkg/campus/media/s3"
	"github.com/tendant/campus-content/pkg/campus/repo/memory"
	repopg "github.com/tendant/campus-content/pkg/campus/repo/postgres"
	"github.com/tendant/campus-content/pkg/campus/seed"
)

// Option applies configuration to a ServerConfig instance.
type Option func(*ServerConfig) error

// Load constructs a ServerConfig by applying the supplied options on top of defaults.
func Load(opts ...Option) (*ServerConfig, error) {
	cfg := defaults()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() ServerConfig {
	return ServerConfig{
		Port:          "8080",
		Environment:   "development",
		DatabaseType:  "memory",
		DBSchema:      "public",
		AutoMigrate:   true,
		SeedOnStart:   true,
		AdminUsername: "admin",
		TokenTTL:      24 * time.Hour,
		MediaStorage:  "memory",
		MediaDir:      "./data/media",
		MediaMaxBytes: 5 << 20,
		S3: S3Config{
			Region:         "us-east-1",
			PresignSeconds: 3600,
		},
	}
}

// ServerConfig represents server configuration for the campus content service
type ServerConfig struct {
	Port        string
	Environment string // development, production, testing

	// Database configuration
	DatabaseURL  string
	DatabaseType string // "memory", "postgres"
	DBSchema     string // Postgres schema to use (default: public)
	AutoMigrate  bool   // apply the schema when the server starts
	SeedOnStart  bool   // load default content into an empty repository

	// Admin login
	AdminUsername     string
	AdminPasswordHash string // bcrypt
	JWTSecret         string
	TokenTTL          time.Duration
	RequireAuth       bool

	// Media uploads
	MediaStorage  string // "memory", "fs", "s3"
	MediaDir      string
	MediaMaxBytes int64
	S3            S3Config
}

// S3Config holds the settings of the s3 media backend.
type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
	PresignSeconds  int
	CreateBucket    bool
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}

	if c.DatabaseType != "memory" && c.DatabaseType != "postgres" {
		return errors.New("database_type must be 'memory' or 'postgres'")
	}

	if c.DatabaseType == "postgres" && c.DatabaseURL == "" {
		return errors.New("database_url is required when using postgres")
	}

	switch c.MediaStorage {
	case "memory":
	case "fs":
		if c.MediaDir == "" {
			return errors.New("media_dir is required when using fs media storage")
		}
	case "s3":
		if c.S3.Bucket == "" {
			return errors.New("s3_bucket is required when using s3 media storage")
		}
	default:
		return fmt.Errorf("media_storage must be 'memory', 'fs' or 's3', got: %s", c.MediaStorage)
	}

	if c.MediaMaxBytes <= 0 {
		return errors.New("media_max_bytes must be positive")
	}

	if c.RequireAuth && c.JWTSecret == "" {
		return errors.New("jwt_secret is required when require_auth is enabled")
	}

	return nil
}

// IsProduction reports whether the server runs in the production environment.
func (c *ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

// BuildRepository creates the Repository selected by the configuration. The
// caller owns the result and must Close it.
func (c *ServerConfig) BuildRepository(ctx context.Context) (campus.Repository, error) {
	var repo campus.Repository
	switch c.DatabaseType {
	case "memory":
		repo = memory.New()
	case "postgres":
		pool, err := newPool(ctx, c.DatabaseURL, c.DBSchema)
		if err != nil {
			return nil, err
		}
		if c.AutoMigrate {
			if err := repopg.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, fmt.Errorf("failed to migrate database: %w", err)
			}
		}
		repo = repopg.NewWithPool(pool)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", c.DatabaseType)
	}

	if c.SeedOnStart {
		loaded, err := seed.IfEmpty(ctx, repo)
		if err != nil {
			repo.Close()
			return nil, fmt.Errorf("failed to seed repository: %w", err)
		}
		if loaded {
			slog.Info("Loaded default content", "database_type", c.DatabaseType)
		}
	}

	return repo, nil
}

// BuildMediaStore creates the media Store selected by the configuration.
func (c *ServerConfig) BuildMediaStore(ctx context.Context) (media.Store, error) {
	switch c.MediaStorage {
	case "memory":
		return memorymedia.New(), nil
	case "fs":
		store, err := fsmedia.New(c.MediaDir)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "s3":
		store, err := s3media.New(ctx, s3media.Config{
			Region:          c.S3.Region,
			Bucket:          c.S3.Bucket,
			AccessKeyID:     c.S3.AccessKeyID,
			SecretAccessKey: c.S3.SecretAccessKey,
			Endpoint:        c.S3.Endpoint,
			UsePathStyle:    c.S3.UsePathStyle,
			PresignDuration: time.Duration(c.S3.PresignSeconds) * time.Second,

			CreateBucketIfNotExist: c.S3.CreateBucket,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported media storage: %s", c.MediaStorage)
	}
}

// BuildAuthenticator returns the admin credential check. Without a password
// hash every login fails.
func (c *ServerConfig) BuildAuthenticator() auth.Authenticator {
	return auth.NewStaticAuthenticator(c.AdminUsername, c.AdminPasswordHash)
}

// BuildTokenIssuer returns nil when no JWT secret is configured.
func (c *ServerConfig) BuildTokenIssuer() (*auth.TokenIssuer, error) {
	if c.JWTSecret == "" {
		return nil, nil
	}
	return auth.NewTokenIssuer(c.JWTSecret, c.TokenTTL)
}

func newPool(ctx context.Context, databaseURL, schema string) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, errors.New("database_url is required for postgres")
	}
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DATABASE_URL: %w", err)
	}
	if schema != "" {
		cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
			_, err := conn.Exec(ctx, "SET search_path TO "+pgx.Identifier{schema}.Sanitize())
			return err
		}
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}
	return pool, nil
}

// PingPostgres verifies connectivity to Postgres using the same pool setup
// as BuildRepository.
func PingPostgres(ctx context.Context, databaseURL, schema string) error {
	pool, err := newPool(ctx, databaseURL, schema)
	if err != nil {
		return err
	}
	defer pool.Close()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
