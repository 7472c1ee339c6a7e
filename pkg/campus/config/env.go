package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// fileConfig mirrors the environment keys. Every field is a string so that
// unset keys can be told apart from zero values and leave earlier options in
// place.
type fileConfig struct {
	Port         string `yaml:"port" env:"PORT"`
	Environment  string `yaml:"environment" env:"ENVIRONMENT"`
	DatabaseType string `yaml:"database_type" env:"DATABASE_TYPE"`
	DatabaseURL  string `yaml:"database_url" env:"DATABASE_URL"`
	DBSchema     string `yaml:"db_schema" env:"DB_SCHEMA"`
	AutoMigrate  string `yaml:"auto_migrate" env:"AUTO_MIGRATE"`
	SeedOnStart  string `yaml:"seed_on_start" env:"SEED_ON_START"`

	AdminUsername     string `yaml:"admin_username" env:"ADMIN_USERNAME"`
	AdminPasswordHash string `yaml:"admin_password_hash" env:"ADMIN_PASSWORD_HASH"`
	JWTSecret         string `yaml:"jwt_secret" env:"JWT_SECRET"`
	TokenTTL          string `yaml:"token_ttl" env:"TOKEN_TTL"`
	RequireAuth       string `yaml:"require_auth" env:"REQUIRE_AUTH"`

	MediaStorage  string `yaml:"media_storage" env:"MEDIA_STORAGE"`
	MediaDir      string `yaml:"media_dir" env:"MEDIA_DIR"`
	MediaMaxBytes string `yaml:"media_max_bytes" env:"MEDIA_MAX_BYTES"`

	S3Bucket          string `yaml:"s3_bucket" env:"S3_BUCKET"`
	S3Region          string `yaml:"s3_region" env:"S3_REGION"`
	S3Endpoint        string `yaml:"s3_endpoint" env:"S3_ENDPOINT"`
	S3AccessKeyID     string `yaml:"s3_access_key_id" env:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `yaml:"s3_secret_access_key" env:"S3_SECRET_ACCESS_KEY"`
	S3UsePathStyle    string `yaml:"s3_use_path_style" env:"S3_USE_PATH_STYLE"`
	S3PresignSeconds  string `yaml:"s3_presign_seconds" env:"S3_PRESIGN_SECONDS"`
	S3CreateBucket    string `yaml:"s3_create_bucket" env:"S3_CREATE_BUCKET"`
}

// WithEnv applies environment variable overrides.
//
// Server:
//
//	PORT, ENVIRONMENT
//
// Database:
//
//	DATABASE_URL - "memory" or a "postgres://" / "postgresql://" connection
//	               string. A postgres URL selects DATABASE_TYPE=postgres and
//	               turns SEED_ON_START off unless it is set explicitly.
//	DATABASE_TYPE, DB_SCHEMA, AUTO_MIGRATE, SEED_ON_START
//
// Admin:
//
//	ADMIN_USERNAME, ADMIN_PASSWORD_HASH, JWT_SECRET, TOKEN_TTL, REQUIRE_AUTH
//
// Media:
//
//	MEDIA_STORAGE (memory, fs, s3), MEDIA_DIR, MEDIA_MAX_BYTES,
//	S3_BUCKET, S3_REGION, S3_ENDPOINT, S3_ACCESS_KEY_ID,
//	S3_SECRET_ACCESS_KEY, S3_USE_PATH_STYLE, S3_PRESIGN_SECONDS,
//	S3_CREATE_BUCKET
func WithEnv() Option {
	return func(c *ServerConfig) error {
		var fc fileConfig
		if err := cleanenv.ReadEnv(&fc); err != nil {
			return fmt.Errorf("failed to read environment: %w", err)
		}
		return fc.apply(c)
	}
}

// WithFile reads a YAML, JSON, TOML or .env file. Environment variables
// override values from the file.
func WithFile(path string) Option {
	return func(c *ServerConfig) error {
		var fc fileConfig
		if err := cleanenv.ReadConfig(path, &fc); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		return fc.apply(c)
	}
}

func (fc *fileConfig) apply(c *ServerConfig) error {
	setString(&c.Port, fc.Port)
	setString(&c.Environment, fc.Environment)

	if err := fc.applyDatabase(c); err != nil {
		return err
	}
	setString(&c.DBSchema, fc.DBSchema)
	if err := setBool(&c.AutoMigrate, "AUTO_MIGRATE", fc.AutoMigrate); err != nil {
		return err
	}
	if err := setBool(&c.SeedOnStart, "SEED_ON_START", fc.SeedOnStart); err != nil {
		return err
	}

	setString(&c.AdminUsername, fc.AdminUsername)
	setString(&c.AdminPasswordHash, fc.AdminPasswordHash)
	setString(&c.JWTSecret, fc.JWTSecret)
	if fc.TokenTTL != "" {
		ttl, err := parseDuration(fc.TokenTTL)
		if err != nil {
			return fmt.Errorf("invalid duration for TOKEN_TTL: %w", err)
		}
		c.TokenTTL = ttl
	}
	if err := setBool(&c.RequireAuth, "REQUIRE_AUTH", fc.RequireAuth); err != nil {
		return err
	}

	setString(&c.MediaStorage, strings.ToLower(fc.MediaStorage))
	setString(&c.MediaDir, fc.MediaDir)
	if fc.MediaMaxBytes != "" {
		n, err := strconv.ParseInt(fc.MediaMaxBytes, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer for MEDIA_MAX_BYTES: %w", err)
		}
		c.MediaMaxBytes = n
	}

	setString(&c.S3.Bucket, fc.S3Bucket)
	setString(&c.S3.Region, fc.S3Region)
	setString(&c.S3.Endpoint, fc.S3Endpoint)
	setString(&c.S3.AccessKeyID, fc.S3AccessKeyID)
	setString(&c.S3.SecretAccessKey, fc.S3SecretAccessKey)
	if err := setBool(&c.S3.UsePathStyle, "S3_USE_PATH_STYLE", fc.S3UsePathStyle); err != nil {
		return err
	}
	if err := setBool(&c.S3.CreateBucket, "S3_CREATE_BUCKET", fc.S3CreateBucket); err != nil {
		return err
	}
	if fc.S3PresignSeconds != "" {
		n, err := strconv.Atoi(fc.S3PresignSeconds)
		if err != nil {
			return fmt.Errorf("invalid integer for S3_PRESIGN_SECONDS: %w", err)
		}
		c.S3.PresignSeconds = n
	}
	return nil
}

func (fc *fileConfig) applyDatabase(c *ServerConfig) error {
	dbURL := fc.DatabaseURL
	switch {
	case dbURL == "":
	case dbURL == "memory":
		c.DatabaseType = "memory"
		c.DatabaseURL = ""
	case strings.HasPrefix(dbURL, "postgresql://"), strings.HasPrefix(dbURL, "postgres://"):
		c.DatabaseType = "postgres"
		c.DatabaseURL = dbURL
		if fc.SeedOnStart == "" {
			c.SeedOnStart = false
		}
	default:
		return fmt.Errorf("unsupported DATABASE_URL format: %s (use 'memory' or 'postgresql://...')", dbURL)
	}

	if fc.DatabaseType != "" {
		c.DatabaseType = strings.ToLower(fc.DatabaseType)
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key, raw string) error {
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("invalid boolean for %s: %w", key, err)
	}
	*dst = parsed
	return nil
}

// parseDuration accepts Go durations ("12h") and plain seconds.
func parseDuration(raw string) (time.Duration, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(raw)
}
