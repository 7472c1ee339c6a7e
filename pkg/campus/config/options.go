package config

import (
	"fmt"
	"time"
)

// WithPort sets the server port
func WithPort(port string) Option {
	return func(c *ServerConfig) error {
		if port == "" {
			return fmt.Errorf("port cannot be empty")
		}
		c.Port = port
		return nil
	}
}

// WithEnvironment sets the environment (development, production, testing)
func WithEnvironment(env string) Option {
	return func(c *ServerConfig) error {
		if env == "" {
			return fmt.Errorf("environment cannot be empty")
		}
		c.Environment = env
		return nil
	}
}

// WithDatabase configures the database backend. Seeding on start follows the
// backend: on for memory, off for postgres.
func WithDatabase(dbType, url string) Option {
	return func(c *ServerConfig) error {
		if dbType != "memory" && dbType != "postgres" {
			return fmt.Errorf("database type must be 'memory' or 'postgres', got: %s", dbType)
		}
		if dbType == "postgres" && url == "" {
			return fmt.Errorf("database URL is required for postgres")
		}
		c.DatabaseType = dbType
		c.DatabaseURL = url
		c.SeedOnStart = dbType == "memory"
		return nil
	}
}

// WithDatabaseSchema sets the database schema (for Postgres)
func WithDatabaseSchema(schema string) Option {
	return func(c *ServerConfig) error {
		c.DBSchema = schema
		return nil
	}
}

func WithAutoMigrate(enabled bool) Option {
	return func(c *ServerConfig) error {
		c.AutoMigrate = enabled
		return nil
	}
}

func WithSeedOnStart(enabled bool) Option {
	return func(c *ServerConfig) error {
		c.SeedOnStart = enabled
		return nil
	}
}

// WithAdmin sets the admin login. passwordHash is a bcrypt hash.
func WithAdmin(username, passwordHash string) Option {
	return func(c *ServerConfig) error {
		if username == "" {
			return fmt.Errorf("admin username cannot be empty")
		}
		c.AdminUsername = username
		c.AdminPasswordHash = passwordHash
		return nil
	}
}

// WithJWT sets the token signing secret and lifetime. A zero ttl keeps the
// current value.
func WithJWT(secret string, ttl time.Duration) Option {
	return func(c *ServerConfig) error {
		if secret == "" {
			return fmt.Errorf("jwt secret cannot be empty")
		}
		c.JWTSecret = secret
		if ttl > 0 {
			c.TokenTTL = ttl
		}
		return nil
	}
}

// WithRequireAuth gates content writes behind a bearer token.
func WithRequireAuth(enabled bool) Option {
	return func(c *ServerConfig) error {
		c.RequireAuth = enabled
		return nil
	}
}

// WithMemoryMedia keeps uploads in process memory (for testing)
func WithMemoryMedia() Option {
	return func(c *ServerConfig) error {
		c.MediaStorage = "memory"
		return nil
	}
}

// WithFilesystemMedia stores uploads under dir.
func WithFilesystemMedia(dir string) Option {
	return func(c *ServerConfig) error {
		if dir == "" {
			return fmt.Errorf("media directory cannot be empty")
		}
		c.MediaStorage = "fs"
		c.MediaDir = dir
		return nil
	}
}

// WithS3Media stores uploads in an S3 bucket.
func WithS3Media(bucket, region string) Option {
	return func(c *ServerConfig) error {
		if bucket == "" {
			return fmt.Errorf("S3 bucket cannot be empty")
		}
		if region == "" {
			region = "us-east-1"
		}
		c.MediaStorage = "s3"
		c.S3.Bucket = bucket
		c.S3.Region = region
		return nil
	}
}

// WithS3Endpoint sets a custom S3 endpoint (for MinIO, LocalStack, etc.)
func WithS3Endpoint(endpoint string, usePathStyle bool) Option {
	return func(c *ServerConfig) error {
		c.S3.Endpoint = endpoint
		c.S3.UsePathStyle = usePathStyle
		return nil
	}
}

// WithS3Credentials sets static AWS credentials for the S3 media backend
func WithS3Credentials(accessKeyID, secretAccessKey string) Option {
	return func(c *ServerConfig) error {
		c.S3.AccessKeyID = accessKeyID
		c.S3.SecretAccessKey = secretAccessKey
		return nil
	}
}

// WithMediaMaxBytes limits the size of a single upload.
func WithMediaMaxBytes(n int64) Option {
	return func(c *ServerConfig) error {
		if n <= 0 {
			return fmt.Errorf("media max bytes must be positive, got: %d", n)
		}
		c.MediaMaxBytes = n
		return nil
	}
}
