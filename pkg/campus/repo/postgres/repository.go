package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tendant/campus-content/pkg/campus"
)

//go:embed schema.sql
var schemaSQL string

// Tables lists every table created by Migrate.
var Tables = []string{
	"programs", "news", "events", "management", "contacts", "settings",
	"testimonials", "achievements", "facilities", "alumni", "institutional_data",
}

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository implements campus.Repository using PostgreSQL
type Repository struct {
	db  DBTX
	now campus.Clock
}

// Option configures a Repository.
type Option func(*Repository)

// WithClock replaces time.Now as the source of server-set timestamps and of
// the upcoming-events cutoff.
func WithClock(clock campus.Clock) Option {
	return func(r *Repository) {
		if clock != nil {
			r.now = clock
		}
	}
}

// New creates a new PostgreSQL repository
func New(db DBTX, opts ...Option) *Repository {
	r := &Repository{db: db, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewWithPool creates a new PostgreSQL repository with connection pool
func NewWithPool(pool *pgxpool.Pool, opts ...Option) *Repository {
	return New(pool, opts...)
}

var _ campus.Repository = (*Repository)(nil)

// Migrate creates any missing tables and indexes. It is safe to run on
// every start.
func Migrate(ctx context.Context, db DBTX) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	if p, ok := r.db.(interface{ Ping(context.Context) error }); ok {
		if err := p.Ping(ctx); err != nil {
			return r.handlePostgresError("ping", err)
		}
		return nil
	}
	var one int
	if err := r.db.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return r.handlePostgresError("ping", err)
	}
	return nil
}

// Close closes the underlying pool when the repository owns one.
func (r *Repository) Close() error {
	if p, ok := r.db.(*pgxpool.Pool); ok {
		p.Close()
	}
	return nil
}

func (r *Repository) stamp() time.Time {
	return r.now().UTC().Truncate(time.Microsecond)
}

// Error handling helper
func (r *Repository) handlePostgresError(operation string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return campus.ErrNotFound
	}

	var cause error
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if strings.Contains(pgErr.ConstraintName, "key") {
				cause = fmt.Errorf("setting key already exists: %w", err)
			} else {
				cause = fmt.Errorf("duplicate entry: %w", err)
			}
		case "23502": // not_null_violation
			cause = fmt.Errorf("required field %s is missing: %w", pgErr.ColumnName, err)
		case "23514": // check_violation
			cause = fmt.Errorf("constraint %s violated: %w", pgErr.ConstraintName, err)
		case "42P01": // undefined_table
			cause = fmt.Errorf("table does not exist - database migration required: %w", err)
		default:
			cause = fmt.Errorf("%s (code: %s): %w", pgErr.Message, pgErr.Code, err)
		}
	} else {
		cause = err
	}

	return &campus.StorageError{Backend: "postgres", Op: operation, Err: cause}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func queryOne[T any](ctx context.Context, r *Repository, op string, scan func(rowScanner) (*T, error), query string, args ...any) (*T, error) {
	v, err := scan(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, r.handlePostgresError(op, err)
	}
	return v, nil
}

// queryList runs query and scans every row. The result is never nil.
func queryList[T any](ctx context.Context, r *Repository, op string, scan func(rowScanner) (*T, error), query string, args ...any) ([]*T, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, r.handlePostgresError(op, err)
	}
	defer rows.Close()

	out := make([]*T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, r.handlePostgresError(op, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, r.handlePostgresError(op, err)
	}
	return out, nil
}

func (r *Repository) deleteByID(ctx context.Context, op, table string, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return false, r.handlePostgresError(op, err)
	}
	return tag.RowsAffected() > 0, nil
}

func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	return &s
}
