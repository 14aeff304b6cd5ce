package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/lib/pq"              // PostgreSQL driver
)

// Options tunes the connection handle.
type Options struct {
	MaxOpenConns int
	MaxIdleConns int
}

// Client wraps the database handle shared by every resolver.
type Client struct {
	db      *sql.DB
	dialect Dialect
}

// NewClient opens and verifies a connection for the given driver and DSN.
func NewClient(ctx context.Context, driver, dsn string, opts Options) (*Client, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is required")
	}

	dialect, err := DialectFor(driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dialect.Name(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Client{db: db, dialect: dialect}, nil
}

// NewClientFromDB wraps an already opened handle.
func NewClientFromDB(db *sql.DB, dialect Dialect) *Client {
	return &Client{db: db, dialect: dialect}
}

// DB returns the underlying *sql.DB for custom queries.
func (c *Client) DB() *sql.DB {
	return c.db
}

// Dialect returns the SQL dialect in use.
func (c *Client) Dialect() Dialect {
	return c.dialect
}

// Ping verifies the connection is alive.
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Close closes the database connection.
func (c *Client) Close() error {
	return c.db.Close()
}
