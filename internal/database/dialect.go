package database

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect captures the SQL differences between the supported backends.
type Dialect interface {
	// Name is the database/sql driver name.
	Name() string

	// Placeholder returns the bind parameter for the 1-based index.
	Placeholder(index int) string

	// Quote quotes an identifier, preserving its case.
	Quote(ident string) string

	// ReturnsInsertID reports whether INSERT ... RETURNING is used to obtain
	// generated keys instead of sql.Result.LastInsertId.
	ReturnsInsertID() bool
}

// MySQL is the default VillageDB dialect.
var MySQL Dialect = mysqlDialect{}

// Postgres is the PostgreSQL dialect.
var Postgres Dialect = postgresDialect{}

// DialectFor returns the dialect for a driver name.
func DialectFor(driver string) (Dialect, error) {
	switch strings.ToLower(driver) {
	case "mysql":
		return MySQL, nil
	case "postgres", "postgresql":
		return Postgres, nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

type mysqlDialect struct{}

func (mysqlDialect) Name() string { return "mysql" }
func (mysqlDialect) Placeholder(int) string { return "?" }
func (mysqlDialect) ReturnsInsertID() bool { return false }
func (mysqlDialect) Quote(ident string) string {
	return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
}

type postgresDialect struct{}

func (postgresDialect) Name() string { return "postgres" }
func (postgresDialect) Placeholder(index int) string { return "$" + strconv.Itoa(index) }
func (postgresDialect) ReturnsInsertID() bool { return true }
func (postgresDialect) Quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}
