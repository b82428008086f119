// Package database defines the read-only contract dbview's commands use to
// talk to MySQL. Commands never import the driver package directly.
package database

import "context"

// DB is the read-only interface implemented by the mysql driver.
// dbview only ever runs SELECT and information_schema queries.
type DB interface {
	// Ping verifies the database is reachable.
	Ping(ctx context.Context) error

	// Close releases all resources held by the connection pool.
	Close()

	// Query executes a SQL statement that returns multiple rows.
	Query(ctx context.Context, sql string, args ...any) (Rows, error)

	// QueryRow executes a SQL statement that returns at most one row.
	QueryRow(ctx context.Context, sql string, args ...any) (Row, error)

	// ListTables returns all base table names in the connected database.
	ListTables(ctx context.Context) ([]string, error)

	// TableExists reports whether a table with the given name exists.
	TableExists(ctx context.Context, table string) (bool, error)

	// DescribeTable returns the column structure of the given table.
	DescribeTable(ctx context.Context, table string) (*TableInfo, error)
}

// Rows is an abstraction over a database result set.
// Callers must always call Close() when done, even on error.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Close()
	Err() error
}

// Row is an abstraction over a single database row.
type Row interface {
	Scan(dest ...any) error
}

// ColumnInfo describes a single column in a table.
type ColumnInfo struct {
	Name      string
	DataType  string
	Nullable  bool
	Default   *string // nil if no default
	IsPrimary bool
	IsUnique  bool
}

// TableInfo describes a table and its columns.
type TableInfo struct {
	Name       string
	Columns    []*ColumnInfo
	PrimaryKey []string
}
