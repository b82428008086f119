// Package viewer implements the richer inspection commands that talk to
// MySQL directly instead of shelling out to the client: user listing,
// per-user detail, and table structure.
package viewer

import (
	"context"
	"time"

	"github.com/writeloop/dbview/internal/database"
	"github.com/writeloop/dbview/internal/logger"
)

// User is one row of the application's users table.
// created_at scans as time.Time because the driver DSN sets parseTime.
type User struct {
	ID             int64
	Username       string
	CreatedAt      time.Time
	HashedPassword string
}

// usersTable is the only application table dbview knows the shape of.
const usersTable = "users"

// Schema is the table inventory shown by the tables command: every base
// table in the database plus the column structure of the users table.
type Schema struct {
	Tables []string
	Users  *database.TableInfo // nil when the users table does not exist
}

// Viewer runs inspection queries against an open database connection.
type Viewer struct {
	db  database.DB
	log *logger.Logger
}

// New returns a Viewer over db.
func New(db database.DB, log *logger.Logger) *Viewer {
	return &Viewer{db: db, log: log}
}

// ListUsers returns every user ordered ascending by id.
func (v *Viewer) ListUsers(ctx context.Context) ([]User, error) {
	query, args, err := database.Select(usersTable).
		Columns("id", "username", "created_at", "hashed_password").
		OrderBy("id", database.Asc).
		Build()
	if err != nil {
		return nil, err
	}
	v.log.Debugf("running query: %s", query)

	rows, err := v.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.CreatedAt, &u.HashedPassword); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser returns the user with the exact given username.
// The error satisfies errs.IsNotFound when no such user exists.
func (v *Viewer) GetUser(ctx context.Context, username string) (*User, error) {
	query, args, err := database.Select(usersTable).
		Columns("id", "username", "created_at", "hashed_password").
		Where("username", "=", username).
		Build()
	if err != nil {
		return nil, err
	}
	v.log.Debugf("running query: %s", query)

	row, err := v.db.QueryRow(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.CreatedAt, &u.HashedPassword); err != nil {
		return nil, err
	}
	return &u, nil
}

// InspectSchema lists all base tables and, when present, the column
// structure of the users table.
func (v *Viewer) InspectSchema(ctx context.Context) (*Schema, error) {
	tables, err := v.db.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	s := &Schema{Tables: tables}

	exists, err := v.db.TableExists(ctx, usersTable)
	if err != nil {
		return nil, err
	}
	if !exists {
		v.log.Warn("users table not found in this database")
		return s, nil
	}

	info, err := v.db.DescribeTable(ctx, usersTable)
	if err != nil {
		return nil, err
	}
	s.Users = info
	return s, nil
}
