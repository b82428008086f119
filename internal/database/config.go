package database

import "time"

// Config holds all settings needed to connect to and pool the database.
// Port stays a string: dbview passes it through unvalidated, the same way
// it hands the value to the external mysql client.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string

	// Pool tuning
	MaxConns        int           // maximum number of open connections
	MaxIdleConns    int           // idle connections kept alive
	MaxConnLifetime time.Duration // maximum time a connection may be reused
	MaxConnIdleTime time.Duration // maximum time a connection may sit idle

	// Timeouts
	ConnectTimeout time.Duration // limit for the initial ping
	QueryTimeout   time.Duration // default per-query deadline (applied by callers)
}

// DefaultConfig returns pool settings sized for a short-lived CLI: a couple
// of connections are plenty for sequential inspection queries.
func DefaultConfig() *Config {
	return &Config{
		MaxConns:        2,
		MaxIdleConns:    1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		ConnectTimeout:  10 * time.Second,
		QueryTimeout:    30 * time.Second,
	}
}
