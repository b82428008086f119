package mysql

import (
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/writeloop/dbview/internal/database"
)

func TestBuildDSN_RoundTrip(t *testing.T) {
	cfg := database.DefaultConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = "3306"
	cfg.User = "appuser"
	cfg.Password = "App@12345678" // '@' must survive DSN formatting
	cfg.Database = "appdb"

	parsed, err := mysql.ParseDSN(buildDSN(cfg))
	require.NoError(t, err)

	assert.Equal(t, "appuser", parsed.User)
	assert.Equal(t, "App@12345678", parsed.Passwd)
	assert.Equal(t, "tcp", parsed.Net)
	assert.Equal(t, "127.0.0.1:3306", parsed.Addr)
	assert.Equal(t, "appdb", parsed.DBName)
	assert.True(t, parsed.ParseTime)
	assert.Equal(t, "utf8mb4", parsed.Params["charset"])
}

func TestBuildDSN_PortPassedThrough(t *testing.T) {
	// The port is never validated; whatever was configured lands in the DSN.
	cfg := database.DefaultConfig()
	cfg.Host = "db.internal"
	cfg.Port = "13306"
	cfg.User = "u"
	cfg.Password = "p"
	cfg.Database = "d"

	parsed, err := mysql.ParseDSN(buildDSN(cfg))
	require.NoError(t, err)
	assert.Equal(t, "db.internal:13306", parsed.Addr)
}
