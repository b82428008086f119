package preview

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/writeloop/dbview/internal/config"
)

func defaultConfig() *config.Config {
	return &config.Config{
		Host:     "127.0.0.1",
		Port:     "3306",
		User:     "appuser",
		Password: "App@12345678",
		Database: "appdb",
	}
}

func TestAnnounce(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want string
	}{
		{
			name: "defaults",
			cfg:  defaultConfig(),
			want: "Connecting to database: appdb@127.0.0.1:3306\n\n",
		},
		{
			name: "custom database name",
			cfg: &config.Config{
				Host: "127.0.0.1", Port: "3306", Database: "reporting",
			},
			want: "Connecting to database: reporting@127.0.0.1:3306\n\n",
		},
		{
			name: "unusual characters pass through",
			cfg: &config.Config{
				Host: "db host", Port: "port?", Database: "we!rd",
			},
			want: "Connecting to database: we!rd@db host:port?\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Announce(&buf, tt.cfg)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestUsersQuery_FixedText(t *testing.T) {
	const want = "SELECT id, username, created_at, LEFT(hashed_password, 30) AS password_hash_preview\n" +
		"FROM users\n" +
		"ORDER BY id;\n"
	assert.Equal(t, want, UsersQuery)
}

func TestClientArgs(t *testing.T) {
	args := clientArgs(defaultConfig())
	assert.Equal(t, []string{
		"-h", "127.0.0.1",
		"-P", "3306",
		"-u", "appuser",
		"-pApp@12345678",
		"appdb",
	}, args)
}

// stubClient writes a shell script that records its stdin and exits with
// the given code, standing in for the real mysql client.
func stubClient(t *testing.T, exitCode int) (script, capture string) {
	t.Helper()
	dir := t.TempDir()
	capture = filepath.Join(dir, "stdin.captured")
	script = filepath.Join(dir, "mysql-stub")
	body := fmt.Sprintf("#!/bin/sh\ncat > %q\nexit %d\n", capture, exitCode)
	require.NoError(t, os.WriteFile(script, []byte(body), 0o755))
	return script, capture
}

func TestRunner_ExitCodePassThrough(t *testing.T) {
	for _, code := range []int{0, 1} {
		t.Run(fmt.Sprintf("exit %d", code), func(t *testing.T) {
			script, capture := stubClient(t, code)

			var stdout, stderr bytes.Buffer
			r := &Runner{Client: script, Stdout: &stdout, Stderr: &stderr}

			got := r.Run(defaultConfig())
			assert.Equal(t, code, got)

			// The runner adds nothing of its own to stdout.
			assert.Empty(t, stdout.String())

			// The fixed statement reached the client unchanged.
			sent, err := os.ReadFile(capture)
			require.NoError(t, err)
			assert.Equal(t, UsersQuery, string(sent))
		})
	}
}

func TestRunner_MissingClient(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := &Runner{
		Client: filepath.Join(t.TempDir(), "no-such-client"),
		Stdout: &stdout,
		Stderr: &stderr,
	}

	got := r.Run(defaultConfig())
	assert.Equal(t, 127, got)
	assert.Empty(t, stdout.String())
	assert.NotEmpty(t, stderr.String())
}

func TestRunner_QueryIndependentOfConfig(t *testing.T) {
	script, capture := stubClient(t, 0)

	cfg := &config.Config{
		Host: "elsewhere", Port: "9999", User: "nobody",
		Password: "hunter2", Database: "other",
	}

	var stdout, stderr bytes.Buffer
	r := &Runner{Client: script, Stdout: &stdout, Stderr: &stderr}
	require.Equal(t, 0, r.Run(cfg))

	sent, err := os.ReadFile(capture)
	require.NoError(t, err)
	assert.Equal(t, UsersQuery, string(sent))
}
