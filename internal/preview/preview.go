// Package preview implements dbview's default operation: announce the target
// database, then hand a fixed preview query to the external mysql client
// and reflect its exit status.
package preview

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/writeloop/dbview/internal/config"
)

// DefaultClient is the database client binary invoked by Run.
// It is resolved through PATH like any shell command would be.
const DefaultClient = "mysql"

// exitNotFound is the shell convention for "command not found".
const exitNotFound = 127

// UsersQuery is the fixed statement streamed to the client's stdin.
// The hash is cut to 30 characters so the full value never reaches a
// terminal or scrollback buffer. Configuration never alters this text.
const UsersQuery = `SELECT id, username, created_at, LEFT(hashed_password, 30) AS password_hash_preview
FROM users
ORDER BY id;
`

// Announce writes the pre-connection status line followed by a blank line.
// It is purely informational and never fails.
func Announce(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "Connecting to database: %s@%s:%s\n\n", cfg.Database, cfg.Host, cfg.Port)
}

// Runner invokes the external database client as a child process.
// The zero value is not usable; construct with NewRunner.
type Runner struct {
	// Client is the binary to invoke. Tests point this at a stub script.
	Client string

	// Stdout and Stderr are inherited by the child so the client's tabular
	// output and error reporting reach the operator untouched.
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner returns a Runner wired to the real mysql client and the
// process's own output streams.
func NewRunner() *Runner {
	return &Runner{
		Client: DefaultClient,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run feeds UsersQuery to the client and blocks until it exits.
// The returned code is the client's own exit status, unmodified; a missing
// client binary yields 127. Run itself writes nothing to stdout.
func (r *Runner) Run(cfg *config.Config) int {
	cmd := exec.Command(r.Client, clientArgs(cfg)...)
	cmd.Stdin = strings.NewReader(UsersQuery)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	// The client never started (not found, not executable). The shell
	// would print to stderr and exit 127; do the same.
	fmt.Fprintf(r.Stderr, "dbview: %v\n", err)
	return exitNotFound
}

// clientArgs builds the mysql client's connection arguments from the
// resolved configuration. Values are passed through verbatim.
func clientArgs(cfg *config.Config) []string {
	return []string{
		"-h", cfg.Host,
		"-P", cfg.Port,
		"-u", cfg.User,
		"-p" + cfg.Password,
		cfg.Database,
	}
}
