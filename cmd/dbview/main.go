// dbview is a small operator CLI for the WriteLoop application database.
//
// Invoked with no arguments it announces the target database, pipes a fixed
// users-table preview query to the external mysql client, and exits with the
// client's own status. Subcommands connect directly instead:
//
//	dbview              preview all users via the mysql client
//	dbview users        list all users (native driver)
//	dbview user <name>  show one user in full
//	dbview tables       list tables and the users table structure
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/writeloop/dbview/internal/config"
	"github.com/writeloop/dbview/internal/database"
	"github.com/writeloop/dbview/internal/database/mysql"
	"github.com/writeloop/dbview/internal/errs"
	"github.com/writeloop/dbview/internal/logger"
	"github.com/writeloop/dbview/internal/preview"
	"github.com/writeloop/dbview/internal/viewer"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dbview: %v\n", err)
		return 1
	}

	log := logger.New(&logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	// Exit status of the zero-argument path: whatever the client returned.
	exitCode := 0

	root := &cobra.Command{
		Use:           "dbview",
		Short:         "Inspect the WriteLoop users table",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(c *cobra.Command, _ []string) {
			preview.Announce(os.Stdout, cfg)
			exitCode = preview.NewRunner().Run(cfg)
		},
	}

	root.AddCommand(
		newUsersCmd(cfg, log),
		newUserCmd(cfg, log),
		newTablesCmd(cfg, log),
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "dbview: %s\n", describe(err))
		return 1
	}
	return exitCode
}

func newUsersCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List all users with a hash preview",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()
			db, err := openDB(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer db.Close()

			users, err := viewer.New(db, log).ListUsers(ctx)
			if err != nil {
				return err
			}
			viewer.RenderUsers(c.OutOrStdout(), users)
			return nil
		},
	}
}

func newUserCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "user <username>",
		Short: "Show one user's full record",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			db, err := openDB(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer db.Close()

			u, err := viewer.New(db, log).GetUser(ctx, args[0])
			if err != nil {
				if errs.IsNotFound(err) {
					return fmt.Errorf("user not found: %s", args[0])
				}
				return err
			}
			viewer.RenderUserDetail(c.OutOrStdout(), u)
			return nil
		},
	}
}

func newTablesCmd(cfg *config.Config, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List tables and the users table structure",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()
			db, err := openDB(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer db.Close()

			s, err := viewer.New(db, log).InspectSchema(ctx)
			if err != nil {
				return err
			}
			viewer.RenderSchema(c.OutOrStdout(), s)
			return nil
		},
	}
}

// openDB connects the native driver using the resolved configuration.
func openDB(ctx context.Context, cfg *config.Config, log *logger.Logger) (database.DB, error) {
	dbCfg := database.DefaultConfig()
	dbCfg.Host = cfg.Host
	dbCfg.Port = cfg.Port
	dbCfg.User = cfg.User
	dbCfg.Password = cfg.Password
	dbCfg.Database = cfg.Database

	log.With().Str("addr", cfg.Addr()).Str("database", cfg.Database).Logger().
		Debug("connecting")

	db, err := mysql.New(ctx, dbCfg)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// describe turns error kinds into operator-friendly messages before the
// raw cause is shown.
func describe(err error) string {
	switch {
	case errs.IsPermissionDenied(err):
		return fmt.Sprintf("access denied, check DB_USER and DB_PASSWORD: %v", err)
	case errs.IsConnectionFailed(err):
		return fmt.Sprintf("cannot reach the database, check DB_HOST and DB_PORT: %v", err)
	case errs.IsTimeout(err):
		return fmt.Sprintf("timed out: %v", err)
	default:
		return err.Error()
	}
}
