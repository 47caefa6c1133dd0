package main

import (
	"fmt"

	root "ytsum"
	"ytsum/pkg/logger"

	"github.com/spf13/cobra"
)

// migrateCommand constructs the 'migrate' subcommand that applies database
// migrations to the latest version using goose.
func migrateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the transcript cache database to the latest version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			strg, closeStrg, err := getPostgres(ctx, a.cfg)
			if err != nil {
				return err
			}
			defer closeStrg()

			if err := strg.Migrate(ctx, root.Migrations, "migrations"); err != nil {
				return fmt.Errorf("could not migrate pgsql: %w", err)
			}
			logger.Info(ctx, "database migrated")

			return nil
		},
	}

	return cmd
}
