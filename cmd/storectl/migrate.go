package main

import (
	"sialkot-shop/internal/database"
	"sialkot-shop/migrations"

	"github.com/spf13/cobra"
)

func (c *cli) migrateCmd() *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.New(c.cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			if status {
				return database.GetMigrationStatus(db.DB(), migrations.FS)
			}
			return database.RunMigrations(db.DB(), migrations.FS, c.log)
		},
	}

	cmd.Flags().BoolVar(&status, "status", false, "Print migration status instead of migrating")

	return cmd
}
