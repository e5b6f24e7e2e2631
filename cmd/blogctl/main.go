package main

import (
	"errors"
	"log"
	"os"

	"inkwell/internal/platform/db"

	"github.com/spf13/cobra"
)

// blogctl is the operator CLI: provisioning admins, inspecting accounts,
// and seeding demo content. It talks straight to postgres and never goes
// through the HTTP surface.

var dsn string

func main() {
	root := &cobra.Command{
		Use:           "blogctl",
		Short:         "Operate an inkwell deployment",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dsn, "dsn", os.Getenv("POSTGRES_DSN"), "postgres connection string")

	root.AddCommand(newCreateAdminCmd())
	root.AddCommand(newListUsersCmd())
	root.AddCommand(newSeedCmd())

	if err := root.Execute(); err != nil {
		log.Fatalf("blogctl: %v", err)
	}
}

func connect() (*db.Postgres, error) {
	if dsn == "" {
		return nil, errors.New("--dsn or POSTGRES_DSN is required")
	}
	if err := db.Migrate(dsn); err != nil {
		return nil, err
	}
	return db.Connect(dsn)
}
