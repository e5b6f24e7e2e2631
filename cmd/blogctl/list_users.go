package main

import (
	"fmt"
	"log/slog"

	accountpostgres "inkwell/contexts/identity/account-service/adapters/postgres"
	"inkwell/contexts/identity/account-service/domain/entities"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newListUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-users",
		Short: "Print all accounts with role and status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pg, err := connect()
			if err != nil {
				return err
			}
			defer func() { _ = pg.Close() }()

			repo := accountpostgres.NewRepository(pg.DB, slog.Default())
			accounts, err := repo.List(cmd.Context())
			if err != nil {
				return err
			}

			for _, account := range accounts {
				fmt.Printf("%s  %-30s  %-10s  %s\n",
					account.ID,
					account.Email,
					roleColor(account.Role)(string(account.Role)),
					statusColor(account.Status)(string(account.Status)),
				)
			}
			fmt.Printf("%d account(s)\n", len(accounts))
			return nil
		},
	}
}

func roleColor(role entities.Role) func(...any) string {
	switch role {
	case entities.RoleAdmin:
		return color.New(color.FgRed).SprintFunc()
	case entities.RoleCreator:
		return color.New(color.FgCyan).SprintFunc()
	default:
		return color.New(color.Reset).SprintFunc()
	}
}

func statusColor(status entities.Status) func(...any) string {
	if status == entities.StatusSuspended {
		return color.New(color.FgYellow).SprintFunc()
	}
	return color.New(color.FgGreen).SprintFunc()
}
