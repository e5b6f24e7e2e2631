package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	bcryptadapter "inkwell/contexts/identity/account-service/adapters/bcrypt"
	accountpostgres "inkwell/contexts/identity/account-service/adapters/postgres"
	"inkwell/contexts/identity/account-service/domain/entities"
	"inkwell/internal/shared/validation"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newCreateAdminCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Provision an admin account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			email = strings.ToLower(strings.TrimSpace(email))
			if !validation.ValidName(name) {
				return fmt.Errorf("invalid name %q", name)
			}
			if !validation.ValidEmail(email) {
				return fmt.Errorf("invalid email %q", email)
			}
			if !validation.ValidPassword(password) {
				return fmt.Errorf("password must be at least 8 characters with an uppercase letter and a digit")
			}

			pg, err := connect()
			if err != nil {
				return err
			}
			defer func() { _ = pg.Close() }()

			hash, err := bcryptadapter.Hasher{}.Hash(password)
			if err != nil {
				return err
			}

			repo := accountpostgres.NewRepository(pg.DB, slog.Default())
			account, err := repo.Create(cmd.Context(), entities.Account{
				ID:           uuid.NewString(),
				Name:         strings.TrimSpace(name),
				Email:        email,
				PasswordHash: hash,
				Role:         entities.RoleAdmin,
				Status:       entities.StatusActive,
				CreatedAt:    time.Now().UTC(),
			})
			if err != nil {
				return err
			}

			color.Green("admin account created")
			fmt.Printf("  id:    %s\n  email: %s\n", account.ID, account.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "login password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
