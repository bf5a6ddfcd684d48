package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	adminEmail    string
	adminPassword string
	adminName     string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage the admin account",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the admin account, or reset its password",
	RunE:  runAdminCreate,
}

func runAdminCreate(cmd *cobra.Command, args []string) error {
	email := firstNonEmpty(adminEmail, cfg.AdminEmail)
	password := firstNonEmpty(adminPassword, cfg.AdminPassword)
	if email == "" || password == "" {
		return errors.New("email and password are required (flags or ADMIN_EMAIL / ADMIN_PASSWORD)")
	}
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if cfg.UsesMemoryStore() {
		return errNeedsDatabase
	}

	services, closeStore, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStore()

	u, created, err := services.Users.ResetAdmin(email, password, adminName)
	if err != nil {
		return err
	}
	verb := "updated"
	if created {
		verb = "created"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "admin %s %s (id %d)\n", u.Email, verb, u.ID)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
