package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/shinyflakes/config"
	"github.com/shashiranjanraj/shinyflakes/database/seeders"
	"github.com/shashiranjanraj/shinyflakes/pkg/cache"
	"github.com/shashiranjanraj/shinyflakes/pkg/database"
	"github.com/shashiranjanraj/shinyflakes/pkg/migration"
)

// bootDB loads config and opens the database connection.
func bootDB() error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect()
}

// shinyflakes migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		fmt.Println("Running migrations…")
		return migration.New(database.DB).Run()
	},
}

// shinyflakes migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Rollback the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		fmt.Println("Rolling back last batch…")
		return migration.New(database.DB).Rollback()
	},
}

// shinyflakes migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of each migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		return migration.New(database.DB).Status()
	},
}

// shinyflakes seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		// The product seeder drops its cached aggregate through this client.
		_ = cache.Connect()
		fmt.Println("Running seeders…")
		return seeders.RunAll(database.DB)
	},
}
