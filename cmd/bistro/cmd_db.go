package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/bistro/config"
	"github.com/shashiranjanraj/bistro/database/seeders"
	"github.com/shashiranjanraj/bistro/pkg/database"
)

// bootDB loads config and opens the database connection.
func bootDB() error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect()
}

// bistro seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		defer database.Disconnect(context.Background())

		fmt.Println("Running seeders…")
		return seeders.RunAll(cmd.Context(), database.DB())
	},
}
