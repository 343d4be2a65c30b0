package cmd

import (
	"fmt"
	"log"

	"github.com/Valentina9990/top-talent/internal/models"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := connect()
		if err != nil {
			return err
		}
		if err := models.AutoMigrate(db.WithContext(cmd.Context())); err != nil {
			return fmt.Errorf("migrate failed: %w", err)
		}
		log.Println("AutoMigrate successful")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
