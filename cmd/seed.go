package cmd

import (
	"fmt"
	"log"

	"github.com/Valentina9990/top-talent/internal/reference"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the default positions and categories",
	Long: `Inserts the football positions and age categories the directories filter on.
Rows whose name already exists are left untouched, so seeding twice is safe.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := connect()
		if err != nil {
			return err
		}
		if err := reference.NewReferenceRepository(db).Seed(cmd.Context()); err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
		log.Println("Reference data seeded")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
