package cmd

import (
	"fmt"
	"os"

	"github.com/Valentina9990/top-talent/config"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "top-talent",
	Short: "Top Talent API: player and school sports marketplace",
	Long: `Top Talent connects youth football players with schools and clubs.

Commands:
  server    start the HTTP API
  migrate   create or update the database schema
  seed      insert the positions and categories lookup data`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// connect loads the configuration and opens the database.
func connect() (*config.Config, *gorm.DB, error) {
	if err := config.Initialize(); err != nil {
		return nil, nil, err
	}
	return config.GetConfig(), config.DB, nil
}
