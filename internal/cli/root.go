package cli

import (
	"github.com/spf13/cobra"

	"stoq/internal/config"
	"stoq/internal/database"

	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "stoqcli",
	Short: "Stoq catalog CLI - database management and utilities",
}

func init() {
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(clearCmd)
}

// openDatabase connects using the same configuration the server reads.
func openDatabase() (*gorm.DB, error) {
	cfg := config.Load()
	return database.Connect(cfg.DatabaseDriver, cfg.DatabaseURL)
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
