package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/voicelab/coach-api/internal/database"
	"github.com/voicelab/coach-api/internal/models"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the database schema for the VoiceLab Coach API.

The schema is derived from the registered models and applied with GORM's
auto-migration. Use the subcommands to apply the schema or inspect its
current state.

Available subcommands:
  up      - Apply the schema for all registered models
  status  - Show which model tables exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the schema for all registered models",
	Long: `Create or update the tables for every registered model.

Auto-migration only adds missing tables, columns and indexes; it never
drops existing columns or data.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows schema status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show schema status",
	Long:  `Display which model tables exist in the configured database.`,
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "Dry run mode - no changes will be made")
		for _, model := range models.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "  would migrate %T\n", model)
		}
		return nil
	}

	if err := loadConfig(); err != nil {
		return err
	}

	db, err := database.InitializeWithMigrations()
	if err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	defer db.Close()

	fmt.Fprintf(cmd.OutOrStdout(), "Applied schema for %d models\n", len(models.All()))
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	db, err := database.InitializeWithMigrations()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Schema Status")
	fmt.Fprintln(out, strings.Repeat("=", 50))

	migrator := db.DB.Migrator()
	for _, model := range models.All() {
		state := "missing"
		if migrator.HasTable(model) {
			state = "present"
		}
		fmt.Fprintf(out, "  %-40T %s\n", model, state)
	}

	return nil
}
