package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillbyte/internal/app"
	"github.com/abhisek/skillbyte/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "skillbyte",
	Short: "Bite-sized daily learning",
	Long:  "Skillbyte — pick topics, get three short lessons a day, quiz yourself, keep the streak alive.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToday(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKILLBYTE_DB env var)")

	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SKILLBYTE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openApp wires the full application against the resolved database.
// Callers own the returned App and must Close it.
func openApp(cmd *cobra.Command) (*app.App, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	a, err := app.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return a, nil
}
