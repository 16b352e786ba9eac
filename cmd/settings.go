package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage generation settings",
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the API key and/or model used for generation",
	RunE: func(cmd *cobra.Command, args []string) error {
		apiKey, _ := cmd.Flags().GetString("api-key")
		mdl, _ := cmd.Flags().GetString("model")
		if apiKey == "" && mdl == "" {
			return fmt.Errorf("nothing to set: pass --api-key and/or --model")
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := context.Background()
		settings, err := a.Store.Settings().Load(ctx)
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		if apiKey != "" {
			settings.APIKey = apiKey
		}
		if mdl != "" {
			settings.SelectedModel = mdl
		}
		if err := a.Store.Settings().Save(ctx, settings); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
		fmt.Println("Settings saved.")
		return nil
	},
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored generation settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		settings, err := a.Store.Settings().Load(context.Background())
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}

		fmt.Printf("API key:  %s\n", maskKey(settings.APIKey))
		if settings.SelectedModel != "" {
			fmt.Printf("Model:    %s\n", settings.SelectedModel)
		} else {
			fmt.Println("Model:    (default)")
		}
		return nil
	},
}

func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", 8) + key[len(key)-4:]
}

func init() {
	settingsSetCmd.Flags().String("api-key", "", "API key for the LLM provider")
	settingsSetCmd.Flags().String("model", "", "Model ID (e.g. gpt-4o-mini, claude-haiku, gemini-2.0-flash)")

	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsShowCmd)
}
