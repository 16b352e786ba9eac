package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all progress, selections and custom content",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if !force {
			fmt.Print("This wipes your streak, completions, selections and custom topics. Type \"reset\" to confirm: ")
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.TrimSpace(line) != "reset" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.ResetAll(context.Background()); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Println("All progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
