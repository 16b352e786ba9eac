package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillbyte/internal/app"
	"github.com/abhisek/skillbyte/internal/ui/theme"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Browse and pick learning topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		selectedOnly, _ := cmd.Flags().GetBool("selected")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := context.Background()

		if selectedOnly {
			return printSelectedTopics(ctx, a)
		}

		topics, err := a.Topics.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("list topics: %w", err)
		}
		selected, err := a.Topics.SelectedIDs(ctx)
		if err != nil {
			return fmt.Errorf("list selected topics: %w", err)
		}
		selectedSet := make(map[string]bool, len(selected))
		for _, id := range selected {
			selectedSet[id] = true
		}

		fmt.Println(theme.Title.Render("Topics"))
		fmt.Println()
		for _, t := range topics {
			mark := " "
			if selectedSet[t.ID] {
				mark = theme.Done.Render("✓")
			}
			custom := ""
			if t.IsCustom {
				custom = theme.Hint.Render(" (custom)")
			}
			fmt.Printf("[%s] %s %-22s %s  %s%s\n",
				mark, t.Icon, t.ID, theme.Subtitle.Render(fmt.Sprintf("%-14s %d lessons", t.Difficulty, t.TotalLessons)), t.Name, custom)
		}
		fmt.Println()
		fmt.Println(theme.Hint.Render("skillbyte topics select <id> to add a topic to your plan"))
		return nil
	},
}

var topicsSelectCmd = &cobra.Command{
	Use:   "select <id>",
	Short: "Add a topic to your learning plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := context.Background()
		if err := a.Topics.Select(ctx, args[0]); err != nil {
			return fmt.Errorf("select topic: %w", err)
		}
		fmt.Printf("Selected %s.\n", args[0])
		return nil
	},
}

var topicsUnselectCmd = &cobra.Command{
	Use:   "unselect <id>",
	Short: "Remove a topic from your learning plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := context.Background()
		if err := a.Topics.Unselect(ctx, args[0]); err != nil {
			return fmt.Errorf("unselect topic: %w", err)
		}
		fmt.Printf("Unselected %s.\n", args[0])
		return nil
	},
}

func printSelectedTopics(ctx context.Context, a *app.App) error {
	topics, err := a.Topics.ListSelected(ctx)
	if err != nil {
		return fmt.Errorf("list selected topics: %w", err)
	}
	if len(topics) == 0 {
		fmt.Println("No topics selected yet. Run `skillbyte topics` to browse.")
		return nil
	}

	fmt.Println(theme.Title.Render("Your Topics"))
	fmt.Println()
	for _, t := range topics {
		fmt.Printf("%s %s %s\n", t.Icon, t.Name, theme.Subtitle.Render("("+t.ID+")"))
		fmt.Printf("   %d/%d lessons done   mastery %s %d%%\n",
			t.CompletedLessons, t.TotalLessons,
			theme.Bar(float64(t.MasteryPercentage), 20), t.MasteryPercentage)
	}
	return nil
}

func init() {
	topicsCmd.Flags().Bool("selected", false, "Show only selected topics with progress stats")

	topicsCmd.AddCommand(topicsSelectCmd)
	topicsCmd.AddCommand(topicsUnselectCmd)
}
