package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillbyte/internal/ui/theme"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show streak, mastery and totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := context.Background()
		p, err := a.Progress.GetProgress(ctx)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		fmt.Println(theme.Title.Render("Progress"))
		fmt.Println()
		fmt.Printf("Streak            %s\n", theme.Streak.Render(fmt.Sprintf("%d days", p.Streak)))
		fmt.Printf("Lessons completed %d\n", p.TotalLessonsCompleted)
		fmt.Printf("Overall mastery   %s %.0f%%\n", theme.Bar(p.OverallMastery, 20), p.OverallMastery)
		fmt.Printf("Today             %d/%d (goal)\n", len(p.CompletedLessonsToday), p.DailyGoal)
		if p.LastActiveDate != "" {
			fmt.Printf("Last active       %s\n", p.LastActiveDate)
		}

		return printSelectedTopics(ctx, a)
	},
}

var progressGoalCmd = &cobra.Command{
	Use:   "goal <n>",
	Short: "Set the daily lesson goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid goal %q: %w", args[0], err)
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := a.Progress.SetDailyGoal(context.Background(), goal)
		if err != nil {
			return fmt.Errorf("set daily goal: %w", err)
		}
		fmt.Printf("Daily goal set to %d.\n", p.DailyGoal)
		return nil
	},
}

func init() {
	progressCmd.AddCommand(progressGoalCmd)
}
