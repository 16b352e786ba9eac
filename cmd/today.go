package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillbyte/internal/ui/theme"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToday(cmd)
	},
}

func runToday(cmd *cobra.Command) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := context.Background()

	selected, err := a.Topics.SelectedIDs(ctx)
	if err != nil {
		return fmt.Errorf("list selected topics: %w", err)
	}
	if len(selected) == 0 {
		fmt.Println("No topics selected yet.")
		fmt.Println(theme.Hint.Render("Run `skillbyte topics` to browse, then `skillbyte topics select <id>`."))
		return nil
	}

	lessons, err := a.Lessons.ListTodays(ctx, selected)
	if err != nil {
		return fmt.Errorf("build today's lessons: %w", err)
	}

	p, err := a.Progress.GetProgress(ctx)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	fmt.Println(theme.Title.Render("Today's Lessons"))
	if p.Streak > 0 {
		fmt.Println(theme.Streak.Render(fmt.Sprintf("🔥 %d day streak", p.Streak)))
	}
	fmt.Println()

	if len(lessons) == 0 {
		fmt.Println(theme.Done.Render("All done!") + " Every lesson in your selected topics is complete.")
		fmt.Println(theme.Hint.Render("Try `skillbyte generate <topic>` to add fresh material."))
		return nil
	}

	doneToday := 0
	for i, l := range lessons {
		mark := " "
		if l.CompletedAt != nil {
			mark = theme.Done.Render("✓")
			doneToday++
		}
		fmt.Printf("%d. [%s] %s %s\n", i+1, mark, l.Title, theme.Subtitle.Render("("+l.Duration+")"))
		fmt.Printf("      %s\n", theme.Hint.Render("skillbyte lesson view "+l.ID))
	}

	fmt.Println()
	fmt.Printf("%d of %d done today · daily goal %d\n", doneToday, len(lessons), p.DailyGoal)
	return nil
}
