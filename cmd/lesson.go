package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillbyte/internal/ui/theme"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Read and complete lessons",
}

var lessonViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show a lesson's full content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := context.Background()
		l, err := a.Lessons.GetByID(ctx, args[0])
		if err != nil {
			return fmt.Errorf("load lesson: %w", err)
		}

		fmt.Println(theme.Title.Render(l.Title))
		fmt.Println(theme.Subtitle.Render(l.Duration))
		if l.CompletedAt != nil {
			fmt.Println(theme.Done.Render("Completed " + l.CompletedAt.Local().Format("2006-01-02")))
		}
		fmt.Println()
		fmt.Println(l.Content)

		if len(l.KeyPoints) > 0 {
			fmt.Println()
			fmt.Println(theme.Title.Render("Key Points"))
			for _, kp := range l.KeyPoints {
				fmt.Printf("  • %s\n", kp)
			}
		}

		quiz, err := a.Quizzes.GetForLesson(ctx, l.ID)
		if err != nil {
			return fmt.Errorf("look up quiz: %w", err)
		}
		fmt.Println()
		if quiz != nil {
			fmt.Println(theme.Hint.Render("This lesson has a quiz: skillbyte quiz show " + l.ID))
		} else {
			fmt.Println(theme.Hint.Render("No quiz for this lesson. Finish with: skillbyte lesson complete " + l.ID))
		}
		return nil
	},
}

var lessonCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a lesson as completed",
	Long: `Mark a lesson as completed and fold the result into your progress.

Lessons without a quiz record a score of 100. For lessons with a quiz,
prefer answering it (skillbyte quiz answer) so the real score counts
toward mastery.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, _ := cmd.Flags().GetInt("score")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := context.Background()
		if err := a.Lessons.MarkComplete(ctx, args[0]); err != nil {
			return fmt.Errorf("mark complete: %w", err)
		}
		p, err := a.Progress.RecordLessonCompletion(ctx, args[0], score)
		if err != nil {
			return fmt.Errorf("record completion: %w", err)
		}

		fmt.Println(theme.Done.Render("Lesson complete."))
		fmt.Printf("Streak %d · %d lessons total · mastery %.0f%%\n",
			p.Streak, p.TotalLessonsCompleted, p.OverallMastery)
		return nil
	},
}

func init() {
	lessonCompleteCmd.Flags().Int("score", 100, "Score to record (0-100); defaults to 100 for quiz-less lessons")

	lessonCmd.AddCommand(lessonViewCmd)
	lessonCmd.AddCommand(lessonCompleteCmd)
}
