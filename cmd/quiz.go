package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillbyte/internal/model"
	"github.com/abhisek/skillbyte/internal/quiz"
	"github.com/abhisek/skillbyte/internal/ui/theme"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take lesson quizzes",
}

var quizShowCmd = &cobra.Command{
	Use:   "show <lesson-id>",
	Short: "Show the quiz for a lesson",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := context.Background()
		q, err := a.Quizzes.GetForLesson(ctx, args[0])
		if err != nil {
			return fmt.Errorf("look up quiz: %w", err)
		}
		if q == nil {
			fmt.Println("This lesson has no quiz.")
			return nil
		}

		fmt.Println(theme.Title.Render("Quiz: " + args[0]))
		fmt.Println()
		for i, question := range q.Questions {
			fmt.Printf("%d. %s\n", i+1, question.Text)
			for j, opt := range question.Options {
				fmt.Printf("   %c) %s\n", 'a'+j, opt)
			}
			fmt.Println()
		}

		if attempt, err := a.Quizzes.GetResult(ctx, q.ID); err != nil {
			return fmt.Errorf("load attempt: %w", err)
		} else if attempt != nil {
			fmt.Printf("Last attempt: %d%% on %s\n", attempt.Score, attempt.CompletedAt.Local().Format("2006-01-02"))
		}
		fmt.Println(theme.Hint.Render(fmt.Sprintf("Answer with: skillbyte quiz answer %s a,b,c", args[0])))
		return nil
	},
}

var quizAnswerCmd = &cobra.Command{
	Use:   "answer <lesson-id> <answers>",
	Short: "Answer a lesson's quiz",
	Long: `Answer a lesson's quiz non-interactively.

Answers are a comma-separated list of option letters, one per question,
in order. Use "-" to leave a question unanswered:

  skillbyte quiz answer js-variables a,c,-

Scoring counts unanswered questions as wrong. Resubmitting replaces the
stored attempt, and the new score feeds your mastery either way.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := context.Background()
		q, err := a.Quizzes.GetForLesson(ctx, args[0])
		if err != nil {
			return fmt.Errorf("look up quiz: %w", err)
		}
		if q == nil {
			return fmt.Errorf("lesson %s has no quiz", args[0])
		}

		answers, err := parseAnswers(args[1], q.Questions)
		if err != nil {
			return err
		}

		score := quiz.Score(*q, answers)
		if _, err := a.Quizzes.Submit(ctx, q.ID, answers, score); err != nil {
			return fmt.Errorf("submit attempt: %w", err)
		}
		if err := a.Lessons.MarkComplete(ctx, args[0]); err != nil {
			return fmt.Errorf("mark lesson complete: %w", err)
		}
		p, err := a.Progress.RecordLessonCompletion(ctx, args[0], score)
		if err != nil {
			return fmt.Errorf("record completion: %w", err)
		}

		for i, question := range q.Questions {
			given := answers[i]
			switch {
			case given == nil:
				fmt.Printf("%d. %s (unanswered)\n", i+1, theme.Warn.Render("✗"))
			case *given == question.CorrectAnswer:
				fmt.Printf("%d. %s\n", i+1, theme.Done.Render("✓"))
			default:
				fmt.Printf("%d. %s correct: %c) %s\n", i+1, theme.Warn.Render("✗"),
					'a'+question.CorrectAnswer, question.Options[question.CorrectAnswer])
				if question.Explanation != "" {
					fmt.Printf("   %s\n", theme.Hint.Render(question.Explanation))
				}
			}
		}

		fmt.Println()
		fmt.Printf("Score: %d%%\n", score)
		fmt.Printf("Streak %d · %d lessons total · mastery %.0f%%\n",
			p.Streak, p.TotalLessonsCompleted, p.OverallMastery)
		return nil
	},
}

// parseAnswers turns "a,c,-" into per-question option indexes, nil for
// unanswered slots. It rejects wrong counts and out-of-range letters.
func parseAnswers(raw string, questions []model.Question) ([]*int, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != len(questions) {
		return nil, fmt.Errorf("quiz has %d questions, got %d answers", len(questions), len(parts))
	}

	answers := make([]*int, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "-" || part == "" {
			continue
		}
		if len(part) != 1 || part[0] < 'a' || part[0] > 'z' {
			return nil, fmt.Errorf("answer %d: want an option letter or \"-\", got %q", i+1, part)
		}
		idx := int(part[0] - 'a')
		if idx >= len(questions[i].Options) {
			return nil, fmt.Errorf("answer %d: question only has options a-%c", i+1, 'a'+len(questions[i].Options)-1)
		}
		answers[i] = &idx
	}
	return answers, nil
}

func init() {
	quizCmd.AddCommand(quizShowCmd)
	quizCmd.AddCommand(quizAnswerCmd)
}
