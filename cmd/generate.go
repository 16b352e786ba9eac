package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/skillbyte/internal/model"
	"github.com/abhisek/skillbyte/internal/ui/theme"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic name>",
	Short: "Generate a custom topic with AI-written lessons",
	Long: `Generate lessons for a topic of your choosing.

Creates a custom topic, fills it with generated lessons, and selects it
so the lessons show up in your daily set. Requires an API key: set one
with "skillbyte settings set --api-key ..." or export OPENAI_API_KEY,
ANTHROPIC_API_KEY or GEMINI_API_KEY.

With --questions, also generates a comprehension quiz preview for each
lesson. Previews are printed, not stored.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lessonCount, _ := cmd.Flags().GetInt("lessons")
		questionCount, _ := cmd.Flags().GetInt("questions")
		if lessonCount < 1 {
			return fmt.Errorf("--lessons must be at least 1")
		}

		topicName := strings.Join(args, " ")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := context.Background()
		gen, err := a.Generator(ctx)
		if err != nil {
			return fmt.Errorf("configure generation: %w", err)
		}

		fmt.Printf("Generating %d lessons for %q...\n", lessonCount, topicName)
		lessons, err := gen.GenerateLessons(ctx, topicName, lessonCount)
		if err != nil {
			return fmt.Errorf("generate lessons: %w", err)
		}

		topic, err := a.Topics.AddCustom(ctx, model.Topic{
			ID:           uuid.NewString(),
			Name:         topicName,
			Icon:         "✨",
			TotalLessons: len(lessons),
			IsCustom:     true,
		})
		if err != nil {
			return fmt.Errorf("save topic: %w", err)
		}
		for i := range lessons {
			lessons[i].TopicID = topic.ID
		}
		if err := a.Lessons.AddCustomBatch(ctx, lessons); err != nil {
			return fmt.Errorf("save lessons: %w", err)
		}
		if err := a.Topics.Select(ctx, topic.ID); err != nil {
			return fmt.Errorf("select topic: %w", err)
		}

		fmt.Println()
		fmt.Println(theme.Done.Render(fmt.Sprintf("Created topic %q with %d lessons:", topicName, len(lessons))))
		for _, l := range lessons {
			fmt.Printf("  %s %s\n", l.Title, theme.Subtitle.Render("("+l.ID+")"))
		}

		if questionCount > 0 {
			for _, l := range lessons {
				questions, err := gen.GenerateQuizQuestions(ctx, l.Content, questionCount)
				if err != nil {
					return fmt.Errorf("generate quiz for %q: %w", l.Title, err)
				}
				fmt.Println()
				fmt.Println(theme.Title.Render("Quiz preview: " + l.Title))
				for i, q := range questions {
					fmt.Printf("%d. %s\n", i+1, q.Text)
					for j, opt := range q.Options {
						mark := " "
						if j == q.CorrectAnswer {
							mark = theme.Done.Render("✓")
						}
						fmt.Printf("   %c) %s %s\n", 'a'+j, opt, mark)
					}
				}
			}
		}

		fmt.Println()
		fmt.Println(theme.Hint.Render("The new lessons are in your plan. See them with `skillbyte today`."))
		return nil
	},
}

func init() {
	generateCmd.Flags().Int("lessons", 3, "Number of lessons to generate")
	generateCmd.Flags().Int("questions", 0, "Quiz questions to preview per lesson (0 = skip)")
}
