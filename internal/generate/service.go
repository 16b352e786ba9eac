// Package generate turns a topic name into lessons and lesson content
// into quiz questions via the configured LLM provider.
package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/skillbyte/internal/errs"
	"github.com/abhisek/skillbyte/internal/llm"
	"github.com/abhisek/skillbyte/internal/model"
)

// Service generates lesson and quiz content. Every transport or parse
// failure surfaces as a GenerationError so callers can distinguish
// "generation failed" from "no content exists".
type Service struct {
	provider llm.Provider
	cfg      Config
	now      func() time.Time
}

// NewService creates a generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg, now: time.Now}
}

type lessonOutput struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Duration   string   `json:"duration"`
	Difficulty string   `json:"difficulty"`
	KeyPoints  []string `json:"key_points"`
}

type lessonBatchOutput struct {
	Lessons []lessonOutput `json:"lessons"`
}

// GenerateLessons produces count lessons for the named topic. Each
// lesson gets a freshly minted id, IsCustom set, and a GeneratedAt
// timestamp; TopicID is left for the caller to assign once the custom
// topic record exists.
func (s *Service) GenerateLessons(ctx context.Context, topicName string, count int) ([]model.Lesson, error) {
	req := llm.Request{
		System: lessonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildLessonUserMessage(topicName, count)},
		},
		Schema:      LessonBatchSchema,
		Purpose:     "lesson-gen",
		MaxTokens:   s.cfg.LessonMaxTokens,
		Temperature: s.cfg.LessonTemperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, &errs.GenerationError{Err: fmt.Errorf("generate lessons for %q: %w", topicName, err)}
	}

	var out lessonBatchOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &errs.GenerationError{Err: fmt.Errorf("parse lesson batch: %w", err)}
	}
	if len(out.Lessons) == 0 {
		return nil, &errs.GenerationError{Err: fmt.Errorf("empty lesson batch for %q", topicName)}
	}

	generatedAt := s.now()
	lessons := make([]model.Lesson, 0, len(out.Lessons))
	for _, l := range out.Lessons {
		at := generatedAt
		lessons = append(lessons, model.Lesson{
			ID:          uuid.NewString(),
			Title:       l.Title,
			Content:     l.Content,
			Duration:    l.Duration,
			KeyPoints:   l.KeyPoints,
			IsCustom:    true,
			GeneratedAt: &at,
		})
	}
	return lessons, nil
}

type questionOutput struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type questionBatchOutput struct {
	Questions []questionOutput `json:"questions"`
}

// GenerateQuizQuestions produces count multiple-choice questions for
// the given lesson content.
func (s *Service) GenerateQuizQuestions(ctx context.Context, lessonContent string, count int) ([]model.Question, error) {
	req := llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizUserMessage(lessonContent, count)},
		},
		Schema:      QuizQuestionsSchema,
		Purpose:     "quiz-gen",
		MaxTokens:   s.cfg.QuizMaxTokens,
		Temperature: s.cfg.QuizTemperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, &errs.GenerationError{Err: fmt.Errorf("generate quiz questions: %w", err)}
	}

	var out questionBatchOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &errs.GenerationError{Err: fmt.Errorf("parse question batch: %w", err)}
	}

	questions := make([]model.Question, 0, len(out.Questions))
	for _, q := range out.Questions {
		if len(q.Options) < 2 || q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return nil, &errs.GenerationError{Err: fmt.Errorf("malformed question %q", q.Question)}
		}
		questions = append(questions, model.Question{
			Text:          q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}
	return questions, nil
}
