// Package quiz owns quiz definitions and the stored attempt per quiz.
package quiz

import (
	"context"
	"sync"
	"time"

	"github.com/abhisek/skillbyte/internal/errs"
	"github.com/abhisek/skillbyte/internal/model"
	"github.com/abhisek/skillbyte/internal/store"
)

// Service resolves quizzes and persists attempts. The store is a pure
// persistence boundary: scores arrive caller-computed (see Score).
type Service struct {
	mu       sync.Mutex
	attempts store.AttemptRepo
	builtin  []model.Quiz
	now      func() time.Time
}

// NewService creates a quiz service.
func NewService(attempts store.AttemptRepo) *Service {
	return &Service{
		attempts: attempts,
		builtin:  SeedQuizzes(),
		now:      time.Now,
	}
}

// GetForLesson returns the quiz attached to a lesson, or nil when the
// lesson has none. A missing quiz is a valid state, not an error —
// callers must branch on the nil result.
func (s *Service) GetForLesson(ctx context.Context, lessonID string) (*model.Quiz, error) {
	for _, q := range s.builtin {
		if q.LessonID == lessonID {
			quiz := q
			return &quiz, nil
		}
	}
	return nil, nil
}

// GetByID returns a quiz by its own identifier.
func (s *Service) GetByID(ctx context.Context, quizID string) (model.Quiz, error) {
	for _, q := range s.builtin {
		if q.ID == quizID {
			return q, nil
		}
	}
	return model.Quiz{}, errs.NotFound("quiz", quizID)
}

// Submit stores an attempt, replacing any prior attempt for the same
// quiz, and returns the stored record. The answer sheet is persisted as
// given; score is not recomputed here.
func (s *Service) Submit(ctx context.Context, quizID string, answers []*int, score int) (model.QuizAttempt, error) {
	if _, err := s.GetByID(ctx, quizID); err != nil {
		return model.QuizAttempt{}, err
	}
	if score < 0 || score > 100 {
		return model.QuizAttempt{}, errs.Validationf("score %d out of range 0-100", score)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	attempt := model.QuizAttempt{
		QuizID:      quizID,
		Answers:     answers,
		Score:       score,
		CompletedAt: s.now(),
	}
	if err := s.attempts.Upsert(ctx, attempt); err != nil {
		return model.QuizAttempt{}, err
	}
	return attempt, nil
}

// GetResult returns the stored attempt for a quiz, or nil if the quiz
// was never submitted.
func (s *Service) GetResult(ctx context.Context, quizID string) (*model.QuizAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts.Get(ctx, quizID)
}

// ListAttempts returns every stored attempt.
func (s *Service) ListAttempts(ctx context.Context) ([]model.QuizAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts.List(ctx)
}
