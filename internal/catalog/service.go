// Package catalog owns the topic list and the user's topic selection.
package catalog

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/abhisek/skillbyte/internal/errs"
	"github.com/abhisek/skillbyte/internal/model"
	"github.com/abhisek/skillbyte/internal/store"
)

// LessonSource is the slice of the lesson store the catalog reads to
// derive per-topic stats. Cross-store effects go through this interface,
// never through the lesson store's persisted state.
type LessonSource interface {
	ListByTopic(ctx context.Context, topicID string) ([]model.Lesson, error)
}

// QuizSource resolves quizzes and stored attempts for mastery derivation.
type QuizSource interface {
	GetForLesson(ctx context.Context, lessonID string) (*model.Quiz, error)
	GetResult(ctx context.Context, quizID string) (*model.QuizAttempt, error)
}

// SelectedTopic is a topic annotated with derived display stats.
type SelectedTopic struct {
	model.Topic

	// CompletedLessons counts the topic's lessons in the completed set.
	CompletedLessons int

	// MasteryPercentage is the mean stored attempt score across the
	// topic's quizzes, 0 when no attempts exist.
	MasteryPercentage int
}

// Service implements the topic catalog over built-in seed topics and
// the persisted custom-topic and selection sets.
type Service struct {
	mu      sync.Mutex
	repo    store.TopicRepo
	lessons LessonSource
	quizzes QuizSource
	builtin []model.Topic
}

// NewService creates a catalog service.
func NewService(repo store.TopicRepo, lessons LessonSource, quizzes QuizSource) *Service {
	return &Service{
		repo:    repo,
		lessons: lessons,
		quizzes: quizzes,
		builtin: SeedTopics(),
	}
}

// ListAll returns built-in topics followed by custom topics, in stable
// insertion order. TotalLessons is recomputed from the lesson catalog.
func (s *Service) ListAll(ctx context.Context) ([]model.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listAllLocked(ctx)
}

func (s *Service) listAllLocked(ctx context.Context) ([]model.Topic, error) {
	custom, err := s.repo.CustomTopics(ctx)
	if err != nil {
		return nil, err
	}

	all := make([]model.Topic, 0, len(s.builtin)+len(custom))
	all = append(all, s.builtin...)
	all = append(all, custom...)

	for i := range all {
		lessons, err := s.lessons.ListByTopic(ctx, all[i].ID)
		if err != nil {
			return nil, err
		}
		all[i].TotalLessons = len(lessons)
	}
	return all, nil
}

// GetByID returns a single topic.
func (s *Service) GetByID(ctx context.Context, topicID string) (model.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.listAllLocked(ctx)
	if err != nil {
		return model.Topic{}, err
	}
	for _, t := range all {
		if t.ID == topicID {
			return t, nil
		}
	}
	return model.Topic{}, errs.NotFound("topic", topicID)
}

// SelectedIDs returns the raw selection set in insertion order.
func (s *Service) SelectedIDs(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.SelectedIDs(ctx)
}

// ListSelected returns the selected topics annotated with derived
// completion and mastery stats.
func (s *Service) ListSelected(ctx context.Context) ([]SelectedTopic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.repo.SelectedIDs(ctx)
	if err != nil {
		return nil, err
	}
	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	all, err := s.listAllLocked(ctx)
	if err != nil {
		return nil, err
	}

	out := []SelectedTopic{}
	for _, t := range all {
		if !selected[t.ID] {
			continue
		}
		st := SelectedTopic{Topic: t}
		if err := s.annotate(ctx, &st); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

// annotate derives CompletedLessons and MasteryPercentage from real
// completion and attempt data.
func (s *Service) annotate(ctx context.Context, st *SelectedTopic) error {
	lessons, err := s.lessons.ListByTopic(ctx, st.ID)
	if err != nil {
		return err
	}

	scoreSum, scoreCount := 0, 0
	for _, l := range lessons {
		if l.CompletedAt != nil {
			st.CompletedLessons++
		}

		quiz, err := s.quizzes.GetForLesson(ctx, l.ID)
		if err != nil {
			return err
		}
		if quiz == nil {
			continue
		}
		attempt, err := s.quizzes.GetResult(ctx, quiz.ID)
		if err != nil {
			return err
		}
		if attempt != nil {
			scoreSum += attempt.Score
			scoreCount++
		}
	}

	if scoreCount > 0 {
		st.MasteryPercentage = int(math.Round(float64(scoreSum) / float64(scoreCount)))
	}
	return nil
}

// Select adds a topic to the selection set. Selecting an already
// selected topic is a no-op. Unknown topic ids are rejected.
func (s *Service) Select(ctx context.Context, topicID string) error {
	if _, err := s.GetByID(ctx, topicID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Select(ctx, topicID)
}

// Unselect removes a topic from the selection set. Removing an absent
// id is a no-op.
func (s *Service) Unselect(ctx context.Context, topicID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Unselect(ctx, topicID)
}

// AddCustom appends a user-created topic and persists it before
// returning. Identifier collisions fail with a ValidationError.
func (s *Service) AddCustom(ctx context.Context, t model.Topic) (model.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		return model.Topic{}, errs.Validationf("topic id is required")
	}
	if t.Name == "" {
		return model.Topic{}, errs.Validationf("topic name is required")
	}

	all, err := s.listAllLocked(ctx)
	if err != nil {
		return model.Topic{}, err
	}
	for _, existing := range all {
		if existing.ID == t.ID {
			return model.Topic{}, errs.Validationf("topic id %q already exists", t.ID)
		}
	}

	t.IsCustom = true
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	if t.Difficulty == "" {
		t.Difficulty = model.DifficultyBeginner
	}

	if err := s.repo.AddCustom(ctx, t); err != nil {
		return model.Topic{}, err
	}
	return t, nil
}
