// Package lesson owns the lesson catalog and the completed-lesson set.
package lesson

import (
	"context"
	"sync"
	"time"

	"github.com/abhisek/skillbyte/internal/errs"
	"github.com/abhisek/skillbyte/internal/model"
	"github.com/abhisek/skillbyte/internal/store"
)

// DailyLessonCap is the fixed number of lessons surfaced per day —
// three in total across all selected topics, not three per topic.
const DailyLessonCap = 3

// Service implements the lesson store over built-in seed lessons and
// the persisted custom-lesson and completion sets.
//
// A lesson's completed state is a join against the completion set,
// filled into Lesson.CompletedAt on every read. Completion is one-way;
// there is no uncomplete operation.
type Service struct {
	mu      sync.Mutex
	repo    store.LessonRepo
	builtin []model.Lesson
	now     func() time.Time
}

// NewService creates a lesson service.
func NewService(repo store.LessonRepo) *Service {
	return &Service{
		repo:    repo,
		builtin: SeedLessons(),
		now:     time.Now,
	}
}

// ListAll returns built-in lessons followed by custom lessons, each
// annotated with its completion state.
func (s *Service) ListAll(ctx context.Context) ([]model.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listAllLocked(ctx)
}

func (s *Service) listAllLocked(ctx context.Context) ([]model.Lesson, error) {
	custom, err := s.repo.CustomLessons(ctx)
	if err != nil {
		return nil, err
	}

	all := make([]model.Lesson, 0, len(s.builtin)+len(custom))
	all = append(all, s.builtin...)
	all = append(all, custom...)

	completed, err := s.repo.CompletedAt(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if at, ok := completed[all[i].ID]; ok {
			t := at
			all[i].CompletedAt = &t
		} else {
			all[i].CompletedAt = nil
		}
	}
	return all, nil
}

// GetByID returns a single annotated lesson.
func (s *Service) GetByID(ctx context.Context, lessonID string) (model.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.listAllLocked(ctx)
	if err != nil {
		return model.Lesson{}, err
	}
	for _, l := range all {
		if l.ID == lessonID {
			return l, nil
		}
	}
	return model.Lesson{}, errs.NotFound("lesson", lessonID)
}

// ListByTopic returns the annotated lessons belonging to one topic, in
// catalog order.
func (s *Service) ListByTopic(ctx context.Context, topicID string) ([]model.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.listAllLocked(ctx)
	if err != nil {
		return nil, err
	}
	out := []model.Lesson{}
	for _, l := range all {
		if l.TopicID == topicID {
			out = append(out, l)
		}
	}
	return out, nil
}

// ListTodays returns today's lesson set: lessons whose topic is in
// selectedTopicIDs, in catalog order, capped at DailyLessonCap total.
// An empty selection yields an empty set.
func (s *Service) ListTodays(ctx context.Context, selectedTopicIDs []string) ([]model.Lesson, error) {
	if len(selectedTopicIDs) == 0 {
		return []model.Lesson{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	selected := make(map[string]bool, len(selectedTopicIDs))
	for _, id := range selectedTopicIDs {
		selected[id] = true
	}

	all, err := s.listAllLocked(ctx)
	if err != nil {
		return nil, err
	}

	todays := []model.Lesson{}
	for _, l := range all {
		if !selected[l.TopicID] {
			continue
		}
		todays = append(todays, l)
		if len(todays) == DailyLessonCap {
			break
		}
	}
	return todays, nil
}

// MarkComplete adds a lesson to the completed set and persists before
// returning. Completing an already-completed lesson is a no-op.
func (s *Service) MarkComplete(ctx context.Context, lessonID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	all, err := s.listAllLocked(ctx)
	if err != nil {
		return err
	}
	for _, l := range all {
		if l.ID == lessonID {
			found = true
			break
		}
	}
	if !found {
		return errs.NotFound("lesson", lessonID)
	}

	return s.repo.MarkComplete(ctx, lessonID, s.now())
}

// AddCustomBatch appends a batch of generated lessons. The caller mints
// the identifiers; collisions with any existing lesson fail the whole
// batch with a ValidationError. Content is not deduplicated.
func (s *Service) AddCustomBatch(ctx context.Context, lessons []model.Lesson) error {
	if len(lessons) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.listAllLocked(ctx)
	if err != nil {
		return err
	}
	existing := make(map[string]bool, len(all))
	for _, l := range all {
		existing[l.ID] = true
	}

	seen := make(map[string]bool, len(lessons))
	for _, l := range lessons {
		if l.ID == "" {
			return errs.Validationf("lesson id is required")
		}
		if existing[l.ID] || seen[l.ID] {
			return errs.Validationf("lesson id %q already exists", l.ID)
		}
		seen[l.ID] = true
	}

	return s.repo.AddCustomBatch(ctx, lessons)
}
