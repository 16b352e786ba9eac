// Package progress tracks the streak, mastery, and daily-completion
// state of the single local learner.
package progress

import (
	"context"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/abhisek/skillbyte/internal/model"
	"github.com/abhisek/skillbyte/internal/store"
)

// dateLayout is the calendar-date form LastActiveDate is stored in.
const dateLayout = "2006-01-02"

// Tracker owns the singleton UserProgress record. All temporal logic is
// lazy: streak decay is evaluated when progress is read or written,
// never by a background timer.
type Tracker struct {
	mu   sync.Mutex
	repo store.ProgressRepo
	now  func() time.Time
}

// NewTracker creates a progress tracker.
func NewTracker(repo store.ProgressRepo) *Tracker {
	return &Tracker{repo: repo, now: time.Now}
}

// GetProgress runs the streak-decay check and returns a snapshot. The
// decayed state is persisted before returning so repeated reads agree.
func (t *Tracker) GetProgress(ctx context.Context) (model.UserProgress, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, err := t.repo.Load(ctx)
	if err != nil {
		return model.UserProgress{}, err
	}

	if t.decay(&p) {
		p, err = t.repo.Save(ctx, p)
		if err != nil {
			return model.UserProgress{}, err
		}
	}
	return p, nil
}

// RecordLessonCompletion applies a qualifying lesson completion:
//
//  1. First completion of this lesson today adds it to the daily set
//     and bumps the lifetime counter.
//  2. The streak increments once per calendar day, on the first
//     qualifying activity.
//  3. Mastery is recomputed as a running mean of quiz scores, weighting
//     every completed lesson equally, clamped to [0, 100].
//
// The decay check runs first, so a learner returning after a missed day
// starts a fresh streak at 1 regardless of whether GetProgress happened
// to be called in between.
func (t *Tracker) RecordLessonCompletion(ctx context.Context, lessonID string, quizScore int) (model.UserProgress, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, err := t.repo.Load(ctx)
	if err != nil {
		return model.UserProgress{}, err
	}

	t.decay(&p)

	today := t.today()

	if !slices.Contains(p.CompletedLessonsToday, lessonID) {
		p.CompletedLessonsToday = append(p.CompletedLessonsToday, lessonID)
		p.TotalLessonsCompleted++
	}

	if p.LastActiveDate != today {
		p.Streak++
		p.LastActiveDate = today
	}

	if p.TotalLessonsCompleted > 0 {
		n := float64(p.TotalLessonsCompleted)
		mastery := (p.OverallMastery*(n-1) + float64(quizScore)) / n
		p.OverallMastery = math.Min(100, math.Max(0, mastery))
	}

	return t.repo.Save(ctx, p)
}

// InitializeLearningPlan clears the daily completion set when the
// learner (re)commits to a topic selection. Streak, lifetime counter,
// and mastery are untouched.
func (t *Tracker) InitializeLearningPlan(ctx context.Context, selectedTopicIDs []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, err := t.repo.Load(ctx)
	if err != nil {
		return err
	}

	p.CompletedLessonsToday = nil
	_, err = t.repo.Save(ctx, p)
	return err
}

// ResetProgress restores the initial progress record.
func (t *Tracker) ResetProgress(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, err := t.repo.Reset(ctx)
	return err
}

// SetDailyGoal updates the lessons-per-day target.
func (t *Tracker) SetDailyGoal(ctx context.Context, goal int) (model.UserProgress, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, err := t.repo.Load(ctx)
	if err != nil {
		return model.UserProgress{}, err
	}
	if goal < 1 {
		goal = 1
	}
	p.DailyGoal = goal
	return t.repo.Save(ctx, p)
}

// decay applies the streak-decay state machine in place and reports
// whether the record changed:
//
//   - last active today: current, no change
//   - last active yesterday: grace period, streak preserved but the
//     daily completion set belongs to yesterday and clears
//   - last active earlier: stale, streak resets and daily set clears
//   - never active: no change
func (t *Tracker) decay(p *model.UserProgress) bool {
	if p.LastActiveDate == "" {
		return false
	}

	now := t.now()
	today := now.Format(dateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)

	switch p.LastActiveDate {
	case today:
		return false
	case yesterday:
		changed := len(p.CompletedLessonsToday) != 0
		p.CompletedLessonsToday = nil
		return changed
	}

	changed := p.Streak != 0 || len(p.CompletedLessonsToday) != 0
	p.Streak = 0
	p.CompletedLessonsToday = nil
	return changed
}

func (t *Tracker) today() string {
	return t.now().Format(dateLayout)
}
