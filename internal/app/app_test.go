package app

import (
	"testing"

	"github.com/abhisek/skillbyte/internal/lesson"
	"github.com/abhisek/skillbyte/internal/quiz"
)

func openTestApp(t *testing.T) *App {
	t.Helper()
	a, err := Open("file::memory:")
	if err != nil {
		t.Fatalf("open app: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

// TestDailyFlow walks the primary loop end to end: pick a topic, pull
// today's lessons, answer a quiz, and watch progress move.
func TestDailyFlow(t *testing.T) {
	a := openTestApp(t)
	ctx := t.Context()

	if err := a.Topics.Select(ctx, "js-foundations"); err != nil {
		t.Fatalf("select topic: %v", err)
	}

	selected, err := a.Topics.SelectedIDs(ctx)
	if err != nil {
		t.Fatalf("selected ids: %v", err)
	}
	todays, err := a.Lessons.ListTodays(ctx, selected)
	if err != nil {
		t.Fatalf("todays: %v", err)
	}
	if len(todays) != lesson.DailyLessonCap {
		t.Fatalf("todays = %d lessons, want %d", len(todays), lesson.DailyLessonCap)
	}

	first := todays[0]
	q, err := a.Quizzes.GetForLesson(ctx, first.ID)
	if err != nil {
		t.Fatalf("get quiz: %v", err)
	}
	if q == nil {
		t.Fatalf("lesson %s should have a quiz", first.ID)
	}

	// Answer everything correctly.
	answers := make([]*int, len(q.Questions))
	for i := range q.Questions {
		c := q.Questions[i].CorrectAnswer
		answers[i] = &c
	}
	score := quiz.Score(*q, answers)
	if score != 100 {
		t.Fatalf("score = %d, want 100", score)
	}

	if _, err := a.Quizzes.Submit(ctx, q.ID, answers, score); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := a.Lessons.MarkComplete(ctx, first.ID); err != nil {
		t.Fatalf("mark complete: %v", err)
	}
	p, err := a.Progress.RecordLessonCompletion(ctx, first.ID, score)
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	if p.Streak != 1 || p.TotalLessonsCompleted != 1 || p.OverallMastery != 100 {
		t.Errorf("progress = %+v", p)
	}

	// The completion shows up in the derived topic stats.
	stats, err := a.Topics.ListSelected(ctx)
	if err != nil {
		t.Fatalf("list selected: %v", err)
	}
	if len(stats) != 1 || stats[0].CompletedLessons != 1 || stats[0].MasteryPercentage != 100 {
		t.Errorf("topic stats = %+v", stats)
	}

	// And the lesson reads back as completed today.
	todays, err = a.Lessons.ListTodays(ctx, selected)
	if err != nil {
		t.Fatalf("todays: %v", err)
	}
	if todays[0].CompletedAt == nil {
		t.Error("first lesson should read back completed")
	}
}

func TestResetAllRestoresDefaults(t *testing.T) {
	a := openTestApp(t)
	ctx := t.Context()

	if err := a.Topics.Select(ctx, "js-foundations"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := a.Lessons.MarkComplete(ctx, "js-variables"); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if _, err := a.Progress.RecordLessonCompletion(ctx, "js-variables", 80); err != nil {
		t.Fatalf("record: %v", err)
	}

	if err := a.ResetAll(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	ids, err := a.Topics.SelectedIDs(ctx)
	if err != nil {
		t.Fatalf("selected ids: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("selections = %v, want none", ids)
	}

	p, err := a.Progress.GetProgress(ctx)
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}
	if p.Streak != 0 || p.TotalLessonsCompleted != 0 || p.OverallMastery != 0 {
		t.Errorf("progress = %+v, want defaults", p)
	}

	l, err := a.Lessons.GetByID(ctx, "js-variables")
	if err != nil {
		t.Fatalf("get lesson: %v", err)
	}
	if l.CompletedAt != nil {
		t.Error("completion survived the reset")
	}
}
