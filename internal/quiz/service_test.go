package quiz

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/skillbyte/internal/errs"
	"github.com/abhisek/skillbyte/internal/model"
	"github.com/abhisek/skillbyte/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := store.Open("file::memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewService(s.Attempts())
}

func TestGetForLesson(t *testing.T) {
	svc := newTestService(t)

	q, err := svc.GetForLesson(t.Context(), "js-variables")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if q == nil {
		t.Fatal("expected a quiz for js-variables")
	}
	if len(q.Questions) == 0 {
		t.Error("quiz has no questions")
	}

	// js-functions deliberately ships without a quiz: nil, no error.
	q, err = svc.GetForLesson(t.Context(), "js-functions")
	if err != nil {
		t.Fatalf("get quiz-less lesson: %v", err)
	}
	if q != nil {
		t.Fatalf("expected nil quiz, got %+v", q)
	}
}

func TestGetByIDUnknown(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetByID(t.Context(), "quiz-nope")
	var nf *errs.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
}

func TestSubmitAndResubmit(t *testing.T) {
	svc := newTestService(t)
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }
	ctx := t.Context()

	q, err := svc.GetForLesson(ctx, "js-variables")
	if err != nil || q == nil {
		t.Fatalf("get quiz: %v %v", q, err)
	}

	answers := make([]*int, len(q.Questions))
	attempt, err := svc.Submit(ctx, q.ID, answers, 0)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if attempt.Score != 0 {
		t.Errorf("score = %d, want 0", attempt.Score)
	}

	// Resubmission replaces the stored attempt outright.
	for i := range answers {
		a := q.Questions[i].CorrectAnswer
		answers[i] = &a
	}
	if _, err := svc.Submit(ctx, q.ID, answers, 100); err != nil {
		t.Fatalf("resubmit: %v", err)
	}

	got, err := svc.GetResult(ctx, q.ID)
	if err != nil {
		t.Fatalf("get result: %v", err)
	}
	if got == nil || got.Score != 100 {
		t.Fatalf("stored attempt = %+v, want score 100", got)
	}

	all, err := svc.ListAttempts(ctx)
	if err != nil {
		t.Fatalf("list attempts: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("attempts = %d, want 1", len(all))
	}
}

func TestSubmitValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := t.Context()

	var nf *errs.NotFoundError
	if _, err := svc.Submit(ctx, "quiz-nope", nil, 50); !errors.As(err, &nf) {
		t.Errorf("unknown quiz error = %v, want NotFoundError", err)
	}

	var ve *errs.ValidationError
	if _, err := svc.Submit(ctx, "quiz-js-variables", nil, 101); !errors.As(err, &ve) {
		t.Errorf("score 101 error = %v, want ValidationError", err)
	}
	if _, err := svc.Submit(ctx, "quiz-js-variables", nil, -1); !errors.As(err, &ve) {
		t.Errorf("score -1 error = %v, want ValidationError", err)
	}
}

func TestGetResultWithoutAttempt(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.GetResult(t.Context(), "quiz-js-variables")
	if err != nil {
		t.Fatalf("get result: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil result, got %+v", got)
	}
}

func TestScore(t *testing.T) {
	q := model.Quiz{
		ID:       "q",
		LessonID: "l",
		Questions: []model.Question{
			{Text: "a", Options: []string{"x", "y"}, CorrectAnswer: 0},
			{Text: "b", Options: []string{"x", "y"}, CorrectAnswer: 1},
			{Text: "c", Options: []string{"x", "y"}, CorrectAnswer: 1},
		},
	}

	zero, one := 0, 1

	tests := []struct {
		name    string
		answers []*int
		want    int
	}{
		{"all correct", []*int{&zero, &one, &one}, 100},
		{"two of three", []*int{&zero, &one, &zero}, 67},
		{"one of three", []*int{&zero, &zero, &zero}, 33},
		{"all wrong", []*int{&one, &zero, &zero}, 0},
		{"unanswered count as wrong", []*int{&zero, nil, nil}, 33},
		{"short answer sheet", []*int{&zero}, 33},
		{"nil sheet", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(q, tt.answers); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreEmptyQuiz(t *testing.T) {
	if got := Score(model.Quiz{}, nil); got != 0 {
		t.Errorf("Score(empty) = %d, want 0", got)
	}
}
