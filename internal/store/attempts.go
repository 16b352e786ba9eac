package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/abhisek/skillbyte/internal/model"
)

// AttemptRepo persists quiz attempts. At most one attempt is stored per
// quiz; resubmission replaces the prior record.
type AttemptRepo interface {
	// Upsert stores the attempt, replacing any prior attempt for the
	// same quiz id.
	Upsert(ctx context.Context, attempt model.QuizAttempt) error

	// Get returns the stored attempt for a quiz, or nil if none exists.
	Get(ctx context.Context, quizID string) (*model.QuizAttempt, error)

	// List returns all stored attempts.
	List(ctx context.Context) ([]model.QuizAttempt, error)
}

type attemptRepo struct {
	db *sqlx.DB
}

type attemptRow struct {
	QuizID      string `db:"quiz_id"`
	Answers     string `db:"answers"`
	Score       int    `db:"score"`
	CompletedAt string `db:"completed_at"`
}

func (r *attemptRepo) Upsert(ctx context.Context, attempt model.QuizAttempt) error {
	answers, err := json.Marshal(attempt.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO quiz_attempts (quiz_id, answers, score, completed_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (quiz_id) DO UPDATE SET
		   answers = excluded.answers,
		   score = excluded.score,
		   completed_at = excluded.completed_at`,
		attempt.QuizID, string(answers), attempt.Score,
		attempt.CompletedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upsert attempt for quiz %s: %w", attempt.QuizID, err)
	}
	return nil
}

func (r *attemptRepo) Get(ctx context.Context, quizID string) (*model.QuizAttempt, error) {
	var row attemptRow
	err := r.db.GetContext(ctx, &row,
		"SELECT quiz_id, answers, score, completed_at FROM quiz_attempts WHERE quiz_id = ?",
		quizID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get attempt for quiz %s: %w", quizID, err)
	}
	return rowToAttempt(row)
}

func (r *attemptRepo) List(ctx context.Context) ([]model.QuizAttempt, error) {
	rows := []attemptRow{}
	err := r.db.SelectContext(ctx, &rows,
		"SELECT quiz_id, answers, score, completed_at FROM quiz_attempts ORDER BY completed_at")
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}

	attempts := make([]model.QuizAttempt, 0, len(rows))
	for _, row := range rows {
		a, err := rowToAttempt(row)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, *a)
	}
	return attempts, nil
}

func rowToAttempt(row attemptRow) (*model.QuizAttempt, error) {
	var answers []*int
	if err := json.Unmarshal([]byte(row.Answers), &answers); err != nil {
		return nil, fmt.Errorf("parse answers for quiz %s: %w", row.QuizID, err)
	}
	completedAt, err := time.Parse(time.RFC3339, row.CompletedAt)
	if err != nil {
		return nil, fmt.Errorf("parse completed_at for quiz %s: %w", row.QuizID, err)
	}
	return &model.QuizAttempt{
		QuizID:      row.QuizID,
		Answers:     answers,
		Score:       row.Score,
		CompletedAt: completedAt,
	}, nil
}
