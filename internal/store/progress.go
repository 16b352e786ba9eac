package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/abhisek/skillbyte/internal/model"
)

// ErrVersionConflict is returned when a progress write raced with
// another writer. The caller should reload and reapply.
var ErrVersionConflict = errors.New("user progress version conflict")

// ProgressRepo persists the singleton user progress record.
type ProgressRepo interface {
	// Load returns the progress record, inserting the initial record on
	// first use.
	Load(ctx context.Context) (model.UserProgress, error)

	// Save writes the record. The write asserts that the stored version
	// still matches p.Version and bumps it; a mismatch returns
	// ErrVersionConflict instead of silently losing the other update.
	Save(ctx context.Context, p model.UserProgress) (model.UserProgress, error)

	// Reset restores the initial record unconditionally.
	Reset(ctx context.Context) (model.UserProgress, error)
}

type progressRepo struct {
	db *sqlx.DB
}

type progressRow struct {
	Streak                int     `db:"streak"`
	TotalLessonsCompleted int     `db:"total_lessons_completed"`
	OverallMastery        float64 `db:"overall_mastery"`
	DailyGoal             int     `db:"daily_goal"`
	LastActiveDate        string  `db:"last_active_date"`
	CompletedToday        string  `db:"completed_today"`
	Version               int64   `db:"version"`
}

func (r *progressRepo) Load(ctx context.Context) (model.UserProgress, error) {
	var row progressRow
	err := r.db.GetContext(ctx, &row,
		`SELECT streak, total_lessons_completed, overall_mastery, daily_goal,
		        last_active_date, completed_today, version
		 FROM user_progress WHERE id = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return r.insertDefault(ctx)
	}
	if err != nil {
		return model.UserProgress{}, fmt.Errorf("load progress: %w", err)
	}
	return rowToProgress(row)
}

func (r *progressRepo) insertDefault(ctx context.Context) (model.UserProgress, error) {
	p := model.DefaultProgress()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_progress (id, streak, total_lessons_completed, overall_mastery,
		                            daily_goal, last_active_date, completed_today, version)
		 VALUES (1, ?, ?, ?, ?, ?, '[]', 0)`,
		p.Streak, p.TotalLessonsCompleted, p.OverallMastery, p.DailyGoal, p.LastActiveDate)
	if err != nil {
		return model.UserProgress{}, fmt.Errorf("insert initial progress: %w", err)
	}
	return p, nil
}

func (r *progressRepo) Save(ctx context.Context, p model.UserProgress) (model.UserProgress, error) {
	completedToday, err := json.Marshal(p.CompletedLessonsToday)
	if err != nil {
		return model.UserProgress{}, fmt.Errorf("marshal completed today: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE user_progress SET
		   streak = ?, total_lessons_completed = ?, overall_mastery = ?,
		   daily_goal = ?, last_active_date = ?, completed_today = ?,
		   version = version + 1
		 WHERE id = 1 AND version = ?`,
		p.Streak, p.TotalLessonsCompleted, p.OverallMastery,
		p.DailyGoal, p.LastActiveDate, string(completedToday),
		p.Version)
	if err != nil {
		return model.UserProgress{}, fmt.Errorf("save progress: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return model.UserProgress{}, fmt.Errorf("save progress: %w", err)
	}
	if n == 0 {
		return model.UserProgress{}, ErrVersionConflict
	}

	p.Version++
	return p, nil
}

func (r *progressRepo) Reset(ctx context.Context) (model.UserProgress, error) {
	p := model.DefaultProgress()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_progress (id, streak, total_lessons_completed, overall_mastery,
		                            daily_goal, last_active_date, completed_today, version)
		 VALUES (1, ?, ?, ?, ?, ?, '[]', 0)
		 ON CONFLICT (id) DO UPDATE SET
		   streak = excluded.streak,
		   total_lessons_completed = excluded.total_lessons_completed,
		   overall_mastery = excluded.overall_mastery,
		   daily_goal = excluded.daily_goal,
		   last_active_date = excluded.last_active_date,
		   completed_today = excluded.completed_today,
		   version = version + 1`,
		p.Streak, p.TotalLessonsCompleted, p.OverallMastery, p.DailyGoal, p.LastActiveDate)
	if err != nil {
		return model.UserProgress{}, fmt.Errorf("reset progress: %w", err)
	}
	return r.Load(ctx)
}

func rowToProgress(row progressRow) (model.UserProgress, error) {
	var completedToday []string
	if err := json.Unmarshal([]byte(row.CompletedToday), &completedToday); err != nil {
		return model.UserProgress{}, fmt.Errorf("parse completed today: %w", err)
	}
	return model.UserProgress{
		Streak:                row.Streak,
		TotalLessonsCompleted: row.TotalLessonsCompleted,
		OverallMastery:        row.OverallMastery,
		DailyGoal:             row.DailyGoal,
		LastActiveDate:        row.LastActiveDate,
		CompletedLessonsToday: completedToday,
		Version:               row.Version,
	}, nil
}
