package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/abhisek/skillbyte/internal/model"
)

// LessonRepo persists user-generated lessons and the completed-lesson set.
type LessonRepo interface {
	// CustomLessons returns all generated lessons in insertion order.
	CustomLessons(ctx context.Context) ([]model.Lesson, error)

	// AddCustomBatch appends generated lessons in one transaction.
	AddCustomBatch(ctx context.Context, lessons []model.Lesson) error

	// CompletedAt returns completion timestamps keyed by lesson id.
	CompletedAt(ctx context.Context) (map[string]time.Time, error)

	// MarkComplete records a lesson completion at the given time.
	// Marking an already-completed lesson is a no-op and keeps the
	// original timestamp.
	MarkComplete(ctx context.Context, lessonID string, at time.Time) error
}

type lessonRepo struct {
	db *sqlx.DB
}

type customLessonRow struct {
	ID          string `db:"id"`
	TopicID     string `db:"topic_id"`
	Title       string `db:"title"`
	Content     string `db:"content"`
	Image       string `db:"image"`
	Duration    string `db:"duration"`
	KeyPoints   string `db:"key_points"`
	GeneratedAt string `db:"generated_at"`
}

func (r *lessonRepo) CustomLessons(ctx context.Context) ([]model.Lesson, error) {
	rows := []customLessonRow{}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, topic_id, title, content, image, duration, key_points, generated_at
		 FROM custom_lessons ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("select custom lessons: %w", err)
	}

	lessons := make([]model.Lesson, 0, len(rows))
	for _, row := range rows {
		generatedAt, err := time.Parse(time.RFC3339, row.GeneratedAt)
		if err != nil {
			return nil, fmt.Errorf("parse generated_at for lesson %s: %w", row.ID, err)
		}
		var keyPoints []string
		if err := json.Unmarshal([]byte(row.KeyPoints), &keyPoints); err != nil {
			return nil, fmt.Errorf("parse key_points for lesson %s: %w", row.ID, err)
		}
		lessons = append(lessons, model.Lesson{
			ID:          row.ID,
			TopicID:     row.TopicID,
			Title:       row.Title,
			Content:     row.Content,
			Image:       row.Image,
			Duration:    row.Duration,
			KeyPoints:   keyPoints,
			IsCustom:    true,
			GeneratedAt: &generatedAt,
		})
	}
	return lessons, nil
}

func (r *lessonRepo) AddCustomBatch(ctx context.Context, lessons []model.Lesson) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, l := range lessons {
		keyPoints, err := json.Marshal(l.KeyPoints)
		if err != nil {
			return fmt.Errorf("marshal key points for lesson %s: %w", l.ID, err)
		}
		generatedAt := time.Now().UTC()
		if l.GeneratedAt != nil {
			generatedAt = l.GeneratedAt.UTC()
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO custom_lessons (id, topic_id, title, content, image, duration, key_points, generated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			l.ID, l.TopicID, l.Title, l.Content, l.Image, l.Duration,
			string(keyPoints), generatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("insert custom lesson %s: %w", l.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

type completedRow struct {
	LessonID    string `db:"lesson_id"`
	CompletedAt string `db:"completed_at"`
}

func (r *lessonRepo) CompletedAt(ctx context.Context) (map[string]time.Time, error) {
	rows := []completedRow{}
	err := r.db.SelectContext(ctx, &rows,
		"SELECT lesson_id, completed_at FROM completed_lessons")
	if err != nil {
		return nil, fmt.Errorf("select completed lessons: %w", err)
	}

	completed := make(map[string]time.Time, len(rows))
	for _, row := range rows {
		at, err := time.Parse(time.RFC3339, row.CompletedAt)
		if err != nil {
			return nil, fmt.Errorf("parse completed_at for lesson %s: %w", row.LessonID, err)
		}
		completed[row.LessonID] = at
	}
	return completed, nil
}

func (r *lessonRepo) MarkComplete(ctx context.Context, lessonID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO completed_lessons (lesson_id, completed_at) VALUES (?, ?)",
		lessonID, at.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("mark lesson %s complete: %w", lessonID, err)
	}
	return nil
}
