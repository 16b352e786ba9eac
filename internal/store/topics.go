package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/abhisek/skillbyte/internal/model"
)

// TopicRepo persists the topic-selection set and user-created topics.
type TopicRepo interface {
	// SelectedIDs returns the selected topic ids in insertion order.
	SelectedIDs(ctx context.Context) ([]string, error)

	// Select adds a topic id to the selection set. Adding an id that is
	// already present is a no-op.
	Select(ctx context.Context, topicID string) error

	// Unselect removes a topic id from the selection set. Removing an
	// absent id is a no-op.
	Unselect(ctx context.Context, topicID string) error

	// CustomTopics returns all user-created topics in insertion order.
	CustomTopics(ctx context.Context) ([]model.Topic, error)

	// AddCustom appends a user-created topic.
	AddCustom(ctx context.Context, t model.Topic) error
}

type topicRepo struct {
	db *sqlx.DB
}

// selected_topics has no explicit ordering column; rowid preserves
// insertion order, which is the contract ListSelected relies on.
func (r *topicRepo) SelectedIDs(ctx context.Context) ([]string, error) {
	ids := []string{}
	err := r.db.SelectContext(ctx, &ids,
		"SELECT topic_id FROM selected_topics ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("select topic ids: %w", err)
	}
	return ids, nil
}

func (r *topicRepo) Select(ctx context.Context, topicID string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO selected_topics (topic_id) VALUES (?)", topicID)
	if err != nil {
		return fmt.Errorf("select topic %s: %w", topicID, err)
	}
	return nil
}

func (r *topicRepo) Unselect(ctx context.Context, topicID string) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM selected_topics WHERE topic_id = ?", topicID)
	if err != nil {
		return fmt.Errorf("unselect topic %s: %w", topicID, err)
	}
	return nil
}

type customTopicRow struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Icon         string `db:"icon"`
	Difficulty   string `db:"difficulty"`
	TotalLessons int    `db:"total_lessons"`
	CreatedAt    string `db:"created_at"`
}

func (r *topicRepo) CustomTopics(ctx context.Context) ([]model.Topic, error) {
	rows := []customTopicRow{}
	err := r.db.SelectContext(ctx, &rows,
		"SELECT id, name, icon, difficulty, total_lessons, created_at FROM custom_topics ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("select custom topics: %w", err)
	}

	topics := make([]model.Topic, 0, len(rows))
	for _, row := range rows {
		createdAt, err := time.Parse(time.RFC3339, row.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for topic %s: %w", row.ID, err)
		}
		topics = append(topics, model.Topic{
			ID:           row.ID,
			Name:         row.Name,
			Icon:         row.Icon,
			Difficulty:   model.Difficulty(row.Difficulty),
			TotalLessons: row.TotalLessons,
			IsCustom:     true,
			CreatedAt:    createdAt,
		})
	}
	return topics, nil
}

func (r *topicRepo) AddCustom(ctx context.Context, t model.Topic) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO custom_topics (id, name, icon, difficulty, total_lessons, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Icon, string(t.Difficulty), t.TotalLessons,
		t.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert custom topic %s: %w", t.ID, err)
	}
	return nil
}
