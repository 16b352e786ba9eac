package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/abhisek/skillbyte/internal/model"
)

// SettingsRepo persists the user-configured generation settings.
type SettingsRepo interface {
	// Load returns the stored settings, or the zero value if none were
	// ever saved.
	Load(ctx context.Context) (model.Settings, error)

	// Save writes the settings, replacing any prior values.
	Save(ctx context.Context, s model.Settings) error
}

type settingsRepo struct {
	db *sqlx.DB
}

type settingsRow struct {
	APIKey        string `db:"api_key"`
	SelectedModel string `db:"selected_model"`
}

func (r *settingsRepo) Load(ctx context.Context) (model.Settings, error) {
	var row settingsRow
	err := r.db.GetContext(ctx, &row,
		"SELECT api_key, selected_model FROM settings WHERE id = 1")
	if errors.Is(err, sql.ErrNoRows) {
		return model.Settings{}, nil
	}
	if err != nil {
		return model.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return model.Settings{APIKey: row.APIKey, SelectedModel: row.SelectedModel}, nil
}

func (r *settingsRepo) Save(ctx context.Context, s model.Settings) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (id, api_key, selected_model) VALUES (1, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   api_key = excluded.api_key,
		   selected_model = excluded.selected_model`,
		s.APIKey, s.SelectedModel)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
