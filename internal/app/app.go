// Package app wires the stores into one explicitly constructed context
// object with an Open/Close lifecycle. Nothing here is module-level
// state; commands build an App, use it, and close it.
package app

import (
	"context"
	"fmt"

	"github.com/abhisek/skillbyte/internal/catalog"
	"github.com/abhisek/skillbyte/internal/generate"
	"github.com/abhisek/skillbyte/internal/lesson"
	"github.com/abhisek/skillbyte/internal/llm"
	"github.com/abhisek/skillbyte/internal/progress"
	"github.com/abhisek/skillbyte/internal/quiz"
	"github.com/abhisek/skillbyte/internal/store"
)

// App holds the wired stores and services for one session.
type App struct {
	Store    *store.Store
	Topics   *catalog.Service
	Lessons  *lesson.Service
	Quizzes  *quiz.Service
	Progress *progress.Tracker
}

// Open connects the database and wires the services.
func Open(dbPath string) (*App, error) {
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	lessons := lesson.NewService(s.Lessons())
	quizzes := quiz.NewService(s.Attempts())
	topics := catalog.NewService(s.Topics(), lessons, quizzes)
	tracker := progress.NewTracker(s.Progress())

	return &App{
		Store:    s,
		Topics:   topics,
		Lessons:  lessons,
		Quizzes:  quizzes,
		Progress: tracker,
	}, nil
}

// Close flushes and closes the underlying store.
func (a *App) Close() error {
	return a.Store.Close()
}

// ResetAll wipes learner state and reinstates the default progress
// record. Settings and the LLM event log are kept.
func (a *App) ResetAll(ctx context.Context) error {
	if err := a.Store.WipeUserData(ctx); err != nil {
		return err
	}
	return a.Progress.ResetProgress(ctx)
}

// LLMConfig resolves provider configuration in the promised order:
// persisted settings first, then SKILLBYTE_* env vars, then standard
// provider key discovery.
func (a *App) LLMConfig(ctx context.Context) (llm.Config, error) {
	settings, err := a.Store.Settings().Load(ctx)
	if err != nil {
		return llm.Config{}, err
	}

	cfg := llm.ApplySettings(llm.ConfigFromEnv(), settings)
	if err := cfg.Validate(); err == nil {
		return cfg, nil
	}

	if discovered, ok := llm.DiscoverConfig(); ok {
		return discovered, nil
	}
	return cfg, cfg.Validate()
}

// Generator builds the content-generation service for this session.
func (a *App) Generator(ctx context.Context) (*generate.Service, error) {
	cfg, err := a.LLMConfig(ctx)
	if err != nil {
		return nil, err
	}

	provider, err := llm.NewProvider(ctx, cfg, a.Store.LLMEvents())
	if err != nil {
		return nil, err
	}
	return generate.NewService(provider, generate.DefaultConfig()), nil
}
