package store

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestTopicSelection(t *testing.T) {
	s := openTestStore(t)
	ctx := t.Context()
	repo := s.Topics()

	if err := repo.Select(ctx, "js-foundations"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := repo.Select(ctx, "ui-design"); err != nil {
		t.Fatalf("select: %v", err)
	}
	// Re-selecting must not duplicate.
	if err := repo.Select(ctx, "js-foundations"); err != nil {
		t.Fatalf("re-select: %v", err)
	}

	ids, err := repo.SelectedIDs(ctx)
	if err != nil {
		t.Fatalf("selected ids: %v", err)
	}
	if len(ids) != 2 || ids[0] != "js-foundations" || ids[1] != "ui-design" {
		t.Fatalf("selected ids = %v, want [js-foundations ui-design]", ids)
	}

	if err := repo.Unselect(ctx, "js-foundations"); err != nil {
		t.Fatalf("unselect: %v", err)
	}
	ids, err = repo.SelectedIDs(ctx)
	if err != nil {
		t.Fatalf("selected ids: %v", err)
	}
	if len(ids) != 1 || ids[0] != "ui-design" {
		t.Fatalf("selected ids after unselect = %v", ids)
	}
}

func TestMarkCompletePreservesFirstTimestamp(t *testing.T) {
	s := openTestStore(t)
	ctx := t.Context()
	repo := s.Lessons()

	first := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	if err := repo.MarkComplete(ctx, "js-variables", first); err != nil {
		t.Fatalf("mark complete: %v", err)
	}
	// A repeat completion must keep the original timestamp.
	if err := repo.MarkComplete(ctx, "js-variables", first.Add(48*time.Hour)); err != nil {
		t.Fatalf("repeat mark complete: %v", err)
	}

	completed, err := repo.CompletedAt(ctx)
	if err != nil {
		t.Fatalf("completed at: %v", err)
	}
	got, ok := completed["js-variables"]
	if !ok {
		t.Fatal("lesson missing from completed set")
	}
	if !got.Equal(first) {
		t.Fatalf("completed at = %v, want %v", got, first)
	}
}

func TestAttemptUpsertReplacesPrior(t *testing.T) {
	s := openTestStore(t)
	ctx := t.Context()
	repo := s.Attempts()

	one := 1
	if err := repo.Upsert(ctx, attemptFixture("quiz-js-variables", []*int{&one, nil}, 50)); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	zero := 0
	if err := repo.Upsert(ctx, attemptFixture("quiz-js-variables", []*int{&zero, &one}, 100)); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := repo.Get(ctx, "quiz-js-variables")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected stored attempt")
	}
	if got.Score != 100 {
		t.Fatalf("score = %d, want 100 (last write wins)", got.Score)
	}
	if len(got.Answers) != 2 || got.Answers[0] == nil || *got.Answers[0] != 0 {
		t.Fatalf("answers = %v, want [0 1]", got.Answers)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("stored attempts = %d, want 1", len(all))
	}
}

func TestAttemptGetMissingIsNil(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Attempts().Get(t.Context(), "quiz-nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing attempt, got %+v", got)
	}
}

func TestProgressVersionConflict(t *testing.T) {
	s := openTestStore(t)
	ctx := t.Context()
	repo := s.Progress()

	p, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	stale := p
	p.Streak = 1
	if _, err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	stale.Streak = 99
	if _, err := repo.Save(ctx, stale); err != ErrVersionConflict {
		t.Fatalf("stale save error = %v, want ErrVersionConflict", err)
	}
}

func TestProgressSaveBumpsVersion(t *testing.T) {
	s := openTestStore(t)
	ctx := t.Context()
	repo := s.Progress()

	p, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	p.TotalLessonsCompleted = 1
	saved, err := repo.Save(ctx, p)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.Version != p.Version+1 {
		t.Fatalf("version = %d, want %d", saved.Version, p.Version+1)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := t.Context()
	repo := s.Settings()

	// Absent settings load as the zero value, not an error.
	settings, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if settings.APIKey != "" || settings.SelectedModel != "" {
		t.Fatalf("expected zero settings, got %+v", settings)
	}

	settings.APIKey = "sk-test"
	settings.SelectedModel = "claude-haiku"
	if err := repo.Save(ctx, settings); err != nil {
		t.Fatalf("save: %v", err)
	}
	settings.SelectedModel = "gpt-4o-mini"
	if err := repo.Save(ctx, settings); err != nil {
		t.Fatalf("re-save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.APIKey != "sk-test" || got.SelectedModel != "gpt-4o-mini" {
		t.Fatalf("loaded settings = %+v", got)
	}
}

func TestWipeUserDataKeepsSettingsAndEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := t.Context()

	if err := s.Topics().Select(ctx, "js-foundations"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := s.Settings().Save(ctx, settingsFixture()); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	if err := s.LLMEvents().Append(ctx, eventFixture("lesson-gen", "gpt-4o-mini", 100, 50, true)); err != nil {
		t.Fatalf("append event: %v", err)
	}

	if err := s.WipeUserData(ctx); err != nil {
		t.Fatalf("wipe: %v", err)
	}

	ids, err := s.Topics().SelectedIDs(ctx)
	if err != nil {
		t.Fatalf("selected ids: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("selections survived wipe: %v", ids)
	}

	settings, err := s.Settings().Load(ctx)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if settings.APIKey == "" {
		t.Fatal("settings should survive a wipe")
	}
	events, err := s.LLMEvents().Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1 surviving wipe", len(events))
	}
}

func TestLLMEventAggregation(t *testing.T) {
	s := openTestStore(t)
	ctx := t.Context()
	repo := s.LLMEvents()

	fixtures := []LLMEvent{
		eventFixture("lesson-gen", "gpt-4o-mini", 1000, 500, true),
		eventFixture("lesson-gen", "gpt-4o-mini", 800, 400, true),
		eventFixture("quiz-gen", "claude-haiku", 300, 150, false),
	}
	for _, e := range fixtures {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	for _, u := range byPurpose {
		if u.Purpose == "lesson-gen" {
			if u.Calls != 2 || u.InputTokens != 1800 || u.OutputTokens != 900 {
				t.Fatalf("lesson-gen usage = %+v", u)
			}
		}
	}

	byModel, err := repo.UsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("models = %d, want 2", len(byModel))
	}

	recent, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent = %d events, want 2", len(recent))
	}

	got, err := repo.Get(ctx, recent[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ID != recent[0].ID {
		t.Fatalf("get returned %+v", got)
	}
}
