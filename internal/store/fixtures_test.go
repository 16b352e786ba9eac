package store

import (
	"time"

	"github.com/abhisek/skillbyte/internal/model"
)

func attemptFixture(quizID string, answers []*int, score int) model.QuizAttempt {
	return model.QuizAttempt{
		QuizID:      quizID,
		Answers:     answers,
		Score:       score,
		CompletedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func settingsFixture() model.Settings {
	return model.Settings{APIKey: "sk-test", SelectedModel: "gpt-4o-mini"}
}

func eventFixture(purpose, mdl string, in, out int, success bool) LLMEvent {
	return LLMEvent{
		Timestamp:    time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		Provider:     "openai",
		Model:        mdl,
		Purpose:      purpose,
		InputTokens:  in,
		OutputTokens: out,
		LatencyMs:    420,
		Success:      success,
		RequestBody:  "system: test",
		ResponseBody: `{"ok":true}`,
	}
}
