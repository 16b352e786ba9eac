package generate

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/skillbyte/internal/errs"
	"github.com/abhisek/skillbyte/internal/llm"
)

const lessonBatchJSON = `{
	"lessons": [
		{
			"title": "Goroutines in Five Minutes",
			"content": "A goroutine is a lightweight thread managed by the Go runtime...",
			"duration": "4 min",
			"difficulty": "Beginner",
			"key_points": ["go keyword starts a goroutine", "goroutines are cheap", "use channels to communicate"]
		},
		{
			"title": "Channels as Pipes",
			"content": "Channels connect goroutines...",
			"duration": "5 min",
			"difficulty": "Intermediate",
			"key_points": ["make(chan T)", "send blocks until receive"]
		}
	]
}`

func TestGenerateLessons(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(lessonBatchJSON)})
	svc := NewService(mock, DefaultConfig())

	lessons, err := svc.GenerateLessons(t.Context(), "Go Concurrency", 2)
	require.NoError(t, err)
	require.Len(t, lessons, 2)

	for _, l := range lessons {
		assert.NotEmpty(t, l.ID, "each lesson gets a minted id")
		assert.True(t, l.IsCustom)
		assert.NotNil(t, l.GeneratedAt)
		assert.Empty(t, l.TopicID, "topic id is assigned by the caller")
	}
	assert.NotEqual(t, lessons[0].ID, lessons[1].ID)
	assert.Equal(t, "Goroutines in Five Minutes", lessons[0].Title)
	assert.Equal(t, []string{"make(chan T)", "send blocks until receive"}, lessons[1].KeyPoints)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, "lesson-gen", req.Purpose)
	require.NotNil(t, req.Schema)
	assert.Equal(t, "lesson-batch", req.Schema.Name)
	assert.Contains(t, req.Messages[0].Content, "Go Concurrency")
}

func TestGenerateLessonsEmptyBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"lessons": []}`)})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.GenerateLessons(t.Context(), "Nothing", 3)
	var ge *errs.GenerationError
	require.ErrorAs(t, err, &ge)
}

func TestGenerateLessonsProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.GenerateLessons(t.Context(), "Go Concurrency", 2)
	var ge *errs.GenerationError
	require.ErrorAs(t, err, &ge, "transport failures surface as GenerationError")
}

func TestGenerateLessonsMalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.GenerateLessons(t.Context(), "Go Concurrency", 2)
	var ge *errs.GenerationError
	require.ErrorAs(t, err, &ge)
}

func TestGenerateQuizQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"questions": [
			{
				"question": "What starts a goroutine?",
				"options": ["the go keyword", "a channel", "a mutex", "defer"],
				"correct_answer": 0,
				"explanation": "The go statement runs a function concurrently."
			}
		]
	}`)})
	svc := NewService(mock, DefaultConfig())

	questions, err := svc.GenerateQuizQuestions(t.Context(), "lesson body...", 1)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, 0, questions[0].CorrectAnswer)
	assert.Len(t, questions[0].Options, 4)

	req := mock.Calls[0]
	assert.Equal(t, "quiz-gen", req.Purpose)
	require.NotNil(t, req.Schema)
	assert.Equal(t, "quiz-questions", req.Schema.Name)
}

func TestGenerateQuizQuestionsRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"correct index out of range", `{"questions":[{"question":"q","options":["a","b"],"correct_answer":2,"explanation":""}]}`},
		{"negative correct index", `{"questions":[{"question":"q","options":["a","b"],"correct_answer":-1,"explanation":""}]}`},
		{"single option", `{"questions":[{"question":"q","options":["a"],"correct_answer":0,"explanation":""}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.body)})
			svc := NewService(mock, DefaultConfig())

			_, err := svc.GenerateQuizQuestions(t.Context(), "lesson body...", 1)
			var ge *errs.GenerationError
			require.ErrorAs(t, err, &ge)
		})
	}
}
