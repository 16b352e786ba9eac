package generate

import "github.com/abhisek/skillbyte/internal/llm"

// LessonBatchSchema defines the JSON schema for a generated lesson batch.
var LessonBatchSchema = &llm.Schema{
	Name:        "lesson-batch",
	Description: "A batch of short self-paced lessons on one topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"lessons": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Short lesson title (3-8 words)",
						},
						"content": map[string]any{
							"type":        "string",
							"description": "Lesson body, 3-5 minutes of reading, explaining the concepts clearly",
						},
						"duration": map[string]any{
							"type":        "string",
							"description": "Reading time estimate, e.g. \"3 min\"",
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"Beginner", "Intermediate", "Advanced"},
						},
						"key_points": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "3-5 key learning points",
						},
					},
					"required":             []any{"title", "content", "duration", "difficulty", "key_points"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"lessons"},
		"additionalProperties": false,
	},
}

// QuizQuestionsSchema defines the JSON schema for generated quiz questions.
var QuizQuestionsSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "Multiple-choice comprehension questions for one lesson",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "Question text",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Four answer options",
						},
						"correct_answer": map[string]any{
							"type":        "integer",
							"description": "Zero-based index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct answer is correct",
						},
					},
					"required":             []any{"question", "options", "correct_answer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
