package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-answer",
	Description: "test schema",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
			"score":  map[string]any{"type": "integer", "minimum": 0},
		},
		"required":             []any{"answer"},
		"additionalProperties": false,
	},
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"answer":"yes","score":3}`, false},
		{"valid without optional", `{"answer":"yes"}`, false},
		{"missing required", `{"score":3}`, true},
		{"wrong type", `{"answer":42}`, true},
		{"extra property", `{"answer":"yes","extra":true}`, true},
		{"violates minimum", `{"answer":"yes","score":-1}`, true},
		{"not json", `answer: yes`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema, json.RawMessage(tt.raw))
			if tt.wantErr {
				var invResp *ErrInvalidResponse
				if !errors.As(err, &invResp) {
					t.Fatalf("error = %v, want ErrInvalidResponse", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("validate: %v", err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`whatever`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}
