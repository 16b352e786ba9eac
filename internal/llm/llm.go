// Package llm abstracts the LLM providers used for content generation.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction consumers call. Generate sends one
// request and returns structured JSON when a Schema is set.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model this provider is configured to use.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation; generation here is single-turn, so
	// this is normally one user message.
	Messages []Message

	// Schema, when set, switches the provider to its native structured
	// output mechanism and the response Content is validated JSON.
	Schema *Schema

	// Purpose labels the request in the event log, e.g. "lesson-gen".
	Purpose string

	MaxTokens int

	// Temperature in [0, 1]; zero means deterministic.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON shape the response must conform to.
type Schema struct {
	// Name identifies the schema to the provider (tool name for
	// Anthropic, schema name for OpenAI). Kebab-case.
	Name string

	// Description guides generation.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when a Schema was requested, raw text
	// otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage reports token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
