package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/skillbyte/internal/store"
)

// loggingProvider records every request as an llm_events row. Logging
// failures are reported to stderr but never fail the request.
type loggingProvider struct {
	inner  Provider
	name   string
	events store.LLMEventRepo
}

// WithLogging wraps a Provider with event logging. name is the provider
// family recorded on each event ("anthropic", "openai", "gemini").
func WithLogging(p Provider, name string, events store.LLMEventRepo) Provider {
	return &loggingProvider{inner: p, name: name, events: events}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	purpose := req.Purpose
	if purpose == "" {
		purpose = "unknown"
	}

	event := store.LLMEvent{
		Timestamp:   start,
		Provider:    l.name,
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: renderRequest(req),
	}
	if resp != nil {
		event.InputTokens = resp.Usage.InputTokens
		event.OutputTokens = resp.Usage.OutputTokens
		event.Model = resp.Model
		event.ResponseBody = string(resp.Content)
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}

	if logErr := l.events.Append(ctx, event); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}

	return resp, err
}

func (l *loggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// renderRequest builds a readable transcript of the request for the
// event log.
func renderRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
