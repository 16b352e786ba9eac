package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// LLMEvent is one recorded LLM API call.
type LLMEvent struct {
	ID           int       `db:"id"`
	Timestamp    time.Time `db:"-"`
	Provider     string    `db:"provider"`
	Model        string    `db:"model"`
	Purpose      string    `db:"purpose"`
	InputTokens  int       `db:"input_tokens"`
	OutputTokens int       `db:"output_tokens"`
	LatencyMs    int64     `db:"latency_ms"`
	Success      bool      `db:"success"`
	ErrorMessage string    `db:"error_message"`
	RequestBody  string    `db:"request_body"`
	ResponseBody string    `db:"response_body"`

	RawTimestamp string `db:"timestamp"`
}

// LLMUsage aggregates token usage for one purpose or model.
type LLMUsage struct {
	Purpose      string `db:"purpose"`
	Model        string `db:"model"`
	Calls        int    `db:"calls"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
	AvgLatencyMs int64  `db:"avg_latency_ms"`
}

// LLMEventRepo records and queries LLM request events.
type LLMEventRepo interface {
	// Append records an LLM API call.
	Append(ctx context.Context, e LLMEvent) error

	// Recent returns the most recent events, newest first. limit <= 0
	// means no limit.
	Recent(ctx context.Context, limit int) ([]LLMEvent, error)

	// Get returns one event by id, or nil if it doesn't exist.
	Get(ctx context.Context, id int) (*LLMEvent, error)

	// UsageByPurpose aggregates token usage grouped by purpose label.
	UsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// UsageByModel aggregates token usage grouped by served model.
	UsageByModel(ctx context.Context) ([]LLMUsage, error)
}

type llmEventRepo struct {
	db *sqlx.DB
}

func (r *llmEventRepo) Append(ctx context.Context, e LLMEvent) error {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_events (timestamp, provider, model, purpose, input_tokens,
		                         output_tokens, latency_ms, success, error_message,
		                         request_body, response_body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ts.UTC().Format(time.RFC3339), e.Provider, e.Model, e.Purpose,
		e.InputTokens, e.OutputTokens, e.LatencyMs, e.Success,
		e.ErrorMessage, e.RequestBody, e.ResponseBody)
	if err != nil {
		return fmt.Errorf("append llm event: %w", err)
	}
	return nil
}

func (r *llmEventRepo) Recent(ctx context.Context, limit int) ([]LLMEvent, error) {
	query := `SELECT id, timestamp, provider, model, purpose, input_tokens,
	                 output_tokens, latency_ms, success, error_message,
	                 request_body, response_body
	          FROM llm_events ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	events := []LLMEvent{}
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	for i := range events {
		if err := parseEventTimestamp(&events[i]); err != nil {
			return nil, err
		}
	}
	return events, nil
}

func (r *llmEventRepo) Get(ctx context.Context, id int) (*LLMEvent, error) {
	var e LLMEvent
	err := r.db.GetContext(ctx, &e,
		`SELECT id, timestamp, provider, model, purpose, input_tokens,
		        output_tokens, latency_ms, success, error_message,
		        request_body, response_body
		 FROM llm_events WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get llm event %d: %w", id, err)
	}
	if err := parseEventTimestamp(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *llmEventRepo) UsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	usage := []LLMUsage{}
	err := r.db.SelectContext(ctx, &usage,
		`SELECT purpose, '' AS model, COUNT(*) AS calls,
		        SUM(input_tokens) AS input_tokens,
		        SUM(output_tokens) AS output_tokens,
		        CAST(AVG(latency_ms) AS INTEGER) AS avg_latency_ms
		 FROM llm_events GROUP BY purpose ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("usage by purpose: %w", err)
	}
	return usage, nil
}

func (r *llmEventRepo) UsageByModel(ctx context.Context) ([]LLMUsage, error) {
	usage := []LLMUsage{}
	err := r.db.SelectContext(ctx, &usage,
		`SELECT '' AS purpose, model, COUNT(*) AS calls,
		        SUM(input_tokens) AS input_tokens,
		        SUM(output_tokens) AS output_tokens,
		        CAST(AVG(latency_ms) AS INTEGER) AS avg_latency_ms
		 FROM llm_events GROUP BY model ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("usage by model: %w", err)
	}
	return usage, nil
}

func parseEventTimestamp(e *LLMEvent) error {
	ts, err := time.Parse(time.RFC3339, e.RawTimestamp)
	if err != nil {
		return fmt.Errorf("parse timestamp for llm event %d: %w", e.ID, err)
	}
	e.Timestamp = ts
	return nil
}
