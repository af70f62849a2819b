package store

import (
	"context"
	"fmt"

	"github.com/radarpme/radarpme/ent"
	"github.com/radarpme/radarpme/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMRequestEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))

	if opts.Purpose != "" {
		q = q.Where(llmrequestevent.PurposeEQ(opts.Purpose))
	}
	if !opts.From.IsZero() {
		q = q.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(llmrequestevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	events := make([]*LLMRequestEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, llmEventFromRow(row))
	}
	return events, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	row, err := r.client.LLMRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	return llmEventFromRow(row), nil
}

// usageRow mirrors the aggregate aliases below; the grouped column
// scans under its own field name.
type usageRow struct {
	Purpose string  `json:"purpose"`
	Model   string  `json:"model"`
	Calls   int     `json:"calls"`
	In      int     `json:"in_tokens"`
	Out     int     `json:"out_tokens"`
	AvgMs   float64 `json:"avg_ms"`
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	return r.usageGroupedBy(ctx, llmrequestevent.FieldPurpose)
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMUsage, error) {
	return r.usageGroupedBy(ctx, llmrequestevent.FieldModel)
}

func (r *eventRepo) usageGroupedBy(ctx context.Context, field string) ([]LLMUsage, error) {
	var rows []usageRow
	err := r.client.LLMRequestEvent.Query().
		GroupBy(field).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "in_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "out_tokens"),
			ent.As(ent.Mean(llmrequestevent.FieldLatencyMs), "avg_ms"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM usage by %s: %w", field, err)
	}

	usage := make([]LLMUsage, 0, len(rows))
	for _, row := range rows {
		usage = append(usage, LLMUsage{
			Purpose:      row.Purpose,
			Model:        row.Model,
			Calls:        row.Calls,
			InputTokens:  row.In,
			OutputTokens: row.Out,
			AvgLatencyMs: int64(row.AvgMs),
		})
	}
	return usage, nil
}

func llmEventFromRow(row *ent.LLMRequestEvent) *LLMRequestEvent {
	return &LLMRequestEvent{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
			RequestBody:  row.RequestBody,
			ResponseBody: row.ResponseBody,
		},
	}
}
