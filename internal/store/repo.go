package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	Purpose string    // filter by purpose label ("" = all)
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
}

// LeadData is the write model for a captured lead.
type LeadData struct {
	Name           string
	Email          string
	Phone          string
	Company        string
	Segment        string
	CompanySize    string
	Score          int
	Answers        map[string]string
	DiagnosisLevel string
	PillarScores   map[string]int
	CRMDealID      int
}

// Lead is a persisted lead row.
type Lead struct {
	ID          int
	LeadData
	AIDiagnosis json.RawMessage
	CreatedAt   time.Time
}

// LeadRepo persists quiz submissions. CreateLead is the blocking step of
// the funnel: if it fails, the submission fails.
type LeadRepo interface {
	// CreateLead stores a new lead and returns its id.
	CreateLead(ctx context.Context, data LeadData) (int, error)

	// AttachDiagnosis stores the resolved pillar scores and, when the
	// LLM produced one, the serialized AI diagnosis on an existing lead.
	AttachDiagnosis(ctx context.Context, id int, pillarScores map[string]int, aiDiagnosis json.RawMessage) error

	// Get returns the lead with the given id, or nil if it doesn't exist.
	Get(ctx context.Context, id int) (*Lead, error)

	// Recent returns the newest leads, most recent first.
	Recent(ctx context.Context, limit int) ([]*Lead, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a persisted LLM request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token usage, grouped by purpose or by model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events matching opts, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMRequestEvent, error)

	// GetLLMEvent returns the event with the given id, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}
