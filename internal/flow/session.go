package flow

import (
	"time"

	"github.com/google/uuid"
	"github.com/radarpme/radarpme/internal/crm"
)

// Variant selects which funnel shape a session runs.
type Variant string

const (
	// SelfServe is the public funnel: contact and company first, then
	// the fixed 20-question catalog.
	SelfServe Variant = "self-serve"

	// VendorLink is the funnel entered through a salesperson's link:
	// questions are generated for the respondent's segment first,
	// contact data is collected at the end.
	VendorLink Variant = "vendor-link"
)

// Prefill carries data supplied by the inbound link before the funnel
// starts: CRM context from the vendor and any known segment.
type Prefill struct {
	Segment     string
	CompanySize string
	Revenue     string
	JobTitle    string
	DealID      int
}

// Session is the per-run context created once on funnel entry and
// threaded explicitly through the flow. There is no ambient state.
type Session struct {
	ID        string
	Variant   Variant
	UTM       crm.UTM
	Prefill   Prefill
	CreatedAt time.Time
}

// NewSession creates a session with a fresh uuid.
func NewSession(variant Variant, utm crm.UTM, prefill Prefill) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Variant:   variant,
		UTM:       utm,
		Prefill:   prefill,
		CreatedAt: time.Now(),
	}
}
