package crm

import (
	"time"

	"github.com/radarpme/radarpme/internal/scoring"
)

// Contact is the respondent's personal data sent to the CRM.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Company is the company data attached to the deal's organization.
type Company struct {
	Name    string `json:"name"`
	Segment string `json:"segment"`
	Size    string `json:"size"`
}

// UTM carries the acquisition tags captured on funnel entry.
type UTM struct {
	Source   string `json:"utm_source"`
	Medium   string `json:"utm_medium"`
	Campaign string `json:"utm_campaign"`
}

// Deal is the CRM-side record reference returned to the funnel.
type Deal struct {
	ID        int    `json:"id"`
	OwnerName string `json:"owner_name"`
}

// DealUpdate carries the final quiz result pushed to an existing deal.
type DealUpdate struct {
	Contact        Contact
	Company        Company
	Score          int
	DiagnosisLevel scoring.Tier
	PillarScores   []scoring.PillarScore
}

// Config holds the Pipedrive connection settings.
type Config struct {
	// BaseURL is the Pipedrive API root, e.g.
	// "https://company.pipedrive.com/api/v1".
	BaseURL string

	// APIToken authenticates every request (api_token query param).
	APIToken string

	// PipelineID is the pipeline new deals land in. 0 uses the default.
	PipelineID int

	// StageID is the stage new deals land in. 0 uses the default.
	StageID int

	// Timeout bounds each HTTP call.
	Timeout time.Duration
}

// Owner polling bounds: a newly created deal may take a moment to get a
// salesperson assigned by the CRM's distribution rules.
const (
	ownerPollAttempts = 6
	ownerPollInterval = 3 * time.Second
)
