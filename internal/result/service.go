// Package result assembles the final results view: the pre-computed
// score bundle from the flow plus the AI (or fallback) diagnosis.
package result

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/radarpme/radarpme/internal/diagnosis"
	"github.com/radarpme/radarpme/internal/flow"
)

// DefaultMinLoading is how long the loading state is shown at minimum,
// so a fast diagnosis doesn't flash past the respondent.
const DefaultMinLoading = 4 * time.Second

// LeadUpdater attaches the resolved diagnosis to the persisted lead.
type LeadUpdater interface {
	AttachDiagnosis(ctx context.Context, id int, pillarScores map[string]int, aiDiagnosis json.RawMessage) error
}

// View is everything the results page renders.
type View struct {
	flow.Result
	AI *diagnosis.Diagnosis
}

// Service resolves the diagnosis for a completed session. It never
// re-fetches the bundle from storage; the flow hands it over in memory.
type Service struct {
	diagnoses  *diagnosis.Service
	leads      LeadUpdater
	minLoading time.Duration
}

// New creates the result service. A zero minLoading disables the
// minimum loading duration; a nil leads updater disables the
// best-effort attach.
func New(diagnoses *diagnosis.Service, leads LeadUpdater, minLoading time.Duration) *Service {
	return &Service{diagnoses: diagnoses, leads: leads, minLoading: minLoading}
}

// Build resolves the diagnosis, attaches it to the stored lead
// (best-effort) and returns the view. It blocks until the minimum
// loading duration has elapsed, unless the context is cancelled first.
func (s *Service) Build(ctx context.Context, res *flow.Result) *View {
	start := time.Now()

	diag := s.diagnoses.Resolve(ctx, diagnosis.Request{
		Name:         res.Name,
		Segment:      res.Segment,
		CompanySize:  res.CompanySize,
		Score:        res.Score,
		PillarScores: res.PillarScores,
		Answers:      res.Answers,
		Catalog:      res.Catalog,
	})

	s.attach(ctx, res, diag)

	if remaining := s.minLoading - time.Since(start); remaining > 0 {
		select {
		case <-ctx.Done():
		case <-time.After(remaining):
		}
	}

	return &View{Result: *res, AI: diag}
}

// attach stores the resolved diagnosis on the lead row. Failures are
// logged only; the respondent still sees their result.
func (s *Service) attach(ctx context.Context, res *flow.Result, diag *diagnosis.Diagnosis) {
	if s.leads == nil || res.LeadID == 0 {
		return
	}

	var raw json.RawMessage
	if !diag.Fallback {
		var err error
		raw, err = json.Marshal(diag)
		if err != nil {
			log.Printf("warning: serialize diagnosis for lead %d: %v", res.LeadID, err)
		}
	}

	pillars := make(map[string]int, len(res.PillarScores))
	for _, p := range res.PillarScores {
		pillars[p.Name] = p.Score
	}

	if err := s.leads.AttachDiagnosis(ctx, res.LeadID, pillars, raw); err != nil {
		log.Printf("warning: attach diagnosis to lead %d: %v", res.LeadID, err)
	}
}
