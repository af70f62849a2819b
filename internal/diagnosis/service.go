package diagnosis

import (
	"context"
	"fmt"
	"os"
)

// Service resolves a diagnosis for every completed quiz: the LLM result
// when available, the deterministic fallback otherwise. Resolve never
// returns an error — a missing diagnosis would block the results page.
type Service struct {
	diagnoser *Diagnoser
}

// NewService creates the diagnosis service. A nil diagnoser means the
// fallback is always used (no LLM configured).
func NewService(diagnoser *Diagnoser) *Service {
	return &Service{diagnoser: diagnoser}
}

// Resolve returns the diagnosis for the request. LLM failures are logged
// and replaced by the fallback; they never propagate.
func (s *Service) Resolve(ctx context.Context, req Request) *Diagnosis {
	if s.diagnoser == nil {
		return Fallback(req)
	}

	out, err := s.diagnoser.Diagnose(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: AI diagnosis unavailable, using fallback: %v\n", err)
		return Fallback(req)
	}
	return out
}
