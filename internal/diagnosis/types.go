package diagnosis

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/radarpme/radarpme/internal/quiz"
	"github.com/radarpme/radarpme/internal/scoring"
)

// ChecklistItem is one recommended action. The AI collaborator returns
// items either as plain strings or as {"action": "..."} objects; both
// shapes normalize here, in UnmarshalJSON, and nowhere else.
type ChecklistItem struct {
	Action string `json:"action"`
}

func (c *ChecklistItem) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		c.Action = plain
		return nil
	}

	var structured struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal(data, &structured); err != nil {
		return fmt.Errorf("checklist item is neither string nor object: %w", err)
	}
	if structured.Action == "" {
		return fmt.Errorf("checklist item object has empty action")
	}
	c.Action = structured.Action
	return nil
}

func (c ChecklistItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Action string `json:"action"`
	}{Action: c.Action})
}

// Summary is the two-paragraph narrative reading of the result.
type Summary struct {
	Paragraph1 string `json:"paragraph1"`
	Paragraph2 string `json:"paragraph2"`
}

// Diagnosis is the full narrative result shown on the results page.
type Diagnosis struct {
	Summary   Summary                    `json:"summary"`
	Checklist map[string][]ChecklistItem `json:"checklist"`

	// Fallback is true when the deterministic template substituted for
	// the AI output.
	Fallback bool `json:"fallback"`
}

// Request carries everything the diagnoser needs about a completed quiz.
type Request struct {
	Name         string
	Segment      string
	CompanySize  string
	Score        int
	PillarScores []scoring.PillarScore
	Answers      quiz.AnswerSet
	Catalog      quiz.Catalog
}

// Config controls the LLM diagnoser.
type Config struct {
	MaxTokens   int
	Temperature float64

	// Timeout bounds the diagnosis call. On expiry the caller renders
	// the deterministic fallback instead.
	Timeout time.Duration
}

// DefaultConfig returns the recommended diagnoser settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.5,
		Timeout:     25 * time.Second,
	}
}
