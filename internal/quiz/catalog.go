package quiz

import (
	"fmt"
	"strconv"
)

// QuestionsPerPillar is the fixed number of questions each pillar carries.
const QuestionsPerPillar = 4

// CatalogSize is the total number of questions in a valid catalog.
const CatalogSize = QuestionsPerPillar * 5

// AnswerValue is the value a respondent picked for a question.
// Tri-state catalogs use "positive", "neutral" and "negative"; scaled
// catalogs use the digits "1" through "5".
type AnswerValue string

const (
	AnswerPositive AnswerValue = "positive"
	AnswerNeutral  AnswerValue = "neutral"
	AnswerNegative AnswerValue = "negative"
)

// ScaleValue builds the AnswerValue for a 1..5 scaled option.
func ScaleValue(n int) AnswerValue {
	return AnswerValue(strconv.Itoa(n))
}

// AnswerOption is one selectable option of a question.
type AnswerOption struct {
	Value  AnswerValue `json:"value"`
	Label  string      `json:"label"`
	Emoji  string      `json:"emoji"`
	Points int         `json:"points"`
}

// Question is a single catalog entry. Block and BlockTitle mirror the
// pillar grouping: block N holds the questions of the N-th pillar.
type Question struct {
	ID         string         `json:"id"`
	Block      int            `json:"block"`
	BlockTitle string         `json:"block_title"`
	Text       string         `json:"text"`
	Answers    []AnswerOption `json:"answers"`
}

// Pillar returns the pillar this question belongs to.
func (q Question) Pillar() Pillar {
	p, _ := PillarForBlock(q.Block)
	return p
}

// Points returns the score contribution for the given answer value.
// An unknown value contributes nothing.
func (q Question) Points(v AnswerValue) int {
	for _, opt := range q.Answers {
		if opt.Value == v {
			return opt.Points
		}
	}
	return 0
}

// MaxPoints returns the highest score contribution any option carries.
func (q Question) MaxPoints() int {
	max := 0
	for _, opt := range q.Answers {
		if opt.Points > max {
			max = opt.Points
		}
	}
	return max
}

// AnswerSet maps question ids to the selected answer value. It only ever
// grows; editing an earlier answer overwrites the existing key.
type AnswerSet map[string]AnswerValue

// Catalog is an ordered question list covering the five pillars.
type Catalog []Question

// ByID returns the question with the given id, or false if absent.
func (c Catalog) ByID(id string) (Question, bool) {
	for _, q := range c {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// ForPillar returns the questions of a single pillar in catalog order.
func (c Catalog) ForPillar(p Pillar) []Question {
	var out []Question
	for _, q := range c {
		if q.Pillar() == p {
			out = append(out, q)
		}
	}
	return out
}

// MaxPoints returns the maximum achievable point total across the catalog.
func (c Catalog) MaxPoints() int {
	total := 0
	for _, q := range c {
		total += q.MaxPoints()
	}
	return total
}

// Validate checks the structural invariants every catalog must satisfy:
// exactly 20 questions, 4 per pillar, unique ids, block/blockTitle
// consistent with the pillar grouping, and at least two options per
// question with a scoreable best option.
func (c Catalog) Validate() error {
	if len(c) != CatalogSize {
		return fmt.Errorf("catalog has %d questions, want %d", len(c), CatalogSize)
	}

	seen := make(map[string]bool, len(c))
	perPillar := make(map[Pillar]int)

	for i, q := range c {
		if q.ID == "" {
			return fmt.Errorf("question %d has empty id", i)
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		p, ok := PillarForBlock(q.Block)
		if !ok {
			return fmt.Errorf("question %q: invalid block %d", q.ID, q.Block)
		}
		if q.BlockTitle != string(p) {
			return fmt.Errorf("question %q: block title %q does not match pillar %q", q.ID, q.BlockTitle, p)
		}
		perPillar[p]++

		if len(q.Answers) < 2 {
			return fmt.Errorf("question %q has %d options, want at least 2", q.ID, len(q.Answers))
		}
		if q.MaxPoints() <= 0 {
			return fmt.Errorf("question %q has no scoreable option", q.ID)
		}
	}

	for _, p := range AllPillars() {
		if perPillar[p] != QuestionsPerPillar {
			return fmt.Errorf("pillar %q has %d questions, want %d", p, perPillar[p], QuestionsPerPillar)
		}
	}

	return nil
}
