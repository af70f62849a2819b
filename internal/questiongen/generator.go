// Package questiongen builds personalized question catalogs for the
// vendor-link funnel variant. The catalog contract is strict: exactly 20
// questions, 4 per pillar, 5 scaled options each — anything else is a
// generation failure, because the flow cannot start without a full catalog.
package questiongen

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/radarpme/radarpme/internal/llm"
	"github.com/radarpme/radarpme/internal/quiz"
)

// Generator produces personalized catalogs through the LLM provider.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// catalogOutput is the raw LLM response before assembly and validation.
type catalogOutput struct {
	Questions []struct {
		Block   int    `json:"block"`
		Text    string `json:"text"`
		Options []struct {
			Label string `json:"label"`
			Emoji string `json:"emoji"`
		} `json:"options"`
	} `json:"questions"`
}

// Generate requests a personalized catalog and validates the contract.
func (g *Generator) Generate(ctx context.Context, input Input) (quiz.Catalog, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      CatalogSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("catalog generation failed: %w", err)
	}

	var raw catalogOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog response: %w", err)
	}

	catalog, err := assemble(raw)
	if err != nil {
		return nil, err
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("generated catalog rejected: %w", err)
	}

	return catalog, nil
}

// assemble converts the raw response into a quiz.Catalog, assigning ids
// and scaled option values from position.
func assemble(raw catalogOutput) (quiz.Catalog, error) {
	if len(raw.Questions) != quiz.CatalogSize {
		return nil, fmt.Errorf("generated catalog has %d questions, want %d", len(raw.Questions), quiz.CatalogSize)
	}

	catalog := make(quiz.Catalog, 0, quiz.CatalogSize)
	for i, q := range raw.Questions {
		if len(q.Options) != 5 {
			return nil, fmt.Errorf("question %d has %d options, want 5", i+1, len(q.Options))
		}

		pillar, ok := quiz.PillarForBlock(q.Block)
		if !ok {
			return nil, fmt.Errorf("question %d has invalid block %d", i+1, q.Block)
		}

		opts := make([]quiz.AnswerOption, 0, 5)
		for n, opt := range q.Options {
			opts = append(opts, quiz.AnswerOption{
				Value:  quiz.ScaleValue(n + 1),
				Label:  opt.Label,
				Emoji:  opt.Emoji,
				Points: n + 1,
			})
		}

		catalog = append(catalog, quiz.Question{
			ID:         "g" + strconv.Itoa(i+1),
			Block:      q.Block,
			BlockTitle: string(pillar),
			Text:       q.Text,
			Answers:    opts,
		})
	}

	return catalog, nil
}
