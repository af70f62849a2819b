package questiongen

import "github.com/radarpme/radarpme/internal/llm"

// CatalogSchema defines the JSON schema for the generated question catalog.
// The options of each question are ordered from least to most mature; the
// 1..5 values and points are assigned locally from that order.
var CatalogSchema = &llm.Schema{
	Name:        "question-catalog",
	Description: "A personalized business maturity questionnaire: 20 questions, 4 per pillar",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"minItems":    20,
				"maxItems":    20,
				"description": "Exactly 20 questions: 4 for each of the 5 pillars, in block order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"block": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     5,
							"description": "Pillar block: 1=Processos 2=Pessoas 3=Clientes 4=Controle 5=Crescimento",
						},
						"text": map[string]any{
							"type":        "string",
							"description": "The question, in Brazilian Portuguese, specific to the company's segment",
						},
						"options": map[string]any{
							"type":        "array",
							"minItems":    5,
							"maxItems":    5,
							"description": "Exactly 5 answer options ordered from least to most mature",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"label": map[string]any{
										"type":        "string",
										"description": "Short option text in Brazilian Portuguese",
									},
									"emoji": map[string]any{
										"type":        "string",
										"description": "A single emoji matching the option's tone",
									},
								},
								"required":             []any{"label", "emoji"},
								"additionalProperties": false,
							},
						},
					},
					"required":             []any{"block", "text", "options"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
