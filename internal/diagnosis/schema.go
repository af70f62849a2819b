package diagnosis

import (
	"github.com/radarpme/radarpme/internal/llm"
	"github.com/radarpme/radarpme/internal/quiz"
)

// Schema defines the JSON schema for the narrative diagnosis response.
// Checklist items may come back as plain strings or {"action"} objects;
// the union is tolerated here and collapsed by ChecklistItem.UnmarshalJSON.
var Schema = &llm.Schema{
	Name:        "maturity-diagnosis",
	Description: "A two-paragraph narrative diagnosis plus a per-pillar action checklist",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"paragraph1": map[string]any{
						"type":        "string",
						"description": "Leitura direta do momento da empresa, em português do Brasil",
					},
					"paragraph2": map[string]any{
						"type":        "string",
						"description": "O que priorizar nos próximos 90 dias",
					},
				},
				"required":             []any{"paragraph1", "paragraph2"},
				"additionalProperties": false,
			},
			"checklist": checklistSchema(),
		},
		"required":             []any{"summary", "checklist"},
		"additionalProperties": false,
	},
}

func checklistSchema() map[string]any {
	items := map[string]any{
		"type": "array",
		"items": map[string]any{
			"anyOf": []any{
				map[string]any{"type": "string"},
				map[string]any{
					"type": "object",
					"properties": map[string]any{
						"action": map[string]any{"type": "string"},
					},
					"required": []any{"action"},
				},
			},
		},
		"minItems":    1,
		"description": "Ações práticas para o pilar, da mais urgente para a menos urgente",
	}

	props := map[string]any{}
	var required []any
	for _, p := range quiz.AllPillars() {
		props[string(p)] = items
		required = append(required, string(p))
	}

	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}
