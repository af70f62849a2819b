// Package diagnosis produces the narrative reading of a completed quiz:
// two paragraphs plus a per-pillar action checklist. The LLM path is
// best-effort; every caller gets a deterministic fallback when it fails.
package diagnosis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/radarpme/radarpme/internal/llm"
	"github.com/radarpme/radarpme/internal/scoring"
)

// Diagnoser performs LLM-based narrative diagnosis.
type Diagnoser struct {
	provider llm.Provider
	cfg      Config
}

// NewDiagnoser creates an LLM-backed diagnoser.
func NewDiagnoser(provider llm.Provider, cfg Config) *Diagnoser {
	return &Diagnoser{provider: provider, cfg: cfg}
}

const systemPrompt = `Você é um consultor de negócios sênior escrevendo o resultado de um diagnóstico de maturidade para o dono de uma pequena empresa brasileira.

Instruções:
- Escreva em português do Brasil, direto, pessoal (use o nome da pessoa) e sem jargão.
- O primeiro parágrafo lê o momento atual da empresa a partir da pontuação geral e dos pilares mais forte e mais fraco.
- O segundo parágrafo diz o que priorizar nos próximos 90 dias.
- O checklist traz de 2 a 4 ações práticas por pilar, começando pelo pilar mais fraco. Ações concretas, que cabem em uma semana de trabalho cada.
- Nunca invente números que não estão nos dados.`

var userTemplate = template.Must(template.New("diagnosis").Parse(`Nome: {{.Name}}
Segmento: {{.Segment}}
Porte: {{.CompanySize}}
Pontuação geral: {{.Score}}/100 (nível {{.Level}})

Pontuação por pilar:
{{range .PillarScores}}- {{.Name}}: {{.Score}}/100
{{end}}
Respostas dadas:
{{range .AnswerLines}}- {{.}}
{{end}}`))

type promptData struct {
	Name         string
	Segment      string
	CompanySize  string
	Score        int
	Level        scoring.Tier
	PillarScores []scoring.PillarScore
	AnswerLines  []string
}

func buildUserMessage(req Request) (string, error) {
	data := promptData{
		Name:         req.Name,
		Segment:      req.Segment,
		CompanySize:  req.CompanySize,
		Score:        req.Score,
		Level:        scoring.Classify(req.Score).Level,
		PillarScores: req.PillarScores,
	}

	for _, q := range req.Catalog {
		v, ok := req.Answers[q.ID]
		if !ok {
			continue
		}
		label := string(v)
		for _, opt := range q.Answers {
			if opt.Value == v {
				label = opt.Label
				break
			}
		}
		data.AnswerLines = append(data.AnswerLines, fmt.Sprintf("%s — %s", q.Text, label))
	}

	var buf bytes.Buffer
	if err := userTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Diagnose requests the narrative diagnosis from the LLM. Callers that
// need a guaranteed result should go through Service.Resolve instead.
func (d *Diagnoser) Diagnose(ctx context.Context, req Request) (*Diagnosis, error) {
	ctx = llm.WithPurpose(ctx, "diagnosis")
	if d.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.Timeout)
		defer cancel()
	}

	userMsg, err := buildUserMessage(req)
	if err != nil {
		return nil, fmt.Errorf("build diagnosis prompt: %w", err)
	}

	llmReq := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      Schema,
		MaxTokens:   d.cfg.MaxTokens,
		Temperature: d.cfg.Temperature,
	}

	resp, err := d.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("LLM diagnosis failed: %w", err)
	}

	var out Diagnosis
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse diagnosis response: %w", err)
	}

	if err := checkComplete(&out); err != nil {
		return nil, err
	}

	return &out, nil
}

// checkComplete rejects structurally valid but unusable responses.
func checkComplete(d *Diagnosis) error {
	if d.Summary.Paragraph1 == "" || d.Summary.Paragraph2 == "" {
		return fmt.Errorf("diagnosis summary incomplete")
	}
	for pillar, items := range d.Checklist {
		if len(items) == 0 {
			return fmt.Errorf("diagnosis checklist empty for pillar %q", pillar)
		}
	}
	return nil
}
