package diagnosis

import (
	"fmt"

	"github.com/radarpme/radarpme/internal/scoring"
)

// Fallback builds the deterministic diagnosis used when the AI call
// fails or times out. Templated from the score tier and the strongest
// and weakest pillars; the checklist comes from the scoring engine.
func Fallback(req Request) *Diagnosis {
	diag := scoring.Classify(req.Score)
	strongest := scoring.StrongestPillar(req.PillarScores)
	weakest := scoring.WeakestPillar(req.PillarScores)

	name := req.Name
	if name == "" {
		name = "Empreendedor(a)"
	}

	p1 := fmt.Sprintf(
		"%s, sua empresa marcou %d de 100 pontos no diagnóstico de maturidade — %s. %s Seu pilar mais forte hoje é %s (%d/100) e o que mais pede atenção é %s (%d/100).",
		name, req.Score, diag.Title, diag.Description,
		strongest.Name, strongest.Score, weakest.Name, weakest.Score,
	)

	p2 := fmt.Sprintf(
		"Nos próximos 90 dias, concentre energia no pilar %s: é onde cada hora investida traz o maior retorno para o seu momento. %s",
		weakest.Name, diag.Recommendation,
	)

	checklist := make(map[string][]ChecklistItem, 5)
	for pillar, actions := range scoring.FallbackChecklist(req.Score) {
		items := make([]ChecklistItem, 0, len(actions))
		for _, a := range actions {
			items = append(items, ChecklistItem{Action: a})
		}
		checklist[pillar] = items
	}

	return &Diagnosis{
		Summary:   Summary{Paragraph1: p1, Paragraph2: p2},
		Checklist: checklist,
		Fallback:  true,
	}
}
