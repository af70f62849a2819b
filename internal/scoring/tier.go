package scoring

// Tier is the qualitative maturity band for an overall score.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Tier thresholds on the 0..100 percent scale. The original survey scored
// 0..20 raw points with cuts at 6 and 13; converted to percent those cuts
// are 30 and 65, so a single scale serves every call site.
const (
	lowCeiling    = 30
	mediumCeiling = 65
)

// Diagnosis is the qualitative reading for a score band.
type Diagnosis struct {
	Level          Tier   `json:"level"`
	Emoji          string `json:"emoji"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

// Classify maps an overall score to its tier diagnosis. Total over all
// integers; scores outside 0..100 clamp into the nearest band.
func Classify(score int) Diagnosis {
	switch {
	case score <= lowCeiling:
		return Diagnosis{
			Level:          TierLow,
			Emoji:          "🚨",
			Title:          "Operação no modo sobrevivência",
			Description:    "A empresa depende do dono para quase tudo. Sem processos, controle financeiro e rotina comercial, o crescimento fica travado e qualquer imprevisto vira crise.",
			Recommendation: "Comece pelo básico: separe as finanças, documente o processo mais crítico e defina uma rotina semanal de acompanhamento.",
		}
	case score <= mediumCeiling:
		return Diagnosis{
			Level:          TierMedium,
			Emoji:          "⚠️",
			Title:          "Crescendo, mas no improviso",
			Description:    "Existem bases construídas, porém boa parte da operação ainda roda na cabeça do dono. A empresa cresce em ondas porque faltam previsibilidade comercial e indicadores.",
			Recommendation: "Padronize o que já funciona, delegue com responsabilidades claras e instale uma rotina de indicadores para decidir com dados.",
		}
	default:
		return Diagnosis{
			Level:          TierHigh,
			Emoji:          "🚀",
			Title:          "Pronta para escalar",
			Description:    "A operação tem processos, time e controle funcionando. O desafio agora é ritmo: transformar a base sólida em crescimento consistente e planejado.",
			Recommendation: "Foque em alavancas de escala: metas agressivas por trimestre, funil comercial previsível e reinvestimento disciplinado.",
		}
	}
}
