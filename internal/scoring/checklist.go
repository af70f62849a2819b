package scoring

import "github.com/radarpme/radarpme/internal/quiz"

// FallbackChecklist returns the deterministic action checklist used when
// the AI-generated one is unavailable. Every pillar gets at least one
// action, banded by the same tiers as Classify.
func FallbackChecklist(score int) map[string][]string {
	tier := Classify(score).Level

	actions := map[Tier]map[quiz.Pillar][]string{
		TierLow: {
			quiz.PillarProcessos:   {"Escolha o processo mais crítico da operação e descreva o passo a passo em uma página.", "Defina um responsável por cada etapa da entrega."},
			quiz.PillarPessoas:     {"Liste as responsabilidades de cada pessoa do time em um documento compartilhado."},
			quiz.PillarClientes:    {"Descreva em uma frase quem é o seu cliente ideal e onde ele está.", "Peça feedback para os últimos 5 clientes atendidos."},
			quiz.PillarControle:    {"Separe imediatamente a conta bancária da empresa da conta pessoal.", "Anote todas as entradas e saídas do mês em uma planilha simples."},
			quiz.PillarCrescimento: {"Defina uma única meta de faturamento para os próximos 90 dias."},
		},
		TierMedium: {
			quiz.PillarProcessos:   {"Documente os 3 processos que mais consomem seu tempo e delegue a execução.", "Crie um checklist padrão de entrega para reduzir retrabalho."},
			quiz.PillarPessoas:     {"Implante uma rotina quinzenal de feedback individual.", "Estruture um roteiro de integração para novas contratações."},
			quiz.PillarClientes:    {"Monte um funil comercial com etapas e taxas de conversão medidas semanalmente."},
			quiz.PillarControle:    {"Acompanhe 5 indicadores-chave todo mês: faturamento, lucro, CAC, ticket médio e inadimplência."},
			quiz.PillarCrescimento: {"Transforme a meta anual em metas trimestrais com um plano de ação por área.", "Reserve um percentual fixo do lucro para reinvestimento."},
		},
		TierHigh: {
			quiz.PillarProcessos:   {"Automatize as etapas repetitivas dos processos já documentados."},
			quiz.PillarPessoas:     {"Desenvolva lideranças intermediárias para tirar decisões operacionais de você.", "Crie um plano de carreira simples para reter as pessoas-chave."},
			quiz.PillarClientes:    {"Implante um programa ativo de indicação e recompra para a base atual."},
			quiz.PillarControle:    {"Monte um painel de indicadores com revisão semanal de desvios.", "Projete o fluxo de caixa com 90 dias de antecedência."},
			quiz.PillarCrescimento: {"Valide um novo canal de aquisição por trimestre antes de escalar o investimento."},
		},
	}

	out := make(map[string][]string, 5)
	for _, p := range quiz.AllPillars() {
		out[string(p)] = actions[tier][p]
	}
	return out
}
