package quiz

import "strconv"

// triOptions is the shared tri-state answer set. Only the positive option
// contributes to the score.
func triOptions() []AnswerOption {
	return []AnswerOption{
		{Value: AnswerPositive, Label: "Sim", Emoji: "✅", Points: 1},
		{Value: AnswerNeutral, Label: "Mais ou menos", Emoji: "🤔", Points: 0},
		{Value: AnswerNegative, Label: "Não", Emoji: "❌", Points: 0},
	}
}

// StaticCatalog returns the fixed self-serve catalog: 20 tri-state
// questions, four per pillar, ids q1..q20 in block order.
func StaticCatalog() Catalog {
	texts := []struct {
		pillar Pillar
		text   string
	}{
		{PillarProcessos, "Os principais processos da sua empresa estão documentados?"},
		{PillarProcessos, "A operação funciona sem depender de você para decisões do dia a dia?"},
		{PillarProcessos, "Existe um padrão definido para entregar seu produto ou serviço?"},
		{PillarProcessos, "Os erros operacionais são registrados e tratados para não se repetirem?"},

		{PillarPessoas, "Cada pessoa do time sabe exatamente quais são suas responsabilidades?"},
		{PillarPessoas, "Existe um processo estruturado de contratação e integração?"},
		{PillarPessoas, "O time recebe feedback e treinamento com frequência?"},
		{PillarPessoas, "Você conseguiria tirar 15 dias de férias sem a operação parar?"},

		{PillarClientes, "Você sabe exatamente quem é o seu cliente ideal?"},
		{PillarClientes, "Existe um processo ativo e previsível de geração de novos clientes?"},
		{PillarClientes, "Você mede a satisfação dos seus clientes de forma recorrente?"},
		{PillarClientes, "Clientes antigos voltam a comprar ou indicam sua empresa?"},

		{PillarControle, "Você sabe qual foi o lucro real da empresa no mês passado?"},
		{PillarControle, "As finanças da empresa são separadas das finanças pessoais?"},
		{PillarControle, "Existem indicadores acompanhados semanalmente ou mensalmente?"},
		{PillarControle, "Você conhece o custo de aquisição de cada cliente?"},

		{PillarCrescimento, "Existe uma meta clara de crescimento para os próximos 12 meses?"},
		{PillarCrescimento, "Você reinveste parte do lucro de forma planejada?"},
		{PillarCrescimento, "A empresa cresceu de forma consistente nos últimos 2 anos?"},
		{PillarCrescimento, "Você tem um plano definido para escalar a operação?"},
	}

	catalog := make(Catalog, 0, len(texts))
	for i, t := range texts {
		catalog = append(catalog, Question{
			ID:         "q" + strconv.Itoa(i+1),
			Block:      t.pillar.Block(),
			BlockTitle: string(t.pillar),
			Text:       t.text,
			Answers:    triOptions(),
		})
	}
	return catalog
}
