package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `Você é um consultor de negócios especializado em pequenas e médias empresas brasileiras. Sua tarefa é criar um questionário de diagnóstico de maturidade empresarial personalizado para o segmento informado.

Regras:
- Gere exatamente 20 perguntas: 4 para cada um dos 5 pilares, na ordem dos blocos (1=Processos, 2=Pessoas, 3=Clientes, 4=Controle, 5=Crescimento).
- Cada pergunta deve ser específica para o segmento e o porte informados. Use a linguagem e os exemplos do dia a dia desse tipo de negócio.
- Cada pergunta tem exatamente 5 opções de resposta, ordenadas da menos madura para a mais madura.
- As opções devem ser curtas (até 10 palavras), concretas e mutuamente exclusivas.
- Escreva tudo em português do Brasil, tom direto e acessível, sem jargão de consultoria.
- Não numere as perguntas no texto e não mencione os pilares no texto da pergunta.`

// buildUserMessage renders the personalization context for the prompt.
func buildUserMessage(input Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Segmento: %s\n", input.Segment)
	fmt.Fprintf(&b, "Porte (funcionários): %s\n", orUnknown(input.CompanySize))
	fmt.Fprintf(&b, "Faturamento mensal: %s\n", orUnknown(input.Revenue))
	fmt.Fprintf(&b, "Cargo de quem responde: %s\n", orUnknown(input.JobTitle))

	return b.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "não informado"
	}
	return s
}
