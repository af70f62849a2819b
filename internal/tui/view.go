package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/radarpme/radarpme/internal/scoring"
	"github.com/radarpme/radarpme/internal/ui/components"
	"github.com/radarpme/radarpme/internal/ui/layout"
	"github.com/radarpme/radarpme/internal/ui/theme"
)

func (f *Funnel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if f.width == 0 || f.height == 0 {
		return v
	}
	if layout.IsTooSmall(f.width, f.height) {
		v.SetContent(layout.RenderMinSizeMessage(f.width, f.height))
		return v
	}

	header := layout.RenderHeader(f.title(), f.stepIndicator(), f.width)
	footer := layout.RenderFooter(f.keyHints(), f.width)

	content := f.content()
	frame := layout.RenderFrame(header, content, footer, f.width, f.height)
	v.SetContent(frame)
	return v
}

func (f *Funnel) title() string {
	switch f.phase {
	case phaseContact:
		return "Seus dados"
	case phaseCompany:
		return "Sua empresa"
	case phaseQuestions, phaseSubmitting:
		return "Diagnóstico de maturidade"
	case phaseLoading:
		return "Analisando respostas"
	case phaseResult:
		return "Seu resultado"
	}
	return ""
}

func (f *Funnel) stepIndicator() string {
	if f.phase == phaseQuestions || f.phase == phaseSubmitting {
		return fmt.Sprintf("Pergunta %d/%d", f.ctrl.QuestionIndex()+1, len(f.ctrl.Catalog()))
	}
	return ""
}

func (f *Funnel) keyHints() []layout.KeyHint {
	switch f.phase {
	case phaseContact, phaseCompany:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Próximo campo"},
			{Key: "Enter", Description: "Continuar"},
			{Key: "Ctrl+C", Description: "Sair"},
		}
	case phaseQuestions:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Escolher"},
			{Key: "Enter", Description: "Responder"},
			{Key: "Esc", Description: "Voltar"},
		}
	case phaseResult:
		return []layout.KeyHint{
			{Key: "Q", Description: "Sair"},
		}
	}
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Sair"}}
}

func (f *Funnel) content() string {
	switch f.phase {
	case phaseContact, phaseCompany:
		return f.renderForm()
	case phaseQuestions, phaseSubmitting:
		return f.renderQuestion()
	case phaseLoading:
		return f.renderCentered("Preparando seu diagnóstico personalizado...")
	case phaseResult:
		return f.renderResult()
	}
	return ""
}

func (f *Funnel) renderForm() string {
	var b strings.Builder
	for i, label := range f.labels {
		style := theme.Body
		if i == f.focus {
			style = theme.Selected
		}
		b.WriteString(style.Render(label) + "\n")
		b.WriteString(f.inputs[i].View() + "\n\n")
	}
	if f.errMsg != "" {
		b.WriteString(theme.Weak.Render(f.errMsg) + "\n")
	}
	return f.centeredCard(b.String())
}

func (f *Funnel) renderQuestion() string {
	q, ok := f.ctrl.CurrentQuestion()
	if !ok {
		return ""
	}

	progress := components.NewProgressBar("", float64(f.ctrl.QuestionIndex())/float64(len(f.ctrl.Catalog())), false, 40)

	var b strings.Builder
	b.WriteString(theme.Hint.Render(q.BlockTitle) + "\n\n")
	b.WriteString(theme.Body.Bold(true).Render(q.Text) + "\n\n")
	b.WriteString(f.options.View() + "\n")
	b.WriteString(progress.View() + "\n")
	if f.errMsg != "" {
		b.WriteString("\n" + theme.Weak.Render(f.errMsg) + "\n")
	}
	return f.centeredCard(b.String())
}

func (f *Funnel) renderResult() string {
	v := f.view
	var b strings.Builder

	b.WriteString(theme.Title.Render(fmt.Sprintf("%s  %s", v.Diagnosis.Emoji, v.Diagnosis.Title)) + "\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Pontuação: %d/100", v.Score)) + "\n\n")

	for _, ps := range v.PillarScores {
		bar := components.NewProgressBar(fmt.Sprintf("%-12s", ps.Name), float64(ps.Score)/100, true, 48)
		b.WriteString(bar.View() + "\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.Body.Render(v.AI.Summary.Paragraph1) + "\n\n")
	b.WriteString(theme.Body.Render(v.AI.Summary.Paragraph2) + "\n\n")

	b.WriteString(theme.Selected.Render("Plano de ação") + "\n")
	for _, ps := range v.PillarScores {
		items := v.AI.Checklist[ps.Name]
		if len(items) == 0 {
			continue
		}
		b.WriteString(theme.Body.Bold(true).Render(ps.Name) + "\n")
		for _, item := range items {
			b.WriteString("  • " + item.Action + "\n")
		}
	}

	if v.DealOwner != "" {
		b.WriteString("\n" + theme.Hint.Render("Seu consultor: "+v.DealOwner) + "\n")
	}
	if v.AI.Fallback {
		b.WriteString("\n" + theme.Hint.Render(levelNote(v.Diagnosis.Level)) + "\n")
	}

	return f.centeredCard(b.String())
}

func levelNote(tier scoring.Tier) string {
	return "Diagnóstico base para o nível " + string(tier) + "."
}

func (f *Funnel) renderCentered(text string) string {
	return lipgloss.NewStyle().
		Width(f.width).
		Height(layout.ContentHeight(f.height)).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(text)
}

func (f *Funnel) centeredCard(content string) string {
	card := theme.Card.Width(min(f.width-8, 72)).Render(content)
	return lipgloss.NewStyle().
		Width(f.width).
		Height(layout.ContentHeight(f.height)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}
