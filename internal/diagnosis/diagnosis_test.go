package diagnosis

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/radarpme/radarpme/internal/llm"
	"github.com/radarpme/radarpme/internal/quiz"
	"github.com/radarpme/radarpme/internal/scoring"
)

func testRequest() Request {
	catalog := quiz.StaticCatalog()
	answers := quiz.AnswerSet{
		"q1": quiz.AnswerPositive, "q2": quiz.AnswerNegative,
		"q5": quiz.AnswerPositive, "q9": quiz.AnswerNeutral,
	}
	return Request{
		Name:         "Marina",
		Segment:      "pet shop",
		CompanySize:  "1-5",
		Score:        scoring.OverallScore(answers, catalog),
		PillarScores: scoring.PillarScores(answers, catalog),
		Answers:      answers,
		Catalog:      catalog,
	}
}

func validDiagnosisJSON() json.RawMessage {
	return json.RawMessage(`{
		"summary": {
			"paragraph1": "Marina, sua empresa está começando a se estruturar.",
			"paragraph2": "Priorize o controle financeiro nos próximos 90 dias."
		},
		"checklist": {
			"Processos": ["Documente a entrega principal."],
			"Pessoas": [{"action": "Defina responsabilidades por escrito."}],
			"Clientes": ["Implante uma pesquisa de satisfação."],
			"Controle": ["Separe as contas da empresa."],
			"Crescimento": ["Defina uma meta trimestral."]
		}
	}`)
}

func TestChecklistItem_NormalizesBothShapes(t *testing.T) {
	var items []ChecklistItem
	raw := `["ação simples", {"action": "ação estruturada"}]`
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Action != "ação simples" {
		t.Fatalf("plain item = %q", items[0].Action)
	}
	if items[1].Action != "ação estruturada" {
		t.Fatalf("structured item = %q", items[1].Action)
	}
}

func TestChecklistItem_RejectsGarbage(t *testing.T) {
	var item ChecklistItem
	if err := json.Unmarshal([]byte(`42`), &item); err == nil {
		t.Fatal("expected error for numeric checklist item")
	}
	if err := json.Unmarshal([]byte(`{"verb": "x"}`), &item); err == nil {
		t.Fatal("expected error for object without action")
	}
}

func TestDiagnose_ParsesMixedChecklist(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validDiagnosisJSON()})
	d := NewDiagnoser(mock, DefaultConfig())

	out, err := d.Diagnose(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Fallback {
		t.Fatal("LLM result marked as fallback")
	}
	if out.Summary.Paragraph1 == "" || out.Summary.Paragraph2 == "" {
		t.Fatalf("incomplete summary: %+v", out.Summary)
	}
	if got := out.Checklist["Pessoas"][0].Action; got != "Defina responsabilidades por escrito." {
		t.Fatalf("structured checklist item = %q", got)
	}
}

func TestDiagnose_PromptCarriesContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validDiagnosisJSON()})
	d := NewDiagnoser(mock, DefaultConfig())

	if _, err := d.Diagnose(context.Background(), testRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Marina", "pet shop", "Processos"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestDiagnose_IncompleteSummaryFails(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"summary": {"paragraph1": "", "paragraph2": ""},
		"checklist": {}
	}`)})
	d := NewDiagnoser(mock, DefaultConfig())

	if _, err := d.Diagnose(context.Background(), testRequest()); err == nil {
		t.Fatal("expected error for empty summary")
	}
}

func TestFallback_Complete(t *testing.T) {
	req := testRequest()
	out := Fallback(req)

	if !out.Fallback {
		t.Fatal("fallback not marked as such")
	}
	if out.Summary.Paragraph1 == "" || out.Summary.Paragraph2 == "" {
		t.Fatal("fallback summary incomplete")
	}
	if len(out.Checklist) != 5 {
		t.Fatalf("fallback checklist has %d pillars, want 5", len(out.Checklist))
	}
	for _, p := range quiz.AllPillars() {
		if len(out.Checklist[string(p)]) == 0 {
			t.Fatalf("fallback checklist empty for %s", p)
		}
	}

	weakest := scoring.WeakestPillar(req.PillarScores)
	if !strings.Contains(out.Summary.Paragraph2, weakest.Name) {
		t.Fatalf("fallback paragraph2 does not mention weakest pillar %s:\n%s",
			weakest.Name, out.Summary.Paragraph2)
	}
}

func TestService_FallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(NewDiagnoser(mock, DefaultConfig()))

	out := svc.Resolve(context.Background(), testRequest())
	if !out.Fallback {
		t.Fatal("expected fallback diagnosis on provider error")
	}
}

func TestService_NilDiagnoserUsesFallback(t *testing.T) {
	svc := NewService(nil)
	out := svc.Resolve(context.Background(), testRequest())
	if !out.Fallback {
		t.Fatal("expected fallback diagnosis without LLM")
	}
}
