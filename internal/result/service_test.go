package result

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/radarpme/radarpme/internal/diagnosis"
	"github.com/radarpme/radarpme/internal/flow"
	"github.com/radarpme/radarpme/internal/llm"
	"github.com/radarpme/radarpme/internal/quiz"
	"github.com/radarpme/radarpme/internal/scoring"
)

type fakeUpdater struct {
	calls   int
	leadID  int
	pillars map[string]int
	raw     json.RawMessage
	err     error
}

func (f *fakeUpdater) AttachDiagnosis(_ context.Context, id int, pillars map[string]int, raw json.RawMessage) error {
	f.calls++
	f.leadID = id
	f.pillars = pillars
	f.raw = raw
	return f.err
}

func testBundle() *flow.Result {
	catalog := quiz.StaticCatalog()
	answers := quiz.AnswerSet{"q1": quiz.AnswerPositive}
	return &flow.Result{
		LeadID:       3,
		Name:         "Marina",
		Segment:      "pet shop",
		CompanySize:  "1-5",
		Score:        scoring.OverallScore(answers, catalog),
		Diagnosis:    scoring.Classify(5),
		PillarScores: scoring.PillarScores(answers, catalog),
		Answers:      answers,
		Catalog:      catalog,
	}
}

func TestBuildUsesFallbackWithoutLLM(t *testing.T) {
	updater := &fakeUpdater{}
	svc := New(diagnosis.NewService(nil), updater, 0)

	view := svc.Build(context.Background(), testBundle())

	if view.AI == nil || !view.AI.Fallback {
		t.Fatal("expected fallback diagnosis without LLM")
	}
	if view.Score != 5 {
		t.Errorf("view score = %d, want 5", view.Score)
	}
	if updater.calls != 1 {
		t.Fatalf("attach calls = %d, want 1", updater.calls)
	}
	if updater.leadID != 3 {
		t.Errorf("attach lead id = %d, want 3", updater.leadID)
	}
	// Fallback content is not stored as an AI diagnosis.
	if len(updater.raw) != 0 {
		t.Errorf("fallback diagnosis was stored: %s", updater.raw)
	}
	if len(updater.pillars) != 5 {
		t.Errorf("attached %d pillar scores, want 5", len(updater.pillars))
	}
}

func TestBuildStoresAIDiagnosis(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"summary": {
			"paragraph1": "Sua empresa está no começo da jornada.",
			"paragraph2": "Foque no controle financeiro."
		},
		"checklist": {
			"Processos": ["Documente a entrega principal."],
			"Pessoas": ["Defina responsabilidades."],
			"Clientes": ["Implante pesquisa de satisfação."],
			"Controle": ["Separe as contas."],
			"Crescimento": ["Defina uma meta trimestral."]
		}
	}`)})
	updater := &fakeUpdater{}
	svc := New(diagnosis.NewService(diagnosis.NewDiagnoser(mock, diagnosis.DefaultConfig())), updater, 0)

	view := svc.Build(context.Background(), testBundle())

	if view.AI.Fallback {
		t.Fatal("expected AI diagnosis, got fallback")
	}
	if len(updater.raw) == 0 {
		t.Fatal("AI diagnosis not attached to lead")
	}

	var stored diagnosis.Diagnosis
	if err := json.Unmarshal(updater.raw, &stored); err != nil {
		t.Fatalf("stored diagnosis not parseable: %v", err)
	}
	if stored.Summary.Paragraph1 == "" {
		t.Error("stored diagnosis missing summary")
	}
}

func TestBuildAttachFailureIsSwallowed(t *testing.T) {
	updater := &fakeUpdater{err: errors.New("db gone")}
	svc := New(diagnosis.NewService(nil), updater, 0)

	view := svc.Build(context.Background(), testBundle())
	if view == nil || view.AI == nil {
		t.Fatal("attach failure must not block the view")
	}
}

func TestBuildEnforcesMinimumLoading(t *testing.T) {
	svc := New(diagnosis.NewService(nil), nil, 60*time.Millisecond)

	start := time.Now()
	svc.Build(context.Background(), testBundle())
	if elapsed := time.Since(start); elapsed < 60*time.Millisecond {
		t.Fatalf("returned after %s, want >= 60ms", elapsed)
	}
}

func TestBuildMinimumLoadingRespectsCancellation(t *testing.T) {
	svc := New(diagnosis.NewService(nil), nil, 10*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	svc.Build(ctx, testBundle())
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("cancelled build still took %s", elapsed)
	}
}
