package questiongen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/radarpme/radarpme/internal/llm"
	"github.com/radarpme/radarpme/internal/quiz"
)

type rawOption struct {
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

type rawQuestion struct {
	Block   int         `json:"block"`
	Text    string      `json:"text"`
	Options []rawOption `json:"options"`
}

func validPayload(t *testing.T) json.RawMessage {
	t.Helper()

	var questions []rawQuestion
	for block := 1; block <= 5; block++ {
		for range quiz.QuestionsPerPillar {
			questions = append(questions, rawQuestion{
				Block: block,
				Text:  "Como funciona esse ponto na sua clínica?",
				Options: []rawOption{
					{Label: "Não existe", Emoji: "❌"},
					{Label: "Começando", Emoji: "🌱"},
					{Label: "Funciona às vezes", Emoji: "🤔"},
					{Label: "Funciona bem", Emoji: "👍"},
					{Label: "Roda sem mim", Emoji: "🚀"},
				},
			})
		}
	}

	payload, err := json.Marshal(map[string]any{"questions": questions})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return payload
}

func testInput() Input {
	return Input{
		Segment:     "clínica odontológica",
		CompanySize: "6-20",
		Revenue:     "50k-200k",
		JobTitle:    "sócio",
	}
}

func TestGenerate_ValidCatalog(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPayload(t)})
	g := New(mock, DefaultConfig())

	catalog, err := g.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := catalog.Validate(); err != nil {
		t.Fatalf("assembled catalog invalid: %v", err)
	}
	if len(catalog) != quiz.CatalogSize {
		t.Fatalf("got %d questions, want %d", len(catalog), quiz.CatalogSize)
	}

	// Scaled values and points come from option position.
	q := catalog[0]
	for n, opt := range q.Answers {
		if opt.Value != quiz.ScaleValue(n+1) {
			t.Fatalf("option %d has value %q, want %q", n, opt.Value, quiz.ScaleValue(n+1))
		}
		if opt.Points != n+1 {
			t.Fatalf("option %d worth %d points, want %d", n, opt.Points, n+1)
		}
	}

	// Prompt carries the personalization context.
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	if want := "clínica odontológica"; !strings.Contains(msg, want) {
		t.Fatalf("prompt missing segment %q:\n%s", want, msg)
	}
}

func TestGenerate_WrongQuestionCountFails(t *testing.T) {
	var out catalogOutput
	if err := json.Unmarshal(validPayload(t), &out); err != nil {
		t.Fatal(err)
	}
	out.Questions = out.Questions[:19]
	payload, _ := json.Marshal(out)

	mock := llm.NewMockProvider(llm.MockResponse{Content: payload})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), testInput()); err == nil {
		t.Fatal("expected error for 19-question catalog")
	}
}

func TestGenerate_WrongOptionCountFails(t *testing.T) {
	var out catalogOutput
	if err := json.Unmarshal(validPayload(t), &out); err != nil {
		t.Fatal(err)
	}
	out.Questions[3].Options = out.Questions[3].Options[:4]
	payload, _ := json.Marshal(out)

	mock := llm.NewMockProvider(llm.MockResponse{Content: payload})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), testInput()); err == nil {
		t.Fatal("expected error for 4-option question")
	}
}

func TestGenerate_UnbalancedPillarsFails(t *testing.T) {
	var out catalogOutput
	if err := json.Unmarshal(validPayload(t), &out); err != nil {
		t.Fatal(err)
	}
	out.Questions[0].Block = 2
	payload, _ := json.Marshal(out)

	mock := llm.NewMockProvider(llm.MockResponse{Content: payload})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), testInput()); err == nil {
		t.Fatal("expected error for unbalanced pillar distribution")
	}
}

func TestGenerate_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), testInput()); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}
