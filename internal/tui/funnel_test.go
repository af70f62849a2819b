package tui

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/radarpme/radarpme/internal/crm"
	"github.com/radarpme/radarpme/internal/diagnosis"
	"github.com/radarpme/radarpme/internal/flow"
	"github.com/radarpme/radarpme/internal/result"
	"github.com/radarpme/radarpme/internal/store"
)

type memLeads struct {
	created  int
	attached int
}

func (m *memLeads) CreateLead(context.Context, store.LeadData) (int, error) {
	m.created++
	return 7, nil
}

func (m *memLeads) AttachDiagnosis(context.Context, int, map[string]int, json.RawMessage) error {
	m.attached++
	return nil
}

func newTestFunnel() (*Funnel, *memLeads) {
	leads := &memLeads{}
	session := flow.NewSession(flow.SelfServe, crm.UTM{}, flow.Prefill{})
	ctrl := flow.NewController(session, flow.StaticSource{}, nil, leads)
	results := result.New(diagnosis.NewService(nil), leads, 0)
	f := New(ctrl, results)
	f.width = 100
	f.height = 40
	return f, leads
}

func keyRune(r rune) tea.Msg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func keyCode(code rune) tea.Msg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(f *Funnel, s string) {
	for _, r := range s {
		f.Update(keyRune(r))
	}
}

// fillForm types a value into each input, advancing with enter. The
// final enter commits the step.
func fillForm(f *Funnel, values ...string) {
	for _, v := range values {
		typeText(f, v)
		f.Update(keyCode(tea.KeyEnter))
	}
}

func TestFormValidationKeepsPhase(t *testing.T) {
	f, _ := newTestFunnel()

	// Submit with every field empty.
	f.Update(keyCode(tea.KeyEnter))
	f.Update(keyCode(tea.KeyEnter))
	f.Update(keyCode(tea.KeyEnter))

	if f.phase != phaseContact {
		t.Fatalf("phase = %v, want contact", f.phase)
	}
	if f.errMsg == "" {
		t.Error("expected a validation message")
	}
}

func TestFormsAdvanceToQuestions(t *testing.T) {
	f, _ := newTestFunnel()

	fillForm(f, "Ana", "ana@pet.com.br", "11999990000")
	if f.phase != phaseCompany {
		t.Fatalf("phase after contact = %v, want company", f.phase)
	}

	fillForm(f, "PetCare", "pet shop", "1-5")
	if f.phase != phaseQuestions {
		t.Fatalf("phase after company = %v, want questions", f.phase)
	}
	if _, ok := f.ctrl.CurrentQuestion(); !ok {
		t.Fatal("no current question after entering questions phase")
	}
}

func TestEscFromCompanyReturnsToContact(t *testing.T) {
	f, _ := newTestFunnel()

	fillForm(f, "Ana", "ana@pet.com.br", "")
	f.Update(keyCode(tea.KeyEscape))

	if f.phase != phaseContact {
		t.Fatalf("phase = %v, want contact", f.phase)
	}
	// The accumulator pre-populates the inputs.
	if got := f.inputs[0].Value(); got != "Ana" {
		t.Errorf("name input = %q, want %q", got, "Ana")
	}
}

// answer selects the option at the given index and confirms it,
// running the resulting command synchronously.
func answer(f *Funnel, option int) tea.Msg {
	for i := 0; i < option; i++ {
		f.Update(keyRune('j'))
	}
	_, cmd := f.Update(keyCode(tea.KeyEnter))
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestAnswerAdvancesCursor(t *testing.T) {
	f, _ := newTestFunnel()
	fillForm(f, "Ana", "ana@pet.com.br", "")
	fillForm(f, "PetCare", "pet shop", "1-5")

	msg := answer(f, 0)
	f.Update(msg)

	if f.phase != phaseQuestions {
		t.Fatalf("phase = %v, want questions", f.phase)
	}
	if got := f.ctrl.QuestionIndex(); got != 1 {
		t.Errorf("question index = %d, want 1", got)
	}
}

func TestFullRunReachesResult(t *testing.T) {
	f, leads := newTestFunnel()
	fillForm(f, "Ana", "ana@pet.com.br", "")
	fillForm(f, "PetCare", "pet shop", "1-5")

	for i := 0; i < 20; i++ {
		msg := answer(f, 2) // "Não"
		_, cmd := f.Update(msg)
		if cmd != nil {
			f.Update(cmd())
		}
	}

	if f.phase != phaseResult {
		t.Fatalf("phase = %v, want result", f.phase)
	}
	if leads.created != 1 {
		t.Errorf("leads created = %d, want 1", leads.created)
	}
	if f.view == nil || f.view.Score != 0 {
		t.Fatal("result view missing or score not zero")
	}

	out := f.content()
	if !strings.Contains(out, "0/100") {
		t.Errorf("result view does not show the score:\n%s", out)
	}
}

func TestContentPerPhase(t *testing.T) {
	f, _ := newTestFunnel()

	if out := f.content(); !strings.Contains(out, "voce@empresa.com.br") {
		t.Error("contact view missing email placeholder")
	}

	fillForm(f, "Ana", "ana@pet.com.br", "")
	fillForm(f, "PetCare", "pet shop", "1-5")

	if got := f.stepIndicator(); got != "Pergunta 1/20" {
		t.Errorf("step indicator = %q, want %q", got, "Pergunta 1/20")
	}
	q, _ := f.ctrl.CurrentQuestion()
	if out := f.content(); !strings.Contains(out, q.Text) {
		t.Error("question view missing question text")
	}
}
