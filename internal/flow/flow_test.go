package flow

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/radarpme/radarpme/internal/crm"
	"github.com/radarpme/radarpme/internal/questiongen"
	"github.com/radarpme/radarpme/internal/quiz"
	"github.com/radarpme/radarpme/internal/scoring"
	"github.com/radarpme/radarpme/internal/store"
)

type fakeCRM struct {
	createCalls int
	updateCalls int
	createErr   error
	updateErr   error
	lastUpdate  crm.DealUpdate
}

func (f *fakeCRM) CreateDeal(_ context.Context, _ crm.Contact, _ crm.Company, _ crm.UTM) (*crm.Deal, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &crm.Deal{ID: 77, OwnerName: "Paulo"}, nil
}

func (f *fakeCRM) UpdateDeal(_ context.Context, dealID int, up crm.DealUpdate) (*crm.Deal, error) {
	f.updateCalls++
	f.lastUpdate = up
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &crm.Deal{ID: dealID, OwnerName: "Paulo"}, nil
}

type fakeLeads struct {
	calls int
	err   error
	last  store.LeadData
}

func (f *fakeLeads) CreateLead(_ context.Context, data store.LeadData) (int, error) {
	f.calls++
	f.last = data
	if f.err != nil {
		return 0, f.err
	}
	return f.calls, nil
}

// scaledSource serves a deterministic 5-point catalog, standing in for
// the LLM generator.
type scaledSource struct {
	err error
}

func (s scaledSource) Questions(context.Context, questiongen.Input) (quiz.Catalog, error) {
	if s.err != nil {
		return nil, s.err
	}
	var catalog quiz.Catalog
	for block := 1; block <= 5; block++ {
		pillar, _ := quiz.PillarForBlock(block)
		for i := 0; i < quiz.QuestionsPerPillar; i++ {
			var opts []quiz.AnswerOption
			for n := 1; n <= 5; n++ {
				opts = append(opts, quiz.AnswerOption{
					Value:  quiz.ScaleValue(n),
					Label:  "opção " + strconv.Itoa(n),
					Points: n,
				})
			}
			catalog = append(catalog, quiz.Question{
				ID:         "g" + strconv.Itoa(len(catalog)+1),
				Block:      block,
				BlockTitle: string(pillar),
				Text:       "pergunta " + strconv.Itoa(len(catalog)+1),
				Answers:    opts,
			})
		}
	}
	return catalog, nil
}

func selfServeController(crmClient CRMClient, leads LeadWriter) *Controller {
	session := NewSession(SelfServe, crm.UTM{Source: "instagram"}, Prefill{})
	return NewController(session, StaticSource{}, crmClient, leads)
}

// advance runs contact and company for a self-serve session.
func advanceToQuestions(t *testing.T, c *Controller) {
	t.Helper()
	if err := c.SubmitContact(Contact{Name: "Marina", Email: "marina@petshop.com", Phone: "11999990000"}); err != nil {
		t.Fatalf("submit contact: %v", err)
	}
	if err := c.SubmitCompany(context.Background(), Company{Name: "Pet Mimo", Segment: "pet shop", Size: "1-5"}); err != nil {
		t.Fatalf("submit company: %v", err)
	}
	if c.Step() != StepQuestions {
		t.Fatalf("step = %q, want questions", c.Step())
	}
}

func TestSelfServeAllNegative(t *testing.T) {
	crmFake := &fakeCRM{updateErr: errors.New("crm down")}
	leads := &fakeLeads{}
	c := selfServeController(crmFake, leads)

	advanceToQuestions(t, c)
	if crmFake.createCalls != 1 {
		t.Fatalf("CRM create calls = %d, want 1 after company step", crmFake.createCalls)
	}

	ctx := context.Background()
	for i := 0; i < quiz.CatalogSize; i++ {
		if err := c.Answer(ctx, quiz.AnswerNegative); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}

	if c.Step() != StepDone {
		t.Fatalf("step = %q, want done", c.Step())
	}
	if leads.calls != 1 {
		t.Fatalf("persist calls = %d, want exactly 1", leads.calls)
	}
	if leads.last.Score != 0 {
		t.Errorf("persisted score = %d, want 0", leads.last.Score)
	}
	if leads.last.DiagnosisLevel != string(scoring.TierLow) {
		t.Errorf("persisted level = %q, want low", leads.last.DiagnosisLevel)
	}
	// CRM update runs exactly once even though it is failing.
	if crmFake.updateCalls != 1 {
		t.Errorf("CRM update calls = %d, want exactly 1", crmFake.updateCalls)
	}

	res := c.Result()
	if res == nil {
		t.Fatal("expected result bundle after submission")
	}
	if res.Score != 0 || res.Diagnosis.Level != scoring.TierLow {
		t.Errorf("result = score %d level %s", res.Score, res.Diagnosis.Level)
	}
	if len(res.PillarScores) != 5 {
		t.Errorf("result pillar scores = %d entries, want 5", len(res.PillarScores))
	}
	if res.DealOwner != "" {
		t.Errorf("deal owner = %q, want empty on failed update", res.DealOwner)
	}
}

func TestBackNavigation(t *testing.T) {
	c := selfServeController(nil, &fakeLeads{})
	advanceToQuestions(t, c)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := c.Answer(ctx, quiz.AnswerPositive); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}
	if c.QuestionIndex() != 5 {
		t.Fatalf("cursor = %d, want 5", c.QuestionIndex())
	}

	for i := 0; i < 5; i++ {
		c.Back()
	}
	if c.Step() != StepQuestions || c.QuestionIndex() != 0 {
		t.Fatalf("after 5 backs: step %q index %d, want questions/0", c.Step(), c.QuestionIndex())
	}

	c.Back()
	if c.Step() != StepCompany {
		t.Fatalf("after 6th back: step = %q, want company", c.Step())
	}

	// All answers are still in the accumulator.
	if got := len(c.Data().Answers); got != 5 {
		t.Fatalf("accumulator has %d answers, want 5", got)
	}
}

func TestBackPrePopulatesSelectedAnswer(t *testing.T) {
	c := selfServeController(nil, &fakeLeads{})
	advanceToQuestions(t, c)

	ctx := context.Background()
	if err := c.Answer(ctx, quiz.AnswerNeutral); err != nil {
		t.Fatalf("answer: %v", err)
	}
	c.Back()

	v, ok := c.SelectedAnswer()
	if !ok || v != quiz.AnswerNeutral {
		t.Fatalf("selected answer = %q/%v, want neutral", v, ok)
	}

	// Changing the answer overwrites, never duplicates.
	if err := c.Answer(ctx, quiz.AnswerPositive); err != nil {
		t.Fatalf("re-answer: %v", err)
	}
	if got := len(c.Data().Answers); got != 1 {
		t.Fatalf("accumulator has %d answers, want 1", got)
	}
}

func TestVendorLinkFlow(t *testing.T) {
	crmFake := &fakeCRM{}
	leads := &fakeLeads{}
	session := NewSession(VendorLink, crm.UTM{}, Prefill{
		Segment: "pet shop", CompanySize: "1-5", DealID: 42,
	})
	c := NewController(session, scaledSource{}, crmFake, leads)

	// Prefilled segment skips the segment step.
	if c.Step() != StepGenerating {
		t.Fatalf("entry step = %q, want generating", c.Step())
	}

	ctx := context.Background()
	if err := c.Generate(ctx); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if c.Step() != StepQuestions {
		t.Fatalf("step = %q, want questions", c.Step())
	}

	for i := 0; i < quiz.CatalogSize; i++ {
		if err := c.Answer(ctx, quiz.ScaleValue(5)); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}
	if c.Step() != StepContact {
		t.Fatalf("step after last answer = %q, want contact", c.Step())
	}

	if err := c.SubmitContact(Contact{Name: "Marina", Email: "marina@petshop.com"}); err != nil {
		t.Fatalf("submit contact: %v", err)
	}
	if err := c.SubmitCompany(ctx, Company{Name: "Pet Mimo", Size: "1-5"}); err != nil {
		t.Fatalf("submit company: %v", err)
	}

	if c.Step() != StepDone {
		t.Fatalf("step = %q, want done", c.Step())
	}
	if leads.calls != 1 {
		t.Fatalf("persist calls = %d, want 1", leads.calls)
	}
	if leads.last.Score != 100 {
		t.Errorf("persisted score = %d, want 100", leads.last.Score)
	}
	// The prefilled deal is updated, never re-created.
	if crmFake.createCalls != 0 {
		t.Errorf("CRM create calls = %d, want 0 with prefilled deal", crmFake.createCalls)
	}
	if crmFake.updateCalls != 1 {
		t.Errorf("CRM update calls = %d, want 1", crmFake.updateCalls)
	}
	if crmFake.lastUpdate.DiagnosisLevel != scoring.TierHigh {
		t.Errorf("update level = %q, want high", crmFake.lastUpdate.DiagnosisLevel)
	}

	res := c.Result()
	if res == nil || res.DealID != 42 || res.DealOwner != "Paulo" {
		t.Fatalf("result = %+v, want deal 42 owned by Paulo", res)
	}
}

func TestVendorLinkWithoutSegmentAsksForIt(t *testing.T) {
	session := NewSession(VendorLink, crm.UTM{}, Prefill{})
	c := NewController(session, scaledSource{}, nil, &fakeLeads{})

	if c.Step() != StepSegment {
		t.Fatalf("entry step = %q, want segment", c.Step())
	}

	err := c.SubmitSegment("")
	var missing *ErrMissingFields
	if !errors.As(err, &missing) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}

	if err := c.SubmitSegment("restaurante"); err != nil {
		t.Fatalf("submit segment: %v", err)
	}
	if c.Step() != StepGenerating {
		t.Fatalf("step = %q, want generating", c.Step())
	}
}

func TestVendorLinkGenerationFailureBlocks(t *testing.T) {
	session := NewSession(VendorLink, crm.UTM{}, Prefill{Segment: "pet shop"})
	c := NewController(session, scaledSource{err: fmt.Errorf("llm down")}, nil, &fakeLeads{})

	err := c.Generate(context.Background())
	var genErr *ErrGenerationFailed
	if !errors.As(err, &genErr) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
	// No forward progress, no static fallback.
	if c.Step() != StepGenerating {
		t.Fatalf("step = %q, want generating", c.Step())
	}
	if c.Catalog() != nil {
		t.Fatal("catalog must stay empty after failed generation")
	}
}

func TestPersistFailureHaltsAndIsRetryable(t *testing.T) {
	crmFake := &fakeCRM{}
	leads := &fakeLeads{err: errors.New("disk full")}
	c := selfServeController(crmFake, leads)
	advanceToQuestions(t, c)

	ctx := context.Background()
	for i := 0; i < quiz.CatalogSize-1; i++ {
		if err := c.Answer(ctx, quiz.AnswerPositive); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}

	err := c.Answer(ctx, quiz.AnswerPositive)
	var persistErr *ErrPersistFailed
	if !errors.As(err, &persistErr) {
		t.Fatalf("expected ErrPersistFailed, got %v", err)
	}
	if c.Step() != StepQuestions {
		t.Fatalf("step = %q, want questions (halted, retryable)", c.Step())
	}
	if crmFake.updateCalls != 0 {
		t.Fatalf("CRM updated before persistence succeeded")
	}

	// Retry succeeds.
	leads.err = nil
	if err := c.Answer(ctx, quiz.AnswerPositive); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if c.Step() != StepDone {
		t.Fatalf("step = %q, want done", c.Step())
	}
	if crmFake.updateCalls != 1 {
		t.Fatalf("CRM update calls = %d, want 1", crmFake.updateCalls)
	}
}

func TestCRMCreateFailureDoesNotBlock(t *testing.T) {
	crmFake := &fakeCRM{createErr: errors.New("crm down")}
	leads := &fakeLeads{}
	c := selfServeController(crmFake, leads)

	advanceToQuestions(t, c)

	ctx := context.Background()
	for i := 0; i < quiz.CatalogSize; i++ {
		if err := c.Answer(ctx, quiz.AnswerPositive); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}
	if c.Step() != StepDone {
		t.Fatalf("step = %q, want done despite CRM outage", c.Step())
	}
	if leads.calls != 1 {
		t.Fatalf("persist calls = %d, want 1", leads.calls)
	}
	// Creation is attempted once and never retried mid-session.
	if crmFake.createCalls != 1 {
		t.Fatalf("CRM create calls = %d, want 1", crmFake.createCalls)
	}
}

func TestStepValidation(t *testing.T) {
	c := selfServeController(nil, &fakeLeads{})

	err := c.SubmitContact(Contact{Name: "Marina"})
	var missing *ErrMissingFields
	if !errors.As(err, &missing) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if c.Step() != StepContact {
		t.Fatalf("step advanced past invalid contact draft")
	}

	var wrong *ErrWrongStep
	if err := c.SubmitCompany(context.Background(), Company{}); !errors.As(err, &wrong) {
		t.Fatalf("expected ErrWrongStep, got %v", err)
	}
}
