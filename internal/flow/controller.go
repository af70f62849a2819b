package flow

import (
	"context"
	"log"

	"github.com/radarpme/radarpme/internal/crm"
	"github.com/radarpme/radarpme/internal/questiongen"
	"github.com/radarpme/radarpme/internal/quiz"
	"github.com/radarpme/radarpme/internal/scoring"
	"github.com/radarpme/radarpme/internal/store"
)

// Step is a macro-state of the funnel.
type Step string

const (
	StepSegment    Step = "segment"
	StepGenerating Step = "generating"
	StepContact    Step = "contact"
	StepCompany    Step = "company"
	StepQuestions  Step = "questions"
	StepDone       Step = "done"
)

// Contact is the respondent data collected on the contact step.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// Company is the company data collected on the company step.
type Company struct {
	Name    string
	Segment string
	Size    string
}

// Data is the session-wide accumulator. Step drafts merge into it when
// a step is committed; answers only ever grow or get overwritten.
type Data struct {
	Contact Contact
	Company Company
	Answers quiz.AnswerSet
}

// Result is the bundle handed to the result view after submission. It
// is carried forward in memory, never re-fetched from storage.
type Result struct {
	LeadID       int
	Name         string
	Segment      string
	CompanySize  string
	Score        int
	Diagnosis    scoring.Diagnosis
	PillarScores []scoring.PillarScore
	Answers      quiz.AnswerSet
	Catalog      quiz.Catalog
	DealID       int
	DealOwner    string
}

// CRMClient is the slice of the CRM the flow needs. A nil client
// disables CRM sync entirely.
type CRMClient interface {
	CreateDeal(ctx context.Context, contact crm.Contact, company crm.Company, utm crm.UTM) (*crm.Deal, error)
	UpdateDeal(ctx context.Context, dealID int, up crm.DealUpdate) (*crm.Deal, error)
}

// LeadWriter persists the completed submission. This is the blocking
// side effect of the funnel.
type LeadWriter interface {
	CreateLead(ctx context.Context, data store.LeadData) (int, error)
}

// Controller drives one funnel session through its steps. It is not
// safe for concurrent use; each session owns exactly one controller.
type Controller struct {
	session *Session
	source  QuestionSource
	crm     CRMClient
	leads   LeadWriter

	step    Step
	catalog quiz.Catalog
	qIndex  int
	data    Data

	dealID          int
	dealCreateTried bool
	result          *Result
}

// NewController creates a controller positioned at the session's entry
// step. For vendor-link sessions with a known segment, the segment step
// is skipped.
func NewController(session *Session, source QuestionSource, crmClient CRMClient, leads LeadWriter) *Controller {
	c := &Controller{
		session: session,
		source:  source,
		crm:     crmClient,
		leads:   leads,
		data:    Data{Answers: quiz.AnswerSet{}},
		dealID:  session.Prefill.DealID,
	}

	switch session.Variant {
	case VendorLink:
		c.data.Company.Segment = session.Prefill.Segment
		c.data.Company.Size = session.Prefill.CompanySize
		if session.Prefill.Segment != "" {
			c.step = StepGenerating
		} else {
			c.step = StepSegment
		}
	default:
		c.step = StepContact
	}
	return c
}

// Step returns the current macro-state.
func (c *Controller) Step() Step { return c.step }

// Session returns the session this controller drives.
func (c *Controller) Session() *Session { return c.session }

// Data returns a snapshot of the accumulator, used to pre-populate
// step drafts on back navigation.
func (c *Controller) Data() Data { return c.data }

// Catalog returns the active catalog, nil before questions are loaded.
func (c *Controller) Catalog() quiz.Catalog { return c.catalog }

// QuestionIndex returns the current question cursor.
func (c *Controller) QuestionIndex() int { return c.qIndex }

// CurrentQuestion returns the question under the cursor.
func (c *Controller) CurrentQuestion() (quiz.Question, bool) {
	if c.step != StepQuestions || c.qIndex >= len(c.catalog) {
		return quiz.Question{}, false
	}
	return c.catalog[c.qIndex], true
}

// SelectedAnswer returns the previously recorded answer for the current
// question, so back navigation can highlight it.
func (c *Controller) SelectedAnswer() (quiz.AnswerValue, bool) {
	q, ok := c.CurrentQuestion()
	if !ok {
		return "", false
	}
	v, ok := c.data.Answers[q.ID]
	return v, ok
}

// Result returns the computed bundle after submission, nil before.
func (c *Controller) Result() *Result { return c.result }

// SubmitSegment commits the segment step (vendor-link only, when the
// inbound link carried no segment).
func (c *Controller) SubmitSegment(segment string) error {
	if c.step != StepSegment {
		return &ErrWrongStep{Got: c.step, Want: StepSegment}
	}
	if segment == "" {
		return &ErrMissingFields{Fields: []string{"segment"}}
	}
	c.data.Company.Segment = segment
	c.step = StepGenerating
	return nil
}

// Generate runs the question-generation collaborator. On failure the
// session stays on the generating step: no questions means no flow.
func (c *Controller) Generate(ctx context.Context) error {
	if c.step != StepGenerating {
		return &ErrWrongStep{Got: c.step, Want: StepGenerating}
	}

	catalog, err := c.source.Questions(ctx, c.generationInput())
	if err != nil {
		return &ErrGenerationFailed{Err: err}
	}

	c.catalog = catalog
	c.qIndex = 0
	c.step = StepQuestions
	return nil
}

// SubmitContact commits the contact step.
func (c *Controller) SubmitContact(contact Contact) error {
	if c.step != StepContact {
		return &ErrWrongStep{Got: c.step, Want: StepContact}
	}

	var missing []string
	if contact.Name == "" {
		missing = append(missing, "name")
	}
	if contact.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return &ErrMissingFields{Fields: missing}
	}

	c.data.Contact = contact
	c.step = StepCompany
	return nil
}

// SubmitCompany commits the company step. In the self-serve variant
// this registers the lead in the CRM (best-effort) and loads the
// questions; in the vendor-link variant the flow is complete and the
// submission runs.
func (c *Controller) SubmitCompany(ctx context.Context, company Company) error {
	if c.step != StepCompany {
		return &ErrWrongStep{Got: c.step, Want: StepCompany}
	}

	if company.Segment == "" {
		company.Segment = c.data.Company.Segment
	}

	var missing []string
	if company.Name == "" {
		missing = append(missing, "company")
	}
	if company.Segment == "" {
		missing = append(missing, "segment")
	}
	if company.Size == "" {
		missing = append(missing, "company_size")
	}
	if len(missing) > 0 {
		return &ErrMissingFields{Fields: missing}
	}

	c.data.Company = company

	if c.session.Variant == VendorLink {
		return c.complete(ctx)
	}

	c.ensureDeal(ctx)

	catalog, err := c.source.Questions(ctx, c.generationInput())
	if err != nil {
		return &ErrGenerationFailed{Err: err}
	}
	c.catalog = catalog
	c.qIndex = 0
	c.step = StepQuestions
	return nil
}

// Answer records the answer for the current question and advances the
// cursor. Answering the last question ends the question step: the
// self-serve variant submits, the vendor-link variant moves on to the
// contact step. On a persist failure the cursor stays put so the
// answer can be retried.
func (c *Controller) Answer(ctx context.Context, value quiz.AnswerValue) error {
	if c.step != StepQuestions {
		return &ErrWrongStep{Got: c.step, Want: StepQuestions}
	}

	q := c.catalog[c.qIndex]
	if !hasOption(q, value) {
		return &ErrMissingFields{Fields: []string{"answer"}}
	}
	c.data.Answers[q.ID] = value

	if c.qIndex < len(c.catalog)-1 {
		c.qIndex++
		return nil
	}

	if c.session.Variant == VendorLink {
		c.step = StepContact
		return nil
	}
	return c.complete(ctx)
}

// Back navigates one step backwards. Within questions it decrements
// the cursor; from the first question it returns to the prior
// non-question step. No recorded data is discarded.
func (c *Controller) Back() {
	switch c.step {
	case StepQuestions:
		if c.qIndex > 0 {
			c.qIndex--
			return
		}
		if c.session.Variant == SelfServe {
			c.step = StepCompany
			return
		}
		// Vendor-link: the only prior input step is segment, and only
		// when the inbound link didn't carry one.
		if c.session.Prefill.Segment == "" {
			c.step = StepSegment
		}
	case StepCompany:
		c.step = StepContact
	case StepContact:
		if c.session.Variant == VendorLink {
			c.step = StepQuestions
		}
	}
}

// complete runs the submission: score, persist (fatal on failure),
// CRM sync (best-effort), result bundle.
func (c *Controller) complete(ctx context.Context) error {
	score := scoring.OverallScore(c.data.Answers, c.catalog)
	pillars := scoring.PillarScores(c.data.Answers, c.catalog)
	diag := scoring.Classify(score)

	c.ensureDeal(ctx)

	leadID, err := c.leads.CreateLead(ctx, store.LeadData{
		Name:           c.data.Contact.Name,
		Email:          c.data.Contact.Email,
		Phone:          c.data.Contact.Phone,
		Company:        c.data.Company.Name,
		Segment:        c.data.Company.Segment,
		CompanySize:    c.data.Company.Size,
		Score:          score,
		Answers:        answersMap(c.data.Answers),
		DiagnosisLevel: string(diag.Level),
		PillarScores:   pillarMap(pillars),
		CRMDealID:      c.dealID,
	})
	if err != nil {
		return &ErrPersistFailed{Err: err}
	}

	owner := c.syncDeal(ctx, score, diag.Level, pillars)

	c.result = &Result{
		LeadID:       leadID,
		Name:         c.data.Contact.Name,
		Segment:      c.data.Company.Segment,
		CompanySize:  c.data.Company.Size,
		Score:        score,
		Diagnosis:    diag,
		PillarScores: pillars,
		Answers:      c.data.Answers,
		Catalog:      c.catalog,
		DealID:       c.dealID,
		DealOwner:    owner,
	}
	c.step = StepDone
	return nil
}

// ensureDeal creates the CRM deal once per session. Failures are
// logged and swallowed.
func (c *Controller) ensureDeal(ctx context.Context) {
	if c.crm == nil || c.dealID != 0 || c.dealCreateTried {
		return
	}
	c.dealCreateTried = true

	deal, err := c.crm.CreateDeal(ctx, c.crmContact(), c.crmCompany(), c.session.UTM)
	if err != nil {
		log.Printf("warning: CRM deal creation failed for session %s: %v", c.session.ID, err)
		return
	}
	c.dealID = deal.ID
}

// syncDeal pushes the final result to the CRM. Best-effort: a failure
// never blocks the result view. Returns the deal owner name when known.
func (c *Controller) syncDeal(ctx context.Context, score int, level scoring.Tier, pillars []scoring.PillarScore) string {
	if c.crm == nil || c.dealID == 0 {
		return ""
	}

	deal, err := c.crm.UpdateDeal(ctx, c.dealID, crm.DealUpdate{
		Contact:        c.crmContact(),
		Company:        c.crmCompany(),
		Score:          score,
		DiagnosisLevel: level,
		PillarScores:   pillars,
	})
	if err != nil {
		log.Printf("warning: CRM deal update failed for session %s: %v", c.session.ID, err)
		return ""
	}
	return deal.OwnerName
}

func (c *Controller) generationInput() questiongen.Input {
	in := questiongen.Input{
		Segment:     c.data.Company.Segment,
		CompanySize: c.data.Company.Size,
		Revenue:     c.session.Prefill.Revenue,
		JobTitle:    c.session.Prefill.JobTitle,
	}
	if in.CompanySize == "" {
		in.CompanySize = c.session.Prefill.CompanySize
	}
	return in
}

func (c *Controller) crmContact() crm.Contact {
	return crm.Contact{
		Name:  c.data.Contact.Name,
		Email: c.data.Contact.Email,
		Phone: c.data.Contact.Phone,
	}
}

func (c *Controller) crmCompany() crm.Company {
	return crm.Company{
		Name:    c.data.Company.Name,
		Segment: c.data.Company.Segment,
		Size:    c.data.Company.Size,
	}
}

func hasOption(q quiz.Question, value quiz.AnswerValue) bool {
	for _, opt := range q.Answers {
		if opt.Value == value {
			return true
		}
	}
	return false
}

func answersMap(answers quiz.AnswerSet) map[string]string {
	m := make(map[string]string, len(answers))
	for id, v := range answers {
		m[id] = string(v)
	}
	return m
}

func pillarMap(pillars []scoring.PillarScore) map[string]int {
	m := make(map[string]int, len(pillars))
	for _, p := range pillars {
		m[p.Name] = p.Score
	}
	return m
}
