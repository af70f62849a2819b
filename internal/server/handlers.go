package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/radarpme/radarpme/internal/crm"
	"github.com/radarpme/radarpme/internal/flow"
	"github.com/radarpme/radarpme/internal/quiz"
	"github.com/radarpme/radarpme/internal/result"
)

type createSessionRequest struct {
	Variant string `json:"variant"`
	UTM     struct {
		Source   string `json:"utm_source"`
		Medium   string `json:"utm_medium"`
		Campaign string `json:"utm_campaign"`
	} `json:"utm"`
	Prefill struct {
		Segment     string `json:"segment"`
		CompanySize string `json:"company_size"`
		Revenue     string `json:"revenue"`
		JobTitle    string `json:"job_title"`
		DealID      int    `json:"deal_id"`
	} `json:"prefill"`
}

type contactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type companyRequest struct {
	Company     string `json:"company"`
	Segment     string `json:"segment"`
	CompanySize string `json:"company_size"`
}

type segmentRequest struct {
	Segment string `json:"segment"`
}

type answerRequest struct {
	Value string `json:"value"`
}

func (s *Server) createSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	variant := flow.Variant(req.Variant)
	switch variant {
	case "":
		variant = flow.SelfServe
	case flow.SelfServe, flow.VendorLink:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown variant"})
		return
	}

	source := s.staticSrc
	if variant == flow.VendorLink {
		if s.generatedSrc == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "question generation is not configured"})
			return
		}
		source = s.generatedSrc
	}

	session := flow.NewSession(variant, crm.UTM{
		Source:   req.UTM.Source,
		Medium:   req.UTM.Medium,
		Campaign: req.UTM.Campaign,
	}, flow.Prefill{
		Segment:     req.Prefill.Segment,
		CompanySize: req.Prefill.CompanySize,
		Revenue:     req.Prefill.Revenue,
		JobTitle:    req.Prefill.JobTitle,
		DealID:      req.Prefill.DealID,
	})

	ctrl := flow.NewController(session, source, s.crm, s.leads)
	entry := s.sessions.add(ctrl)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	// A vendor-link session with a known segment goes straight into
	// generation; the client is still on its loading screen.
	if ctrl.Step() == flow.StepGenerating {
		if err := ctrl.Generate(c.Request.Context()); err != nil {
			c.JSON(http.StatusBadGateway, stateWith(ctrl, gin.H{"error": err.Error()}))
			return
		}
	}

	c.JSON(http.StatusCreated, state(ctrl))
}

func (s *Server) getSession(c *gin.Context) {
	entry, ok := s.session(c)
	if !ok {
		return
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	c.JSON(http.StatusOK, state(entry.ctrl))
}

func (s *Server) submitContact(c *gin.Context) {
	entry, ok := s.session(c)
	if !ok {
		return
	}
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	err := entry.ctrl.SubmitContact(flow.Contact{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	s.respond(c, entry.ctrl, err)
}

func (s *Server) submitCompany(c *gin.Context) {
	entry, ok := s.session(c)
	if !ok {
		return
	}
	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	err := entry.ctrl.SubmitCompany(c.Request.Context(), flow.Company{
		Name:    req.Company,
		Segment: req.Segment,
		Size:    req.CompanySize,
	})
	s.respond(c, entry.ctrl, err)
}

// submitSegment commits the segment step and runs generation. Posting
// again while stuck on the generating step retries generation.
func (s *Server) submitSegment(c *gin.Context) {
	entry, ok := s.session(c)
	if !ok {
		return
	}
	var req segmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	ctrl := entry.ctrl
	if ctrl.Step() == flow.StepSegment {
		if err := ctrl.SubmitSegment(req.Segment); err != nil {
			s.respond(c, ctrl, err)
			return
		}
	}
	if ctrl.Step() == flow.StepGenerating {
		if err := ctrl.Generate(c.Request.Context()); err != nil {
			s.respond(c, ctrl, err)
			return
		}
	}
	c.JSON(http.StatusOK, state(ctrl))
}

func (s *Server) submitAnswer(c *gin.Context) {
	entry, ok := s.session(c)
	if !ok {
		return
	}
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	err := entry.ctrl.Answer(c.Request.Context(), quiz.AnswerValue(req.Value))
	s.respond(c, entry.ctrl, err)
}

func (s *Server) goBack(c *gin.Context) {
	entry, ok := s.session(c)
	if !ok {
		return
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.ctrl.Back()
	c.JSON(http.StatusOK, state(entry.ctrl))
}

// buildResult resolves the diagnosis for a completed session. The call
// blocks for at least the configured loading duration; repeated calls
// return the cached view.
func (s *Server) buildResult(c *gin.Context) {
	entry, ok := s.session(c)
	if !ok {
		return
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.view != nil {
		c.JSON(http.StatusOK, resultPayload(entry.view))
		return
	}

	res := entry.ctrl.Result()
	if res == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "session not submitted yet"})
		return
	}

	entry.view = s.results.Build(c.Request.Context(), res)
	c.JSON(http.StatusOK, resultPayload(entry.view))
}

func (s *Server) listLeads(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	leads, err := s.leads.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query leads failed"})
		return
	}

	out := make([]gin.H, 0, len(leads))
	for _, l := range leads {
		out = append(out, gin.H{
			"id":              l.ID,
			"name":            l.Name,
			"email":           l.Email,
			"phone":           l.Phone,
			"company":         l.Company,
			"segment":         l.Segment,
			"company_size":    l.CompanySize,
			"score":           l.Score,
			"diagnosis_level": l.DiagnosisLevel,
			"pillar_scores":   l.PillarScores,
			"created_at":      l.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"leads": out})
}

func (s *Server) session(c *gin.Context) (*sessionEntry, bool) {
	entry, ok := s.sessions.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}
	return entry, true
}

// respond maps flow errors to HTTP statuses and otherwise returns the
// session state.
func (s *Server) respond(c *gin.Context, ctrl *flow.Controller, err error) {
	if err == nil {
		c.JSON(http.StatusOK, state(ctrl))
		return
	}

	var (
		missing *flow.ErrMissingFields
		wrong   *flow.ErrWrongStep
		genErr  *flow.ErrGenerationFailed
		persist *flow.ErrPersistFailed
	)
	switch {
	case errors.As(err, &missing):
		c.JSON(http.StatusUnprocessableEntity, stateWith(ctrl, gin.H{
			"error":  "missing required fields",
			"fields": missing.Fields,
		}))
	case errors.As(err, &wrong):
		c.JSON(http.StatusConflict, stateWith(ctrl, gin.H{"error": err.Error()}))
	case errors.As(err, &genErr):
		c.JSON(http.StatusBadGateway, stateWith(ctrl, gin.H{"error": err.Error()}))
	case errors.As(err, &persist):
		c.JSON(http.StatusInternalServerError, stateWith(ctrl, gin.H{
			"error":     "could not save your answers, please try again",
			"retryable": true,
		}))
	default:
		c.JSON(http.StatusInternalServerError, stateWith(ctrl, gin.H{"error": err.Error()}))
	}
}

// state renders the session for the client: current step plus, on the
// question step, the question under the cursor.
func state(ctrl *flow.Controller) gin.H {
	return stateWith(ctrl, gin.H{})
}

func stateWith(ctrl *flow.Controller, extra gin.H) gin.H {
	out := gin.H{
		"session_id": ctrl.Session().ID,
		"variant":    ctrl.Session().Variant,
		"step":       ctrl.Step(),
	}
	if q, ok := ctrl.CurrentQuestion(); ok {
		out["question"] = q
		out["question_index"] = ctrl.QuestionIndex()
		out["total_questions"] = len(ctrl.Catalog())
		if v, answered := ctrl.SelectedAnswer(); answered {
			out["selected"] = v
		}
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

func resultPayload(v *result.View) gin.H {
	return gin.H{
		"lead_id":      v.LeadID,
		"name":         v.Name,
		"segment":      v.Segment,
		"company_size": v.CompanySize,
		"score":        v.Score,
		"tier": gin.H{
			"level":          v.Diagnosis.Level,
			"emoji":          v.Diagnosis.Emoji,
			"title":          v.Diagnosis.Title,
			"description":    v.Diagnosis.Description,
			"recommendation": v.Diagnosis.Recommendation,
		},
		"summary":       v.AI.Summary,
		"checklist":     v.AI.Checklist,
		"fallback":      v.AI.Fallback,
		"pillar_scores": v.PillarScores,
		"deal_owner":    v.DealOwner,
	}
}
