package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radarpme/radarpme/internal/diagnosis"
	"github.com/radarpme/radarpme/internal/result"
	"github.com/radarpme/radarpme/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeLeadRepo is an in-memory store.LeadRepo.
type fakeLeadRepo struct {
	mu    sync.Mutex
	leads []*store.Lead
}

func (f *fakeLeadRepo) CreateLead(_ context.Context, data store.LeadData) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lead := &store.Lead{ID: len(f.leads) + 1, LeadData: data, CreatedAt: time.Now()}
	f.leads = append(f.leads, lead)
	return lead.ID, nil
}

func (f *fakeLeadRepo) AttachDiagnosis(_ context.Context, id int, pillars map[string]int, raw json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.leads {
		if l.ID == id {
			l.PillarScores = pillars
			l.AIDiagnosis = raw
			return nil
		}
	}
	return fmt.Errorf("lead %d not found", id)
}

func (f *fakeLeadRepo) Get(_ context.Context, id int) (*store.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.leads {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLeadRepo) Recent(_ context.Context, limit int) ([]*store.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*store.Lead, 0, len(f.leads))
	for i := len(f.leads) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.leads[i])
	}
	return out, nil
}

func newTestServer(repo *fakeLeadRepo) *Server {
	results := result.New(diagnosis.NewService(nil), repo, 0)
	return New(repo, nil, nil, results)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	} else {
		buf.WriteString("{}")
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestHealth(t *testing.T) {
	router := newTestServer(&fakeLeadRepo{}).Router()

	w, body := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestSelfServeFunnel(t *testing.T) {
	repo := &fakeLeadRepo{}
	router := newTestServer(repo).Router()

	w, body := doJSON(t, router, http.MethodPost, "/api/v1/sessions", map[string]any{
		"utm": map[string]string{"utm_source": "instagram"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "contact", body["step"])
	id := body["session_id"].(string)
	base := "/api/v1/sessions/" + id

	w, body = doJSON(t, router, http.MethodPost, base+"/contact", map[string]string{
		"name": "Marina", "email": "marina@petshop.com", "phone": "11999990000",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "company", body["step"])

	w, body = doJSON(t, router, http.MethodPost, base+"/company", map[string]string{
		"company": "Pet Mimo", "segment": "pet shop", "company_size": "1-5",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "questions", body["step"])
	require.NotNil(t, body["question"])
	assert.EqualValues(t, 20, body["total_questions"])

	for i := 0; i < 20; i++ {
		w, body = doJSON(t, router, http.MethodPost, base+"/answers", map[string]string{
			"value": "positive",
		})
		require.Equal(t, http.StatusOK, w.Code, "answer %d", i)
	}
	assert.Equal(t, "done", body["step"])

	w, body = doJSON(t, router, http.MethodPost, base+"/result", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 100, body["score"])
	assert.Equal(t, true, body["fallback"])
	checklist := body["checklist"].(map[string]any)
	assert.Len(t, checklist, 5)
	tier := body["tier"].(map[string]any)
	assert.Equal(t, "high", tier["level"])

	// The lead landed in the table feed with the AI attach applied.
	w, body = doJSON(t, router, http.MethodGet, "/api/v1/leads", nil)
	require.Equal(t, http.StatusOK, w.Code)
	leads := body["leads"].([]any)
	require.Len(t, leads, 1)
	lead := leads[0].(map[string]any)
	assert.EqualValues(t, 100, lead["score"])
	assert.Equal(t, "high", lead["diagnosis_level"])
}

func TestContactValidation(t *testing.T) {
	router := newTestServer(&fakeLeadRepo{}).Router()

	_, body := doJSON(t, router, http.MethodPost, "/api/v1/sessions", nil)
	base := "/api/v1/sessions/" + body["session_id"].(string)

	w, body := doJSON(t, router, http.MethodPost, base+"/contact", map[string]string{
		"name": "Marina",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, body["fields"], "email")
	// Step did not advance.
	assert.Equal(t, "contact", body["step"])
}

func TestAnswerOutOfOrderConflicts(t *testing.T) {
	router := newTestServer(&fakeLeadRepo{}).Router()

	_, body := doJSON(t, router, http.MethodPost, "/api/v1/sessions", nil)
	base := "/api/v1/sessions/" + body["session_id"].(string)

	w, _ := doJSON(t, router, http.MethodPost, base+"/answers", map[string]string{"value": "positive"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBackFromFirstQuestion(t *testing.T) {
	router := newTestServer(&fakeLeadRepo{}).Router()

	_, body := doJSON(t, router, http.MethodPost, "/api/v1/sessions", nil)
	base := "/api/v1/sessions/" + body["session_id"].(string)

	doJSON(t, router, http.MethodPost, base+"/contact", map[string]string{
		"name": "Marina", "email": "m@x.com",
	})
	doJSON(t, router, http.MethodPost, base+"/company", map[string]string{
		"company": "Pet Mimo", "segment": "pet shop", "company_size": "1-5",
	})

	w, body := doJSON(t, router, http.MethodPost, base+"/back", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "company", body["step"])
}

func TestUnknownSession(t *testing.T) {
	router := newTestServer(&fakeLeadRepo{}).Router()

	w, _ := doJSON(t, router, http.MethodGet, "/api/v1/sessions/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVendorLinkUnavailableWithoutGenerator(t *testing.T) {
	router := newTestServer(&fakeLeadRepo{}).Router()

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/sessions", map[string]any{
		"variant": "vendor-link",
	})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestResultBeforeSubmissionConflicts(t *testing.T) {
	router := newTestServer(&fakeLeadRepo{}).Router()

	_, body := doJSON(t, router, http.MethodPost, "/api/v1/sessions", nil)
	base := "/api/v1/sessions/" + body["session_id"].(string)

	w, _ := doJSON(t, router, http.MethodPost, base+"/result", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLeadsLimitValidation(t *testing.T) {
	router := newTestServer(&fakeLeadRepo{}).Router()

	w, _ := doJSON(t, router, http.MethodGet, "/api/v1/leads?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
