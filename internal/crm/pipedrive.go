// Package crm talks to the Pipedrive deal pipeline. Every operation here
// is best-effort from the funnel's point of view: callers log failures
// and move on, they never block the respondent on the CRM.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a minimal Pipedrive REST client covering the funnel's needs:
// person/org/deal creation, deal update with the final score, and notes.
type Client struct {
	baseURL    string
	apiToken   string
	pipelineID int
	stageID    int
	httpClient *http.Client
}

// New creates a Pipedrive client from config.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiToken:   cfg.APIToken,
		pipelineID: cfg.PipelineID,
		stageID:    cfg.StageID,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// apiEnvelope is the common Pipedrive response wrapper.
type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// CreateDeal registers the lead in the CRM right after the company step:
// a person, an organization and a deal pre-filled with score zero. The
// final score arrives later through UpdateDeal.
func (c *Client) CreateDeal(ctx context.Context, contact Contact, company Company, utm UTM) (*Deal, error) {
	personID, err := c.createPerson(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("create person: %w", err)
	}

	orgID, err := c.createOrganization(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("create organization: %w", err)
	}

	payload := map[string]any{
		"title":     dealTitle(contact, company),
		"person_id": personID,
		"org_id":    orgID,
	}
	if c.pipelineID > 0 {
		payload["pipeline_id"] = c.pipelineID
	}
	if c.stageID > 0 {
		payload["stage_id"] = c.stageID
	}

	var deal struct {
		ID     int `json:"id"`
		UserID struct {
			Name string `json:"name"`
		} `json:"user_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/deals", payload, &deal); err != nil {
		return nil, fmt.Errorf("create deal: %w", err)
	}

	if utm != (UTM{}) {
		// Acquisition context goes in as a note; failures here don't
		// invalidate the created deal.
		_ = c.AddNote(ctx, deal.ID, utmNote(utm))
	}

	return &Deal{ID: deal.ID, OwnerName: deal.UserID.Name}, nil
}

// UpdateDeal pushes the final quiz result onto an existing deal. A deal
// previously marked lost is reopened first, and a sales-guidance note
// with the pillar breakdown is attached.
func (c *Client) UpdateDeal(ctx context.Context, dealID int, up DealUpdate) (*Deal, error) {
	status, err := c.dealStatus(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("fetch deal %d: %w", dealID, err)
	}
	if status == "lost" {
		if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/deals/%d", dealID),
			map[string]any{"status": "open"}, nil); err != nil {
			return nil, fmt.Errorf("reopen deal %d: %w", dealID, err)
		}
	}

	payload := map[string]any{
		"title": dealTitle(up.Contact, up.Company),
		"value": up.Score,
	}

	var deal struct {
		ID     int `json:"id"`
		UserID struct {
			Name string `json:"name"`
		} `json:"user_id"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/deals/%d", dealID), payload, &deal); err != nil {
		return nil, fmt.Errorf("update deal %d: %w", dealID, err)
	}

	if err := c.AddNote(ctx, dealID, salesNote(up)); err != nil {
		return nil, fmt.Errorf("annotate deal %d: %w", dealID, err)
	}

	return &Deal{ID: deal.ID, OwnerName: deal.UserID.Name}, nil
}

// AddNote attaches a note to a deal.
func (c *Client) AddNote(ctx context.Context, dealID int, content string) error {
	payload := map[string]any{
		"deal_id": dealID,
		"content": content,
	}
	return c.do(ctx, http.MethodPost, "/notes", payload, nil)
}

// Owner returns the name of the salesperson currently assigned to the
// deal, or "" if none is assigned yet.
func (c *Client) Owner(ctx context.Context, dealID int) (string, error) {
	var deal struct {
		UserID struct {
			Name string `json:"name"`
		} `json:"user_id"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/deals/%d", dealID), nil, &deal); err != nil {
		return "", fmt.Errorf("fetch deal %d: %w", dealID, err)
	}
	return deal.UserID.Name, nil
}

// WaitForOwner polls for the assigned salesperson, bounded to 6 attempts
// 3 seconds apart. Returns "" without error when the bound is exhausted.
func (c *Client) WaitForOwner(ctx context.Context, dealID int) (string, error) {
	for attempt := range ownerPollAttempts {
		owner, err := c.Owner(ctx, dealID)
		if err != nil {
			return "", err
		}
		if owner != "" {
			return owner, nil
		}

		if attempt == ownerPollAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(ownerPollInterval):
		}
	}
	return "", nil
}

func (c *Client) createPerson(ctx context.Context, contact Contact) (int, error) {
	payload := map[string]any{
		"name":  contact.Name,
		"email": []string{contact.Email},
		"phone": []string{contact.Phone},
	}
	var person struct {
		ID int `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/persons", payload, &person); err != nil {
		return 0, err
	}
	return person.ID, nil
}

func (c *Client) createOrganization(ctx context.Context, company Company) (int, error) {
	payload := map[string]any{"name": company.Name}
	var org struct {
		ID int `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/organizations", payload, &org); err != nil {
		return 0, err
	}
	return org.ID, nil
}

func (c *Client) dealStatus(ctx context.Context, dealID int) (string, error) {
	var deal struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/deals/%d", dealID), nil, &deal); err != nil {
		return "", err
	}
	return deal.Status, nil
}

// do executes one API call and decodes the data field into out (when
// out is non-nil).
func (c *Client) do(ctx context.Context, method, path string, payload any, out any) error {
	u := fmt.Sprintf("%s%s?api_token=%s", c.baseURL, path, url.QueryEscape(c.apiToken))

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pipedrive request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("pipedrive %s %s: status %d: %s", method, path, resp.StatusCode, truncate(raw, 200))
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	if !envelope.Success {
		return fmt.Errorf("pipedrive %s %s: %s", method, path, envelope.Error)
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

func dealTitle(contact Contact, company Company) string {
	if company.Name != "" {
		return fmt.Sprintf("%s — %s", company.Name, contact.Name)
	}
	return contact.Name
}

func utmNote(utm UTM) string {
	return fmt.Sprintf("Origem do lead: source=%s medium=%s campaign=%s",
		utm.Source, utm.Medium, utm.Campaign)
}

// salesNote renders the human-readable guidance the salesperson sees on
// the deal after the quiz completes.
func salesNote(up DealUpdate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Diagnóstico de maturidade concluído.\n")
	fmt.Fprintf(&b, "Pontuação: %d/100 (nível %s)\n", up.Score, up.DiagnosisLevel)
	fmt.Fprintf(&b, "Segmento: %s | Porte: %s\n\n", up.Company.Segment, up.Company.Size)
	b.WriteString("Pontuação por pilar:\n")
	for _, ps := range up.PillarScores {
		fmt.Fprintf(&b, "- %s: %d/100\n", ps.Name, ps.Score)
	}
	return b.String()
}

func truncate(b []byte, max int) string {
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max]) + "..."
}
