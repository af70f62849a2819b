package store

import (
	"context"
	"encoding/json"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testLead() LeadData {
	return LeadData{
		Name:           "Marina",
		Email:          "marina@petshop.com",
		Phone:          "11999990000",
		Company:        "Pet Mimo",
		Segment:        "pet shop",
		CompanySize:    "1-5",
		Score:          45,
		Answers:        map[string]string{"q1": "positive", "q2": "negative"},
		DiagnosisLevel: "medium",
		CRMDealID:      7,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestLeadCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.LeadRepo()
	ctx := context.Background()

	id, err := repo.CreateLead(ctx, testLead())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero lead id")
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected lead, got nil")
	}
	if got.Email != "marina@petshop.com" {
		t.Errorf("email = %q", got.Email)
	}
	if got.Score != 45 {
		t.Errorf("score = %d, want 45", got.Score)
	}
	if got.Answers["q1"] != "positive" {
		t.Errorf("answers[q1] = %q", got.Answers["q1"])
	}
	if got.CRMDealID != 7 {
		t.Errorf("crm deal id = %d, want 7", got.CRMDealID)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
}

func TestLeadGetMissingReturnsNil(t *testing.T) {
	s := openTestStore(t)

	got, err := s.LeadRepo().Get(context.Background(), 999)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing lead, got %+v", got)
	}
}

func TestLeadAttachDiagnosis(t *testing.T) {
	s := openTestStore(t)
	repo := s.LeadRepo()
	ctx := context.Background()

	id, err := repo.CreateLead(ctx, testLead())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	pillars := map[string]int{
		"Processos": 50, "Pessoas": 25, "Clientes": 50,
		"Controle": 25, "Crescimento": 75,
	}
	ai := json.RawMessage(`{"summary":{"paragraph1":"a","paragraph2":"b"}}`)
	if err := repo.AttachDiagnosis(ctx, id, pillars, ai); err != nil {
		t.Fatalf("attach: %v", err)
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PillarScores["Crescimento"] != 75 {
		t.Errorf("pillar score = %d, want 75", got.PillarScores["Crescimento"])
	}
	if len(got.AIDiagnosis) == 0 {
		t.Error("ai diagnosis not stored")
	}
}

func TestLeadAttachDiagnosisMissingLead(t *testing.T) {
	s := openTestStore(t)

	err := s.LeadRepo().AttachDiagnosis(context.Background(), 999,
		map[string]int{"Processos": 50}, nil)
	if err == nil {
		t.Fatal("expected error for missing lead")
	}
}

func TestLeadRecentOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.LeadRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		data := testLead()
		data.Score = 10 * (i + 1)
		if _, err := repo.CreateLead(ctx, data); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	leads, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(leads) != 2 {
		t.Fatalf("got %d leads, want 2", len(leads))
	}
	if leads[0].Score != 30 {
		t.Errorf("newest lead score = %d, want 30", leads[0].Score)
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "claude", Purpose: "diagnosis", InputTokens: 200, OutputTokens: 80, Success: true},
		{Provider: "anthropic", Model: "claude", Purpose: "diagnosis", Success: false, ErrorMessage: "timeout"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d events, want 3", len(all))
	}
	// Newest first.
	if all[0].Sequence <= all[1].Sequence {
		t.Errorf("events not in descending sequence order: %d then %d",
			all[0].Sequence, all[1].Sequence)
	}

	diag, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "diagnosis"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(diag) != 2 {
		t.Fatalf("got %d diagnosis events, want 2", len(diag))
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("got %d events with limit 1", len(limited))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "gpt", Purpose: "diagnosis",
		Success: true, RequestBody: "[system]\nprompt", ResponseBody: `{"ok":true}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	got, err := repo.GetLLMEvent(ctx, all[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected event, got nil")
	}
	if got.RequestBody == "" || got.ResponseBody == "" {
		t.Errorf("bodies not stored: %+v", got.LLMRequestEventData)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "anthropic", Model: "claude", Purpose: "diagnosis",
			InputTokens: 100, OutputTokens: 40, LatencyMs: 1000, Success: true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 1 {
		t.Fatalf("got %d usage rows, want 1", len(usage))
	}
	u := usage[0]
	if u.Purpose != "diagnosis" {
		t.Errorf("purpose = %q", u.Purpose)
	}
	if u.Calls != 2 || u.InputTokens != 200 || u.OutputTokens != 80 {
		t.Errorf("aggregates = %+v", u)
	}
	if u.AvgLatencyMs != 1000 {
		t.Errorf("avg latency = %d, want 1000", u.AvgLatencyMs)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq <= prev {
			t.Fatalf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"leads", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}
}
