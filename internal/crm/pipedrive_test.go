package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/radarpme/radarpme/internal/scoring"
)

// fakePipedrive is a minimal in-memory Pipedrive double.
type fakePipedrive struct {
	t        *testing.T
	requests []string // "METHOD /path"
	notes    []string
	status   string // current deal status returned by GET /deals/1
	owner    string
}

func (f *fakePipedrive) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.requests = append(f.requests, r.Method+" "+r.URL.Path)

		if r.URL.Query().Get("api_token") != "test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"success":false,"error":"unauthorized"}`)
			return
		}

		var data any
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/persons":
			data = map[string]any{"id": 11}
		case r.Method == http.MethodPost && r.URL.Path == "/organizations":
			data = map[string]any{"id": 22}
		case r.Method == http.MethodPost && r.URL.Path == "/deals":
			data = map[string]any{"id": 1, "user_id": map[string]any{"name": f.owner}}
		case r.Method == http.MethodGet && r.URL.Path == "/deals/1":
			data = map[string]any{
				"id": 1, "status": f.status,
				"user_id": map[string]any{"name": f.owner},
			}
		case r.Method == http.MethodPut && r.URL.Path == "/deals/1":
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["status"] == "open" {
				f.status = "open"
			}
			data = map[string]any{"id": 1, "user_id": map[string]any{"name": f.owner}}
		case r.Method == http.MethodPost && r.URL.Path == "/notes":
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			f.notes = append(f.notes, body["content"].(string))
			data = map[string]any{"id": len(f.notes)}
		default:
			f.t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
	}
}

func newTestClient(t *testing.T, fake *fakePipedrive) *Client {
	t.Helper()
	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)
	return New(Config{BaseURL: server.URL, APIToken: "test-token"})
}

func testUpdate() DealUpdate {
	return DealUpdate{
		Contact:        Contact{Name: "Marina", Email: "marina@petshop.com", Phone: "11999990000"},
		Company:        Company{Name: "Pet Mimo", Segment: "pet shop", Size: "1-5"},
		Score:          30,
		DiagnosisLevel: scoring.TierLow,
		PillarScores: []scoring.PillarScore{
			{Name: "Processos", Score: 50}, {Name: "Pessoas", Score: 25},
			{Name: "Clientes", Score: 25}, {Name: "Controle", Score: 25},
			{Name: "Crescimento", Score: 25},
		},
	}
}

func TestCreateDeal(t *testing.T) {
	fake := &fakePipedrive{t: t, status: "open", owner: "Paulo"}
	c := newTestClient(t, fake)

	deal, err := c.CreateDeal(context.Background(),
		Contact{Name: "Marina", Email: "marina@petshop.com", Phone: "11999990000"},
		Company{Name: "Pet Mimo", Segment: "pet shop", Size: "1-5"},
		UTM{Source: "instagram", Medium: "bio", Campaign: "forma-2026"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deal.ID != 1 {
		t.Fatalf("deal id = %d, want 1", deal.ID)
	}
	if deal.OwnerName != "Paulo" {
		t.Fatalf("owner = %q, want Paulo", deal.OwnerName)
	}

	want := []string{"POST /persons", "POST /organizations", "POST /deals", "POST /notes"}
	if len(fake.requests) != len(want) {
		t.Fatalf("requests = %v, want %v", fake.requests, want)
	}
	for i, w := range want {
		if fake.requests[i] != w {
			t.Fatalf("request %d = %q, want %q", i, fake.requests[i], w)
		}
	}
	if !strings.Contains(fake.notes[0], "instagram") {
		t.Fatalf("utm note missing source: %q", fake.notes[0])
	}
}

func TestUpdateDeal_ReopensLostDeal(t *testing.T) {
	fake := &fakePipedrive{t: t, status: "lost", owner: "Paulo"}
	c := newTestClient(t, fake)

	deal, err := c.UpdateDeal(context.Background(), 1, testUpdate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deal.OwnerName != "Paulo" {
		t.Fatalf("owner = %q, want Paulo", deal.OwnerName)
	}
	if fake.status != "open" {
		t.Fatalf("deal status = %q, want open", fake.status)
	}

	// GET status, PUT reopen, PUT update, POST note.
	want := []string{"GET /deals/1", "PUT /deals/1", "PUT /deals/1", "POST /notes"}
	for i, w := range want {
		if fake.requests[i] != w {
			t.Fatalf("request %d = %q, want %q (all: %v)", i, fake.requests[i], w, fake.requests)
		}
	}
}

func TestUpdateDeal_NoteCarriesPillarBreakdown(t *testing.T) {
	fake := &fakePipedrive{t: t, status: "open", owner: "Paulo"}
	c := newTestClient(t, fake)

	if _, err := c.UpdateDeal(context.Background(), 1, testUpdate()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.notes) != 1 {
		t.Fatalf("got %d notes, want 1", len(fake.notes))
	}
	note := fake.notes[0]
	for _, want := range []string{"30/100", "Processos: 50/100", "pet shop"} {
		if !strings.Contains(note, want) {
			t.Fatalf("sales note missing %q:\n%s", want, note)
		}
	}
}

func TestOwner(t *testing.T) {
	fake := &fakePipedrive{t: t, status: "open", owner: "Paulo"}
	c := newTestClient(t, fake)

	owner, err := c.Owner(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if owner != "Paulo" {
		t.Fatalf("owner = %q, want Paulo", owner)
	}
}

func TestWaitForOwner_ImmediateAssignment(t *testing.T) {
	fake := &fakePipedrive{t: t, status: "open", owner: "Paulo"}
	c := newTestClient(t, fake)

	owner, err := c.WaitForOwner(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if owner != "Paulo" {
		t.Fatalf("owner = %q, want Paulo", owner)
	}
	if len(fake.requests) != 1 {
		t.Fatalf("expected a single poll, got %d", len(fake.requests))
	}
}

func TestClient_APIErrorSurfaces(t *testing.T) {
	fake := &fakePipedrive{t: t, status: "open"}
	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)
	c := New(Config{BaseURL: server.URL, APIToken: "wrong-token"})

	if _, err := c.Owner(context.Background(), 1); err == nil {
		t.Fatal("expected error for rejected token")
	}
}
