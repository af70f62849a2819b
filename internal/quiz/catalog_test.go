package quiz

import "testing"

func TestStaticCatalog_IsValid(t *testing.T) {
	if err := StaticCatalog().Validate(); err != nil {
		t.Fatalf("static catalog invalid: %v", err)
	}
}

func TestStaticCatalog_FourQuestionsPerPillar(t *testing.T) {
	c := StaticCatalog()
	for _, p := range AllPillars() {
		qs := c.ForPillar(p)
		if len(qs) != QuestionsPerPillar {
			t.Fatalf("pillar %s has %d questions, want %d", p, len(qs), QuestionsPerPillar)
		}
	}
}

func TestStaticCatalog_OnlyPositiveScores(t *testing.T) {
	for _, q := range StaticCatalog() {
		if got := q.Points(AnswerPositive); got != 1 {
			t.Fatalf("question %s: positive worth %d, want 1", q.ID, got)
		}
		if got := q.Points(AnswerNeutral); got != 0 {
			t.Fatalf("question %s: neutral worth %d, want 0", q.ID, got)
		}
		if got := q.Points(AnswerNegative); got != 0 {
			t.Fatalf("question %s: negative worth %d, want 0", q.ID, got)
		}
	}
}

func TestQuestion_UnknownValueScoresZero(t *testing.T) {
	q := StaticCatalog()[0]
	if got := q.Points(AnswerValue("bogus")); got != 0 {
		t.Fatalf("unknown value worth %d, want 0", got)
	}
}

func TestCatalog_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(Catalog) Catalog
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(c Catalog) Catalog { return c },
		},
		{
			name:    "truncated",
			mutate:  func(c Catalog) Catalog { return c[:19] },
			wantErr: true,
		},
		{
			name: "duplicate id",
			mutate: func(c Catalog) Catalog {
				c[1].ID = c[0].ID
				return c
			},
			wantErr: true,
		},
		{
			name: "block title mismatch",
			mutate: func(c Catalog) Catalog {
				c[0].BlockTitle = "Vendas"
				return c
			},
			wantErr: true,
		},
		{
			name: "bad block number",
			mutate: func(c Catalog) Catalog {
				c[0].Block = 9
				return c
			},
			wantErr: true,
		},
		{
			name: "unbalanced pillars",
			mutate: func(c Catalog) Catalog {
				c[0].Block = 2
				c[0].BlockTitle = string(PillarPessoas)
				return c
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.mutate(StaticCatalog())
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPillarForBlock(t *testing.T) {
	for i, p := range AllPillars() {
		got, ok := PillarForBlock(i + 1)
		if !ok || got != p {
			t.Fatalf("PillarForBlock(%d) = %q, %v; want %q", i+1, got, ok, p)
		}
	}
	if _, ok := PillarForBlock(0); ok {
		t.Fatal("PillarForBlock(0) should not resolve")
	}
	if _, ok := PillarForBlock(6); ok {
		t.Fatal("PillarForBlock(6) should not resolve")
	}
}
