package scoring

import (
	"math"
	"strconv"
	"testing"

	"github.com/radarpme/radarpme/internal/quiz"
)

// scaledCatalog builds a 5-point catalog in the shape the question
// generator produces: 20 questions, 4 per pillar, options valued 1..5.
func scaledCatalog() quiz.Catalog {
	var c quiz.Catalog
	id := 0
	for _, p := range quiz.AllPillars() {
		for range quiz.QuestionsPerPillar {
			id++
			opts := make([]quiz.AnswerOption, 0, 5)
			for n := 1; n <= 5; n++ {
				opts = append(opts, quiz.AnswerOption{
					Value:  quiz.ScaleValue(n),
					Label:  "opção",
					Points: n,
				})
			}
			c = append(c, quiz.Question{
				ID:         "g" + strconv.Itoa(id),
				Block:      p.Block(),
				BlockTitle: string(p),
				Text:       "pergunta gerada",
				Answers:    opts,
			})
		}
	}
	return c
}

func allAnswered(c quiz.Catalog, v quiz.AnswerValue) quiz.AnswerSet {
	a := make(quiz.AnswerSet, len(c))
	for _, q := range c {
		a[q.ID] = v
	}
	return a
}

func TestOverallScore_AllPositive(t *testing.T) {
	c := quiz.StaticCatalog()
	a := allAnswered(c, quiz.AnswerPositive)

	if got := OverallScore(a, c); got != 100 {
		t.Fatalf("overall = %d, want 100", got)
	}
	for _, ps := range PillarScores(a, c) {
		if ps.Score != 100 {
			t.Fatalf("pillar %s = %d, want 100", ps.Name, ps.Score)
		}
	}
	if d := Classify(OverallScore(a, c)); d.Level != TierHigh {
		t.Fatalf("tier = %s, want high", d.Level)
	}
}

func TestOverallScore_EmptyAnswerSet(t *testing.T) {
	c := quiz.StaticCatalog()
	a := quiz.AnswerSet{}

	if got := OverallScore(a, c); got != 0 {
		t.Fatalf("overall = %d, want 0", got)
	}
	pillars := PillarScores(a, c)
	if len(pillars) != 5 {
		t.Fatalf("got %d pillars, want 5", len(pillars))
	}
	for _, ps := range pillars {
		if ps.Score != 0 {
			t.Fatalf("pillar %s = %d, want 0", ps.Name, ps.Score)
		}
	}
	if d := Classify(0); d.Level != TierLow {
		t.Fatalf("tier = %s, want low", d.Level)
	}
}

func TestOverallScore_SixPositiveSpread(t *testing.T) {
	c := quiz.StaticCatalog()
	a := quiz.AnswerSet{
		"q1": quiz.AnswerPositive, "q2": quiz.AnswerPositive,
		"q5": quiz.AnswerPositive, "q9": quiz.AnswerPositive,
		"q13": quiz.AnswerPositive, "q17": quiz.AnswerPositive,
	}

	if got := OverallScore(a, c); got != 30 {
		t.Fatalf("overall = %d, want 30", got)
	}

	want := map[string]int{
		string(quiz.PillarProcessos):   50,
		string(quiz.PillarPessoas):     25,
		string(quiz.PillarClientes):    25,
		string(quiz.PillarControle):    25,
		string(quiz.PillarCrescimento): 25,
	}
	for _, ps := range PillarScores(a, c) {
		if ps.Score != want[ps.Name] {
			t.Fatalf("pillar %s = %d, want %d", ps.Name, ps.Score, want[ps.Name])
		}
	}
}

func TestOverallScore_ScaledCatalogMaxed(t *testing.T) {
	c := scaledCatalog()
	if err := c.Validate(); err != nil {
		t.Fatalf("scaled catalog invalid: %v", err)
	}

	a := allAnswered(c, quiz.ScaleValue(5))
	if got := OverallScore(a, c); got != 100 {
		t.Fatalf("overall = %d, want 100", got)
	}
	for _, ps := range PillarScores(a, c) {
		if ps.Score != 100 {
			t.Fatalf("pillar %s = %d, want 100", ps.Name, ps.Score)
		}
	}
}

func TestOverallScore_Bounds(t *testing.T) {
	c := quiz.StaticCatalog()
	sets := []quiz.AnswerSet{
		{},
		allAnswered(c, quiz.AnswerNegative),
		allAnswered(c, quiz.AnswerNeutral),
		allAnswered(c, quiz.AnswerPositive),
		{"q3": quiz.AnswerPositive, "desconhecida": quiz.AnswerPositive},
	}
	for _, a := range sets {
		got := OverallScore(a, c)
		if got < 0 || got > 100 {
			t.Fatalf("overall %d out of [0,100] for %v", got, a)
		}
	}
}

func TestOverallScore_UnknownIDsIgnored(t *testing.T) {
	c := quiz.StaticCatalog()
	a := quiz.AnswerSet{"nao-existe": quiz.AnswerPositive}
	if got := OverallScore(a, c); got != 0 {
		t.Fatalf("overall = %d, want 0", got)
	}
}

func TestOverallScore_Monotonic(t *testing.T) {
	c := quiz.StaticCatalog()
	a := quiz.AnswerSet{
		"q1": quiz.AnswerNegative,
		"q7": quiz.AnswerPositive,
	}
	before := OverallScore(a, c)
	beforePillars := PillarScores(a, c)

	a["q1"] = quiz.AnswerPositive
	after := OverallScore(a, c)
	afterPillars := PillarScores(a, c)

	if after < before {
		t.Fatalf("upgrading an answer lowered the score: %d -> %d", before, after)
	}
	if afterPillars[0].Score < beforePillars[0].Score {
		t.Fatalf("upgrading an answer lowered its pillar: %d -> %d",
			beforePillars[0].Score, afterPillars[0].Score)
	}
}

func TestPillarScores_ConsistentWithOverall(t *testing.T) {
	// For the tri-state catalog every pillar has the same weight, so the
	// overall score must equal the average of the pillar scores within a
	// rounding tolerance of 1.
	c := quiz.StaticCatalog()
	a := quiz.AnswerSet{
		"q1": quiz.AnswerPositive, "q2": quiz.AnswerPositive, "q3": quiz.AnswerPositive,
		"q6": quiz.AnswerPositive, "q11": quiz.AnswerPositive, "q18": quiz.AnswerPositive,
		"q19": quiz.AnswerNeutral,
	}

	overall := OverallScore(a, c)
	sum := 0
	for _, ps := range PillarScores(a, c) {
		sum += ps.Score
	}
	avg := int(math.Round(float64(sum) / 5))

	if diff := overall - avg; diff < -1 || diff > 1 {
		t.Fatalf("overall %d vs pillar average %d differ by more than 1", overall, avg)
	}
}

func TestScoring_Idempotent(t *testing.T) {
	c := quiz.StaticCatalog()
	a := quiz.AnswerSet{"q1": quiz.AnswerPositive, "q12": quiz.AnswerNeutral}

	if OverallScore(a, c) != OverallScore(a, c) {
		t.Fatal("OverallScore is not deterministic")
	}
	p1 := PillarScores(a, c)
	p2 := PillarScores(a, c)
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Fatal("PillarScores is not deterministic")
		}
	}
}

func TestClassify_Total(t *testing.T) {
	for score := 0; score <= 100; score++ {
		d := Classify(score)
		switch d.Level {
		case TierLow, TierMedium, TierHigh:
		default:
			t.Fatalf("score %d classified as %q", score, d.Level)
		}
		if d.Title == "" || d.Description == "" || d.Recommendation == "" || d.Emoji == "" {
			t.Fatalf("score %d produced incomplete diagnosis: %+v", score, d)
		}
	}
}

func TestClassify_Thresholds(t *testing.T) {
	tests := []struct {
		score int
		want  Tier
	}{
		{0, TierLow},
		{30, TierLow},
		{31, TierMedium},
		{65, TierMedium},
		{66, TierHigh},
		{100, TierHigh},
	}
	for _, tt := range tests {
		if got := Classify(tt.score).Level; got != tt.want {
			t.Fatalf("Classify(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestStrongestWeakestPillar(t *testing.T) {
	scores := []PillarScore{
		{Name: "Processos", Score: 50},
		{Name: "Pessoas", Score: 75},
		{Name: "Clientes", Score: 25},
		{Name: "Controle", Score: 75},
		{Name: "Crescimento", Score: 25},
	}
	if got := StrongestPillar(scores); got.Name != "Pessoas" {
		t.Fatalf("strongest = %s, want Pessoas", got.Name)
	}
	if got := WeakestPillar(scores); got.Name != "Clientes" {
		t.Fatalf("weakest = %s, want Clientes", got.Name)
	}
}

func TestFallbackChecklist_Complete(t *testing.T) {
	for _, score := range []int{0, 15, 30, 31, 50, 65, 66, 88, 100} {
		cl := FallbackChecklist(score)
		if len(cl) != 5 {
			t.Fatalf("score %d: checklist has %d pillars, want 5", score, len(cl))
		}
		for _, p := range quiz.AllPillars() {
			if len(cl[string(p)]) == 0 {
				t.Fatalf("score %d: pillar %s has no actions", score, p)
			}
		}
	}
}
