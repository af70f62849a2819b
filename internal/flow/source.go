package flow

import (
	"context"

	"github.com/radarpme/radarpme/internal/questiongen"
	"github.com/radarpme/radarpme/internal/quiz"
)

// QuestionSource supplies the catalog a session runs against. The two
// funnel variants differ only in where their questions come from.
type QuestionSource interface {
	Questions(ctx context.Context, in questiongen.Input) (quiz.Catalog, error)
}

// StaticSource serves the fixed catalog. It never fails.
type StaticSource struct{}

func (StaticSource) Questions(context.Context, questiongen.Input) (quiz.Catalog, error) {
	return quiz.StaticCatalog(), nil
}

// GeneratorSource serves an LLM-generated catalog tailored to the
// respondent's segment.
type GeneratorSource struct {
	gen *questiongen.Generator
}

func NewGeneratorSource(gen *questiongen.Generator) *GeneratorSource {
	return &GeneratorSource{gen: gen}
}

func (s *GeneratorSource) Questions(ctx context.Context, in questiongen.Input) (quiz.Catalog, error) {
	return s.gen.Generate(ctx, in)
}
