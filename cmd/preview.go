package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/radarpme/radarpme/internal/llm"
	"github.com/radarpme/radarpme/internal/questiongen"
	"github.com/radarpme/radarpme/internal/quiz"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a question catalog without touching the database",
	Long: `Print the static catalog, or generate a personalized one for a segment.

This is a stateless marketing/dev tool — no database, no lead, no CRM.
Useful for reviewing question quality before pointing a campaign at a segment.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("segment", "", "Generate a personalized catalog for this segment (requires an LLM provider)")
	previewCmd.Flags().String("size", "", "Company size band passed to the generator, e.g. 6-20")
	previewCmd.Flags().String("revenue", "", "Monthly revenue band passed to the generator (optional)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	segment, _ := cmd.Flags().GetString("segment")
	size, _ := cmd.Flags().GetString("size")
	revenue, _ := cmd.Flags().GetString("revenue")

	catalog := quiz.StaticCatalog()

	if segment != "" {
		// No EventRepo — logging skipped for the stateless tool.
		ctx := context.Background()
		provider, err := llm.NewProviderFromEnv(ctx, nil)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}

		gen := questiongen.New(provider, questiongen.DefaultConfig())
		fmt.Printf("Generating catalog for %q", segment)
		if size != "" {
			fmt.Printf(" (%s)", size)
		}
		fmt.Println("...")

		catalog, err = gen.Generate(ctx, questiongen.Input{
			Segment:     segment,
			CompanySize: size,
			Revenue:     revenue,
		})
		if err != nil {
			return fmt.Errorf("generate catalog: %w", err)
		}
	}

	printCatalog(catalog)
	return nil
}

func printCatalog(catalog quiz.Catalog) {
	lastBlock := 0
	for _, q := range catalog {
		if q.Block != lastBlock {
			lastBlock = q.Block
			fmt.Printf("\n── %s ──\n", q.BlockTitle)
		}
		fmt.Printf("\n[%s] %s\n", q.ID, q.Text)
		for _, opt := range q.Answers {
			fmt.Printf("  %s %s (%d pts)\n", opt.Emoji, opt.Label, opt.Points)
		}
	}
}
