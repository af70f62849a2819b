package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/radarpme/radarpme/internal/config"
	"github.com/radarpme/radarpme/internal/crm"
	"github.com/radarpme/radarpme/internal/diagnosis"
	"github.com/radarpme/radarpme/internal/flow"
	"github.com/radarpme/radarpme/internal/llm"
	"github.com/radarpme/radarpme/internal/questiongen"
	"github.com/radarpme/radarpme/internal/result"
	"github.com/radarpme/radarpme/internal/server"
	"github.com/radarpme/radarpme/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API for the web funnel",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg := config.Load()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		var crmClient flow.CRMClient
		if cfg.CRMEnabled() {
			crmClient = crm.New(crm.Config{
				BaseURL:    cfg.PipedriveBaseURL,
				APIToken:   cfg.PipedriveAPIToken,
				PipelineID: cfg.PipedrivePipeline,
				StageID:    cfg.PipedriveStage,
			})
		} else {
			fmt.Fprintln(os.Stderr, "Pipedrive not configured, CRM sync disabled.")
		}

		// The LLM provider is optional: without it the vendor-link
		// variant is unavailable and diagnoses use the fallback.
		var generatedSrc flow.QuestionSource
		var diagnoser *diagnosis.Diagnoser
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "AI question generation and narrative diagnosis will be unavailable.")
		} else {
			gen := questiongen.New(provider, questiongen.DefaultConfig())
			generatedSrc = flow.NewGeneratorSource(gen)
			diagnoser = diagnosis.NewDiagnoser(provider, diagnosis.DefaultConfig())
		}

		results := result.New(
			diagnosis.NewService(diagnoser),
			st.LeadRepo(),
			cfg.MinLoadingDuration,
		)

		srv := server.New(st.LeadRepo(), crmClient, generatedSrc, results)
		return srv.Run(":" + cfg.Port)
	},
}
