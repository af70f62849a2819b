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
	"github.com/radarpme/radarpme/internal/result"
	"github.com/radarpme/radarpme/internal/store"
	"github.com/radarpme/radarpme/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the funnel interactively in the terminal",
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
		}

		var diagnoser *diagnosis.Diagnoser
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "The diagnosis will use the deterministic fallback.")
		} else {
			diagnoser = diagnosis.NewDiagnoser(provider, diagnosis.DefaultConfig())
		}

		utm := crm.UTM{
			Source:   mustString(cmd, "utm-source"),
			Medium:   mustString(cmd, "utm-medium"),
			Campaign: mustString(cmd, "utm-campaign"),
		}

		session := flow.NewSession(flow.SelfServe, utm, flow.Prefill{})
		ctrl := flow.NewController(session, flow.StaticSource{}, crmClient, st.LeadRepo())
		results := result.New(diagnosis.NewService(diagnoser), st.LeadRepo(), cfg.MinLoadingDuration)

		return tui.Run(ctrl, results)
	},
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func init() {
	playCmd.Flags().String("utm-source", "terminal", "UTM source tag recorded on the lead")
	playCmd.Flags().String("utm-medium", "cli", "UTM medium tag recorded on the lead")
	playCmd.Flags().String("utm-campaign", "", "UTM campaign tag recorded on the lead")
}
