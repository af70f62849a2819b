package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/radarpme/radarpme/internal/store"
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "List recently captured leads",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		leads, err := s.LeadRepo().Recent(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query leads: %w", err)
		}

		if len(leads) == 0 {
			fmt.Println("No leads captured yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-24s  %-28s  %-18s  %5s  %-6s  %s\n",
			"ID", "Created", "Name", "Email", "Segment", "Score", "Level", "Deal")
		fmt.Println(strings.Repeat("─", 120))

		for _, l := range leads {
			deal := "-"
			if l.CRMDealID != 0 {
				deal = fmt.Sprintf("#%d", l.CRMDealID)
			}
			fmt.Printf("%-5d  %-19s  %-24s  %-28s  %-18s  %5d  %-6s  %s\n",
				l.ID,
				l.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				truncate(l.Name, 24),
				truncate(l.Email, 28),
				truncate(l.Segment, 18),
				l.Score,
				l.DiagnosisLevel,
				deal,
			)
		}
		return nil
	},
}

func init() {
	leadsCmd.Flags().IntP("limit", "n", 20, "Number of leads to show")
}
