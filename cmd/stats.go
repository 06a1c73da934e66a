package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/nmercier/quantfolio/internal/portfolio"
)

var (
	statTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	statLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	statValue = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8FAFC"))

	statOver = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22C55E"))

	statUnder = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F43F5E"))
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the portfolio snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		reconciler := portfolio.NewService(st.Catalog())
		nav, te, weights, err := reconciler.Snapshot(cmd.Context())
		if err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}

		fmt.Println(statTitle.Render("Quantfolio"))
		fmt.Printf("%s %s    %s %s\n\n",
			statLabel.Render("NAV"), statValue.Render(fmt.Sprintf("%.2f", nav)),
			statLabel.Render("Tracking error"), statValue.Render(fmt.Sprintf("%.4f", te)))

		if len(weights) == 0 {
			fmt.Println(statLabel.Render("No active categories."))
			return nil
		}

		fmt.Println(statLabel.Render(fmt.Sprintf("%-28s %8s %8s %8s %8s", "Category", "Rating", "Target", "Current", "Gap")))
		for _, w := range weights {
			name := w.Name
			if w.ParentID != nil {
				name = "  " + name
			}
			gap := w.CurrentWeight - w.TargetWeight
			gapStyle := statUnder
			if gap >= 0 {
				gapStyle = statOver
			}
			fmt.Printf("%-28s %8.1f %8.3f %8.3f %s\n",
				truncate(name, 28), w.Rating, w.TargetWeight, w.CurrentWeight,
				gapStyle.Render(fmt.Sprintf("%+8.3f", gap)))
		}
		return nil
	},
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n-1]) + "…"
}
