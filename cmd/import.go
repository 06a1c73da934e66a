package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmercier/quantfolio/internal/qbank"
)

var importCmd = &cobra.Command{
	Use:   "import <bank.json>",
	Short: "Import a question bank file into the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		res, _, err := qbank.SyncIfStale(cmd.Context(), st.Catalog(), 0, args[0])
		if err != nil {
			return err
		}
		if !res.Synced {
			fmt.Println(res.Note)
			return nil
		}
		fmt.Printf("imported %d new question(s)\n", res.Created)
		return nil
	},
}
