package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nmercier/quantfolio/internal/batch"
	"github.com/nmercier/quantfolio/internal/portfolio"
	"github.com/nmercier/quantfolio/internal/qbank"
	"github.com/nmercier/quantfolio/internal/server"
	"github.com/nmercier/quantfolio/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().String("bank", "", "Path to the question bank JSON file (overrides QUANTFOLIO_BANK env var)")
}

// runServe opens the store, wires the engine, and serves the API.
func runServe(cmd *cobra.Command) error {
	// A missing .env is fine; env vars still apply.
	_ = godotenv.Load()

	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	catalog := st.Catalog()
	sessions := st.Sessions()

	reconciler := portfolio.NewService(catalog)
	selector := batch.NewSelector(catalog, nil)
	svc := session.NewService(catalog, sessions, reconciler, selector)
	bank := qbank.NewSyncer(catalog, resolveBankPath(cmd))

	h := server.NewHandler(svc, reconciler, catalog, bank, log)
	r := server.NewRouter(h)

	// The root command delegates here without serve's flags; fall back to
	// the default address in that case.
	addr, err := cmd.Flags().GetString("addr")
	if err != nil || addr == "" {
		addr = ":8080"
	}
	log.Info("serving", zap.String("addr", addr))
	return r.Run(addr)
}

// resolveBankPath returns the bank file path using --bank, then
// QUANTFOLIO_BANK, then ./questions.json.
func resolveBankPath(cmd *cobra.Command) string {
	if p, err := cmd.Flags().GetString("bank"); err == nil && p != "" {
		return p
	}
	if p := os.Getenv("QUANTFOLIO_BANK"); p != "" {
		return p
	}
	return "questions.json"
}

// newLogger builds a production logger, or a development one when
// QUANTFOLIO_ENV=dev.
func newLogger() (*zap.Logger, error) {
	if os.Getenv("QUANTFOLIO_ENV") == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
