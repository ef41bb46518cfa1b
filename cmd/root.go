// Package cmd implements the runway CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"runway/internal/config"
	"runway/internal/model"
	"runway/internal/source"
)

var (
	flagTransactions string
	flagInvoices     string
	flagBalance      float64
	flagThreshold    float64
	flagQuiet        bool
)

var rootCmd = &cobra.Command{
	Use:   "runway",
	Short: "Cash-flow forecast and runway analytics",
	Long: "Forecast your cash balance over the next 90 days, spot risk days,\n" +
		"and see which vendors and clients are stressing your cash flow.",
	SilenceUsage: true,
	RunE:         runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRun = applyConfigDefaults
	rootCmd.PersistentFlags().StringVarP(&flagTransactions, "transactions", "t", "", "Transactions CSV file")
	rootCmd.PersistentFlags().StringVarP(&flagInvoices, "invoices", "i", "", "Invoices CSV file (optional)")
	rootCmd.PersistentFlags().Float64VarP(&flagBalance, "balance", "b", 5000, "Starting cash balance")
	rootCmd.PersistentFlags().Float64VarP(&flagThreshold, "threshold", "r", 1000, "Risk threshold (alert when balance drops below)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// applyConfigDefaults lets the config file fill in anything the user did
// not set on the command line. Load falls back to built-in defaults when
// no config file exists, so unconditional assignment is safe.
func applyConfigDefaults(_ *cobra.Command, _ []string) {
	cfg, err := config.Load()
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  %v (using defaults)\n", err)
		}
		return
	}

	pf := rootCmd.PersistentFlags()
	if !pf.Changed("transactions") && cfg.General.TransactionsFile != "" {
		flagTransactions = cfg.General.TransactionsFile
	}
	if !pf.Changed("invoices") && cfg.General.InvoicesFile != "" {
		flagInvoices = cfg.General.InvoicesFile
	}
	if !pf.Changed("balance") {
		flagBalance = cfg.Forecast.StartingBalance
	}
	if !pf.Changed("threshold") {
		flagThreshold = cfg.Forecast.RiskThreshold
	}
}

// errEmptyLedger guards the pipeline: the simulator is never invoked on an
// empty ledger.
var errEmptyLedger = errors.New("transactions file has no rows, nothing to analyze")

// loadTransactions is the shared ingest path used by the analysis commands.
func loadTransactions() ([]model.Transaction, error) {
	if flagTransactions == "" {
		return nil, errors.New("no transactions file: pass --transactions or set a default with `runway setup`")
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Reading %s...\n", flagTransactions)
	}

	txs, err := source.ReadTransactionsFile(flagTransactions)
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, errEmptyLedger
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loaded %d transactions\n", len(txs))
	}
	return txs, nil
}

func startingBalance() decimal.Decimal { return decimal.NewFromFloat(flagBalance) }

func riskThreshold() decimal.Decimal { return decimal.NewFromFloat(flagThreshold) }
