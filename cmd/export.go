package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"runway/internal/pipeline"
	"runway/internal/source"
	"runway/internal/store"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the full analysis to a SQLite file",
	Long: "Recompute every analysis from the input ledgers and write the results\n" +
		"(forecast, top expense days, recurring expenses, client delays) to a\n" +
		"SQLite database for downstream tools.",
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "runway.db", "Output SQLite file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	txs, err := loadTransactions()
	if err != nil {
		return err
	}

	forecast := pipeline.Simulate(txs, startingBalance())
	run := store.Run{
		TransactionsFile: flagTransactions,
		InvoicesFile:     flagInvoices,
		StartingBalance:  startingBalance(),
		RiskThreshold:    riskThreshold(),
		Forecast:         forecast,
		TopExpenses:      pipeline.TopExpenseDays(forecast, pipeline.TopExpenseLimit),
		Recurring:        pipeline.DetectRecurring(txs),
	}

	// Invoices validate independently: a bad invoices file must not block
	// the transaction analytics.
	if flagInvoices != "" {
		invoices, err := source.ReadInvoicesFile(flagInvoices)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  Skipping invoices: %v\n", err)
		} else {
			run.Delays = pipeline.AnalyzeDelays(invoices)
		}
	}

	db, err := store.Open(flagExportOut)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	id, err := db.SaveRun(run)
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Saved run %d to %s\n", id, flagExportOut)
	}
	return nil
}
