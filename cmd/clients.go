package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"runway/internal/cli"
	"runway/internal/pipeline"
	"runway/internal/source"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Late-paying clients from the invoice ledger",
	RunE:  runClients,
}

func init() {
	rootCmd.AddCommand(clientsCmd)
}

// runClients operates on the invoice ledger alone; it never touches the
// transactions file, so a bad transactions file cannot block it (and vice
// versa).
func runClients(_ *cobra.Command, _ []string) error {
	if flagInvoices == "" {
		return errors.New("no invoices file: pass --invoices to analyze client payment delays")
	}

	invoices, err := source.ReadInvoicesFile(flagInvoices)
	if err != nil {
		return err
	}

	report := pipeline.AnalyzeDelays(invoices)

	fmt.Println()
	fmt.Println(cli.RenderTitle("LATE-PAYING CLIENTS"))
	fmt.Println()

	if report.PaidInvoices == 0 {
		fmt.Println("  No paid invoices found, so payment delays can't be computed yet.")
		return nil
	}

	if len(report.Clients) == 0 {
		fmt.Println("  No clients consistently paying late based on your invoice data.")
		return nil
	}

	rows := make([][]string, 0, len(report.Clients))
	for _, c := range report.Clients {
		rows = append(rows, []string{c.Client, cli.FormatDays(c.AvgDelayDays)})
	}

	fmt.Println("  Clients ordered by how many days after the due date they usually pay:")
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Client", "Avg delay (d)"},
		Rows:    rows,
	}))

	return nil
}
