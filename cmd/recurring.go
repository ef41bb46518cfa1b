package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"runway/internal/cli"
	"runway/internal/pipeline"
)

var recurringCmd = &cobra.Command{
	Use:   "recurring",
	Short: "Detected recurring vendor expenses",
	RunE:  runRecurring,
}

func init() {
	rootCmd.AddCommand(recurringCmd)
}

func runRecurring(_ *cobra.Command, _ []string) error {
	txs, err := loadTransactions()
	if err != nil {
		return err
	}

	recurring := pipeline.DetectRecurring(txs)

	fmt.Println()
	fmt.Println(cli.RenderTitle("RECURRING EXPENSES"))
	fmt.Println()

	if len(recurring) == 0 {
		fmt.Println("  No recurring expense patterns detected yet.")
		fmt.Println("  Add more months of data to see patterns like rent or subscriptions.")
		return nil
	}

	rows := make([][]string, 0, len(recurring))
	for _, r := range recurring {
		rows = append(rows, []string{
			r.Counterparty,
			r.Frequency,
			cli.FormatDays(r.AvgGapDays),
			cli.FormatMoney(r.AvgAmount),
			cli.FormatDate(r.LastPayment),
			cli.FormatDate(r.NextExpected),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Vendor", "Frequency", "Avg gap (d)", "Avg amount", "Last paid", "Next expected"},
		Rows:    rows,
	}))

	return nil
}
