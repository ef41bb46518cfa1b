package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"runway/internal/cli"
	"runway/internal/pipeline"
)

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "Largest net-outflow days in the forecast",
	RunE:  runExpenses,
}

func init() {
	rootCmd.AddCommand(expensesCmd)
}

func runExpenses(_ *cobra.Command, _ []string) error {
	txs, err := loadTransactions()
	if err != nil {
		return err
	}

	forecast := pipeline.Simulate(txs, startingBalance())
	top := pipeline.TopExpenseDays(forecast, pipeline.TopExpenseLimit)

	fmt.Println()
	fmt.Println(cli.RenderTitle("BIGGEST NET EXPENSE DAYS"))
	fmt.Println()

	if len(top) == 0 {
		fmt.Println("  No net expense days in the forecast horizon.")
		return nil
	}

	rows := make([][]string, 0, len(top))
	for _, d := range top {
		rows = append(rows, []string{
			cli.FormatDate(d.Date),
			cli.FormatMoney(d.DailyNet),
			cli.FormatMoney(d.Balance),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Net expense", "Balance"},
		Rows:    rows,
	}))

	return nil
}
