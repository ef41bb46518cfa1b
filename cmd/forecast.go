package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"runway/internal/cli"
	"runway/internal/pipeline"
)

// Default number of forecast rows shown without --all.
const forecastPreviewDays = 25

var flagAllDays bool

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Daily 90-day balance projection",
	RunE:  runForecast,
}

func init() {
	forecastCmd.Flags().BoolVar(&flagAllDays, "all", false, "Show all 90 days")
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, _ []string) error {
	txs, err := loadTransactions()
	if err != nil {
		return err
	}

	forecast := pipeline.Simulate(txs, startingBalance())
	threshold := riskThreshold()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CASH FLOW FORECAST  %d days", pipeline.HorizonDays)))
	fmt.Println()

	balances := make([]float64, len(forecast))
	for i, d := range forecast {
		balances[i], _ = d.Balance.Float64()
	}
	fmt.Printf("  Balance  %s\n", cli.RenderSparkline(balances))
	fmt.Println()

	shown := forecast
	if !flagAllDays && len(shown) > forecastPreviewDays {
		shown = shown[:forecastPreviewDays]
	}

	risk := make(map[int]bool)
	rows := make([][]string, 0, len(shown))
	for i, d := range shown {
		if d.Balance.LessThan(threshold) {
			risk[i] = true
		}
		rows = append(rows, []string{
			cli.FormatDate(d.Date),
			d.Date.Format("Mon"),
			cli.FormatMoney(d.DailyNet),
			cli.FormatMoney(d.Balance),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers:  []string{"Date", "Day", "Net", "Balance"},
		Rows:     rows,
		RiskRows: risk,
	}))

	if hidden := len(forecast) - len(shown); hidden > 0 {
		fmt.Printf("  ... %d more days (use --all to show everything)\n", hidden)
	}

	return nil
}
