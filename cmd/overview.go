package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"runway/internal/cli"
	"runway/internal/model"
	"runway/internal/pipeline"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Headline forecast metrics and risk summary",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(_ *cobra.Command, _ []string) error {
	txs, err := loadTransactions()
	if err != nil {
		return err
	}

	forecast := pipeline.Simulate(txs, startingBalance())
	threshold := riskThreshold()
	riskDays := pipeline.RiskDays(forecast, threshold)

	lowest := forecast[0]
	for _, d := range forecast[1:] {
		if d.Balance.LessThan(lowest.Balance) {
			lowest = d
		}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("RUNWAY  %d-day outlook", pipeline.HorizonDays)))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Starting balance", cli.FormatMoney(startingBalance())},
			{"Lowest projected balance", fmt.Sprintf("%s on %s",
				cli.FormatMoney(lowest.Balance), cli.FormatDate(lowest.Date))},
			{"Risk days (balance < threshold)", cli.FormatNumber(int64(len(riskDays)))},
		},
	}))

	fmt.Println()
	if onset, ok := pipeline.RiskOnset(forecast, threshold); ok {
		fmt.Printf("  Balance first drops below %s on %s, with a projected balance of %s.\n",
			cli.FormatMoney(threshold), cli.FormatDate(onset.Date), cli.FormatMoney(onset.Balance))
	} else {
		fmt.Printf("  Balance stays above %s for all %d days.\n",
			cli.FormatMoney(threshold), pipeline.HorizonDays)
	}

	// Recent transaction snapshot, newest first
	recent := make([]model.Transaction, len(txs))
	copy(recent, txs)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date.After(recent[j].Date) })
	if len(recent) > 10 {
		recent = recent[:10]
	}

	rows := make([][]string, 0, len(recent))
	for _, t := range recent {
		rows = append(rows, []string{
			cli.FormatDate(t.Date),
			string(t.Type),
			cli.FormatMoney(t.SignedAmount()),
			t.Counterparty,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Recent transactions",
		Headers: []string{"Date", "Type", "Amount", "Counterparty"},
		Rows:    rows,
	}))

	return nil
}
