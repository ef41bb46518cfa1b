// Package pipeline implements the cash-flow analytics: balance forecast
// simulation, risk and expense derivation, recurrence detection, and
// payment-delay statistics. Every function is a pure transformation from
// normalized records to report rows.
package pipeline

import (
	"github.com/shopspring/decimal"

	"runway/internal/model"
)

// HorizonDays is the fixed forecast horizon.
const HorizonDays = 90

const dayKey = "2006-01-02"

// Simulate builds the daily balance projection: a contiguous HorizonDays
// sequence anchored at the earliest transaction date. Each day's net is the
// sum of signed amounts of transactions on exactly that date (zero when
// none), and the balance is the running total seeded by startingBalance.
// The result is ordered by date ascending.
//
// Returns nil for an empty ledger; callers guard against that upstream.
func Simulate(txs []model.Transaction, startingBalance decimal.Decimal) []model.ForecastDay {
	if len(txs) == 0 {
		return nil
	}

	start := txs[0].Date
	net := make(map[string]decimal.Decimal)
	for _, t := range txs {
		if t.Date.Before(start) {
			start = t.Date
		}
		key := t.Date.Format(dayKey)
		net[key] = net[key].Add(t.SignedAmount())
	}

	days := make([]model.ForecastDay, 0, HorizonDays)
	balance := startingBalance
	day := start
	for i := 0; i < HorizonDays; i++ {
		dailyNet := net[day.Format(dayKey)]
		balance = balance.Add(dailyNet)
		days = append(days, model.ForecastDay{Date: day, DailyNet: dailyNet, Balance: balance})
		day = day.AddDate(0, 0, 1)
	}

	return days
}
