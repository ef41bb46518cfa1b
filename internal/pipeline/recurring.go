package pipeline

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"runway/internal/model"
)

// Recurrence detection bounds: a counterparty qualifies with at least
// minOccurrences expense payments and a mean inter-payment gap inside
// [minAvgGapDays, maxAvgGapDays].
const (
	minOccurrences = 3
	minAvgGapDays  = 5.0
	maxAvgGapDays  = 45.0
)

// DetectRecurring infers periodic vendor payments from the expense side of
// the ledger. Transactions without a counterparty are excluded entirely.
// Results are sorted by next expected date ascending, then average amount
// descending, then counterparty. An empty slice is a valid result.
func DetectRecurring(txs []model.Transaction) []model.RecurringExpense {
	groups := make(map[string][]model.Transaction)
	for _, t := range txs {
		if t.Type != model.Expense || t.Counterparty == "" {
			continue
		}
		groups[t.Counterparty] = append(groups[t.Counterparty], t)
	}

	out := make([]model.RecurringExpense, 0, len(groups))
	for vendor, group := range groups {
		if len(group) < minOccurrences {
			continue
		}

		sort.Slice(group, func(i, j int) bool { return group[i].Date.Before(group[j].Date) })

		avgGap := meanGapDays(group)
		if avgGap < minAvgGapDays || avgGap > maxAvgGapDays {
			continue
		}

		sum := decimal.Zero
		for _, t := range group {
			sum = sum.Add(t.Amount)
		}
		avgAmount := sum.Div(decimal.NewFromInt(int64(len(group)))).Round(2)

		last := group[len(group)-1].Date
		out = append(out, model.RecurringExpense{
			Counterparty: vendor,
			AvgGapDays:   avgGap,
			Frequency:    frequencyLabel(avgGap),
			AvgAmount:    avgAmount,
			LastPayment:  last,
			NextExpected: last.AddDate(0, 0, int(math.Round(avgGap))),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.NextExpected.Equal(b.NextExpected) {
			return a.NextExpected.Before(b.NextExpected)
		}
		if !a.AvgAmount.Equal(b.AvgAmount) {
			return a.AvgAmount.GreaterThan(b.AvgAmount)
		}
		return a.Counterparty < b.Counterparty
	})

	return out
}

// meanGapDays is the mean of consecutive-date deltas in whole days.
// group must be sorted by date ascending with at least two entries.
func meanGapDays(group []model.Transaction) float64 {
	var total float64
	for i := 1; i < len(group); i++ {
		total += group[i].Date.Sub(group[i-1].Date).Hours() / 24
	}
	return total / float64(len(group)-1)
}

// frequencyLabel classifies a mean gap into a named cadence band. Gaps
// between the named bands keep the generic "Recurring" label.
func frequencyLabel(avgGap float64) string {
	switch {
	case avgGap >= 5 && avgGap <= 9:
		return "Weekly-ish"
	case avgGap >= 10 && avgGap <= 20:
		return "Bi-weekly-ish"
	case avgGap >= 25 && avgGap <= 35:
		return "Monthly-ish"
	default:
		return "Recurring"
	}
}
