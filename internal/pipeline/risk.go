package pipeline

import (
	"sort"

	"github.com/shopspring/decimal"

	"runway/internal/model"
)

// TopExpenseLimit caps the ranked net-outflow table.
const TopExpenseLimit = 10

// RiskDays filters the forecast to days whose projected balance is below
// the threshold. The input ordering (date ascending) is preserved.
func RiskDays(days []model.ForecastDay, threshold decimal.Decimal) []model.ForecastDay {
	var risk []model.ForecastDay
	for _, d := range days {
		if d.Balance.LessThan(threshold) {
			risk = append(risk, d)
		}
	}
	return risk
}

// RiskOnset returns the first day the balance drops below the threshold,
// or ok=false when the balance holds for the whole horizon.
func RiskOnset(days []model.ForecastDay, threshold decimal.Decimal) (model.ForecastDay, bool) {
	for _, d := range days {
		if d.Balance.LessThan(threshold) {
			return d, true
		}
	}
	return model.ForecastDay{}, false
}

// TopExpenseDays ranks net-outflow days (daily net < 0) by absolute net,
// descending. The sort is stable so ties keep forecast date order. At most
// limit rows are returned; pass TopExpenseLimit for the standard table.
func TopExpenseDays(days []model.ForecastDay, limit int) []model.ForecastDay {
	var out []model.ForecastDay
	for _, d := range days {
		if d.DailyNet.IsNegative() {
			out = append(out, d)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DailyNet.Abs().GreaterThan(out[j].DailyNet.Abs())
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
