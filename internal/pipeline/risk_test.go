package pipeline

import (
	"testing"

	"github.com/shopspring/decimal"

	"runway/internal/model"
)

func TestRiskDays_FilterAndOnset(t *testing.T) {
	txs := []model.Transaction{
		tx(t, "2025-06-01", model.Income, "1000", ""),
		tx(t, "2025-06-02", model.Expense, "200", ""),
		tx(t, "2025-06-03", model.Expense, "300", ""),
	}
	forecast := Simulate(txs, dec(t, "500"))

	// Balances run 1500, 1300, 1000, then flat. Nothing dips below 900.
	if risk := RiskDays(forecast, dec(t, "900")); len(risk) != 0 {
		t.Errorf("risk days below 900 = %d, want 0", len(risk))
	}
	if _, ok := RiskOnset(forecast, dec(t, "900")); ok {
		t.Error("RiskOnset below 900 = ok, want none")
	}

	// Everything from day 1 onward sits below 1400.
	risk := RiskDays(forecast, dec(t, "1400"))
	if len(risk) != HorizonDays-1 {
		t.Fatalf("risk days below 1400 = %d, want %d", len(risk), HorizonDays-1)
	}
	onset, ok := RiskOnset(forecast, dec(t, "1400"))
	if !ok {
		t.Fatal("RiskOnset below 1400 = none, want day 2")
	}
	if !onset.Date.Equal(day(t, "2025-06-02")) {
		t.Errorf("onset date = %v, want 2025-06-02", onset.Date)
	}
	if !onset.Balance.Equal(dec(t, "1300")) {
		t.Errorf("onset balance = %s, want 1300", onset.Balance)
	}
}

func TestRiskDays_ExactThresholdNotAtRisk(t *testing.T) {
	forecast := []model.ForecastDay{
		{Date: day(t, "2025-06-01"), Balance: dec(t, "1000")},
		{Date: day(t, "2025-06-02"), Balance: dec(t, "999.99")},
	}

	risk := RiskDays(forecast, dec(t, "1000"))
	if len(risk) != 1 {
		t.Fatalf("risk days = %d, want 1 (strict less-than)", len(risk))
	}
	if !risk[0].Date.Equal(day(t, "2025-06-02")) {
		t.Errorf("risk day = %v, want 2025-06-02", risk[0].Date)
	}
}

func TestTopExpenseDays_RankingAndLimit(t *testing.T) {
	var txs []model.Transaction
	// 12 expense days with strictly growing amounts: 10, 20, ... 120.
	dates := []string{
		"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04",
		"2025-06-05", "2025-06-06", "2025-06-07", "2025-06-08",
		"2025-06-09", "2025-06-10", "2025-06-11", "2025-06-12",
	}
	amounts := []string{"10", "20", "30", "40", "50", "60", "70", "80", "90", "100", "110", "120"}
	for i, d := range dates {
		txs = append(txs, tx(t, d, model.Expense, amounts[i], ""))
	}
	forecast := Simulate(txs, decimal.Zero)

	top := TopExpenseDays(forecast, TopExpenseLimit)

	if len(top) != 10 {
		t.Fatalf("len = %d, want 10", len(top))
	}
	if !top[0].DailyNet.Equal(dec(t, "-120")) {
		t.Errorf("top[0].DailyNet = %s, want -120", top[0].DailyNet)
	}
	for i := 1; i < len(top); i++ {
		if top[i].DailyNet.Abs().GreaterThan(top[i-1].DailyNet.Abs()) {
			t.Fatalf("ranking not descending at %d: %s after %s",
				i, top[i].DailyNet, top[i-1].DailyNet)
		}
	}
	// The two smallest outflows (10, 20) fall off the end.
	for _, d := range top {
		if d.DailyNet.Equal(dec(t, "-10")) || d.DailyNet.Equal(dec(t, "-20")) {
			t.Errorf("day with net %s should be truncated out", d.DailyNet)
		}
	}
}

func TestTopExpenseDays_StableTieKeepsDateOrder(t *testing.T) {
	txs := []model.Transaction{
		tx(t, "2025-06-03", model.Expense, "50", ""),
		tx(t, "2025-06-01", model.Expense, "50", ""),
		tx(t, "2025-06-02", model.Expense, "75", ""),
	}
	forecast := Simulate(txs, decimal.Zero)

	top := TopExpenseDays(forecast, TopExpenseLimit)

	if len(top) != 3 {
		t.Fatalf("len = %d, want 3", len(top))
	}
	if !top[0].Date.Equal(day(t, "2025-06-02")) {
		t.Errorf("top[0] = %v, want the 75 outflow day", top[0].Date)
	}
	if !top[1].Date.Equal(day(t, "2025-06-01")) || !top[2].Date.Equal(day(t, "2025-06-03")) {
		t.Errorf("tied days out of date order: %v then %v", top[1].Date, top[2].Date)
	}
}

func TestTopExpenseDays_IgnoresInflowDays(t *testing.T) {
	txs := []model.Transaction{
		tx(t, "2025-06-01", model.Income, "500", ""),
		tx(t, "2025-06-02", model.Expense, "100", ""),
	}
	forecast := Simulate(txs, decimal.Zero)

	top := TopExpenseDays(forecast, TopExpenseLimit)
	if len(top) != 1 {
		t.Fatalf("len = %d, want 1", len(top))
	}
	if !top[0].DailyNet.Equal(dec(t, "-100")) {
		t.Errorf("top[0].DailyNet = %s, want -100", top[0].DailyNet)
	}
}
