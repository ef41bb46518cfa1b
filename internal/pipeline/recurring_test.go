package pipeline

import (
	"testing"

	"runway/internal/model"
)

func TestDetectRecurring_MonthlyExample(t *testing.T) {
	// Expenses on days 0, 30, 60, 90: avg gap 30, next expected on day 120.
	txs := []model.Transaction{
		tx(t, "2025-01-01", model.Expense, "100", "Initech Rent"),
		tx(t, "2025-01-31", model.Expense, "100", "Initech Rent"),
		tx(t, "2025-03-02", model.Expense, "100", "Initech Rent"),
		tx(t, "2025-04-01", model.Expense, "100", "Initech Rent"),
	}

	got := DetectRecurring(txs)

	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	r := got[0]
	if r.AvgGapDays != 30 {
		t.Errorf("AvgGapDays = %v, want 30", r.AvgGapDays)
	}
	if r.Frequency != "Monthly-ish" {
		t.Errorf("Frequency = %q, want Monthly-ish", r.Frequency)
	}
	if !r.AvgAmount.Equal(dec(t, "100")) {
		t.Errorf("AvgAmount = %s, want 100", r.AvgAmount)
	}
	if !r.LastPayment.Equal(day(t, "2025-04-01")) {
		t.Errorf("LastPayment = %v, want 2025-04-01", r.LastPayment)
	}
	if !r.NextExpected.Equal(day(t, "2025-05-01")) {
		t.Errorf("NextExpected = %v, want 2025-05-01 (last + 30d)", r.NextExpected)
	}
}

func TestDetectRecurring_SkipsBelowMinOccurrences(t *testing.T) {
	txs := []model.Transaction{
		tx(t, "2025-01-01", model.Expense, "50", "Two Timer"),
		tx(t, "2025-01-31", model.Expense, "50", "Two Timer"),
	}

	if got := DetectRecurring(txs); len(got) != 0 {
		t.Errorf("len = %d, want 0 for counterparty with <3 expenses", len(got))
	}
}

func TestDetectRecurring_GapWindow(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"too tight (avg 2d)", []string{"2025-01-01", "2025-01-03", "2025-01-05"}, 0},
		{"too loose (avg 60d)", []string{"2025-01-01", "2025-03-02", "2025-05-01"}, 0},
		{"lower edge (avg 5d)", []string{"2025-01-01", "2025-01-06", "2025-01-11"}, 1},
		{"upper edge (avg 45d)", []string{"2025-01-01", "2025-02-15", "2025-04-01"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var txs []model.Transaction
			for _, d := range tt.dates {
				txs = append(txs, tx(t, d, model.Expense, "10", "Vendor"))
			}
			if got := DetectRecurring(txs); len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestDetectRecurring_ExcludesBlankCounterpartyAndIncome(t *testing.T) {
	txs := []model.Transaction{
		// No counterparty: excluded entirely even with a clean cadence.
		tx(t, "2025-01-01", model.Expense, "10", ""),
		tx(t, "2025-01-31", model.Expense, "10", ""),
		tx(t, "2025-03-02", model.Expense, "10", ""),
		// Income rows never feed recurrence detection.
		tx(t, "2025-01-01", model.Income, "10", "Retainer Client"),
		tx(t, "2025-01-31", model.Income, "10", "Retainer Client"),
		tx(t, "2025-03-02", model.Income, "10", "Retainer Client"),
	}

	if got := DetectRecurring(txs); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestDetectRecurring_AveragesAmounts(t *testing.T) {
	txs := []model.Transaction{
		tx(t, "2025-01-01", model.Expense, "90", "Cloud Bill"),
		tx(t, "2025-01-31", model.Expense, "110", "Cloud Bill"),
		tx(t, "2025-03-02", model.Expense, "100.50", "Cloud Bill"),
	}

	got := DetectRecurring(txs)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if !got[0].AvgAmount.Equal(dec(t, "100.17")) {
		t.Errorf("AvgAmount = %s, want 100.17 (mean rounded to 2dp)", got[0].AvgAmount)
	}
}

func TestDetectRecurring_Ordering(t *testing.T) {
	mk := func(vendor, amount string, dates ...string) []model.Transaction {
		var txs []model.Transaction
		for _, d := range dates {
			txs = append(txs, tx(t, d, model.Expense, amount, vendor))
		}
		return txs
	}

	var txs []model.Transaction
	// Later next-expected date.
	txs = append(txs, mk("B Later", "500", "2025-01-10", "2025-02-09", "2025-03-11")...)
	// Earlier next-expected date, cheaper.
	txs = append(txs, mk("C Cheap", "100", "2025-01-01", "2025-01-31", "2025-03-02")...)
	// Same next-expected date as C Cheap, more expensive: ranks first of the two.
	txs = append(txs, mk("A Pricey", "900", "2025-01-01", "2025-01-31", "2025-03-02")...)

	got := DetectRecurring(txs)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	wantOrder := []string{"A Pricey", "C Cheap", "B Later"}
	for i, want := range wantOrder {
		if got[i].Counterparty != want {
			t.Errorf("got[%d] = %q, want %q", i, got[i].Counterparty, want)
		}
	}
}

func TestFrequencyLabel(t *testing.T) {
	tests := []struct {
		gap  float64
		want string
	}{
		{5, "Weekly-ish"},
		{7.5, "Weekly-ish"},
		{9, "Weekly-ish"},
		{9.5, "Recurring"},
		{10, "Bi-weekly-ish"},
		{20, "Bi-weekly-ish"},
		{22, "Recurring"},
		{25, "Monthly-ish"},
		{31.2, "Monthly-ish"},
		{35, "Monthly-ish"},
		{36, "Recurring"},
		{45, "Recurring"},
	}

	for _, tt := range tests {
		if got := frequencyLabel(tt.gap); got != tt.want {
			t.Errorf("frequencyLabel(%v) = %q, want %q", tt.gap, got, tt.want)
		}
	}
}
