package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ForecastDay is one row of the daily balance projection.
// Balance is the running total including this day's net.
type ForecastDay struct {
	Date     time.Time
	DailyNet decimal.Decimal
	Balance  decimal.Decimal
}

// RecurringExpense is one detected periodic vendor payment.
type RecurringExpense struct {
	Counterparty string
	AvgGapDays   float64
	Frequency    string
	AvgAmount    decimal.Decimal
	LastPayment  time.Time
	NextExpected time.Time
}

// ClientDelay is the mean payment delay for one late-paying client.
type ClientDelay struct {
	Client       string
	AvgDelayDays float64
}
