// Package store writes completed analysis runs to a SQLite file for
// downstream tools. It is write-only: every run is recomputed from the
// input ledgers and the pipeline never reads results back from here.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"runway/internal/model"
	"runway/internal/pipeline"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DB wraps the export database.
type DB struct {
	db *sql.DB
}

// Open opens or creates the export database at the given path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening export db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the export database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Run bundles everything produced by one analysis run.
type Run struct {
	TransactionsFile string
	InvoicesFile     string
	StartingBalance  decimal.Decimal
	RiskThreshold    decimal.Decimal
	Forecast         []model.ForecastDay
	TopExpenses      []model.ForecastDay
	Recurring        []model.RecurringExpense
	Delays           pipeline.DelayReport
}

// SaveRun writes one run and all of its derived tables in a single
// transaction, returning the new run id.
func (d *DB) SaveRun(run Run) (int64, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`INSERT INTO runs
		(created_at, transactions_file, invoices_file, starting_balance, risk_threshold, horizon_days)
		VALUES (?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), run.TransactionsFile, run.InvoicesFile,
		run.StartingBalance.String(), run.RiskThreshold.String(), pipeline.HorizonDays,
	)
	if err != nil {
		return 0, err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, fd := range run.Forecast {
		atRisk := 0
		if fd.Balance.LessThan(run.RiskThreshold) {
			atRisk = 1
		}
		_, err = tx.Exec(`INSERT INTO forecast_days (run_id, date, daily_net, balance, at_risk)
			VALUES (?, ?, ?, ?, ?)`,
			runID, fd.Date.Format("2006-01-02"), fd.DailyNet.String(), fd.Balance.String(), atRisk,
		)
		if err != nil {
			return 0, err
		}
	}

	for i, fd := range run.TopExpenses {
		_, err = tx.Exec(`INSERT INTO top_expense_days (run_id, rank, date, daily_net, balance)
			VALUES (?, ?, ?, ?, ?)`,
			runID, i+1, fd.Date.Format("2006-01-02"), fd.DailyNet.String(), fd.Balance.String(),
		)
		if err != nil {
			return 0, err
		}
	}

	for _, re := range run.Recurring {
		_, err = tx.Exec(`INSERT INTO recurring_expenses
			(run_id, counterparty, avg_gap_days, frequency, avg_amount, last_payment_date, next_expected_date)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			runID, re.Counterparty, re.AvgGapDays, re.Frequency, re.AvgAmount.String(),
			re.LastPayment.Format("2006-01-02"), re.NextExpected.Format("2006-01-02"),
		)
		if err != nil {
			return 0, err
		}
	}

	for _, cd := range run.Delays.Clients {
		_, err = tx.Exec(`INSERT INTO client_delays (run_id, client, avg_delay_days)
			VALUES (?, ?, ?)`,
			runID, cd.Client, cd.AvgDelayDays,
		)
		if err != nil {
			return 0, err
		}
	}

	return runID, tx.Commit()
}
