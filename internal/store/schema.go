package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id                INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at        TEXT NOT NULL,
    transactions_file TEXT,
    invoices_file     TEXT,
    starting_balance  TEXT NOT NULL,
    risk_threshold    TEXT NOT NULL,
    horizon_days      INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS forecast_days (
    run_id     INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    date       TEXT NOT NULL,
    daily_net  TEXT NOT NULL,
    balance    TEXT NOT NULL,
    at_risk    INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (run_id, date)
);

CREATE TABLE IF NOT EXISTS top_expense_days (
    run_id    INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    rank      INTEGER NOT NULL,
    date      TEXT NOT NULL,
    daily_net TEXT NOT NULL,
    balance   TEXT NOT NULL,
    PRIMARY KEY (run_id, rank)
);

CREATE TABLE IF NOT EXISTS recurring_expenses (
    run_id             INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    counterparty       TEXT NOT NULL,
    avg_gap_days       REAL NOT NULL,
    frequency          TEXT NOT NULL,
    avg_amount         TEXT NOT NULL,
    last_payment_date  TEXT NOT NULL,
    next_expected_date TEXT NOT NULL,
    PRIMARY KEY (run_id, counterparty)
);

CREATE TABLE IF NOT EXISTS client_delays (
    run_id         INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    client         TEXT NOT NULL,
    avg_delay_days REAL NOT NULL,
    PRIMARY KEY (run_id, client)
);

CREATE INDEX IF NOT EXISTS idx_forecast_run ON forecast_days(run_id);
`
