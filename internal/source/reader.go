// Package source reads and normalizes the transaction and invoice CSV ledgers.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"runway/internal/model"
)

// Required columns per dataset. Extra columns are ignored.
var (
	requiredTxColumns      = []string{"date", "type", "amount"}
	requiredInvoiceColumns = []string{"client", "issue_date", "due_date", "paid_date", "amount"}
)

// ReadTransactionsFile reads and normalizes the transactions ledger at path.
func ReadTransactionsFile(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening transactions file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ReadTransactions(f)
}

// ReadTransactions parses the transactions CSV into normalized records.
// Validation is strict for the required columns: a missing column yields a
// SchemaError, an unparseable date a DateParseError, and an unknown type or
// a non-numeric/negative amount a FieldError. Row order is preserved.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cols, rows, err := readTable(r, "transactions", requiredTxColumns)
	if err != nil {
		return nil, err
	}

	txs := make([]model.Transaction, 0, len(rows))
	for i, row := range rows {
		rowNum := i + 1

		rawDate := cols.get(row, "date")
		date, ok := parseDate(rawDate)
		if !ok {
			return nil, &DateParseError{Dataset: "transactions", Column: "date", Value: rawDate, Row: rowNum}
		}

		rawType := cols.get(row, "type")
		txType, err := model.ParseTxType(rawType)
		if err != nil {
			return nil, &FieldError{
				Dataset: "transactions", Column: "type", Value: rawType, Row: rowNum,
				Reason: "want income or expense",
			}
		}

		rawAmount := cols.get(row, "amount")
		amount, err := parseAmount(rawAmount)
		if err != nil {
			return nil, &FieldError{
				Dataset: "transactions", Column: "amount", Value: rawAmount, Row: rowNum,
				Reason: err.Error(),
			}
		}

		txs = append(txs, model.Transaction{
			Date:         date,
			Type:         txType,
			Amount:       amount,
			Category:     cols.get(row, "category"),
			Counterparty: cols.get(row, "client_or_vendor"),
			Notes:        cols.get(row, "notes"),
		})
	}

	return txs, nil
}

// ReadInvoicesFile reads and normalizes the invoice ledger at path.
func ReadInvoicesFile(path string) ([]model.Invoice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening invoices file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ReadInvoices(f)
}

// ReadInvoices parses the invoices CSV. issue_date and due_date parse
// strictly; paid_date parses leniently: a blank or unparseable value marks
// the invoice unpaid instead of failing the dataset. invoice_id is read
// when present but is not required.
func ReadInvoices(r io.Reader) ([]model.Invoice, error) {
	cols, rows, err := readTable(r, "invoices", requiredInvoiceColumns)
	if err != nil {
		return nil, err
	}

	invs := make([]model.Invoice, 0, len(rows))
	for i, row := range rows {
		rowNum := i + 1

		rawIssue := cols.get(row, "issue_date")
		issue, ok := parseDate(rawIssue)
		if !ok {
			return nil, &DateParseError{Dataset: "invoices", Column: "issue_date", Value: rawIssue, Row: rowNum}
		}

		rawDue := cols.get(row, "due_date")
		due, ok := parseDate(rawDue)
		if !ok {
			return nil, &DateParseError{Dataset: "invoices", Column: "due_date", Value: rawDue, Row: rowNum}
		}

		rawAmount := cols.get(row, "amount")
		amount, err := parseAmount(rawAmount)
		if err != nil {
			return nil, &FieldError{
				Dataset: "invoices", Column: "amount", Value: rawAmount, Row: rowNum,
				Reason: err.Error(),
			}
		}

		inv := model.Invoice{
			ID:        cols.get(row, "invoice_id"),
			Client:    cols.get(row, "client"),
			IssueDate: issue,
			DueDate:   due,
			Amount:    amount,
		}
		if paid, ok := parseDate(cols.get(row, "paid_date")); ok {
			inv.PaidDate = &paid
		}

		invs = append(invs, inv)
	}

	return invs, nil
}

// columnIndex maps lowercased header names to field positions.
type columnIndex map[string]int

// get returns the trimmed cell for the named column, or "" when the column
// is absent or the row is short.
func (c columnIndex) get(row []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// readTable reads the header and all data rows, validating that every
// required column is present. A missing header (empty input) reports all
// required columns as missing.
func readTable(r io.Reader, dataset string, required []string) (columnIndex, [][]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, &SchemaError{Dataset: dataset, Missing: required}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s header: %w", dataset, err)
	}

	cols := make(columnIndex, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}

	var missing []string
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, nil, &SchemaError{Dataset: dataset, Missing: missing}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s rows: %w", dataset, err)
	}
	return cols, rows, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, errors.New("not a number")
	}
	if d.IsNegative() {
		return decimal.Zero, errors.New("must be non-negative")
	}
	return d, nil
}
