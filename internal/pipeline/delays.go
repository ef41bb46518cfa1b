package pipeline

import (
	"math"
	"sort"

	"runway/internal/model"
)

// DelayReport carries per-client mean payment delays along with the count
// of paid invoices, so "no paid invoices" stays distinguishable from "no
// late clients".
type DelayReport struct {
	PaidInvoices int
	Clients      []model.ClientDelay
}

// AnalyzeDelays computes the mean (paid_date - due_date) in days per client
// over paid invoices. Individual delays may be negative (early payment);
// clients whose mean is zero or negative are omitted, not reported as zero.
// Means are rounded to one decimal and sorted descending.
func AnalyzeDelays(invoices []model.Invoice) DelayReport {
	type acc struct {
		total int
		count int
	}
	byClient := make(map[string]*acc)

	var paid int
	for _, inv := range invoices {
		if inv.PaidDate == nil {
			continue
		}
		paid++

		delay := int(inv.PaidDate.Sub(inv.DueDate).Hours() / 24)
		a, ok := byClient[inv.Client]
		if !ok {
			a = &acc{}
			byClient[inv.Client] = a
		}
		a.total += delay
		a.count++
	}

	report := DelayReport{PaidInvoices: paid}
	for client, a := range byClient {
		mean := float64(a.total) / float64(a.count)
		if mean <= 0 {
			continue
		}
		report.Clients = append(report.Clients, model.ClientDelay{
			Client:       client,
			AvgDelayDays: math.Round(mean*10) / 10,
		})
	}

	sort.Slice(report.Clients, func(i, j int) bool {
		a, b := report.Clients[i], report.Clients[j]
		if a.AvgDelayDays != b.AvgDelayDays {
			return a.AvgDelayDays > b.AvgDelayDays
		}
		return a.Client < b.Client
	})

	return report
}
