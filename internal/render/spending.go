package render

import (
	"sort"

	"bankreplay/internal/ledger"
)

// Spending filters an account's log to the commerciant payments inside the
// window, excluding card lifecycle records, and aggregates total spend per
// commerciant sorted by name. Both the filtered rows and the totals are
// returned.
func Spending(txs []*ledger.Transaction, start, end int) (rows, totals []map[string]any) {
	spentBy := make(map[string]float64)
	rows = make([]map[string]any, 0)
	for _, tx := range txs {
		if tx.Timestamp < start || tx.Timestamp > end {
			continue
		}
		if tx.Commerciant == "" {
			continue
		}
		if tx.Kind == "createCard" || tx.Kind == "deleteCard" {
			continue
		}
		rows = append(rows, map[string]any{
			"amount":      tx.Amount,
			"commerciant": tx.Commerciant,
			"description": tx.Description,
			"timestamp":   tx.Timestamp,
		})
		spentBy[tx.Commerciant] += tx.Amount
	}

	names := make([]string, 0, len(spentBy))
	for name := range spentBy {
		names = append(names, name)
	}
	sort.Strings(names)
	totals = make([]map[string]any, 0, len(names))
	for _, name := range names {
		totals = append(totals, map[string]any{
			"commerciant": name,
			"total":       spentBy[name],
		})
	}
	return rows, totals
}
