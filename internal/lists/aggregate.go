package lists

import (
	"github.com/avikapoor/basketline-backend/internal/pricing"
	"github.com/avikapoor/basketline-backend/pkg/types"
)

// ListSummary is the aggregate of a list's non-completed items. Values are
// unrounded; the persisted snapshot total is rounded at save time only.
type ListSummary struct {
	Subtotal      float64 `json:"subtotal"`
	TotalDiscount float64 `json:"total_discount"`
	TotalTax      float64 `json:"total_tax"`
	GrandTotal    float64 `json:"grand_total"`
}

// Summarize folds the items into list-level totals. Completed items stay in
// the list for record keeping but never contribute to money rollups. Only
// legacy rate/MRP items carry a discount. An empty or fully completed list
// yields all zeros.
func Summarize(items types.ListItems) ListSummary {
	var summary ListSummary
	for _, item := range items {
		if item.Completed {
			continue
		}
		line := pricing.ComputeLineTotals(item)
		summary.Subtotal += line.LineBase
		summary.TotalDiscount += line.Discount
		summary.TotalTax += line.GSTAmount
		summary.GrandTotal += line.LineBase + line.GSTAmount
	}
	return summary
}
