package exports

import (
	"github.com/google/uuid"

	"github.com/avikapoor/basketline-backend/internal/lists"
	"github.com/avikapoor/basketline-backend/internal/pricing"
	"github.com/avikapoor/basketline-backend/pkg/db/models"
)

// ItemRow is one flattened item with its computed pricing fields. Numerics
// are deliberately unrounded; file exporters own the final formatting.
type ItemRow struct {
	ListID               uuid.UUID `json:"list_id"`
	ListName             string    `json:"list_name"`
	Store                string    `json:"store"`
	Month                int       `json:"month"`
	Year                 int       `json:"year"`
	Description          string    `json:"description"`
	Quantity             float64   `json:"quantity"`
	UnitType             string    `json:"unit_type"`
	Completed            bool      `json:"completed"`
	TotalPrice           float64   `json:"total_price"`
	BasePrice            float64   `json:"base_price"`
	GSTAmount            float64   `json:"gst_amount"`
	Discount             float64   `json:"discount"`
	NormalizedBaseAmount float64   `json:"normalized_base_amount"`
	PricePerBaseUnit     float64   `json:"price_per_base_unit"`
	DisplayUnit          string    `json:"display_unit"`
}

// ListRow is the per-list aggregate accompanying its item rows.
type ListRow struct {
	ListID        uuid.UUID `json:"list_id"`
	Name          string    `json:"name"`
	Store         string    `json:"store"`
	Month         int       `json:"month"`
	Year          int       `json:"year"`
	Subtotal      float64   `json:"subtotal"`
	TotalDiscount float64   `json:"total_discount"`
	TotalTax      float64   `json:"total_tax"`
	GrandTotal    float64   `json:"grand_total"`
	SnapshotTotal float64   `json:"snapshot_total"`
}

// GrandTotals sums the per-list aggregates over the whole export.
type GrandTotals struct {
	Subtotal      float64 `json:"subtotal"`
	TotalDiscount float64 `json:"total_discount"`
	TotalTax      float64 `json:"total_tax"`
	GrandTotal    float64 `json:"grand_total"`
	ListCount     int     `json:"list_count"`
	ItemCount     int     `json:"item_count"`
}

// Export is the flattened feed consumed by PDF/XLSX exporters.
type Export struct {
	Items  []ItemRow   `json:"items"`
	Lists  []ListRow   `json:"lists"`
	Totals GrandTotals `json:"totals"`
}

// Flatten expands the lists into export rows. Completed items appear in the
// item rows for record keeping but are excluded from every aggregate, same
// as list totals.
func Flatten(source []models.GroceryList) Export {
	export := Export{
		Items: []ItemRow{},
		Lists: []ListRow{},
	}

	for i := range source {
		list := &source[i]
		summary := lists.Summarize(list.Items)

		export.Lists = append(export.Lists, ListRow{
			ListID:        list.ID,
			Name:          list.Name,
			Store:         list.Store,
			Month:         list.Month,
			Year:          list.Year,
			Subtotal:      summary.Subtotal,
			TotalDiscount: summary.TotalDiscount,
			TotalTax:      summary.TotalTax,
			GrandTotal:    summary.GrandTotal,
			SnapshotTotal: list.TotalAmount,
		})

		export.Totals.Subtotal += summary.Subtotal
		export.Totals.TotalDiscount += summary.TotalDiscount
		export.Totals.TotalTax += summary.TotalTax
		export.Totals.GrandTotal += summary.GrandTotal
		export.Totals.ListCount++

		for _, item := range list.Items {
			row := ItemRow{
				ListID:      list.ID,
				ListName:    list.Name,
				Store:       list.Store,
				Month:       list.Month,
				Year:        list.Year,
				Description: item.Description,
				Quantity:    item.Quantity,
				UnitType:    item.UnitType.String(),
				Completed:   item.Completed,
				TotalPrice:  item.TotalPrice,
			}
			if item.UnitType.IsLegacy() {
				legacy := pricing.ComputeLegacyTotals(item)
				row.TotalPrice = legacy.Total
				row.BasePrice = legacy.LineBase
				row.GSTAmount = legacy.GSTAmount
				row.Discount = legacy.Discount
			} else {
				totals := pricing.ComputeTotals(item)
				row.BasePrice = totals.BasePrice
				row.GSTAmount = totals.GSTAmount
				row.NormalizedBaseAmount = totals.NormalizedBaseAmount
				row.PricePerBaseUnit = totals.PricePerBaseUnit
				row.DisplayUnit = totals.DisplayUnit
			}
			export.Items = append(export.Items, row)
			if !item.Completed {
				export.Totals.ItemCount++
			}
		}
	}
	return export
}
