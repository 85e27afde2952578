package lists

import (
	"time"

	"github.com/google/uuid"

	"github.com/avikapoor/basketline-backend/internal/pricing"
	"github.com/avikapoor/basketline-backend/pkg/db/models"
	"github.com/avikapoor/basketline-backend/pkg/enums"
	"github.com/avikapoor/basketline-backend/pkg/types"
)

// ItemInput is the wire shape for a single item inside a save payload. The
// unit_type discriminates the pricing schema: empty means the legacy
// rate/MRP path.
type ItemInput struct {
	ID           string  `json:"id"`
	Description  string  `json:"description" validate:"required"`
	Quantity     float64 `json:"quantity" validate:"gte=0"`
	UnitType     string  `json:"unit_type" validate:"omitempty,oneof=weight liquid pack count"`
	WeightAmount float64 `json:"weight_amount" validate:"gte=0"`
	WeightUnit   string  `json:"weight_unit"`
	LiquidAmount float64 `json:"liquid_amount" validate:"gte=0"`
	LiquidUnit   string  `json:"liquid_unit"`
	PackAmount   float64 `json:"pack_amount" validate:"gte=0"`
	PackUnit     string  `json:"pack_unit"`
	TotalPrice   float64 `json:"total_price" validate:"gte=0"`
	GSTPercent   float64 `json:"gst_percent" validate:"gte=0"`
	MRP          float64 `json:"mrp" validate:"gte=0"`
	Rate         float64 `json:"rate" validate:"gte=0"`
	Completed    bool    `json:"completed"`
}

// SaveListRequest is the payload for creating or overwriting a list. Saves
// are whole-snapshot writes; the last save wins.
type SaveListRequest struct {
	Name  string      `json:"name" validate:"required"`
	Store string      `json:"store"`
	Month int         `json:"month" validate:"required,min=1,max=12"`
	Year  int         `json:"year" validate:"required,min=1970"`
	Items []ItemInput `json:"items" validate:"dive"`
}

func (r SaveListRequest) toItems() types.ListItems {
	items := make(types.ListItems, 0, len(r.Items))
	for _, input := range r.Items {
		id := input.ID
		if id == "" {
			id = uuid.NewString()
		}
		items = append(items, types.ListItem{
			ID:           id,
			Description:  input.Description,
			Quantity:     input.Quantity,
			UnitType:     enums.UnitType(input.UnitType),
			WeightAmount: input.WeightAmount,
			WeightUnit:   input.WeightUnit,
			LiquidAmount: input.LiquidAmount,
			LiquidUnit:   input.LiquidUnit,
			PackAmount:   input.PackAmount,
			PackUnit:     input.PackUnit,
			TotalPrice:   input.TotalPrice,
			GSTPercent:   input.GSTPercent,
			MRP:          input.MRP,
			Rate:         input.Rate,
			Completed:    input.Completed,
		})
	}
	return items
}

// ItemBreakdownDTO carries the computed pricing fields for one item, rounded
// for display. Unit-aware items populate the normalized fields; legacy items
// populate the discount fields.
type ItemBreakdownDTO struct {
	BasePrice            float64 `json:"base_price"`
	GSTAmount            float64 `json:"gst_amount"`
	LineTotal            float64 `json:"line_total"`
	NormalizedBaseAmount float64 `json:"normalized_base_amount,omitempty"`
	PricePerBaseUnit     float64 `json:"price_per_base_unit,omitempty"`
	DisplayUnit          string  `json:"display_unit,omitempty"`
	Discount             float64 `json:"discount,omitempty"`
	DiscountPercent      float64 `json:"discount_percent,omitempty"`
}

// ItemDTO is a stored item plus its computed breakdown.
type ItemDTO struct {
	types.ListItem
	Breakdown ItemBreakdownDTO `json:"breakdown"`
}

// SummaryDTO is the list-level rollup returned to clients, rounded.
type SummaryDTO struct {
	Subtotal      float64 `json:"subtotal"`
	TotalDiscount float64 `json:"total_discount"`
	TotalTax      float64 `json:"total_tax"`
	GrandTotal    float64 `json:"grand_total"`
}

// ListDTO is the API view of a grocery list.
type ListDTO struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Name        string     `json:"name"`
	Store       string     `json:"store"`
	Month       int        `json:"month"`
	Year        int        `json:"year"`
	Items       []ItemDTO  `json:"items"`
	Summary     SummaryDTO `json:"summary"`
	TotalAmount float64    `json:"total_amount"`
	Shared      bool       `json:"shared"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PageMeta carries cursor pagination state for list pages.
type PageMeta struct {
	Total   int    `json:"total"`
	Current string `json:"current"`
	Next    string `json:"next"`
	Prev    string `json:"prev"`
}

// ListPageDTO is one page of lists visible to the caller.
type ListPageDTO struct {
	Lists      []ListDTO `json:"lists"`
	Pagination PageMeta  `json:"pagination"`
}

func newListDTO(list *models.GroceryList, viewerID uuid.UUID) *ListDTO {
	items := make([]ItemDTO, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, newItemDTO(item))
	}
	summary := Summarize(list.Items)
	return &ListDTO{
		ID:      list.ID,
		OwnerID: list.OwnerID,
		Name:    list.Name,
		Store:   list.Store,
		Month:   list.Month,
		Year:    list.Year,
		Items:   items,
		Summary: SummaryDTO{
			Subtotal:      pricing.RoundMoney(summary.Subtotal),
			TotalDiscount: pricing.RoundMoney(summary.TotalDiscount),
			TotalTax:      pricing.RoundMoney(summary.TotalTax),
			GrandTotal:    pricing.RoundMoney(summary.GrandTotal),
		},
		TotalAmount: list.TotalAmount,
		Shared:      list.OwnerID != viewerID,
		CreatedAt:   list.CreatedAt,
		UpdatedAt:   list.UpdatedAt,
	}
}

func newItemDTO(item types.ListItem) ItemDTO {
	dto := ItemDTO{ListItem: item}
	if item.UnitType.IsLegacy() {
		legacy := pricing.ComputeLegacyTotals(item)
		dto.Breakdown = ItemBreakdownDTO{
			BasePrice:       pricing.RoundMoney(legacy.LineBase),
			GSTAmount:       pricing.RoundMoney(legacy.GSTAmount),
			LineTotal:       pricing.RoundMoney(legacy.Total),
			Discount:        pricing.RoundMoney(legacy.Discount),
			DiscountPercent: legacy.DiscountPercent,
		}
		return dto
	}
	totals := pricing.ComputeTotals(item)
	dto.Breakdown = ItemBreakdownDTO{
		BasePrice:            pricing.RoundMoney(totals.BasePrice),
		GSTAmount:            pricing.RoundMoney(totals.GSTAmount),
		LineTotal:            pricing.RoundMoney(totals.BasePrice + totals.GSTAmount),
		NormalizedBaseAmount: totals.NormalizedBaseAmount,
		PricePerBaseUnit:     pricing.RoundMoney(totals.PricePerBaseUnit),
		DisplayUnit:          totals.DisplayUnit,
	}
	return dto
}
