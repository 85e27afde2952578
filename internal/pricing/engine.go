package pricing

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/avikapoor/basketline-backend/pkg/enums"
	"github.com/avikapoor/basketline-backend/pkg/types"
)

// ItemTotals is the computed breakdown for a unit-aware item. Amounts are
// unrounded; RoundMoney is applied only at display/snapshot boundaries.
type ItemTotals struct {
	BasePrice            float64
	GSTAmount            float64
	NormalizedBaseAmount float64
	PricePerBaseUnit     float64
	DisplayUnit          string
}

// LegacyTotals is the computed breakdown for a legacy rate/MRP item.
type LegacyTotals struct {
	LineBase        float64
	Discount        float64
	GSTAmount       float64
	Total           float64
	DiscountPercent float64
}

// LineTotals unifies both schemas for aggregation: the line's pre-tax base,
// its tax amount, and the discount (zero for unit-aware items).
type LineTotals struct {
	LineBase  float64
	GSTAmount float64
	Discount  float64
}

// ComputeTotals derives the pricing breakdown for a unit-aware item. The
// stored total is tax inclusive, so the base price is extracted by dividing
// out the GST rate rather than adding tax on top.
func ComputeTotals(item types.ListItem) ItemTotals {
	basePrice := item.TotalPrice / (1 + item.GSTPercent/100)
	gstAmount := item.TotalPrice - basePrice

	rawAmount, unitSymbol := unitFields(item)
	perUnitBase := ToBaseUnits(item.UnitType, rawAmount, unitSymbol)

	totals := ItemTotals{
		BasePrice:   basePrice,
		GSTAmount:   gstAmount,
		DisplayUnit: displayUnit(item.UnitType, unitSymbol),
	}

	if item.UnitType == enums.UnitTypeCount {
		totals.NormalizedBaseAmount = item.Quantity
		if item.Quantity > 0 {
			totals.PricePerBaseUnit = item.TotalPrice / item.Quantity
		}
		return totals
	}

	totals.NormalizedBaseAmount = perUnitBase * item.Quantity
	// Price per kg/l of a single unit's magnitude, not scaled by quantity.
	if perUnitBase > 0 {
		totals.PricePerBaseUnit = item.TotalPrice / (perUnitBase / 1000)
	}
	return totals
}

// ComputeLegacyTotals derives the breakdown for a legacy rate/MRP item.
func ComputeLegacyTotals(item types.ListItem) LegacyTotals {
	lineBase := item.Quantity * item.Rate
	gstAmount := lineBase * item.GSTPercent / 100

	totals := LegacyTotals{
		LineBase:  lineBase,
		GSTAmount: gstAmount,
		Total:     lineBase + gstAmount,
	}
	if item.MRP > 0 {
		totals.Discount = (item.MRP - item.Rate) * item.Quantity
		totals.DiscountPercent = math.Round((item.MRP - item.Rate) / item.MRP * 100)
	}
	return totals
}

// ComputeLineTotals dispatches on the schema discriminant and returns the
// unified line contribution used by list aggregation.
func ComputeLineTotals(item types.ListItem) LineTotals {
	if item.UnitType.IsLegacy() {
		legacy := ComputeLegacyTotals(item)
		return LineTotals{
			LineBase:  legacy.LineBase,
			GSTAmount: legacy.GSTAmount,
			Discount:  legacy.Discount,
		}
	}
	totals := ComputeTotals(item)
	return LineTotals{
		LineBase:  totals.BasePrice,
		GSTAmount: totals.GSTAmount,
	}
}

// RoundMoney rounds a currency amount to two decimals for display or
// snapshot storage. Internal accumulation stays full precision.
func RoundMoney(amount float64) float64 {
	rounded, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return rounded
}

func unitFields(item types.ListItem) (float64, string) {
	switch item.UnitType {
	case enums.UnitTypeWeight:
		return item.WeightAmount, item.WeightUnit
	case enums.UnitTypeLiquid:
		return item.LiquidAmount, item.LiquidUnit
	case enums.UnitTypePack:
		return item.PackAmount, item.PackUnit
	default:
		return 0, ""
	}
}

func displayUnit(unitType enums.UnitType, unitSymbol string) string {
	switch unitType {
	case enums.UnitTypeWeight:
		return "kg"
	case enums.UnitTypeLiquid:
		return "l"
	case enums.UnitTypePack:
		if PackIsWeight(unitSymbol) {
			return "kg"
		}
		return "l"
	case enums.UnitTypeCount:
		return "unit"
	default:
		return ""
	}
}
