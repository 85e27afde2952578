package pricing

import (
	"math"
	"testing"

	"github.com/avikapoor/basketline-backend/pkg/enums"
	"github.com/avikapoor/basketline-backend/pkg/types"
)

const tolerance = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestComputeTotalsWeightExample(t *testing.T) {
	item := types.ListItem{
		Quantity:     2,
		UnitType:     enums.UnitTypeWeight,
		WeightAmount: 500,
		WeightUnit:   "g",
		TotalPrice:   100,
		GSTPercent:   5,
	}

	totals := ComputeTotals(item)

	if !almostEqual(totals.BasePrice, 100.0/1.05) {
		t.Fatalf("base price = %v, want %v", totals.BasePrice, 100.0/1.05)
	}
	if RoundMoney(totals.BasePrice) != 95.24 {
		t.Fatalf("rounded base price = %v, want 95.24", RoundMoney(totals.BasePrice))
	}
	if RoundMoney(totals.GSTAmount) != 4.76 {
		t.Fatalf("rounded gst amount = %v, want 4.76", RoundMoney(totals.GSTAmount))
	}
	if totals.NormalizedBaseAmount != 1000 {
		t.Fatalf("normalized base amount = %v, want 1000", totals.NormalizedBaseAmount)
	}
	// Price per kg of one 500g unit, not scaled by quantity.
	if totals.PricePerBaseUnit != 200 {
		t.Fatalf("price per base unit = %v, want 200", totals.PricePerBaseUnit)
	}
	if totals.DisplayUnit != "kg" {
		t.Fatalf("display unit = %q, want kg", totals.DisplayUnit)
	}
}

func TestComputeTotalsTaxRoundTrip(t *testing.T) {
	cases := []struct {
		totalPrice float64
		gstPercent float64
	}{
		{100, 5},
		{249.99, 18},
		{13.37, 0},
		{999, 12.5},
	}

	for _, tc := range cases {
		item := types.ListItem{
			Quantity:     1,
			UnitType:     enums.UnitTypeWeight,
			WeightAmount: 1,
			WeightUnit:   "kg",
			TotalPrice:   tc.totalPrice,
			GSTPercent:   tc.gstPercent,
		}
		totals := ComputeTotals(item)

		reconstructed := totals.BasePrice * (1 + tc.gstPercent/100)
		if !almostEqual(reconstructed, tc.totalPrice) {
			t.Fatalf("tax extraction does not round-trip: %v != %v", reconstructed, tc.totalPrice)
		}
		if !almostEqual(totals.BasePrice+totals.GSTAmount, tc.totalPrice) {
			t.Fatalf("base+gst != total: %v + %v != %v", totals.BasePrice, totals.GSTAmount, tc.totalPrice)
		}
	}
}

func TestComputeTotalsLiquidAndPack(t *testing.T) {
	liquid := ComputeTotals(types.ListItem{
		Quantity:     3,
		UnitType:     enums.UnitTypeLiquid,
		LiquidAmount: 1,
		LiquidUnit:   "l",
		TotalPrice:   60,
		GSTPercent:   0,
	})
	if liquid.NormalizedBaseAmount != 3000 {
		t.Fatalf("liquid normalized = %v, want 3000", liquid.NormalizedBaseAmount)
	}
	if liquid.PricePerBaseUnit != 60 {
		t.Fatalf("liquid price per litre = %v, want 60", liquid.PricePerBaseUnit)
	}
	if liquid.DisplayUnit != "l" {
		t.Fatalf("liquid display unit = %q, want l", liquid.DisplayUnit)
	}

	packWeight := ComputeTotals(types.ListItem{
		Quantity:   1,
		UnitType:   enums.UnitTypePack,
		PackAmount: 250,
		PackUnit:   "g",
		TotalPrice: 50,
		GSTPercent: 0,
	})
	if packWeight.DisplayUnit != "kg" {
		t.Fatalf("weight pack display unit = %q, want kg", packWeight.DisplayUnit)
	}
	if packWeight.PricePerBaseUnit != 200 {
		t.Fatalf("weight pack price per kg = %v, want 200", packWeight.PricePerBaseUnit)
	}

	packLiquid := ComputeTotals(types.ListItem{
		Quantity:   2,
		UnitType:   enums.UnitTypePack,
		PackAmount: 500,
		PackUnit:   "ml",
		TotalPrice: 90,
		GSTPercent: 0,
	})
	if packLiquid.DisplayUnit != "l" {
		t.Fatalf("liquid pack display unit = %q, want l", packLiquid.DisplayUnit)
	}
	if packLiquid.NormalizedBaseAmount != 1000 {
		t.Fatalf("liquid pack normalized = %v, want 1000", packLiquid.NormalizedBaseAmount)
	}
}

func TestComputeTotalsCount(t *testing.T) {
	totals := ComputeTotals(types.ListItem{
		Quantity:   4,
		UnitType:   enums.UnitTypeCount,
		TotalPrice: 120,
		GSTPercent: 0,
	})
	if totals.NormalizedBaseAmount != 4 {
		t.Fatalf("count normalized = %v, want 4", totals.NormalizedBaseAmount)
	}
	if totals.PricePerBaseUnit != 30 {
		t.Fatalf("count price per unit = %v, want 30", totals.PricePerBaseUnit)
	}
	if totals.DisplayUnit != "unit" {
		t.Fatalf("count display unit = %q, want unit", totals.DisplayUnit)
	}
}

func TestComputeTotalsDivisionGuards(t *testing.T) {
	zeroQty := ComputeTotals(types.ListItem{
		UnitType:   enums.UnitTypeCount,
		Quantity:   0,
		TotalPrice: 10,
	})
	if zeroQty.PricePerBaseUnit != 0 {
		t.Fatalf("zero quantity count should yield 0, got %v", zeroQty.PricePerBaseUnit)
	}

	zeroAmount := ComputeTotals(types.ListItem{
		UnitType:   enums.UnitTypeWeight,
		Quantity:   1,
		WeightUnit: "kg",
		TotalPrice: 10,
	})
	if zeroAmount.PricePerBaseUnit != 0 {
		t.Fatalf("zero magnitude should yield 0, got %v", zeroAmount.PricePerBaseUnit)
	}
	if math.IsNaN(zeroAmount.PricePerBaseUnit) || math.IsInf(zeroAmount.PricePerBaseUnit, 0) {
		t.Fatal("division guard must never produce NaN/Inf")
	}
}

func TestComputeLegacyTotals(t *testing.T) {
	totals := ComputeLegacyTotals(types.ListItem{
		Quantity:   2,
		Rate:       40,
		MRP:        50,
		GSTPercent: 5,
	})
	if totals.LineBase != 80 {
		t.Fatalf("line base = %v, want 80", totals.LineBase)
	}
	if totals.Discount != 20 {
		t.Fatalf("discount = %v, want 20", totals.Discount)
	}
	if !almostEqual(totals.GSTAmount, 4) {
		t.Fatalf("gst = %v, want 4", totals.GSTAmount)
	}
	if !almostEqual(totals.Total, 84) {
		t.Fatalf("total = %v, want 84", totals.Total)
	}
	if totals.DiscountPercent != 20 {
		t.Fatalf("discount percent = %v, want 20", totals.DiscountPercent)
	}
}

func TestComputeLegacyTotalsWithoutMRP(t *testing.T) {
	totals := ComputeLegacyTotals(types.ListItem{
		Quantity: 3,
		Rate:     10,
	})
	if totals.Discount != 0 || totals.DiscountPercent != 0 {
		t.Fatalf("no-MRP item should carry no discount, got %v / %v", totals.Discount, totals.DiscountPercent)
	}
	if totals.Total != 30 {
		t.Fatalf("total = %v, want 30", totals.Total)
	}
}

func TestComputeLineTotalsDispatch(t *testing.T) {
	legacy := ComputeLineTotals(types.ListItem{Quantity: 2, Rate: 40, MRP: 50, GSTPercent: 5})
	if legacy.LineBase != 80 || legacy.Discount != 20 {
		t.Fatalf("legacy dispatch wrong: %+v", legacy)
	}

	unitAware := ComputeLineTotals(types.ListItem{
		Quantity:     1,
		UnitType:     enums.UnitTypeWeight,
		WeightAmount: 1,
		WeightUnit:   "kg",
		TotalPrice:   105,
		GSTPercent:   5,
	})
	if !almostEqual(unitAware.LineBase, 100) {
		t.Fatalf("unit-aware line base = %v, want 100", unitAware.LineBase)
	}
	if unitAware.Discount != 0 {
		t.Fatalf("unit-aware items never discount, got %v", unitAware.Discount)
	}
}

func TestRoundMoney(t *testing.T) {
	if got := RoundMoney(95.238095); got != 95.24 {
		t.Fatalf("RoundMoney = %v, want 95.24", got)
	}
	if got := RoundMoney(4.761904); got != 4.76 {
		t.Fatalf("RoundMoney = %v, want 4.76", got)
	}
	if got := RoundMoney(0); got != 0 {
		t.Fatalf("RoundMoney(0) = %v", got)
	}
}
