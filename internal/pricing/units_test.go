package pricing

import (
	"testing"

	"github.com/avikapoor/basketline-backend/pkg/enums"
)

func TestToBaseUnitsFactors(t *testing.T) {
	cases := []struct {
		name     string
		unitType enums.UnitType
		amount   float64
		symbol   string
		want     float64
	}{
		{"grams are identity", enums.UnitTypeWeight, 250, "g", 250},
		{"kilograms scale by 1000", enums.UnitTypeWeight, 1.5, "kg", 1500},
		{"millilitres are identity", enums.UnitTypeLiquid, 330, "ml", 330},
		{"litres scale by 1000", enums.UnitTypeLiquid, 2, "l", 2000},
		{"pack with weight symbol", enums.UnitTypePack, 2, "kg", 2000},
		{"pack with liquid symbol", enums.UnitTypePack, 500, "ml", 500},
		{"count passes through", enums.UnitTypeCount, 6, "", 6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToBaseUnits(tc.unitType, tc.amount, tc.symbol); got != tc.want {
				t.Fatalf("ToBaseUnits(%s, %v, %q) = %v, want %v", tc.unitType, tc.amount, tc.symbol, got, tc.want)
			}
		})
	}
}

func TestToBaseUnitsIsLinear(t *testing.T) {
	cases := []struct {
		unitType enums.UnitType
		symbol   string
	}{
		{enums.UnitTypeWeight, "g"},
		{enums.UnitTypeWeight, "kg"},
		{enums.UnitTypeLiquid, "ml"},
		{enums.UnitTypeLiquid, "l"},
		{enums.UnitTypePack, "kg"},
		{enums.UnitTypePack, "l"},
	}

	for _, tc := range cases {
		for _, amount := range []float64{0.25, 1, 7.5, 120} {
			single := ToBaseUnits(tc.unitType, amount, tc.symbol)
			double := ToBaseUnits(tc.unitType, 2*amount, tc.symbol)
			if double != 2*single {
				t.Fatalf("linearity broken for %s %q: f(2*%v)=%v, 2*f(%v)=%v", tc.unitType, tc.symbol, amount, double, amount, 2*single)
			}
		}
	}
}

func TestToBaseUnitsUnknownSymbolFailsSoft(t *testing.T) {
	// Unsupported symbols keep the raw magnitude instead of erroring.
	if got := ToBaseUnits(enums.UnitTypeWeight, 500, "lbs"); got != 500 {
		t.Fatalf("unknown weight symbol should use factor 1, got %v", got)
	}
	if got := ToBaseUnits(enums.UnitTypeLiquid, 12, "oz"); got != 12 {
		t.Fatalf("unknown liquid symbol should use factor 1, got %v", got)
	}
	if got := ToBaseUnits(enums.UnitTypeWeight, 100, ""); got != 100 {
		t.Fatalf("missing symbol should use factor 1, got %v", got)
	}
}

func TestPackDimensionInference(t *testing.T) {
	if !PackIsWeight("g") || !PackIsWeight("kg") {
		t.Fatal("g/kg packs should infer weight")
	}
	if PackIsWeight("ml") || PackIsWeight("l") || PackIsWeight("oz") {
		t.Fatal("non-weight symbols should infer liquid")
	}
}
