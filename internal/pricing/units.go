package pricing

import "github.com/avikapoor/basketline-backend/pkg/enums"

// Base units are grams for weight and millilitres for liquid. Pack items
// reuse the weight/liquid symbols; their dimension is inferred from the
// symbol alone.
var (
	weightFactors = map[string]float64{
		"g":  1,
		"kg": 1000,
	}
	liquidFactors = map[string]float64{
		"ml": 1,
		"l":  1000,
	}
)

// ToBaseUnits converts a unit-specific magnitude into the canonical base
// unit for its dimension. Unknown symbols fall back to factor 1 rather
// than erroring; partially filled items must still produce a number.
func ToBaseUnits(unitType enums.UnitType, amount float64, unitSymbol string) float64 {
	switch unitType {
	case enums.UnitTypeWeight:
		return amount * weightFactor(unitSymbol)
	case enums.UnitTypeLiquid:
		return amount * liquidFactor(unitSymbol)
	case enums.UnitTypePack:
		if _, ok := weightFactors[unitSymbol]; ok {
			return amount * weightFactor(unitSymbol)
		}
		return amount * liquidFactor(unitSymbol)
	case enums.UnitTypeCount:
		return amount
	default:
		return amount
	}
}

// PackIsWeight reports whether a pack item's symbol puts it in the weight
// dimension. Anything outside the weight table is treated as liquid.
func PackIsWeight(unitSymbol string) bool {
	_, ok := weightFactors[unitSymbol]
	return ok
}

func weightFactor(symbol string) float64 {
	if f, ok := weightFactors[symbol]; ok {
		return f
	}
	return 1
}

func liquidFactor(symbol string) float64 {
	if f, ok := liquidFactors[symbol]; ok {
		return f
	}
	return 1
}
