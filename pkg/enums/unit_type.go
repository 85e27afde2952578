package enums

import "fmt"

// UnitType classifies how a list item is measured. The empty string marks
// legacy rate/MRP items that predate unit-aware pricing.
type UnitType string

const (
	UnitTypeWeight UnitType = "weight"
	UnitTypeLiquid UnitType = "liquid"
	UnitTypePack   UnitType = "pack"
	UnitTypeCount  UnitType = "count"
)

var validUnitTypes = []UnitType{
	UnitTypeWeight,
	UnitTypeLiquid,
	UnitTypePack,
	UnitTypeCount,
}

// String implements fmt.Stringer.
func (u UnitType) String() string {
	return string(u)
}

// IsValid reports whether the value is a known UnitType.
func (u UnitType) IsValid() bool {
	for _, candidate := range validUnitTypes {
		if candidate == u {
			return true
		}
	}
	return false
}

// IsLegacy reports whether the value marks a legacy rate/MRP item.
func (u UnitType) IsLegacy() bool {
	return u == ""
}

// ParseUnitType converts raw input into a UnitType.
func ParseUnitType(value string) (UnitType, error) {
	for _, candidate := range validUnitTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid unit type %q", value)
}
