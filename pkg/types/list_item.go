package types

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/avikapoor/basketline-backend/pkg/enums"
)

// ListItem is a single entry of a grocery list snapshot. Unit-aware items
// carry a UnitType plus the matching amount/unit pair; legacy items leave
// UnitType empty and price through Rate/MRP.
type ListItem struct {
	ID           string         `json:"id"`
	Description  string         `json:"description"`
	Quantity     float64        `json:"quantity"`
	UnitType     enums.UnitType `json:"unit_type,omitempty"`
	WeightAmount float64        `json:"weight_amount,omitempty"`
	WeightUnit   string         `json:"weight_unit,omitempty"`
	LiquidAmount float64        `json:"liquid_amount,omitempty"`
	LiquidUnit   string         `json:"liquid_unit,omitempty"`
	PackAmount   float64        `json:"pack_amount,omitempty"`
	PackUnit     string         `json:"pack_unit,omitempty"`
	TotalPrice   float64        `json:"total_price,omitempty"`
	GSTPercent   float64        `json:"gst_percent,omitempty"`
	MRP          float64        `json:"mrp,omitempty"`
	Rate         float64        `json:"rate,omitempty"`
	Completed    bool           `json:"completed"`
}

// ListItems stores the item snapshot inside a JSONB column.
type ListItems []ListItem

// Value serializes the items to JSON.
func (l ListItems) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan decodes JSONB into the item slice.
func (l *ListItems) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	var decoded ListItems
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	*l = decoded
	return nil
}
