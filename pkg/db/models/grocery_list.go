package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/avikapoor/basketline-backend/pkg/types"
)

// GroceryList captures an owner-scoped list snapshot persisted at save time.
// Items are embedded as JSONB; TotalAmount is the rounded aggregate computed
// when the list is saved, never lazily recomputed.
type GroceryList struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID     uuid.UUID       `gorm:"column:owner_id;type:uuid;not null;index:grocery_lists_owner_id_idx"`
	Name        string          `gorm:"column:name;not null"`
	Store       string          `gorm:"column:store;not null;default:''"`
	Month       int             `gorm:"column:month;not null"`
	Year        int             `gorm:"column:year;not null"`
	Items       types.ListItems `gorm:"column:items;type:jsonb;serializer:json"`
	TotalAmount float64         `gorm:"column:total_amount;not null;default:0"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
