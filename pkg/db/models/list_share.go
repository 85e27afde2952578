package models

import (
	"time"

	"github.com/google/uuid"
)

// ListShare links a grocery list to a user it was shared with.
type ListShare struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ListID    uuid.UUID `gorm:"column:list_id;type:uuid;not null;index:list_shares_list_id_idx;uniqueIndex:list_shares_list_user_key"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:list_shares_user_id_idx;uniqueIndex:list_shares_list_user_key"`
	CanEdit   bool      `gorm:"column:can_edit;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
