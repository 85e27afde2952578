package shares

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avikapoor/basketline-backend/pkg/db/models"
)

// Repository encapsulates list share persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a shares repo bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Grant inserts a share row and ignores duplicates. Re-sharing with the same
// user is a no-op rather than an error.
func (r *Repository) Grant(ctx context.Context, listID, userID uuid.UUID, canEdit bool) error {
	if listID == uuid.Nil || userID == uuid.Nil {
		return gorm.ErrInvalidValue
	}

	return r.db.WithContext(ctx).
		Exec(`INSERT INTO list_shares (id, list_id, user_id, can_edit) VALUES (?, ?, ?, ?) ON CONFLICT (list_id, user_id) DO NOTHING`,
			uuid.New(), listID, userID, canEdit).
		Error
}

// Revoke deletes the grant if it exists.
func (r *Repository) Revoke(ctx context.Context, listID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("list_id = ? AND user_id = ?", listID, userID).
		Delete(&models.ListShare{}).
		Error
}

// ListGrantees returns the users a list has been shared with, oldest grant
// first.
func (r *Repository) ListGrantees(ctx context.Context, listID uuid.UUID) ([]GranteeDTO, error) {
	var records []granteeRecord
	err := r.db.WithContext(ctx).
		Table("list_shares ls").
		Select("ls.user_id, u.email, u.first_name, u.last_name, ls.can_edit, ls.created_at").
		Joins("JOIN users u ON u.id = ls.user_id").
		Where("ls.list_id = ?", listID).
		Order("ls.created_at ASC").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}

	grantees := make([]GranteeDTO, 0, len(records))
	for _, record := range records {
		grantees = append(grantees, record.toDTO())
	}
	return grantees, nil
}

type granteeRecord struct {
	UserID    uuid.UUID `gorm:"column:user_id"`
	Email     string    `gorm:"column:email"`
	FirstName string    `gorm:"column:first_name"`
	LastName  string    `gorm:"column:last_name"`
	CanEdit   bool      `gorm:"column:can_edit"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (r granteeRecord) toDTO() GranteeDTO {
	return GranteeDTO{
		UserID:    r.UserID,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		CanEdit:   r.CanEdit,
		CreatedAt: r.CreatedAt,
	}
}
