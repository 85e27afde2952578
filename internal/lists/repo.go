package lists

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avikapoor/basketline-backend/pkg/db/models"
	"github.com/avikapoor/basketline-backend/pkg/pagination"
)

// visibleClause matches lists the user owns or has been granted via a share.
const visibleClause = "owner_id = ? OR EXISTS (SELECT 1 FROM list_shares s WHERE s.list_id = grocery_lists.id AND s.user_id = ?)"

// Filter narrows list pages by exact year and/or store label. Zero values
// mean no filtering.
type Filter struct {
	Year  int
	Store string
}

// Repository encapsulates grocery list persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a lists repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new list snapshot.
func (r *Repository) Create(ctx context.Context, list *models.GroceryList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

// Update overwrites the mutable columns of an existing list.
func (r *Repository) Update(ctx context.Context, list *models.GroceryList) error {
	return r.db.WithContext(ctx).
		Model(&models.GroceryList{}).
		Where("id = ?", list.ID).
		Select("name", "store", "month", "year", "items", "total_amount").
		Updates(map[string]any{
			"name":         list.Name,
			"store":        list.Store,
			"month":        list.Month,
			"year":         list.Year,
			"items":        list.Items,
			"total_amount": list.TotalAmount,
		}).Error
}

// FindByID loads a list by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.GroceryList, error) {
	var list models.GroceryList
	if err := r.db.WithContext(ctx).First(&list, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// FindShare returns the share row granting userID access to listID, if any.
func (r *Repository) FindShare(ctx context.Context, listID, userID uuid.UUID) (*models.ListShare, error) {
	var share models.ListShare
	err := r.db.WithContext(ctx).
		Where("list_id = ? AND user_id = ?", listID, userID).
		First(&share).Error
	if err != nil {
		return nil, err
	}
	return &share, nil
}

// Delete removes the list and its share rows in one transaction. The FK
// cascade covers Postgres; the explicit share delete keeps sqlite-backed
// tests honest.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", id).Delete(&models.ListShare{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.GroceryList{}).Error
	})
}

// ListPage returns one cursor page of lists visible to the user, newest
// first.
func (r *Repository) ListPage(ctx context.Context, userID uuid.UUID, filter Filter, cursor string, limit int) ([]models.GroceryList, PageMeta, error) {
	normalizedLimit := pagination.NormalizeLimit(limit)
	limitWithBuffer := pagination.LimitWithBuffer(limit)
	cursorValue := strings.TrimSpace(cursor)
	decodedCursor, err := pagination.ParseCursor(cursorValue)
	if err != nil {
		return nil, PageMeta{}, err
	}

	query := r.visibleQuery(ctx, userID, filter)
	if decodedCursor != nil {
		query = query.Where("(created_at < ?) OR (created_at = ? AND id < ?)", decodedCursor.CreatedAt, decodedCursor.CreatedAt, decodedCursor.ID)
	}
	query = query.Order("created_at DESC").Order("id DESC").Limit(limitWithBuffer)

	var rows []models.GroceryList
	if err := query.Find(&rows).Error; err != nil {
		return nil, PageMeta{}, err
	}

	nextCursor := ""
	if len(rows) > normalizedLimit {
		rows = rows[:normalizedLimit]
		last := rows[len(rows)-1]
		nextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}

	var total int64
	if err := r.visibleQuery(ctx, userID, filter).Count(&total).Error; err != nil {
		return nil, PageMeta{}, err
	}

	meta := PageMeta{
		Total:   int(total),
		Current: cursorValue,
		Next:    nextCursor,
		Prev:    cursorValue,
	}
	return rows, meta, nil
}

// FetchOwned returns every list the user owns, newest first.
func (r *Repository) FetchOwned(ctx context.Context, ownerID uuid.UUID) ([]models.GroceryList, error) {
	var rows []models.GroceryList
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FetchSharedWith returns every list shared with the user, newest first.
func (r *Repository) FetchSharedWith(ctx context.Context, userID uuid.UUID) ([]models.GroceryList, error) {
	var rows []models.GroceryList
	err := r.db.WithContext(ctx).
		Joins("JOIN list_shares s ON s.list_id = grocery_lists.id").
		Where("s.user_id = ?", userID).
		Order("grocery_lists.created_at DESC").Order("grocery_lists.id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) visibleQuery(ctx context.Context, userID uuid.UUID, filter Filter) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&models.GroceryList{}).
		Where(visibleClause, userID, userID)
	if filter.Year > 0 {
		query = query.Where("year = ?", filter.Year)
	}
	if filter.Store != "" {
		query = query.Where("store = ?", filter.Store)
	}
	return query
}

// IsNotFound reports whether err is the record-missing sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
