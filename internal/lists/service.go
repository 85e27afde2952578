package lists

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/avikapoor/basketline-backend/internal/pricing"
	"github.com/avikapoor/basketline-backend/pkg/db/models"
	pkgerrors "github.com/avikapoor/basketline-backend/pkg/errors"
	"github.com/avikapoor/basketline-backend/pkg/logger"
	"github.com/avikapoor/basketline-backend/pkg/metrics"
)

const opListSave = "list_save"

// Service defines the behavior needed by the lists controller.
type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, req SaveListRequest) (*ListDTO, error)
	Update(ctx context.Context, userID, listID uuid.UUID, req SaveListRequest) (*ListDTO, error)
	Get(ctx context.Context, userID, listID uuid.UUID) (*ListDTO, error)
	List(ctx context.Context, userID uuid.UUID, filter Filter, cursor string, limit int) (*ListPageDTO, error)
	Delete(ctx context.Context, userID, listID uuid.UUID) error
}

type listRepository interface {
	Create(ctx context.Context, list *models.GroceryList) error
	Update(ctx context.Context, list *models.GroceryList) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.GroceryList, error)
	FindShare(ctx context.Context, listID, userID uuid.UUID) (*models.ListShare, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListPage(ctx context.Context, userID uuid.UUID, filter Filter, cursor string, limit int) ([]models.GroceryList, PageMeta, error)
}

// ServiceParams bundles the dependencies required to build a lists service.
type ServiceParams struct {
	Repo    listRepository
	Metrics *metrics.OpMetrics
	Logger  *logger.Logger
}

type service struct {
	repo    listRepository
	metrics *metrics.OpMetrics
	logg    *logger.Logger
}

// NewService constructs a lists service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "lists repository required")
	}
	return &service{
		repo:    params.Repo,
		metrics: params.Metrics,
		logg:    params.Logger,
	}, nil
}

// Create persists a new list with its aggregate snapshot total.
func (s *service) Create(ctx context.Context, ownerID uuid.UUID, req SaveListRequest) (*ListDTO, error) {
	start := time.Now()

	items := req.toItems()
	summary := Summarize(items)
	list := &models.GroceryList{
		OwnerID:     ownerID,
		Name:        req.Name,
		Store:       req.Store,
		Month:       req.Month,
		Year:        req.Year,
		Items:       items,
		TotalAmount: pricing.RoundMoney(summary.GrandTotal),
	}

	if err := s.repo.Create(ctx, list); err != nil {
		s.metrics.IncFailure(opListSave)
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create list")
	}

	s.metrics.ObserveDuration(opListSave, time.Since(start))
	s.metrics.IncSuccess(opListSave)
	if s.logg != nil {
		s.logg.Info(s.logg.WithListID(ctx, list.ID.String()), "list created")
	}
	return newListDTO(list, ownerID), nil
}

// Update overwrites a list snapshot. The whole payload replaces the stored
// state; the most recent save wins. Owners and grantees with edit rights may
// update.
func (s *service) Update(ctx context.Context, userID, listID uuid.UUID, req SaveListRequest) (*ListDTO, error) {
	start := time.Now()

	list, err := s.loadVisible(ctx, userID, listID, true)
	if err != nil {
		return nil, err
	}

	items := req.toItems()
	summary := Summarize(items)
	list.Name = req.Name
	list.Store = req.Store
	list.Month = req.Month
	list.Year = req.Year
	list.Items = items
	list.TotalAmount = pricing.RoundMoney(summary.GrandTotal)

	if err := s.repo.Update(ctx, list); err != nil {
		s.metrics.IncFailure(opListSave)
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update list")
	}

	s.metrics.ObserveDuration(opListSave, time.Since(start))
	s.metrics.IncSuccess(opListSave)
	return newListDTO(list, userID), nil
}

// Get returns a visible list with per-item computed breakdowns.
func (s *service) Get(ctx context.Context, userID, listID uuid.UUID) (*ListDTO, error) {
	list, err := s.loadVisible(ctx, userID, listID, false)
	if err != nil {
		return nil, err
	}
	return newListDTO(list, userID), nil
}

// List returns one cursor page of lists the user owns or was granted.
func (s *service) List(ctx context.Context, userID uuid.UUID, filter Filter, cursor string, limit int) (*ListPageDTO, error) {
	rows, meta, err := s.repo.ListPage(ctx, userID, filter, cursor, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list page")
	}
	page := &ListPageDTO{
		Lists:      make([]ListDTO, 0, len(rows)),
		Pagination: meta,
	}
	for i := range rows {
		page.Lists = append(page.Lists, *newListDTO(&rows[i], userID))
	}
	return page, nil
}

// Delete removes a list. Only the owner may delete; share rows go with it.
func (s *service) Delete(ctx context.Context, userID, listID uuid.UUID) error {
	list, err := s.repo.FindByID(ctx, listID)
	if err != nil {
		if IsNotFound(err) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "list not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load list")
	}
	if list.OwnerID != userID {
		return pkgerrors.New(pkgerrors.CodeForbidden, "only the owner can delete a list")
	}
	if err := s.repo.Delete(ctx, listID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete list")
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithListID(ctx, listID.String()), "list deleted")
	}
	return nil
}

// loadVisible fetches the list and checks the caller can see it. When
// forWrite is set, grantees additionally need edit rights.
func (s *service) loadVisible(ctx context.Context, userID, listID uuid.UUID, forWrite bool) (*models.GroceryList, error) {
	list, err := s.repo.FindByID(ctx, listID)
	if err != nil {
		if IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "list not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load list")
	}
	if list.OwnerID == userID {
		return list, nil
	}

	share, err := s.repo.FindShare(ctx, listID, userID)
	if err != nil {
		if IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "list not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check list share")
	}
	if forWrite && !share.CanEdit {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "list is read only")
	}
	return list, nil
}
