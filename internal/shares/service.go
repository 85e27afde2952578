package shares

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avikapoor/basketline-backend/pkg/db/models"
	pkgerrors "github.com/avikapoor/basketline-backend/pkg/errors"
	"github.com/avikapoor/basketline-backend/pkg/logger"
)

// Service defines the behavior needed by the shares controller. Every
// operation is owner-gated: only the list owner manages its grants.
type Service interface {
	Share(ctx context.Context, ownerID, listID uuid.UUID, req ShareRequest) (*GranteeDTO, error)
	Unshare(ctx context.Context, ownerID, listID, granteeID uuid.UUID) error
	ListGrantees(ctx context.Context, ownerID, listID uuid.UUID) ([]GranteeDTO, error)
}

type shareRepository interface {
	Grant(ctx context.Context, listID, userID uuid.UUID, canEdit bool) error
	Revoke(ctx context.Context, listID, userID uuid.UUID) error
	ListGrantees(ctx context.Context, listID uuid.UUID) ([]GranteeDTO, error)
}

type listFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.GroceryList, error)
}

type userFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// ServiceParams bundles the dependencies required to build a shares service.
type ServiceParams struct {
	Repo   shareRepository
	Lists  listFinder
	Users  userFinder
	Logger *logger.Logger
}

type service struct {
	repo  shareRepository
	lists listFinder
	users userFinder
	logg  *logger.Logger
}

// NewService constructs a shares service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "shares repository required")
	}
	if params.Lists == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "list finder required")
	}
	if params.Users == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "user finder required")
	}
	return &service{
		repo:  params.Repo,
		lists: params.Lists,
		users: params.Users,
		logg:  params.Logger,
	}, nil
}

// Share grants the user behind the email access to the list. Granting twice
// is idempotent.
func (s *service) Share(ctx context.Context, ownerID, listID uuid.UUID, req ShareRequest) (*GranteeDTO, error) {
	list, err := s.ownedList(ctx, ownerID, listID)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	grantee, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no account with that email")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup grantee")
	}
	if grantee.ID == list.OwnerID {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cannot share a list with its owner")
	}

	if err := s.repo.Grant(ctx, listID, grantee.ID, req.CanEdit); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "grant share")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithListID(ctx, listID.String()), "list shared")
	}
	return &GranteeDTO{
		UserID:    grantee.ID,
		Email:     grantee.Email,
		FirstName: grantee.FirstName,
		LastName:  grantee.LastName,
		CanEdit:   req.CanEdit,
	}, nil
}

// Unshare revokes a grant. Revoking a grant that does not exist is a no-op.
func (s *service) Unshare(ctx context.Context, ownerID, listID, granteeID uuid.UUID) error {
	if _, err := s.ownedList(ctx, ownerID, listID); err != nil {
		return err
	}
	if err := s.repo.Revoke(ctx, listID, granteeID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "revoke share")
	}
	return nil
}

// ListGrantees returns the users the list has been shared with.
func (s *service) ListGrantees(ctx context.Context, ownerID, listID uuid.UUID) ([]GranteeDTO, error) {
	if _, err := s.ownedList(ctx, ownerID, listID); err != nil {
		return nil, err
	}
	grantees, err := s.repo.ListGrantees(ctx, listID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list grantees")
	}
	return grantees, nil
}

func (s *service) ownedList(ctx context.Context, ownerID, listID uuid.UUID) (*models.GroceryList, error) {
	list, err := s.lists.FindByID(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "list not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load list")
	}
	if list.OwnerID != ownerID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "only the owner can manage shares")
	}
	return list, nil
}
