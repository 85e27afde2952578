package shares

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avikapoor/basketline-backend/pkg/db/models"
	pkgerrors "github.com/avikapoor/basketline-backend/pkg/errors"
)

type grantCall struct {
	listID  uuid.UUID
	userID  uuid.UUID
	canEdit bool
}

type stubShareRepo struct {
	grants   []grantCall
	revokes  []grantCall
	grantees []GranteeDTO
}

func (s *stubShareRepo) Grant(ctx context.Context, listID, userID uuid.UUID, canEdit bool) error {
	s.grants = append(s.grants, grantCall{listID: listID, userID: userID, canEdit: canEdit})
	return nil
}

func (s *stubShareRepo) Revoke(ctx context.Context, listID, userID uuid.UUID) error {
	s.revokes = append(s.revokes, grantCall{listID: listID, userID: userID})
	return nil
}

func (s *stubShareRepo) ListGrantees(ctx context.Context, listID uuid.UUID) ([]GranteeDTO, error) {
	return s.grantees, nil
}

type stubListFinder struct {
	list *models.GroceryList
}

func (s stubListFinder) FindByID(ctx context.Context, id uuid.UUID) (*models.GroceryList, error) {
	if s.list == nil || s.list.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.list, nil
}

type stubUserFinder struct {
	user *models.User
}

func (s stubUserFinder) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.user == nil || s.user.Email != email {
		return nil, gorm.ErrRecordNotFound
	}
	return s.user, nil
}

func buildShareService(t *testing.T, repo *stubShareRepo, list *models.GroceryList, user *models.User) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:  repo,
		Lists: stubListFinder{list: list},
		Users: stubUserFinder{user: user},
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestShareGrantsByEmail(t *testing.T) {
	ownerID := uuid.New()
	list := &models.GroceryList{ID: uuid.New(), OwnerID: ownerID}
	grantee := &models.User{ID: uuid.New(), Email: "friend@example.com", FirstName: "Sam"}
	repo := &stubShareRepo{}
	svc := buildShareService(t, repo, list, grantee)

	dto, err := svc.Share(context.Background(), ownerID, list.ID, ShareRequest{
		Email:   " Friend@Example.com ",
		CanEdit: true,
	})
	if err != nil {
		t.Fatalf("share: %v", err)
	}

	if len(repo.grants) != 1 {
		t.Fatalf("expected one grant, got %d", len(repo.grants))
	}
	grant := repo.grants[0]
	if grant.listID != list.ID || grant.userID != grantee.ID || !grant.canEdit {
		t.Fatalf("unexpected grant %+v", grant)
	}
	if dto.Email != grantee.Email || !dto.CanEdit {
		t.Fatalf("unexpected grantee dto %+v", dto)
	}
}

func TestShareUnknownEmail(t *testing.T) {
	ownerID := uuid.New()
	list := &models.GroceryList{ID: uuid.New(), OwnerID: ownerID}
	repo := &stubShareRepo{}
	svc := buildShareService(t, repo, list, nil)

	_, err := svc.Share(context.Background(), ownerID, list.ID, ShareRequest{Email: "nobody@example.com"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(repo.grants) != 0 {
		t.Fatalf("no grant should be recorded")
	}
}

func TestShareWithOwnerRejected(t *testing.T) {
	ownerID := uuid.New()
	list := &models.GroceryList{ID: uuid.New(), OwnerID: ownerID}
	owner := &models.User{ID: ownerID, Email: "me@example.com"}
	repo := &stubShareRepo{}
	svc := buildShareService(t, repo, list, owner)

	_, err := svc.Share(context.Background(), ownerID, list.ID, ShareRequest{Email: "me@example.com"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestShareRequiresOwnership(t *testing.T) {
	list := &models.GroceryList{ID: uuid.New(), OwnerID: uuid.New()}
	grantee := &models.User{ID: uuid.New(), Email: "friend@example.com"}
	repo := &stubShareRepo{}
	svc := buildShareService(t, repo, list, grantee)

	_, err := svc.Share(context.Background(), uuid.New(), list.ID, ShareRequest{Email: grantee.Email})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("non-owner share should be forbidden, got %v", err)
	}
}

func TestUnshareRevokes(t *testing.T) {
	ownerID := uuid.New()
	granteeID := uuid.New()
	list := &models.GroceryList{ID: uuid.New(), OwnerID: ownerID}
	repo := &stubShareRepo{}
	svc := buildShareService(t, repo, list, nil)

	if err := svc.Unshare(context.Background(), ownerID, list.ID, granteeID); err != nil {
		t.Fatalf("unshare: %v", err)
	}
	if len(repo.revokes) != 1 || repo.revokes[0].userID != granteeID {
		t.Fatalf("expected revoke for grantee, got %+v", repo.revokes)
	}
}

func TestListGranteesOwnerOnly(t *testing.T) {
	ownerID := uuid.New()
	list := &models.GroceryList{ID: uuid.New(), OwnerID: ownerID}
	repo := &stubShareRepo{grantees: []GranteeDTO{{Email: "friend@example.com"}}}
	svc := buildShareService(t, repo, list, nil)

	grantees, err := svc.ListGrantees(context.Background(), ownerID, list.ID)
	if err != nil {
		t.Fatalf("list grantees: %v", err)
	}
	if len(grantees) != 1 || grantees[0].Email != "friend@example.com" {
		t.Fatalf("unexpected grantees %+v", grantees)
	}

	_, err = svc.ListGrantees(context.Background(), uuid.New(), list.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("non-owner should be forbidden, got %v", err)
	}
}
