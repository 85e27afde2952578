package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avikapoor/basketline-backend/api/middleware"
	"github.com/avikapoor/basketline-backend/internal/lists"
	pkgerrors "github.com/avikapoor/basketline-backend/pkg/errors"
)

type stubListService struct {
	dto     *lists.ListDTO
	page    *lists.ListPageDTO
	err     error
	lastReq lists.SaveListRequest
	deleted uuid.UUID
}

func (s *stubListService) Create(ctx context.Context, ownerID uuid.UUID, req lists.SaveListRequest) (*lists.ListDTO, error) {
	s.lastReq = req
	return s.dto, s.err
}

func (s *stubListService) Update(ctx context.Context, userID, listID uuid.UUID, req lists.SaveListRequest) (*lists.ListDTO, error) {
	s.lastReq = req
	return s.dto, s.err
}

func (s *stubListService) Get(ctx context.Context, userID, listID uuid.UUID) (*lists.ListDTO, error) {
	return s.dto, s.err
}

func (s *stubListService) List(ctx context.Context, userID uuid.UUID, filter lists.Filter, cursor string, limit int) (*lists.ListPageDTO, error) {
	return s.page, s.err
}

func (s *stubListService) Delete(ctx context.Context, userID, listID uuid.UUID) error {
	s.deleted = listID
	return s.err
}

func authedRequest(method, target string, body []byte, userID uuid.UUID) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	ctx := middleware.WithUserID(req.Context(), userID.String())
	return req.WithContext(ctx)
}

func TestListCreate(t *testing.T) {
	svc := &stubListService{dto: &lists.ListDTO{Name: "June run"}}
	handler := ListCreate(svc, nil)

	body := []byte(`{
		"name": "  June run  ",
		"store": "BigMart",
		"month": 6,
		"year": 2024,
		"items": [
			{"description": "Rice", "quantity": 2, "total_price": 120, "unit_type": "weight", "weight_amount": 1, "weight_unit": "kg", "gst_percent": 5}
		]
	}`)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/lists", body, uuid.New()))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastReq.Name != "June run" {
		t.Fatalf("expected sanitized name got %q", svc.lastReq.Name)
	}
}

func TestListCreateMissingUserContext(t *testing.T) {
	handler := ListCreate(&stubListService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/lists", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestListCreateInvalidPayload(t *testing.T) {
	handler := ListCreate(&stubListService{}, nil)

	body := []byte(`{"name": "No month", "year": 2024}`)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/lists", body, uuid.New()))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestListIndexRejectsBadLimit(t *testing.T) {
	handler := ListIndex(&stubListService{page: &lists.ListPageDTO{}}, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/lists?limit=0", nil, uuid.New()))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestListGetByParam(t *testing.T) {
	listID := uuid.New()
	svc := &stubListService{dto: &lists.ListDTO{ID: listID, Name: "Weekly"}}

	router := chi.NewRouter()
	router.Get("/api/v1/lists/{listId}", ListGet(svc, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/lists/"+listID.String(), nil, uuid.New()))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var envelope struct {
		Data lists.ListDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != listID {
		t.Fatalf("expected list %s got %s", listID, envelope.Data.ID)
	}
}

func TestListGetRejectsBadListID(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/v1/lists/{listId}", ListGet(&stubListService{}, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/lists/not-a-uuid", nil, uuid.New()))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestListDeleteForbiddenPropagates(t *testing.T) {
	svc := &stubListService{err: pkgerrors.New(pkgerrors.CodeForbidden, "only the owner can delete a list")}
	router := chi.NewRouter()
	router.Delete("/api/v1/lists/{listId}", ListDelete(svc, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/v1/lists/"+uuid.NewString(), nil, uuid.New()))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", rec.Code)
	}
}
