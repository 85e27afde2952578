package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/avikapoor/basketline-backend/internal/reports"
)

type stubReportService struct {
	report   reports.Report
	lastYear string
}

func (s *stubReportService) Summary(ctx context.Context, userID uuid.UUID, yearFilter string) reports.Report {
	s.lastYear = yearFilter
	return s.report
}

func TestReportSummaryPassesYearFilter(t *testing.T) {
	svc := &stubReportService{report: reports.BuildReport(nil, "2024")}
	handler := ReportSummary(svc, nil)

	req := authedRequest(http.MethodGet, "/api/v1/reports/summary?year=2024", nil, uuid.New())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.lastYear != "2024" {
		t.Fatalf("expected year filter 2024 got %q", svc.lastYear)
	}

	var envelope struct {
		Data reports.Report `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ByMonth == nil || envelope.Data.ByStore == nil {
		t.Fatalf("expected non-nil rollup maps")
	}
}

func TestReportSummaryDefaultsToAll(t *testing.T) {
	svc := &stubReportService{report: reports.BuildReport(nil, "")}
	handler := ReportSummary(svc, nil)

	req := authedRequest(http.MethodGet, "/api/v1/reports/summary", nil, uuid.New())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.lastYear != "" {
		t.Fatalf("expected empty year filter got %q", svc.lastYear)
	}
}

func TestReportSummaryRequiresUser(t *testing.T) {
	handler := ReportSummary(&stubReportService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/summary", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}
