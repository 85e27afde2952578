package controllers

import (
	"net/http"
	"strings"

	"github.com/avikapoor/basketline-backend/api/responses"
	"github.com/avikapoor/basketline-backend/internal/reports"
	pkgerrors "github.com/avikapoor/basketline-backend/pkg/errors"
	"github.com/avikapoor/basketline-backend/pkg/logger"
)

// ReportSummary returns the spend rollups for the caller's visible lists.
func ReportSummary(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reports service unavailable"))
			return
		}

		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		yearFilter := strings.TrimSpace(r.URL.Query().Get("year"))
		report := svc.Summary(ctx, userID, yearFilter)
		responses.WriteSuccess(w, report)
	}
}
