package controllers

import (
	"net/http"
	"strings"

	"github.com/avikapoor/basketline-backend/api/responses"
	"github.com/avikapoor/basketline-backend/internal/exports"
	pkgerrors "github.com/avikapoor/basketline-backend/pkg/errors"
	"github.com/avikapoor/basketline-backend/pkg/logger"
)

// ExportLists returns the flattened export feed for file exporters.
func ExportLists(svc exports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "exports service unavailable"))
			return
		}

		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		filter := exports.Filter{
			Year:  strings.TrimSpace(r.URL.Query().Get("year")),
			Store: strings.TrimSpace(r.URL.Query().Get("store")),
		}
		export, err := svc.Lists(ctx, userID, filter)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, export)
	}
}
