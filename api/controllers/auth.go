package controllers

import (
	"net/http"

	"github.com/avikapoor/basketline-backend/api/responses"
	"github.com/avikapoor/basketline-backend/api/validators"
	"github.com/avikapoor/basketline-backend/internal/auth"
	pkgerrors "github.com/avikapoor/basketline-backend/pkg/errors"
	"github.com/avikapoor/basketline-backend/pkg/logger"
)

// accessTokenHeader mirrors the access token in a response header so web
// clients can pick it up without parsing the body.
const accessTokenHeader = "X-BL-Token"

// AuthLogin wires the login endpoint into the HTTP layer.
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set(accessTokenHeader, result.AccessToken)
		responses.WriteSuccess(w, result)
	}
}
