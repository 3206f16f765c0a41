package controllers

import (
	"net/http"

	"github.com/edutorres-dev/BellaVitta/api/responses"
	catalogsvc "github.com/edutorres-dev/BellaVitta/internal/catalog"
	pkgerrors "github.com/edutorres-dev/BellaVitta/pkg/errors"
	"github.com/edutorres-dev/BellaVitta/pkg/logger"
)

// CatalogMenu serves the public menu. The service already falls back to the
// built-in menu when storage is unavailable, so this never errors out.
func CatalogMenu(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Menu(r.Context()))
	}
}
