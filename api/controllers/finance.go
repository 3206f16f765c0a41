package controllers

import (
	"net/http"

	"github.com/edutorres-dev/BellaVitta/api/responses"
	"github.com/edutorres-dev/BellaVitta/api/validators"
	financesvc "github.com/edutorres-dev/BellaVitta/internal/finance"
	pkgerrors "github.com/edutorres-dev/BellaVitta/pkg/errors"
	"github.com/edutorres-dev/BellaVitta/pkg/logger"
)

// FinanceSummary serves the sales report. Year defaults to the current year;
// month and day narrow the window.
func FinanceSummary(svc financesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "finance service unavailable"))
			return
		}

		year, err := validators.ParseQueryInt(r, "ano", 0, 0, 9999)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		month, err := validators.ParseQueryInt(r, "mes", 0, 0, 12)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		day, err := validators.ParseQueryInt(r, "dia", 0, 0, 31)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, err := svc.Summary(r.Context(), financesvc.Filters{Year: year, Month: month, Day: day})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}
