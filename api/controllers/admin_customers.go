package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/edutorres-dev/BellaVitta/api/responses"
	"github.com/edutorres-dev/BellaVitta/api/validators"
	customersvc "github.com/edutorres-dev/BellaVitta/internal/customers"
	pkgerrors "github.com/edutorres-dev/BellaVitta/pkg/errors"
	"github.com/edutorres-dev/BellaVitta/pkg/logger"
	"github.com/edutorres-dev/BellaVitta/pkg/pagination"
)

// AdminCustomerList serves the back-office customer directory with name,
// email, contact, and signup-day filters.
func AdminCustomerList(svc customersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customers service unavailable"))
			return
		}

		page, err := validators.ParseQueryInt(r, "page", 1, 1, 100000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filters := customersvc.AdminListFilters{
			Name:    validators.SanitizeString(r.URL.Query().Get("nome"), 100),
			Email:   validators.SanitizeString(r.URL.Query().Get("email"), 255),
			Contact: validators.SanitizeString(r.URL.Query().Get("contato"), 20),
			Date:    validators.SanitizeString(r.URL.Query().Get("data"), 10),
			Page:    pagination.Params{Page: page, Limit: limit},
		}

		result, err := svc.AdminList(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// AdminCustomerDelete removes a customer account from the back office.
func AdminCustomerDelete(svc customersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customers service unavailable"))
			return
		}

		customerID, err := uuid.Parse(chi.URLParam(r, "customerId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid customer id"))
			return
		}

		if err := svc.Delete(r.Context(), customerID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
