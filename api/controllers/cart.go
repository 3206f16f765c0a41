package controllers

import (
	"net/http"
	"strings"

	"github.com/edutorres-dev/BellaVitta/api/middleware"
	"github.com/edutorres-dev/BellaVitta/api/responses"
	"github.com/edutorres-dev/BellaVitta/api/validators"
	cartsvc "github.com/edutorres-dev/BellaVitta/internal/cart"
	"github.com/edutorres-dev/BellaVitta/pkg/enums"
	pkgerrors "github.com/edutorres-dev/BellaVitta/pkg/errors"
	"github.com/edutorres-dev/BellaVitta/pkg/logger"
	"github.com/edutorres-dev/BellaVitta/pkg/money"
)

type cartAddRequest struct {
	Flavor string `json:"sabor" validate:"required,min=2,max=80"`
	Size   string `json:"tamanho" validate:"required"`
}

type cartRemoveRequest struct {
	Flavor    string `json:"sabor" validate:"required,min=2,max=80"`
	UnitPrice string `json:"preco_unitario" validate:"required"`
}

// CartFetch returns the grouped cart for the authenticated customer.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := middleware.CustomerIDFromContext(r.Context())
		if customerID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "customer context missing"))
			return
		}

		view, err := svc.View(r.Context(), customerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartAddItem prices the flavor and size against the live catalog and adds
// one unit to the cart.
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := middleware.CustomerIDFromContext(r.Context())
		if customerID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "customer context missing"))
			return
		}

		var payload cartAddRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		size, err := enums.ParsePizzaSize(strings.TrimSpace(payload.Size))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "tamanho inválido"))
			return
		}

		view, err := svc.AddItem(r.Context(), customerID, strings.TrimSpace(payload.Flavor), size)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartRemoveItem takes one unit of the flavor out of the cart. The unit price
// disambiguates sizes the same flavor was added in.
func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := middleware.CustomerIDFromContext(r.Context())
		if customerID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "customer context missing"))
			return
		}

		var payload cartRemoveRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		unitPrice, err := money.Parse(payload.UnitPrice)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "preço unitário inválido"))
			return
		}

		view, err := svc.RemoveOne(r.Context(), customerID, strings.TrimSpace(payload.Flavor), unitPrice)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := middleware.CustomerIDFromContext(r.Context())
		if customerID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "customer context missing"))
			return
		}

		if err := svc.Clear(r.Context(), customerID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}
