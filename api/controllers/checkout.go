package controllers

import (
	"net/http"

	"github.com/edutorres-dev/BellaVitta/api/responses"
	"github.com/edutorres-dev/BellaVitta/api/validators"
	authsvc "github.com/edutorres-dev/BellaVitta/internal/auth"
	ordersvc "github.com/edutorres-dev/BellaVitta/internal/orders"
	pkgerrors "github.com/edutorres-dev/BellaVitta/pkg/errors"
	"github.com/edutorres-dev/BellaVitta/pkg/logger"
)

// Checkout runs the submission through the gate and, when it passes whole,
// persists the order and hands back the WhatsApp confirmation link. The
// customer's contact comes from the stored profile, never from the payload.
func Checkout(ordersSvc ordersvc.Service, authSvc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ordersSvc == nil || authSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		customerID, err := contextCustomerID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload ordersvc.Submission
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := authSvc.Profile(r.Context(), customerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := ordersSvc.Checkout(r.Context(), ordersvc.CheckoutInput{
			CustomerID:      customerID.String(),
			CustomerName:    profile.Name,
			CustomerContact: profile.Contact,
			Submission:      payload,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
