package controllers

import (
	"net/http"

	"github.com/sweetlayers/sweetlayers-backend/api/responses"
	"github.com/sweetlayers/sweetlayers-backend/api/validators"
	cartsvc "github.com/sweetlayers/sweetlayers-backend/internal/cart"
	checkoutsvc "github.com/sweetlayers/sweetlayers-backend/internal/checkout"
	"github.com/sweetlayers/sweetlayers-backend/pkg/enums"
	pkgerrors "github.com/sweetlayers/sweetlayers-backend/pkg/errors"
	"github.com/sweetlayers/sweetlayers-backend/pkg/logger"
	"github.com/sweetlayers/sweetlayers-backend/pkg/types"
)

type checkoutAddress struct {
	Street string `json:"street" validate:"required"`
	City   string `json:"city" validate:"required"`
	State  string `json:"state" validate:"required"`
	Zip    string `json:"zip" validate:"required"`
}

type checkoutRequest struct {
	Customer struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required,email"`
		Phone string `json:"phone" validate:"required"`
	} `json:"customer" validate:"required"`
	Delivery struct {
		Type         string           `json:"type" validate:"required"`
		Address      *checkoutAddress `json:"address,omitempty"`
		Instructions string           `json:"instructions"`
	} `json:"delivery" validate:"required"`
}

// Checkout turns the session cart into an order.
func Checkout(manager *cartsvc.Manager, svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		store, err := sessionCart(r, manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		deliveryType, err := enums.ParseDeliveryType(payload.Delivery.Type)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid delivery type"))
			return
		}

		input := checkoutsvc.SubmitInput{
			Customer: types.Customer{
				Name:  payload.Customer.Name,
				Email: payload.Customer.Email,
				Phone: payload.Customer.Phone,
			},
			Delivery: types.Delivery{
				Type:         deliveryType,
				Instructions: payload.Delivery.Instructions,
			},
		}
		if addr := payload.Delivery.Address; addr != nil {
			input.Delivery.Address = &types.Address{
				Street: addr.Street,
				City:   addr.City,
				State:  addr.State,
				Zip:    addr.Zip,
			}
		}

		order, err := svc.Submit(r.Context(), store, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, newOrderView(*order))
	}
}
