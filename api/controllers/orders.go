package controllers

import (
	"net/http"
	"strings"

	"github.com/sweetlayers/sweetlayers-backend/api/responses"
	"github.com/sweetlayers/sweetlayers-backend/api/validators"
	ordersvc "github.com/sweetlayers/sweetlayers-backend/internal/orders"
	"github.com/sweetlayers/sweetlayers-backend/pkg/enums"
	pkgerrors "github.com/sweetlayers/sweetlayers-backend/pkg/errors"
	"github.com/sweetlayers/sweetlayers-backend/pkg/logger"
)

type transitionRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderList returns the order worklist with the requested filter and sort
// applied.
func OrderList(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		query := r.URL.Query()
		filter := ordersvc.Filter{
			Search: query.Get("search"),
			Status: strings.TrimSpace(query.Get("status")),
		}

		if filter.Status != "" && filter.Status != ordersvc.StatusFilterAll {
			if _, err := enums.ParseOrderStatus(filter.Status); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter"))
				return
			}
		}

		sortBy, err := enums.ParseOrderSort(strings.TrimSpace(query.Get("sort")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort"))
			return
		}

		orders, err := svc.List(r.Context(), filter, sortBy)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newOrderViews(orders))
	}
}

// OrderDetail returns one order by id.
func OrderDetail(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		orderID, err := validators.ParseID(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Get(r.Context(), orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newOrderView(*order))
	}
}

// OrderTransition moves an order to the requested status, subject to the
// lifecycle transition table.
func OrderTransition(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		orderID, err := validators.ParseID(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload transitionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		target, err := enums.ParseOrderStatus(payload.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order status"))
			return
		}

		order, err := svc.Transition(r.Context(), orderID, target)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newOrderView(*order))
	}
}
