package controllers

import (
	"net/http"

	"github.com/sweetlayers/sweetlayers-backend/api/middleware"
	"github.com/sweetlayers/sweetlayers-backend/api/responses"
	"github.com/sweetlayers/sweetlayers-backend/api/validators"
	cartsvc "github.com/sweetlayers/sweetlayers-backend/internal/cart"
	checkoutsvc "github.com/sweetlayers/sweetlayers-backend/internal/checkout"
	pkgerrors "github.com/sweetlayers/sweetlayers-backend/pkg/errors"
	"github.com/sweetlayers/sweetlayers-backend/pkg/logger"
	"github.com/sweetlayers/sweetlayers-backend/pkg/types"
)

type addCartItemRequest struct {
	CakeID       int64  `json:"cake_id" validate:"required,min=1"`
	Quantity     int    `json:"quantity" validate:"required,min=1"`
	Size         string `json:"size" validate:"required"`
	Flavor       string `json:"flavor" validate:"required"`
	Message      string `json:"message"`
	DeliveryDate string `json:"delivery_date" validate:"required"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// CartFetch returns the session's cart with its running subtotal.
func CartFetch(manager *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := sessionCart(r, manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(store))
	}
}

// CartAddItem validates a customization and adds it to the session cart.
func CartAddItem(manager *cartsvc.Manager, checkout checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if checkout == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		store, err := sessionCart(r, manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := checkout.BuildLineItem(r.Context(), checkoutsvc.AddItemInput{
			CakeID:       payload.CakeID,
			Quantity:     payload.Quantity,
			Size:         payload.Size,
			Flavor:       payload.Flavor,
			Message:      payload.Message,
			DeliveryDate: payload.DeliveryDate,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := store.Add(r.Context(), item); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, newCartView(store))
	}
}

// CartUpdateItem changes the quantity of an existing cart line. The line's
// customization and price snapshot are kept as-is.
func CartUpdateItem(manager *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := sessionCart(r, manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cakeID, err := validators.ParseID(r, "cakeId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		for _, line := range store.Items() {
			if line.CakeID != cakeID {
				continue
			}
			line.Quantity = payload.Quantity
			if err := store.Update(r.Context(), cakeID, line); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			break
		}

		responses.WriteSuccess(w, newCartView(store))
	}
}

// CartRemoveItem deletes a cart line; absent lines are a no-op.
func CartRemoveItem(manager *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := sessionCart(r, manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cakeID, err := validators.ParseID(r, "cakeId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := store.Remove(r.Context(), cakeID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(store))
	}
}

// CartClear empties the session cart.
func CartClear(manager *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := sessionCart(r, manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := store.Clear(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(store))
	}
}

func sessionCart(r *http.Request, manager *cartsvc.Manager) (*cartsvc.Store, error) {
	if manager == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart manager unavailable")
	}
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session context missing")
	}
	return manager.Store(r.Context(), sessionID)
}

func newCartView(store *cartsvc.Store) cartView {
	items := store.Items()
	if items == nil {
		items = []types.LineItem{}
	}
	return cartView{
		Items:    items,
		Subtotal: store.Total(),
		Count:    store.Count(),
	}
}
