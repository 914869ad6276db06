package controllers

import (
	"net/http"
	"strings"

	"github.com/sweetlayers/sweetlayers-backend/api/responses"
	"github.com/sweetlayers/sweetlayers-backend/api/validators"
	"github.com/sweetlayers/sweetlayers-backend/internal/catalog"
	"github.com/sweetlayers/sweetlayers-backend/pkg/enums"
	pkgerrors "github.com/sweetlayers/sweetlayers-backend/pkg/errors"
	"github.com/sweetlayers/sweetlayers-backend/pkg/logger"
)

// CakeList returns active catalog cakes, optionally scoped to one category.
func CakeList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var category *enums.CakeCategory
		if raw := strings.TrimSpace(r.URL.Query().Get("category")); raw != "" {
			parsed, err := enums.ParseCakeCategory(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category"))
				return
			}
			category = &parsed
		}

		cakes, err := svc.ListCakes(r.Context(), category)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCakeViews(cakes))
	}
}

// CakeFeatured returns the storefront's featured cakes.
func CakeFeatured(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		cakes, err := svc.FeaturedCakes(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCakeViews(cakes))
	}
}

// CakeDetail returns one cake by id.
func CakeDetail(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		cakeID, err := validators.ParseID(r, "cakeId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cake, err := svc.GetCake(r.Context(), cakeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCakeView(*cake))
	}
}
