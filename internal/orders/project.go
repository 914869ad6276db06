package orders

import (
	"sort"
	"strconv"
	"strings"

	"github.com/sweetlayers/sweetlayers-backend/pkg/db/models"
	"github.com/sweetlayers/sweetlayers-backend/pkg/enums"
)

// Project is a pure recomputation over the full order collection: filter by
// search term and status, then apply a stable sort. It owns no state and is
// safe to call whenever the underlying collection or parameters change. Ties
// keep the input collection order.
func Project(orders []models.Order, filter Filter, sortBy enums.OrderSort) []models.Order {
	projected := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if matches(order, filter) {
			projected = append(projected, order)
		}
	}

	switch sortBy {
	case enums.OrderSortNewest:
		sort.SliceStable(projected, func(i, j int) bool {
			return projected[i].CreatedAt.After(projected[j].CreatedAt)
		})
	case enums.OrderSortOldest:
		sort.SliceStable(projected, func(i, j int) bool {
			return projected[i].CreatedAt.Before(projected[j].CreatedAt)
		})
	case enums.OrderSortAmountHigh:
		sort.SliceStable(projected, func(i, j int) bool {
			return projected[i].Total.GreaterThan(projected[j].Total)
		})
	case enums.OrderSortAmountLow:
		sort.SliceStable(projected, func(i, j int) bool {
			return projected[i].Total.LessThan(projected[j].Total)
		})
	}

	return projected
}

func matches(order models.Order, filter Filter) bool {
	if term := strings.TrimSpace(filter.Search); term != "" {
		term = strings.ToLower(term)
		idText := strconv.FormatInt(order.ID, 10)
		if !strings.Contains(idText, term) &&
			!strings.Contains(strings.ToLower(order.Customer.Name), term) &&
			!strings.Contains(strings.ToLower(order.Customer.Email), term) {
			return false
		}
	}

	if filter.Status != "" && filter.Status != StatusFilterAll {
		if string(order.Status) != filter.Status {
			return false
		}
	}

	return true
}
