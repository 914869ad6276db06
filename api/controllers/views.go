package controllers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sweetlayers/sweetlayers-backend/pkg/db/models"
	"github.com/sweetlayers/sweetlayers-backend/pkg/types"
)

type cakeView struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Description string            `json:"description,omitempty"`
	BasePrice   decimal.Decimal   `json:"base_price"`
	Images      []string          `json:"images"`
	Flavors     []string          `json:"flavors"`
	Allergens   []string          `json:"allergens"`
	Sizes       types.SizeOptions `json:"sizes"`
}

func newCakeView(cake models.Cake) cakeView {
	return cakeView{
		ID:          cake.ID,
		Name:        cake.Name,
		Category:    string(cake.Category),
		Description: cake.Description,
		BasePrice:   cake.BasePrice,
		Images:      cake.Images,
		Flavors:     cake.Flavors,
		Allergens:   cake.Allergens,
		Sizes:       cake.Sizes,
	}
}

func newCakeViews(cakes []models.Cake) []cakeView {
	views := make([]cakeView, 0, len(cakes))
	for _, cake := range cakes {
		views = append(views, newCakeView(cake))
	}
	return views
}

type cartView struct {
	Items    []types.LineItem `json:"items"`
	Subtotal decimal.Decimal  `json:"subtotal"`
	Count    int              `json:"count"`
}

type orderView struct {
	ID        int64            `json:"id"`
	Items     []types.LineItem `json:"items"`
	Customer  types.Customer   `json:"customer"`
	Delivery  types.Delivery   `json:"delivery"`
	Total     decimal.Decimal  `json:"total"`
	Status    string           `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func newOrderView(order models.Order) orderView {
	return orderView{
		ID:        order.ID,
		Items:     order.Items,
		Customer:  order.Customer,
		Delivery:  order.Delivery,
		Total:     order.Total,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

func newOrderViews(orders []models.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderView(order))
	}
	return views
}
