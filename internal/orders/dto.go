package orders

import (
	"github.com/sweetlayers/sweetlayers-backend/pkg/types"
)

// CreateOrderInput carries the frozen cart snapshot plus the checkout
// details needed to mint an order.
type CreateOrderInput struct {
	Items    []types.LineItem
	Customer types.Customer
	Delivery types.Delivery
}

// StatusFilterAll selects every status in a Filter.
const StatusFilterAll = "all"

// Filter describes the worklist inputs supported by List. Search matches
// case-insensitively against the order id rendered as text, the customer
// name and the customer email; any hit qualifies. Status is "all" (or empty)
// for no filtering, otherwise an exact status.
type Filter struct {
	Search string
	Status string
}
