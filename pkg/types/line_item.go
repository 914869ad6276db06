package types

import "github.com/shopspring/decimal"

// LineItem is one customized cake selection held in a cart. UnitPrice is a
// snapshot taken when the item was added and is never re-resolved from the
// catalog, even if the cake's base price changes later.
type LineItem struct {
	CakeID       int64           `json:"cake_id"`
	Quantity     int             `json:"quantity"`
	Size         string          `json:"size"`
	Flavor       string          `json:"flavor"`
	Message      string          `json:"message,omitempty"`
	DeliveryDate string          `json:"delivery_date"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

// Subtotal returns unit price times quantity for this line.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}
