package types

import "github.com/sweetlayers/sweetlayers-backend/pkg/enums"

// Address is a structured delivery destination.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// Delivery describes how an order reaches the customer. Address is nil when
// Type is pickup.
type Delivery struct {
	Type         enums.DeliveryType `json:"type"`
	Address      *Address           `json:"address,omitempty"`
	Instructions string             `json:"instructions,omitempty"`
}
