package enums

import "fmt"

// DeliveryType distinguishes doorstep delivery from in-store pickup.
type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

// String implements fmt.Stringer.
func (d DeliveryType) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DeliveryType.
func (d DeliveryType) IsValid() bool {
	return d == DeliveryTypeDelivery || d == DeliveryTypePickup
}

// ParseDeliveryType converts raw input into a DeliveryType.
func ParseDeliveryType(value string) (DeliveryType, error) {
	switch DeliveryType(value) {
	case DeliveryTypeDelivery:
		return DeliveryTypeDelivery, nil
	case DeliveryTypePickup:
		return DeliveryTypePickup, nil
	default:
		return "", fmt.Errorf("invalid delivery type %q", value)
	}
}
