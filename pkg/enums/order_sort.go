package enums

import "fmt"

// OrderSort names the supported orderings for the order worklist.
type OrderSort string

const (
	OrderSortNewest     OrderSort = "newest"
	OrderSortOldest     OrderSort = "oldest"
	OrderSortAmountHigh OrderSort = "amount-high"
	OrderSortAmountLow  OrderSort = "amount-low"
)

var validOrderSorts = []OrderSort{
	OrderSortNewest,
	OrderSortOldest,
	OrderSortAmountHigh,
	OrderSortAmountLow,
}

// String implements fmt.Stringer.
func (s OrderSort) String() string {
	return string(s)
}

// IsValid reports whether the value is a known OrderSort.
func (s OrderSort) IsValid() bool {
	for _, candidate := range validOrderSorts {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseOrderSort converts raw input into an OrderSort, defaulting to newest
// for empty input.
func ParseOrderSort(value string) (OrderSort, error) {
	if value == "" {
		return OrderSortNewest, nil
	}
	for _, candidate := range validOrderSorts {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order sort %q", value)
}
