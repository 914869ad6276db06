package enums

import "fmt"

// CakeCategory groups catalog cakes for browsing.
type CakeCategory string

const (
	CakeCategoryFeatured CakeCategory = "featured"
	CakeCategoryBirthday CakeCategory = "birthday"
	CakeCategoryWedding  CakeCategory = "wedding"
	CakeCategoryCustom   CakeCategory = "custom"
	CakeCategorySeasonal CakeCategory = "seasonal"
)

var validCakeCategories = []CakeCategory{
	CakeCategoryFeatured,
	CakeCategoryBirthday,
	CakeCategoryWedding,
	CakeCategoryCustom,
	CakeCategorySeasonal,
}

// String implements fmt.Stringer.
func (c CakeCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CakeCategory.
func (c CakeCategory) IsValid() bool {
	for _, candidate := range validCakeCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCakeCategory converts raw input into a CakeCategory.
func ParseCakeCategory(value string) (CakeCategory, error) {
	for _, candidate := range validCakeCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cake category %q", value)
}
