package product

import (
	"fmt"

	"fastfood/internal/pkg/errs"
)

// Category identifies the menu section a product belongs to. Each category
// maps one-to-one onto an order item slot: a Lanche fills the main slot, an
// Acompanhamento the side slot, and a Bebida the drink slot.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	// This value (0) helps catch uninitialized Category values.
	CategoryUnknown Category = iota

	// Lanche is the main item of an order (burger, sandwich).
	Lanche

	// Acompanhamento is the side item of an order (fries, salad).
	Acompanhamento

	// Bebida is the drink item of an order.
	Bebida
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown: "Unknown",
		Lanche:          "Lanche",
		Acompanhamento:  "Acompanhamento",
		Bebida:          "Bebida",
	}
}

func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // CategoryUnknown is intentionally excluded as it's invalid
	return map[Category]string{
		Lanche:         "Lanche",
		Acompanhamento: "Acompanhamento",
		Bebida:         "Bebida",
	}
}

// ParseCategory converts an external string into a Category.
// Only the three menu sections are accepted; anything else is a parse failure,
// so unknown category labels can never enter the domain.
func ParseCategory(s string) (Category, error) {
	for category, str := range getValidCategoryStrings() {
		if str == s {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"category",
		fmt.Errorf("%q is not a valid category", s),
	)
}

// Validate checks if the Category value is one of the defined menu sections.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"category",
			fmt.Errorf("%d is not a valid category", c),
		)
	}
	return nil
}

// String returns the human-readable name of the category.
// This method implements the fmt.Stringer interface and is safe to call on
// any Category value, including invalid ones.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}
