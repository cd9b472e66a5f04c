package product

import (
	"errors"
	"fmt"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct or RestoreProduct factory functions.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
)

// Product represents a catalog item that can fill an order slot.
//
// Product follows these invariants:
//   - Must have a valid unique identifier
//   - Name must not be empty
//   - Category must be one of the defined menu sections
//   - Price is a non-negative exact amount
//   - Must list at least one ingredient
//   - Timestamps must be well-formed (non-zero, created before updated)
//
// Products are attached to orders by value: an order keeps its own copy, so
// later catalog edits never change the total of an already placed order.
type Product struct {
	id          kernel.UUID
	name        string
	photo       string
	description string
	category    Category
	price       kernel.Money
	ingredients []string
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewProduct creates a new Product instance with validation. Both timestamps
// are set to now.
func NewProduct(
	id kernel.UUID,
	name string,
	photo string,
	description string,
	category Category,
	price kernel.Money,
	ingredients []string,
	now time.Time,
) (*Product, error) {
	return RestoreProduct(id, name, photo, description, category, price, ingredients, now, now)
}

// RestoreProduct reconstructs a Product from persisted state, re-running all
// field validations.
func RestoreProduct(
	id kernel.UUID,
	name string,
	photo string,
	description string,
	category Category,
	price kernel.Money,
	ingredients []string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Product, error) {
	product := &Product{
		photo:         photo,
		description:   description,
		price:         price,
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setCategory(category),
		product.setIngredients(ingredients),
		product.setTimestamps(createdAt, updatedAt),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate ensures the Product instance was properly constructed through a
// factory function.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Photo returns the product's photo URL.
func (p *Product) Photo() string {
	return p.photo
}

// Description returns the product's description.
func (p *Product) Description() string {
	return p.description
}

// Category returns the menu section the product belongs to.
func (p *Product) Category() Category {
	return p.category
}

// Price returns the product's price as an exact amount.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Ingredients returns a copy of the product's ingredient list.
// A copy is returned so callers cannot mutate the product's state.
func (p *Product) Ingredients() []string {
	out := make([]string, len(p.ingredients))
	copy(out, p.ingredients)
	return out
}

// CreatedAt returns the creation timestamp.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}

func (p *Product) setIngredients(ingredients []string) error {
	if len(ingredients) == 0 {
		return errs.NewValueIsRequiredError("ingredients")
	}
	for _, ingredient := range ingredients {
		if ingredient == "" {
			return errs.NewValueIsRequiredError("ingredient")
		}
	}
	p.ingredients = make([]string, len(ingredients))
	copy(p.ingredients, ingredients)
	return nil
}

func (p *Product) setTimestamps(createdAt, updatedAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	if updatedAt.IsZero() {
		return errs.NewValueIsRequiredError("updatedAt")
	}
	if updatedAt.Before(createdAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"updatedAt",
			fmt.Errorf("%s is before createdAt %s", updatedAt, createdAt),
		)
	}
	p.createdAt = createdAt
	p.updatedAt = updatedAt
	return nil
}
