// Package customer contains the customer entity of the directory consumed by
// the order-fulfillment core. Orders hold customer data by value (snapshot
// semantics), so directory edits never rewrite history on placed orders.
package customer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was not
	// created through the NewCustomer or RestoreCustomer factory functions.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")
)

// Customer represents a registered customer.
//
// Customer follows these invariants:
//   - Must have a valid unique identifier
//   - Name must not be empty
//   - Email must contain a local part and a domain
//   - CPF must be a valid national id
//   - Timestamps must be well-formed
type Customer struct {
	id        kernel.UUID
	name      string
	email     string
	cpf       CPF
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewCustomer creates a new Customer instance with validation. Both
// timestamps are set to now.
func NewCustomer(id kernel.UUID, name, email string, cpf CPF, now time.Time) (*Customer, error) {
	return RestoreCustomer(id, name, email, cpf, now, now)
}

// RestoreCustomer reconstructs a Customer from persisted state, re-running
// all field validations.
func RestoreCustomer(
	id kernel.UUID,
	name, email string,
	cpf CPF,
	createdAt, updatedAt time.Time,
) (*Customer, error) {
	customer := &Customer{
		isConstructed: true,
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setEmail(email),
		customer.setCPF(cpf),
		customer.setTimestamps(createdAt, updatedAt),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// Validate ensures the Customer instance was properly constructed through a
// factory function.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c *Customer) Email() string {
	return c.email
}

// CPF returns the customer's national id.
func (c *Customer) CPF() CPF {
	return c.cpf
}

// CreatedAt returns the creation timestamp.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (c *Customer) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" || domain == "" || !strings.Contains(domain, ".") {
		return errs.NewValueIsInvalidErrorWithCause(
			"email",
			fmt.Errorf("%q is not a valid email address", email),
		)
	}
	c.email = email
	return nil
}

func (c *Customer) setCPF(cpf CPF) error {
	if err := cpf.Validate(); err != nil {
		return err
	}
	c.cpf = cpf
	return nil
}

func (c *Customer) setTimestamps(createdAt, updatedAt time.Time) error {
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
	c.createdAt = createdAt
	c.updatedAt = updatedAt
	return nil
}
