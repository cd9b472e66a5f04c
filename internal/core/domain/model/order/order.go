package order

import (
	"errors"
	"fmt"
	"time"

	"fastfood/internal/core/domain/model/customer"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/product"
	"fastfood/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoItems is returned when an order without any filled item
	// slot is submitted for payment.
	ErrOrderHasNoItems = errors.New("order must have at least one item")
)

// Order represents a customer purchase request. It is the aggregate root that
// manages the order lifecycle from creation through payment, preparation, and
// pickup.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Status is always one of the defined lifecycle states and only changes
//     along the allowed-transition table
//   - Item slots and the customer hold owned snapshot copies, never live
//     references to catalog or directory records
//   - To be valid for payment, at least one of the main/side/drink slots
//     must be filled
//   - Timestamps are non-zero and never move backwards
//
// The Order struct uses private fields to ensure encapsulation; every mutator
// validates its input and leaves the aggregate untouched on failure.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customer is an owned snapshot of the directory record (nil when anonymous)
	customer *customer.Customer

	// main, side, and drink are owned product snapshots (nil when the slot is empty)
	main  *product.Product
	side  *product.Product
	drink *product.Product

	// paymentMethod is the label of the chosen payment method
	paymentMethod string

	// status is the current state in the order lifecycle
	status Status

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order in Pendente status with both timestamps set to
// now. Items, customer, and payment method are attached afterwards through
// the mutators.
func NewOrder(id kernel.UUID, now time.Time) (*Order, error) {
	order := &Order{
		status:        Pendente,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTimestamps(now, now),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state, re-running all
// field validations. Snapshot arguments are copied; the caller's pointers are
// not retained.
func RestoreOrder(
	id kernel.UUID,
	cust *customer.Customer,
	main, side, drink *product.Product,
	paymentMethod string,
	status Status,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		paymentMethod: paymentMethod,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setStatus(status),
		order.setTimestamps(createdAt, updatedAt),
		order.setCustomer(cust),
		order.setItem(product.Lanche, main),
		order.setItem(product.Acompanhamento, side),
		order.setItem(product.Bebida, drink),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Slots returns the three item slot categories in main, side, drink order.
func Slots() []product.Category {
	return []product.Category{product.Lanche, product.Acompanhamento, product.Bebida}
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This method is called when reconstructing orders from
// persistence to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ValidateForPayment checks the invariants an order must satisfy before it is
// submitted to the payment gateway: proper construction, well-formed
// timestamps, a valid status, and at least one filled item slot.
func (o *Order) ValidateForPayment() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.status.Validate(); err != nil {
		return err
	}
	if o.createdAt.IsZero() || o.updatedAt.IsZero() || o.updatedAt.Before(o.createdAt) {
		return errs.NewValueIsInvalidError("timestamps")
	}
	if !o.HasItems() {
		return ErrOrderHasNoItems
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the attached customer snapshot, or nil for an anonymous
// order.
func (o *Order) Customer() *customer.Customer {
	return o.customer
}

// Item returns the snapshot filling the given slot, or nil when the slot is
// empty.
func (o *Order) Item(slot product.Category) *product.Product {
	switch slot {
	case product.Lanche:
		return o.main
	case product.Acompanhamento:
		return o.side
	case product.Bebida:
		return o.drink
	default:
		return nil
	}
}

// Main returns the main item snapshot, or nil when the slot is empty.
func (o *Order) Main() *product.Product {
	return o.main
}

// Side returns the side item snapshot, or nil when the slot is empty.
func (o *Order) Side() *product.Product {
	return o.side
}

// Drink returns the drink item snapshot, or nil when the slot is empty.
func (o *Order) Drink() *product.Product {
	return o.drink
}

// PaymentMethod returns the label of the chosen payment method.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// HasItems reports whether at least one item slot is filled.
func (o *Order) HasItems() bool {
	return o.main != nil || o.side != nil || o.drink != nil
}

// Total sums the price of each filled slot. An empty slot contributes zero.
// The sum is exact integer centavos arithmetic.
func (o *Order) Total() kernel.Money {
	var total kernel.Money
	for _, item := range []*product.Product{o.main, o.side, o.drink} {
		if item != nil {
			total = total.Add(item.Price())
		}
	}
	return total
}

// AttachCustomer stores an owned snapshot of the given customer on the order
// and refreshes the updated timestamp. The order does not keep the caller's
// pointer, so later directory edits cannot reach it.
func (o *Order) AttachCustomer(cust *customer.Customer, now time.Time) error {
	if err := cust.Validate(); err != nil {
		return err
	}
	if err := o.validateClock(now); err != nil {
		return err
	}

	snapshot := *cust
	o.customer = &snapshot
	o.updatedAt = now
	return nil
}

// AttachItem writes a product snapshot into the requested slot.
//
// The product's own category must match the requested slot: a Bebida id can
// never land in the main slot even if the identifier would resolve. Attaching
// to an already filled slot overwrites it (last writer wins). On any
// validation failure the slot is left unchanged.
func (o *Order) AttachItem(slot product.Category, item *product.Product, now time.Time) error {
	if err := slot.Validate(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if err := o.validateClock(now); err != nil {
		return err
	}
	if item.Category() != slot {
		return errs.NewValueIsInvalidErrorWithCause(
			"category",
			fmt.Errorf("product %s is a %s, not a %s", item.ID(), item.Category(), slot),
		)
	}

	snapshot := *item
	switch slot {
	case product.Lanche:
		o.main = &snapshot
	case product.Acompanhamento:
		o.side = &snapshot
	case product.Bebida:
		o.drink = &snapshot
	}
	o.updatedAt = now
	return nil
}

// SetPaymentMethod records the payment method label.
func (o *Order) SetPaymentMethod(label string, now time.Time) error {
	if label == "" {
		return errs.NewValueIsRequiredError("payment method")
	}
	if err := o.validateClock(now); err != nil {
		return err
	}

	o.paymentMethod = label
	o.updatedAt = now
	return nil
}

// ChangeStatus moves the order to the given status, enforcing the central
// allowed-transition table, and refreshes the updated timestamp.
func (o *Order) ChangeStatus(next Status, now time.Time) error {
	if err := o.validateClock(now); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// MarkPaid transitions Pendente orders to Pago. It is the only path to Pago
// and is driven by a confirmed gateway charge.
func (o *Order) MarkPaid(now time.Time) error {
	if o.status != Pendente {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s order cannot be marked paid", o.status),
		)
	}
	return o.ChangeStatus(Pago, now)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCustomer(cust *customer.Customer) error {
	if cust == nil {
		return nil
	}
	if err := cust.Validate(); err != nil {
		return err
	}
	snapshot := *cust
	o.customer = &snapshot
	return nil
}

func (o *Order) setItem(slot product.Category, item *product.Product) error {
	if item == nil {
		return nil
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if item.Category() != slot {
		return errs.NewValueIsInvalidErrorWithCause(
			"category",
			fmt.Errorf("product %s is a %s, not a %s", item.ID(), item.Category(), slot),
		)
	}
	snapshot := *item
	switch slot {
	case product.Lanche:
		o.main = &snapshot
	case product.Acompanhamento:
		o.side = &snapshot
	case product.Bebida:
		o.drink = &snapshot
	}
	return nil
}

func (o *Order) setTimestamps(createdAt, updatedAt time.Time) error {
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
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return nil
}

// validateClock rejects a mutation timestamp that is zero or precedes the
// order's creation.
func (o *Order) validateClock(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	if now.Before(o.createdAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"timestamp",
			fmt.Errorf("%s is before order creation %s", now, o.createdAt),
		)
	}
	return nil
}
