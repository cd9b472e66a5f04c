// Package payment contains the charge-attempt record kept for every call to
// the payment gateway. One Payment row exists per attempt; the order's status
// is the source of truth for whether the order is paid.
package payment

import (
	"errors"
	"fmt"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"
)

var (
	// ErrPaymentIsNotConstructed is returned when a Payment instance was not
	// created through the NewPayment or RestorePayment factory functions.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")
)

// State is the outcome of a single charge attempt.
type State int

const (
	// StateUnknown represents an invalid or undefined state.
	StateUnknown State = iota

	// Aprovado indicates the gateway confirmed the charge.
	Aprovado

	// Recusado indicates the gateway declined the charge.
	Recusado
)

func getStateStrings() map[State]string {
	return map[State]string{
		StateUnknown: "Unknown",
		Aprovado:     "Aprovado",
		Recusado:     "Recusado",
	}
}

// ParseState converts an external string into a State.
func ParseState(s string) (State, error) {
	for state, str := range getStateStrings() {
		if state != StateUnknown && str == s {
			return state, nil
		}
	}
	return StateUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment state",
		fmt.Errorf("%q is not a valid payment state", s),
	)
}

// Validate checks if the State value is a defined outcome.
func (s State) Validate() error {
	if s != Aprovado && s != Recusado {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment state",
			fmt.Errorf("%d is not a valid payment state", s),
		)
	}
	return nil
}

// String returns the human-readable name of the state.
// This method implements the fmt.Stringer interface.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Payment records one charge attempt against an order: how much was charged,
// through which method, what the gateway answered, and the gateway's own
// reference for the transaction.
type Payment struct {
	id         kernel.UUID
	orderID    kernel.UUID
	state      State
	amount     kernel.Money
	method     string
	gatewayRef string
	createdAt  time.Time

	isConstructed bool
}

// NewPayment creates a new charge-attempt record.
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	state State,
	amount kernel.Money,
	method string,
	gatewayRef string,
	now time.Time,
) (*Payment, error) {
	return RestorePayment(id, orderID, state, amount, method, gatewayRef, now)
}

// RestorePayment reconstructs a Payment from persisted state, re-running all
// field validations.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	state State,
	amount kernel.Money,
	method string,
	gatewayRef string,
	createdAt time.Time,
) (*Payment, error) {
	p := &Payment{
		amount:        amount,
		method:        method,
		gatewayRef:    gatewayRef,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setState(state),
		p.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Payment instance was properly constructed through a
// factory function.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the identifier of the charged order.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// State returns the outcome of the attempt.
func (p *Payment) State() State {
	return p.state
}

// Amount returns the charged amount.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// Method returns the payment method label.
func (p *Payment) Method() string {
	return p.method
}

// GatewayRef returns the gateway's reference for the transaction.
func (p *Payment) GatewayRef() string {
	return p.gatewayRef
}

// CreatedAt returns the attempt timestamp.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	p.orderID = orderID
	return nil
}

func (p *Payment) setState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	p.state = state
	return nil
}

func (p *Payment) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	p.createdAt = createdAt
	return nil
}
