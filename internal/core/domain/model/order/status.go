package order

import (
	"fmt"

	"fastfood/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pendente ──> Pago ──> EmPreparacao ──> Pronto ──> Finalizado
//	    │          │            │             │
//	    └──────────┴────────────┴─────────────┴──────> Cancelado
//
// Finalizado and Cancelado are terminal. The original system also carried an
// "Invalido" rejection sentinel inside the status type; here that outcome is a
// ParseStatus failure instead, so a Status value is always a real lifecycle
// state and can never persist a rejection marker.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pendente is the initial status of a created order awaiting payment.
	Pendente

	// Pago indicates the payment gateway confirmed the charge.
	Pago

	// EmPreparacao indicates the kitchen started preparing the order.
	EmPreparacao

	// Pronto indicates the order is ready for pickup.
	Pronto

	// Finalizado indicates the order was delivered. Terminal.
	Finalizado

	// Cancelado indicates the order was abandoned or cancelled. Terminal.
	Cancelado
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Invalido",
		Pendente:      "Pendente",
		Pago:          "Pago",
		EmPreparacao:  "EmPreparacao",
		Pronto:        "Pronto",
		Finalizado:    "Finalizado",
		Cancelado:     "Cancelado",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pendente:     "Pendente",
		Pago:         "Pago",
		EmPreparacao: "EmPreparacao",
		Pronto:       "Pronto",
		Finalizado:   "Finalizado",
		Cancelado:    "Cancelado",
	}
}

// allowedTransitions is the single source of truth for status legality.
// Callers never decide transitions themselves; they go through TransitionTo.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pendente:     {Pago, Cancelado},
		Pago:         {EmPreparacao, Cancelado},
		EmPreparacao: {Pronto, Cancelado},
		Pronto:       {Finalizado, Cancelado},
		Finalizado:   {},
		Cancelado:    {},
	}
}

// ParseStatus converts an external string into a Status.
// Only the six lifecycle states are accepted; "Invalido" and every unknown
// label are parse failures, which keeps the rejection sentinel out of the
// domain entirely.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire label of the status ("Pendente", "Pago", ...).
// Invalid values render as "Invalido". This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Invalido"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Finalizado || s == Cancelado
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a transition.
//
// Returns:
//   - (next, nil) when next is a legal successor of s
//   - (0, error) otherwise, including any transition out of a terminal state
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(next) {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid transition from %s", next, s),
		)
	}
	return next, nil
}
