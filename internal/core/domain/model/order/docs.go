// Package order provides domain entities and business logic for order
// management in the fulfillment system. It implements the Order aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, item slots, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier and well-formed timestamps
//   - Order status follows a defined workflow:
//     Pendente -> Pago -> EmPreparacao -> Pronto -> Finalizado,
//     with Cancelado reachable from every non-terminal state
//   - Items and the customer are attached as owned snapshot copies
//   - An order needs at least one filled item slot to be submitted for payment
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
