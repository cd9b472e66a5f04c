// Package fakepay is an in-process stand-in for a real payment processor.
// It approves or declines charges according to a pluggable decision function
// and remembers every outcome, so CheckStatus answers the same way a real
// acquirer's status endpoint would.
package fakepay

import (
	"context"
	"sync"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/ports"

	"github.com/google/uuid"
)

// Decider decides the outcome of a charge. Returning false declines it.
type Decider func(orderID kernel.UUID, amount kernel.Money) bool

// ApproveAll is the default Decider; every charge succeeds.
func ApproveAll(kernel.UUID, kernel.Money) bool {
	return true
}

// Faulter injects a transport failure for a charge attempt. A non-nil error
// is returned to the caller before any outcome is decided or recorded, which
// mimics a confirmation lost on the wire.
type Faulter func(orderID kernel.UUID) error

// Gateway implements the PaymentGateway port in memory.
//
// Charging the same order twice returns the recorded outcome of the first
// attempt, which makes a confirmation retry after a lost response harmless.
// Safe for concurrent use.
type Gateway struct {
	mu      sync.Mutex
	decider Decider
	faulter Faulter
	charges map[kernel.UUID]ports.ChargeResult
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithDecider replaces the default approve-all decision function.
func WithDecider(decider Decider) Option {
	return func(g *Gateway) {
		g.decider = decider
	}
}

// WithFaulter installs a transport failure injector for Charge.
func WithFaulter(faulter Faulter) Option {
	return func(g *Gateway) {
		g.faulter = faulter
	}
}

// NewGateway creates a fake payment gateway.
func NewGateway(opts ...Option) *Gateway {
	g := &Gateway{
		decider: ApproveAll,
		charges: make(map[kernel.UUID]ports.ChargeResult),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Charge records and returns an outcome for the order. A repeated charge for
// the same order returns the previously recorded outcome unchanged.
func (g *Gateway) Charge(
	ctx context.Context,
	orderID kernel.UUID,
	amount kernel.Money,
) (ports.ChargeResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.ChargeResult{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.faulter != nil {
		if err := g.faulter(orderID); err != nil {
			return ports.ChargeResult{}, err
		}
	}

	if result, ok := g.charges[orderID]; ok {
		return result, nil
	}

	result := ports.ChargeResult{
		Approved:  g.decider(orderID, amount),
		Reference: uuid.NewString(),
	}
	g.charges[orderID] = result
	return result, nil
}

// CheckStatus reports the recorded outcome for an order. An order that was
// never charged comes back unapproved with an empty reference.
func (g *Gateway) CheckStatus(ctx context.Context, orderID kernel.UUID) (ports.ChargeResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.ChargeResult{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.charges[orderID], nil
}

// RecordCharge seeds an outcome directly, bypassing the decision function.
// Meant for exercising reconciliation flows where the charge happened but the
// confirmation was lost.
func (g *Gateway) RecordCharge(orderID kernel.UUID, result ports.ChargeResult) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.charges[orderID] = result
}
