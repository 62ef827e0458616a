package ui

import (
	"context"
	"errors"
	"time"

	"github.com/MikeMC777/carrito-web/internal/checkout"
	"go.uber.org/zap"
)

var (
	ErrEmptyCart  = errors.New("cart is empty")
	ErrNoCheckout = errors.New("no order submitter configured")
)

// OrderOutcome tells the host where to go after the place-order gesture.
// RedirectAfter is non-zero when the host should wait before navigating.
type OrderOutcome struct {
	Placed        bool
	Ignored       bool
	RedirectURL   string
	RedirectAfter time.Duration
	Err           error
}

// PlaceOrder submits the checkout form. The form's total is taken from the
// same snapshot the checkout summary shows. An empty cart short-circuits
// before anything is sent.
func (p *Presenter) PlaceOrder(ctx context.Context, f checkout.Form) OrderOutcome {
	snap := p.store.Snapshot()
	if snap.TotalQty() == 0 {
		p.notifier.Show("Your cart is empty. Please add items before checkout.", NotifyError)
		return OrderOutcome{Err: ErrEmptyCart}
	}
	if p.orders == nil {
		return OrderOutcome{Err: ErrNoCheckout}
	}
	id := ControlID{Surface: SurfaceCheckout, Action: ActionPlaceOrder}
	if !p.controls.begin(id) {
		return OrderOutcome{Ignored: true}
	}
	placed := false
	defer func() { p.controls.end(id, placed) }()

	f.TotalAmount = buildViews(snap, p.opts).checkout.TotalAmount
	receipt, err := p.orders.Submit(ctx, f)
	if err != nil {
		p.log.Error("order submission failed", zap.Error(err))
		p.notifier.Show("Error placing order. Please try again.", NotifyError)
		return OrderOutcome{Err: err}
	}
	placed = true
	if receipt.RedirectURL != "" {
		return OrderOutcome{Placed: true, RedirectURL: receipt.RedirectURL}
	}
	p.notifier.Show("Order placed successfully!", NotifySuccess)
	return OrderOutcome{Placed: true, RedirectURL: "/", RedirectAfter: time.Second}
}
