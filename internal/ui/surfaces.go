package ui

import (
	"context"

	"github.com/MikeMC777/carrito-web/internal/cart"
	"github.com/MikeMC777/carrito-web/internal/checkout"
)

// Page hands out the surfaces that exist right now. Any accessor may
// return nil; the presenter checks on every render.
type Page interface {
	Counter() CounterSurface
	Modal() ModalSurface
	Checkout() CheckoutSurface
	Notifications() NotificationSurface
	Controls() ControlSurface
}

type CounterSurface interface {
	RenderCounter(CounterView)
}

type ModalSurface interface {
	RenderModal(ModalView)
	// SetVisible is the hard show/hide; SetActive drives the slide transition.
	SetVisible(bool)
	SetActive(bool)
}

type CheckoutSurface interface {
	RenderCheckout(CheckoutView)
}

type NotificationSurface interface {
	ShowNotification(Notification)
	DismissNotification(id string)
}

type ControlSurface interface {
	SetControlState(ControlID, ControlState)
}

// CartStore is the part of cart.Store the presenter needs.
type CartStore interface {
	AddLine(ctx context.Context, productID, qty int, size string) cart.Result
	RemoveLine(ctx context.Context, productID int, size string) cart.Result
	Snapshot() cart.Cart
	TotalQty() int
}

// OrderSubmitter places the order; checkout.Client implements it.
type OrderSubmitter interface {
	Submit(ctx context.Context, f checkout.Form) (checkout.Receipt, error)
}

// Surface names used in ControlID.Surface and data-surface attributes.
const (
	SurfaceGrid     = "grid"
	SurfaceModal    = "modal"
	SurfaceCheckout = "checkout"
)

// Actions carried in data-action attributes.
const (
	ActionOpenCart      = "open-cart"
	ActionCloseCart     = "close-cart"
	ActionAddToCart     = "add-to-cart"
	ActionIncrement     = "qty-inc"
	ActionDecrement     = "qty-dec"
	ActionModalCheckout = "modal-checkout"
	ActionPlaceOrder    = "place-order"
)
