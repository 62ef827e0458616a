package ui

import (
	"context"
	"strconv"

	"github.com/MikeMC777/carrito-web/internal/checkout"
)

// Event is a click delivered to the page's single delegated listener.
// Data holds the clicked element's data-* attributes without the prefix.
// For place-order the host also copies the checkout form's inputs into
// Data under their field names (first_name, phone, ...).
type Event struct {
	Action string
	Data   map[string]string
}

func (e Event) productID() (int, bool) {
	id, err := strconv.Atoi(e.Data["product-id"])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (e Event) form() checkout.Form {
	return checkout.Form{
		FirstName:       e.Data["first_name"],
		Phone:           e.Data["phone"],
		Address:         e.Data["address"],
		Area:            e.Data["area"],
		NearestLandmark: e.Data["nearest_landmark"],
		Notes:           e.Data["notes"],
	}
}

func (e Event) surface() string {
	if s := e.Data["surface"]; s != "" {
		return s
	}
	return SurfaceModal
}

// HandleEvent routes a delegated click by its data-action.
func (p *Presenter) HandleEvent(ctx context.Context, e Event) Outcome {
	switch e.Action {
	case ActionOpenCart:
		p.OpenModal()
	case ActionCloseCart:
		p.CloseModal()
	case ActionIncrement, ActionDecrement:
		id, ok := e.productID()
		if !ok {
			return Outcome{Skipped: true}
		}
		delta := 1
		if e.Action == ActionDecrement {
			delta = -1
		}
		return p.HandleQuantityGesture(ctx, e.surface(), id, delta, e.Data["size"])
	case ActionAddToCart:
		id, ok := e.productID()
		if !ok {
			return Outcome{Skipped: true}
		}
		required, _ := strconv.ParseBool(e.Data["size-required"])
		return p.HandleAddGesture(ctx, AddGesture{ProductID: id, Size: e.Data["size"], SizeRequired: required})
	case ActionModalCheckout:
		url, ok := p.ModalCheckout()
		if !ok {
			return Outcome{Skipped: true}
		}
		return Outcome{Navigate: url}
	case ActionPlaceOrder:
		o := p.PlaceOrder(ctx, e.form())
		return Outcome{Ignored: o.Ignored, Navigate: o.RedirectURL, Order: &o}
	default:
		return Outcome{Skipped: true}
	}
	return Outcome{}
}
