package ui

import "github.com/MikeMC777/carrito-web/internal/cart"

type CounterView struct {
	Count   int
	Visible bool
}

type LineView struct {
	ProductID int
	Size      string
	SizeLabel string
	Name      string
	ImageURL  string
	Qty       int
	UnitPrice string
	LineTotal string
}

type ModalView struct {
	Lines           []LineView
	Empty           bool
	Total           string
	Currency        string
	CheckoutEnabled bool
	CheckoutLabel   string
}

// CheckoutView.TotalAmount is what the order form submits: the total
// rounded to an integer.
type CheckoutView struct {
	Lines             []LineView
	Empty             bool
	Subtotal          string
	Total             string
	TotalAmount       int64
	Currency          string
	ShopURL           string
	PlaceOrderEnabled bool
}

// views is everything one render pass needs, built from a single snapshot
// so the surfaces can never disagree with each other.
type views struct {
	counter  CounterView
	modal    ModalView
	checkout CheckoutView
}

func buildViews(c cart.Cart, o Options) views {
	qty := c.TotalQty()
	lines := make([]LineView, 0, len(c.Items))
	for _, it := range c.Items {
		img := it.ImageURL
		if img == "" {
			img = o.PlaceholderImage
		}
		lines = append(lines, LineView{
			ProductID: it.ProductID,
			Size:      it.Size,
			SizeLabel: it.SizeLabel(),
			Name:      it.Name,
			ImageURL:  img,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice.StringFixed(2),
			LineTotal: it.Total().String(),
		})
	}
	total := c.TotalPrice()
	empty := len(c.Items) == 0 || qty == 0

	v := views{
		counter: CounterView{Count: qty, Visible: qty > 0},
		modal: ModalView{
			Lines:           lines,
			Empty:           empty,
			Total:           total.StringFixed(2),
			Currency:        o.Currency,
			CheckoutEnabled: !empty,
			CheckoutLabel:   "Checkout",
		},
		checkout: CheckoutView{
			Lines:             lines,
			Empty:             empty,
			Subtotal:          total.String(),
			Total:             total.String(),
			TotalAmount:       total.Round(0).IntPart(),
			Currency:          o.Currency,
			ShopURL:           o.ShopURL,
			PlaceOrderEnabled: !empty,
		},
	}
	if empty {
		v.modal.Lines = nil
		v.modal.Total = "0"
		v.modal.CheckoutLabel = "Cart is Empty"
		v.checkout.Lines = nil
		v.checkout.Subtotal = "0"
		v.checkout.Total = "0"
		v.checkout.TotalAmount = 0
	}
	return v
}
