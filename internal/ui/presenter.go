package ui

import (
	"context"
	"sync"
	"time"

	"github.com/MikeMC777/carrito-web/internal/cart"
	"go.uber.org/zap"
)

type Options struct {
	NotifyTTL        time.Duration
	OpenDelay        time.Duration
	CloseDelay       time.Duration
	SettleDelay      time.Duration
	PlaceholderImage string
	Currency         string
	CheckoutURL      string
	ShopURL          string
	Scheduler        Scheduler
	Log              *zap.Logger
}

// Outcome reports what a gesture did. Ignored means the originating
// control was still pending and no request was made; Skipped means the
// gesture was a no-op or failed validation before any request. Order is
// set for the place-order action only.
type Outcome struct {
	Result   cart.Result
	Ignored  bool
	Skipped  bool
	Navigate string
	Order    *OrderOutcome
}

// Presenter renders the store's snapshot on every surface the page has and
// turns gestures into store calls. It reads the store; it never writes the
// snapshot itself.
type Presenter struct {
	store  CartStore
	orders OrderSubmitter
	page   Page
	opts   Options
	sched  Scheduler
	log    *zap.Logger

	notifier *Notifier
	controls *controls

	mu        sync.Mutex
	modal     ModalState
	modalGen  uint64
	hideTimer Timer
	showTimer Timer
}

func NewPresenter(store CartStore, page Page, orders OrderSubmitter, opts Options) *Presenter {
	if opts.Scheduler == nil {
		opts.Scheduler = clockScheduler{}
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.PlaceholderImage == "" {
		opts.PlaceholderImage = "/static/placeholder.jpg"
	}
	if opts.CheckoutURL == "" {
		opts.CheckoutURL = "checkout/"
	}
	p := &Presenter{
		store:  store,
		orders: orders,
		page:   page,
		opts:   opts,
		sched:  opts.Scheduler,
		log:    opts.Log,
	}
	p.notifier = newNotifier(page.Notifications, p.sched, opts.NotifyTTL, p.log)
	p.controls = newControls(page.Controls, p.sched, opts.SettleDelay)
	return p
}

// Notifier exposes the notification queue so hosts can post their own messages.
func (p *Presenter) Notifier() *Notifier { return p.notifier }

// ControlState returns the current state of a control.
func (p *Presenter) ControlState(id ControlID) ControlState { return p.controls.state(id) }

// RefreshAll renders counter, modal and checkout summary from one snapshot.
// Surfaces missing from the page are skipped.
func (p *Presenter) RefreshAll() {
	snap := p.store.Snapshot()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.renderLocked(buildViews(snap, p.opts))
}

func (p *Presenter) renderLocked(v views) {
	if c := p.page.Counter(); c != nil {
		c.RenderCounter(v.counter)
	}
	if m := p.page.Modal(); m != nil {
		m.RenderModal(v.modal)
	}
	if co := p.page.Checkout(); co != nil {
		co.RenderCheckout(v.checkout)
	}
}

// HandleQuantityGesture is the "+"/"-" of a cart line. delta > 0 adds one
// unit, delta < 0 removes one, 0 does nothing. The originating control is
// held pending until the request settles; a second activation meanwhile is
// ignored.
func (p *Presenter) HandleQuantityGesture(ctx context.Context, surface string, productID, delta int, size string) Outcome {
	if delta == 0 {
		return Outcome{Skipped: true}
	}
	action := ActionIncrement
	if delta < 0 {
		action = ActionDecrement
	}
	id := ControlID{Surface: surface, Action: action, ProductID: productID, Size: size}
	if !p.controls.begin(id) {
		p.log.Debug("control busy, gesture ignored", zap.Stringer("control", id))
		return Outcome{Ignored: true}
	}

	var res cart.Result
	defer func() { p.controls.end(id, res.OK) }()
	defer p.RefreshAll()

	if delta > 0 {
		res = p.store.AddLine(ctx, productID, 1, size)
	} else {
		res = p.store.RemoveLine(ctx, productID, size)
	}

	switch {
	case res.OK && delta > 0:
		p.notifier.Show("Item added to cart!", NotifySuccess)
	case res.OK:
		p.notifier.Show("Item removed from cart", NotifySuccess)
	case res.Transport || res.Error == "":
		p.notifier.Show("Error updating quantity", NotifyError)
	default:
		p.notifier.Show(res.Error, NotifyError)
	}
	return Outcome{Result: res}
}

// AddGesture is the product grid's "add to cart" button.
type AddGesture struct {
	ProductID    int
	Size         string
	SizeRequired bool
}

func (p *Presenter) HandleAddGesture(ctx context.Context, g AddGesture) Outcome {
	if g.ProductID <= 0 {
		return Outcome{Skipped: true}
	}
	if g.SizeRequired && g.Size == "" {
		p.notifier.Show("Please select a size first", NotifyError)
		return Outcome{Skipped: true, Result: cart.Result{Error: "Please select a size first"}}
	}
	id := ControlID{Surface: SurfaceGrid, Action: ActionAddToCart, ProductID: g.ProductID}
	if !p.controls.begin(id) {
		return Outcome{Ignored: true}
	}

	var res cart.Result
	defer func() { p.controls.end(id, res.OK) }()
	defer p.RefreshAll()

	res = p.store.AddLine(ctx, g.ProductID, 1, g.Size)
	switch {
	case res.OK:
		p.notifier.Show("Item added to cart!", NotifySuccess)
	case res.Transport:
		p.notifier.Show("Error adding item to cart", NotifyError)
	case res.Error != "":
		p.notifier.Show(res.Error, NotifyError)
	}
	return Outcome{Result: res}
}

// ModalCheckout is the modal's checkout button. It refuses while the cart
// is empty, whatever state the button is rendered in.
func (p *Presenter) ModalCheckout() (string, bool) {
	if p.store.TotalQty() == 0 {
		return "", false
	}
	return p.opts.CheckoutURL, true
}
